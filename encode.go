package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SchemaVersion is the version of the ledger file written by this package.
//
// Version 0 is the original layout: a bare JSON array of accounts.
const SchemaVersion = 1

var (
	errUnsupportedVersion = errors.New("unsupported ledger version")
	errCorrupt            = errors.New("ledger content is corrupt, refusing to overwrite it")
)

// snapshot is the document persisted by the ledger.
type snapshot struct {
	Version  int       `json:"version"`
	Currency string    `json:"currency,omitempty"`
	Accounts []account `json:"accounts"`
}

// encodeSnapshot serialises the whole collection.
func encodeSnapshot(currency string, accounts []account) ([]byte, error) {
	if accounts == nil {
		accounts = []account{}
	}
	data, err := json.MarshalIndent(snapshot{
		Version:  SchemaVersion,
		Currency: currency,
		Accounts: accounts,
	}, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decodeSnapshot parses any known version of the ledger file. Empty content is
// an empty ledger.
func decodeSnapshot(data []byte) (snapshot, error) {
	var snap snapshot
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return snapshot{Version: SchemaVersion}, nil
	}

	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &snap.Accounts); err != nil {
			return snapshot{}, fmt.Errorf("invalid version 0 ledger: %w", err)
		}
	case '{':
		// Peek at the version first: a newer layout may not decode at all.
		var v struct {
			Version int `json:"version"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return snapshot{}, fmt.Errorf("invalid ledger: %w", err)
		}
		if v.Version > SchemaVersion {
			return snapshot{}, fmt.Errorf("%w: %d (this program reads up to %d)", errUnsupportedVersion, v.Version, SchemaVersion)
		}
		if err := json.Unmarshal(data, &snap); err != nil {
			return snapshot{}, fmt.Errorf("invalid version %d ledger: %w", v.Version, err)
		}
	default:
		return snapshot{}, fmt.Errorf("invalid ledger: unexpected %q", data[0])
	}

	seen := make(map[string]bool, len(snap.Accounts))
	for _, a := range snap.Accounts {
		if a.number == "" {
			return snapshot{}, fmt.Errorf("invalid ledger: account %q has no account number", a.name)
		}
		if seen[a.number] {
			return snapshot{}, fmt.Errorf("invalid ledger: duplicate account number %q", a.number)
		}
		if a.balance.IsNegative() {
			return snapshot{}, fmt.Errorf("invalid ledger: account %q has a negative balance", a.number)
		}
		seen[a.number] = true
	}
	return snap, nil
}
