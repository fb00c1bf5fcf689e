package bank

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is the durable side of a ledger: it reads and writes the whole
// serialised collection at once.
//
// Load must return an error matching fs.ErrNotExist when nothing was ever
// saved.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStore stores the ledger in a single file at the given path.
type FileStore string

func (p FileStore) String() string { return string(p) }

// Load reads the whole file.
func (p FileStore) Load() ([]byte, error) { return os.ReadFile(string(p)) }

// Save writes data to a temporary file next to the ledger file and renames it
// over the ledger, so that readers never see a half written file.
func (p FileStore) Save(data []byte) (err error) {
	path := string(p)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// storeName names the store in error messages.
func storeName(s Store) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return ""
}
