// Package docs holds the help topics of atm, embedded in the binary.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the topic that lists all the others.
const Readme = "readme"

// ErrUnknownTopic is returned for a topic that has no page.
var ErrUnknownTopic = errors.New("unknown topic")

// GetTopic returns the markdown of a topic. "*" stands for every topic but
// the readme.
func GetTopic(topic string) (string, error) {
	return GetTopics(topic)
}

// GetTopics returns the markdown of several topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	var names []string
	for _, topic := range topics {
		if topic != "*" {
			names = append(names, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		names = append(names, all...)
	}

	var b strings.Builder
	for i, name := range names {
		content, err := files.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("%w %q", ErrUnknownTopic, name)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.Write(content)
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of the topics, without the readme.
func GetAllTopics() ([]string, error) {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != Readme {
			topics = append(topics, name)
		}
	}
	return topics, nil
}
