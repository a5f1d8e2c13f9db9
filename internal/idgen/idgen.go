// Package idgen generates short, URL-safe snapshot identifiers backed by
// nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// SnapshotPrefix marks ids of persisted transformation snapshots.
const SnapshotPrefix = "gv-"

// alphabet is the character set used for the random portion of an id.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// length is the number of random characters generated (excluding the prefix).
const length = 10

// NewSnapshotID returns a new unique snapshot id.
func NewSnapshotID() (string, error) {
	return Generate(SnapshotPrefix)
}

// Generate returns a new unique id with the given prefix.
func Generate(prefix string) (string, error) {
	id, err := nanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
