// Package kvstore is the local persistence layer of the terminal: a handful
// of named records, each holding the full JSON-encoded collection it backs.
// Every mutation rewrites the whole record (write-through).
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value has ever been stored under a key.
var ErrNotFound = errors.New("kvstore: key not found")

// Store reads and writes named records on the local device.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
