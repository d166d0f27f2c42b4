// Package persistence is the durable key-to-JSON-document collaborator used
// by the application state store. Documents are read once at bootstrap and
// written after every relevant state change.
package persistence

import (
	"context"
	"errors"
)

// Well-known document keys.
const (
	KeyShoppingLists = "shoppingLists"
	KeyPriceAlerts   = "priceAlerts"
	KeySettings      = "settings"
)

// ErrNotFound is returned by Load when no document exists for a key.
var ErrNotFound = errors.New("persistence: key not found")

// Store is a durable key -> JSON document store.
// Implementations must be safe for a single writer with concurrent readers.
type Store interface {
	// Load retrieves the document stored at key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save durably stores the document at key, replacing any previous value.
	Save(ctx context.Context, key string, doc []byte) error

	// Delete removes the document at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a document is stored at key.
	Exists(ctx context.Context, key string) (bool, error)
}
