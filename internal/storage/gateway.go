package storage

import (
	"errors"
	"fmt"
)

// ErrPersistence wraps any failure of the backing store. Callers treat it as
// fatal for the current operation; nothing in the service layer retries.
var ErrPersistence = errors.New("persistence gateway failure")

// Gateway is the key-value contract every collection persists through: one
// JSON blob per collection per user, keyed "<prefix>:<userID>". Backends are
// swappable without touching business logic.
type Gateway interface {
	// Get returns the stored value for key, or found=false when absent.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Key builds the namespaced key for a per-user collection blob.
func Key(prefix, userID string) string {
	return fmt.Sprintf("%s:%s", prefix, userID)
}
