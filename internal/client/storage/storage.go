// Package storage persists the client's tokens between runs.
//
// It is a fixed-key string store backed by a single sqlite table, so the CLI
// leaves exactly one state file behind. Values are raw token strings, no
// validation and no encoding.
package storage

import "context"

// Key names one persisted slot.
type Key string

const (
	KeySession Key = "session"
	KeySudo    Key = "sudo"
)

// Storage is a get/set/remove store over the fixed key set.
// Get returns "" for a missing key.
type Storage interface {
	Get(ctx context.Context, key Key) (string, error)
	Set(ctx context.Context, key Key, value string) error
	Remove(ctx context.Context, key Key) error

	// RemoveMany removes several keys atomically, so a crash cannot leave
	// half-cleared credential state behind.
	RemoveMany(ctx context.Context, keys ...Key) error
}
