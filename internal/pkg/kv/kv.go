// Package kv is the local key-value persistence layer. Entity collections
// are stored as JSON array blobs under fixed string keys, so any backend
// that can hold opaque strings per key is a valid store.
package kv

// Store is the persistence contract the record stores are built on.
// Lookups report presence via the second return value instead of erroring,
// so a missing key is not a failure.
type Store interface {
	GetString(key string) (string, bool)
	SetString(key, value string) error
	GetBoolean(key string) (bool, bool)
	SetBoolean(key string, value bool) error
	Delete(key string) error
}
