// Package store persists the economy as two independently keyed records on
// top of a small key-value backend.
package store

// KV is a durable key-value backend. Each Put replaces the whole value.
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
	Delete(keys ...string) error
	Close() error
}
