// Package localstore provides the durable key-value state shared by every
// store that persists across runs. Writes are synchronous and
// last-write-wins; there is no integrity check on read.
package localstore

// Store is a flat key-value record. Keys are namespaced by owner
// (e.g. "session/token") so an owner can clear its keys without touching
// anyone else's.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}
