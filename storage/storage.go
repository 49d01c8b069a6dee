// Package storage persists the tracker document under a single key,
// mirroring the browser local-storage model the client uses: the whole
// serialized document is written on every change, last writer wins.
package storage

// Storage is a single-slot persistence target for the serialized document.
type Storage interface {
	// Get returns the persisted document bytes, or (nil, nil) when
	// nothing has been saved yet.
	Get() ([]byte, error)
	// Set replaces the persisted document wholesale.
	Set(data []byte) error
	Close() error
}
