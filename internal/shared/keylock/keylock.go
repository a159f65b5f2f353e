// Package keylock provides a mutex keyed by an identifier, used to serialize
// read-validate-write sequences on a single entity.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key. Mutexes are created on first use
// and kept for the life of the process; the key space here (listing IDs) is
// small enough that no eviction is needed.
type KeyedMutex struct {
	locks sync.Map // map[uint]*sync.Mutex
}

// NewKeyedMutex creates a new KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key and returns the matching unlock function.
//
//	unlock := locks.Lock(listingID)
//	defer unlock()
func (k *KeyedMutex) Lock(key uint) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
