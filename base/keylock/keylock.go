// Package keylock serializes operations per key while letting distinct keys
// proceed concurrently. Settlement holds the lock of an offer id for the
// whole accept/cancel call, which is what makes the isSelling check and the
// ledger moves one atomic unit from the callers' point of view.
package keylock

import (
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{
		entries: make(map[string]*entry),
	}
}

// Lock acquires the lock of key, blocking while another holder has it.
func (kl *KeyLock) Lock(key string) {
	kl.mu.Lock()
	e, ok := kl.entries[key]
	if !ok {
		e = &entry{}
		kl.entries[key] = e
	}
	e.refs++
	kl.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock of key. The entry is dropped once no goroutine
// holds or waits for it.
func (kl *KeyLock) Unlock(key string) {
	kl.mu.Lock()
	e, ok := kl.entries[key]
	if !ok {
		kl.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(kl.entries, key)
	}
	kl.mu.Unlock()

	e.mu.Unlock()
}
