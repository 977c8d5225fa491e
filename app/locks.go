package app

import (
	"sort"
	"sync"
)

// LockKeyer is implemented by messages that declare which serialization
// domains they touch. Messages without it fall back to signer-derived
// keys.
type LockKeyer interface {
	LockKeys() []string
}

// keyedLocks is a grow-only table of named mutexes. Acquire takes the
// requested locks in sorted order so that two concurrent acquisitions
// of overlapping key sets can not deadlock.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (kl *keyedLocks) lockFor(key string) *sync.Mutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	l, ok := kl.locks[key]
	if !ok {
		l = new(sync.Mutex)
		kl.locks[key] = l
	}
	return l
}

// Acquire locks every key and returns the matching release function.
func (kl *keyedLocks) Acquire(keys []string) (release func()) {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		l := kl.lockFor(key)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
