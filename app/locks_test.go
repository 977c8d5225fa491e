package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLocksSerialize(t *testing.T) {
	kl := newKeyedLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := kl.Acquire([]string{"k"})
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, counter)
}

func TestKeyedLocksOverlappingSets(t *testing.T) {
	kl := newKeyedLocks()

	// overlapping key sets acquired in opposite order must not deadlock
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := kl.Acquire([]string{"a", "b"})
			release()
		}()
		go func() {
			defer wg.Done()
			release := kl.Acquire([]string{"b", "a"})
			release()
		}()
	}
	wg.Wait()
}

func TestKeyedLocksDuplicateKeys(t *testing.T) {
	kl := newKeyedLocks()

	// duplicate keys in one request must not self-deadlock
	release := kl.Acquire([]string{"x", "x", "x"})
	release()

	release = kl.Acquire([]string{"x"})
	release()
}
