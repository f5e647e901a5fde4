package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameKeySerializes(t *testing.T) {
	req := require.New(t)

	kl := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("offer:1:2580")
			counter++
			kl.Unlock("offer:1:2580")
		}()
	}
	wg.Wait()

	req.Equal(64, counter)
	req.Empty(kl.entries)
}

func TestDistinctKeysDoNotBlock(t *testing.T) {
	kl := New()

	kl.Lock("a")
	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()
	<-done
	kl.Unlock("a")
}

func TestUnlockUnheldPanics(t *testing.T) {
	req := require.New(t)

	kl := New()
	req.Panics(func() { kl.Unlock("nope") })
}
