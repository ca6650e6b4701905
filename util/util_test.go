package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter()
	seen := make(chan uint64, 100)
	wg := new(sync.WaitGroup)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Next()
		}()
	}
	wg.Wait()
	close(seen)

	ids := make(map[uint64]bool)
	for id := range seen {
		ids[id] = true
	}
	assert.Len(t, ids, 100)
	assert.Equal(t, uint64(100), c.Next())
}
