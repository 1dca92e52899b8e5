package ws

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// addTestClient registers a client with no connection behind it and drains
// its queue until close.
func addTestClient(b *Broadcaster) *client {
	c := &client{remote: "test", send: make(chan []byte, 64)}
	go func() {
		for range c.send {
		}
	}()
	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()
	return c
}

func TestClient_EnqueueAfterClose(t *testing.T) {
	c := &client{remote: "test", send: make(chan []byte, 1)}
	c.close()

	assert.NotPanics(t, func() {
		assert.True(t, c.enqueue([]byte("late")))
		c.close()
	})
}

func TestClient_EnqueueFullBuffer(t *testing.T) {
	c := &client{remote: "test", send: make(chan []byte, 1)}

	assert.True(t, c.enqueue([]byte("first")))
	assert.False(t, c.enqueue([]byte("second")))
}

func TestBroadcaster_PublishConcurrentWithRemove(t *testing.T) {
	b := NewBroadcaster(&staticSource{}, 0)

	for round := 0; round < 200; round++ {
		c := addTestClient(b)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				b.Publish(domain.GazeSample{DeviceTimestampUS: int64(i)})
			}
		}()
		go func() {
			defer wg.Done()
			b.RemoveClient(c)
		}()

		assert.NotPanics(t, wg.Wait)
	}
	assert.Equal(t, 0, b.ClientCount())
}

func TestBroadcaster_PublishConcurrentWithClose(t *testing.T) {
	b := NewBroadcaster(&staticSource{}, 0)
	for i := 0; i < 8; i++ {
		addTestClient(b)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Publish(domain.GazeSample{})
			}
		}()
	}
	b.Close()
	wg.Wait()

	assert.Equal(t, 0, b.ClientCount())
}
