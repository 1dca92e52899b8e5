package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

const (
	MsgSnapshot = "snapshot"
	MsgSample   = "sample"
)

// Message is one frame sent to websocket clients
type Message struct {
	Type          string            `json:"type"`
	SessionID     string            `json:"session_id"`
	TrackingState string            `json:"tracking_state"`
	Sample        domain.GazeSample `json:"sample"`
}

// SnapshotSource provides the state a client receives on connect
type SnapshotSource interface {
	LatestSample() domain.GazeSample
	SessionID() string
}

type client struct {
	conn   *websocket.Conn
	remote string

	// mu guards send against close so a concurrent Publish never
	// writes to a closed channel
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn:   conn,
		remote: conn.RemoteAddr().String(),
		send:   make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// enqueue queues msg without blocking. It returns false only when the
// buffer is full; messages for a closed client are dropped.
func (c *client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// Broadcaster fans recorded samples out to websocket clients.
// It implements ports.SamplePublisher.
type Broadcaster struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	source   SnapshotSource
	maxConns int
}

// NewBroadcaster creates a broadcaster; maxConns <= 0 means unlimited
func NewBroadcaster(source SnapshotSource, maxConns int) *Broadcaster {
	return &Broadcaster{
		clients:  make(map[*client]bool),
		source:   source,
		maxConns: maxConns,
	}
}

// AddClient registers conn and queues the current sample as a snapshot.
// It returns nil if the connection limit is reached.
func (b *Broadcaster) AddClient(conn *websocket.Conn) *client {
	b.mu.Lock()
	if b.maxConns > 0 && len(b.clients) >= b.maxConns {
		b.mu.Unlock()
		return nil
	}
	c := newClient(conn)
	b.clients[c] = true
	b.mu.Unlock()

	data, err := b.encode(MsgSnapshot, b.source.LatestSample())
	if err != nil {
		return c
	}

	// Client too slow, drop the snapshot
	c.enqueue(data)

	return c
}

func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// Publish sends sample to every connected client
func (b *Broadcaster) Publish(sample domain.GazeSample) {
	data, err := b.encode(MsgSample, sample)
	if err != nil {
		return
	}

	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(data) {
			// Client can't keep up, disconnect it
			log.Warn().Str("remote", c.remote).Msg("ws client too slow, disconnecting")
			b.RemoveClient(c)
		}
	}
}

func (b *Broadcaster) encode(msgType string, sample domain.GazeSample) ([]byte, error) {
	data, err := json.Marshal(Message{
		Type:          msgType,
		SessionID:     b.source.SessionID(),
		TrackingState: sample.TrackingState(),
		Sample:        sample,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode ws message")
	}
	return data, err
}

// ClientCount returns the number of connected clients
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every client
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for c := range b.clients {
		delete(b.clients, c)
		c.close()
	}
}
