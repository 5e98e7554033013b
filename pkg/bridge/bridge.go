package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/toastkit/toastkit/pkg/toast"
)

// EventName is the message type tag on outbound state frames.
// Client-side code should switch on this field.
const EventName = "toast:state"

// stateFrame is the wire shape of one outbound snapshot.
type stateFrame struct {
	Type   string        `json:"type"`
	Toasts []toast.Toast `json:"toasts"`
}

// clientOp is the wire shape of inbound client messages.
type clientOp struct {
	Op string `json:"op"`
	ID string `json:"id,omitempty"`
}

// Config configures a Bridge.
type Config struct {
	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// SendBuffer is the per-client outbound queue length. When a
	// client's queue is full the frame is dropped for that client
	// rather than blocking fan-out (default: 16).
	SendBuffer int

	// CheckOrigin validates the WebSocket handshake origin.
	// nil uses gorilla's same-origin default.
	CheckOrigin func(r *http.Request) bool

	// Logger receives connection lifecycle and error reports.
	Logger *slog.Logger
}

// Option configures a Bridge.
type Option func(*Config)

// WithSendBuffer sets the per-client outbound queue length.
func WithSendBuffer(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.SendBuffer = n
		}
	}
}

// WithCheckOrigin sets the WebSocket origin check.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(c *Config) {
		c.CheckOrigin = fn
	}
}

// WithLogger sets the bridge logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// Bridge relays toast state to WebSocket clients. Every dispatch on
// the store fans out as one JSON snapshot frame; inbound messages map
// to the store's public dismiss/remove operations so UI-driven closes
// flow back through the engine.
type Bridge struct {
	store      *toast.Store
	upgrader   websocket.Upgrader
	logger     *slog.Logger
	sendBuffer int

	mu          sync.Mutex
	clients     map[*client]struct{}
	unsubscribe func()
	closed      bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a Bridge subscribed to the store. Call Close to detach
// it and drop all connections.
func New(store *toast.Store, opts ...Option) *Bridge {
	config := Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		SendBuffer:      16,
		Logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&config)
	}

	b := &Bridge{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:     config.Logger,
		sendBuffer: config.SendBuffer,
		clients:    make(map[*client]struct{}),
	}
	b.unsubscribe = store.Subscribe(b.broadcast)
	return b
}

// broadcast encodes one snapshot and queues it to every client.
func (b *Bridge) broadcast(st toast.State) {
	frame, err := json.Marshal(stateFrame{Type: EventName, Toasts: st.Toasts})
	if err != nil {
		b.logger.Error("state encode error", "error", err)
		return
	}

	b.mu.Lock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.Unlock()

	for _, c := range clients {
		if !c.trySend(frame) {
			// Slow consumer; drop the frame. The next dispatch carries
			// the full state anyway, snapshots are not deltas.
			b.logger.Debug("dropping state frame for slow client")
		}
	}
}

// trySend queues a frame without blocking. A concurrent Close may have
// closed the channel after the caller snapshotted the client list, so
// the send panic is recovered and reported as a drop.
func (c *client) trySend(frame []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// ServeWS upgrades the request and serves the client until it
// disconnects. It blocks for the lifetime of the connection.
func (b *Bridge) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, b.sendBuffer),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.clients[c] = struct{}{}
	b.mu.Unlock()

	// Seed the client with the current state so it does not wait for
	// the next dispatch to render.
	if frame, err := json.Marshal(stateFrame{Type: EventName, Toasts: b.store.State().Toasts}); err == nil {
		c.trySend(frame)
	}

	go b.writeLoop(c)
	b.readLoop(c)
}

// readLoop consumes client ops until the connection closes.
func (b *Bridge) readLoop(c *client) {
	defer b.drop(c)

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				b.logger.Error("read error", "error", err)
			}
			return
		}

		var op clientOp
		if err := json.Unmarshal(msg, &op); err != nil {
			b.logger.Warn("invalid client message", "error", err)
			continue
		}

		switch op.Op {
		case "dismiss":
			if op.ID == "" {
				b.store.DismissAll()
			} else {
				b.store.Dismiss(op.ID)
			}
		case "remove":
			if op.ID != "" {
				b.store.Remove(op.ID)
			}
		default:
			b.logger.Warn("unknown client op", "op", op.Op)
		}
	}
}

// writeLoop drains the client's queue onto the connection.
func (b *Bridge) writeLoop(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			b.logger.Debug("write error", "error", err)
			c.conn.Close()
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

// drop unregisters a client and tears down its connection.
func (b *Bridge) drop(c *client) {
	b.mu.Lock()
	_, ok := b.clients[c]
	if ok {
		delete(b.clients, c)
	}
	b.mu.Unlock()
	if ok {
		close(c.send)
	}
}

// ClientCount returns the number of connected clients.
func (b *Bridge) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close detaches the bridge from the store and disconnects every
// client. Safe to call more than once.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.clients = make(map[*client]struct{})
	b.mu.Unlock()

	b.unsubscribe()
	for _, c := range clients {
		close(c.send)
	}
}
