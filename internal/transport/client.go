package transport

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Client is the core's outbound half of the EDL wire protocol: it sends
// Commands and hands validated Events to a Handler. One Client serves one
// transport backend connection.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	log  zerolog.Logger

	handler Handler
}

// Handler receives events as they arrive off the connection, already
// decoded and validated. It is invoked from the client's single read loop
// goroutine and must not block it for long.
type Handler func(Event)

// Dial opens a websocket connection to the transport backend at url and
// starts its read loop, delivering validated events to handler. Malformed
// frames are logged and dropped, never delivered to handler (§7).
func Dial(url string, handler Handler, log zerolog.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	c := &Client{conn: conn, log: log, handler: handler}
	go c.readLoop()
	return c, nil
}

// NewClient wraps an already-established websocket connection, e.g. one
// accepted by an http.Handler upgrading an inbound request.
func NewClient(conn *websocket.Conn, handler Handler, log zerolog.Logger) *Client {
	c := &Client{conn: conn, log: log, handler: handler}
	go c.readLoop()
	return c
}

// Send writes a single Command as one JSON frame. Safe for concurrent use.
func (c *Client) Send(cmd Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(cmd)
}

// Close terminates the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) readLoop() {
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.log.Debug().Err(err).Msg("transport: connection closed")
			return
		}
		ev, err := UnmarshalEvent(raw)
		if err != nil {
			c.log.Warn().Err(err).Str("raw", string(raw)).Msg("transport: dropping malformed event")
			continue
		}
		c.handler(ev)
	}
}
