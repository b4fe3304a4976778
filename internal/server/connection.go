package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/randkit/rng"
)

const writeTimeout = 10 * time.Second

// floater is any source offering a direct restricted-precision double.
type floater interface {
	Float64() float64
}

// Connection serves draw requests for one websocket client. Each connection
// clones the server's stream prototypes on first use, so clients never share
// generator state and fixed-seed streams replay identically per connection.
type Connection struct {
	conn      *websocket.Conn
	server    *Server
	logger    *log.Logger
	clock     quartz.Clock
	sources   map[string]rng.Source
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper around an upgraded websocket.
func NewConnection(conn *websocket.Conn, srv *Server, logger *log.Logger, clock quartz.Clock) *Connection {
	return &Connection{
		conn:    conn,
		server:  srv,
		logger:  logger.WithPrefix("conn"),
		clock:   clock,
		sources: make(map[string]rng.Source),
	}
}

// Close closes the underlying websocket once.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}

// readLoop handles requests until the client disconnects. Responses are
// written inline: the protocol is strictly request/response.
func (c *Connection) readLoop() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.ctx.Done():
		}
	}()

	for {
		var req DrawRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("Read failed", "error", err)
			}
			return
		}

		resp := c.handle(&req)
		_ = c.conn.SetWriteDeadline(c.clock.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(resp); err != nil {
			c.logger.Warn("Write failed", "error", err)
			return
		}
	}
}

// handle produces the response for one draw request.
func (c *Connection) handle(req *DrawRequest) *DrawResponse {
	resp := &DrawResponse{Stream: req.Stream, RequestID: req.RequestID}

	src, err := c.source(req.Stream)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Tag = src.Tag()

	limit := c.server.maxBatch(req.Stream)
	if req.Count < 1 || req.Count > limit {
		resp.Error = fmt.Sprintf("count must be between 1 and %d", limit)
		return resp
	}

	switch req.Format {
	case "", "u64":
		resp.Values = make([]string, req.Count)
		for i := range resp.Values {
			resp.Values[i] = fmt.Sprintf("%016x", src.Uint64())
		}
	case "float":
		resp.Floats = make([]float64, req.Count)
		for i := range resp.Floats {
			if f, ok := src.(floater); ok {
				resp.Floats[i] = f.Float64()
			} else {
				resp.Floats[i] = float64(src.Uint64()>>11) / (1 << 53)
			}
		}
	default:
		resp.Error = fmt.Sprintf("unknown format %q", req.Format)
	}
	return resp
}

// source returns this connection's generator for the named stream, cloning
// the server prototype on first use.
func (c *Connection) source(name string) (rng.Source, error) {
	if src, ok := c.sources[name]; ok {
		return src, nil
	}
	proto, ok := c.server.prototype(name)
	if !ok {
		return nil, fmt.Errorf("unknown stream %q", name)
	}
	src := proto.Clone()
	c.sources[name] = src
	return src, nil
}
