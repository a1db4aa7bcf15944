// Package socket maintains the push-event subscription to one server. Each
// connection session owns at most one Channel at a time; a session being torn
// down must Close its channel or a replacement channel would double-fire
// events against the removed session.
package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/codewind/cwsync/src/cwsync/internal/clock"
	"github.com/codewind/cwsync/src/cwsync/model"
	"github.com/gorilla/websocket"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

const (
	_backoffMin = 500 * time.Millisecond
	_backoffMax = 30 * time.Second
)

// Handler receives transport edges and decoded events. Implementations must
// tolerate being called from the channel's reader goroutine.
type Handler interface {
	// OnConnect fires once per successful (re)connection.
	OnConnect()
	// OnDisconnect fires once when an established connection drops.
	OnDisconnect()
	// OnEvent receives each decoded push event in server-send order.
	OnEvent(ctx context.Context, event *model.Event)
}

// Channel is a reconnecting subscription to a server's event stream.
type Channel interface {
	// Close tears the subscription down permanently. Safe to call more than
	// once; blocks until the reader goroutine has stopped.
	Close()
}

type channel struct {
	wsURL   string
	header  http.Header
	handler Handler
	clock   clock.Clock
	logger  *zap.SugaredLogger
	stats   tally.Scope
	dialer  *websocket.Dialer

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool

	stop chan struct{}
	done chan struct{}
}

// Params define values used to open a Channel.
type Params struct {
	// BaseURL is the server's http(s) base URL.
	BaseURL string
	// Namespace is the server's socket namespace path, usually "/default".
	Namespace string
	// Header carries extra handshake headers, e.g. Authorization.
	Header  http.Header
	Handler Handler
	Clock   clock.Clock
	Logger  *zap.SugaredLogger
	Stats   tally.Scope
}

// Open starts a channel. It returns immediately; connection establishment
// and all reconnection happens on the channel's own goroutine.
func Open(p Params) Channel {
	c := &channel{
		wsURL:   WebsocketURL(p.BaseURL, p.Namespace),
		header:  p.Header,
		handler: p.Handler,
		clock:   p.Clock,
		logger:  p.Logger,
		stats:   p.Stats.SubScope("socket"),
		dialer:  websocket.DefaultDialer,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.run()
	return c
}

// WebsocketURL converts an http(s) base URL into the ws(s) event endpoint.
func WebsocketURL(baseURL, namespace string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	if namespace == "" {
		namespace = "/default"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + namespace
	return u.String()
}

func (c *channel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.stop)
	if c.conn != nil {
		c.conn.Close()
	}
	c.mu.Unlock()

	<-c.done
}

// run dials, reads until failure, and redials with bounded exponential
// backoff until the channel is closed.
func (c *channel) run() {
	defer close(c.done)
	backoff := _backoffMin

	for {
		if c.isClosed() {
			return
		}

		conn, _, err := c.dialer.Dial(c.wsURL, c.header)
		if err != nil {
			c.stats.Counter("dial_failures").Inc(1)
			c.logger.Debugf("event channel dial %s failed: %v", c.wsURL, err)
			select {
			case <-c.stop:
				return
			case <-c.clock.After(backoff):
			}
			if backoff *= 2; backoff > _backoffMax {
				backoff = _backoffMax
			}
			continue
		}

		if !c.adopt(conn) {
			// Closed while dialing.
			conn.Close()
			return
		}
		backoff = _backoffMin
		c.handler.OnConnect()
		c.readLoop(conn)
		c.handler.OnDisconnect()
	}
}

// adopt publishes the live conn so Close can interrupt the read loop.
func (c *channel) adopt(conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.conn = conn
	return true
}

func (c *channel) readLoop(conn *websocket.Conn) {
	defer conn.Close()
	ctx := context.Background()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !c.isClosed() {
				c.logger.Debugf("event channel %s read failed: %v", c.wsURL, err)
			}
			return
		}

		var event model.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.stats.Counter("undecodable_events").Inc(1)
			c.logger.Errorf("dropping undecodable event from %s: %v", c.wsURL, err)
			continue
		}
		c.stats.Counter("events").Inc(1)
		c.handler.OnEvent(ctx, &event)
	}
}

func (c *channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
