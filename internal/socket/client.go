package socket

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ytget/ws-tester/internal/logger"
	"github.com/ytget/ws-tester/internal/model"
)

// Timeouts
const (
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
	DefaultCloseTimeout     = 3 * time.Second
)

// Client is a Socket backed by gorilla/websocket. It owns at most one
// connection at a time.
type Client struct {
	logger       zerolog.Logger
	events       *dispatcher
	writeTimeout time.Duration
	closeTimeout time.Duration

	mu       sync.Mutex
	state    model.ConnState
	conn     *websocket.Conn
	cancel   context.CancelFunc
	closing  bool // close was requested locally
	pingSent time.Time
	handlers Handlers

	// closes the connection if the peer never answers our close frame
	closeTimer *time.Timer

	writeMu sync.Mutex
}

// NewClient creates an unconnected client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		logger:       logger.Component(log, "socket"),
		events:       newDispatcher(),
		writeTimeout: DefaultWriteTimeout,
		closeTimeout: DefaultCloseTimeout,
		state:        model.StateUnconnected,
	}
}

// SetHandlers replaces the event callbacks
func (c *Client) SetHandlers(h Handlers) {
	c.mu.Lock()
	c.handlers = h
	c.mu.Unlock()
}

// State returns the current connection state
func (c *Client) State() model.ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Open starts connecting to u. It returns once the attempt has started; the
// outcome is reported through Handlers.
func (c *Client) Open(u *url.URL, opts OpenOptions) error {
	if u == nil {
		return ErrEmptyURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsIdle() {
		return ErrAlreadyOpen
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.closing = false
	c.setStateLocked(model.StateConnecting)

	c.logger.Info().Str(logger.FieldURL, u.String()).Strs("subprotocols", opts.Subprotocols).Msg("connecting")

	go c.dial(ctx, u.String(), opts)
	return nil
}

// Close closes the connection with a normal close frame, or abandons a
// connection attempt in progress. It is a no-op when unconnected.
func (c *Client) Close() error {
	c.mu.Lock()

	switch c.state {
	case model.StateConnecting:
		c.closing = true
		cancel := c.cancel
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		c.logger.Debug().Msg("connection attempt abandoned")
		return nil

	case model.StateConnected:
		c.closing = true
		conn := c.conn
		c.setStateLocked(model.StateClosing)

		// The read loop completes the teardown on the peer's close reply.
		// Close and WriteControl are the only Conn methods safe to call
		// next to a running reader, so the timeout closes the connection
		// instead of setting a read deadline.
		c.closeTimer = time.AfterFunc(c.closeTimeout, func() {
			c.logger.Debug().Msg("close timed out")
			_ = conn.Close()
		})
		c.mu.Unlock()

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		deadline := time.Now().Add(c.closeTimeout)
		if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
			c.logger.Debug().Err(err).Msg("close frame not sent")
			_ = conn.Close()
		}
		return nil

	default:
		c.mu.Unlock()
		return nil
	}
}

// SendText sends message as a single text frame
func (c *Client) SendText(message string) error {
	conn, err := c.openConn()
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return fmt.Errorf("send text message: %w", err)
	}

	c.logger.Debug().Int("bytes", len(message)).Msg("text message sent")
	return nil
}

// Ping sends a ping control frame. The matching pong is reported through
// Handlers.OnPong with the elapsed time.
func (c *Client) Ping(payload []byte) error {
	conn, err := c.openConn()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.pingSent = time.Now()
	c.mu.Unlock()

	if err := conn.WriteControl(websocket.PingMessage, payload, time.Now().Add(c.writeTimeout)); err != nil {
		return fmt.Errorf("send ping: %w", err)
	}
	return nil
}

// Shutdown drops any connection without a close handshake and stops event
// delivery. It must not be called from a handler.
func (c *Client) Shutdown() {
	c.mu.Lock()
	c.closing = true
	conn := c.conn
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
	c.events.stop()
}

func (c *Client) openConn() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != model.StateConnected || c.conn == nil {
		return nil, ErrNotConnected
	}
	return c.conn, nil
}

func (c *Client) dial(ctx context.Context, target string, opts OpenOptions) {
	timeout := opts.HandshakeTimeout
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
		Subprotocols:     opts.Subprotocols,
		TLSClientConfig:  opts.TLSConfig,
	}

	conn, resp, err := dialer.DialContext(ctx, target, opts.Header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c.mu.Lock()
	h := c.handlers

	if err != nil {
		aborted := c.closing
		c.resetLocked()
		if !aborted {
			if resp != nil {
				err = fmt.Errorf("%w (HTTP %d)", err, resp.StatusCode)
			}
			kind := Classify(err)
			c.logger.Warn().Err(err).Str("kind", kind.String()).Msg("connection failed")
			c.events.post(func() { h.error(kind, err) })
		}
		c.setStateLocked(model.StateUnconnected)
		c.mu.Unlock()
		return
	}

	if c.closing {
		c.resetLocked()
		c.setStateLocked(model.StateUnconnected)
		c.mu.Unlock()
		_ = conn.Close()
		return
	}

	c.conn = conn
	conn.SetPongHandler(c.handlePong)
	c.setStateLocked(model.StateConnected)
	subprotocol := conn.Subprotocol()
	c.events.post(func() { h.connected(subprotocol) })
	c.mu.Unlock()

	c.logger.Info().Str("subprotocol", subprotocol).Msg("connected")
	c.readLoop(conn)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			c.teardown(conn, err)
			return
		}

		c.mu.Lock()
		h := c.handlers
		switch messageType {
		case websocket.TextMessage:
			message := string(payload)
			c.events.post(func() { h.text(message) })
		case websocket.BinaryMessage:
			c.events.post(func() { h.binary(payload) })
		}
		c.mu.Unlock()
	}
}

func (c *Client) teardown(conn *websocket.Conn, err error) {
	_ = conn.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.handlers
	local := c.closing
	c.resetLocked()

	if !local && !isNormalClose(err) {
		kind := Classify(err)
		c.logger.Warn().Err(err).Str("kind", kind.String()).Msg("connection lost")
		c.events.post(func() { h.error(kind, err) })
	} else {
		c.logger.Info().Msg("disconnected")
	}

	c.setStateLocked(model.StateUnconnected)
	c.events.post(h.disconnected)
}

func (c *Client) handlePong(appData string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var elapsed time.Duration
	if !c.pingSent.IsZero() {
		elapsed = time.Since(c.pingSent)
	}
	h := c.handlers
	payload := []byte(appData)
	c.events.post(func() { h.pong(elapsed, payload) })
	c.logger.Debug().Dur("elapsed", elapsed).Msg("pong")
	return nil
}

// resetLocked forgets the current connection. c.mu must be held.
func (c *Client) resetLocked() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.closeTimer != nil {
		c.closeTimer.Stop()
	}
	c.closeTimer = nil
	c.cancel = nil
	c.conn = nil
	c.closing = false
	c.pingSent = time.Time{}
}

// setStateLocked records a state change and queues its notification. c.mu must be held.
func (c *Client) setStateLocked(state model.ConnState) {
	if c.state == state {
		return
	}
	c.state = state
	h := c.handlers
	c.logger.Debug().Str(logger.FieldState, state.String()).Msg("state changed")
	c.events.post(func() { h.stateChanged(state) })
}
