package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// DefaultQueueSize is the default capacity of the response queue.
const DefaultQueueSize = 16

// Route selects where the read loop delivers a decoded message.
type Route uint8

const (
	// RouteQueue delivers the message to Next, for handshake replies.
	RouteQueue Route = iota
	// RouteListener delivers the message to Handler.OnMessage.
	RouteListener
)

// Router classifies an inbound message. A nil Router queues everything.
type Router func(msg wire.Message) Route

// Handler receives read loop callbacks. All callbacks run on the read
// goroutine and must not block on the connection's own queue.
type Handler struct {
	// OnMessage receives messages routed to RouteListener.
	OnMessage func(msg wire.Message)

	// OnDecodeError is called for payloads the codec rejects. The loop
	// keeps reading afterwards.
	OnDecodeError func(err error)

	// OnClosed is called once when the loop ends on its own. err is nil
	// when the peer closed the stream cleanly. It is not called after
	// Close or Abort.
	OnClosed func(err error)
}

// ConnConfig configures a Conn.
type ConnConfig struct {
	// Family selects the message envelope for decoding.
	Family wire.Family

	// Router picks a route for each inbound message.
	Router Router

	// Handler receives read loop callbacks.
	Handler Handler

	// QueueSize is the capacity of the response queue (default: 16).
	QueueSize int

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger

	// ProtocolLogger receives frame and message events. Nil disables it.
	ProtocolLogger log.Logger

	// ConnID correlates protocol events. Generated when empty.
	ConnID string

	// Channel tags protocol events.
	Channel log.Channel
}

// Conn is a framed, message-oriented connection with a single reader
// goroutine. Handshake code pulls replies with Next; steady-state traffic
// is pushed to the Handler.
type Conn struct {
	raw    net.Conn
	addr   string
	config ConnConfig
	codec  wire.Codec
	reader *FrameReader
	writer *FrameWriter

	queue   chan wire.Message
	done    chan struct{}
	abortCh chan struct{}
	aborted atomic.Bool
	err     error // written before done is closed

	abortOnce sync.Once
	closeOnce sync.Once
	closeErr  error
}

// NewConn wraps an established connection and starts its read loop.
func NewConn(raw net.Conn, config ConnConfig) *Conn {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultQueueSize
	}
	if config.ConnID == "" {
		config.ConnID = log.NewConnectionID()
	}

	c := &Conn{
		raw:     raw,
		config:  config,
		codec:   wire.NewCodec(),
		reader:  NewFrameReader(raw),
		writer:  NewFrameWriter(raw),
		queue:   make(chan wire.Message, config.QueueSize),
		done:    make(chan struct{}),
		abortCh: make(chan struct{}),
	}
	if ra := raw.RemoteAddr(); ra != nil {
		c.addr = ra.String()
	}
	if config.ProtocolLogger != nil {
		c.reader.SetLogger(config.ProtocolLogger, config.ConnID, config.Channel)
		c.writer.SetLogger(config.ProtocolLogger, config.ConnID, config.Channel)
	}

	go c.run()
	return c
}

// ID returns the connection ID used in protocol events.
func (c *Conn) ID() string { return c.config.ConnID }

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() string { return c.addr }

// Done is closed when the read loop has exited.
func (c *Conn) Done() <-chan struct{} { return c.done }

// PeerCertificate returns the peer's leaf certificate, or nil when the
// connection is not TLS.
func (c *Conn) PeerCertificate() *x509.Certificate {
	tc, ok := c.raw.(*tls.Conn)
	if !ok {
		return nil
	}
	certs := tc.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return nil
	}
	return certs[0]
}

// Send encodes msg and writes it as one frame.
func (c *Conn) Send(msg wire.Message) error {
	if c.aborted.Load() {
		return ErrConnectionClosed
	}
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	payload, err := c.codec.Encode(msg)
	if err != nil {
		return err
	}
	if err := c.writer.WriteFrame(payload); err != nil {
		var te *TransportError
		if errors.As(err, &te) && te.Addr == "" {
			te.Addr = c.addr
		}
		return err
	}

	c.debugLog("sent", "kind", msg.Kind(), "summary", wire.Summary(msg))
	c.logMessage(msg, log.DirectionOut)
	return nil
}

// Next returns the next queued message. Messages queued before the loop
// ended are still returned. After that it returns the error that ended the
// loop, or ErrConnectionClosed for a clean close. When ctx expires it
// returns a *HandshakeTimeoutError naming waiting.
func (c *Conn) Next(ctx context.Context, waiting string) (wire.Message, error) {
	select {
	case msg := <-c.queue:
		return msg, nil
	default:
	}

	select {
	case msg := <-c.queue:
		return msg, nil
	case <-c.done:
		select {
		case msg := <-c.queue:
			return msg, nil
		default:
		}
		if c.err != nil {
			return nil, c.err
		}
		return nil, ErrConnectionClosed
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &HandshakeTimeoutError{Waiting: waiting}
		}
		return nil, ctx.Err()
	}
}

// Abort stops message delivery. Frames read after this are discarded and
// no callbacks fire. The socket stays open; use Close to release it.
func (c *Conn) Abort() {
	c.abortOnce.Do(func() {
		c.aborted.Store(true)
		close(c.abortCh)
	})
}

// Close aborts the read loop and closes the socket. It is idempotent.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.Abort()
		c.closeErr = c.raw.Close()
		if c.config.ProtocolLogger != nil {
			c.config.ProtocolLogger.Log(log.Event{
				Timestamp:    time.Now(),
				ConnectionID: c.config.ConnID,
				Direction:    log.DirectionOut,
				Layer:        log.LayerTransport,
				Category:     log.CategoryControl,
				Channel:      c.config.Channel,
				RemoteAddr:   c.addr,
				ControlMsg:   &log.ControlMsgEvent{Type: log.ControlMsgClose},
			})
		}
	})
	return c.closeErr
}

func (c *Conn) run() {
	for {
		if c.aborted.Load() {
			c.finish(nil, false)
			return
		}

		payload, err := c.reader.ReadFrame()

		if c.aborted.Load() {
			c.finish(nil, false)
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.debugLog("peer closed connection")
				c.finish(nil, true)
				return
			}
			err = c.classifyReadError(err)
			c.debugLog("read loop ended", "error", err)
			c.logError(err, "read")
			c.finish(err, true)
			return
		}

		msg, err := c.codec.Decode(c.config.Family, payload)
		if err != nil {
			c.debugLog("decode failed", "error", err)
			c.logError(err, "decode")
			if c.config.Handler.OnDecodeError != nil {
				c.config.Handler.OnDecodeError(err)
			}
			continue
		}
		c.debugLog("received", "kind", msg.Kind(), "summary", wire.Summary(msg))
		c.logMessage(msg, log.DirectionIn)

		route := RouteQueue
		if c.config.Router != nil {
			route = c.config.Router(msg)
		}
		switch route {
		case RouteListener:
			if c.config.Handler.OnMessage != nil {
				c.config.Handler.OnMessage(msg)
			}
		default:
			select {
			case c.queue <- msg:
			case <-c.abortCh:
				c.finish(nil, false)
				return
			}
		}
	}
}

func (c *Conn) finish(err error, notify bool) {
	c.err = err
	close(c.done)
	if notify && c.config.Handler.OnClosed != nil {
		c.config.Handler.OnClosed(err)
	}
}

// classifyReadError turns a TLS alert received after the handshake into a
// trust failure. TLS 1.3 servers reject a client certificate only after the
// client has finished its side of the handshake, so the alert surfaces on
// the first read.
func (c *Conn) classifyReadError(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" {
		return &TLSTrustError{Addr: c.addr, Err: opErr}
	}
	var te *TransportError
	if errors.As(err, &te) && te.Addr == "" {
		te.Addr = c.addr
	}
	return err
}

func (c *Conn) logMessage(msg wire.Message, dir log.Direction) {
	if c.config.ProtocolLogger == nil {
		return
	}
	ev := &log.MessageEvent{Kind: msg.Kind().String(), Summary: wire.Summary(msg)}
	if pm, ok := msg.(wire.PairingMessage); ok {
		ev.Status = int(pm.Header().Status)
	}
	c.config.ProtocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.config.ConnID,
		Direction:    dir,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		Channel:      c.config.Channel,
		RemoteAddr:   c.addr,
		Message:      ev,
	})
}

func (c *Conn) logError(err error, op string) {
	if c.config.ProtocolLogger == nil {
		return
	}
	layer := log.LayerTransport
	var codecErr *wire.CodecError
	if errors.As(err, &codecErr) {
		layer = log.LayerWire
	}
	c.config.ProtocolLogger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.config.ConnID,
		Direction:    log.DirectionIn,
		Layer:        layer,
		Category:     log.CategoryError,
		Channel:      c.config.Channel,
		RemoteAddr:   c.addr,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: op,
		},
	})
}

func (c *Conn) debugLog(msg string, args ...any) {
	if c.config.Logger != nil {
		args = append(args, "conn_id", c.config.ConnID, "channel", c.config.Channel)
		c.config.Logger.Debug(msg, args...)
	}
}
