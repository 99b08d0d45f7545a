package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"time"
)

// Dialer defaults.
const (
	DefaultDialTimeout = 10 * time.Second
	DefaultKeepAlive   = 30 * time.Second
)

// DialerConfig configures a Dialer.
type DialerConfig struct {
	// Timeout bounds the TCP connect (default: 10s). The TLS handshake is
	// bounded by the caller's context.
	Timeout time.Duration

	// KeepAlive is the TCP keep-alive period (default: 30s).
	KeepAlive time.Duration
}

// Dialer opens mutually authenticated TLS connections to a TV.
type Dialer struct {
	config    DialerConfig
	tlsConfig *tls.Config
}

// NewDialer creates a dialer using tlsConfig for every connection.
func NewDialer(tlsConfig *tls.Config, config DialerConfig) *Dialer {
	if config.Timeout == 0 {
		config.Timeout = DefaultDialTimeout
	}
	if config.KeepAlive == 0 {
		config.KeepAlive = DefaultKeepAlive
	}
	return &Dialer{config: config, tlsConfig: tlsConfig}
}

// Dial connects to ep and completes the TLS handshake.
//
// Connect failures are returned as *TransportError. Handshake failures,
// including the peer hanging up or rejecting our certificate, are returned
// as *TLSTrustError, except timeouts and cancellation which stay
// *TransportError.
func (d *Dialer) Dial(ctx context.Context, ep Endpoint) (*tls.Conn, error) {
	if err := ep.Validate(); err != nil {
		return nil, &TransportError{Op: "dial", Addr: ep.String(), Err: err}
	}
	addr := ep.String()

	nd := &net.Dialer{Timeout: d.config.Timeout, KeepAlive: d.config.KeepAlive}
	raw, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &TransportError{Op: "dial", Addr: addr, Err: err}
	}
	if tcp, ok := raw.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}

	tlsConn := tls.Client(raw, d.tlsConfig)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		raw.Close()
		return nil, classifyHandshakeError(ctx, addr, err)
	}
	return tlsConn, nil
}

func classifyHandshakeError(ctx context.Context, addr string, err error) error {
	if ctx.Err() != nil {
		return &TransportError{Op: "handshake", Addr: addr, Err: ctx.Err()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Op: "handshake", Addr: addr, Err: err}
	}
	return &TLSTrustError{Addr: addr, Err: err}
}
