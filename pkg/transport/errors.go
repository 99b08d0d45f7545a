package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionClosed is returned by Next and Send after the connection ended.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrHandshakeTimeout matches every *HandshakeTimeoutError.
	ErrHandshakeTimeout = errors.New("handshake timeout")

	// ErrNoPeerVerifier is returned when a TLS config is built without a trust policy.
	ErrNoPeerVerifier = errors.New("no peer verifier configured")

	// ErrNoClientCertificate is returned when a TLS config is built without an identity.
	ErrNoClientCertificate = errors.New("client certificate is required")
)

// TransportError is a connect, read or write I/O failure.
type TransportError struct {
	Op   string // dial, handshake, read or write
	Addr string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Addr != "" {
		return fmt.Sprintf("transport %s %s: %v", e.Op, e.Addr, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TLSTrustError is a TLS handshake failure: certificate rejected by either
// side, alert from the peer, or the peer hanging up mid-handshake.
type TLSTrustError struct {
	Addr string
	Err  error
}

func (e *TLSTrustError) Error() string {
	return fmt.Sprintf("tls handshake with %s: %v", e.Addr, e.Err)
}

func (e *TLSTrustError) Unwrap() error { return e.Err }

// FramingError reports a corrupted stream: an oversized or malformed length
// prefix, or the stream ending inside a frame.
type FramingError struct {
	Length uint64
	Err    error
}

func (e *FramingError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("framing: length %d: %v", e.Length, e.Err)
	}
	return fmt.Sprintf("framing: %v", e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// HandshakeTimeoutError is returned when a handshake step waited too long for
// the peer's reply.
type HandshakeTimeoutError struct {
	// Waiting names the reply that never arrived.
	Waiting string
}

func (e *HandshakeTimeoutError) Error() string {
	if e.Waiting == "" {
		return ErrHandshakeTimeout.Error()
	}
	return fmt.Sprintf("%s waiting for %s", ErrHandshakeTimeout, e.Waiting)
}

// Is makes errors.Is(err, ErrHandshakeTimeout) true.
func (e *HandshakeTimeoutError) Is(target error) bool {
	return target == ErrHandshakeTimeout
}
