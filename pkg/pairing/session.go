package pairing

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// Defaults.
const (
	DefaultServiceName      = "atvremote"
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultSecretTimeout    = 2 * time.Minute
)

// IdentitySource supplies the client certificate and the trust policy.
// *identity.Provider implements it.
type IdentitySource interface {
	GetOrCreateIdentity() (*identity.Identity, error)
	PeerTrustPolicy() identity.TrustPolicy
}

// Config configures a pairing session.
type Config struct {
	// ServiceName identifies the client application to the TV.
	ServiceName string

	// ClientName is shown on the TV (default: hostname).
	ClientName string

	// HandshakeTimeout bounds each wait for a TV reply (default: 10s).
	HandshakeTimeout time.Duration

	// SecretTimeout bounds the wait for the user to enter the code
	// (default: 2m).
	SecretTimeout time.Duration

	// Dialer configures the TCP connection.
	Dialer transport.DialerConfig

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger

	// ProtocolLogger receives frame, message and state events. Nil
	// disables it.
	ProtocolLogger log.Logger
}

// DefaultConfig returns the default pairing configuration.
func DefaultConfig() Config {
	host, _ := os.Hostname()
	return Config{
		ServiceName:      DefaultServiceName,
		ClientName:       host,
		HandshakeTimeout: DefaultHandshakeTimeout,
		SecretTimeout:    DefaultSecretTimeout,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}
	if c.HandshakeTimeout <= 0 {
		return fmt.Errorf("handshake timeout must be positive")
	}
	if c.SecretTimeout <= 0 {
		return fmt.Errorf("secret timeout must be positive")
	}
	return nil
}

// Session runs one pairing attempt. It is not reusable.
type Session struct {
	config Config
	source IdentitySource

	mu        sync.Mutex
	state     State
	conn      *transport.Conn
	clientKey *rsa.PublicKey
	serverKey *rsa.PublicKey
	closed    bool

	secretCh chan []byte
	closeCh  chan struct{}
	connID   string
}

// NewSession creates a pairing session. Zero config fields take defaults.
func NewSession(source IdentitySource, config Config) (*Session, error) {
	if source == nil {
		return nil, fmt.Errorf("identity source is required")
	}
	def := DefaultConfig()
	if config.ServiceName == "" {
		config.ServiceName = def.ServiceName
	}
	if config.ClientName == "" {
		config.ClientName = def.ClientName
	}
	if config.HandshakeTimeout == 0 {
		config.HandshakeTimeout = def.HandshakeTimeout
	}
	if config.SecretTimeout == 0 {
		config.SecretTimeout = def.SecretTimeout
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		config:   config,
		source:   source,
		secretCh: make(chan []byte, 1),
		closeCh:  make(chan struct{}),
		connID:   log.NewConnectionID(),
	}, nil
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pair connects to ep and runs the handshake until the TV accepts the
// code, rejects it, or ends the session. It blocks for the whole exchange,
// including the time the user needs to read the code.
//
// It returns nil once paired, ErrAborted when the TV ended the session,
// ErrSessionClosed after Close, and otherwise the error also passed to
// listener.OnError. The connection is closed before any callback reports
// the outcome.
func (s *Session) Pair(ctx context.Context, ep transport.Endpoint, listener Listener) error {
	if listener == nil {
		listener = NopListener{}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.mu.Unlock()
	s.setState(StateConnecting, ep.String())

	err := s.run(ctx, ep, listener)
	s.closeConn()

	switch {
	case err == nil:
		s.setState(StatePaired, "")
		listener.OnPaired()
		return nil
	case s.isClosed():
		s.setState(StateAborted, "closed locally")
		return ErrSessionClosed
	case errors.Is(err, transport.ErrConnectionClosed):
		s.setState(StateAborted, "session ended by TV")
		listener.OnSessionEnded()
		return ErrAborted
	default:
		s.setState(StateErrored, err.Error())
		listener.OnError(err)
		return err
	}
}

func (s *Session) run(ctx context.Context, ep transport.Endpoint, listener Listener) error {
	id, err := s.source.GetOrCreateIdentity()
	if err != nil {
		return err
	}
	tlsConfig, err := transport.NewClientTLSConfig(id.TLSCertificate(), s.source.PeerTrustPolicy())
	if err != nil {
		return err
	}

	tlsConn, err := transport.NewDialer(tlsConfig, s.config.Dialer).Dial(ctx, ep)
	if err != nil {
		return err
	}
	conn := transport.NewConn(tlsConn, transport.ConnConfig{
		Family:         wire.FamilyPairing,
		Logger:         s.config.Logger,
		ProtocolLogger: s.config.ProtocolLogger,
		ConnID:         s.connID,
		Channel:        log.ChannelPairing,
	})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return ErrSessionClosed
	}
	s.conn = conn
	s.clientKey = id.PublicKey()
	s.mu.Unlock()

	peer := conn.PeerCertificate()
	if peer == nil {
		return ErrUnsupportedKey
	}
	serverKey, ok := peer.PublicKey.(*rsa.PublicKey)
	if !ok {
		return ErrUnsupportedKey
	}
	s.mu.Lock()
	s.serverKey = serverKey
	s.mu.Unlock()

	// Session request.
	s.setState(StateAwaitingSessionAck, "")
	if err := conn.Send(wire.NewPairingRequest(s.config.ServiceName, s.config.ClientName)); err != nil {
		return err
	}
	ack, err := s.await(ctx, conn, "pairing request ack", wire.KindPairingRequestAck)
	if err != nil {
		return err
	}
	s.debugLog("pairing session created", "server_name", ack.(*wire.PairingRequestAck).ServerName)
	listener.OnSessionCreated()

	// Role negotiation. This client only ever takes the output role.
	s.setState(StateAwaitingRole, "")
	if err := conn.Send(wire.NewPairingOption(wire.RoleOutput, wire.HexEncoding)); err != nil {
		return err
	}
	opt, err := s.await(ctx, conn, "pairing option", wire.KindPairingOption)
	if err != nil {
		return err
	}
	if role := opt.(*wire.PairingOption).PreferredRole; role == wire.RoleInput {
		s.debugLog("TV asked this client to act as input device; ignored")
	}
	if err := conn.Send(wire.NewPairingConfiguration(wire.RoleOutput, wire.HexEncoding)); err != nil {
		return err
	}
	if _, err := s.await(ctx, conn, "pairing configuration ack", wire.KindPairingConfigurationAck); err != nil {
		return err
	}

	// The TV now shows the code.
	s.setState(StateAwaitingSecretPrompt, "")
	listener.OnSecretRequested()
	secret, err := s.waitSecret(ctx, conn)
	if err != nil {
		return err
	}

	s.setState(StateSecretSubmitted, "")
	if err := conn.Send(wire.NewPairingSecret(secret)); err != nil {
		return err
	}
	if _, err := s.await(ctx, conn, "pairing secret ack", wire.KindPairingSecretAck); err != nil {
		return err
	}
	return nil
}

// await waits for the next meaningful message and checks that it is of
// kind want with status OK. Empty and unknown messages are skipped.
func (s *Session) await(ctx context.Context, conn *transport.Conn, waiting string, want wire.Kind) (wire.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.HandshakeTimeout)
	defer cancel()

	for {
		msg, err := conn.Next(ctx, waiting)
		if err != nil {
			return nil, err
		}
		if err := s.check(msg, waiting, want); err != nil {
			if errors.Is(err, errSkip) {
				continue
			}
			return nil, err
		}
		return msg, nil
	}
}

var errSkip = errors.New("skip")

func (s *Session) check(msg wire.Message, waiting string, want wire.Kind) error {
	switch msg.Kind() {
	case wire.KindEmpty, wire.KindUnknown:
		s.debugLog("ignoring message", "kind", msg.Kind(), "waiting", waiting)
		return errSkip
	}
	if pm, ok := msg.(wire.PairingMessage); ok && !pm.Header().OK() {
		return &ProtocolError{Waiting: waiting, Status: pm.Header().Status, Got: msg.Kind()}
	}
	if msg.Kind() != want {
		return &ProtocolError{Waiting: waiting, Got: msg.Kind()}
	}
	return nil
}

func (s *Session) waitSecret(ctx context.Context, conn *transport.Conn) ([]byte, error) {
	timer := time.NewTimer(s.config.SecretTimeout)
	defer timer.Stop()

	for {
		select {
		case secret := <-s.secretCh:
			return secret, nil
		case <-s.closeCh:
			return nil, ErrSessionClosed
		case <-conn.Done():
			// The loop ended; surface whatever the TV sent last, or why
			// the connection dropped.
			msg, err := conn.Next(ctx, "pairing secret")
			if err != nil {
				return nil, err
			}
			if err := s.check(msg, "pairing secret", wire.KindUnknown); err != nil && !errors.Is(err, errSkip) {
				return nil, err
			}
		case <-timer.C:
			return nil, &transport.HandshakeTimeoutError{Waiting: "pairing secret"}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// ProvideSecret hands the code shown on the TV to the waiting session. The
// code is checked locally first: ErrInvalidSecret for a malformed code,
// ErrSecretMismatch for a typo. On either error the session keeps waiting
// and ProvideSecret may be called again.
func (s *Session) ProvideSecret(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingSecretPrompt {
		if _, err := NormalizeCode(code); err != nil {
			return err
		}
		return ErrNotAwaitingSecret
	}
	secret, err := ComputeSecret(s.clientKey, s.serverKey, code)
	if err != nil {
		return err
	}
	select {
	case s.secretCh <- secret:
		return nil
	default:
		return ErrNotAwaitingSecret
	}
}

// Close interrupts the session and releases the connection. It is
// idempotent and safe before Pair.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.closeCh)
	conn := s.conn
	s.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

func (s *Session) closeConn() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) setState(next State, reason string) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()

	s.debugLog("pairing state", "from", prev, "to", next)
	if s.config.ProtocolLogger != nil {
		s.config.ProtocolLogger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: s.connID,
			Layer:        log.LayerSession,
			Category:     log.CategoryState,
			Channel:      log.ChannelPairing,
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityPairing,
				OldState: prev.String(),
				NewState: next.String(),
				Reason:   reason,
			},
		})
	}
}

func (s *Session) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}
