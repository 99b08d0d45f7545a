package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/connection"
	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// Defaults.
const (
	DefaultCode1            = 622
	DefaultActiveCode       = 622
	DefaultHandshakeTimeout = 10 * time.Second
)

// DefaultDeviceInfo is what the client reports about itself. TVs show the
// model and vendor in their list of connected remotes.
var DefaultDeviceInfo = wire.DeviceInfo{
	Model:       "ROG Strix G531GT_G531GT",
	Vendor:      "ASUSTeK COMPUTER INC.",
	Unknown1:    1,
	Unknown2:    "1",
	PackageName: "atvremote",
	AppVersion:  "1.0.0",
}

// IdentitySource supplies the client certificate and the trust policy.
// *identity.Provider implements it.
type IdentitySource interface {
	GetOrCreateIdentity() (*identity.Identity, error)
	PeerTrustPolicy() identity.TrustPolicy
}

// Config configures a remote session.
type Config struct {
	// Code1 is sent in RemoteConfigure (default: 622).
	Code1 int32

	// ActiveCode is sent in RemoteSetActive (default: 622).
	ActiveCode int32

	// DeviceInfo describes this client (default: DefaultDeviceInfo).
	DeviceInfo wire.DeviceInfo

	// HandshakeTimeout bounds each wait for a TV reply (default: 10s).
	HandshakeTimeout time.Duration

	// Dialer configures the TCP connection.
	Dialer transport.DialerConfig

	// Retry bounds AttemptToReconnect (default: 5 attempts with backoff).
	Retry connection.RetryPolicy

	// Watchdog detects a silent TV. A zero PingInterval disables it.
	Watchdog transport.WatchdogConfig

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger

	// ProtocolLogger receives frame, message and state events. Nil
	// disables it.
	ProtocolLogger log.Logger
}

// DefaultConfig returns the default remote configuration.
func DefaultConfig() Config {
	return Config{
		Code1:            DefaultCode1,
		ActiveCode:       DefaultActiveCode,
		DeviceInfo:       DefaultDeviceInfo,
		HandshakeTimeout: DefaultHandshakeTimeout,
		Retry:            connection.DefaultRetryPolicy(),
		Watchdog:         transport.DefaultWatchdogConfig(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.HandshakeTimeout <= 0 {
		return fmt.Errorf("handshake timeout must be positive")
	}
	if err := c.Retry.Validate(); err != nil {
		return fmt.Errorf("retry policy: %w", err)
	}
	if c.Watchdog.PingInterval < 0 || c.Watchdog.MaxMissedPings < 0 {
		return fmt.Errorf("watchdog settings must not be negative")
	}
	return nil
}

// Session is a remote-control session with one TV. It can be reconnected
// after a failure but not after Close.
type Session struct {
	config   Config
	source   IdentitySource
	endpoint transport.Endpoint
	listener Listener
	retrier  *connection.Retrier

	mu          sync.Mutex
	state       State
	conn        *transport.Conn
	watchdog    *transport.PingWatchdog
	established bool
	closed      bool
}

// NewSession creates a session for the remote port at ep. Zero config
// fields take defaults, except Watchdog.
func NewSession(source IdentitySource, ep transport.Endpoint, listener Listener, config Config) (*Session, error) {
	if source == nil {
		return nil, fmt.Errorf("identity source is required")
	}
	if err := ep.Validate(); err != nil {
		return nil, err
	}
	if listener == nil {
		listener = NopListener{}
	}
	if config.Code1 == 0 {
		config.Code1 = DefaultCode1
	}
	if config.ActiveCode == 0 {
		config.ActiveCode = DefaultActiveCode
	}
	if config.DeviceInfo == (wire.DeviceInfo{}) {
		config.DeviceInfo = DefaultDeviceInfo
	}
	if config.HandshakeTimeout == 0 {
		config.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if config.Retry.MaxAttempts == 0 {
		config.Retry = connection.DefaultRetryPolicy()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		config:   config,
		source:   source,
		endpoint: ep,
		listener: listener,
		retrier:  connection.NewRetrier(config.Retry),
	}, nil
}

// Endpoint returns the remote port address.
func (s *Session) Endpoint() transport.Endpoint { return s.endpoint }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Retries returns the reconnect attempts made since the last successful
// connection.
func (s *Session) Retries() int { return s.retrier.Attempts() }

// Connect opens the connection and runs the handshake. It blocks until the
// session is active or the attempt failed.
//
// TLS failures are reported to OnSslError and every other failure to
// OnError; the connection is closed first. The same error is returned.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case s.state == StateActive || s.state.connecting():
		s.mu.Unlock()
		return ErrAlreadyConnected
	}
	s.mu.Unlock()
	s.setState(StateConnecting, s.endpoint.String())

	conn, err := s.handshake(ctx)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		if s.isClosed() {
			return ErrClosed
		}
		s.mu.Lock()
		if s.conn == conn {
			s.conn = nil
		}
		s.mu.Unlock()
		s.setState(StateErrored, err.Error())

		var trustErr *transport.TLSTrustError
		if errors.As(err, &trustErr) {
			s.listener.OnSslError(err)
		} else {
			s.listener.OnError(err)
		}
		return err
	}

	// A Close that raced the end of the handshake has already torn the
	// connection down and must not be followed by OnConnected.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	s.established = true
	if s.config.Watchdog.PingInterval > 0 {
		s.watchdog = transport.NewPingWatchdog(s.config.Watchdog, func() { s.lost(conn, ErrPingTimeout) })
		s.watchdog.Start()
	}
	s.mu.Unlock()

	s.retrier.Reset()
	s.listener.OnConnected()
	go s.dispatch(conn)
	return nil
}

func (s *Session) handshake(ctx context.Context) (*transport.Conn, error) {
	id, err := s.source.GetOrCreateIdentity()
	if err != nil {
		return nil, err
	}
	tlsConfig, err := transport.NewClientTLSConfig(id.TLSCertificate(), s.source.PeerTrustPolicy())
	if err != nil {
		return nil, err
	}
	tlsConn, err := transport.NewDialer(tlsConfig, s.config.Dialer).Dial(ctx, s.endpoint)
	if err != nil {
		return nil, err
	}

	var conn *transport.Conn
	ready := make(chan struct{})
	conn = transport.NewConn(tlsConn, transport.ConnConfig{
		Family: wire.FamilyRemote,
		Router: routePings,
		Handler: transport.Handler{
			OnMessage: func(msg wire.Message) {
				<-ready
				s.answerPing(conn, msg)
			},
		},
		Logger:         s.config.Logger,
		ProtocolLogger: s.config.ProtocolLogger,
		Channel:        log.ChannelRemote,
	})
	close(ready)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return conn, ErrClosed
	}
	s.conn = conn
	s.mu.Unlock()

	s.setState(StateAwaitingHandshakeAck, "")
	msg, err := s.await(ctx, conn, "remote configure", wire.KindRemoteConfigure)
	if err != nil {
		return conn, err
	}
	if info := msg.(*wire.RemoteConfigure).DeviceInfo; info != nil {
		s.debugLog("TV device info", "model", info.Model, "vendor", info.Vendor, "app_version", info.AppVersion)
		s.listener.OnDeviceInfo(info)
	}

	s.setState(StateConfiguring, "")
	info := s.config.DeviceInfo
	if err := conn.Send(&wire.RemoteConfigure{Code1: s.config.Code1, DeviceInfo: &info}); err != nil {
		return conn, err
	}

	s.setState(StateAwaitingConfigureAck, "")
	if _, err := s.await(ctx, conn, "remote set active", wire.KindRemoteSetActive); err != nil {
		return conn, err
	}
	if err := conn.Send(&wire.RemoteSetActive{Active: s.config.ActiveCode}); err != nil {
		return conn, err
	}

	s.setState(StateActive, "")
	return conn, nil
}

// await returns the next handshake message, which must be of kind want.
// Notifications that arrive meanwhile are dispatched as usual.
func (s *Session) await(ctx context.Context, conn *transport.Conn, waiting string, want wire.Kind) (wire.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.HandshakeTimeout)
	defer cancel()

	for {
		msg, err := conn.Next(ctx, waiting)
		if err != nil {
			return nil, err
		}
		switch msg.Kind() {
		case want:
			return msg, nil
		case wire.KindRemoteConfigure, wire.KindRemoteSetActive:
			return nil, &UnexpectedMessageError{Waiting: waiting, Got: msg.Kind()}
		case wire.KindRemoteError:
			return nil, &DeviceError{Message: msg.(*wire.RemoteError).Message}
		default:
			s.handle(msg)
		}
	}
}

// routePings sends ping requests straight to the read goroutine so they
// are answered even while the handshake is waiting.
func routePings(msg wire.Message) transport.Route {
	if msg.Kind() == wire.KindRemotePingRequest {
		return transport.RouteListener
	}
	return transport.RouteQueue
}

func (s *Session) answerPing(conn *transport.Conn, msg wire.Message) {
	ping, ok := msg.(*wire.RemotePingRequest)
	if !ok {
		return
	}
	s.mu.Lock()
	wd := s.watchdog
	s.mu.Unlock()
	if wd != nil {
		wd.PingReceived(uint32(ping.Val1))
	}
	if err := conn.Send(&wire.RemotePingResponse{Val1: ping.Val1}); err != nil {
		s.debugLog("ping response failed", "error", err)
	}
}

// dispatch delivers steady-state messages until the connection ends.
func (s *Session) dispatch(conn *transport.Conn) {
	for {
		msg, err := conn.Next(context.Background(), "remote message")
		if err != nil {
			if errors.Is(err, transport.ErrConnectionClosed) {
				err = nil
			}
			s.lost(conn, err)
			return
		}
		s.handle(msg)
	}
}

func (s *Session) handle(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.RemoteSetVolumeLevel:
		s.listener.OnVolume(m)
	case *wire.RemoteStart:
		s.listener.OnPowerState(m.Started)
	case *wire.RemoteError:
		s.listener.OnError(&DeviceError{Message: m.Message})
	case *wire.RemotePingRequest:
		// Answered by the read goroutine.
	default:
		s.debugLog("ignoring remote message", "kind", msg.Kind(), "summary", wire.Summary(msg))
	}
}

// lost tears down conn after the TV dropped it or stopped pinging. Only
// the first report for the current connection has any effect.
func (s *Session) lost(conn *transport.Conn, err error) {
	s.mu.Lock()
	if s.closed || s.conn != conn {
		s.mu.Unlock()
		return
	}
	s.conn = nil
	wd := s.watchdog
	s.watchdog = nil
	established := s.established
	s.established = false
	s.mu.Unlock()

	if wd != nil {
		wd.Stop()
	}
	conn.Close()

	reason := "connection closed by TV"
	if err != nil {
		reason = err.Error()
	}
	s.setState(StateErrored, reason)

	if established {
		s.listener.OnDisconnected()
	}
	if err != nil {
		var trustErr *transport.TLSTrustError
		if errors.As(err, &trustErr) {
			s.listener.OnSslError(err)
		} else {
			s.listener.OnError(err)
		}
	}
}

// SendCommand writes one key event. It returns ErrNotActive unless the
// handshake has completed.
func (s *Session) SendCommand(code wire.KeyCode, direction wire.Direction) error {
	return s.send(&wire.RemoteKeyInject{KeyCode: code, Direction: direction})
}

// SendKeyPress sends a short press of code.
func (s *Session) SendKeyPress(code wire.KeyCode) error {
	return s.SendCommand(code, wire.DirectionShort)
}

// SendAppLink asks the TV to open a deep link, for example
// "https://www.netflix.com/title/80057281".
func (s *Session) SendAppLink(uri string) error {
	if uri == "" {
		return fmt.Errorf("app link is empty")
	}
	return s.send(&wire.RemoteAppLinkLaunch{AppLink: uri})
}

func (s *Session) send(msg wire.Message) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateActive || s.conn == nil {
		s.mu.Unlock()
		return ErrNotActive
	}
	conn := s.conn
	s.mu.Unlock()
	return conn.Send(msg)
}

// AttemptToReconnect waits for the next delay of the retry policy and
// connects again. It returns connection.ErrRetriesExhausted once the policy
// allows no more attempts; the counter resets after a successful connect.
// A failed attempt is reported to the listener like a first connect.
func (s *Session) AttemptToReconnect(ctx context.Context) error {
	if s.isClosed() {
		return ErrClosed
	}
	delay, ok := s.retrier.Next()
	if !ok {
		return connection.ErrRetriesExhausted
	}
	s.debugLog("reconnecting", "attempt", s.retrier.Attempts(), "delay", delay)
	if err := connection.Sleep(ctx, delay); err != nil {
		return err
	}
	return s.Connect(ctx)
}

// Close ends the session from any state. It is idempotent and safe while
// Connect is running. OnDisconnected fires if a connection was active.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	wd := s.watchdog
	s.watchdog = nil
	established := s.established
	s.established = false
	s.mu.Unlock()

	if wd != nil {
		wd.Stop()
	}
	var err error
	if conn != nil {
		err = conn.Close()
	}
	s.setState(StateClosed, "closed locally")
	if established {
		s.listener.OnDisconnected()
	}
	return err
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) setState(next State, reason string) {
	s.mu.Lock()
	prev := s.state
	if prev == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = next
	connID := ""
	if s.conn != nil {
		connID = s.conn.ID()
	}
	s.mu.Unlock()

	s.debugLog("remote state", "from", prev, "to", next)
	if s.config.ProtocolLogger != nil {
		s.config.ProtocolLogger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: connID,
			Layer:        log.LayerSession,
			Category:     log.CategoryState,
			Channel:      log.ChannelRemote,
			RemoteAddr:   s.endpoint.String(),
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityRemote,
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
