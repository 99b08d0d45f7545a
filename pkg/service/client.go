package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/remote"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// Client controls one TV at a time.
type Client struct {
	config Config

	mu       sync.Mutex
	listener Listener
	host     string
	pairing  *pairing.Session
	remote   *remote.Session
	browser  *discovery.Browser

	// cycle counts Connect calls. Callbacks from sessions of an older
	// cycle are dropped.
	cycle        uint64
	disconnected bool

	eventHandlers []EventHandler
}

// NewClient creates a client. Zero session settings take defaults and
// unset session loggers inherit the client's.
func NewClient(config Config) (*Client, error) {
	if config.PairingPort == 0 {
		config.PairingPort = transport.PairingPort
	}
	if config.RemotePort == 0 {
		config.RemotePort = transport.RemotePort
	}
	def := DefaultConfig()
	if config.Pairing.ServiceName == "" {
		config.Pairing.ServiceName = def.Pairing.ServiceName
	}
	if config.Pairing.ClientName == "" {
		config.Pairing.ClientName = def.Pairing.ClientName
	}
	if config.Pairing.HandshakeTimeout == 0 {
		config.Pairing.HandshakeTimeout = def.Pairing.HandshakeTimeout
	}
	if config.Pairing.SecretTimeout == 0 {
		config.Pairing.SecretTimeout = def.Pairing.SecretTimeout
	}
	if config.Remote.HandshakeTimeout == 0 {
		config.Remote.HandshakeTimeout = def.Remote.HandshakeTimeout
	}
	if config.Remote.Retry.MaxAttempts == 0 {
		config.Remote.Retry = def.Remote.Retry
	}
	if config.Pairing.Logger == nil {
		config.Pairing.Logger = config.Logger
	}
	if config.Remote.Logger == nil {
		config.Remote.Logger = config.Logger
	}
	if config.Discovery.Logger == nil {
		config.Discovery.Logger = config.Logger
	}
	if config.Pairing.ProtocolLogger == nil {
		config.Pairing.ProtocolLogger = config.ProtocolLogger
	}
	if config.Remote.ProtocolLogger == nil {
		config.Remote.ProtocolLogger = config.ProtocolLogger
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{config: config}, nil
}

// OnEvent registers a handler for client events. Handlers run on their
// own goroutine.
func (c *Client) OnEvent(handler EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eventHandlers = append(c.eventHandlers, handler)
}

// Connect connects to the TV at host, pairing first when no client
// identity exists. It blocks until the remote session is active or the
// attempt failed, which includes the time the user needs to read the
// pairing code.
//
// Failures are reported to listener and returned. After a failure the
// sessions are kept until Disconnect, so Reconnect can retry the remote
// session.
func (c *Client) Connect(ctx context.Context, host string, listener Listener) error {
	if listener == nil {
		listener = NopListener{}
	}
	if host == "" {
		return fmt.Errorf("host is required")
	}

	c.mu.Lock()
	if c.pairing != nil || c.remote != nil {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.cycle++
	cycle := c.cycle
	c.listener = listener
	c.host = host
	c.disconnected = false
	c.mu.Unlock()

	if c.config.Identity.HasIdentity() {
		c.debugLog("identity present, connecting remote session", "host", host)
		return c.connectRemote(ctx, cycle)
	}

	c.debugLog("no identity, pairing first", "host", host)
	session, err := pairing.NewSession(c.config.Identity, c.config.Pairing)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if cycle != c.cycle {
		c.mu.Unlock()
		return pairing.ErrSessionClosed
	}
	c.pairing = session
	c.mu.Unlock()

	ep := transport.Endpoint{Host: host, Port: c.config.PairingPort}
	if err := session.Pair(ctx, ep, &pairingBridge{client: c, cycle: cycle}); err != nil {
		return err
	}

	c.mu.Lock()
	if cycle != c.cycle {
		c.mu.Unlock()
		return pairing.ErrSessionClosed
	}
	c.pairing = nil
	c.mu.Unlock()

	return c.connectRemote(ctx, cycle)
}

func (c *Client) connectRemote(ctx context.Context, cycle uint64) error {
	c.mu.Lock()
	if cycle != c.cycle {
		c.mu.Unlock()
		return remote.ErrClosed
	}
	ep := transport.Endpoint{Host: c.host, Port: c.config.RemotePort}
	session, err := remote.NewSession(c.config.Identity, ep, &remoteBridge{client: c, cycle: cycle}, c.config.Remote)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.remote = session
	c.mu.Unlock()

	c.notify(cycle, Event{Type: EventConnectingToRemote}, Listener.OnConnectingToRemote)
	return session.Connect(ctx)
}

// SendCommand sends one key event. Without a remote session it does
// nothing.
func (c *Client) SendCommand(code wire.KeyCode, direction wire.Direction) error {
	session := c.remoteSession()
	if session == nil {
		c.debugLog("no remote session, command dropped", "key", code.String())
		return nil
	}
	return session.SendCommand(code, direction)
}

// SendKeyPress sends a short press of code.
func (c *Client) SendKeyPress(code wire.KeyCode) error {
	return c.SendCommand(code, wire.DirectionShort)
}

// SendAppLink asks the TV to open uri.
func (c *Client) SendAppLink(uri string) error {
	session := c.remoteSession()
	if session == nil {
		return ErrNotConnected
	}
	return session.SendAppLink(uri)
}

// SendSecret passes the code shown on the TV to the pairing session.
// Without a pairing session it does nothing.
func (c *Client) SendSecret(code string) error {
	c.mu.Lock()
	session := c.pairing
	c.mu.Unlock()
	if session == nil {
		c.debugLog("no pairing session, secret dropped")
		return nil
	}
	return session.ProvideSecret(code)
}

// Reconnect retries the remote session after it failed or was lost. It
// returns connection.ErrRetriesExhausted once the retry policy gives up.
func (c *Client) Reconnect(ctx context.Context) error {
	session := c.remoteSession()
	if session == nil {
		return ErrNotConnected
	}
	return session.AttemptToReconnect(ctx)
}

// Connected reports whether the remote session is active.
func (c *Client) Connected() bool {
	session := c.remoteSession()
	return session != nil && session.State() == remote.StateActive
}

// Host returns the TV of the current connection.
func (c *Client) Host() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.host
}

// Disconnect closes the pairing and remote sessions. The listener gets
// OnDisconnect if anything was open and it has not been told already.
// The listener is forgotten afterwards. Disconnect is idempotent.
func (c *Client) Disconnect() {
	c.mu.Lock()
	ps, rs := c.pairing, c.remote
	c.pairing, c.remote = nil, nil
	cycle := c.cycle
	c.mu.Unlock()

	if rs != nil {
		c.debugLog("closing remote session")
		_ = rs.Close()
	}
	if ps != nil {
		c.debugLog("closing pairing session")
		_ = ps.Close()
	}
	if rs != nil || ps != nil {
		c.disconnect(cycle)
	}

	c.mu.Lock()
	if cycle == c.cycle {
		c.listener = nil
		c.cycle++
	}
	c.mu.Unlock()
}

// Close disconnects and stops discovery.
func (c *Client) Close() {
	c.Disconnect()
	c.StopDiscovery()
}

func (c *Client) remoteSession() *remote.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remote
}

// disconnect reports OnDisconnect once per connection.
func (c *Client) disconnect(cycle uint64) {
	c.mu.Lock()
	if cycle != c.cycle || c.disconnected || c.listener == nil {
		c.mu.Unlock()
		return
	}
	c.disconnected = true
	c.mu.Unlock()

	c.notify(cycle, Event{Type: EventDisconnected}, Listener.OnDisconnect)
}

// notify calls fn on the listener of cycle and emits ev.
func (c *Client) notify(cycle uint64, ev Event, fn func(Listener)) {
	c.mu.Lock()
	if cycle != c.cycle || c.listener == nil {
		c.mu.Unlock()
		return
	}
	listener := c.listener
	ev.Host = c.host
	c.mu.Unlock()

	if fn != nil {
		fn(listener)
	}
	c.emitEvent(ev)
}

func (c *Client) emitEvent(event Event) {
	c.mu.Lock()
	handlers := append([]EventHandler(nil), c.eventHandlers...)
	c.mu.Unlock()
	for _, handler := range handlers {
		go handler(event)
	}
}

func (c *Client) debugLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, args...)
	}
}
