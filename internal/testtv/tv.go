// Package testtv runs an in-process Android TV for tests. It serves the
// pairing and remote ports on loopback with the real transport stack and
// can be told to misbehave in the ways real devices do.
package testtv

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// PairingBehavior selects how the pairing port answers.
type PairingBehavior uint8

const (
	// PairAccept runs the handshake and accepts the correct secret.
	PairAccept PairingBehavior = iota
	// PairRejectSecret answers every secret with BAD_SECRET.
	PairRejectSecret
	// PairHangUp closes the connection once the code is displayed.
	PairHangUp
	// PairSilent never answers the pairing request.
	PairSilent
	// PairRejectRequest answers the pairing request with ERROR.
	PairRejectRequest
)

// RemoteBehavior selects how the remote port answers.
type RemoteBehavior uint8

const (
	// RemoteAccept runs the configure/set-active exchange.
	RemoteAccept RemoteBehavior = iota
	// RemoteSilent completes TLS and then never speaks.
	RemoteSilent
	// RemoteHangUp closes the connection right after TLS.
	RemoteHangUp
)

// ActiveCode is what the TV sends in its RemoteSetActive.
const ActiveCode = 622

// Config configures a TV.
type Config struct {
	// Identity is the TV's certificate. Generated when nil.
	Identity *identity.Identity

	// ServerName is returned in the pairing request ack.
	ServerName string

	Pairing PairingBehavior
	Remote  RemoteBehavior

	// RequirePaired makes the remote port reject client certificates that
	// have not completed pairing.
	RequirePaired bool

	// DeviceInfo is sent in the TV's RemoteConfigure.
	DeviceInfo wire.DeviceInfo

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger
}

// TV is a fake Android TV.
type TV struct {
	config   Config
	identity *identity.Identity

	pairingLn net.Listener
	remoteLn  net.Listener

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool

	// remoteSockets counts accepted remote-port TCP connections that the
	// client has not closed yet, including rejected handshakes.
	remoteSockets atomic.Int32

	mu      sync.Mutex
	paired  map[string]*x509.Certificate
	remotes map[*transport.Conn]struct{}
	active  map[*transport.Conn]struct{}
	pingSeq int32

	codes       chan string
	keys        chan *wire.RemoteKeyInject
	pongs       chan *wire.RemotePingResponse
	appLinks    chan string
	activations chan *wire.DeviceInfo
}

// New creates a TV. Call Start to listen.
func New(config Config) (*TV, error) {
	id := config.Identity
	if id == nil {
		var err error
		id, err = identity.Generate("testtv")
		if err != nil {
			return nil, err
		}
	}
	if config.ServerName == "" {
		config.ServerName = "Test TV"
	}
	if config.DeviceInfo.Model == "" {
		config.DeviceInfo = wire.DeviceInfo{
			Model:       "Test TV",
			Vendor:      "testtv",
			Unknown1:    1,
			Unknown2:    "1",
			PackageName: "com.google.android.tv.remote.service",
			AppVersion:  "5.2.473254133",
		}
	}
	return &TV{
		config:      config,
		identity:    id,
		paired:      make(map[string]*x509.Certificate),
		remotes:     make(map[*transport.Conn]struct{}),
		active:      make(map[*transport.Conn]struct{}),
		codes:       make(chan string, 8),
		keys:        make(chan *wire.RemoteKeyInject, 64),
		pongs:       make(chan *wire.RemotePingResponse, 16),
		appLinks:    make(chan string, 16),
		activations: make(chan *wire.DeviceInfo, 8),
	}, nil
}

// Start opens both ports on 127.0.0.1 with ephemeral port numbers.
func (tv *TV) Start() error {
	if tv.running.Load() {
		return errors.New("testtv: already running")
	}

	pairingTLS, err := transport.NewServerTLSConfig(tv.identity.TLSCertificate(), nil)
	if err != nil {
		return err
	}
	var verifier transport.PeerVerifier
	if tv.config.RequirePaired {
		verifier = transport.PeerVerifierFunc(tv.verifyPaired)
	}
	remoteTLS, err := transport.NewServerTLSConfig(tv.identity.TLSCertificate(), verifier)
	if err != nil {
		return err
	}

	tv.pairingLn, err = tls.Listen("tcp", "127.0.0.1:0", pairingTLS)
	if err != nil {
		return fmt.Errorf("testtv: pairing listener: %w", err)
	}
	tv.remoteLn, err = tls.Listen("tcp", "127.0.0.1:0", remoteTLS)
	if err != nil {
		tv.pairingLn.Close()
		return fmt.Errorf("testtv: remote listener: %w", err)
	}

	tv.ctx, tv.cancel = context.WithCancel(context.Background())
	tv.running.Store(true)

	tv.wg.Add(2)
	go tv.acceptLoop(tv.pairingLn, nil, tv.servePairing)
	go tv.acceptLoop(tv.remoteLn, &tv.remoteSockets, tv.serveRemote)
	return nil
}

// Stop closes the listeners and every open connection and waits for the
// handlers to return.
func (tv *TV) Stop() error {
	if !tv.running.Swap(false) {
		return nil
	}
	tv.cancel()
	tv.pairingLn.Close()
	tv.remoteLn.Close()
	tv.DropRemotes()
	tv.wg.Wait()
	return nil
}

// Identity returns the TV's certificate and key.
func (tv *TV) Identity() *identity.Identity { return tv.identity }

// PairingEndpoint returns the address of the pairing port.
func (tv *TV) PairingEndpoint() transport.Endpoint { return endpointOf(tv.pairingLn) }

// RemoteEndpoint returns the address of the remote port.
func (tv *TV) RemoteEndpoint() transport.Endpoint { return endpointOf(tv.remoteLn) }

// Codes yields each code the TV displays.
func (tv *TV) Codes() <-chan string { return tv.codes }

// Keys yields key presses received on active remote sessions.
func (tv *TV) Keys() <-chan *wire.RemoteKeyInject { return tv.keys }

// Pongs yields ping responses.
func (tv *TV) Pongs() <-chan *wire.RemotePingResponse { return tv.pongs }

// AppLinks yields app links the client asked to launch.
func (tv *TV) AppLinks() <-chan string { return tv.appLinks }

// Activations yields the client's device info each time a remote session
// becomes active.
func (tv *TV) Activations() <-chan *wire.DeviceInfo { return tv.activations }

// Authorize marks cert as paired without running the pairing handshake.
func (tv *TV) Authorize(cert *x509.Certificate) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.paired[identity.Fingerprint(cert)] = cert
}

// IsPaired reports whether cert completed pairing.
func (tv *TV) IsPaired(cert *x509.Certificate) bool {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	_, ok := tv.paired[identity.Fingerprint(cert)]
	return ok
}

// Broadcast sends msg to every active remote session.
func (tv *TV) Broadcast(msg wire.Message) error {
	tv.mu.Lock()
	conns := make([]*transport.Conn, 0, len(tv.active))
	for c := range tv.active {
		conns = append(conns, c)
	}
	tv.mu.Unlock()

	if len(conns) == 0 {
		return errors.New("testtv: no active remote session")
	}
	var errs []error
	for _, c := range conns {
		errs = append(errs, c.Send(msg))
	}
	return errors.Join(errs...)
}

// Ping sends a ping request to every active remote session.
func (tv *TV) Ping() error {
	tv.mu.Lock()
	tv.pingSeq++
	seq := tv.pingSeq
	tv.mu.Unlock()
	return tv.Broadcast(&wire.RemotePingRequest{Val1: seq, Val2: 0})
}

// ActiveSessions returns the number of active remote sessions.
func (tv *TV) ActiveSessions() int {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return len(tv.active)
}

// OpenRemoteSockets returns the remote-port connections still open from
// the client side. A connection whose TLS handshake the TV rejected stays
// counted until the client closes its socket.
func (tv *TV) OpenRemoteSockets() int { return int(tv.remoteSockets.Load()) }

// DropRemotes closes every remote connection, as a TV going to sleep does.
func (tv *TV) DropRemotes() {
	tv.mu.Lock()
	conns := make([]*transport.Conn, 0, len(tv.remotes))
	for c := range tv.remotes {
		conns = append(conns, c)
	}
	tv.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

func (tv *TV) acceptLoop(ln net.Listener, open *atomic.Int32, serve func(*tls.Conn)) {
	defer tv.wg.Done()

	for tv.running.Load() {
		raw, err := ln.Accept()
		if err != nil {
			if tv.running.Load() {
				tv.debugLog("accept failed", "error", err)
				continue
			}
			return
		}

		tlsConn := raw.(*tls.Conn)
		if open != nil {
			open.Add(1)
		}
		tv.wg.Add(1)
		go func() {
			defer tv.wg.Done()
			if open != nil {
				defer open.Add(-1)
			}
			ctx, cancel := context.WithTimeout(tv.ctx, 5*time.Second)
			err := tlsConn.HandshakeContext(ctx)
			cancel()
			if err != nil {
				tv.debugLog("TLS handshake failed", "error", err)
				if open != nil {
					tv.awaitPeerClose(tlsConn.NetConn())
				}
				tlsConn.Close()
				return
			}
			serve(tlsConn)
		}()
	}
}

// awaitPeerClose reads the raw socket until the client closes it, the TV
// stops, or five seconds pass.
func (tv *TV) awaitPeerClose(c net.Conn) {
	_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))
	stop := context.AfterFunc(tv.ctx, func() { c.SetReadDeadline(time.Now()) })
	defer stop()
	_, _ = io.Copy(io.Discard, c)
}

func (tv *TV) servePairing(raw *tls.Conn) {
	conn := transport.NewConn(raw, transport.ConnConfig{
		Family:  wire.FamilyPairing,
		Logger:  tv.config.Logger,
		Channel: log.ChannelPairing,
	})
	defer conn.Close()

	clientCert := conn.PeerCertificate()
	if clientCert == nil {
		return
	}
	clientKey, ok := clientCert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return
	}

	if _, err := tv.expect(conn, wire.KindPairingRequest); err != nil {
		return
	}
	switch tv.config.Pairing {
	case PairSilent:
		select {
		case <-conn.Done():
		case <-tv.ctx.Done():
		}
		return
	case PairRejectRequest:
		_ = conn.Send(&wire.PairingStatus{PairingHeader: header(wire.StatusError)})
		return
	}
	if err := conn.Send(&wire.PairingRequestAck{PairingHeader: header(wire.StatusOK), ServerName: tv.config.ServerName}); err != nil {
		return
	}

	if _, err := tv.expect(conn, wire.KindPairingOption); err != nil {
		return
	}
	if err := conn.Send(&wire.PairingOption{
		PairingHeader:  header(wire.StatusOK),
		InputEncodings: []wire.Encoding{wire.HexEncoding},
		PreferredRole:  wire.RoleInput,
	}); err != nil {
		return
	}

	if _, err := tv.expect(conn, wire.KindPairingConfiguration); err != nil {
		return
	}
	if err := conn.Send(&wire.PairingConfigurationAck{PairingHeader: header(wire.StatusOK)}); err != nil {
		return
	}

	var nonce [2]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return
	}
	serverKey := tv.identity.PublicKey()
	code := pairing.CodeFor(clientKey, serverKey, nonce)
	tv.debugLog("displaying code", "code", code)
	select {
	case tv.codes <- code:
	default:
	}

	if tv.config.Pairing == PairHangUp {
		return
	}

	for {
		msg, err := tv.expect(conn, wire.KindPairingSecret)
		if err != nil {
			return
		}
		want, err := pairing.ComputeSecret(clientKey, serverKey, code)
		if err != nil {
			return
		}
		got := msg.(*wire.PairingSecret).Secret
		if tv.config.Pairing == PairRejectSecret || string(got) != string(want) {
			if err := conn.Send(&wire.PairingStatus{PairingHeader: header(wire.StatusBadSecret)}); err != nil {
				return
			}
			continue
		}
		tv.Authorize(clientCert)
		_ = conn.Send(&wire.PairingSecretAck{PairingHeader: header(wire.StatusOK), Secret: want})
		return
	}
}

func (tv *TV) serveRemote(raw *tls.Conn) {
	conn := transport.NewConn(raw, transport.ConnConfig{
		Family:  wire.FamilyRemote,
		Logger:  tv.config.Logger,
		Channel: log.ChannelRemote,
	})
	defer conn.Close()

	tv.mu.Lock()
	tv.remotes[conn] = struct{}{}
	tv.mu.Unlock()
	defer func() {
		tv.mu.Lock()
		delete(tv.remotes, conn)
		delete(tv.active, conn)
		tv.mu.Unlock()
	}()

	switch tv.config.Remote {
	case RemoteHangUp:
		return
	case RemoteSilent:
		select {
		case <-conn.Done():
		case <-tv.ctx.Done():
		}
		return
	}

	info := tv.config.DeviceInfo
	if err := conn.Send(&wire.RemoteConfigure{Code1: ActiveCode, DeviceInfo: &info}); err != nil {
		return
	}
	msg, err := tv.expect(conn, wire.KindRemoteConfigure)
	if err != nil {
		return
	}
	clientInfo := msg.(*wire.RemoteConfigure).DeviceInfo
	if err := conn.Send(&wire.RemoteSetActive{Active: ActiveCode}); err != nil {
		return
	}
	if _, err := tv.expect(conn, wire.KindRemoteSetActive); err != nil {
		return
	}

	tv.mu.Lock()
	tv.active[conn] = struct{}{}
	tv.mu.Unlock()
	select {
	case tv.activations <- clientInfo:
	default:
	}

	for {
		msg, err := conn.Next(tv.ctx, "remote command")
		if err != nil {
			return
		}
		switch m := msg.(type) {
		case *wire.RemoteKeyInject:
			select {
			case tv.keys <- m:
			case <-tv.ctx.Done():
				return
			}
		case *wire.RemotePingResponse:
			select {
			case tv.pongs <- m:
			default:
			}
		case *wire.RemoteAppLinkLaunch:
			select {
			case tv.appLinks <- m.AppLink:
			default:
			}
		default:
			tv.debugLog("ignoring remote message", "kind", msg.Kind())
		}
	}
}

// expect returns the next message, which must be of kind want.
func (tv *TV) expect(conn *transport.Conn, want wire.Kind) (wire.Message, error) {
	ctx, cancel := context.WithTimeout(tv.ctx, 5*time.Second)
	defer cancel()

	msg, err := conn.Next(ctx, want.String())
	if err != nil {
		return nil, err
	}
	if msg.Kind() != want {
		tv.debugLog("unexpected message", "want", want, "got", msg.Kind())
		return nil, fmt.Errorf("testtv: got %s, want %s", msg.Kind(), want)
	}
	return msg, nil
}

func (tv *TV) verifyPaired(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	if len(rawCerts) == 0 {
		return errors.New("testtv: no client certificate")
	}
	cert, err := x509.ParseCertificate(rawCerts[0])
	if err != nil {
		return err
	}
	if !tv.IsPaired(cert) {
		return errors.New("testtv: client is not paired")
	}
	return nil
}

func (tv *TV) debugLog(msg string, args ...any) {
	if tv.config.Logger != nil {
		tv.config.Logger.Debug(msg, args...)
	}
}

func header(status wire.Status) wire.PairingHeader {
	return wire.PairingHeader{ProtocolVersion: wire.ProtocolVersion, Status: status}
}

func endpointOf(ln net.Listener) transport.Endpoint {
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	p, _ := strconv.Atoi(port)
	return transport.Endpoint{Host: host, Port: p}
}
