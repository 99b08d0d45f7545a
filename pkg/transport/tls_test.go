package transport

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfSigned(t *testing.T, cn string) tls.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

var acceptAll = PeerVerifierFunc(func([][]byte, [][]*x509.Certificate) error { return nil })

func listenTLS(t *testing.T, cfg *tls.Config) (Endpoint, <-chan error) {
	t.Helper()
	ln, err := tls.Listen("tcp", "127.0.0.1:0", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	result := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			result <- err
			return
		}
		defer conn.Close()
		result <- conn.(*tls.Conn).Handshake()
		// Hold the connection open until the client hangs up.
		_, _ = conn.Read(make([]byte, 1))
	}()
	return endpointOf(t, ln.Addr()), result
}

func endpointOf(t *testing.T, addr net.Addr) Endpoint {
	host, port, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return Endpoint{Host: host, Port: p}
}

func TestNewClientTLSConfigRequiresInputs(t *testing.T) {
	cert := selfSigned(t, "client")

	_, err := NewClientTLSConfig(tls.Certificate{}, acceptAll)
	assert.ErrorIs(t, err, ErrNoClientCertificate)

	_, err = NewClientTLSConfig(cert, nil)
	assert.ErrorIs(t, err, ErrNoPeerVerifier)

	cfg, err := NewClientTLSConfig(cert, acceptAll)
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.NotNil(t, cfg.VerifyPeerCertificate)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)

	got, err := cfg.GetClientCertificate(&tls.CertificateRequestInfo{})
	require.NoError(t, err)
	assert.Equal(t, cert.Certificate, got.Certificate)
}

func TestDialMutualTLS(t *testing.T) {
	serverCert := selfSigned(t, "tv")
	clientCert := selfSigned(t, "client")

	var seenClient []byte
	serverCfg, err := NewServerTLSConfig(serverCert, PeerVerifierFunc(func(raw [][]byte, _ [][]*x509.Certificate) error {
		seenClient = raw[0]
		return nil
	}))
	require.NoError(t, err)
	ep, serverResult := listenTLS(t, serverCfg)

	clientCfg, err := NewClientTLSConfig(clientCert, acceptAll)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := NewDialer(clientCfg, DialerConfig{}).Dial(ctx, ep)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, <-serverResult)
	assert.Equal(t, clientCert.Certificate[0], seenClient)

	peer := NewConn(conn, ConnConfig{}).PeerCertificate()
	require.NotNil(t, peer)
	assert.Equal(t, "tv", peer.Subject.CommonName)
}

func TestDialRejectedServerCertificate(t *testing.T) {
	serverCfg, err := NewServerTLSConfig(selfSigned(t, "tv"), nil)
	require.NoError(t, err)
	ep, _ := listenTLS(t, serverCfg)

	reject := PeerVerifierFunc(func([][]byte, [][]*x509.Certificate) error {
		return errors.New("certificate not pinned")
	})
	clientCfg, err := NewClientTLSConfig(selfSigned(t, "client"), reject)
	require.NoError(t, err)

	_, err = NewDialer(clientCfg, DialerConfig{}).Dial(context.Background(), ep)

	var tte *TLSTrustError
	require.True(t, errors.As(err, &tte), "got %v", err)
	assert.Contains(t, err.Error(), "certificate not pinned")
}

func TestDialPeerHangsUpDuringHandshake(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	clientCfg, err := NewClientTLSConfig(selfSigned(t, "client"), acceptAll)
	require.NoError(t, err)

	_, err = NewDialer(clientCfg, DialerConfig{}).Dial(context.Background(), endpointOf(t, ln.Addr()))

	var tte *TLSTrustError
	assert.True(t, errors.As(err, &tte), "got %v", err)
}

func TestDialRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ep := endpointOf(t, ln.Addr())
	ln.Close()

	clientCfg, err := NewClientTLSConfig(selfSigned(t, "client"), acceptAll)
	require.NoError(t, err)

	_, err = NewDialer(clientCfg, DialerConfig{Timeout: time.Second}).Dial(context.Background(), ep)

	var te *TransportError
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "dial", te.Op)
	assert.Equal(t, ep.String(), te.Addr)
}

func TestDialHandshakeTimeoutIsTransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()
	defer func() {
		select {
		case c := <-accepted:
			c.Close()
		default:
		}
	}()

	clientCfg, err := NewClientTLSConfig(selfSigned(t, "client"), acceptAll)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = NewDialer(clientCfg, DialerConfig{}).Dial(ctx, endpointOf(t, ln.Addr()))

	var te *TransportError
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "handshake", te.Op)
}
