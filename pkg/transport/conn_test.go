package transport

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

type closedRecorder struct {
	ch chan error
}

func newClosedRecorder() *closedRecorder {
	return &closedRecorder{ch: make(chan error, 4)}
}

func (r *closedRecorder) OnClosed(err error) { r.ch <- err }

func sendFrame(t *testing.T, w net.Conn, msg wire.Message) {
	t.Helper()
	payload, err := wire.NewCodec().Encode(msg)
	require.NoError(t, err)
	require.NoError(t, NewFrameWriter(w).WriteFrame(payload))
}

func remoteRouter(msg wire.Message) Route {
	switch msg.(type) {
	case *wire.RemotePingRequest, *wire.RemoteSetVolumeLevel:
		return RouteListener
	default:
		return RouteQueue
	}
}

func TestConnNextReturnsQueuedMessage(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	c := NewConn(client, ConnConfig{Family: wire.FamilyRemote})
	defer c.Close()

	go sendFrame(t, peer, &wire.RemoteSetActive{Active: 622})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := c.Next(ctx, "set active")
	require.NoError(t, err)
	assert.Equal(t, &wire.RemoteSetActive{Active: 622}, msg)
}

func TestConnRoutesToListener(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	got := make(chan wire.Message, 1)
	c := NewConn(client, ConnConfig{
		Family:  wire.FamilyRemote,
		Router:  remoteRouter,
		Handler: Handler{OnMessage: func(m wire.Message) { got <- m }},
	})
	defer c.Close()

	go sendFrame(t, peer, &wire.RemotePingRequest{Val1: 9})

	select {
	case m := <-got:
		assert.Equal(t, &wire.RemotePingRequest{Val1: 9}, m)
	case <-time.After(time.Second):
		t.Fatal("listener not called")
	}
}

func TestConnSend(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	c := NewConn(client, ConnConfig{Family: wire.FamilyRemote})
	defer c.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Send(&wire.RemoteKeyInject{KeyCode: wire.KeyCodeHome, Direction: wire.DirectionShort})
	}()

	payload, err := NewFrameReader(peer).ReadFrame()
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	msg, err := wire.NewCodec().DecodeRemote(payload)
	require.NoError(t, err)
	assert.Equal(t, &wire.RemoteKeyInject{KeyCode: wire.KeyCodeHome, Direction: wire.DirectionShort}, msg)
}

func TestConnPeerCloseDrainsQueue(t *testing.T) {
	client, peer := net.Pipe()
	rec := newClosedRecorder()

	c := NewConn(client, ConnConfig{Family: wire.FamilyRemote, Handler: Handler{OnClosed: rec.OnClosed}})
	defer c.Close()

	sendFrame(t, peer, &wire.RemoteConfigure{Code1: 622, DeviceInfo: &wire.DeviceInfo{}})
	require.NoError(t, peer.Close())

	select {
	case err := <-rec.ch:
		assert.NoError(t, err, "clean close reports nil")
	case <-time.After(time.Second):
		t.Fatal("OnClosed not called")
	}

	ctx := context.Background()
	msg, err := c.Next(ctx, "configure")
	require.NoError(t, err)
	assert.IsType(t, &wire.RemoteConfigure{}, msg)

	_, err = c.Next(ctx, "set active")
	assert.ErrorIs(t, err, ErrConnectionClosed)

	assert.ErrorIs(t, c.Send(&wire.RemoteSetActive{}), ErrConnectionClosed)
}

func TestConnNextTimeout(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	c := NewConn(client, ConnConfig{Family: wire.FamilyPairing})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Next(ctx, "pairing request ack")
	assert.ErrorIs(t, err, ErrHandshakeTimeout)

	var hte *HandshakeTimeoutError
	require.True(t, errors.As(err, &hte))
	assert.Equal(t, "pairing request ack", hte.Waiting)
}

func TestConnNextCancelled(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	c := NewConn(client, ConnConfig{Family: wire.FamilyPairing})
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Next(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrHandshakeTimeout)
}

func TestConnCloseIsSilentAndIdempotent(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()
	rec := newClosedRecorder()

	c := NewConn(client, ConnConfig{Family: wire.FamilyRemote, Handler: Handler{OnClosed: rec.OnClosed}})

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close())

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("read loop did not exit")
	}
	select {
	case err := <-rec.ch:
		t.Fatalf("OnClosed called after Close: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	_, err := c.Next(context.Background(), "x")
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestConnDecodeErrorKeepsReading(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	decodeErrs := make(chan error, 1)
	c := NewConn(client, ConnConfig{
		Family:  wire.FamilyRemote,
		Handler: Handler{OnDecodeError: func(err error) { decodeErrs <- err }},
	})
	defer c.Close()

	go func() {
		_ = NewFrameWriter(peer).WriteFrame([]byte{0x52, 0x10, 0x08})
		sendFrame(t, peer, &wire.RemoteStart{Started: true})
	}()

	select {
	case err := <-decodeErrs:
		var ce *wire.CodecError
		assert.True(t, errors.As(err, &ce))
	case <-time.After(time.Second):
		t.Fatal("OnDecodeError not called")
	}

	msg, err := c.Next(context.Background(), "start")
	require.NoError(t, err)
	assert.Equal(t, &wire.RemoteStart{Started: true}, msg)
}

func TestConnFramingErrorEndsLoop(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()
	rec := newClosedRecorder()

	c := NewConn(client, ConnConfig{Family: wire.FamilyRemote, Handler: Handler{OnClosed: rec.OnClosed}})
	defer c.Close()

	go func() { _, _ = peer.Write([]byte{0xFF, 0x7F}) }()

	select {
	case err := <-rec.ch:
		var fe *FramingError
		assert.True(t, errors.As(err, &fe), "got %v", err)
	case <-time.After(time.Second):
		t.Fatal("OnClosed not called")
	}

	_, err := c.Next(context.Background(), "x")
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestConnProtocolLogging(t *testing.T) {
	client, peer := net.Pipe()
	defer peer.Close()

	rec := &lockedRecorder{}
	c := NewConn(client, ConnConfig{
		Family:         wire.FamilyPairing,
		ProtocolLogger: rec,
		ConnID:         "abc",
		Channel:        log.ChannelPairing,
	})
	defer c.Close()
	assert.Equal(t, "abc", c.ID())

	go sendFrame(t, peer, &wire.PairingRequestAck{PairingHeader: wire.PairingHeader{ProtocolVersion: 2, Status: wire.StatusOK}})
	_, err := c.Next(context.Background(), "ack")
	require.NoError(t, err)

	var found bool
	for _, e := range rec.snapshot() {
		if e.Layer == log.LayerWire && e.Message != nil {
			found = true
			assert.Equal(t, "PairingRequestAck", e.Message.Kind)
			assert.Equal(t, int(wire.StatusOK), e.Message.Status)
			assert.Equal(t, log.ChannelPairing, e.Channel)
		}
	}
	assert.True(t, found, "wire event logged")
}

func TestClassifyRemoteAlert(t *testing.T) {
	c := &Conn{addr: "tv:6466"}
	alert := &net.OpError{Op: "remote error", Err: errors.New("tls: bad certificate")}

	err := c.classifyReadError(&TransportError{Op: "read", Err: alert})

	var tte *TLSTrustError
	require.True(t, errors.As(err, &tte))
	assert.Equal(t, "tv:6466", tte.Addr)
}

func TestClassifyPlainReadError(t *testing.T) {
	c := &Conn{addr: "tv:6466"}
	err := c.classifyReadError(&TransportError{Op: "read", Err: errors.New("connection reset")})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "tv:6466", te.Addr)
}
