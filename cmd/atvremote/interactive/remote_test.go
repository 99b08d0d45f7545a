package interactive

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drenae/AndroidTvRemote/internal/testtv"
	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	"github.com/Drenae/AndroidTvRemote/pkg/persistence"
	"github.com/Drenae/AndroidTvRemote/pkg/service"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// syncBuffer is written by session goroutines and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeWaker struct {
	macs []string
}

func (w *fakeWaker) Wake(_ context.Context, mac string) error {
	w.macs = append(w.macs, mac)
	return nil
}

type fixture struct {
	remote *Remote
	client *service.Client
	store  *persistence.StateStore
	waker  *fakeWaker
	out    *syncBuffer
}

func newFixture(t *testing.T, tv *testtv.TV) *fixture {
	t.Helper()
	provider, err := identity.NewProvider(identity.Config{
		Store:       identity.NewMemoryStore(),
		TrustPolicy: identity.AcceptAny(),
	})
	require.NoError(t, err)

	cfg := service.DefaultConfig()
	cfg.Identity = provider
	cfg.Pairing.HandshakeTimeout = 2 * time.Second
	cfg.Remote.HandshakeTimeout = 2 * time.Second
	cfg.Remote.Watchdog = transport.WatchdogConfig{}
	if tv != nil {
		cfg.PairingPort = tv.PairingEndpoint().Port
		cfg.RemotePort = tv.RemoteEndpoint().Port
	}
	client, err := service.NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	f := &fixture{
		client: client,
		store:  persistence.NewStateStore(filepath.Join(t.TempDir(), "state.json")),
		waker:  &fakeWaker{},
		out:    &syncBuffer{},
	}
	f.remote = newRemote(Options{Client: client, Store: f.store, Waker: f.waker}, f.out)
	return f
}

func (f *fixture) run(line string) bool {
	return f.remote.execute(context.Background(), line)
}

func TestPairConnectAndSendKeys(t *testing.T) {
	tv, err := testtv.New(testtv.Config{RequirePaired: true})
	require.NoError(t, err)
	require.NoError(t, tv.Start())
	t.Cleanup(func() { tv.Stop() })

	f := newFixture(t, tv)
	f.run("connect 127.0.0.1")

	var code string
	select {
	case code = <-tv.Codes():
	case <-time.After(5 * time.Second):
		t.Fatal("TV never displayed a code")
	}
	require.Eventually(t, f.remote.isAwaitingSecret, 2*time.Second, 10*time.Millisecond)

	// A bare line is taken as the code while pairing.
	f.run(code)
	require.Eventually(t, f.client.Connected, 5*time.Second, 10*time.Millisecond)

	f.run("home")
	select {
	case key := <-tv.Keys():
		assert.Equal(t, wire.KeyCodeHome, key.KeyCode)
		assert.Equal(t, wire.DirectionShort, key.Direction)
	case <-time.After(2 * time.Second):
		t.Fatal("key never reached the TV")
	}

	f.run("key power down")
	select {
	case key := <-tv.Keys():
		assert.Equal(t, wire.KeyCodePower, key.KeyCode)
		assert.Equal(t, wire.DirectionDown, key.Direction)
	case <-time.After(2 * time.Second):
		t.Fatal("key never reached the TV")
	}

	require.Eventually(t, func() bool {
		state, err := f.store.Load()
		return err == nil && state.LastHost == "127.0.0.1"
	}, 2*time.Second, 10*time.Millisecond)
	state, err := f.store.Load()
	require.NoError(t, err)
	tvEntry, ok := state.Find("127.0.0.1")
	require.True(t, ok)
	assert.False(t, tvEntry.PairedAt.IsZero())

	out := f.out.String()
	assert.Contains(t, out, "Pairing started")
	assert.Contains(t, out, "Paired")
	assert.Contains(t, out, "Connected")

	f.run("status")
	assert.Contains(t, f.out.String(), "Status: connected")
}

func TestKeyWithoutConnection(t *testing.T) {
	f := newFixture(t, nil)

	f.run("vol+")
	assert.Contains(t, f.out.String(), "Not connected")

	f.run("key nosuchkey")
	assert.Contains(t, f.out.String(), "unknown key code")
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.run("frobnicate"))
	assert.Contains(t, f.out.String(), "Unknown command: frobnicate")

	// Bare numbers are not key shortcuts.
	f.run("300")
	assert.Contains(t, f.out.String(), "Unknown command: 300")
}

func TestQuit(t *testing.T) {
	f := newFixture(t, nil)
	assert.True(t, f.run("quit"))
	assert.True(t, f.run("q"))
	assert.False(t, f.run(""))
}

func TestPairedTvCommands(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.store.Update(func(s *persistence.RemoteState) {
		s.Upsert(persistence.PairedTv{Host: "10.0.0.5", Name: "Bedroom", MAC: "aa:bb:cc:dd:ee:ff"})
		s.Upsert(persistence.PairedTv{Host: "10.0.0.6", Name: "Kitchen"})
		s.LastHost = "10.0.0.5"
	}))

	t.Run("tvs", func(t *testing.T) {
		f.run("tvs")
		out := f.out.String()
		assert.Contains(t, out, "Paired TVs (2)")
		assert.Contains(t, out, "* 10.0.0.5")
		assert.Contains(t, out, "Name: Kitchen")
	})

	t.Run("wake by name", func(t *testing.T) {
		f.run("wake bedroom")
		assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff"}, f.waker.macs)
	})

	t.Run("wake last host", func(t *testing.T) {
		f.run("wake")
		assert.Len(t, f.waker.macs, 2)
	})

	t.Run("wake without mac", func(t *testing.T) {
		f.run("wake Kitchen")
		assert.Len(t, f.waker.macs, 2)
		assert.Contains(t, f.out.String(), "No MAC stored for 10.0.0.6")
	})

	t.Run("forget", func(t *testing.T) {
		f.run("forget Kitchen")
		state, err := f.store.Load()
		require.NoError(t, err)
		_, ok := state.Find("10.0.0.6")
		assert.False(t, ok)

		f.run("forget Kitchen")
		assert.Contains(t, f.out.String(), "No paired TV Kitchen")
	})
}

func TestMACRequiresConnection(t *testing.T) {
	f := newFixture(t, nil)
	f.run("mac aa:bb:cc:dd:ee:ff")
	assert.Contains(t, f.out.String(), "Connect to the TV first")
}

func TestParseShortcut(t *testing.T) {
	for _, s := range []string{"home", "vol+", "ok", "KEYCODE_BACK", "7"} {
		_, ok := parseShortcut(s)
		assert.True(t, ok, s)
	}
	for _, s := range []string{"300", "frobnicate", ""} {
		_, ok := parseShortcut(s)
		assert.False(t, ok, s)
	}
}
