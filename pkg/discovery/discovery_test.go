package discovery

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMDNS is a BrowseFunc driven by the test.
type fakeMDNS struct {
	added   chan *ServiceEntry
	removed chan *ServiceEntry
	err     error
	calls   chan string
}

func newFakeMDNS() *fakeMDNS {
	return &fakeMDNS{
		added:   make(chan *ServiceEntry),
		removed: make(chan *ServiceEntry),
		calls:   make(chan string, 4),
	}
}

func (f *fakeMDNS) browse(ctx context.Context, service, domain string, added, removed chan<- *ServiceEntry) error {
	f.calls <- service + "." + domain
	if f.err != nil {
		return f.err
	}
	for {
		select {
		case e := <-f.added:
			select {
			case added <- e:
			case <-ctx.Done():
				return nil
			}
		case e := <-f.removed:
			select {
			case removed <- e:
			case <-ctx.Done():
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

type event struct {
	name string
	tv   DiscoveredTv
	msg  string
}

type recorder struct {
	mu     sync.Mutex
	events []event
	ch     chan event
}

func newRecorder() *recorder { return &recorder{ch: make(chan event, 32)} }

func (r *recorder) add(e event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	r.ch <- e
}

func (r *recorder) OnDiscoveryStarted()       { r.add(event{name: "started"}) }
func (r *recorder) OnDiscoveryStopped()       { r.add(event{name: "stopped"}) }
func (r *recorder) OnTvFound(tv DiscoveredTv) { r.add(event{name: "found", tv: tv}) }
func (r *recorder) OnTvLost(tv DiscoveredTv)  { r.add(event{name: "lost", tv: tv}) }
func (r *recorder) OnDiscoveryError(msg string, _ int) {
	r.add(event{name: "error", msg: msg})
}

func (r *recorder) next(t *testing.T) event {
	t.Helper()
	select {
	case e := <-r.ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no discovery event")
		return event{}
	}
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.name
	}
	return out
}

func livingRoom(addrs ...string) *ServiceEntry {
	return &ServiceEntry{
		Instance: "BRAVIA 4K GB",
		Service:  ServiceType,
		Domain:   Domain,
		Host:     "bravia.local.",
		Port:     6466,
		Text:     []string{"bt=AA:BB:CC:DD:EE:FF", "fn=Living Room TV"},
		Addrs:    addrs,
	}
}

func startBrowser(t *testing.T) (*Browser, *fakeMDNS, *recorder) {
	t.Helper()
	mdns := newFakeMDNS()
	rec := newRecorder()
	b := NewBrowser(BrowserConfig{Browse: mdns.browse}, rec)
	require.NoError(t, b.Start(context.Background()))
	t.Cleanup(b.Stop)

	assert.Equal(t, "started", rec.next(t).name)
	assert.Equal(t, "_androidtvremote2._tcp.local.", <-mdns.calls)
	return b, mdns, rec
}

func TestBrowserReportsTvOnce(t *testing.T) {
	b, mdns, rec := startBrowser(t)

	mdns.added <- livingRoom("192.168.1.20")
	e := rec.next(t)
	require.Equal(t, "found", e.name)
	assert.Equal(t, "BRAVIA 4K GB", e.tv.ServiceName)
	assert.Equal(t, "Living Room TV", e.tv.FriendlyName)
	assert.Equal(t, "192.168.1.20", e.tv.Host)
	assert.Equal(t, 6466, e.tv.Port)

	// Same instance seen on another interface.
	mdns.added <- livingRoom("fe80::1")

	tvs, err := b.Snapshot()
	require.NoError(t, err)
	require.Len(t, tvs, 1)
	assert.ElementsMatch(t, []string{"192.168.1.20", "fe80::1"}, tvs[0].Addresses)
	assert.Equal(t, []string{"started", "found"}, rec.names())
}

func TestBrowserLostAfterLastAddress(t *testing.T) {
	b, mdns, rec := startBrowser(t)

	mdns.added <- livingRoom("192.168.1.20", "fe80::1")
	require.Equal(t, "found", rec.next(t).name)

	mdns.removed <- livingRoom("fe80::1")
	tvs, err := b.Snapshot()
	require.NoError(t, err)
	require.Len(t, tvs, 1)

	mdns.removed <- livingRoom("192.168.1.20")
	e := rec.next(t)
	assert.Equal(t, "lost", e.name)
	assert.Equal(t, "BRAVIA 4K GB", e.tv.ServiceName)

	tvs, err = b.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, tvs)
}

func TestBrowserIgnoresUnknownRemoval(t *testing.T) {
	b, mdns, rec := startBrowser(t)

	mdns.removed <- &ServiceEntry{Instance: "ghost"}
	_, err := b.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"started"}, rec.names())
}

func TestBrowserSkipsUnresolved(t *testing.T) {
	b, mdns, rec := startBrowser(t)

	mdns.added <- &ServiceEntry{Instance: "no address"}
	tvs, err := b.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, tvs)
	assert.Equal(t, []string{"started"}, rec.names())
}

func TestBrowserStop(t *testing.T) {
	b, _, rec := startBrowser(t)

	b.Stop()
	assert.Equal(t, "stopped", rec.next(t).name)
	assert.False(t, b.Running())

	_, err := b.Snapshot()
	assert.ErrorIs(t, err, ErrNotRunning)

	// Second stop is silent.
	b.Stop()
	assert.Equal(t, []string{"started", "stopped"}, rec.names())
}

func TestBrowserRestartForgetsResults(t *testing.T) {
	b, mdns, rec := startBrowser(t)

	mdns.added <- livingRoom("192.168.1.20")
	require.Equal(t, "found", rec.next(t).name)

	require.NoError(t, b.Start(context.Background()))
	assert.Equal(t, "started", rec.next(t).name)
	<-mdns.calls

	tvs, err := b.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, tvs)
	assert.NotContains(t, rec.names(), "stopped")
}

func TestBrowserReportsError(t *testing.T) {
	mdns := newFakeMDNS()
	mdns.err = errors.New("no multicast interface")
	rec := newRecorder()
	b := NewBrowser(BrowserConfig{Browse: mdns.browse}, rec)
	require.NoError(t, b.Start(context.Background()))
	defer b.Stop()

	assert.Equal(t, "started", rec.next(t).name)
	e := rec.next(t)
	assert.Equal(t, "error", e.name)
	assert.Contains(t, e.msg, "no multicast interface")
}

func TestDiscoveredTvEquality(t *testing.T) {
	a := DiscoveredTv{ServiceName: "tv", FriendlyName: "Kitchen", Host: "10.0.0.2"}
	b := DiscoveredTv{ServiceName: "tv", FriendlyName: "Renamed", Host: "10.0.0.9"}
	c := DiscoveredTv{ServiceName: "other", Host: "10.0.0.2"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())

	assert.Equal(t, 6467, a.PairingEndpoint().Port)
	assert.Equal(t, 6466, a.RemoteEndpoint().Port)
	assert.Equal(t, "10.0.0.2", a.RemoteEndpoint().Host)
}

func TestToDiscoveredTv(t *testing.T) {
	e := &ServiceEntry{Instance: "tv", Port: 6466, Addrs: []string{"fe80::1", "10.0.0.5"}}
	tv, ok := e.ToDiscoveredTv()
	require.True(t, ok)
	assert.Equal(t, "tv", tv.FriendlyName, "falls back to the instance name")
	assert.Equal(t, "10.0.0.5", tv.Host, "prefers IPv4")

	_, ok = (&ServiceEntry{Instance: "tv"}).ToDiscoveredTv()
	assert.False(t, ok)
}

func TestStringsToTXTRecords(t *testing.T) {
	txt := StringsToTXTRecords([]string{"fn=My TV", "flag", "=x", "eq=a=b"})
	keys := make([]string, 0, len(txt))
	for k := range txt {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"eq", "flag", "fn"}, keys)
	assert.Equal(t, "a=b", txt["eq"])
	assert.Equal(t, "", txt["flag"])
}
