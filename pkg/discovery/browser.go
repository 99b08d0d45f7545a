package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// ErrNotRunning is returned by Snapshot when the browser is stopped.
var ErrNotRunning = errors.New("discovery is not running")

// BrowseFunc runs an mDNS browse until ctx is done, sending resolved
// entries on added and departures on removed. It may close added when it
// returns.
type BrowseFunc func(ctx context.Context, service, domain string, added, removed chan<- *ServiceEntry) error

// BrowserConfig configures a Browser.
type BrowserConfig struct {
	// Interface restricts browsing to one network interface. Empty means
	// all multicast interfaces.
	Interface string

	// Browse replaces the mDNS implementation. Nil uses zeroconf.
	Browse BrowseFunc

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{}
}

// Browser watches the network for Android TVs.
type Browser struct {
	config   BrowserConfig
	listener Listener

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	queries chan chan []DiscoveredTv
}

// NewBrowser creates a stopped browser.
func NewBrowser(config BrowserConfig, listener Listener) *Browser {
	if listener == nil {
		listener = NopListener{}
	}
	if config.Browse == nil {
		config.Browse = zeroconfBrowse(config.Interface)
	}
	return &Browser{config: config, listener: listener}
}

// Start begins browsing. A running browse is stopped first, without an
// OnDiscoveryStopped event, and its results are forgotten.
func (b *Browser) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.debugLog("discovery already active, restarting")
		b.stopLocked()
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})
	b.queries = make(chan chan []DiscoveredTv)

	added := make(chan *ServiceEntry)
	removed := make(chan *ServiceEntry)
	browseErr := make(chan error, 1)

	go func() {
		browseErr <- b.config.Browse(ctx, ServiceType, Domain, added, removed)
	}()
	go b.run(ctx, added, removed, browseErr, b.queries, b.done)
	return nil
}

// Stop ends browsing and reports OnDiscoveryStopped. It is a no-op when the
// browser is not running.
func (b *Browser) Stop() {
	b.mu.Lock()
	running := b.cancel != nil
	b.stopLocked()
	b.mu.Unlock()

	if running {
		b.listener.OnDiscoveryStopped()
	}
}

func (b *Browser) stopLocked() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
	b.cancel = nil
	b.done = nil
	b.queries = nil
}

// Running reports whether a browse is active.
func (b *Browser) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// Snapshot returns the TVs currently known.
func (b *Browser) Snapshot() ([]DiscoveredTv, error) {
	b.mu.Lock()
	queries, done := b.queries, b.done
	b.mu.Unlock()
	if queries == nil {
		return nil, ErrNotRunning
	}

	reply := make(chan []DiscoveredTv, 1)
	select {
	case queries <- reply:
		return <-reply, nil
	case <-done:
		return nil, ErrNotRunning
	}
}

// run owns the map of known TVs.
func (b *Browser) run(ctx context.Context, added, removed <-chan *ServiceEntry, browseErr <-chan error,
	queries <-chan chan []DiscoveredTv, done chan<- struct{}) {
	defer close(done)

	tvs := make(map[string]DiscoveredTv)
	b.listener.OnDiscoveryStarted()

	for {
		select {
		case entry, ok := <-added:
			if !ok {
				added = nil
				continue
			}
			tv, valid := entry.ToDiscoveredTv()
			if !valid {
				b.debugLog("skipping unresolved service", "instance", entry.Instance)
				continue
			}
			if existing, found := tvs[tv.Key()]; found {
				existing.Addresses = mergeAddresses(existing.Addresses, tv.Addresses)
				tvs[tv.Key()] = existing
				continue
			}
			tvs[tv.Key()] = tv
			b.debugLog("TV found", "tv", tv.String())
			b.listener.OnTvFound(tv)

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			existing, found := tvs[entry.Instance]
			if !found {
				continue
			}
			existing.Addresses = removeAddresses(existing.Addresses, entry.Addrs)
			if len(existing.Addresses) > 0 && len(entry.Addrs) > 0 {
				tvs[entry.Instance] = existing
				continue
			}
			delete(tvs, entry.Instance)
			b.debugLog("TV lost", "tv", existing.String())
			b.listener.OnTvLost(existing)

		case err := <-browseErr:
			browseErr = nil
			if err != nil && ctx.Err() == nil {
				b.listener.OnDiscoveryError(fmt.Sprintf("discovery failed: %v", err), 0)
			}

		case reply := <-queries:
			out := make([]DiscoveredTv, 0, len(tvs))
			for _, tv := range tvs {
				out = append(out, tv)
			}
			reply <- out

		case <-ctx.Done():
			return
		}
	}
}

func (b *Browser) debugLog(msg string, args ...any) {
	if b.config.Logger != nil {
		b.config.Logger.Debug(msg, args...)
	}
}

// zeroconfBrowse adapts zeroconf.Browse to BrowseFunc.
func zeroconfBrowse(iface string) BrowseFunc {
	return func(ctx context.Context, service, domain string, added, removed chan<- *ServiceEntry) error {
		var opts []zeroconf.ClientOption
		if iface != "" {
			ifi, err := net.InterfaceByName(iface)
			if err != nil {
				return fmt.Errorf("interface %q: %w", iface, err)
			}
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*ifi}))
		}

		entries := make(chan *zeroconf.ServiceEntry)
		gone := make(chan *zeroconf.ServiceEntry)
		go forwardEntries(ctx, entries, added)
		go forwardEntries(ctx, gone, removed)

		return zeroconf.Browse(ctx, service, domain, entries, gone, opts...)
	}
}

func forwardEntries(ctx context.Context, in <-chan *zeroconf.ServiceEntry, out chan<- *ServiceEntry) {
	for {
		select {
		case e, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- fromZeroconf(e):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func fromZeroconf(e *zeroconf.ServiceEntry) *ServiceEntry {
	addrs := make([]string, 0, len(e.AddrIPv4)+len(e.AddrIPv6))
	for _, ip := range e.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range e.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return &ServiceEntry{
		Instance: e.Instance,
		Service:  e.Service,
		Domain:   e.Domain,
		Host:     e.HostName,
		Port:     e.Port,
		Text:     e.Text,
		Addrs:    addrs,
	}
}
