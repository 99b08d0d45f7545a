package discovery

// Listener receives discovery events. Callbacks run on the browser
// goroutine, one at a time, and must not call Stop or Snapshot.
type Listener interface {
	OnDiscoveryStarted()
	OnDiscoveryStopped()

	// OnTvFound is called once per TV, when it is first resolved.
	OnTvFound(tv DiscoveredTv)

	// OnTvLost is called when the last address of a TV went away.
	OnTvLost(tv DiscoveredTv)

	// OnDiscoveryError reports a failure of the mDNS layer. code is 0 when
	// no numeric code applies.
	OnDiscoveryError(message string, code int)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) OnDiscoveryStarted()          {}
func (NopListener) OnDiscoveryStopped()          {}
func (NopListener) OnTvFound(DiscoveredTv)       {}
func (NopListener) OnTvLost(DiscoveredTv)        {}
func (NopListener) OnDiscoveryError(string, int) {}

var _ Listener = NopListener{}
