// Package discovery finds Android TVs on the local network over mDNS.
//
// TVs that accept remote-control connections advertise the
// "_androidtvremote2._tcp" service. The Browser resolves each instance to a
// DiscoveredTv and reports arrivals and departures to a Listener. Instances
// are keyed by service name only, so a TV that changes address is the same
// TV.
//
// All browser state is owned by a single goroutine; the mDNS library and
// callers talk to it over channels.
package discovery
