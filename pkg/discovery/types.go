package discovery

import (
	"fmt"
	"net"
	"strings"

	"github.com/Drenae/AndroidTvRemote/pkg/transport"
)

// mDNS constants.
const (
	// ServiceType is the service Android TVs advertise for the remote
	// protocol.
	ServiceType = "_androidtvremote2._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// TXTFriendlyName is the TXT key carrying the user-visible TV name.
	TXTFriendlyName = "fn"
)

// DiscoveredTv is a TV found on the network.
type DiscoveredTv struct {
	// ServiceName is the mDNS instance name. It identifies the TV.
	ServiceName string

	// FriendlyName is the name from the "fn" TXT record, or ServiceName.
	FriendlyName string

	// Host is the address to connect to.
	Host string

	// Port is the advertised port, normally the remote port.
	Port int

	// Addresses lists every address seen for the TV.
	Addresses []string
}

// Key returns the identity of the TV.
func (t DiscoveredTv) Key() string { return t.ServiceName }

// Equal reports whether t and o are the same TV. Only ServiceName counts.
func (t DiscoveredTv) Equal(o DiscoveredTv) bool { return t.ServiceName == o.ServiceName }

// PairingEndpoint returns the pairing port of the TV.
func (t DiscoveredTv) PairingEndpoint() transport.Endpoint {
	return transport.PairingEndpoint(t.Host)
}

// RemoteEndpoint returns the remote port of the TV.
func (t DiscoveredTv) RemoteEndpoint() transport.Endpoint {
	return transport.RemoteEndpoint(t.Host)
}

func (t DiscoveredTv) String() string {
	return fmt.Sprintf("%s (%s) at %s", t.FriendlyName, t.ServiceName, net.JoinHostPort(t.Host, fmt.Sprint(t.Port)))
}

// ServiceEntry is a resolved mDNS instance, independent of the mDNS
// library.
type ServiceEntry struct {
	Instance string
	Service  string
	Domain   string
	Host     string
	Port     int
	Text     []string
	Addrs    []string
}

// ToDiscoveredTv converts the entry. ok is false when the entry carries no
// address to connect to.
func (e *ServiceEntry) ToDiscoveredTv() (tv DiscoveredTv, ok bool) {
	if e.Instance == "" || len(e.Addrs) == 0 {
		return DiscoveredTv{}, false
	}
	name := e.Instance
	if fn, found := StringsToTXTRecords(e.Text)[TXTFriendlyName]; found && fn != "" {
		name = fn
	}
	return DiscoveredTv{
		ServiceName:  e.Instance,
		FriendlyName: name,
		Host:         preferredAddress(e.Addrs),
		Port:         e.Port,
		Addresses:    append([]string(nil), e.Addrs...),
	}, true
}

// TXTRecordMap holds decoded TXT key/value pairs.
type TXTRecordMap map[string]string

// StringsToTXTRecords decodes "key=value" strings. A key without "=" maps
// to the empty string.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		key, value, _ := strings.Cut(s, "=")
		if key == "" {
			continue
		}
		txt[key] = value
	}
	return txt
}

// preferredAddress picks the first IPv4 address, falling back to the first
// address of any kind.
func preferredAddress(addrs []string) string {
	for _, a := range addrs {
		if ip := net.ParseIP(a); ip != nil && ip.To4() != nil {
			return a
		}
	}
	return addrs[0]
}

// mergeAddresses adds new addresses to existing, skipping duplicates.
func mergeAddresses(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range added {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses drops gone from addresses.
func removeAddresses(addresses, gone []string) []string {
	drop := make(map[string]bool, len(gone))
	for _, addr := range gone {
		drop[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !drop[addr] {
			result = append(result, addr)
		}
	}
	return result
}
