package transport

import (
	"fmt"
	"net"
	"strconv"
)

// Well-known ports of the Android TV Remote service.
const (
	// PairingPort is where the PIN pairing protocol runs.
	PairingPort = 6467

	// RemotePort is where the remote control protocol runs.
	RemotePort = 6466
)

// Endpoint is a TV host and port.
type Endpoint struct {
	Host string
	Port int
}

// String returns host:port, bracketing IPv6 literals.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Validate checks that the endpoint can be dialed.
func (e Endpoint) Validate() error {
	if e.Host == "" {
		return fmt.Errorf("endpoint host is empty")
	}
	if e.Port <= 0 || e.Port > 65535 {
		return fmt.Errorf("endpoint port %d out of range", e.Port)
	}
	return nil
}

// PairingEndpoint returns host on the pairing port.
func PairingEndpoint(host string) Endpoint {
	return Endpoint{Host: host, Port: PairingPort}
}

// RemoteEndpoint returns host on the remote control port.
func RemoteEndpoint(host string) Endpoint {
	return Endpoint{Host: host, Port: RemotePort}
}

// ParseEndpoint parses "host" or "host:port". A bare host gets defaultPort.
func ParseEndpoint(s string, defaultPort int) (Endpoint, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		// No port given; s may still be a bare IPv6 literal.
		ep := Endpoint{Host: s, Port: defaultPort}
		return ep, ep.Validate()
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	ep := Endpoint{Host: host, Port: port}
	return ep, ep.Validate()
}
