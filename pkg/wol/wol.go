// Package wol wakes sleeping TVs with Wake-on-LAN magic packets.
package wol

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
)

// Defaults.
const (
	DefaultAddress = "255.255.255.255"
	DefaultPort    = 9
)

// PacketSize is the size of a magic packet.
const PacketSize = 6 + 16*6

// Config configures a Sender.
type Config struct {
	// Address is the broadcast address (default: 255.255.255.255).
	Address string

	// Port is the UDP port (default: 9).
	Port int

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger
}

// Sender sends magic packets.
type Sender struct {
	config Config
}

// NewSender creates a sender. Zero config fields take defaults.
func NewSender(config Config) *Sender {
	if config.Address == "" {
		config.Address = DefaultAddress
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	return &Sender{config: config}
}

// MagicPacket builds the packet for mac: six 0xFF bytes followed by the
// address sixteen times.
func MagicPacket(mac string) ([]byte, error) {
	hw, err := net.ParseMAC(mac)
	if err != nil {
		return nil, fmt.Errorf("invalid MAC address %q: %w", mac, err)
	}
	if len(hw) != 6 {
		return nil, fmt.Errorf("invalid MAC address %q: want 6 bytes, got %d", mac, len(hw))
	}

	pkt := make([]byte, 0, PacketSize)
	for range 6 {
		pkt = append(pkt, 0xFF)
	}
	for range 16 {
		pkt = append(pkt, hw...)
	}
	return pkt, nil
}

// Wake sends one magic packet for mac.
func (s *Sender) Wake(ctx context.Context, mac string) error {
	pkt, err := MagicPacket(mac)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.config.Address, strconv.Itoa(s.config.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp4", addr)
	if err != nil {
		return fmt.Errorf("wol: dial %s: %w", addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(pkt); err != nil {
		return fmt.Errorf("wol: send to %s: %w", addr, err)
	}
	if s.config.Logger != nil {
		s.config.Logger.Debug("magic packet sent", "mac", mac, "addr", addr)
	}
	return nil
}

// BroadcastAddress returns the directed broadcast address of the first
// IPv4 network on iface.
func BroadcastAddress(iface string) (string, error) {
	ifi, err := net.InterfaceByName(iface)
	if err != nil {
		return "", err
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return "", err
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if b := broadcastOf(ipnet); b != nil {
			return b.String(), nil
		}
	}
	return "", fmt.Errorf("interface %s has no IPv4 address", iface)
}

func broadcastOf(n *net.IPNet) net.IP {
	ip4 := n.IP.To4()
	if ip4 == nil || len(n.Mask) != net.IPv4len {
		return nil
	}
	out := make(net.IP, net.IPv4len)
	for i := range ip4 {
		out[i] = ip4[i] | ^n.Mask[i]
	}
	return out
}
