package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
	"github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/remote"
	"github.com/Drenae/AndroidTvRemote/pkg/transport"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// Client errors.
var (
	ErrAlreadyConnected = errors.New("already connected")
	ErrNotConnected     = errors.New("not connected")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Config configures a Client.
type Config struct {
	// Identity supplies the client certificate and the trust policy.
	Identity IdentitySource

	// PairingPort is the TV's pairing port (default: 6467).
	PairingPort int

	// RemotePort is the TV's remote control port (default: 6466).
	RemotePort int

	// Pairing configures pairing sessions.
	Pairing pairing.Config

	// Remote configures remote sessions.
	Remote remote.Config

	// Discovery configures the mDNS browser.
	Discovery discovery.BrowserConfig

	// Logger receives debug output and is passed on to the sessions
	// when theirs is unset. Nil disables it.
	Logger *slog.Logger

	// ProtocolLogger is passed on to the sessions when theirs is unset.
	ProtocolLogger log.Logger
}

// DefaultConfig returns a Config with default session settings. Identity
// must still be set.
func DefaultConfig() Config {
	return Config{
		PairingPort: transport.PairingPort,
		RemotePort:  transport.RemotePort,
		Pairing:     pairing.DefaultConfig(),
		Remote:      remote.DefaultConfig(),
		Discovery:   discovery.DefaultBrowserConfig(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Identity == nil {
		return fmt.Errorf("%w: identity source is required", ErrInvalidConfig)
	}
	if c.PairingPort <= 0 || c.PairingPort > 65535 {
		return fmt.Errorf("%w: pairing port %d out of range", ErrInvalidConfig, c.PairingPort)
	}
	if c.RemotePort <= 0 || c.RemotePort > 65535 {
		return fmt.Errorf("%w: remote port %d out of range", ErrInvalidConfig, c.RemotePort)
	}
	if err := c.Pairing.Validate(); err != nil {
		return fmt.Errorf("%w: pairing: %v", ErrInvalidConfig, err)
	}
	if err := c.Remote.Validate(); err != nil {
		return fmt.Errorf("%w: remote: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Event types for client callbacks.
type EventType uint8

const (
	// EventConnectingToRemote - remote session handshake starting.
	EventConnectingToRemote EventType = iota

	// EventConnected - remote session active.
	EventConnected

	// EventDisconnected - remote session lost or closed.
	EventDisconnected

	// EventSessionCreated - the TV accepted the pairing request.
	EventSessionCreated

	// EventSecretRequested - the TV shows a code to enter.
	EventSecretRequested

	// EventPaired - pairing succeeded.
	EventPaired

	// EventSslError - the TLS handshake with the remote port failed.
	EventSslError

	// EventError - a pairing or remote session error.
	EventError

	// EventDeviceInfo - the TV described itself.
	EventDeviceInfo

	// EventVolumeChanged - the TV reported its volume.
	EventVolumeChanged

	// EventPowerChanged - the TV reported its power state.
	EventPowerChanged

	// EventTvFound - a TV appeared on the network.
	EventTvFound

	// EventTvLost - a TV left the network.
	EventTvLost
)

// String returns the event type name.
func (e EventType) String() string {
	switch e {
	case EventConnectingToRemote:
		return "CONNECTING_TO_REMOTE"
	case EventConnected:
		return "CONNECTED"
	case EventDisconnected:
		return "DISCONNECTED"
	case EventSessionCreated:
		return "SESSION_CREATED"
	case EventSecretRequested:
		return "SECRET_REQUESTED"
	case EventPaired:
		return "PAIRED"
	case EventSslError:
		return "SSL_ERROR"
	case EventError:
		return "ERROR"
	case EventDeviceInfo:
		return "DEVICE_INFO"
	case EventVolumeChanged:
		return "VOLUME_CHANGED"
	case EventPowerChanged:
		return "POWER_CHANGED"
	case EventTvFound:
		return "TV_FOUND"
	case EventTvLost:
		return "TV_LOST"
	default:
		return "UNKNOWN"
	}
}

// Event represents a client event.
type Event struct {
	// Type is the event type.
	Type EventType

	// Host is the TV the event concerns (empty for discovery events).
	Host string

	// TV is set for discovery events.
	TV *discovery.DiscoveredTv

	// DeviceInfo is set for EventDeviceInfo.
	DeviceInfo *wire.DeviceInfo

	// Volume is set for EventVolumeChanged.
	Volume *wire.RemoteSetVolumeLevel

	// Powered is set for EventPowerChanged.
	Powered bool

	// Error is set if the event is an error.
	Error error
}

// EventHandler handles client events.
type EventHandler func(Event)
