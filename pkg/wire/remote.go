package wire

import (
	"fmt"
	"strings"
)

// Direction is the key action carried by RemoteKeyInject.
type Direction int32

const (
	DirectionUnknown Direction = 0
	// DirectionDown presses and holds a key (START_LONG).
	DirectionDown Direction = 1
	// DirectionUp releases a held key (END_LONG).
	DirectionUp Direction = 2
	// DirectionShort is a complete press and release.
	DirectionShort Direction = 3
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "DOWN"
	case DirectionUp:
		return "UP"
	case DirectionShort:
		return "SHORT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection accepts down/up/short (any case) and the protocol names
// START_LONG/END_LONG/SHORT.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DOWN", "START_LONG":
		return DirectionDown, nil
	case "UP", "END_LONG":
		return DirectionUp, nil
	case "SHORT", "":
		return DirectionShort, nil
	default:
		return DirectionUnknown, fmt.Errorf("unknown key direction %q", s)
	}
}

// DeviceInfo identifies the client to the TV. The two unknown fields are
// device-defined and passed through as given.
type DeviceInfo struct {
	Model       string
	Vendor      string
	Unknown1    int32
	Unknown2    string
	PackageName string
	AppVersion  string
}

// RemoteConfigure is exchanged in both directions at session start.
type RemoteConfigure struct {
	Code1      int32
	DeviceInfo *DeviceInfo
}

// Kind implements Message.
func (*RemoteConfigure) Kind() Kind { return KindRemoteConfigure }

// RemoteSetActive declares the active controller. The device sends it as
// the acknowledgement of RemoteConfigure.
type RemoteSetActive struct {
	Active int32
}

// Kind implements Message.
func (*RemoteSetActive) Kind() Kind { return KindRemoteSetActive }

// RemoteError reports a device-side failure. Message is the raw
// RemoteMessage the device is complaining about, if any.
type RemoteError struct {
	Value   bool
	Message []byte
}

// Kind implements Message.
func (*RemoteError) Kind() Kind { return KindRemoteError }

// RemotePingRequest is sent periodically by the device and must be answered.
type RemotePingRequest struct {
	Val1 int32
	Val2 int32
}

// Kind implements Message.
func (*RemotePingRequest) Kind() Kind { return KindRemotePingRequest }

// RemotePingResponse answers a ping by echoing Val1.
type RemotePingResponse struct {
	Val1 int32
}

// Kind implements Message.
func (*RemotePingResponse) Kind() Kind { return KindRemotePingResponse }

// RemoteKeyInject presses a key.
type RemoteKeyInject struct {
	KeyCode   KeyCode
	Direction Direction
}

// Kind implements Message.
func (*RemoteKeyInject) Kind() Kind { return KindRemoteKeyInject }

// RemoteStart reports the TV's power state.
type RemoteStart struct {
	Started bool
}

// Kind implements Message.
func (*RemoteStart) Kind() Kind { return KindRemoteStart }

// RemoteSetVolumeLevel reports the current volume.
type RemoteSetVolumeLevel struct {
	Unknown1    uint32
	Unknown2    uint32
	PlayerModel string
	Unknown4    uint32
	Unknown5    uint32
	VolumeMax   uint32
	VolumeLevel uint32
	VolumeMuted bool
}

// Kind implements Message.
func (*RemoteSetVolumeLevel) Kind() Kind { return KindRemoteSetVolumeLevel }

// RemoteAppLinkLaunch asks the TV to open a deep link or app URI.
type RemoteAppLinkLaunch struct {
	AppLink string
}

// Kind implements Message.
func (*RemoteAppLinkLaunch) Kind() Kind { return KindRemoteAppLinkLaunch }
