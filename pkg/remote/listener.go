package remote

import "github.com/Drenae/AndroidTvRemote/pkg/wire"

// Listener receives remote session events. Callbacks run either on the
// goroutine that called Connect or on the session's dispatch goroutine;
// they must not block for long.
type Listener interface {
	// OnConnected is called when the session became active.
	OnConnected()

	// OnDisconnected is called once for every active connection that
	// ends, whether closed locally or lost.
	OnDisconnected()

	// OnSslError is called when the TLS handshake failed, typically
	// because the TV no longer trusts the client certificate.
	OnSslError(err error)

	// OnError is called for every other failure.
	OnError(err error)

	// OnDeviceInfo reports the device info the TV sent in the handshake.
	OnDeviceInfo(info *wire.DeviceInfo)

	// OnVolume reports a volume change.
	OnVolume(level *wire.RemoteSetVolumeLevel)

	// OnPowerState reports whether the TV is on.
	OnPowerState(on bool)
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) OnConnected()                        {}
func (NopListener) OnDisconnected()                     {}
func (NopListener) OnSslError(error)                    {}
func (NopListener) OnError(error)                       {}
func (NopListener) OnDeviceInfo(*wire.DeviceInfo)       {}
func (NopListener) OnVolume(*wire.RemoteSetVolumeLevel) {}
func (NopListener) OnPowerState(bool)                   {}

var _ Listener = NopListener{}
