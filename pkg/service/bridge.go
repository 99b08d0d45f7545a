package service

import (
	"fmt"

	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/remote"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// pairingBridge forwards pairing events of one connection cycle.
type pairingBridge struct {
	client *Client
	cycle  uint64
}

var _ pairing.Listener = (*pairingBridge)(nil)

func (b *pairingBridge) OnSessionCreated() {
	b.client.notify(b.cycle, Event{Type: EventSessionCreated}, Listener.OnSessionCreated)
}

func (b *pairingBridge) OnSecretRequested() {
	b.client.notify(b.cycle, Event{Type: EventSecretRequested}, Listener.OnSecretRequested)
}

func (b *pairingBridge) OnPaired() {
	b.client.notify(b.cycle, Event{Type: EventPaired}, Listener.OnPaired)
}

func (b *pairingBridge) OnSessionEnded() {
	b.client.debugLog("pairing session ended by TV")
}

func (b *pairingBridge) OnError(err error) {
	err = fmt.Errorf("pairing: %w", err)
	b.client.notify(b.cycle, Event{Type: EventError, Error: err}, func(l Listener) { l.OnError(err) })
}

// remoteBridge forwards remote session events of one connection cycle.
type remoteBridge struct {
	client *Client
	cycle  uint64
}

var _ remote.Listener = (*remoteBridge)(nil)

func (b *remoteBridge) OnConnected() {
	c := b.client
	c.mu.Lock()
	if b.cycle == c.cycle {
		c.disconnected = false
	}
	c.mu.Unlock()
	c.notify(b.cycle, Event{Type: EventConnected}, Listener.OnConnected)
}

func (b *remoteBridge) OnDisconnected() {
	b.client.disconnect(b.cycle)
}

func (b *remoteBridge) OnSslError(err error) {
	b.client.notify(b.cycle, Event{Type: EventSslError, Error: err}, func(l Listener) { l.OnSslError(err) })
}

func (b *remoteBridge) OnError(err error) {
	err = fmt.Errorf("remote session: %w", err)
	b.client.notify(b.cycle, Event{Type: EventError, Error: err}, func(l Listener) { l.OnError(err) })
}

func (b *remoteBridge) OnDeviceInfo(info *wire.DeviceInfo) {
	b.client.debugLog("TV info", "model", info.Model, "vendor", info.Vendor, "app", info.AppVersion)
	b.client.notify(b.cycle, Event{Type: EventDeviceInfo, DeviceInfo: info}, nil)
}

func (b *remoteBridge) OnVolume(level *wire.RemoteSetVolumeLevel) {
	b.client.notify(b.cycle, Event{Type: EventVolumeChanged, Volume: level}, nil)
}

func (b *remoteBridge) OnPowerState(on bool) {
	b.client.notify(b.cycle, Event{Type: EventPowerChanged, Powered: on}, nil)
}

// discoveryBridge emits discovery events and forwards them to the
// caller's listener.
type discoveryBridge struct {
	client *Client
	next   discovery.Listener
}

var _ discovery.Listener = discoveryBridge{}

func (b discoveryBridge) OnDiscoveryStarted() { b.next.OnDiscoveryStarted() }
func (b discoveryBridge) OnDiscoveryStopped() { b.next.OnDiscoveryStopped() }

func (b discoveryBridge) OnTvFound(tv discovery.DiscoveredTv) {
	b.next.OnTvFound(tv)
	b.client.emitEvent(Event{Type: EventTvFound, TV: &tv})
}

func (b discoveryBridge) OnTvLost(tv discovery.DiscoveredTv) {
	b.next.OnTvLost(tv)
	b.client.emitEvent(Event{Type: EventTvLost, TV: &tv})
}

func (b discoveryBridge) OnDiscoveryError(message string, code int) {
	b.client.debugLog("discovery error", "message", message, "code", code)
	b.next.OnDiscoveryError(message, code)
}
