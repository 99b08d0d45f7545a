package wire

import (
	"fmt"
	"strings"
)

// Family identifies which envelope a frame payload is decoded as.
type Family uint8

const (
	// FamilyPairing is the polo OuterMessage spoken on the pairing port.
	FamilyPairing Family = iota + 1
	// FamilyRemote is the RemoteMessage spoken on the control port.
	FamilyRemote
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyPairing:
		return "pairing"
	case FamilyRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Kind tags each ProtocolMessage variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindUnknown

	KindPairingRequest
	KindPairingRequestAck
	KindPairingOption
	KindPairingConfiguration
	KindPairingConfigurationAck
	KindPairingSecret
	KindPairingSecretAck
	KindPairingStatus

	KindRemoteConfigure
	KindRemoteSetActive
	KindRemoteError
	KindRemotePingRequest
	KindRemotePingResponse
	KindRemoteKeyInject
	KindRemoteStart
	KindRemoteSetVolumeLevel
	KindRemoteAppLinkLaunch
)

var kindNames = map[Kind]string{
	KindEmpty:                   "Empty",
	KindUnknown:                 "Unknown",
	KindPairingRequest:          "PairingRequest",
	KindPairingRequestAck:       "PairingRequestAck",
	KindPairingOption:           "PairingOption",
	KindPairingConfiguration:    "PairingConfiguration",
	KindPairingConfigurationAck: "PairingConfigurationAck",
	KindPairingSecret:           "PairingSecret",
	KindPairingSecretAck:        "PairingSecretAck",
	KindPairingStatus:           "PairingStatus",
	KindRemoteConfigure:         "RemoteConfigure",
	KindRemoteSetActive:         "RemoteSetActive",
	KindRemoteError:             "RemoteError",
	KindRemotePingRequest:       "RemotePingRequest",
	KindRemotePingResponse:      "RemotePingResponse",
	KindRemoteKeyInject:         "RemoteKeyInject",
	KindRemoteStart:             "RemoteStart",
	KindRemoteSetVolumeLevel:    "RemoteSetVolumeLevel",
	KindRemoteAppLinkLaunch:     "RemoteAppLinkLaunch",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// Message is one decoded frame payload.
type Message interface {
	Kind() Kind
}

// Empty is the message carried by a zero-length frame.
type Empty struct{}

// Kind implements Message.
func (*Empty) Kind() Kind { return KindEmpty }

// Unknown is a payload whose top-level fields are all unrecognised. The
// original payload is kept so it can be logged or re-sent verbatim.
type Unknown struct {
	Family  Family
	Tag     int32
	Payload []byte
}

// Kind implements Message.
func (*Unknown) Kind() Kind { return KindUnknown }

// Summary renders msg's fields on one line for protocol logs.
func Summary(msg Message) string {
	switch m := msg.(type) {
	case nil:
		return ""
	case *Empty:
		return "{}"
	case *Unknown:
		return fmt.Sprintf("tag=%d len=%d", m.Tag, len(m.Payload))
	case *RemoteKeyInject:
		return m.KeyCode.String() + " " + m.Direction.String()
	case *PairingSecret:
		return fmt.Sprintf("secret=%d bytes", len(m.Secret))
	default:
		return strings.TrimPrefix(fmt.Sprintf("%+v", msg), "&")
	}
}
