package log

import "time"

// Event is one record of the protocol trace. Exactly one of the payload
// pointers is set. Integer CBOR keys keep the file small.
type Event struct {
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID names the TLS connection the event belongs to (a UUID).
	ConnectionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`
	Channel   Channel   `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the TV address as host:port.
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // raw frame
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"` // decoded message
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // state machine step
	ControlMsg  *ControlMsgEvent  `cbor:"13,keyasint,omitempty"` // ping, pong or close
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"`
}

const unknownName = "UNKNOWN"

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return unknownName
}

// Direction is IN for data read from the TV and OUT for data sent to it.
type Direction uint8

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

var directionNames = []string{"IN", "OUT"}

func (d Direction) String() string { return enumName(directionNames, uint8(d)) }

// Layer is where in the stack an event was captured.
type Layer uint8

const (
	// LayerTransport sees length-delimited frames as bytes.
	LayerTransport Layer = 0
	// LayerWire sees decoded protobuf messages.
	LayerWire Layer = 1
	// LayerSession sees the pairing and remote state machines.
	LayerSession Layer = 2
)

var layerNames = []string{"TRANSPORT", "WIRE", "SESSION"}

func (l Layer) String() string { return enumName(layerNames, uint8(l)) }

// Category groups events for filtering.
type Category uint8

const (
	CategoryMessage Category = 0
	CategoryControl Category = 1 // pings and closes
	CategoryState   Category = 2
	CategoryError   Category = 3
)

var categoryNames = []string{"MESSAGE", "CONTROL", "STATE", "ERROR"}

func (c Category) String() string { return enumName(categoryNames, uint8(c)) }

// Channel is the TV port an event belongs to.
type Channel uint8

const (
	// ChannelUnknown marks events outside any connection.
	ChannelUnknown Channel = 0
	// ChannelPairing is the pairing port, open only while pairing.
	ChannelPairing Channel = 1
	// ChannelRemote is the remote control port.
	ChannelRemote Channel = 2
)

var channelNames = []string{unknownName, "PAIRING", "REMOTE"}

func (c Channel) String() string { return enumName(channelNames, uint8(c)) }

// FrameEvent is a raw frame as read or written by the framer.
type FrameEvent struct {
	// Size counts the varint length prefix too.
	Size int `cbor:"1,keyasint"`

	// Data holds the frame bytes, cut short for large frames.
	Data      []byte `cbor:"2,keyasint,omitempty"`
	Truncated bool   `cbor:"3,keyasint,omitempty"`
}

// MessageEvent is a decoded pairing or remote message.
type MessageEvent struct {
	// Kind is the message name, e.g. "RemoteKeyInject".
	Kind string `cbor:"1,keyasint"`

	// Status is the pairing status code. Remote messages leave it zero.
	Status int `cbor:"2,keyasint,omitempty"`

	// Summary renders the interesting fields for humans.
	Summary string `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent is one transition of a session state machine.
type StateChangeEvent struct {
	Entity   StateEntity `cbor:"1,keyasint"`
	OldState string      `cbor:"2,keyasint,omitempty"`
	NewState string      `cbor:"3,keyasint"`
	Reason   string      `cbor:"4,keyasint,omitempty"`
}

// StateEntity names the state machine that moved.
type StateEntity uint8

const (
	StateEntityConnection StateEntity = 0
	StateEntityPairing    StateEntity = 1
	StateEntityRemote     StateEntity = 2
)

var stateEntityNames = []string{"CONNECTION", "PAIRING", "REMOTE"}

func (s StateEntity) String() string { return enumName(stateEntityNames, uint8(s)) }

// ControlMsgEvent records keep-alive traffic and closes.
type ControlMsgEvent struct {
	Type ControlMsgType `cbor:"1,keyasint"`

	// Sequence is the value of the TV's ping, echoed in the pong.
	Sequence uint32 `cbor:"2,keyasint,omitempty"`
}

// ControlMsgType distinguishes control events.
type ControlMsgType uint8

const (
	// ControlMsgPing is a ping request from the TV.
	ControlMsgPing ControlMsgType = 0
	// ControlMsgPong is the client's answer.
	ControlMsgPong ControlMsgType = 1
	// ControlMsgClose is a connection close by either side.
	ControlMsgClose ControlMsgType = 2
)

var controlMsgNames = []string{"PING", "PONG", "CLOSE"}

func (c ControlMsgType) String() string { return enumName(controlMsgNames, uint8(c)) }

// ErrorEventData is an error seen at any layer.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Code is the pairing status or remote error code, if there is one.
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context says what was being done, e.g. "reading frame".
	Context string `cbor:"4,keyasint,omitempty"`
}
