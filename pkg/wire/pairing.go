package wire

// ProtocolVersion is the polo protocol version sent in every pairing envelope.
const ProtocolVersion uint32 = 2

// Status is the result code carried by every pairing envelope.
type Status int32

const (
	StatusUnknown          Status = 0
	StatusOK               Status = 200
	StatusError            Status = 400
	StatusBadConfiguration Status = 401
	StatusBadSecret        Status = 402
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	case StatusBadConfiguration:
		return "BAD_CONFIGURATION"
	case StatusBadSecret:
		return "BAD_SECRET"
	default:
		return "UNKNOWN"
	}
}

// Role is the device role negotiated during pairing.
type Role int32

const (
	RoleUnknown Role = 0
	RoleInput   Role = 1
	RoleOutput  Role = 2
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleInput:
		return "INPUT"
	case RoleOutput:
		return "OUTPUT"
	default:
		return "UNKNOWN"
	}
}

// EncodingType is the symbol alphabet of the pairing code.
type EncodingType int32

const (
	EncodingUnknown      EncodingType = 0
	EncodingAlphanumeric EncodingType = 1
	EncodingNumeric      EncodingType = 2
	EncodingHexadecimal  EncodingType = 3
	EncodingQRCode       EncodingType = 4
)

// Encoding describes how the pairing code is displayed.
type Encoding struct {
	Type         EncodingType
	SymbolLength uint32
}

// HexEncoding is the six-symbol hexadecimal code shown by Android TVs.
var HexEncoding = Encoding{Type: EncodingHexadecimal, SymbolLength: 6}

// PairingHeader carries the fields every pairing envelope has.
type PairingHeader struct {
	ProtocolVersion uint32
	Status          Status
}

// Header returns the envelope header.
func (h *PairingHeader) Header() *PairingHeader { return h }

// OK reports whether the peer signalled success.
func (h *PairingHeader) OK() bool { return h.Status == StatusOK }

func okHeader() PairingHeader {
	return PairingHeader{ProtocolVersion: ProtocolVersion, Status: StatusOK}
}

// PairingMessage is implemented by every pairing-family message.
type PairingMessage interface {
	Message
	Header() *PairingHeader
}

// PairingRequest opens a pairing session.
type PairingRequest struct {
	PairingHeader
	ServiceName string
	ClientName  string
}

// Kind implements Message.
func (*PairingRequest) Kind() Kind { return KindPairingRequest }

// NewPairingRequest builds a request with an OK header.
func NewPairingRequest(serviceName, clientName string) *PairingRequest {
	return &PairingRequest{PairingHeader: okHeader(), ServiceName: serviceName, ClientName: clientName}
}

// PairingRequestAck confirms the session was created.
type PairingRequestAck struct {
	PairingHeader
	ServerName string
}

// Kind implements Message.
func (*PairingRequestAck) Kind() Kind { return KindPairingRequestAck }

// PairingOption advertises supported code encodings and the preferred role.
type PairingOption struct {
	PairingHeader
	InputEncodings  []Encoding
	OutputEncodings []Encoding
	PreferredRole   Role
}

// Kind implements Message.
func (*PairingOption) Kind() Kind { return KindPairingOption }

// NewPairingOption builds an option message offering enc for role.
func NewPairingOption(role Role, enc Encoding) *PairingOption {
	o := &PairingOption{PairingHeader: okHeader(), PreferredRole: role}
	if role == RoleInput {
		o.InputEncodings = []Encoding{enc}
	} else {
		o.OutputEncodings = []Encoding{enc}
	}
	return o
}

// PairingConfiguration fixes the encoding and the client role.
type PairingConfiguration struct {
	PairingHeader
	Encoding   *Encoding
	ClientRole Role
}

// Kind implements Message.
func (*PairingConfiguration) Kind() Kind { return KindPairingConfiguration }

// NewPairingConfiguration builds a configuration message.
func NewPairingConfiguration(role Role, enc Encoding) *PairingConfiguration {
	return &PairingConfiguration{PairingHeader: okHeader(), Encoding: &enc, ClientRole: role}
}

// PairingConfigurationAck means the device now shows the pairing code.
type PairingConfigurationAck struct {
	PairingHeader
}

// Kind implements Message.
func (*PairingConfigurationAck) Kind() Kind { return KindPairingConfigurationAck }

// PairingSecret carries the hashed pairing code.
type PairingSecret struct {
	PairingHeader
	Secret []byte
}

// Kind implements Message.
func (*PairingSecret) Kind() Kind { return KindPairingSecret }

// NewPairingSecret builds a secret message.
func NewPairingSecret(secret []byte) *PairingSecret {
	return &PairingSecret{PairingHeader: okHeader(), Secret: secret}
}

// PairingSecretAck is the device's verdict on the secret.
type PairingSecretAck struct {
	PairingHeader
	Secret []byte
}

// Kind implements Message.
func (*PairingSecretAck) Kind() Kind { return KindPairingSecretAck }

// PairingStatus is an envelope with a status but no body. Devices send it
// to reject a step (e.g. BAD_SECRET).
type PairingStatus struct {
	PairingHeader
}

// Kind implements Message.
func (*PairingStatus) Kind() Kind { return KindPairingStatus }
