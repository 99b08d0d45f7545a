package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Top-level field numbers of the pairing OuterMessage.
const (
	pairingFieldProtocolVersion  protowire.Number = 1
	pairingFieldStatus           protowire.Number = 2
	pairingFieldRequest          protowire.Number = 10
	pairingFieldRequestAck       protowire.Number = 11
	pairingFieldOptions          protowire.Number = 20
	pairingFieldConfiguration    protowire.Number = 30
	pairingFieldConfigurationAck protowire.Number = 31
	pairingFieldSecret           protowire.Number = 40
	pairingFieldSecretAck        protowire.Number = 41
)

// Top-level field numbers of the RemoteMessage.
const (
	remoteFieldConfigure      protowire.Number = 1
	remoteFieldSetActive      protowire.Number = 2
	remoteFieldError          protowire.Number = 3
	remoteFieldPingRequest    protowire.Number = 8
	remoteFieldPingResponse   protowire.Number = 9
	remoteFieldKeyInject      protowire.Number = 10
	remoteFieldStart          protowire.Number = 40
	remoteFieldSetVolumeLevel protowire.Number = 50
	remoteFieldAppLinkLaunch  protowire.Number = 90
)

// ErrUnsupportedMessage is returned when encoding a value the codec does not know.
var ErrUnsupportedMessage = errors.New("wire: unsupported message")

// CodecError reports a frame payload that is not a valid message. It is not
// fatal to a connection: the frame is skipped.
type CodecError struct {
	Family Family
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("wire: decode %s message: %v", e.Family, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Codec converts messages to and from frame payloads. It holds no state;
// the zero value is ready to use and may be shared freely.
type Codec struct{}

// NewCodec returns a Codec.
func NewCodec() Codec { return Codec{} }

// Encode serializes msg. The family is implied by the message type.
func (c Codec) Encode(msg Message) ([]byte, error) {
	switch m := msg.(type) {
	case nil:
		return nil, ErrUnsupportedMessage
	case *Empty:
		return []byte{}, nil
	case *Unknown:
		return append([]byte(nil), m.Payload...), nil
	case PairingMessage:
		return c.EncodePairing(m)
	default:
		return c.EncodeRemote(msg)
	}
}

// Decode parses payload as a message of the given family.
func (c Codec) Decode(f Family, payload []byte) (Message, error) {
	switch f {
	case FamilyPairing:
		return c.DecodePairing(payload)
	case FamilyRemote:
		return c.DecodeRemote(payload)
	default:
		return nil, &CodecError{Family: f, Err: fmt.Errorf("unknown family %d", f)}
	}
}

// EncodePairing serializes a pairing-family message.
func (Codec) EncodePairing(msg PairingMessage) ([]byte, error) {
	var body []byte
	var num protowire.Number

	switch m := msg.(type) {
	case *PairingRequest:
		num = pairingFieldRequest
		body = appendString(body, 1, m.ServiceName)
		body = appendString(body, 2, m.ClientName)
	case *PairingRequestAck:
		num = pairingFieldRequestAck
		body = appendString(body, 1, m.ServerName)
	case *PairingOption:
		num = pairingFieldOptions
		for _, e := range m.InputEncodings {
			body = appendMessage(body, 1, encodeEncoding(e))
		}
		for _, e := range m.OutputEncodings {
			body = appendMessage(body, 2, encodeEncoding(e))
		}
		body = appendInt32(body, 3, int32(m.PreferredRole))
	case *PairingConfiguration:
		num = pairingFieldConfiguration
		if m.Encoding != nil {
			body = appendMessage(body, 1, encodeEncoding(*m.Encoding))
		}
		body = appendInt32(body, 2, int32(m.ClientRole))
	case *PairingConfigurationAck:
		num = pairingFieldConfigurationAck
	case *PairingSecret:
		num = pairingFieldSecret
		body = appendBytes(body, 1, m.Secret)
	case *PairingSecretAck:
		num = pairingFieldSecretAck
		body = appendBytes(body, 1, m.Secret)
	case *PairingStatus:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedMessage, msg)
	}

	// The envelope always carries version and status, even when zero.
	h := msg.Header()
	var b []byte
	b = appendVarintField(b, pairingFieldProtocolVersion, uint64(h.ProtocolVersion))
	b = appendVarintField(b, pairingFieldStatus, uint64(int64(h.Status)))
	if num != 0 {
		b = appendMessage(b, num, body)
	}
	return b, nil
}

// DecodePairing parses a pairing OuterMessage.
func (Codec) DecodePairing(payload []byte) (Message, error) {
	if len(payload) == 0 {
		return &Empty{}, nil
	}
	fields, err := parseFields(payload)
	if err != nil {
		return nil, &CodecError{Family: FamilyPairing, Err: err}
	}

	var h PairingHeader
	var body *field
	var unknownTag int32
	for i := range fields {
		f := &fields[i]
		switch f.num {
		case pairingFieldProtocolVersion:
			if err := f.expect(protowire.VarintType); err != nil {
				return nil, &CodecError{Family: FamilyPairing, Err: err}
			}
			h.ProtocolVersion = uint32(f.varint)
		case pairingFieldStatus:
			if err := f.expect(protowire.VarintType); err != nil {
				return nil, &CodecError{Family: FamilyPairing, Err: err}
			}
			h.Status = Status(int32(f.varint))
		case pairingFieldRequest, pairingFieldRequestAck, pairingFieldOptions,
			pairingFieldConfiguration, pairingFieldConfigurationAck,
			pairingFieldSecret, pairingFieldSecretAck:
			if body == nil {
				body = f
			}
		default:
			if unknownTag == 0 {
				unknownTag = int32(f.num)
			}
		}
	}

	if body == nil {
		if unknownTag != 0 {
			return &Unknown{Family: FamilyPairing, Tag: unknownTag, Payload: append([]byte(nil), payload...)}, nil
		}
		return &PairingStatus{PairingHeader: h}, nil
	}

	msg, err := decodePairingBody(h, body)
	if err != nil {
		return nil, &CodecError{Family: FamilyPairing, Err: err}
	}
	return msg, nil
}

func decodePairingBody(h PairingHeader, body *field) (PairingMessage, error) {
	if err := body.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	inner, err := parseFields(body.bytes)
	if err != nil {
		return nil, fmt.Errorf("field %d: %w", body.num, err)
	}

	switch body.num {
	case pairingFieldRequest:
		m := &PairingRequest{PairingHeader: h}
		for _, f := range inner {
			switch f.num {
			case 1:
				m.ServiceName, err = f.str()
			case 2:
				m.ClientName, err = f.str()
			}
			if err != nil {
				return nil, err
			}
		}
		return m, nil

	case pairingFieldRequestAck:
		m := &PairingRequestAck{PairingHeader: h}
		for _, f := range inner {
			if f.num == 1 {
				if m.ServerName, err = f.str(); err != nil {
					return nil, err
				}
			}
		}
		return m, nil

	case pairingFieldOptions:
		m := &PairingOption{PairingHeader: h}
		for _, f := range inner {
			switch f.num {
			case 1, 2:
				e, err := decodeEncoding(f)
				if err != nil {
					return nil, err
				}
				if f.num == 1 {
					m.InputEncodings = append(m.InputEncodings, e)
				} else {
					m.OutputEncodings = append(m.OutputEncodings, e)
				}
			case 3:
				v, err := f.int32()
				if err != nil {
					return nil, err
				}
				m.PreferredRole = Role(v)
			}
		}
		return m, nil

	case pairingFieldConfiguration:
		m := &PairingConfiguration{PairingHeader: h}
		for _, f := range inner {
			switch f.num {
			case 1:
				e, err := decodeEncoding(f)
				if err != nil {
					return nil, err
				}
				m.Encoding = &e
			case 2:
				v, err := f.int32()
				if err != nil {
					return nil, err
				}
				m.ClientRole = Role(v)
			}
		}
		return m, nil

	case pairingFieldConfigurationAck:
		return &PairingConfigurationAck{PairingHeader: h}, nil

	case pairingFieldSecret, pairingFieldSecretAck:
		var secret []byte
		for _, f := range inner {
			if f.num == 1 {
				if secret, err = f.raw(); err != nil {
					return nil, err
				}
			}
		}
		if body.num == pairingFieldSecret {
			return &PairingSecret{PairingHeader: h, Secret: secret}, nil
		}
		return &PairingSecretAck{PairingHeader: h, Secret: secret}, nil
	}
	return nil, fmt.Errorf("unexpected pairing field %d", body.num)
}

func encodeEncoding(e Encoding) []byte {
	var b []byte
	b = appendInt32(b, 1, int32(e.Type))
	b = appendVarint(b, 2, uint64(e.SymbolLength))
	return b
}

func decodeEncoding(f field) (Encoding, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return Encoding{}, err
	}
	inner, err := parseFields(f.bytes)
	if err != nil {
		return Encoding{}, err
	}
	var e Encoding
	for _, g := range inner {
		switch g.num {
		case 1:
			v, err := g.int32()
			if err != nil {
				return Encoding{}, err
			}
			e.Type = EncodingType(v)
		case 2:
			if err := g.expect(protowire.VarintType); err != nil {
				return Encoding{}, err
			}
			e.SymbolLength = uint32(g.varint)
		}
	}
	return e, nil
}

// EncodeRemote serializes a remote-family message.
func (Codec) EncodeRemote(msg Message) ([]byte, error) {
	var body []byte
	var num protowire.Number

	switch m := msg.(type) {
	case *RemoteConfigure:
		num = remoteFieldConfigure
		body = appendInt32(body, 1, m.Code1)
		if m.DeviceInfo != nil {
			body = appendMessage(body, 2, encodeDeviceInfo(m.DeviceInfo))
		}
	case *RemoteSetActive:
		num = remoteFieldSetActive
		body = appendInt32(body, 1, m.Active)
	case *RemoteError:
		num = remoteFieldError
		body = appendBool(body, 1, m.Value)
		if m.Message != nil {
			body = appendMessage(body, 2, m.Message)
		}
	case *RemotePingRequest:
		num = remoteFieldPingRequest
		body = appendInt32(body, 1, m.Val1)
		body = appendInt32(body, 2, m.Val2)
	case *RemotePingResponse:
		num = remoteFieldPingResponse
		body = appendInt32(body, 1, m.Val1)
	case *RemoteKeyInject:
		num = remoteFieldKeyInject
		body = appendInt32(body, 1, int32(m.KeyCode))
		body = appendInt32(body, 2, int32(m.Direction))
	case *RemoteStart:
		num = remoteFieldStart
		body = appendBool(body, 1, m.Started)
	case *RemoteSetVolumeLevel:
		num = remoteFieldSetVolumeLevel
		body = appendVarint(body, 1, uint64(m.Unknown1))
		body = appendVarint(body, 2, uint64(m.Unknown2))
		body = appendString(body, 3, m.PlayerModel)
		body = appendVarint(body, 4, uint64(m.Unknown4))
		body = appendVarint(body, 5, uint64(m.Unknown5))
		body = appendVarint(body, 6, uint64(m.VolumeMax))
		body = appendVarint(body, 7, uint64(m.VolumeLevel))
		body = appendBool(body, 8, m.VolumeMuted)
	case *RemoteAppLinkLaunch:
		num = remoteFieldAppLinkLaunch
		body = appendString(body, 1, m.AppLink)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedMessage, msg)
	}
	return appendMessage(nil, num, body), nil
}

// DecodeRemote parses a RemoteMessage.
func (Codec) DecodeRemote(payload []byte) (Message, error) {
	if len(payload) == 0 {
		return &Empty{}, nil
	}
	fields, err := parseFields(payload)
	if err != nil {
		return nil, &CodecError{Family: FamilyRemote, Err: err}
	}

	var unknownTag int32
	for _, f := range fields {
		msg, known, err := decodeRemoteField(f)
		if err != nil {
			return nil, &CodecError{Family: FamilyRemote, Err: err}
		}
		if known {
			return msg, nil
		}
		if unknownTag == 0 {
			unknownTag = int32(f.num)
		}
	}
	return &Unknown{Family: FamilyRemote, Tag: unknownTag, Payload: append([]byte(nil), payload...)}, nil
}

func decodeRemoteField(top field) (Message, bool, error) {
	switch top.num {
	case remoteFieldConfigure, remoteFieldSetActive, remoteFieldError,
		remoteFieldPingRequest, remoteFieldPingResponse, remoteFieldKeyInject,
		remoteFieldStart, remoteFieldSetVolumeLevel, remoteFieldAppLinkLaunch:
	default:
		return nil, false, nil
	}
	if err := top.expect(protowire.BytesType); err != nil {
		return nil, true, err
	}
	inner, err := parseFields(top.bytes)
	if err != nil {
		return nil, true, fmt.Errorf("field %d: %w", top.num, err)
	}

	var msg Message
	switch top.num {
	case remoteFieldConfigure:
		m := &RemoteConfigure{}
		for _, f := range inner {
			switch f.num {
			case 1:
				m.Code1, err = f.int32()
			case 2:
				m.DeviceInfo, err = decodeDeviceInfo(f)
			}
			if err != nil {
				return nil, true, err
			}
		}
		msg = m
	case remoteFieldSetActive:
		m := &RemoteSetActive{}
		for _, f := range inner {
			if f.num == 1 {
				if m.Active, err = f.int32(); err != nil {
					return nil, true, err
				}
			}
		}
		msg = m
	case remoteFieldError:
		m := &RemoteError{}
		for _, f := range inner {
			switch f.num {
			case 1:
				m.Value, err = f.bool()
			case 2:
				m.Message, err = f.raw()
			}
			if err != nil {
				return nil, true, err
			}
		}
		msg = m
	case remoteFieldPingRequest:
		m := &RemotePingRequest{}
		for _, f := range inner {
			switch f.num {
			case 1:
				m.Val1, err = f.int32()
			case 2:
				m.Val2, err = f.int32()
			}
			if err != nil {
				return nil, true, err
			}
		}
		msg = m
	case remoteFieldPingResponse:
		m := &RemotePingResponse{}
		for _, f := range inner {
			if f.num == 1 {
				if m.Val1, err = f.int32(); err != nil {
					return nil, true, err
				}
			}
		}
		msg = m
	case remoteFieldKeyInject:
		m := &RemoteKeyInject{}
		for _, f := range inner {
			var v int32
			switch f.num {
			case 1:
				v, err = f.int32()
				m.KeyCode = KeyCode(v)
			case 2:
				v, err = f.int32()
				m.Direction = Direction(v)
			}
			if err != nil {
				return nil, true, err
			}
		}
		msg = m
	case remoteFieldStart:
		m := &RemoteStart{}
		for _, f := range inner {
			if f.num == 1 {
				if m.Started, err = f.bool(); err != nil {
					return nil, true, err
				}
			}
		}
		msg = m
	case remoteFieldSetVolumeLevel:
		m := &RemoteSetVolumeLevel{}
		for _, f := range inner {
			switch f.num {
			case 1:
				m.Unknown1, err = f.uint32()
			case 2:
				m.Unknown2, err = f.uint32()
			case 3:
				m.PlayerModel, err = f.str()
			case 4:
				m.Unknown4, err = f.uint32()
			case 5:
				m.Unknown5, err = f.uint32()
			case 6:
				m.VolumeMax, err = f.uint32()
			case 7:
				m.VolumeLevel, err = f.uint32()
			case 8:
				m.VolumeMuted, err = f.bool()
			}
			if err != nil {
				return nil, true, err
			}
		}
		msg = m
	case remoteFieldAppLinkLaunch:
		m := &RemoteAppLinkLaunch{}
		for _, f := range inner {
			if f.num == 1 {
				if m.AppLink, err = f.str(); err != nil {
					return nil, true, err
				}
			}
		}
		msg = m
	}
	return msg, true, nil
}

func encodeDeviceInfo(d *DeviceInfo) []byte {
	var b []byte
	b = appendString(b, 1, d.Model)
	b = appendString(b, 2, d.Vendor)
	b = appendInt32(b, 3, d.Unknown1)
	b = appendString(b, 4, d.Unknown2)
	b = appendString(b, 5, d.PackageName)
	b = appendString(b, 6, d.AppVersion)
	return b
}

func decodeDeviceInfo(f field) (*DeviceInfo, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	inner, err := parseFields(f.bytes)
	if err != nil {
		return nil, err
	}
	d := &DeviceInfo{}
	for _, g := range inner {
		switch g.num {
		case 1:
			d.Model, err = g.str()
		case 2:
			d.Vendor, err = g.str()
		case 3:
			d.Unknown1, err = g.int32()
		case 4:
			d.Unknown2, err = g.str()
		case 5:
			d.PackageName, err = g.str()
		case 6:
			d.AppVersion, err = g.str()
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}
