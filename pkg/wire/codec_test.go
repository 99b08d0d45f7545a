package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMessages() []struct {
	name   string
	family Family
	msg    Message
} {
	return []struct {
		name   string
		family Family
		msg    Message
	}{
		{"PairingRequest", FamilyPairing, NewPairingRequest("atvremote", "Living room laptop")},
		{"PairingRequestAck", FamilyPairing, &PairingRequestAck{PairingHeader: okHeader(), ServerName: "BRAVIA 4K"}},
		{"PairingOptionOutput", FamilyPairing, NewPairingOption(RoleOutput, HexEncoding)},
		{"PairingOptionBoth", FamilyPairing, &PairingOption{
			PairingHeader:   okHeader(),
			InputEncodings:  []Encoding{HexEncoding},
			OutputEncodings: []Encoding{{Type: EncodingNumeric, SymbolLength: 4}},
			PreferredRole:   RoleInput,
		}},
		{"PairingConfiguration", FamilyPairing, NewPairingConfiguration(RoleOutput, HexEncoding)},
		{"PairingConfigurationAck", FamilyPairing, &PairingConfigurationAck{PairingHeader: okHeader()}},
		{"PairingSecret", FamilyPairing, NewPairingSecret(bytes.Repeat([]byte{0xAB}, 32))},
		{"PairingSecretAck", FamilyPairing, &PairingSecretAck{PairingHeader: okHeader(), Secret: []byte{1, 2, 3}}},
		{"PairingStatusZero", FamilyPairing, &PairingStatus{}},
		{"PairingSecretEmpty", FamilyPairing, &PairingSecret{PairingHeader: okHeader(), Secret: []byte{}}},
		{"PairingStatusBadSecret", FamilyPairing, &PairingStatus{PairingHeader: PairingHeader{ProtocolVersion: 2, Status: StatusBadSecret}}},

		{"RemoteConfigure", FamilyRemote, &RemoteConfigure{Code1: 622, DeviceInfo: &DeviceInfo{
			Model: "ROG Strix G531GT_G531GT", Vendor: "ASUSTeK COMPUTER INC.", Unknown1: 1, Unknown2: "1",
			PackageName: "atvremote", AppVersion: "1.0.0",
		}}},
		{"RemoteConfigureEmptyInfo", FamilyRemote, &RemoteConfigure{Code1: 622, DeviceInfo: &DeviceInfo{}}},
		{"RemoteSetActive", FamilyRemote, &RemoteSetActive{Active: 622}},
		{"RemoteSetActiveZero", FamilyRemote, &RemoteSetActive{}},
		{"RemoteError", FamilyRemote, &RemoteError{Value: true, Message: []byte{0x52, 0x00}}},
		{"RemotePingRequest", FamilyRemote, &RemotePingRequest{Val1: 7, Val2: -1}},
		{"RemotePingResponse", FamilyRemote, &RemotePingResponse{Val1: 7}},
		{"RemoteKeyInject", FamilyRemote, &RemoteKeyInject{KeyCode: KeyCodeHome, Direction: DirectionShort}},
		{"RemoteStart", FamilyRemote, &RemoteStart{Started: true}},
		{"RemoteSetVolumeLevel", FamilyRemote, &RemoteSetVolumeLevel{
			Unknown1: 1, Unknown2: 2, PlayerModel: "Speaker", Unknown4: 4, Unknown5: 5,
			VolumeMax: 100, VolumeLevel: 35, VolumeMuted: true,
		}},
		{"RemoteAppLinkLaunch", FamilyRemote, &RemoteAppLinkLaunch{AppLink: "https://www.youtube.com"}},

		{"EmptyPairing", FamilyPairing, &Empty{}},
		{"EmptyRemote", FamilyRemote, &Empty{}},
		{"UnknownPairing", FamilyPairing, &Unknown{Family: FamilyPairing, Tag: 77, Payload: []byte{0xEA, 0x04, 0x00}}},
		{"UnknownRemote", FamilyRemote, &Unknown{Family: FamilyRemote, Tag: 77, Payload: []byte{0xEA, 0x04, 0x00}}},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec()
	for _, tt := range allMessages() {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Encode(tt.msg)
			require.NoError(t, err)

			got, err := codec.Decode(tt.family, data)
			require.NoError(t, err)
			assert.Equal(t, tt.msg, got)
			assert.Equal(t, tt.msg.Kind(), got.Kind())
		})
	}
}

func TestCodecIsDeterministic(t *testing.T) {
	codec := NewCodec()
	for _, tt := range allMessages() {
		a, err := codec.Encode(tt.msg)
		require.NoError(t, err)
		b, err := codec.Encode(tt.msg)
		require.NoError(t, err)
		assert.Equal(t, a, b, tt.name)
	}
}

func TestEncodeKeyInjectBytes(t *testing.T) {
	data, err := NewCodec().Encode(&RemoteKeyInject{KeyCode: KeyCodeHome, Direction: DirectionShort})
	require.NoError(t, err)

	// field 10, length 4: key_code=3, direction=3
	assert.Equal(t, []byte{0x52, 0x04, 0x08, 0x03, 0x10, 0x03}, data)
}

func TestEncodePairingRequestBytes(t *testing.T) {
	data, err := NewCodec().Encode(NewPairingRequest("s", "c"))
	require.NoError(t, err)

	want := []byte{
		0x08, 0x02, // protocol_version = 2
		0x10, 0xC8, 0x01, // status = 200
		0x52, 0x06, // pairing_request, length 6
		0x0A, 0x01, 's',
		0x12, 0x01, 'c',
	}
	assert.Equal(t, want, data)
}

func TestDecodeUnknownTagIsNotAnError(t *testing.T) {
	// field 200 with an empty body
	payload := []byte{0xC2, 0x0C, 0x00}

	msg, err := NewCodec().DecodeRemote(payload)
	require.NoError(t, err)

	unk, ok := msg.(*Unknown)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, int32(200), unk.Tag)
	assert.Equal(t, payload, unk.Payload)
}

func TestDecodeSkipsUnknownInnerFields(t *testing.T) {
	// key_inject with an extra field 15 = 1
	payload := []byte{0x52, 0x06, 0x08, 0x18, 0x10, 0x03, 0x78, 0x01}

	msg, err := NewCodec().DecodeRemote(payload)
	require.NoError(t, err)
	assert.Equal(t, &RemoteKeyInject{KeyCode: KeyCodeVolumeUp, Direction: DirectionShort}, msg)
}

func TestDecodeMalformedReturnsCodecError(t *testing.T) {
	tests := []struct {
		name    string
		family  Family
		payload []byte
	}{
		{"truncated varint", FamilyRemote, []byte{0x08, 0xFF}},
		{"length past end", FamilyRemote, []byte{0x52, 0x10, 0x08}},
		{"field zero", FamilyPairing, []byte{0x00, 0x01}},
		{"wrong wire type", FamilyRemote, []byte{0x50, 0x01}},
		{"bad inner", FamilyPairing, []byte{0x52, 0x02, 0x0A, 0x05}},
		{"invalid utf8", FamilyRemote, []byte{0xD2, 0x05, 0x03, 0x0A, 0x01, 0xFF}},
	}
	codec := NewCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := codec.Decode(tt.family, tt.payload)
			assert.Nil(t, msg)

			var codecErr *CodecError
			require.True(t, errors.As(err, &codecErr), "got %v", err)
			assert.Equal(t, tt.family, codecErr.Family)
		})
	}
}

func TestDecodeTruncatedButConsistentNeverPanics(t *testing.T) {
	codec := NewCodec()
	for _, tt := range allMessages() {
		data, err := codec.Encode(tt.msg)
		require.NoError(t, err)
		for i := 0; i < len(data); i++ {
			assert.NotPanics(t, func() {
				_, _ = codec.Decode(tt.family, data[:i])
			}, "%s[:%d]", tt.name, i)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Encode(nil)
	assert.ErrorIs(t, err, ErrUnsupportedMessage)

	_, err = codec.EncodeRemote(NewPairingSecret([]byte{1}))
	assert.ErrorIs(t, err, ErrUnsupportedMessage)
}

func TestPairingStatusWithoutBody(t *testing.T) {
	// version 2, status 402
	msg, err := NewCodec().DecodePairing([]byte{0x08, 0x02, 0x10, 0x92, 0x03})
	require.NoError(t, err)

	st, ok := msg.(*PairingStatus)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, StatusBadSecret, st.Status)
	assert.False(t, st.OK())
}

func TestZeroPairingHeaderIsWritten(t *testing.T) {
	data, err := NewCodec().Encode(&PairingStatus{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x00, 0x10, 0x00}, data)

	msg, err := NewCodec().DecodePairing(data)
	require.NoError(t, err)
	assert.Equal(t, KindPairingStatus, msg.Kind())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "KEYCODE_HOME SHORT", Summary(&RemoteKeyInject{KeyCode: KeyCodeHome, Direction: DirectionShort}))
	assert.Equal(t, "secret=32 bytes", Summary(NewPairingSecret(make([]byte, 32))))
	assert.Contains(t, Summary(&RemoteSetActive{Active: 622}), "Active:622")
}
