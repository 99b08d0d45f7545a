package pairing

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

var (
	keysOnce  sync.Once
	clientKey *rsa.PrivateKey
	serverKey *rsa.PrivateKey
	keysErr   error
)

func testKeys(t *testing.T) (*rsa.PublicKey, *rsa.PublicKey) {
	t.Helper()
	keysOnce.Do(func() {
		clientKey, keysErr = rsa.GenerateKey(rand.Reader, 2048)
		if keysErr != nil {
			return
		}
		serverKey, keysErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, keysErr)
	return &clientKey.PublicKey, &serverKey.PublicKey
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a1b2c3", "A1B2C3", false},
		{"  ABCDEF\n", "ABCDEF", false},
		{"012345", "012345", false},
		{"12345", "", true},
		{"1234567", "", true},
		{"ZZZZZZ", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeCode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSecret)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSecretMatchesDisplayedCode(t *testing.T) {
	client, server := testKeys(t)

	for _, nonce := range [][2]byte{{0x00, 0x00}, {0x12, 0xAB}, {0xFF, 0xFF}} {
		code := CodeFor(client, server, nonce)
		require.Len(t, code, SecretLength)

		secret, err := ComputeSecret(client, server, code)
		require.NoError(t, err, code)
		assert.Len(t, secret, 32)

		// Lower case input is accepted.
		lower, err := ComputeSecret(client, server, " "+strings.ToLower(code)+" ")
		require.NoError(t, err)
		assert.Equal(t, secret, lower)
	}
}

func TestComputeSecretDetectsTypo(t *testing.T) {
	client, server := testKeys(t)
	code := CodeFor(client, server, [2]byte{0x34, 0x56})

	// Flip the checksum byte.
	bad := []byte(code)
	if bad[0] == 'F' {
		bad[0] = '0'
	} else {
		bad[0] = 'F'
	}
	_, err := ComputeSecret(client, server, string(bad))
	assert.ErrorIs(t, err, ErrSecretMismatch)
}

func TestComputeSecretDependsOnBothKeys(t *testing.T) {
	client, server := testKeys(t)
	code := CodeFor(client, server, [2]byte{0x01, 0x02})

	a, err := ComputeSecret(client, server, code)
	require.NoError(t, err)

	// Swapping the keys changes the hash; the checksum almost never
	// survives, and if it does the secret still differs.
	b, err := ComputeSecret(server, client, code)
	if err == nil {
		assert.NotEqual(t, a, b)
	} else {
		assert.ErrorIs(t, err, ErrSecretMismatch)
	}
}

func TestComputeSecretRequiresKeys(t *testing.T) {
	client, _ := testKeys(t)
	_, err := ComputeSecret(client, nil, "ABCDEF")
	assert.Error(t, err)

	_, err = ComputeSecret(client, client, "nothex")
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "IDLE", StateIdle.String())
	assert.Equal(t, "AWAITING_SECRET_PROMPT", StateAwaitingSecretPrompt.String())
	assert.Equal(t, "ABORTED", StateAborted.String())
	assert.Equal(t, "UNKNOWN", State(99).String())

	assert.True(t, StatePaired.Terminal())
	assert.True(t, StateErrored.Terminal())
	assert.True(t, StateAborted.Terminal())
	assert.False(t, StateSecretSubmitted.Terminal())
}

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{Waiting: "pairing secret ack", Status: wire.StatusBadSecret, Got: wire.KindPairingStatus}
	assert.Contains(t, err.Error(), "rejected the pairing code")
	assert.Contains(t, err.Error(), "402")

	err = &ProtocolError{Waiting: "pairing option", Got: wire.KindPairingSecretAck}
	assert.Contains(t, err.Error(), "unexpected")
	assert.Contains(t, err.Error(), "pairing option")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.ServiceName = ""
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.HandshakeTimeout = -1
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.SecretTimeout = 0
	assert.Error(t, c.Validate())
}
