package identity

import (
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sharedOnce sync.Once
	sharedID   *Identity
	sharedErr  error
)

// testIdentity returns one generated identity per test binary; RSA key
// generation is slow.
func testIdentity(t *testing.T) *Identity {
	t.Helper()
	sharedOnce.Do(func() {
		sharedID, sharedErr = Generate("atvremote/test")
	})
	require.NoError(t, sharedErr)
	return sharedID
}

func TestGenerate(t *testing.T) {
	id := testIdentity(t)

	assert.Equal(t, "atvremote/test", id.Certificate.Subject.CommonName)
	assert.Equal(t, KeyBits, id.PrivateKey.N.BitLen())
	assert.True(t, id.Certificate.NotBefore.Equal(NotBefore))
	assert.True(t, id.Certificate.NotAfter.Equal(NotAfter))
	assert.Equal(t, SourceGenerated, id.Source)

	pub, ok := id.Certificate.PublicKey.(*rsa.PublicKey)
	require.True(t, ok)
	assert.True(t, pub.Equal(id.PublicKey()))

	// Self-signed.
	assert.NoError(t, id.Certificate.CheckSignatureFrom(id.Certificate))
}

func TestTLSCertificate(t *testing.T) {
	id := testIdentity(t)
	tc := id.TLSCertificate()

	require.Len(t, tc.Certificate, 1)
	assert.Equal(t, id.Certificate.Raw, tc.Certificate[0])
	assert.Same(t, id.PrivateKey, tc.PrivateKey)
}

func TestDefaultCommonName(t *testing.T) {
	assert.Regexp(t, `^atvremote/.+`, DefaultCommonName())
}

func TestFingerprint(t *testing.T) {
	id := testIdentity(t)
	fp := id.Fingerprint()

	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Fingerprint(id.Certificate))
}

func TestPEMRoundTrip(t *testing.T) {
	id := testIdentity(t)

	cert, err := DecodeCertPEM(EncodeCertPEM(id.Certificate))
	require.NoError(t, err)
	assert.Equal(t, id.Certificate.Raw, cert.Raw)

	key, err := DecodeKeyPEM(EncodeKeyPEM(id.PrivateKey))
	require.NoError(t, err)
	assert.True(t, key.Equal(id.PrivateKey))

	_, err = DecodeCertPEM([]byte("not pem"))
	assert.ErrorIs(t, err, ErrInvalidPEM)
	_, err = DecodeKeyPEM(EncodeCertPEM(id.Certificate))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
