package identity

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderConfigValidate(t *testing.T) {
	_, err := NewProvider(Config{TrustPolicy: AcceptAny()})
	assert.Error(t, err, "store required")

	_, err = NewProvider(Config{Store: NewMemoryStore()})
	assert.ErrorIs(t, err, ErrNoTrustPolicy)

	p, err := NewProvider(Config{Store: NewMemoryStore(), TrustPolicy: AcceptAny()})
	require.NoError(t, err)
	assert.Equal(t, TrustAcceptAny, p.PeerTrustPolicy().Mode())
}

func TestProviderUsesStoredIdentity(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(testIdentity(t)))

	p, err := NewProvider(Config{Store: store, TrustPolicy: AcceptAny()})
	require.NoError(t, err)
	assert.True(t, p.HasIdentity())

	id, err := p.GetOrCreateIdentity()
	require.NoError(t, err)
	assert.Same(t, testIdentity(t), id)

	km, err := p.ClientKeyMaterial()
	require.NoError(t, err)
	assert.Equal(t, id.Certificate.Raw, km.Certificate[0])
}

func TestProviderCreatesOnceAndPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "identity")
	p, err := NewProvider(Config{Store: NewFileStore(dir), TrustPolicy: AcceptAny(), CommonName: "atvremote/ci"})
	require.NoError(t, err)
	assert.False(t, p.HasIdentity())

	var wg sync.WaitGroup
	ids := make([]*Identity, 4)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], _ = p.GetOrCreateIdentity()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, ids[0])
	for _, id := range ids[1:] {
		assert.Same(t, ids[0], id, "one identity for all callers")
	}
	assert.True(t, p.HasIdentity())

	// A second provider over the same directory reuses it.
	p2, err := NewProvider(Config{Store: NewFileStore(dir), TrustPolicy: AcceptAny()})
	require.NoError(t, err)
	again, err := p2.GetOrCreateIdentity()
	require.NoError(t, err)
	assert.Equal(t, ids[0].Certificate.Raw, again.Certificate.Raw)
	assert.Equal(t, "atvremote/ci", again.Certificate.Subject.CommonName)
}

func TestProviderReset(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(testIdentity(t)))
	p, err := NewProvider(Config{Store: store, TrustPolicy: AcceptAny()})
	require.NoError(t, err)
	_, err = p.GetOrCreateIdentity()
	require.NoError(t, err)

	require.NoError(t, p.Reset())
	assert.False(t, p.HasIdentity())
}

type failingStore struct {
	MemoryStore
	saveErr error
}

func (s *failingStore) Save(*Identity) error { return s.saveErr }

func TestProviderStorageFailureIsCryptoError(t *testing.T) {
	boom := errors.New("disk full")
	p, err := NewProvider(Config{Store: &failingStore{saveErr: boom}, TrustPolicy: AcceptAny()})
	require.NoError(t, err)

	_, err = p.GetOrCreateIdentity()
	var ce *CryptoError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "save", ce.Op)
	assert.ErrorIs(t, err, boom)
}

func TestImportPKCS12(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "client.p12"))
	require.NoError(t, err)

	store := NewMemoryStore()
	p, err := NewProvider(Config{Store: store, TrustPolicy: AcceptAny()})
	require.NoError(t, err)

	id, err := p.ImportPKCS12(data, "secret")
	require.NoError(t, err)
	assert.Equal(t, SourceImported, id.Source)
	assert.Equal(t, "atvremote-imported", id.Certificate.Subject.CommonName)

	got, err := p.GetOrCreateIdentity()
	require.NoError(t, err)
	assert.Same(t, id, got)
	assert.True(t, store.Exists())
}

func TestImportPKCS12WrongPassword(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "client.p12"))
	require.NoError(t, err)

	p, err := NewProvider(Config{Store: NewMemoryStore(), TrustPolicy: AcceptAny()})
	require.NoError(t, err)

	_, err = p.ImportPKCS12(data, "wrong")
	var ce *CryptoError
	assert.True(t, errors.As(err, &ce))
	assert.False(t, p.HasIdentity())
}
