package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File names inside the identity directory.
const (
	certFile = "client.crt"
	keyFile  = "client.key"
	metaFile = "identity.json"
)

// FileStore keeps the identity as PEM files with JSON metadata.
//
// Layout:
//
//	<dir>/client.crt     certificate (0644)
//	<dir>/client.key     RSA private key (0600)
//	<dir>/identity.json  metadata
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string { return s.dir }

type identityMetadata struct {
	CommonName  string    `json:"common_name"`
	Fingerprint string    `json:"fingerprint"`
	Source      Source    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// Exists reports whether both the certificate and key files are present.
func (s *FileStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range []string{certFile, keyFile} {
		if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Load reads the identity from disk.
func (s *FileStore) Load() (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cert, err := ReadCertFile(filepath.Join(s.dir, certFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoIdentity
		}
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}
	key, err := ReadKeyFile(filepath.Join(s.dir, keyFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoIdentity
		}
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	meta := identityMetadata{Source: SourceGenerated}
	if data, err := os.ReadFile(filepath.Join(s.dir, metaFile)); err == nil {
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", metaFile, err)
		}
	}

	id, err := fromParts(cert, key, meta.Source)
	if err != nil {
		return nil, err
	}
	if !meta.CreatedAt.IsZero() {
		id.CreatedAt = meta.CreatedAt
	}
	return id, nil
}

// Save writes the identity to disk.
func (s *FileStore) Save(id *Identity) error {
	if id == nil || id.Certificate == nil || id.PrivateKey == nil {
		return fmt.Errorf("incomplete identity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if err := WriteKeyFile(filepath.Join(s.dir, keyFile), id.PrivateKey); err != nil {
		return err
	}
	if err := WriteCertFile(filepath.Join(s.dir, certFile), id.Certificate); err != nil {
		return err
	}

	meta := identityMetadata{
		CommonName:  id.Certificate.Subject.CommonName,
		Fingerprint: id.Fingerprint(),
		Source:      id.Source,
		CreatedAt:   id.CreatedAt,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, metaFile), data, 0644)
}

// Delete removes the identity files.
func (s *FileStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{keyFile, certFile, metaFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

var _ Store = (*FileStore)(nil)
