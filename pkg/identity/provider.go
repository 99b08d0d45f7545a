package identity

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/pkcs12"
)

// Config configures a Provider.
type Config struct {
	// Store persists the identity. Required.
	Store Store

	// TrustPolicy judges TV certificates. Required; there is no default.
	TrustPolicy TrustPolicy

	// CommonName is the subject of generated certificates
	// (default: "atvremote/<hostname>").
	CommonName string

	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Store == nil {
		return fmt.Errorf("identity store is required")
	}
	if err := c.TrustPolicy.Validate(); err != nil {
		return err
	}
	return nil
}

// Provider hands out the client identity and the peer trust policy.
// The identity is created on first use and cached. Safe for concurrent use.
type Provider struct {
	config Config

	mu     sync.Mutex
	cached *Identity
}

// NewProvider creates a provider.
func NewProvider(config Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Provider{config: config}, nil
}

// HasIdentity reports whether an identity exists, without creating one.
func (p *Provider) HasIdentity() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cached != nil || p.config.Store.Exists()
}

// GetOrCreateIdentity returns the stored identity, generating and saving a
// new one if none exists. Failures are *CryptoError.
func (p *Provider) GetOrCreateIdentity() (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	id, err := p.config.Store.Load()
	if err == nil {
		p.debugLog("loaded identity", "fingerprint", id.Fingerprint(), "source", id.Source)
		p.cached = id
		return id, nil
	}
	if !errors.Is(err, ErrNoIdentity) {
		return nil, &CryptoError{Op: "load", Err: err}
	}

	id, err = Generate(p.config.CommonName)
	if err != nil {
		return nil, err
	}
	if err := p.config.Store.Save(id); err != nil {
		return nil, &CryptoError{Op: "save", Err: err}
	}
	p.debugLog("generated identity",
		"common_name", id.Certificate.Subject.CommonName,
		"fingerprint", id.Fingerprint())
	p.cached = id
	return id, nil
}

// ClientKeyMaterial returns the identity as a TLS certificate, creating the
// identity if needed.
func (p *Provider) ClientKeyMaterial() (tls.Certificate, error) {
	id, err := p.GetOrCreateIdentity()
	if err != nil {
		return tls.Certificate{}, err
	}
	return id.TLSCertificate(), nil
}

// PeerTrustPolicy returns the configured trust policy.
func (p *Provider) PeerTrustPolicy() TrustPolicy {
	return p.config.TrustPolicy
}

// Reset deletes the stored identity. The next GetOrCreateIdentity creates
// a fresh one, and every TV must be paired again.
func (p *Provider) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.config.Store.Delete(); err != nil {
		return &CryptoError{Op: "delete", Err: err}
	}
	p.cached = nil
	p.debugLog("identity reset")
	return nil
}

// ImportPKCS12 replaces the identity with the key and certificate from a
// PKCS#12 keystore, keeping existing pairings valid when migrating from
// another client.
func (p *Provider) ImportPKCS12(data []byte, password string) (*Identity, error) {
	key, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return nil, &CryptoError{Op: "decode pkcs12", Err: err}
	}
	id, err := fromParts(cert, key, SourceImported)
	if err != nil {
		return nil, &CryptoError{Op: "import", Err: err}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.config.Store.Save(id); err != nil {
		return nil, &CryptoError{Op: "save", Err: err}
	}
	p.cached = id
	p.debugLog("imported identity", "fingerprint", id.Fingerprint())
	return id, nil
}

func (p *Provider) debugLog(msg string, args ...any) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, args...)
	}
}
