package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"time"
)

// Certificate parameters.
const (
	// KeyBits is the RSA modulus size. The pairing secret hashes the raw
	// modulus and exponent, so the key must be RSA.
	KeyBits = 2048

	// CommonNamePrefix prefixes the hostname in the certificate subject.
	CommonNamePrefix = "atvremote/"
)

// Fixed validity window. The certificate is never rotated, so it is made
// valid for longer than any TV will be in service.
var (
	NotBefore = time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC)
	NotAfter  = time.Date(2099, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Source records how an identity came to exist.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceImported  Source = "imported"
)

// Identity is the client's key pair and self-signed certificate.
type Identity struct {
	Certificate *x509.Certificate
	PrivateKey  *rsa.PrivateKey
	CreatedAt   time.Time
	Source      Source
}

// TLSCertificate returns the identity in the form crypto/tls expects.
func (id *Identity) TLSCertificate() tls.Certificate {
	return tls.Certificate{
		Certificate: [][]byte{id.Certificate.Raw},
		PrivateKey:  id.PrivateKey,
		Leaf:        id.Certificate,
	}
}

// PublicKey returns the RSA public key of the identity.
func (id *Identity) PublicKey() *rsa.PublicKey {
	return &id.PrivateKey.PublicKey
}

// Fingerprint returns the hex SHA-256 of the certificate DER.
func (id *Identity) Fingerprint() string {
	return Fingerprint(id.Certificate)
}

// Fingerprint returns the hex SHA-256 of a certificate's DER encoding.
func Fingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.Raw)
	return hex.EncodeToString(sum[:])
}

// DefaultCommonName returns "atvremote/<hostname>".
func DefaultCommonName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return CommonNamePrefix + host
}

// Generate creates a new RSA key and self-signed client certificate.
func Generate(commonName string) (*Identity, error) {
	if commonName == "" {
		commonName = DefaultCommonName()
	}

	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, &CryptoError{Op: "generate key", Err: err}
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, &CryptoError{Op: "generate serial", Err: err}
	}

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName: commonName,
		},
		NotBefore:             NotBefore,
		NotAfter:              NotAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, &CryptoError{Op: "create certificate", Err: err}
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, &CryptoError{Op: "parse certificate", Err: err}
	}

	return &Identity{
		Certificate: cert,
		PrivateKey:  key,
		CreatedAt:   time.Now(),
		Source:      SourceGenerated,
	}, nil
}

// fromParts builds an identity after checking that key and certificate
// belong together.
func fromParts(cert *x509.Certificate, key any, source Source) (*Identity, error) {
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok || !pub.Equal(&rsaKey.PublicKey) {
		return nil, fmt.Errorf("certificate does not match private key")
	}
	return &Identity{
		Certificate: cert,
		PrivateKey:  rsaKey,
		CreatedAt:   time.Now(),
		Source:      source,
	}, nil
}
