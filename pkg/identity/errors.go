package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIdentity is returned by a Store that holds no identity.
	ErrNoIdentity = errors.New("no client identity")

	// ErrNoTrustPolicy is returned when a TrustPolicy was never chosen.
	ErrNoTrustPolicy = errors.New("no trust policy configured")

	// ErrCertificateNotPinned is returned when a peer presents a certificate
	// other than the pinned one.
	ErrCertificateNotPinned = errors.New("peer certificate does not match pinned certificate")

	// ErrNoPeerCertificate is returned when the peer sent no certificate.
	ErrNoPeerCertificate = errors.New("peer sent no certificate")

	// ErrUnsupportedKey is returned for private keys that are not RSA.
	ErrUnsupportedKey = errors.New("unsupported private key type")
)

// CryptoError reports a failure to generate, load or store key material.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("identity %s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error { return e.Err }
