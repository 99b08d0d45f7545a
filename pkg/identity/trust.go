package identity

import (
	"bytes"
	"crypto/x509"
	"fmt"
)

// TrustMode selects how a TrustPolicy judges peer certificates.
type TrustMode uint8

const (
	// TrustUnset is the zero value and is rejected by Validate.
	TrustUnset TrustMode = iota

	// TrustAcceptAny accepts every certificate. The pairing code the user
	// reads off the screen is then the only trust anchor.
	TrustAcceptAny

	// TrustPinned accepts only a byte-identical leaf certificate.
	TrustPinned
)

// String returns the mode name.
func (m TrustMode) String() string {
	switch m {
	case TrustAcceptAny:
		return "accept-any"
	case TrustPinned:
		return "pinned"
	default:
		return "unset"
	}
}

// TrustPolicy decides whether a TV's certificate is trusted. Build one
// with AcceptAny or PinnedCertificate. No revocation or expiry checks are
// made; TV certificates are self-signed and long-lived.
type TrustPolicy struct {
	mode   TrustMode
	pinned []byte
}

// AcceptAny returns a policy that trusts every peer certificate.
func AcceptAny() TrustPolicy {
	return TrustPolicy{mode: TrustAcceptAny}
}

// PinnedCertificate returns a policy that trusts only cert.
func PinnedCertificate(cert *x509.Certificate) TrustPolicy {
	if cert == nil {
		return TrustPolicy{mode: TrustPinned}
	}
	return PinnedDER(cert.Raw)
}

// PinnedDER returns a policy that trusts only the certificate with this
// DER encoding.
func PinnedDER(der []byte) TrustPolicy {
	return TrustPolicy{mode: TrustPinned, pinned: bytes.Clone(der)}
}

// Mode returns the policy's mode.
func (p TrustPolicy) Mode() TrustMode { return p.mode }

// Validate rejects a zero policy and a pinned policy without a certificate.
func (p TrustPolicy) Validate() error {
	switch p.mode {
	case TrustAcceptAny:
		return nil
	case TrustPinned:
		if len(p.pinned) == 0 {
			return fmt.Errorf("pinned trust policy has no certificate")
		}
		return nil
	default:
		return ErrNoTrustPolicy
	}
}

// VerifyPeerCertificate implements the tls.Config callback. Only the leaf
// is examined.
func (p TrustPolicy) VerifyPeerCertificate(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.mode == TrustAcceptAny {
		return nil
	}
	if len(rawCerts) == 0 {
		return ErrNoPeerCertificate
	}
	if !bytes.Equal(rawCerts[0], p.pinned) {
		return ErrCertificateNotPinned
	}
	return nil
}

// String describes the policy.
func (p TrustPolicy) String() string {
	if p.mode == TrustPinned && len(p.pinned) > 0 {
		if cert, err := x509.ParseCertificate(p.pinned); err == nil {
			return "pinned:" + Fingerprint(cert)[:16]
		}
	}
	return p.mode.String()
}
