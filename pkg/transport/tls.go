package transport

import (
	"crypto/tls"
	"crypto/x509"
)

// PeerVerifier decides whether a peer certificate chain is trusted. It has
// the signature of tls.Config.VerifyPeerCertificate.
type PeerVerifier interface {
	VerifyPeerCertificate(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error
}

// NewClientTLSConfig creates the client TLS configuration used on both the
// pairing and remote ports.
//
// TVs present self-signed certificates, so chain verification is replaced
// by the verifier. The client certificate is always sent, whatever the
// server's CertificateRequest lists as acceptable authorities.
func NewClientTLSConfig(cert tls.Certificate, verifier PeerVerifier) (*tls.Config, error) {
	if len(cert.Certificate) == 0 {
		return nil, ErrNoClientCertificate
	}
	if verifier == nil {
		return nil, ErrNoPeerVerifier
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS12,

		// Self-signed peers; trust is decided by the verifier below.
		InsecureSkipVerify:    true,
		VerifyPeerCertificate: verifier.VerifyPeerCertificate,

		GetClientCertificate: func(*tls.CertificateRequestInfo) (*tls.Certificate, error) {
			return &cert, nil
		},

		SessionTicketsDisabled: true,
	}, nil
}

// NewServerTLSConfig creates a TLS configuration for the TV side of a
// connection. It requires a client certificate and hands it to verifier,
// which may be nil to accept any certificate.
func NewServerTLSConfig(cert tls.Certificate, verifier PeerVerifier) (*tls.Config, error) {
	if len(cert.Certificate) == 0 {
		return nil, ErrNoClientCertificate
	}

	cfg := &tls.Config{
		MinVersion:             tls.VersionTLS12,
		Certificates:           []tls.Certificate{cert},
		ClientAuth:             tls.RequireAnyClientCert,
		SessionTicketsDisabled: true,
	}
	if verifier != nil {
		cfg.VerifyPeerCertificate = verifier.VerifyPeerCertificate
	}
	return cfg, nil
}

// PeerVerifierFunc adapts a function to PeerVerifier.
type PeerVerifierFunc func(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error

// VerifyPeerCertificate calls f.
func (f PeerVerifierFunc) VerifyPeerCertificate(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
	return f(rawCerts, verifiedChains)
}

var _ PeerVerifier = PeerVerifierFunc(nil)
