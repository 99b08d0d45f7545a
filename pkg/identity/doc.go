// Package identity manages the client's TLS identity and the policy used to
// trust a TV's certificate.
//
// The identity is a self-signed RSA certificate created on first use and
// reused for every pairing and remote session. A TV remembers the client by
// this certificate, so replacing it (Reset, ImportPKCS12) forces a new
// pairing.
//
// TVs present self-signed certificates too. A TrustPolicy decides whether
// to accept one: AcceptAny relies on the human-verified pairing code as the
// trust anchor, PinnedCertificate accepts only a certificate seen before.
// There is no default policy.
package identity
