// Package pairing implements the PIN pairing handshake with an Android TV.
//
// Pairing runs once per TV on port 6467. It teaches the TV to trust the
// client certificate so that later remote sessions on port 6466 are
// accepted.
//
// # Flow
//
//	client                                TV
//	  │── PairingRequest ─────────────────▶│
//	  │◀──────────────── PairingRequestAck ─│   OnSessionCreated
//	  │── PairingOption (output, hex/6) ──▶│
//	  │◀──────────────────── PairingOption ─│
//	  │── PairingConfiguration ───────────▶│
//	  │◀────────── PairingConfigurationAck ─│   TV shows code, OnSecretRequested
//	  │          ProvideSecret(code)        │
//	  │── PairingSecret ──────────────────▶│
//	  │◀───────────────── PairingSecretAck ─│   OnPaired
//
// The client always takes the output role: the TV displays the code and
// the user types it. A request to act as the input device is ignored.
//
// # Secret
//
// The code is six hex digits. The last four are a nonce and the first two
// a checksum:
//
//	hash = SHA-256(client.N ‖ client.E ‖ server.N ‖ server.E ‖ nonce)
//	hash[0] == checksum
//
// where N and E are the RSA modulus and public exponent as minimal
// big-endian bytes. The hash is the secret sent to the TV.
package pairing
