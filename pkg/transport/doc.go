// Package transport carries protocol messages between the client and the TV.
//
// The transport layer handles:
//   - TCP dialing with keep-alive and no-delay, then the TLS handshake
//   - Length-prefixed message framing
//   - One read loop per connection feeding a blocking handshake queue
//     and an asynchronous handler
//   - Watching the TV's periodic pings for link loss
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│   Protobuf messages (wire)     │
//	├────────────────────────────────┤
//	│ Varint length prefix, ≤ 8192 B │
//	├────────────────────────────────┤
//	│   TLS, client cert required    │
//	├────────────────────────────────┤
//	│              TCP               │
//	└────────────────────────────────┘
//
// # Trust
//
// The TV presents a self-signed certificate, so chain validation is off and
// the decision is delegated to a PeerVerifier (see identity.TrustPolicy).
// A TLS config cannot be built without one.
//
// # Errors
//
// Dial and I/O failures are *TransportError, handshake-level TLS failures
// are *TLSTrustError, and stream corruption is *FramingError. A handshake
// wait that runs out of time returns an error matching ErrHandshakeTimeout.
package transport
