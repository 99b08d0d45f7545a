// Package wire defines the protocol messages exchanged with the TV and
// their protobuf wire encoding.
//
// Two message families share the same framing: pairing messages (the
// "polo" protocol spoken on the pairing port) and remote messages (spoken
// on the control port). Each frame payload is one protobuf-encoded
// envelope: an OuterMessage for pairing, a RemoteMessage for control.
//
// # Encoding
//
// Messages are hand-encoded with protowire instead of generated code.
// Encoding is deterministic: fields are written in ascending field-number
// order and scalar zero values are omitted. Sub-messages are always
// written when present, even if empty, because their presence is what
// selects the message kind.
//
// # Forward Compatibility
//
// Decoding never panics. A payload whose top-level fields are all
// unrecognised decodes to *Unknown; a payload that is not valid protobuf
// yields a *CodecError. Unknown fields inside a recognised message are
// skipped.
//
// # Key Codes
//
// KeyCode constants are generated from keycodes.yaml by
// cmd/atvremote-keygen; see keycode_gen.go.
package wire

//go:generate go run ../../cmd/atvremote-keygen -input keycodes.yaml -output keycode_gen.go
