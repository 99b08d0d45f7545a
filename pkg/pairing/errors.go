package pairing

import (
	"errors"
	"fmt"

	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

var (
	// ErrInvalidSecret is returned for a code that is not six hex digits.
	ErrInvalidSecret = errors.New("pairing code must be 6 hexadecimal digits")

	// ErrSecretMismatch is returned when the code's checksum does not match
	// the certificates in use. Usually a typo.
	ErrSecretMismatch = errors.New("pairing code does not match")

	// ErrNotAwaitingSecret is returned by ProvideSecret outside the secret
	// prompt.
	ErrNotAwaitingSecret = errors.New("pairing session is not waiting for a code")

	// ErrAborted is returned by Pair when the TV ended the session, for
	// instance because the user cancelled on screen. It is not a failure.
	ErrAborted = errors.New("pairing session ended by the TV")

	// ErrSessionClosed is returned when Close interrupted the session.
	ErrSessionClosed = errors.New("pairing session closed")

	// ErrAlreadyStarted is returned when Pair is called twice.
	ErrAlreadyStarted = errors.New("pairing session already started")

	// ErrUnsupportedKey is returned when the TV certificate key is not RSA.
	ErrUnsupportedKey = errors.New("TV certificate key is not RSA")
)

// ProtocolError reports that the TV rejected a pairing step or answered
// with something unexpected.
type ProtocolError struct {
	// Waiting names the reply the session was waiting for.
	Waiting string

	// Status is the status the TV sent, or StatusUnknown when the error is
	// an unexpected message.
	Status wire.Status

	// Got is the kind of message received.
	Got wire.Kind
}

func (e *ProtocolError) Error() string {
	if e.Status != wire.StatusOK && e.Status != wire.StatusUnknown {
		return fmt.Sprintf("pairing: %s (status %d %s) waiting for %s",
			statusMessage(e.Status), int32(e.Status), e.Status, e.Waiting)
	}
	return fmt.Sprintf("pairing: unexpected %s waiting for %s", e.Got, e.Waiting)
}

func statusMessage(s wire.Status) string {
	switch s {
	case wire.StatusBadSecret:
		return "TV rejected the pairing code"
	case wire.StatusBadConfiguration:
		return "TV rejected the pairing configuration"
	default:
		return "TV reported an error"
	}
}
