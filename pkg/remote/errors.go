package remote

import (
	"errors"
	"fmt"

	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

var (
	// ErrNotActive is returned by the send methods before the handshake
	// completed or after the connection was lost.
	ErrNotActive = errors.New("remote session is not active")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("remote session closed")

	// ErrAlreadyConnected is returned by Connect while a connection is
	// active or being established.
	ErrAlreadyConnected = errors.New("remote session already connected")

	// ErrPingTimeout is reported when the TV stops pinging.
	ErrPingTimeout = errors.New("TV stopped sending pings")
)

// UnexpectedMessageError reports a handshake reply of the wrong kind.
type UnexpectedMessageError struct {
	Waiting string
	Got     wire.Kind
}

func (e *UnexpectedMessageError) Error() string {
	return fmt.Sprintf("remote: unexpected %s waiting for %s", e.Got, e.Waiting)
}

// DeviceError is a RemoteError sent by the TV.
type DeviceError struct {
	// Message is the raw message the TV is complaining about, if any.
	Message []byte
}

func (e *DeviceError) Error() string {
	if len(e.Message) == 0 {
		return "remote: TV reported an error"
	}
	return fmt.Sprintf("remote: TV reported an error for message % x", e.Message)
}
