package remote

// State is the remote session state.
type State uint8

const (
	StateIdle State = iota
	StateConnecting
	StateAwaitingHandshakeAck
	StateConfiguring
	StateAwaitingConfigureAck
	StateActive
	StateClosed
	StateErrored
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateAwaitingHandshakeAck:
		return "AWAITING_HANDSHAKE_ACK"
	case StateConfiguring:
		return "CONFIGURING"
	case StateAwaitingConfigureAck:
		return "AWAITING_CONFIGURE_ACK"
	case StateActive:
		return "ACTIVE"
	case StateClosed:
		return "CLOSED"
	case StateErrored:
		return "ERRORED"
	default:
		return "UNKNOWN"
	}
}

// connecting reports whether a Connect call is in progress.
func (s State) connecting() bool {
	return s >= StateConnecting && s <= StateAwaitingConfigureAck
}
