package pairing

// State is the pairing state machine state.
type State uint8

const (
	StateIdle State = iota
	StateConnecting
	StateAwaitingSessionAck
	StateAwaitingRole
	StateAwaitingSecretPrompt
	StateSecretSubmitted
	StatePaired
	StateErrored
	StateAborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateAwaitingSessionAck:
		return "AWAITING_SESSION_ACK"
	case StateAwaitingRole:
		return "AWAITING_ROLE"
	case StateAwaitingSecretPrompt:
		return "AWAITING_SECRET_PROMPT"
	case StateSecretSubmitted:
		return "SECRET_SUBMITTED"
	case StatePaired:
		return "PAIRED"
	case StateErrored:
		return "ERRORED"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the session can make no further progress.
func (s State) Terminal() bool {
	return s == StatePaired || s == StateErrored || s == StateAborted
}
