package pairing

// Listener receives pairing progress. Callbacks run on the goroutine that
// called Pair and must not call Pair again.
type Listener interface {
	// OnSessionCreated is called when the TV acknowledged the request.
	OnSessionCreated()

	// OnSecretRequested is called when the TV shows the code. Answer
	// with Session.ProvideSecret.
	OnSecretRequested()

	// OnPaired is called when the TV accepted the code.
	OnPaired()

	// OnSessionEnded is called when the TV closed the session before
	// pairing completed.
	OnSessionEnded()

	// OnError is called once when pairing fails.
	OnError(err error)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) OnSessionCreated()  {}
func (NopListener) OnSecretRequested() {}
func (NopListener) OnPaired()          {}
func (NopListener) OnSessionEnded()    {}
func (NopListener) OnError(error)      {}

var _ Listener = NopListener{}
