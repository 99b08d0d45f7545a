package service

// Listener receives the progress of a Connect call and of the resulting
// remote session. Callbacks may run on session goroutines.
type Listener interface {
	// OnConnectingToRemote is called before the remote handshake starts.
	OnConnectingToRemote()

	// OnConnected is called once the remote session is active.
	OnConnected()

	// OnSessionCreated is called when the TV accepted the pairing request.
	OnSessionCreated()

	// OnSecretRequested is called when the TV shows the pairing code.
	// Pass it to Client.SendSecret.
	OnSecretRequested()

	// OnPaired is called when pairing succeeded.
	OnPaired()

	// OnSslError is called when the remote TLS handshake failed, usually
	// because the TV no longer knows this client.
	OnSslError(err error)

	// OnError is called for pairing and remote session errors.
	OnError(err error)

	// OnDisconnect is called at most once per connection.
	OnDisconnect()
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) OnConnectingToRemote() {}
func (NopListener) OnConnected()          {}
func (NopListener) OnSessionCreated()     {}
func (NopListener) OnSecretRequested()    {}
func (NopListener) OnPaired()             {}
func (NopListener) OnSslError(error)      {}
func (NopListener) OnError(error)         {}
func (NopListener) OnDisconnect()         {}

var _ Listener = NopListener{}
