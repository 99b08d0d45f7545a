// Package remote implements the remote-control session with a paired TV.
//
// A Session connects to the remote port (6466) with the client identity
// created during pairing and runs a short handshake:
//
//	TV     -> RemoteConfigure   (device info, reported via OnDeviceInfo)
//	client -> RemoteConfigure   (our device info)
//	TV     -> RemoteSetActive   (acknowledgement)
//	client -> RemoteSetActive   (session becomes active, OnConnected)
//
// Once active, key presses are written synchronously with SendCommand. The
// TV pings the client every few seconds; pings are answered from the read
// goroutine, and a PingWatchdog reports the connection lost when they stop.
// Volume and power notifications are passed to the Listener.
//
// A TV that no longer recognises the client certificate rejects the TLS
// handshake. That is reported through OnSslError, separately from other
// failures, so the caller can start pairing again.
//
// Reconnecting is driven by the caller with AttemptToReconnect, which
// spaces attempts according to a connection.RetryPolicy.
package remote
