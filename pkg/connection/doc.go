// Package connection provides the reconnect policy for remote sessions.
//
// A TV drops the remote connection when it sleeps, reboots or switches
// network. The remote session never retries on its own; the caller invokes
// AttemptToReconnect, which consults a RetryPolicy built here.
//
// # Backoff
//
// Delays grow exponentially from Initial up to Max:
//
//	1s, 2s, 4s, 8s, 16s, 30s, 30s, ...
//
// with jitter added on top of each base delay:
//
//	actual_delay = base_delay + random(0, base_delay * Jitter)
//
// # Attempt Limit
//
// A RetryPolicy always carries a MaxAttempts bound. Once it is spent the
// Retrier refuses further attempts until Reset, which the session calls
// after a connection reaches the active state.
package connection
