package interactive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/persistence"
	"github.com/Drenae/AndroidTvRemote/pkg/service"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
	"github.com/Drenae/AndroidTvRemote/pkg/wol"
)

const defaultDiscoverTime = 5 * time.Second

// cmdDiscover handles the discover command.
func (r *Remote) cmdDiscover(ctx context.Context, args []string) {
	wait := defaultDiscoverTime
	if len(args) > 0 {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			fmt.Fprintf(r.out, "Invalid duration: %s\n", args[0])
			return
		}
		wait = time.Duration(secs) * time.Second
	}

	fmt.Fprintf(r.out, "Browsing for %s...\n", wait)
	if err := r.client.Discover(ctx, nil); err != nil {
		fmt.Fprintf(r.out, "Discovery error: %v\n", err)
		return
	}
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
	tvs, err := r.client.DiscoveredTvs()
	r.client.StopDiscovery()
	if err != nil {
		fmt.Fprintf(r.out, "Discovery error: %v\n", err)
		return
	}

	r.mu.Lock()
	r.found = tvs
	r.mu.Unlock()

	if len(tvs) == 0 {
		fmt.Fprintln(r.out, "No TVs found")
		return
	}
	fmt.Fprintf(r.out, "Found %d TV(s):\n", len(tvs))
	for idx, tv := range tvs {
		fmt.Fprintf(r.out, "  #%d %s (%s, host: %s)\n", idx+1, tv.FriendlyName, tv.ServiceName, tv.Host)
	}
}

// cmdTvs handles the tvs/list command.
func (r *Remote) cmdTvs() {
	state, err := r.store.Load()
	if err != nil {
		fmt.Fprintf(r.out, "Failed to load state: %v\n", err)
		return
	}
	if len(state.Tvs) == 0 {
		fmt.Fprintln(r.out, "No paired TVs")
		return
	}

	fmt.Fprintf(r.out, "\nPaired TVs (%d):\n", len(state.Tvs))
	fmt.Fprintln(r.out, "-------------------------------------------")
	for _, tv := range state.Tvs {
		marker := " "
		if tv.Host == state.LastHost {
			marker = "*"
		}
		name := tv.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(r.out, "%s %s\n", marker, tv.Host)
		fmt.Fprintf(r.out, "      Name: %s\n", name)
		if tv.MAC != "" {
			fmt.Fprintf(r.out, "      MAC: %s\n", tv.MAC)
		}
		if !tv.PairedAt.IsZero() {
			fmt.Fprintf(r.out, "      Paired: %s\n", tv.PairedAt.Format(time.RFC3339))
		}
		if !tv.LastConnectedAt.IsZero() {
			fmt.Fprintf(r.out, "      Last connected: %s\n", tv.LastConnectedAt.Format(time.RFC3339))
		}
	}
}

// resolve maps a discovery index, a paired TV name or a host to a TV
// entry. Unknown keys are taken as host names.
func (r *Remote) resolve(key string) persistence.PairedTv {
	if n, ok := strings.CutPrefix(key, "#"); ok {
		idx, err := strconv.Atoi(n)
		r.mu.Lock()
		defer r.mu.Unlock()
		if err == nil && idx >= 1 && idx <= len(r.found) {
			tv := r.found[idx-1]
			return persistence.PairedTv{Host: tv.Host, Name: tv.FriendlyName, ServiceName: tv.ServiceName}
		}
		return persistence.PairedTv{Host: key}
	}
	if state, err := r.store.Load(); err == nil {
		if tv, ok := state.Find(key); ok {
			return tv
		}
	}
	return persistence.PairedTv{Host: key}
}

// cmdConnect handles the connect command. Connecting runs in the
// background so the pairing code can be typed at the prompt.
func (r *Remote) cmdConnect(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: connect <host|name|#n>")
		return
	}
	tv := r.resolve(args[0])
	if tv.Host == "" || strings.HasPrefix(tv.Host, "#") {
		fmt.Fprintf(r.out, "No TV %s; run discover first\n", args[0])
		return
	}

	r.mu.Lock()
	if r.connecting {
		r.mu.Unlock()
		fmt.Fprintln(r.out, "Already connecting")
		return
	}
	r.connecting = true
	r.paired = false
	r.mu.Unlock()

	fmt.Fprintf(r.out, "Connecting to %s...\n", tv.Host)
	go func() {
		err := r.client.Connect(ctx, tv.Host, consoleListener{r: r})

		r.mu.Lock()
		r.connecting = false
		r.awaitingSecret = false
		paired := r.paired
		r.mu.Unlock()

		if err != nil {
			if errors.Is(err, service.ErrAlreadyConnected) {
				fmt.Fprintln(r.out, "Already connected; disconnect first")
			} else {
				fmt.Fprintf(r.out, "Connect failed: %v\n", err)
			}
			return
		}
		if err := r.recordConnection(tv, paired); err != nil {
			fmt.Fprintf(r.out, "Failed to save state: %v\n", err)
		}
	}()
}

// recordConnection stores tv as the last used TV.
func (r *Remote) recordConnection(tv persistence.PairedTv, paired bool) error {
	now := time.Now()
	tv.LastConnectedAt = now
	if paired {
		tv.PairedAt = now
	}
	return r.store.Update(func(s *persistence.RemoteState) {
		s.Upsert(tv)
		s.LastHost = tv.Host
	})
}

// cmdReconnect handles the reconnect command.
func (r *Remote) cmdReconnect(ctx context.Context) {
	if err := r.client.Reconnect(ctx); err != nil {
		fmt.Fprintf(r.out, "Reconnect failed: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "Reconnected")
}

// cmdSecret handles the secret command.
func (r *Remote) cmdSecret(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: secret <code>")
		return
	}
	err := r.client.SendSecret(args[0])
	switch {
	case err == nil:
	case errors.Is(err, pairing.ErrInvalidSecret), errors.Is(err, pairing.ErrSecretMismatch):
		fmt.Fprintf(r.out, "%v; try again\n", err)
	default:
		fmt.Fprintf(r.out, "Secret rejected: %v\n", err)
	}
}

// cmdKey handles the key command.
func (r *Remote) cmdKey(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: key <name> [short|down|up]")
		return
	}
	code, err := wire.ParseKeyCode(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%v (type 'keys' for names)\n", err)
		return
	}
	direction := wire.DirectionShort
	if len(args) > 1 {
		direction, err = wire.ParseDirection(args[1])
		if err != nil {
			fmt.Fprintf(r.out, "%v\n", err)
			return
		}
	}
	r.sendKey(code, direction)
}

func (r *Remote) sendKey(code wire.KeyCode, direction wire.Direction) {
	if !r.client.Connected() {
		fmt.Fprintln(r.out, "Not connected")
		return
	}
	if err := r.client.SendCommand(code, direction); err != nil {
		fmt.Fprintf(r.out, "Send failed: %v\n", err)
	}
}

// cmdKeys handles the keys command.
func (r *Remote) cmdKeys() {
	for _, code := range wire.KeyCodes() {
		name := strings.ToLower(strings.TrimPrefix(code.String(), "KEYCODE_"))
		if desc := code.Description(); desc != "" {
			fmt.Fprintf(r.out, "  %-24s %s\n", name, desc)
		} else {
			fmt.Fprintf(r.out, "  %s\n", name)
		}
	}
}

// cmdApp handles the app command.
func (r *Remote) cmdApp(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: app <uri>")
		return
	}
	if err := r.client.SendAppLink(args[0]); err != nil {
		fmt.Fprintf(r.out, "App link failed: %v\n", err)
	}
}

// cmdWake handles the wake command.
func (r *Remote) cmdWake(ctx context.Context, args []string) {
	key := r.client.Host()
	if len(args) > 0 {
		key = args[0]
	}
	if key == "" {
		if state, err := r.store.Load(); err == nil {
			key = state.LastHost
		}
	}
	if key == "" {
		fmt.Fprintln(r.out, "Usage: wake <host|name>")
		return
	}
	tv := r.resolve(key)
	if tv.MAC == "" {
		fmt.Fprintf(r.out, "No MAC stored for %s; use 'mac <address>' while connected\n", tv.Host)
		return
	}
	if err := r.waker.Wake(ctx, tv.MAC); err != nil {
		fmt.Fprintf(r.out, "Wake failed: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Magic packet sent to %s\n", tv.MAC)
}

// cmdMAC handles the mac command.
func (r *Remote) cmdMAC(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: mac <address>")
		return
	}
	host := r.client.Host()
	if host == "" {
		fmt.Fprintln(r.out, "Connect to the TV first")
		return
	}
	if _, err := wol.MagicPacket(args[0]); err != nil {
		fmt.Fprintf(r.out, "%v\n", err)
		return
	}
	err := r.store.Update(func(s *persistence.RemoteState) {
		s.Upsert(persistence.PairedTv{Host: host, MAC: args[0]})
	})
	if err != nil {
		fmt.Fprintf(r.out, "Failed to save state: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "MAC of %s set to %s\n", host, args[0])
}

// cmdForget handles the forget command.
func (r *Remote) cmdForget(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: forget <host|name>")
		return
	}
	tv := r.resolve(args[0])
	removed := false
	err := r.store.Update(func(s *persistence.RemoteState) {
		removed = s.Remove(tv.Host)
	})
	switch {
	case err != nil:
		fmt.Fprintf(r.out, "Failed to save state: %v\n", err)
	case !removed:
		fmt.Fprintf(r.out, "No paired TV %s\n", args[0])
	default:
		fmt.Fprintf(r.out, "Forgot %s\n", tv.Host)
	}
}

// cmdStatus handles the status command.
func (r *Remote) cmdStatus() {
	r.mu.Lock()
	connecting, awaiting := r.connecting, r.awaitingSecret
	r.mu.Unlock()

	host := r.client.Host()
	if host == "" {
		host = "-"
	}
	status := "disconnected"
	switch {
	case r.client.Connected():
		status = "connected"
	case awaiting:
		status = "waiting for pairing code"
	case connecting:
		status = "connecting"
	}
	fmt.Fprintf(r.out, "TV:     %s\n", host)
	fmt.Fprintf(r.out, "Status: %s\n", status)
}

// consoleListener prints connection progress above the prompt.
type consoleListener struct {
	r *Remote
}

func (l consoleListener) OnConnectingToRemote() { fmt.Fprintln(l.r.out, "Opening remote session...") }
func (l consoleListener) OnConnected()          { fmt.Fprintln(l.r.out, "Connected") }
func (l consoleListener) OnSessionCreated()     { fmt.Fprintln(l.r.out, "Pairing started") }

func (l consoleListener) OnSecretRequested() {
	l.r.mu.Lock()
	l.r.awaitingSecret = true
	l.r.mu.Unlock()
	fmt.Fprintln(l.r.out, "Type the code shown on the TV")
}

func (l consoleListener) OnPaired() {
	l.r.mu.Lock()
	l.r.awaitingSecret = false
	l.r.paired = true
	l.r.mu.Unlock()
	fmt.Fprintln(l.r.out, "Paired")
}

func (l consoleListener) OnSslError(err error) {
	fmt.Fprintf(l.r.out, "TLS handshake failed: %v\n", err)
	fmt.Fprintln(l.r.out, "The TV may have forgotten this client; restart with -reset to pair again")
}

func (l consoleListener) OnError(err error) { fmt.Fprintf(l.r.out, "Error: %v\n", err) }
func (l consoleListener) OnDisconnect()     { fmt.Fprintln(l.r.out, "Disconnected") }

var (
	_ service.Listener = consoleListener{}
	_ Waker            = (*wol.Sender)(nil)
)
