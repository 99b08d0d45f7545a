// Package interactive provides the interactive command-line interface
// for atvremote.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
	"github.com/Drenae/AndroidTvRemote/pkg/persistence"
	"github.com/Drenae/AndroidTvRemote/pkg/service"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
)

// Waker sends Wake-on-LAN packets.
type Waker interface {
	Wake(ctx context.Context, mac string) error
}

// Options holds what the interactive mode drives.
type Options struct {
	Client *service.Client
	Store  *persistence.StateStore
	Waker  Waker
}

// Remote handles interactive mode for atvremote.
type Remote struct {
	client *service.Client
	store  *persistence.StateStore
	waker  Waker
	rl     *readline.Instance
	out    io.Writer

	mu             sync.Mutex
	found          []discovery.DiscoveredTv
	connecting     bool
	awaitingSecret bool
	paired         bool
}

// New creates a new interactive remote.
func New(opts Options) (*Remote, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "atv> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	r := newRemote(opts, rl.Stdout())
	r.rl = rl
	return r, nil
}

func newRemote(opts Options, out io.Writer) *Remote {
	return &Remote{
		client: opts.Client,
		store:  opts.Store,
		waker:  opts.Waker,
		out:    out,
	}
}

func completer() *readline.PrefixCompleter {
	keys := make([]readline.PrefixCompleterInterface, 0, len(wire.KeyCodes()))
	for _, k := range wire.KeyCodes() {
		keys = append(keys, readline.PcItem(strings.ToLower(strings.TrimPrefix(k.String(), "KEYCODE_"))))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("discover"),
		readline.PcItem("tvs"),
		readline.PcItem("connect"),
		readline.PcItem("disconnect"),
		readline.PcItem("reconnect"),
		readline.PcItem("secret"),
		readline.PcItem("key", keys...),
		readline.PcItem("keys"),
		readline.PcItem("app"),
		readline.PcItem("wake"),
		readline.PcItem("mac"),
		readline.PcItem("forget"),
		readline.PcItem("status"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (r *Remote) Stdout() io.Writer {
	return r.out
}

// Run starts the interactive command loop.
func (r *Remote) Run(ctx context.Context, cancel context.CancelFunc) {
	defer r.rl.Close()

	r.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(r.out, "Exiting...")
			cancel()
			return
		}

		if quit := r.execute(ctx, line); quit {
			fmt.Fprintln(r.out, "Exiting...")
			cancel()
			return
		}
	}
}

// execute runs one command line. It reports whether the user asked to quit.
func (r *Remote) execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		r.printHelp()

	case "discover", "d":
		r.cmdDiscover(ctx, args)

	case "tvs", "list", "ls":
		r.cmdTvs()

	case "connect", "c":
		r.cmdConnect(ctx, args)

	case "disconnect":
		r.client.Disconnect()

	case "reconnect":
		r.cmdReconnect(ctx)

	case "secret", "code":
		r.cmdSecret(args)

	case "key", "k":
		r.cmdKey(args)

	case "keys":
		r.cmdKeys()

	case "app":
		r.cmdApp(args)

	case "wake":
		r.cmdWake(ctx, args)

	case "mac":
		r.cmdMAC(args)

	case "forget":
		r.cmdForget(args)

	case "status":
		r.cmdStatus()

	case "quit", "exit", "q":
		return true

	default:
		if r.isAwaitingSecret() && len(parts) == 1 {
			r.cmdSecret(parts)
			return false
		}
		// Bare key names such as "home" or "vol+".
		if code, ok := parseShortcut(cmd); ok && len(args) == 0 {
			r.sendKey(code, wire.DirectionShort)
			return false
		}
		fmt.Fprintf(r.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (r *Remote) printHelp() {
	fmt.Fprintln(r.out, `
Android TV Remote Commands:
  Discovery & Connection:
    discover [seconds]             - Browse the network for TVs
    tvs                            - List paired TVs
    connect <host|name|#n>         - Connect (pairs first when needed)
    secret <code>                  - Enter the code shown on the TV
    disconnect                     - Close the connection
    reconnect                      - Retry a lost connection

  Control:
    key <name> [short|down|up]     - Send a key (e.g. key home, key power)
    <name>                         - Shortcut for key <name> (e.g. vol+, ok, up)
    keys                           - List key names
    app <uri>                      - Open an app link

  Paired TVs:
    wake [host|name]               - Send Wake-on-LAN to a paired TV
    mac <address>                  - Store the MAC of the current TV
    forget <host|name>             - Remove a paired TV

  General:
    status                         - Show connection status
    help                           - Show this help
    quit                           - Exit`)
}

// parseShortcut accepts key names but not bare numbers, so a typo does not
// send an arbitrary key code.
func parseShortcut(s string) (wire.KeyCode, bool) {
	code, err := wire.ParseKeyCode(s)
	if err != nil || !code.Known() {
		return 0, false
	}
	return code, true
}

func (r *Remote) isAwaitingSecret() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.awaitingSecret
}
