// Command atvremote controls an Android TV over the Android TV Remote
// protocol.
//
// The first connection to a TV pairs with it: the TV shows a six digit
// code that has to be typed in. The client certificate created for that
// is stored in the state directory and reused afterwards.
//
// Usage:
//
//	atvremote [flags]
//
// Flags:
//
//	-config string        YAML configuration file
//	-host string          TV address or name of a paired TV (default: last used)
//	-state-dir string     Directory for the identity and paired TVs
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Write a protocol trace to this file
//	-interactive          Enable interactive command mode
//	-discover duration    Browse for TVs for this long, print them and exit
//	-key string           Comma-separated keys to send, e.g. home,down,ok
//	-app string           App link to open
//	-wake                 Send a Wake-on-LAN packet before connecting
//	-mac string           MAC address of the TV, stored for Wake-on-LAN
//	-reset                Delete the client identity and paired TVs
//	-import-p12 string    Import the client identity from a PKCS#12 keystore
//
// Examples:
//
//	# Find TVs on the network
//	atvremote -discover 5s
//
//	# Pair with a TV and press home
//	atvremote -host 192.168.1.20 -key home
//
//	# Turn the last used TV on and open an app
//	atvremote -wake -key power -app https://www.youtube.com
//
//	# Interactive remote with a protocol trace
//	atvremote -interactive -protocol-log tv.atvlog
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/Drenae/AndroidTvRemote/cmd/atvremote/interactive"
	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	protolog "github.com/Drenae/AndroidTvRemote/pkg/log"
	"github.com/Drenae/AndroidTvRemote/pkg/persistence"
	"github.com/Drenae/AndroidTvRemote/pkg/service"
	"github.com/Drenae/AndroidTvRemote/pkg/wire"
	"github.com/Drenae/AndroidTvRemote/pkg/wol"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	out := &logOutput{w: os.Stderr}
	logger := newLogger(cfg.LogLevel, out)
	if err := run(cfg, logger, out); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger, out *logOutput) error {
	provider, err := identity.NewProvider(identity.Config{
		Store:       identity.NewFileStore(filepath.Join(cfg.StateDir, "identity")),
		TrustPolicy: identity.AcceptAny(),
		CommonName:  cfg.ClientName,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	stateStore := persistence.NewStateStore(filepath.Join(cfg.StateDir, "state.json"))

	if cfg.Reset {
		logger.Info("resetting identity and paired TVs")
		if err := provider.Reset(); err != nil {
			return err
		}
		if err := stateStore.Clear(); err != nil {
			return err
		}
	}
	if cfg.ImportP12 != "" {
		if err := importIdentity(provider, cfg.ImportP12, logger); err != nil {
			return err
		}
	}

	svcConfig := service.DefaultConfig()
	svcConfig.Identity = provider
	svcConfig.Logger = logger
	svcConfig.Discovery.Interface = cfg.Interface
	if cfg.ClientName != "" {
		svcConfig.Pairing.ClientName = cfg.ClientName
	}
	if cfg.ServiceName != "" {
		svcConfig.Pairing.ServiceName = cfg.ServiceName
	}
	if cfg.ProtocolLog != "" {
		fileLogger, err := protolog.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return fmt.Errorf("protocol log: %w", err)
		}
		defer fileLogger.Close()
		svcConfig.ProtocolLogger = fileLogger
		logger.Info("writing protocol trace", "path", cfg.ProtocolLog)
	}

	client, err := service.NewClient(svcConfig)
	if err != nil {
		return err
	}
	defer client.Close()
	client.OnEvent(func(ev service.Event) { logEvent(logger, ev) })

	waker, err := newWaker(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Discover > 0 {
		return runDiscover(ctx, client, cfg.Discover, logger)
	}

	if cfg.Interactive {
		return runInteractive(ctx, client, stateStore, waker, out)
	}

	state, err := stateStore.Load()
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	tv, err := selectTv(cfg, state)
	if err != nil {
		return err
	}
	if cfg.MAC != "" {
		if _, err := wol.MagicPacket(cfg.MAC); err != nil {
			return err
		}
		tv.MAC = cfg.MAC
	}

	if cfg.WakeFirst {
		if tv.MAC == "" {
			return fmt.Errorf("no MAC address known for %s; pass -mac", tv.Host)
		}
		logger.Info("sending Wake-on-LAN", "mac", tv.MAC)
		if err := waker.Wake(ctx, tv.MAC); err != nil {
			return err
		}
		select {
		case <-time.After(cfg.Wake.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	listener := newPromptListener(logger, client, os.Stdin, os.Stderr)
	err = client.Connect(connectCtx, tv.Host, listener)
	cancel()
	if err != nil {
		return fmt.Errorf("connect %s: %w", tv.Host, err)
	}

	now := time.Now()
	tv.LastConnectedAt = now
	if listener.paired {
		tv.PairedAt = now
	}
	if err := stateStore.Update(func(s *persistence.RemoteState) {
		s.Upsert(tv)
		s.LastHost = tv.Host
	}); err != nil {
		logger.Warn("failed to save state", "error", err)
	}

	if cfg.Keys == "" && cfg.AppLink == "" {
		logger.Info("connected; press Ctrl-C to exit", "host", tv.Host)
		<-ctx.Done()
		return nil
	}
	return sendAll(client, cfg.Keys, cfg.AppLink, logger)
}

// selectTv picks the TV named by -host, or the last used one.
func selectTv(cfg Config, state *persistence.RemoteState) (persistence.PairedTv, error) {
	key := cfg.Host
	if key == "" {
		key = state.LastHost
	}
	if key == "" {
		return persistence.PairedTv{}, fmt.Errorf("no TV given; pass -host or run -discover")
	}
	if tv, ok := state.Find(key); ok {
		return tv, nil
	}
	return persistence.PairedTv{Host: key}, nil
}

// sendAll sends the comma-separated keys, then the app link.
func sendAll(client *service.Client, keys, appLink string, logger *slog.Logger) error {
	for _, name := range strings.Split(keys, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		code, err := wire.ParseKeyCode(name)
		if err != nil {
			return err
		}
		logger.Debug("sending key", "key", code.String())
		if err := client.SendKeyPress(code); err != nil {
			return err
		}
	}
	if appLink != "" {
		logger.Debug("opening app link", "uri", appLink)
		if err := client.SendAppLink(appLink); err != nil {
			return err
		}
	}
	return nil
}

func runDiscover(ctx context.Context, client *service.Client, wait time.Duration, logger *slog.Logger) error {
	logger.Info("browsing for TVs", "duration", wait)
	if err := client.Discover(ctx, nil); err != nil {
		return err
	}
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
	tvs, err := client.DiscoveredTvs()
	client.StopDiscovery()
	if err != nil {
		return err
	}
	if len(tvs) == 0 {
		fmt.Println("No TVs found")
		return nil
	}
	for _, tv := range tvs {
		fmt.Printf("%-16s %s (%s)\n", tv.Host, tv.FriendlyName, tv.ServiceName)
	}
	return nil
}

func runInteractive(ctx context.Context, client *service.Client, store *persistence.StateStore,
	waker interactive.Waker, out *logOutput) error {
	ic, err := interactive.New(interactive.Options{Client: client, Store: store, Waker: waker})
	if err != nil {
		return err
	}
	// Route log output through readline to avoid interfering with input.
	out.Set(ic.Stdout())
	defer out.Set(os.Stderr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ic.Run(ctx, cancel)
	return nil
}

func newWaker(cfg Config, logger *slog.Logger) (*wol.Sender, error) {
	wc := wol.Config{Address: cfg.Wake.Address, Port: cfg.Wake.Port, Logger: logger}
	if wc.Address == "" && cfg.Interface != "" {
		addr, err := wol.BroadcastAddress(cfg.Interface)
		if err != nil {
			return nil, err
		}
		wc.Address = addr
	}
	return wol.NewSender(wc), nil
}

// importIdentity reads a PKCS#12 keystore, asking for its password.
func importIdentity(provider *identity.Provider, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading keystore: %w", err)
	}
	password, err := readPassword("Keystore password: ")
	if err != nil {
		return err
	}
	id, err := provider.ImportPKCS12(data, password)
	if err != nil {
		return err
	}
	logger.Info("imported client identity", "fingerprint", id.Fingerprint())
	return nil
}

// readPassword prompts without echo on a terminal and reads a plain line
// otherwise.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func logEvent(logger *slog.Logger, ev service.Event) {
	switch ev.Type {
	case service.EventDeviceInfo:
		if ev.DeviceInfo != nil {
			logger.Info("TV info", "host", ev.Host, "vendor", ev.DeviceInfo.Vendor,
				"model", ev.DeviceInfo.Model, "version", ev.DeviceInfo.AppVersion)
		}
	case service.EventVolumeChanged:
		if ev.Volume != nil {
			logger.Info("volume", "level", ev.Volume.VolumeLevel, "max", ev.Volume.VolumeMax,
				"muted", ev.Volume.VolumeMuted)
		}
	case service.EventPowerChanged:
		logger.Info("power", "on", ev.Powered)
	case service.EventTvFound:
		if ev.TV != nil {
			logger.Debug("TV found", "tv", tvLabel(*ev.TV))
		}
	case service.EventTvLost:
		if ev.TV != nil {
			logger.Debug("TV lost", "tv", tvLabel(*ev.TV))
		}
	}
}

func tvLabel(tv discovery.DiscoveredTv) string {
	return fmt.Sprintf("%s (%s)", tv.FriendlyName, tv.Host)
}
