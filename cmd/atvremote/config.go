package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the command configuration. Values come from the optional
// YAML file first; flags given on the command line override them.
type Config struct {
	ConfigFile string `yaml:"-"`

	Host        string        `yaml:"host"`
	StateDir    string        `yaml:"state_dir"`
	LogLevel    string        `yaml:"log_level"`
	ProtocolLog string        `yaml:"protocol_log"`
	Interface   string        `yaml:"interface"`
	ClientName  string        `yaml:"client_name"`
	ServiceName string        `yaml:"service_name"`
	Timeout     time.Duration `yaml:"timeout"`

	Wake WakeConfig `yaml:"wake"`

	// Command-line only.
	Interactive bool          `yaml:"-"`
	Discover    time.Duration `yaml:"-"`
	Keys        string        `yaml:"-"`
	AppLink     string        `yaml:"-"`
	MAC         string        `yaml:"-"`
	WakeFirst   bool          `yaml:"-"`
	Reset       bool          `yaml:"-"`
	ImportP12   string        `yaml:"-"`
}

// WakeConfig configures Wake-on-LAN.
type WakeConfig struct {
	Address string        `yaml:"address"`
	Port    int           `yaml:"port"`
	Delay   time.Duration `yaml:"delay"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return Config{
		StateDir: filepath.Join(dir, "atvremote"),
		LogLevel: "info",
		Timeout:  2 * time.Minute,
		Wake:     WakeConfig{Delay: 5 * time.Second},
	}
}

// registerFlags binds the command-line flags to c.
func (c *Config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&c.Host, "host", c.Host, "TV address or name of a paired TV (default: last used)")
	fs.StringVar(&c.StateDir, "state-dir", c.StateDir, "Directory for the identity and paired TVs")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.ProtocolLog, "protocol-log", c.ProtocolLog, "Write a protocol trace to this file")
	fs.StringVar(&c.Interface, "iface", c.Interface, "Network interface for discovery")
	fs.StringVar(&c.ClientName, "client-name", c.ClientName, "Client name shown on the TV while pairing")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Time allowed for connecting, pairing included")

	fs.BoolVar(&c.Interactive, "interactive", false, "Enable interactive command mode")
	fs.DurationVar(&c.Discover, "discover", 0, "Browse for TVs for this long, print them and exit")
	fs.StringVar(&c.Keys, "key", "", "Comma-separated keys to send, e.g. home,down,ok")
	fs.StringVar(&c.AppLink, "app", "", "App link to open, e.g. https://www.netflix.com/title")
	fs.StringVar(&c.MAC, "mac", "", "MAC address of the TV, stored for Wake-on-LAN")
	fs.BoolVar(&c.WakeFirst, "wake", false, "Send a Wake-on-LAN packet before connecting")
	fs.BoolVar(&c.Reset, "reset", false, "Delete the client identity and paired TVs; the next connect pairs again")
	fs.StringVar(&c.ImportP12, "import-p12", "", "Import the client identity from a PKCS#12 keystore")
}

// LoadConfigFile reads a YAML configuration file into c.
func (c *Config) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// parseConfig builds the configuration from defaults, the file named by
// -config and the flags in args.
func parseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("atvremote", flag.ContinueOnError)
	cfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.ConfigFile == "" {
		return cfg, cfg.Validate()
	}

	// Load the file, then parse the flags again so explicit flags win.
	fileCfg := DefaultConfig()
	if err := fileCfg.LoadConfigFile(cfg.ConfigFile); err != nil {
		return cfg, err
	}
	fileCfg.ConfigFile = cfg.ConfigFile
	fs = flag.NewFlagSet("atvremote", flag.ContinueOnError)
	fileCfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fileCfg, err
	}
	return fileCfg, fileCfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.StateDir == "" {
		return fmt.Errorf("state directory is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Discover < 0 {
		return fmt.Errorf("discover duration must not be negative")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}

// newLogger returns a text logger at the configured level.
func newLogger(level string, w io.Writer) *slog.Logger {
	lvl, _ := parseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// logOutput lets the interactive mode redirect log output after the
// loggers were handed out.
type logOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *logOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// Set replaces the destination.
func (o *logOutput) Set(w io.Writer) {
	o.mu.Lock()
	o.w = w
	o.mu.Unlock()
}
