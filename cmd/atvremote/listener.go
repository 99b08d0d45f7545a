package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/service"
)

// secretSender is the part of service.Client the prompt needs.
type secretSender interface {
	SendSecret(code string) error
}

// promptListener logs connection progress and asks for the pairing code
// on in.
type promptListener struct {
	logger *slog.Logger
	client secretSender
	in     *bufio.Reader
	out    io.Writer

	paired bool
}

func newPromptListener(logger *slog.Logger, client secretSender, in io.Reader, out io.Writer) *promptListener {
	return &promptListener{logger: logger, client: client, in: bufio.NewReader(in), out: out}
}

func (l *promptListener) OnConnectingToRemote() { l.logger.Info("opening remote session") }
func (l *promptListener) OnConnected()          { l.logger.Info("connected") }
func (l *promptListener) OnSessionCreated()     { l.logger.Info("pairing started") }
func (l *promptListener) OnDisconnect()         { l.logger.Info("disconnected") }

func (l *promptListener) OnPaired() {
	l.paired = true
	l.logger.Info("paired")
}

// OnSecretRequested reads the code in the background. The pairing session
// starts waiting for it only after this callback returns.
func (l *promptListener) OnSecretRequested() {
	go l.readSecret()
}

func (l *promptListener) readSecret() {
	for {
		fmt.Fprint(l.out, "Code shown on the TV: ")
		line, err := l.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		err = l.client.SendSecret(strings.TrimSpace(line))
		if errors.Is(err, pairing.ErrInvalidSecret) || errors.Is(err, pairing.ErrSecretMismatch) {
			fmt.Fprintf(l.out, "%v; try again\n", err)
			continue
		}
		if err != nil {
			l.logger.Warn("code rejected", "error", err)
		}
		return
	}
}

func (l *promptListener) OnSslError(err error) {
	l.logger.Error("TLS handshake failed; the TV may have forgotten this client, run with -reset to pair again",
		"error", err)
}

func (l *promptListener) OnError(err error) { l.logger.Error("connection error", "error", err) }

var _ service.Listener = (*promptListener)(nil)
