package log

import (
	"context"
	"log/slog"
)

// SlogAdapter forwards protocol events to an slog.Logger. Error events are
// logged at Warn, everything else at Debug.
type SlogAdapter struct {
	logger *slog.Logger
}

func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	if event.Error != nil {
		level = slog.LevelWarn
	}
	ctx := context.Background()
	if !a.logger.Enabled(ctx, level) {
		return
	}

	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnectionID),
		slog.String("channel", event.Channel.String()),
		slog.String("dir", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("peer", event.RemoteAddr))
	}
	if payload, ok := payloadAttr(event); ok {
		attrs = append(attrs, payload)
	}
	a.logger.LogAttrs(ctx, level, "protocol "+event.Category.String(), attrs...)
}

// payloadAttr groups the fields of whichever payload the event carries.
func payloadAttr(event Event) (slog.Attr, bool) {
	var args []any
	var group string

	switch {
	case event.Frame != nil:
		group = "frame"
		args = []any{"size", event.Frame.Size, "truncated", event.Frame.Truncated}
	case event.Message != nil:
		m := event.Message
		group = "msg"
		args = []any{"kind", m.Kind}
		if m.Status != 0 {
			args = append(args, "status", m.Status)
		}
		if m.Summary != "" {
			args = append(args, "summary", m.Summary)
		}
	case event.StateChange != nil:
		s := event.StateChange
		group = "state"
		args = []any{"entity", s.Entity.String(), "from", s.OldState, "to", s.NewState}
		if s.Reason != "" {
			args = append(args, "reason", s.Reason)
		}
	case event.ControlMsg != nil:
		group = "ctrl"
		args = []any{"type", event.ControlMsg.Type.String()}
		if event.ControlMsg.Sequence != 0 {
			args = append(args, "seq", event.ControlMsg.Sequence)
		}
	case event.Error != nil:
		e := event.Error
		group = "err"
		args = []any{"layer", e.Layer.String(), "message", e.Message}
		if e.Context != "" {
			args = append(args, "context", e.Context)
		}
		if e.Code != nil {
			args = append(args, "code", *e.Code)
		}
	default:
		return slog.Attr{}, false
	}
	return slog.Group(group, args...), true
}

var _ Logger = (*SlogAdapter)(nil)
