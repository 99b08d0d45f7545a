package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.atvlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

var testStart = time.Date(2026, 3, 14, 20, 15, 32, 123456000, time.UTC)

// sessionEvents is a short pairing exchange followed by a remote session.
func sessionEvents() []log.Event {
	return []log.Event{
		{
			Timestamp:    testStart,
			ConnectionID: "pair0001-aaaa",
			Direction:    log.DirectionOut,
			Layer:        log.LayerWire,
			Category:     log.CategoryMessage,
			Channel:      log.ChannelPairing,
			RemoteAddr:   "192.168.1.20:6467",
			Message:      &log.MessageEvent{Kind: "PairingRequest", Status: 200, Summary: "service=atvremote client=Go"},
		},
		{
			Timestamp:    testStart.Add(100 * time.Millisecond),
			ConnectionID: "pair0001-aaaa",
			Direction:    log.DirectionIn,
			Layer:        log.LayerWire,
			Category:     log.CategoryMessage,
			Channel:      log.ChannelPairing,
			Message:      &log.MessageEvent{Kind: "PairingRequestAck", Status: 200},
		},
		{
			Timestamp:    testStart.Add(5 * time.Second),
			ConnectionID: "pair0001-aaaa",
			Layer:        log.LayerSession,
			Category:     log.CategoryState,
			Channel:      log.ChannelPairing,
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityPairing,
				OldState: "WAITING_SECRET",
				NewState: "PAIRED",
			},
		},
		{
			Timestamp:    testStart.Add(6 * time.Second),
			ConnectionID: "remote01-bbbb",
			Direction:    log.DirectionOut,
			Layer:        log.LayerWire,
			Category:     log.CategoryMessage,
			Channel:      log.ChannelRemote,
			RemoteAddr:   "192.168.1.20:6466",
			Message:      &log.MessageEvent{Kind: "RemoteKeyInject", Summary: "KEYCODE_HOME SHORT"},
		},
		{
			Timestamp:    testStart.Add(7 * time.Second),
			ConnectionID: "remote01-bbbb",
			Direction:    log.DirectionIn,
			Layer:        log.LayerWire,
			Category:     log.CategoryControl,
			Channel:      log.ChannelRemote,
			ControlMsg:   &log.ControlMsgEvent{Type: log.ControlMsgPing, Sequence: 7},
		},
		{
			Timestamp:    testStart.Add(8 * time.Second),
			ConnectionID: "remote01-bbbb",
			Direction:    log.DirectionIn,
			Layer:        log.LayerTransport,
			Category:     log.CategoryError,
			Channel:      log.ChannelRemote,
			Error: &log.ErrorEventData{
				Layer:   log.LayerTransport,
				Message: "connection reset by peer",
				Context: "reading frame",
			},
		},
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("layer", func(t *testing.T) {
		for in, want := range map[string]log.Layer{
			"transport": log.LayerTransport,
			"WIRE":      log.LayerWire,
			"Session":   log.LayerSession,
		} {
			got, err := ParseLayerFlag(in)
			if err != nil || got != want {
				t.Errorf("ParseLayerFlag(%q) = %v, %v; want %v", in, got, err, want)
			}
		}
		if _, err := ParseLayerFlag("service"); err == nil {
			t.Error("expected error for unknown layer")
		}
	})

	t.Run("channel", func(t *testing.T) {
		got, err := ParseChannelFlag("pairing")
		if err != nil || got != log.ChannelPairing {
			t.Errorf("ParseChannelFlag(pairing) = %v, %v", got, err)
		}
		if _, err := ParseChannelFlag("zone"); err == nil {
			t.Error("expected error for unknown channel")
		}
	})

	t.Run("direction and category", func(t *testing.T) {
		if d, err := ParseDirectionFlag("OUT"); err != nil || d != log.DirectionOut {
			t.Errorf("ParseDirectionFlag(OUT) = %v, %v", d, err)
		}
		if c, err := ParseCategoryFlag("control"); err != nil || c != log.CategoryControl {
			t.Errorf("ParseCategoryFlag(control) = %v, %v", c, err)
		}
		if _, err := ParseCategoryFlag("snapshot"); err == nil {
			t.Error("expected error for unknown category")
		}
	})
}

func TestFilterOptionsBuild(t *testing.T) {
	filter, err := FilterOptions{
		Channel:   "remote",
		Kind:      "RemoteKeyInject",
		TimeStart: "2026-03-14T20:15:35Z",
	}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if filter.Channel == nil || *filter.Channel != log.ChannelRemote {
		t.Errorf("Channel = %v, want remote", filter.Channel)
	}
	if filter.Kind != "RemoteKeyInject" {
		t.Errorf("Kind = %q", filter.Kind)
	}
	if filter.TimeStart == nil {
		t.Error("TimeStart not set")
	}

	if _, err := (FilterOptions{TimeEnd: "yesterday"}).Build(); err == nil {
		t.Error("expected error for bad time")
	}
}

func TestRunView(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	t.Run("all events", func(t *testing.T) {
		var buf bytes.Buffer
		if err := RunView(path, log.Filter{}, &buf); err != nil {
			t.Fatalf("RunView: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"2026-03-14T20:15:32.123456Z [conn:pair0001]",
			"PairingRequest",
			"Status: 200",
			"Peer: 192.168.1.20:6467",
			"WAITING_SECRET -> PAIRED",
			"KEYCODE_HOME SHORT",
			"CTRL PING",
			"Sequence: 7",
			"Message: connection reset by peer",
			"Context: reading frame",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("by channel", func(t *testing.T) {
		ch := log.ChannelPairing
		var buf bytes.Buffer
		if err := RunView(path, log.Filter{Channel: &ch}, &buf); err != nil {
			t.Fatalf("RunView: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "RemoteKeyInject") {
			t.Error("remote event in pairing view")
		}
		if !strings.Contains(out, "PairingRequestAck") {
			t.Error("pairing event missing")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := RunView(filepath.Join(t.TempDir(), "none.atvlog"), log.Filter{}, &bytes.Buffer{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "filtered.atvlog")

	filter, err := FilterOptions{Kind: "RemoteKeyInject"}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	count, err := RunFilter(path, output, filter)
	if err != nil {
		t.Fatalf("RunFilter: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	reader, err := log.NewReader(output)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer reader.Close()
	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if event.Message == nil || event.Message.Kind != "RemoteKeyInject" {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", output); err != nil {
		t.Fatalf("RunExport: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != len(sessionEvents()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(sessionEvents()))
	}

	var first log.Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first.ConnectionID != "pair0001-aaaa" || first.Message == nil || first.Message.Kind != "PairingRequest" {
		t.Errorf("unexpected first event %+v", first)
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", output); err != nil {
		t.Fatalf("RunExport: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "timestamp,connection_id,direction,channel,layer,category,type,detail\n") {
		t.Errorf("bad header:\n%s", out)
	}
	if !strings.Contains(out, "RemoteKeyInject,KEYCODE_HOME SHORT") {
		t.Errorf("key press row missing:\n%s", out)
	}
	if !strings.Contains(out, "state,PAIRED") {
		t.Errorf("state row missing:\n%s", out)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunStats(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats: %v", err)
	}
	if stats.TotalEvents != 6 {
		t.Errorf("TotalEvents = %d, want 6", stats.TotalEvents)
	}
	if len(stats.Connections) != 2 {
		t.Errorf("Connections = %d, want 2", len(stats.Connections))
	}
	if stats.MessagesByKind["PairingRequest"] != 1 || stats.MessagesByKind["RemoteKeyInject"] != 1 {
		t.Errorf("MessagesByKind = %v", stats.MessagesByKind)
	}
	if stats.Pings != 1 || stats.Errors != 1 {
		t.Errorf("Pings = %d, Errors = %d", stats.Pings, stats.Errors)
	}
	pair := stats.Connections["pair0001-aaaa"]
	if pair == nil || pair.Channel != log.ChannelPairing || pair.LastState != "PAIRED" {
		t.Errorf("pairing connection = %+v", pair)
	}

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total Events: 6", "Connections: 2", "RemoteKeyInject:", "Pings: 1", "Errors: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
