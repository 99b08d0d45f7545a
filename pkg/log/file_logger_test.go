package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.alog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	logger.Log(Event{
		Timestamp:    ts,
		ConnectionID: "conn-1",
		Direction:    DirectionOut,
		Layer:        LayerWire,
		Category:     CategoryMessage,
		Channel:      ChannelRemote,
		Message:      &MessageEvent{Kind: "RemoteKeyInject", Summary: "KEYCODE_HOME SHORT"},
	})
	logger.Log(Event{
		Timestamp:    ts.Add(time.Millisecond),
		ConnectionID: "conn-1",
		Layer:        LayerSession,
		Category:     CategoryState,
		Channel:      ChannelRemote,
		StateChange:  &StateChangeEvent{Entity: StateEntityRemote, OldState: "CONFIGURING", NewState: "ACTIVE"},
	})
	assert.Equal(t, 2, logger.Count())
	require.NoError(t, logger.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	assert.True(t, first.Timestamp.Equal(ts))
	require.NotNil(t, first.Message)
	assert.Equal(t, "RemoteKeyInject", first.Message.Kind)
	assert.Equal(t, ChannelRemote, first.Channel)

	second, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, second.StateChange)
	assert.Equal(t, "ACTIVE", second.StateChange.NewState)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.alog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	logger.Log(Event{ConnectionID: "late"})
	assert.Equal(t, 0, logger.Count())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileLoggerConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.alog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				logger.Log(Event{ConnectionID: "c", Frame: &FrameEvent{Size: j}})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	n := 0
	for {
		if _, err := r.Next(); err != nil {
			break
		}
		n++
	}
	assert.Equal(t, 200, n)
}
