package transport

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Drenae/AndroidTvRemote/pkg/log"
)

// Framing constants.
const (
	// MaxFrameSize is the largest payload a frame may declare.
	MaxFrameSize = 8192

	// maxPrefixLen bounds the varint prefix. 8192 needs two bytes; anything
	// longer than a 32-bit varint is garbage.
	maxPrefixLen = binary.MaxVarintLen32

	// MaxLogFrameDataSize caps the bytes copied into frame log events.
	MaxLogFrameDataSize = 1024
)

// Framing errors, wrapped in *FramingError.
var (
	// ErrFrameTooLarge indicates a declared length above MaxFrameSize.
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrFrameTruncated indicates the stream ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrBadPrefix indicates a length prefix that is not a valid varint.
	ErrBadPrefix = errors.New("malformed length prefix")
)

// frameLogger emits transport-layer frame events.
type frameLogger struct {
	logger  log.Logger
	connID  string
	channel log.Channel
}

func (fl *frameLogger) logFrame(data []byte, prefixLen int, direction log.Direction) {
	if fl.logger == nil {
		return
	}
	frameData := data
	truncated := false
	if len(data) > MaxLogFrameDataSize {
		frameData = data[:MaxLogFrameDataSize]
		truncated = true
	}
	fl.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: fl.connID,
		Direction:    direction,
		Layer:        log.LayerTransport,
		Category:     log.CategoryMessage,
		Channel:      fl.channel,
		Frame: &log.FrameEvent{
			Size:      prefixLen + len(data),
			Data:      append([]byte(nil), frameData...),
			Truncated: truncated,
		},
	})
}

// FrameWriter writes length-prefixed frames to an underlying writer.
type FrameWriter struct {
	w  io.Writer
	mu sync.Mutex
	frameLogger
}

// NewFrameWriter creates a new frame writer.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// SetLogger configures frame logging. Pass nil to disable it.
func (fw *FrameWriter) SetLogger(logger log.Logger, connID string, channel log.Channel) {
	fw.frameLogger = frameLogger{logger: logger, connID: connID, channel: channel}
}

// WriteFrame writes one frame as a single Write so the prefix and payload
// share a TLS record. A zero-length payload is valid.
// Safe for concurrent use.
func (fw *FrameWriter) WriteFrame(payload []byte) error {
	if len(payload) > MaxFrameSize {
		return &FramingError{Length: uint64(len(payload)), Err: ErrFrameTooLarge}
	}

	buf := make([]byte, 0, maxPrefixLen+len(payload))
	buf = binary.AppendUvarint(buf, uint64(len(payload)))
	prefixLen := len(buf)
	buf = append(buf, payload...)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, err := fw.w.Write(buf); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	fw.logFrame(payload, prefixLen, log.DirectionOut)
	return nil
}

// FrameReader reads length-prefixed frames from an underlying reader.
// It is not safe for concurrent use; one read loop owns it.
type FrameReader struct {
	r *bufio.Reader
	frameLogger
}

// NewFrameReader creates a new frame reader.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReaderSize(r, MaxFrameSize+maxPrefixLen)}
}

// SetLogger configures frame logging. Pass nil to disable it.
func (fr *FrameReader) SetLogger(logger log.Logger, connID string, channel log.Channel) {
	fr.frameLogger = frameLogger{logger: logger, connID: connID, channel: channel}
}

// ReadFrame reads one frame and returns its payload.
//
// It returns io.EOF when the stream ends cleanly between frames, a
// *FramingError when the prefix is malformed, the length exceeds
// MaxFrameSize or the stream ends inside a frame, and a *TransportError for
// other read failures. A zero-length frame yields an empty, non-nil payload.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	length, prefixLen, err := fr.readPrefix()
	if err != nil {
		return nil, err
	}
	if length > MaxFrameSize {
		return nil, &FramingError{Length: length, Err: ErrFrameTooLarge}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &FramingError{Length: length, Err: ErrFrameTruncated}
		}
		return nil, &TransportError{Op: "read", Err: err}
	}

	fr.logFrame(payload, prefixLen, log.DirectionIn)
	return payload, nil
}

func (fr *FrameReader) readPrefix() (uint64, int, error) {
	var length uint64
	for i := 0; i < maxPrefixLen; i++ {
		b, err := fr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, 0, io.EOF
				}
				return 0, 0, &FramingError{Err: ErrFrameTruncated}
			}
			return 0, 0, &TransportError{Op: "read", Err: err}
		}
		length |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return length, i + 1, nil
		}
	}
	return 0, 0, &FramingError{Err: fmt.Errorf("%w: more than %d bytes", ErrBadPrefix, maxPrefixLen)}
}

// FrameSize returns the on-wire size of a frame carrying payloadSize bytes.
func FrameSize(payloadSize int) int {
	var buf [binary.MaxVarintLen64]byte
	return binary.PutUvarint(buf[:], uint64(payloadSize)) + payloadSize
}
