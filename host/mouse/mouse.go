// Package mouse provides the host-side client for an Arduino Leonardo
// flashed with the mouse-proxy firmware. The actuator acts as a USB HID
// mouse; the host sends it relative movement commands over serial and
// blocks until the actuator reports the movement finished.
package mouse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dzmitry-savitski/arduino-mouse-proxy/host/serial"
	"github.com/dzmitry-savitski/arduino-mouse-proxy/protocol"
)

// Defaults for the mouse-proxy link.
const (
	DefaultBaud          = 115200
	DefaultTimeoutBuffer = time.Second
	DefaultMaxRetries    = 1
)

// Config holds configuration for opening a Mouse.
type Config struct {
	// Transport is the underlying communication port.
	// If nil, Port must be specified to open a serial connection.
	Transport serial.Port

	// Port is the serial device path (e.g., "/dev/ttyACM0" or "COM3").
	// Ignored if Transport is provided.
	Port string

	// Baud is the serial speed. Default is 115200.
	Baud int

	// TimeoutBuffer is added to a movement's duration when computing how
	// long to wait for the completion response. Default is 1 second.
	TimeoutBuffer time.Duration

	// MaxRetries is the number of extra send attempts a checksum NAK
	// earns. 0 means the default of 1; negative disables retries.
	MaxRetries int

	// Logger for exchange diagnostics. The zero value is silent.
	Logger zerolog.Logger
}

// Mouse is a client session for one actuator. It owns its transport
// exclusively: at most one exchange is in flight at a time.
type Mouse struct {
	transport     serial.Port
	timeoutBuffer time.Duration
	maxRetries    int
	log           zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// Open connects to the actuator with the given configuration. It fails
// immediately if the serial port cannot be opened.
func Open(cfg Config) (*Mouse, error) {
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.TimeoutBuffer == 0 {
		cfg.TimeoutBuffer = DefaultTimeoutBuffer
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	transport := cfg.Transport
	if transport == nil {
		if cfg.Port == "" {
			return nil, errors.New("either Transport or Port must be specified")
		}
		sc := serial.DefaultConfig(cfg.Port)
		sc.Baud = cfg.Baud
		var err error
		transport, err = serial.Open(sc)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to actuator on %s: %w", cfg.Port, err)
		}
	}

	m := &Mouse{
		transport:     transport,
		timeoutBuffer: cfg.TimeoutBuffer,
		maxRetries:    maxRetries,
		log:           cfg.Logger.With().Str("session", uuid.NewString()).Logger(),
	}

	m.log.Info().Str("port", cfg.Port).Int("baud", cfg.Baud).Msg("connected to actuator")

	return m, nil
}

// Move issues one relative movement and blocks until the actuator confirms
// it finished, the computed deadline (duration + timeout buffer) expires,
// or ctx is cancelled.
//
// dx and dy are pixels (positive = right/down), durationMs the movement
// time in milliseconds. Validation errors surface before anything is
// written. A checksum NAK is resent up to the configured retry count; every
// other failure is terminal for this call. The session stays usable after a
// protocol failure, only a connectivity failure invalidates it.
func (m *Mouse) Move(ctx context.Context, dx, dy, durationMs int, curve protocol.Curve) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	frame, err := protocol.EncodeMove(dx, dy, durationMs, curve)
	if err != nil {
		return err
	}

	// The wait must cover the physical movement time plus margin for
	// the completion byte to arrive.
	timeout := time.Duration(durationMs)*time.Millisecond + m.timeoutBuffer

	for attempt := 1; ; attempt++ {
		resp, err := m.exchangeLocked(ctx, frame, timeout)
		if err != nil {
			return err
		}

		switch {
		case resp.OK():
			m.log.Debug().
				Int("dx", dx).
				Int("dy", dy).
				Int("duration_ms", durationMs).
				Stringer("curve", curve).
				Int("attempt", attempt).
				Msg("movement completed")
			return nil

		case resp.Status == protocol.StatusNakChecksum && attempt <= m.maxRetries:
			// Checksum corruption is the one failure attributable to
			// the link rather than to the command. Resend.
			m.log.Warn().Int("attempt", attempt).Msg("actuator rejected checksum, resending")

		default:
			return &ProtocolError{Response: resp, Attempts: attempt}
		}
	}
}

// exchangeLocked performs one send/receive round trip.
func (m *Mouse) exchangeLocked(ctx context.Context, frame []byte, timeout time.Duration) (protocol.Response, error) {
	// A prior, abandoned exchange must not leak a stale byte into this one.
	if err := m.transport.Flush(); err != nil {
		return protocol.Response{}, &CommError{Op: "flush", Err: err}
	}

	n, err := m.transport.Write(frame)
	if err != nil {
		return protocol.Response{}, &CommError{Op: "write", Err: err}
	}
	if n != len(frame) {
		return protocol.Response{}, &CommError{Op: "write", Err: fmt.Errorf("incomplete write: %d of %d bytes", n, len(frame))}
	}

	return m.readResponseLocked(ctx, timeout)
}

// readResponseLocked waits for exactly one response byte until the deadline.
// A timeout is terminal: after silence the actuator's state is unknown, so
// the command is never blindly resent.
func (m *Mouse) readResponseLocked(ctx context.Context, timeout time.Duration) (protocol.Response, error) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return protocol.Response{}, ctx.Err()
		default:
		}

		// A native port reports an expired poll timeout as (0, io.EOF);
		// that means "no byte yet", not a dead link.
		n, err := m.transport.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return protocol.Response{}, &CommError{Op: "read", Err: err}
		}
		if n > 0 {
			return protocol.DecodeResponse(buf[:n])
		}

		if time.Now().After(deadline) {
			return protocol.Response{}, fmt.Errorf("%w within %v", ErrTimeout, timeout)
		}

		time.Sleep(time.Millisecond)
	}
}

// Close closes the serial connection. Calling it more than once is a no-op.
// Close waits for an in-flight Move to return; to abort a pending response
// wait early, cancel the Move's context instead.
func (m *Mouse) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	m.log.Info().Msg("connection closed")

	return m.transport.Close()
}
