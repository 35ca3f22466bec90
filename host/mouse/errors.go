package mouse

import (
	"errors"
	"fmt"

	"github.com/dzmitry-savitski/arduino-mouse-proxy/protocol"
)

// Sentinel errors for common failure modes.
var (
	ErrClosed  = errors.New("connection is closed")
	ErrTimeout = errors.New("actuator did not respond")
)

// CommError represents a transport-level error during an exchange.
type CommError struct {
	Op  string // Operation that failed (e.g., "write", "flush")
	Err error  // Underlying error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("communication error during %s: %v", e.Op, e.Err)
}

func (e *CommError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a well-formed but non-OK actuator response,
// including a checksum NAK that survived every retry.
type ProtocolError struct {
	Response protocol.Response // What the actuator answered
	Attempts int               // How many sends it took to give up
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("movement failed after %d attempt(s): %s", e.Attempts, e.Response)
}

// IsTimeout returns true if the error is a response timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
