package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush discards any input bytes already buffered by the port
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (115200 for the mouse-proxy firmware)
	Baud int

	// Poll timeout for a single Read, in milliseconds. Longer deadlines
	// are enforced by callers looping over reads.
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the mouse-proxy link
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // Leonardo USB CDC default
		ReadTimeout: 50,     // 50ms poll timeout
	}
}
