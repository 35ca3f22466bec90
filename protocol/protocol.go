// Package protocol implements the mouse-proxy serial wire protocol
package protocol

// Version represents the protocol revision spoken by the actuator firmware
const Version = "1.0.0"

// Protocol constants
const (
	StartByte = 0xAA // First byte of every command frame
	CmdMove   = 0x01 // The sole defined command
	FrameSize = 10   // Fixed frame size: header + payload + checksum

	// Frame field offsets
	PosStart    = 0
	PosCmd      = 1
	PosDX       = 2
	PosDY       = 4
	PosDuration = 6
	PosCurve    = 8
	PosChecksum = 9
)

// Response codes returned by the actuator after processing a command.
const (
	RespOK             = 0x00 // Movement completed
	RespNakChecksum    = 0x01 // Frame rejected: checksum mismatch
	RespNakInvalid     = 0x02 // Frame understood, parameters rejected
	RespNakInterrupted = 0x03 // A newer command preempted this one
)

// MoveCommand represents one relative mouse movement request
type MoveCommand struct {
	DX         int16
	DY         int16
	DurationMS uint16
	Curve      Curve
}
