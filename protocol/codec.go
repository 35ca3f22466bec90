package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors for validation and framing failures.
var (
	ErrDeltaRange     = errors.New("delta out of range")
	ErrDurationRange  = errors.New("duration out of range")
	ErrInvalidCurve   = errors.New("invalid curve")
	ErrResponseLength = errors.New("response must be exactly one byte")
	ErrBadFrame       = errors.New("malformed frame")
)

// EncodeMove validates and serializes a move command into a 10-byte frame.
//
// dx and dy are the relative movement in pixels (-32768 to 32767),
// durationMs the movement time in milliseconds (1 to 65535, zero is
// rejected because a command must take positive time). Same inputs always
// produce the same bytes; no I/O happens here.
func EncodeMove(dx, dy, durationMs int, curve Curve) ([]byte, error) {
	if dx < -32768 || dx > 32767 {
		return nil, fmt.Errorf("%w: dx %d not in [-32768, 32767]", ErrDeltaRange, dx)
	}
	if dy < -32768 || dy > 32767 {
		return nil, fmt.Errorf("%w: dy %d not in [-32768, 32767]", ErrDeltaRange, dy)
	}
	if durationMs < 1 || durationMs > 65535 {
		return nil, fmt.Errorf("%w: %dms not in [1, 65535]", ErrDurationRange, durationMs)
	}
	if !curve.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidCurve, byte(curve))
	}

	frame := make([]byte, FrameSize)
	frame[PosStart] = StartByte
	frame[PosCmd] = CmdMove
	binary.LittleEndian.PutUint16(frame[PosDX:], uint16(int16(dx)))
	binary.LittleEndian.PutUint16(frame[PosDY:], uint16(int16(dy)))
	binary.LittleEndian.PutUint16(frame[PosDuration:], uint16(durationMs))
	frame[PosCurve] = curve.Code()
	frame[PosChecksum] = Checksum(frame[:PosChecksum])

	return frame, nil
}

// DecodeMove parses a wire frame back into its command. It is the inverse
// of EncodeMove and rejects frames with a bad length, header, checksum or
// curve code.
func DecodeMove(frame []byte) (MoveCommand, error) {
	if len(frame) != FrameSize {
		return MoveCommand{}, fmt.Errorf("%w: %d bytes, want %d", ErrBadFrame, len(frame), FrameSize)
	}
	if frame[PosStart] != StartByte {
		return MoveCommand{}, fmt.Errorf("%w: bad start byte 0x%02X", ErrBadFrame, frame[PosStart])
	}
	if frame[PosCmd] != CmdMove {
		return MoveCommand{}, fmt.Errorf("%w: unknown command 0x%02X", ErrBadFrame, frame[PosCmd])
	}
	if !VerifyFrame(frame) {
		return MoveCommand{}, fmt.Errorf("%w: checksum mismatch: expected 0x%02X, got 0x%02X",
			ErrBadFrame, Checksum(frame[:PosChecksum]), frame[PosChecksum])
	}

	curve, err := CurveFromCode(frame[PosCurve])
	if err != nil {
		return MoveCommand{}, err
	}

	duration := binary.LittleEndian.Uint16(frame[PosDuration:])
	if duration == 0 {
		return MoveCommand{}, fmt.Errorf("%w: zero duration", ErrDurationRange)
	}

	return MoveCommand{
		DX:         int16(binary.LittleEndian.Uint16(frame[PosDX:])),
		DY:         int16(binary.LittleEndian.Uint16(frame[PosDY:])),
		DurationMS: duration,
		Curve:      curve,
	}, nil
}

// Status classifies the actuator's one-byte reply.
type Status int

const (
	StatusOK Status = iota
	StatusNakChecksum
	StatusNakInvalid
	StatusNakInterrupted
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "movement completed"
	case StatusNakChecksum:
		return "checksum error"
	case StatusNakInvalid:
		return "invalid command"
	case StatusNakInterrupted:
		return "movement interrupted by new command"
	}
	return "unknown response code"
}

// Response is a decoded actuator reply. Code carries the raw wire byte so
// unrecognized codes stay distinguishable for diagnostics.
type Response struct {
	Status Status
	Code   byte
}

// OK reports whether the actuator acknowledged the movement as completed.
func (r Response) OK() bool {
	return r.Status == StatusOK
}

func (r Response) String() string {
	if r.Status == StatusUnknown {
		return fmt.Sprintf("unknown response code 0x%02X", r.Code)
	}
	return r.Status.String()
}

// DecodeResponse interprets the actuator's reply. The input must be exactly
// one byte; anything else is a framing error. A byte outside the defined
// codes still decodes, as StatusUnknown, so callers can report it.
func DecodeResponse(data []byte) (Response, error) {
	if len(data) != 1 {
		return Response{}, fmt.Errorf("%w: got %d bytes", ErrResponseLength, len(data))
	}

	code := data[0]
	switch code {
	case RespOK:
		return Response{Status: StatusOK, Code: code}, nil
	case RespNakChecksum:
		return Response{Status: StatusNakChecksum, Code: code}, nil
	case RespNakInvalid:
		return Response{Status: StatusNakInvalid, Code: code}, nil
	case RespNakInterrupted:
		return Response{Status: StatusNakInterrupted, Code: code}, nil
	}
	return Response{Status: StatusUnknown, Code: code}, nil
}
