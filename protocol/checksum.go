package protocol

// Checksum calculates the XOR checksum for mouse-proxy frames.
// This matches the implementation in the actuator firmware. It detects
// line-noise corruption on the serial link, nothing more.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// VerifyFrame reports whether a full frame's trailing byte equals the XOR
// of the nine bytes before it.
func VerifyFrame(frame []byte) bool {
	if len(frame) != FrameSize {
		return false
	}
	return Checksum(frame[:PosChecksum]) == frame[PosChecksum]
}
