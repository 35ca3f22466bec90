package protocol

import "testing"

func TestChecksum(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected byte
	}{
		{[]byte{}, 0x00},
		{[]byte{0x00}, 0x00},
		{[]byte{0xFF}, 0xFF},
		{[]byte{0xAA, 0x01}, 0xAB},
		{[]byte{0xAA, 0x01, 0xC8, 0x00, 0x00, 0x00, 0xF4, 0x01, 0x00}, 0x96},
		{[]byte{0x01, 0x01}, 0x00},
	}

	for _, tc := range testCases {
		if got := Checksum(tc.data); got != tc.expected {
			t.Errorf("Checksum(% X): got 0x%02X, want 0x%02X", tc.data, got, tc.expected)
		}
	}
}

func TestVerifyFrame(t *testing.T) {
	frame, err := EncodeMove(200, 0, 500, Linear)
	if err != nil {
		t.Fatalf("EncodeMove failed: %v", err)
	}

	if !VerifyFrame(frame) {
		t.Fatal("valid frame failed verification")
	}

	if VerifyFrame(frame[:9]) {
		t.Error("short frame passed verification")
	}
	if VerifyFrame(append(append([]byte{}, frame...), 0x00)) {
		t.Error("long frame passed verification")
	}
}

func TestVerifyFrame_SingleBitSensitivity(t *testing.T) {
	frame, err := EncodeMove(-1234, 567, 890, EaseInOut)
	if err != nil {
		t.Fatalf("EncodeMove failed: %v", err)
	}

	// Flipping any single bit in the first nine bytes must break the frame
	for pos := 0; pos < PosChecksum; pos++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := make([]byte, len(frame))
			copy(corrupted, frame)
			corrupted[pos] ^= 1 << bit

			if VerifyFrame(corrupted) {
				t.Errorf("bit %d of byte %d flipped, frame still verified", bit, pos)
			}
		}
	}
}
