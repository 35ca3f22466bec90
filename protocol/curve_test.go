package protocol

import (
	"errors"
	"testing"
)

func TestCurveFromCode(t *testing.T) {
	for code := byte(0); code <= 3; code++ {
		c, err := CurveFromCode(code)
		if err != nil {
			t.Errorf("CurveFromCode(%d) failed: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("code round trip: got %d, want %d", c.Code(), code)
		}
	}

	for _, code := range []byte{4, 0x10, 0xFF} {
		if _, err := CurveFromCode(code); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("CurveFromCode(0x%02X): got %v, want ErrInvalidCurve", code, err)
		}
	}
}

func TestCurveString(t *testing.T) {
	testCases := []struct {
		curve Curve
		name  string
	}{
		{Linear, "linear"},
		{EaseIn, "ease-in"},
		{EaseOut, "ease-out"},
		{EaseInOut, "ease-in-out"},
		{Curve(7), "curve(0x07)"},
	}

	for _, tc := range testCases {
		if got := tc.curve.String(); got != tc.name {
			t.Errorf("Curve(%d).String(): got %q, want %q", byte(tc.curve), got, tc.name)
		}
	}
}

func TestParseCurve(t *testing.T) {
	for _, want := range []Curve{Linear, EaseIn, EaseOut, EaseInOut} {
		got, err := ParseCurve(want.String())
		if err != nil {
			t.Errorf("ParseCurve(%q) failed: %v", want.String(), err)
		}
		if got != want {
			t.Errorf("ParseCurve(%q): got %v, want %v", want.String(), got, want)
		}
	}

	if _, err := ParseCurve("bounce"); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("ParseCurve(\"bounce\"): got %v, want ErrInvalidCurve", err)
	}
}
