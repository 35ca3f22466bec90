package protocol

import "fmt"

// Curve selects the easing shape the actuator applies across a movement's
// duration. The math runs on the actuator; the host only names the shape.
type Curve byte

const (
	Linear    Curve = 0 // Constant speed throughout the movement
	EaseIn    Curve = 1 // Starts slow, accelerates
	EaseOut   Curve = 2 // Starts fast, decelerates
	EaseInOut Curve = 3 // Smooth acceleration and deceleration
)

// Code returns the wire byte for the curve.
func (c Curve) Code() byte {
	return byte(c)
}

// Valid reports whether the curve is one of the four defined shapes.
func (c Curve) Valid() bool {
	return c <= EaseInOut
}

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	}
	return fmt.Sprintf("curve(0x%02X)", byte(c))
}

// CurveFromCode converts a wire byte back to a Curve. Values outside 0-3
// fail with ErrInvalidCurve.
func CurveFromCode(code byte) (Curve, error) {
	c := Curve(code)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidCurve, code)
	}
	return c, nil
}

// ParseCurve converts a curve name (as accepted on the command line) to a
// Curve.
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCurve, name)
}
