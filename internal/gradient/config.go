package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultTolerance is the per-channel deviation accepted when no tolerance is given.
const DefaultTolerance uint8 = 5

// Orientation is the axis along which the gradient varies.
type Orientation int

const (
	// Vertical gradients vary from top to bottom.
	Vertical Orientation = iota
	// Horizontal gradients vary from left to right.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation accepts "vertical" or "horizontal" in any case. An empty
// string means Vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("%w: unknown orientation %q", ErrInvalidConfiguration, s)
}

// ParseTolerance parses a decimal tolerance in the range 0-255.
func ParseTolerance(s string) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: tolerance %q is not a number", ErrInvalidConfiguration, s)
	}
	return ToleranceFromInt(v)
}

// ToleranceFromInt range-checks an integer tolerance.
func ToleranceFromInt(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: tolerance must be between 0 and 255, got %d", ErrInvalidConfiguration, v)
	}
	return uint8(v), nil
}

// Config is the immutable configuration of a Finder.
type Config struct {
	// Orientation selects the scan axis.
	Orientation Orientation

	// Tolerance is the largest accepted per-channel difference between a span's
	// midpoint and the average of its ends.
	Tolerance uint8

	// Logger receives debug traces of the scan. Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a vertical configuration with DefaultTolerance.
func DefaultConfig() Config {
	return Config{
		Orientation: Vertical,
		Tolerance:   DefaultTolerance,
	}
}

// Validate reports an unknown orientation.
func (c Config) Validate() error {
	if c.Orientation != Vertical && c.Orientation != Horizontal {
		return fmt.Errorf("%w: unknown orientation %d", ErrInvalidConfiguration, int(c.Orientation))
	}
	return nil
}
