package gradient

import (
	"errors"

	"github.com/ironsheep/gradient-tools/internal/imaging"
)

var (
	// ErrImageUnavailable is returned when the input file cannot be located,
	// opened or decoded. It is the same value as imaging.ErrUnavailable.
	ErrImageUnavailable = imaging.ErrUnavailable

	// ErrInvalidConfiguration is returned for an out-of-range tolerance, an
	// unknown orientation, or an unparsable option.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateInput is returned when the scan line is too short to sample
	// distinct start and end pixels.
	ErrDegenerateInput = errors.New("degenerate input")
)
