package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Normalize returns a view of img whose gradient axis is vertical.
//
// Horizontal images are rotated 90 degrees clockwise, so column 0 of the result is
// the bottom row of the source read left to right. Vertical images are returned
// unchanged.
func Normalize(img image.Image, horizontal bool) image.Image {
	if !horizontal {
		return img
	}
	return imaging.Rotate270(img)
}

// Denormalize undoes Normalize, turning a vertical rendering back into the
// caller's orientation.
func Denormalize(img image.Image, horizontal bool) image.Image {
	if !horizontal {
		return img
	}
	return imaging.Rotate90(img)
}
