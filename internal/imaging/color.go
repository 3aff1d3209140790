package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit, non-premultiplied components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// String renders the color as RGBA(r,g,b,a).
func (c RGBAColor) String() string {
	return fmt.Sprintf("RGBA(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// Hex returns the color as "#RRGGBB". Alpha is not included.
func (c RGBAColor) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// NRGBA converts the color to the standard library representation.
func (c RGBAColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Channels returns the components in R, G, B, A order.
func (c RGBAColor) Channels() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func (c RGBAColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HSL converts the color to HSL. Alpha is ignored.
func (c RGBAColor) HSL() HSLColor {
	h, s, l := c.colorful().Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// ToRGBA converts any color to 8-bit non-premultiplied components.
func ToRGBA(c color.Color) RGBAColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A}
}

// PixelAt reads the pixel at (x, y) relative to the image's top-left corner.
//
// Coordinates are offset by img.Bounds().Min, so sub-images and rotated views
// are addressed from 0. The caller is responsible for bounds checking.
func PixelAt(img image.Image, x, y int) RGBAColor {
	min := img.Bounds().Min
	return ToRGBA(img.At(min.X+x, min.Y+y))
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left:
//   - Valid X range: 0 to width-1
//   - Valid Y range: 0 to height-1
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := PixelAt(img, x, y)

	return &ColorResult{
		Hex:  c.Hex(),
		RGBA: c,
		HSL:  c.HSL(),
	}, nil
}
