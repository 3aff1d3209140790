package gradient

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"

	imgsrc "github.com/ironsheep/gradient-tools/internal/imaging"
)

// ColorAt interpolates stops at position (0-100). Channels are blended
// linearly and rounded. Positions outside the stop range clamp to the nearest
// end. stops must be sorted and non-empty.
func ColorAt(stops []Stop, position float64) imgsrc.RGBAColor {
	if position <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if position >= last.Position {
		return last.Color
	}

	// First stop strictly after position; i >= 1 because of the checks above.
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Position > position })
	lo, hi := stops[i-1], stops[i]

	span := hi.Position - lo.Position
	if span <= 0 {
		return hi.Color
	}
	t := (position - lo.Position) / span

	a, b := lo.Color.Channels(), hi.Color.Channels()
	var out [4]uint8
	for c := range out {
		v := float64(a[c]) + (float64(b[c])-float64(a[c]))*t
		out[c] = uint8(math.Round(v))
	}
	return imgsrc.RGBAColor{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// linePosition maps a scan offset to a percentage so that the first pixel is
// 0% and the last is 100%.
func linePosition(offset, length int) float64 {
	if length < 2 {
		return 0
	}
	return float64(offset) / float64(length-1) * 100
}

// Render draws stops into a width x height image varying along o.
func Render(stops []Stop, width, height int, o Orientation) (image.Image, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no stops to render", ErrDegenerateInput)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: cannot render %dx%d image", ErrDegenerateInput, width, height)
	}

	// Draw vertically, one solid row per scan offset, then rotate back.
	w, h := width, height
	if o == Horizontal {
		w, h = height, width
	}

	dst := imaging.New(w, h, image.Transparent)
	for y := 0; y < h; y++ {
		c := ColorAt(stops, linePosition(y, h)).NRGBA()
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	return imgsrc.Denormalize(dst, o == Horizontal), nil
}

// Fidelity describes how closely a set of stops reproduces a scan line.
type Fidelity struct {
	// MaxDeviation is the largest per-channel difference seen on any pixel.
	MaxDeviation int `json:"max_deviation"`

	// MeanDeviation is the per-channel difference averaged over every channel
	// of every pixel.
	MeanDeviation float64 `json:"mean_deviation"`

	// WorstOffset is the scan offset where MaxDeviation occurs.
	WorstOffset int `json:"worst_offset"`

	// WorstPosition is WorstOffset as a percentage of the scan line.
	WorstPosition float64 `json:"worst_position"`

	// Tolerance is the tolerance the comparison was judged against.
	Tolerance uint8 `json:"tolerance"`

	// WithinTolerance is true when MaxDeviation <= Tolerance.
	WithinTolerance bool `json:"within_tolerance"`
}

// Verify re-renders stops along the scan line of img and compares them with
// the source pixels.
func (f *Finder) Verify(img image.Image, stops []Stop) (*Fidelity, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no stops to verify", ErrDegenerateInput)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrDegenerateInput)
	}

	line := Line(img, f.cfg.Orientation)
	if len(line) < 2 {
		return nil, fmt.Errorf("%w: scan line is %d pixel(s) long, need at least 2", ErrDegenerateInput, len(line))
	}

	result := &Fidelity{Tolerance: f.cfg.Tolerance}
	total := 0
	for i, src := range line {
		want := ColorAt(stops, linePosition(i, len(line))).Channels()
		got := src.Channels()
		for c := range got {
			d := int(got[c]) - int(want[c])
			if d < 0 {
				d = -d
			}
			total += d
			if d > result.MaxDeviation {
				result.MaxDeviation = d
				result.WorstOffset = i
			}
		}
	}

	result.MeanDeviation = float64(total) / float64(len(line)*4)
	result.WorstPosition = linePosition(result.WorstOffset, len(line))
	result.WithinTolerance = result.MaxDeviation <= int(f.cfg.Tolerance)
	return result, nil
}
