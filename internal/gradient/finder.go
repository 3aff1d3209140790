package gradient

import (
	"fmt"
	"image"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gradient-tools/internal/imaging"
)

// minWindow is the narrowest span evaluated during subdivision.
const minWindow = 3

// Finder detects gradient stops in images. A Finder holds only its
// configuration, so one value can be reused across images.
type Finder struct {
	cfg Config
	log logrus.FieldLogger
}

// New validates cfg and returns a Finder bound to it.
func New(cfg Config) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Finder{cfg: cfg, log: log}, nil
}

// Config returns the configuration the Finder was built with.
func (f *Finder) Config() Config {
	return f.cfg
}

// FindFile decodes the image at path, detects its stops and releases the
// decoded image before returning.
func FindFile(path string, cfg Config) ([]Stop, error) {
	f, err := New(cfg)
	if err != nil {
		return nil, err
	}

	src, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stops, err := f.Find(src.Image())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stops, nil
}

// Find returns the stops describing img, sorted by position.
//
// The first and last pixels of the scan line are always returned at 0% and
// 100%. Additional stops are added only when the midpoint of the whole line is
// not the average of its ends.
func (f *Finder) Find(img image.Image) ([]Stop, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrDegenerateInput)
	}

	line := scanLine{img: imaging.Normalize(img, f.cfg.Orientation == Horizontal)}
	if w := line.width(); w < 1 {
		return nil, fmt.Errorf("%w: scan line has no pixels (width %d)", ErrDegenerateInput, w)
	}
	height := line.length()
	if height < 2 {
		return nil, fmt.Errorf("%w: scan line is %d pixel(s) long, need at least 2", ErrDegenerateInput, height)
	}

	stops := make(stopList, 0, 4)

	start := line.at(0)
	end := line.at(height - 1)
	mid := line.at(height / 2)

	stops.add(start, 0)
	stops.add(end, 100)

	if f.isGradient(start, end, mid) {
		f.log.WithFields(logrus.Fields{
			"length":    height,
			"tolerance": f.cfg.Tolerance,
		}).Debug("simple two-stop gradient")
		return stops, nil
	}

	f.subdivide(line, height, &stops)
	return stops, nil
}

// subdivide grows a window from the top of the line for as long as it stays
// linear, records a stop where it breaks and restarts from there.
func (f *Finder) subdivide(line scanLine, height int, stops *stopList) {
	currentStart := 0
	currentEnd := currentStart + minWindow

	for currentEnd < height {
		currentMid := currentStart + (currentEnd-currentStart)/2

		start := line.at(currentStart)
		end := line.at(currentEnd)
		mid := line.at(currentMid)

		if f.isGradient(start, end, mid) {
			currentEnd++
			continue
		}

		position := float64(currentEnd) / float64(height) * 100
		f.log.WithFields(logrus.Fields{
			"offset":   currentEnd,
			"position": position,
			"color":    end.String(),
		}).Debug("gradient breakpoint")

		stops.add(end, position)
		currentStart = currentEnd
		currentEnd = currentStart + minWindow
	}
}

// isGradient reports whether mid is, channel by channel, within tolerance of
// the truncated average of start and end.
func (f *Finder) isGradient(start, end, mid imaging.RGBAColor) bool {
	s, e, m := start.Channels(), end.Channels(), mid.Channels()
	tolerance := int(f.cfg.Tolerance)

	for i := range s {
		average := (int(s[i]) + int(e[i])) / 2
		diff := average - int(m[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}

// scanLine reads column 0 of a normalized image.
type scanLine struct {
	img image.Image
}

func (l scanLine) width() int {
	return l.img.Bounds().Dx()
}

func (l scanLine) length() int {
	return l.img.Bounds().Dy()
}

func (l scanLine) at(offset int) imaging.RGBAColor {
	return imaging.PixelAt(l.img, 0, offset)
}

// Line returns every pixel of the scan line Find would read from img.
func Line(img image.Image, o Orientation) []imaging.RGBAColor {
	line := scanLine{img: imaging.Normalize(img, o == Horizontal)}
	if line.width() < 1 {
		return nil
	}
	out := make([]imaging.RGBAColor, line.length())
	for i := range out {
		out[i] = line.at(i)
	}
	return out
}
