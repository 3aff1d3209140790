package gradient

import (
	"sort"

	"github.com/ironsheep/gradient-tools/internal/imaging"
)

// Stop is one anchor of a piecewise-linear color ramp.
type Stop struct {
	// Position is the offset along the scan axis, as a percentage in [0, 100].
	Position float64 `json:"position"`

	// Color is the color at Position.
	Color imaging.RGBAColor `json:"color"`
}

// stopList keeps stops ordered by position as they are discovered. Stops with
// equal positions stay in insertion order.
type stopList []Stop

func (l *stopList) add(c imaging.RGBAColor, position float64) {
	s := *l
	i := sort.Search(len(s), func(i int) bool { return s[i].Position > position })
	s = append(s, Stop{})
	copy(s[i+1:], s[i:])
	s[i] = Stop{Position: position, Color: c}
	*l = s
}

// IsSorted reports whether stops are in ascending position order.
func IsSorted(stops []Stop) bool {
	return sort.SliceIsSorted(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})
}
