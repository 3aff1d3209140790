package gradient

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatLine renders one stop as " 50.00% - RGBA(r,g,b,a)". The percentage has
// two decimals, at least two integer digits, and is right-aligned to 7 columns.
func FormatLine(s Stop) string {
	return fmt.Sprintf("%7s - %s", fmt.Sprintf("%05.2f%%", s.Position), s.Color)
}

// WriteText writes one FormatLine per stop.
func WriteText(w io.Writer, stops []Stop) error {
	for _, s := range stops {
		if _, err := fmt.Fprintln(w, FormatLine(s)); err != nil {
			return err
		}
	}
	return nil
}

// CSS renders stops as a CSS linear-gradient() value.
func CSS(stops []Stop, o Orientation) string {
	direction := "to bottom"
	if o == Horizontal {
		direction = "to right"
	}

	parts := make([]string, 0, len(stops)+1)
	parts = append(parts, direction)
	for _, s := range stops {
		c := s.Color
		alpha := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", float64(c.A)/255), "0"), ".")
		parts = append(parts, fmt.Sprintf("rgba(%d, %d, %d, %s) %.2f%%", c.R, c.G, c.B, alpha, s.Position))
	}
	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}

// JSONStop is the flattened form of a Stop used in JSON output.
type JSONStop struct {
	Position float64 `json:"position"`
	R        uint8   `json:"r"`
	G        uint8   `json:"g"`
	B        uint8   `json:"b"`
	A        uint8   `json:"a"`
	Hex      string  `json:"hex"`
}

// ToJSON flattens stops for encoding.
func ToJSON(stops []Stop) []JSONStop {
	out := make([]JSONStop, len(stops))
	for i, s := range stops {
		out[i] = JSONStop{
			Position: s.Position,
			R:        s.Color.R,
			G:        s.Color.G,
			B:        s.Color.B,
			A:        s.Color.A,
			Hex:      s.Color.Hex(),
		}
	}
	return out
}

// WriteJSON writes stops as an indented JSON array.
func WriteJSON(w io.Writer, stops []Stop) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(stops))
}
