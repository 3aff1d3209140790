package gradient

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/gradient-tools/internal/imaging"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		stop Stop
		want string
	}{
		{Stop{Position: 0, Color: red}, " 00.00% - RGBA(255,0,0,255)"},
		{Stop{Position: 5.5, Color: green}, " 05.50% - RGBA(0,255,0,255)"},
		{Stop{Position: 100.0 / 3, Color: blue}, " 33.33% - RGBA(0,0,255,255)"},
		{Stop{Position: 100, Color: imaging.RGBAColor{R: 1, G: 2, B: 3, A: 0}}, "100.00% - RGBA(1,2,3,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatLine(tt.stop); got != tt.want {
				t.Errorf("FormatLine: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	stops := []Stop{
		{Position: 0, Color: red},
		{Position: 100, Color: blue},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, stops); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	want := " 00.00% - RGBA(255,0,0,255)\n100.00% - RGBA(0,0,255,255)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCSS(t *testing.T) {
	stops := []Stop{
		{Position: 0, Color: red},
		{Position: 50, Color: imaging.RGBAColor{R: 0, G: 255, B: 0, A: 128}},
		{Position: 100, Color: imaging.RGBAColor{B: 255}},
	}

	want := "linear-gradient(to right, rgba(255, 0, 0, 1) 0.00%, rgba(0, 255, 0, 0.502) 50.00%, rgba(0, 0, 255, 0) 100.00%)"
	if got := CSS(stops, Horizontal); got != want {
		t.Errorf("CSS:\n got %s\nwant %s", got, want)
	}

	if got := CSS(stops[:1], Vertical); got != "linear-gradient(to bottom, rgba(255, 0, 0, 1) 0.00%)" {
		t.Errorf("CSS vertical: got %s", got)
	}
}

func TestWriteJSON(t *testing.T) {
	stops := []Stop{
		{Position: 0, Color: imaging.RGBAColor{R: 255, G: 128, B: 64, A: 255}},
		{Position: 100, Color: blue},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, stops); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got []JSONStop
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := []JSONStop{
		{Position: 0, R: 255, G: 128, B: 64, A: 255, Hex: "#FF8040"},
		{Position: 100, R: 0, G: 0, B: 255, A: 255, Hex: "#0000FF"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTolerance(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{"0", 0, false},
		{"5", 5, false},
		{"255", 255, false},
		{" 10 ", 10, false},
		{"256", 0, true},
		{"300", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTolerance(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTolerance failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"", Vertical, false},
		{"vertical", Vertical, false},
		{"Horizontal", Horizontal, false},
		{"diagonal", Vertical, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrientation(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientation_String(t *testing.T) {
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Errorf("unexpected names: %s, %s", Vertical, Horizontal)
	}
	if got := Orientation(9).String(); got != "Orientation(9)" {
		t.Errorf("unknown orientation: got %s", got)
	}
}
