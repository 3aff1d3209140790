package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// Save encodes img to path. The encoder is picked from the extension: ".jpg" and
// ".jpeg" use JPEG at quality 95, ".bmp" uses BMP, anything else is written as PNG.
func Save(path string, img image.Image) error {
	encoder := imgio.PNGEncoder()
	switch formatFromExt(path) {
	case "jpeg":
		encoder = imgio.JPEGEncoder(95)
	case "bmp":
		encoder = imgio.BMPEncoder()
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
