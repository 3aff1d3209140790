// Package imaging is the image source behind the gradient finder and the MCP server.
//
// It decodes raster files, exposes per-pixel 8-bit RGBA reads, and normalizes the
// scan orientation so that every gradient is processed along the vertical axis.
// All operations work with standard Go image.Image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Color Representation
//
// Pixels are read as non-premultiplied 8-bit channels. A half-transparent red pixel
// reads as RGBA(255,0,0,128), not RGBA(128,0,0,128). Colors can be rendered as:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Lifetime
//
// Source is the scoped handle used by one-shot callers: Open decodes the file and
// Close drops the raster. ImageCache keeps decoded images alive across calls for
// the long-running server and is safe for concurrent use.
//
// # Error Handling
//
// Any failure to locate, open or decode a file is reported as an error wrapping
// ErrUnavailable, so callers can test for it with errors.Is.
package imaging
