// Package gradient recovers a compact list of color stops from a rendered gradient.
//
// The finder samples a single line of pixels along the gradient axis and decides,
// span by span, whether the line is a linear interpolation between the span's
// endpoints. Wherever it is not, a stop is recorded. Re-rendering the stops with
// straight per-channel interpolation approximates the source within the configured
// tolerance.
//
// # Algorithm
//
//  1. Horizontal images are rotated 90 degrees clockwise so the scan always runs
//     down column 0.
//  2. The first and last pixels are always recorded as the 0% and 100% stops.
//  3. If the middle pixel matches the average of the two ends, the image is a
//     simple two-stop gradient and the scan stops there.
//  4. Otherwise a window starting three pixels wide is grown one pixel at a time
//     for as long as its midpoint matches the average of its ends. When the test
//     fails, the window end becomes a stop and a new window starts from it.
//
// The gradient test compares R, G, B and A independently. Averages use integer
// division and a channel passes when |avg - mid| <= tolerance.
//
// # Usage
//
//	stops, err := gradient.FindFile("sky.png", gradient.Config{
//	    Orientation: gradient.Vertical,
//	    Tolerance:   gradient.DefaultTolerance,
//	})
//	if err != nil {
//	    return err
//	}
//	gradient.WriteText(os.Stdout, stops)
//
// Only the first column of the normalized image is sampled, which for a horizontal
// source is its bottom row. The orthogonal axis is assumed uniform.
package gradient
