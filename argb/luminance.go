package argb

import "math"

// WCAG 2.x coefficients. The 0.03928 threshold is the one published in the
// recommendation; changing it breaks conformance with other checkers.
const (
	linearThreshold = 0.03928
	weightRed       = 0.2126
	weightGreen     = 0.7152
	weightBlue      = 0.0722
)

// linearize applies the sRGB transfer function to a normalized channel.
func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= linearThreshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c ARGB) float64 {
	r, g, b := c.Channels()
	return weightRed*linearize(r) + weightGreen*linearize(g) + weightBlue*linearize(b)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1 (identical
// luminance) to 21 (black on white). The result does not depend on argument order.
func ContrastRatio(a, b ARGB) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}
