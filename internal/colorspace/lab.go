package colorspace

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LabSample is a single CIE L*a*b* color: L in [0,100], a and b roughly
// in [-128,127].
type LabSample struct {
	L float64
	A float64
	B float64
}

// Chroma returns sqrt(a^2+b^2), the perceptual colorfulness of the
// sample.
func (s LabSample) Chroma() float64 {
	return math.Hypot(s.A, s.B)
}

// FromColor converts an 8-bit sRGB color to a floating-point Lab sample
// using go-colorful's D65-referenced conversion. go-colorful's .Lab()
// returns the textbook L*/a*/b* formula divided by 100 (l in [0,1], a,b
// roughly in [-1.28,1.27]); scale by 100 to land in the standard
// L in [0,100], a,b roughly in [-128,127] range LabSample documents.
func FromColor(c color.Color) LabSample {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		// MakeColor only reports !ok for a fully transparent pixel; treat
		// it as black, matching the convention of ignoring alpha.
		cc = colorful.Color{R: 0, G: 0, B: 0}
	}
	l, a, b := cc.Lab()
	return LabSample{L: l * 100, A: a * 100, B: b * 100}
}
