package quality

import (
	"image"
	"math"
)

// Analyzer computes scalar focus and contrast metrics from a grayscale
// image. Implementations must be pure and deterministic; the production
// implementation (Default) and test fakes both satisfy this interface so
// the orchestrator can be exercised without real convolution.
type Analyzer interface {
	Contrast(gray *image.Gray) float64
	LaplacianVariance(gray *image.Gray) float64
}

// Default is the production Analyzer.
type Default struct{}

// Contrast returns clamp(sigma/64, 0, 1), where sigma is the standard
// deviation of pixel intensities over the whole image.
func (Default) Contrast(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum += float64(gray.GrayAt(x, y).Y)
		}
	}
	mean := sum / float64(n)

	var sqDiff float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := float64(gray.GrayAt(x, y).Y) - mean
			sqDiff += d * d
		}
	}
	sigma := math.Sqrt(sqDiff / float64(n))

	return clamp01(sigma / 64.0)
}

// laplacianOffsets are the standard 4-neighbor discrete Laplacian's
// neighbor positions. The kernel (each neighbor +1, center -4) sums to
// 0, so its raw response is centered on 0 and swings well past the
// ±127 an 8-bit round trip could hold near a strong edge; the response
// is computed directly at float64 precision rather than through
// bild's 8-bit-clamped Convolve for this reason.
var laplacianOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// LaplacianVariance convolves gray with the discrete Laplacian at
// float64 precision, producing a per-pixel focus response, then
// returns the variance (sigma-squared) of that response. A sharp
// chart edge produces a high-variance response; a blurred one does
// not. Border pixels replicate the nearest interior value rather than
// wrapping.
func (Default) LaplacianVariance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return 0
	}

	at := func(x, y int) float64 {
		if x < bounds.Min.X {
			x = bounds.Min.X
		} else if x >= bounds.Max.X {
			x = bounds.Max.X - 1
		}
		if y < bounds.Min.Y {
			y = bounds.Min.Y
		} else if y >= bounds.Max.Y {
			y = bounds.Max.Y - 1
		}
		return float64(gray.GrayAt(x, y).Y)
	}

	values := make([]float64, 0, n)
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			center := at(x, y)
			var response float64
			for _, off := range laplacianOffsets {
				response += at(x+off[0], y+off[1])
			}
			response -= 4 * center
			values = append(values, response)
			sum += response
		}
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return variance
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
