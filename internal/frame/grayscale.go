package frame

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/convolution"
)

// toGrayscale converts a BGR image to single-channel 8-bit grayscale
// using the same ITU-R BT.601 luminance weights the teacher detector
// package uses: Y = 0.299R + 0.587G + 0.114B.
func toGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			y8 := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x, y, color.Gray{Y: uint8(y8 + 0.5)})
		}
	}
	return gray
}

// gaussian5x5 is the same normalized 5x5 Gaussian kernel used by the
// teacher's edge-detection package (integer approximation with
// 1-4-7-4-1 edge weights, kernel sum 273), expressed pre-normalized for
// convolution.Convolve.
var gaussian5x5 = []float64{
	1.0 / 273, 4.0 / 273, 7.0 / 273, 4.0 / 273, 1.0 / 273,
	4.0 / 273, 16.0 / 273, 26.0 / 273, 16.0 / 273, 4.0 / 273,
	7.0 / 273, 26.0 / 273, 41.0 / 273, 26.0 / 273, 7.0 / 273,
	4.0 / 273, 16.0 / 273, 26.0 / 273, 16.0 / 273, 4.0 / 273,
	1.0 / 273, 4.0 / 273, 7.0 / 273, 4.0 / 273, 1.0 / 273,
}

// gaussianBlur5x5 applies the kernel above via bild's convolution
// machinery and folds the (equal) R/G/B channels of the result back into
// a single-channel grayscale image.
func gaussianBlur5x5(gray *image.Gray) *image.Gray {
	kernel := convolution.NewKernel(5, 5)
	copy(kernel.Matrix, gaussian5x5)

	blurred := convolution.Convolve(gray, kernel, &convolution.Options{
		Bias:      0,
		Wrap:      false,
		KeepAlpha: false,
	})

	bounds := blurred.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := blurred.At(x, y).RGBA()
			out.SetGray(x, y, color.Gray{Y: uint8(r >> 8)})
		}
	}
	return out
}
