// Package integration builds synthetic frames for the end-to-end
// scenarios named in the detect pipeline's testable-properties section,
// and drives them through the pipeline under godog.
package integration

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/colorchecker/verifier-core/internal/refchart"
)

const (
	chartGridCols  = 6
	chartGridRows  = 4
	chartCellWidth = 100
	chartCellHeight = 100
)

// paintChart paints the 24 reference Lab patches onto dst in a 6x4 grid,
// with the grid's top-left corner at (originX, originY) and each cell
// chartCellWidth x chartCellHeight pixels, the same layout patch.Analyzer
// expects after warping to the canonical canvas.
func paintChart(dst *image.RGBA, originX, originY int) {
	for row := 0; row < chartGridRows; row++ {
		for col := 0; col < chartGridCols; col++ {
			idx := row*chartGridCols + col
			sample := refchart.Table[idx]
			c := colorful.Lab(sample.L/100, sample.A/100, sample.B/100)
			r, g, b := c.Clamped().RGB255()

			x0 := originX + col*chartCellWidth
			y0 := originY + row*chartCellHeight
			fillRect(dst, x0, y0, chartCellWidth, chartCellHeight, color.RGBA{r, g, b, 255})
		}
	}
}

// paintGrayscalePanel paints a 6x4 neutral-gray ramp at the given
// origin, descending in luminance row by row, the shape
// ValidateGrayscalePanel expects from a passport's second chart.
func paintGrayscalePanel(dst *image.RGBA, originX, originY int) {
	for row := 0; row < chartGridRows; row++ {
		level := uint8(220 - row*50)
		x0 := originX
		y0 := originY + row*chartCellHeight
		fillRect(dst, x0, y0, chartGridCols*chartCellWidth, chartCellHeight, color.RGBA{level, level, level, 255})
	}
}

func fillRect(dst *image.RGBA, x0, y0, w, h int, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			dst.Set(x, y, c)
		}
	}
}

// newCanvas builds a uniform mid-gray canvas of the given size, the
// backdrop every scenario pads its chart into.
func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, color.RGBA{96, 96, 96, 255})
	return img
}

// rgbaToPixels flattens img into the row-major RGBA8 byte layout Frame
// expects.
func rgbaToPixels(img *image.RGBA) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[i] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(b >> 8)
			pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return pixels
}

// gaussianBlur21 applies a 21x21-equivalent Gaussian blur via bild,
// picking a radius whose kernel footprint matches that size.
func gaussianBlur21(img *image.RGBA) *image.RGBA {
	blurred := blur.Gaussian(img, 10.0)
	out := image.NewRGBA(blurred.Bounds())
	for y := blurred.Bounds().Min.Y; y < blurred.Bounds().Max.Y; y++ {
		for x := blurred.Bounds().Min.X; x < blurred.Bounds().Max.X; x++ {
			out.Set(x, y, blurred.At(x, y))
		}
	}
	return out
}

// remapRange linearly maps every channel of img from [0,255] into
// [lo,hi], producing the washed-out look a low-contrast capture has.
func remapRange(img *image.RGBA, lo, hi float64) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	scale := (hi - lo) / 255.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			nr := uint8(lo + float64(r>>8)*scale)
			ng := uint8(lo + float64(g>>8)*scale)
			nb := uint8(lo + float64(b>>8)*scale)
			out.Set(x, y, color.RGBA{nr, ng, nb, uint8(a >> 8)})
		}
	}
	return out
}

// scaleDown resamples img to exactly w x h using nearest-neighbor
// sampling, good enough to shrink a chart to a tiny-in-frame footprint
// without pulling in a second resize dependency for a single test
// fixture.
func scaleDown(img *image.RGBA, w, h int) *image.RGBA {
	src := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := src.Min.Y + y*src.Dy()/h
		for x := 0; x < w; x++ {
			sx := src.Min.X + x*src.Dx()/w
			out.Set(x, y, img.At(sx, sy))
		}
	}
	return out
}

func drawAt(dst *image.RGBA, src *image.RGBA, x0, y0 int) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x0+x-b.Min.X, y0+y-b.Min.Y, src.At(x, y))
		}
	}
}
