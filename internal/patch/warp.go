package patch

import (
	"image"
	"image/color"

	"github.com/colorchecker/verifier-core/internal/geometry"
)

// CanvasWidth and CanvasHeight are the compiled-in defaults for the
// canonical warp target; a configuration's WarpCanvasWidth/Height
// overrides them at runtime.
const (
	CanvasWidth  = 600
	CanvasHeight = 400
)

// warpToCanvas orders quad's corners, builds the homography mapping a
// width x height canvas onto the quad in src, and fills each canvas
// pixel by mapping it through that homography into src (canvas pixel
// -> source pixel) and sampling there with bilinear interpolation. Pixels that fall outside src sample as
// black, matching the out-of-bounds convention used for document
// rectification in the teacher pack.
func warpToCanvas(src image.Image, quad geometry.Quad, width, height int) (*image.RGBA, error) {
	canvasCorners := [4]geometry.Point{
		{X: 0, Y: 0},
		{X: float64(width), Y: 0},
		{X: float64(width), Y: float64(height)},
		{X: 0, Y: float64(height)},
	}
	quadCorners := [4]geometry.Point{quad[0], quad[1], quad[2], quad[3]}

	h, ok := computeHomography(canvasCorners, quadCorners)
	if !ok {
		return nil, errDegenerateQuad
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := h.apply(float64(x), float64(y))
			out.Set(x, y, bilinearSample(src, sx, sy))
		}
	}
	return out, nil
}

func bilinearSample(src image.Image, x, y float64) color.Color {
	b := src.Bounds()
	if x < float64(b.Min.X) || y < float64(b.Min.Y) || x > float64(b.Max.X-1) || y > float64(b.Max.Y-1) {
		return color.RGBA{A: 255}
	}

	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= b.Max.X {
		x1 = b.Max.X - 1
	}
	if y1 >= b.Max.Y {
		y1 = b.Max.Y - 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := toRGBAf(src.At(x0, y0))
	c10 := toRGBAf(src.At(x1, y0))
	c01 := toRGBAf(src.At(x0, y1))
	c11 := toRGBAf(src.At(x1, y1))

	r := lerp(lerp(c00.r, c10.r, fx), lerp(c01.r, c11.r, fx), fy)
	g := lerp(lerp(c00.g, c10.g, fx), lerp(c01.g, c11.g, fx), fy)
	bl := lerp(lerp(c00.b, c10.b, fx), lerp(c01.b, c11.b, fx), fy)
	a := lerp(lerp(c00.a, c10.a, fx), lerp(c01.a, c11.a, fx), fy)

	return color.RGBA{R: uint8(r + 0.5), G: uint8(g + 0.5), B: uint8(bl + 0.5), A: uint8(a + 0.5)}
}

type rgbaf struct{ r, g, b, a float64 }

func toRGBAf(c color.Color) rgbaf {
	r, g, b, a := c.RGBA()
	return rgbaf{r: float64(r >> 8), g: float64(g >> 8), b: float64(b >> 8), a: float64(a >> 8)}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
