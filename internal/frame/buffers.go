package frame

import (
	"image"
	"image/color"
	"sync/atomic"
)

// outstanding counts buffer sets that have been acquired via NewBuffers
// but not yet released. Tests use Outstanding() to assert that every
// Detect call releases exactly what it acquired (spec invariant 5).
var outstanding int64

// Outstanding returns the number of Buffers currently unreleased across
// the process. It exists for leak assertions in tests, not production
// logic.
func Outstanding() int64 {
	return atomic.LoadInt64(&outstanding)
}

// BGRImage is a read-only view over a BGR-ordered pixel buffer. It
// implements image.Image so the rest of the pipeline (and any bild or
// x/image helper) can treat it like any other decoded image, while the
// byte layout still matches the BGR convention the detector contract in
// spec section 4.2 assumes.
type BGRImage struct {
	Pix []byte // len == W*H*3, per-pixel order B, G, R
	W   int
	H   int
}

func (b *BGRImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *BGRImage) Bounds() image.Rectangle { return image.Rect(0, 0, b.W, b.H) }

func (b *BGRImage) At(x, y int) color.Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return color.NRGBA{}
	}
	i := (y*b.W + x) * 3
	return color.NRGBA{R: b.Pix[i+2], G: b.Pix[i+1], B: b.Pix[i], A: 255}
}

// Buffers holds every native-sized image derived from one Frame for the
// duration of a single Detect call: the BGR conversion and the blurred
// grayscale used for focus/contrast metrics. Callers must call Release
// exactly once, on every exit path (typically via defer).
type Buffers struct {
	BGR  *BGRImage
	Gray *image.Gray

	released bool
}

// NewBuffers validates frame and derives its BGR and blurred-grayscale
// views. The alpha channel is dropped; RotationDegrees is not consulted.
func NewBuffers(f Frame) (*Buffers, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	bgr := &BGRImage{Pix: make([]byte, f.Width*f.Height*3), W: f.Width, H: f.Height}
	for i := 0; i < f.Width*f.Height; i++ {
		r := f.Pixels[i*4]
		g := f.Pixels[i*4+1]
		b := f.Pixels[i*4+2]
		bgr.Pix[i*3] = b
		bgr.Pix[i*3+1] = g
		bgr.Pix[i*3+2] = r
	}

	gray := toGrayscale(bgr)
	gray = gaussianBlur5x5(gray)

	atomic.AddInt64(&outstanding, 1)
	return &Buffers{BGR: bgr, Gray: gray}, nil
}

// Release frees the buffers. Safe to call more than once; only the first
// call decrements the outstanding count.
func (b *Buffers) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.BGR = nil
	b.Gray = nil
	atomic.AddInt64(&outstanding, -1)
}
