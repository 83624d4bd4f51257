package frame

import "testing"

func solidFrame(w, h int, r, g, b byte) Frame {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 255
	}
	return Frame{Width: w, Height: h, Pixels: pix}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	f := Frame{Width: 0, Height: 10, Pixels: make([]byte, 40)}
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestValidateRejectsShortBuffer(t *testing.T) {
	f := Frame{Width: 10, Height: 10, Pixels: make([]byte, 10)}
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for undersized pixel buffer")
	}
}

func TestValidateAllowsTrailingBytes(t *testing.T) {
	f := solidFrame(4, 4, 10, 20, 30)
	f.Pixels = append(f.Pixels, 1, 2, 3)
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewBuffersConvertsChannelOrder(t *testing.T) {
	f := solidFrame(4, 4, 10, 20, 30)
	buf, err := NewBuffers(f)
	if err != nil {
		t.Fatalf("NewBuffers: %v", err)
	}
	defer buf.Release()

	i := 0
	if buf.BGR.Pix[i] != 30 || buf.BGR.Pix[i+1] != 20 || buf.BGR.Pix[i+2] != 10 {
		t.Fatalf("BGR bytes = %v, want B=30 G=20 R=10", buf.BGR.Pix[:3])
	}
}

func TestBuffersReleaseBalancesOutstanding(t *testing.T) {
	before := Outstanding()

	f := solidFrame(8, 8, 1, 2, 3)
	buf, err := NewBuffers(f)
	if err != nil {
		t.Fatalf("NewBuffers: %v", err)
	}
	if got := Outstanding(); got != before+1 {
		t.Fatalf("Outstanding() = %d, want %d", got, before+1)
	}

	buf.Release()
	if got := Outstanding(); got != before {
		t.Fatalf("Outstanding() after release = %d, want %d", got, before)
	}

	// Double release must not double-decrement.
	buf.Release()
	if got := Outstanding(); got != before {
		t.Fatalf("Outstanding() after double release = %d, want %d", got, before)
	}
}

func TestGaussianBlurSmoothsSolidImageToItself(t *testing.T) {
	f := solidFrame(20, 20, 50, 50, 50)
	buf, err := NewBuffers(f)
	if err != nil {
		t.Fatalf("NewBuffers: %v", err)
	}
	defer buf.Release()

	for y := 2; y < 18; y++ {
		for x := 2; x < 18; x++ {
			g := buf.Gray.GrayAt(x, y).Y
			if g < 49 || g > 51 {
				t.Fatalf("blurred gray at (%d,%d) = %d, want ~50", x, y, g)
			}
		}
	}
}
