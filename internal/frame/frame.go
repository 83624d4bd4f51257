package frame

import "fmt"

// Frame is an immutable, fully-decoded camera frame: row-major RGBA8
// pixels (R, G, B, A octets), four bytes per pixel. The alpha channel is
// ignored by the rest of the pipeline.
type Frame struct {
	Width           int
	Height          int
	RotationDegrees int
	Pixels          []byte
}

// Validate reports whether the frame has positive dimensions and a pixel
// buffer large enough to back them. RotationDegrees is informational and
// is never validated against {0,90,180,270} here: the core treats it as
// passthrough metadata, not something it acts on.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame: non-positive dimensions %dx%d", f.Width, f.Height)
	}
	if f.Pixels == nil {
		return fmt.Errorf("frame: missing pixel buffer")
	}
	minLen := f.Width * f.Height * 4
	if len(f.Pixels) < minLen {
		return fmt.Errorf("frame: pixel buffer too small: have %d bytes, need at least %d", len(f.Pixels), minLen)
	}
	return nil
}
