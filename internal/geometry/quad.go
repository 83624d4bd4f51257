package geometry

import "fmt"

// Point is a 2D coordinate in frame (pixel) space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quad is an ordered sequence of four corner points. When produced by
// OrderCorners, the order is TL, TR, BR, BL.
type Quad [4]Point

// BoundingBox is the axis-aligned extent of a Quad, in pixels.
type BoundingBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OrderCorners sorts four arbitrary corner points into TL, TR, BR, BL order.
//
// TL minimizes x+y, BR maximizes x+y. Among the remaining two points, TR
// maximizes x-y and BL minimizes x-y. Ties are broken by insertion order:
// a later point only displaces an earlier one on a strict improvement.
func OrderCorners(points []Point) (Quad, error) {
	if len(points) != 4 {
		return Quad{}, fmt.Errorf("geometry: OrderCorners requires exactly 4 points, got %d", len(points))
	}

	tlIdx, brIdx := 0, 0
	minSum, maxSum := points[0].X+points[0].Y, points[0].X+points[0].Y
	for i := 1; i < 4; i++ {
		s := points[i].X + points[i].Y
		if s < minSum {
			minSum = s
			tlIdx = i
		}
		if s > maxSum {
			maxSum = s
			brIdx = i
		}
	}

	var remaining []int
	for i := 0; i < 4; i++ {
		if i != tlIdx && i != brIdx {
			remaining = append(remaining, i)
		}
	}
	// remaining always holds at least two indices here; it holds three
	// when TL and BR resolve to the same index (e.g. all four points
	// coincide). This loop therefore never runs; it only guards that.
	for len(remaining) < 2 {
		for i := 0; i < 4; i++ {
			found := i == tlIdx || i == brIdx
			for _, r := range remaining {
				if r == i {
					found = true
				}
			}
			if !found {
				remaining = append(remaining, i)
			}
		}
	}

	trIdx, blIdx := remaining[0], remaining[0]
	maxDiff := points[remaining[0]].X - points[remaining[0]].Y
	minDiff := maxDiff
	for _, i := range remaining[1:] {
		d := points[i].X - points[i].Y
		if d > maxDiff {
			maxDiff = d
			trIdx = i
		}
		if d < minDiff {
			minDiff = d
			blIdx = i
		}
	}

	return Quad{points[tlIdx], points[trIdx], points[brIdx], points[blIdx]}, nil
}

// BoundsOf returns the axis-aligned BoundingBox of a Quad's corners,
// clamped to nonnegative extents.
func BoundsOf(q Quad) BoundingBox {
	minX, maxX := q[0].X, q[0].X
	minY, maxY := q[0].Y, q[0].Y
	for _, p := range q[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	w := maxX - minX
	h := maxY - minY
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return BoundingBox{Width: w, Height: h}
}

// Translate returns q with every corner shifted by (dx, dy).
func (q Quad) Translate(dx, dy float64) Quad {
	out := q
	for i := range out {
		out[i].X += dx
		out[i].Y += dy
	}
	return out
}

// Slice returns the quad's corners as a plain slice, for callers that
// don't need the fixed-size array (e.g. JSON encoding of an empty quad).
func (q Quad) Slice() []Point {
	return []Point{q[0], q[1], q[2], q[3]}
}
