package locator

import (
	"image"
	"math"

	"github.com/colorchecker/verifier-core/internal/geometry"
)

// detectQuads runs one pass of the edge/contour/rectangularity
// detector over img and returns the candidate quads it finds,
// undeduplicated.
func detectQuads(img image.Image, cfg Config) []geometry.Quad {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return nil
	}

	edges := detectEdges(img, width, height, cfg.EdgeGradientThreshold)
	contours := findContours(edges, width, height, cfg.MinContourSize)

	var quads []geometry.Quad
	for _, contour := range contours {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range contour {
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

		rectWidth := maxX - minX
		rectHeight := maxY - minY
		area := rectWidth * rectHeight
		if area < float64(cfg.MinArea) {
			continue
		}

		expectedPerimeter := 2 * (rectWidth + rectHeight)
		if expectedPerimeter == 0 {
			continue
		}

		// A chart is a grid of directly-adjacent, differently-colored
		// cells, so every internal patch boundary is itself an edge,
		// 8-connected into the same component as the chart's outer
		// border. Counting every point in the component against the
		// bounding box's perimeter would count those internal edges
		// too; count only the points that actually lie on the
		// bounding box's own border, ignoring the interior.
		borderCount := borderPointCount(contour, minX, minY, maxX, maxY)
		rectangularity := 1.0 - math.Abs(float64(borderCount)-expectedPerimeter)/expectedPerimeter
		if rectangularity < cfg.RectangularityTolerance {
			continue
		}

		corners := []geometry.Point{
			{X: minX + float64(bounds.Min.X), Y: minY + float64(bounds.Min.Y)},
			{X: maxX + float64(bounds.Min.X), Y: minY + float64(bounds.Min.Y)},
			{X: maxX + float64(bounds.Min.X), Y: maxY + float64(bounds.Min.Y)},
			{X: minX + float64(bounds.Min.X), Y: maxY + float64(bounds.Min.Y)},
		}
		quad, err := geometry.OrderCorners(corners)
		if err != nil {
			continue
		}
		quads = append(quads, quad)
	}

	return quads
}

// borderBandWidth is how close (in pixels) a contour point must be to
// one of the bounding box's four sides to count as part of its outer
// border rather than an interior grid line. detectEdges compares each
// pixel to its right/below neighbor, which can place the detected edge
// up to a pixel inside the true boundary, hence a band rather than an
// exact match.
const borderBandWidth = 2.0

// borderPointCount counts the points of contour that lie within
// borderBandWidth of the bounding box (minX,minY)-(maxX,maxY)'s own
// border, discarding points strictly interior to it.
func borderPointCount(contour []geometry.Point, minX, minY, maxX, maxY float64) int {
	count := 0
	for _, p := range contour {
		if p.X-minX <= borderBandWidth || maxX-p.X <= borderBandWidth ||
			p.Y-minY <= borderBandWidth || maxY-p.Y <= borderBandWidth {
			count++
		}
	}
	return count
}

// dedupQuads pairwise-compares quads by average Euclidean distance
// between corresponding corners, keeping the first of any pair whose
// average distance is strictly less than threshold.
func dedupQuads(quads []geometry.Quad, threshold float64) []geometry.Quad {
	var kept []geometry.Quad
	for _, q := range quads {
		duplicate := false
		for _, k := range kept {
			if averageCornerDistance(q, k) < threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, q)
		}
	}
	return kept
}

func averageCornerDistance(a, b geometry.Quad) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		sum += math.Hypot(a[i].X-b[i].X, a[i].Y-b[i].Y)
	}
	return sum / 4
}
