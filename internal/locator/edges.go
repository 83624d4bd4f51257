package locator

import (
	"image"
	"math"
)

// detectEdges computes a binary edge map using the same simple forward
// gradient used elsewhere in the pack: a pixel is an edge if its
// horizontal or vertical intensity difference to its right/below
// neighbor exceeds threshold.
func detectEdges(img image.Image, width, height int, threshold float64) [][]bool {
	bounds := img.Bounds()
	edges := make([][]bool, height)

	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				continue
			}

			c := grayValue(img, x+bounds.Min.X, y+bounds.Min.Y)
			cx := grayValue(img, x+1+bounds.Min.X, y+bounds.Min.Y)
			cy := grayValue(img, x+bounds.Min.X, y+1+bounds.Min.Y)

			dx := math.Abs(float64(c) - float64(cx))
			dy := math.Abs(float64(c) - float64(cy))

			if dx > threshold || dy > threshold {
				edges[y][x] = true
			}
		}
	}

	return edges
}

func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}
