package locator

import "github.com/colorchecker/verifier-core/internal/geometry"

// findContours groups connected edge pixels into contours via
// iterative (stack-based) 8-connected flood fill, discarding contours
// smaller than minSize as noise.
func findContours(edges [][]bool, width, height, minSize int) [][]geometry.Point {
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	var contours [][]geometry.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges[y][x] && !visited[y][x] {
				contour := floodFill(edges, visited, x, y, width, height)
				if len(contour) >= minSize {
					contours = append(contours, contour)
				}
			}
		}
	}
	return contours
}

func floodFill(edges, visited [][]bool, startX, startY, width, height int) []geometry.Point {
	type cell struct{ x, y int }
	stack := []cell{{startX, startY}}
	var contour []geometry.Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		if visited[p.y][p.x] || !edges[p.y][p.x] {
			continue
		}

		visited[p.y][p.x] = true
		contour = append(contour, geometry.Point{X: float64(p.x), Y: float64(p.y)})

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, cell{p.x + dx, p.y + dy})
			}
		}
	}

	return contour
}
