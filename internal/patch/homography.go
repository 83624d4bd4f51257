package patch

import (
	"math"

	"github.com/colorchecker/verifier-core/internal/geometry"
)

// homography is a 3x3 projective transform stored row-major with
// h[8] normalized to 1.
type homography [9]float64

// computeHomography solves for the 3x3 matrix H mapping p[i] -> q[i]
// for four point correspondences, via an 8x8 linear system for the 8
// free parameters (h22 is fixed at 1).
func computeHomography(p, q [4]geometry.Point) (homography, bool) {
	var a [8][8]float64
	var b [8]float64

	for i := 0; i < 4; i++ {
		X, Y := p[i].X, p[i].Y
		x, y := q[i].X, q[i].Y
		r := 2 * i

		a[r][0] = X
		a[r][1] = Y
		a[r][2] = 1
		a[r][6] = -X * x
		a[r][7] = -Y * x
		b[r] = x

		a[r+1][3] = X
		a[r+1][4] = Y
		a[r+1][5] = 1
		a[r+1][6] = -X * y
		a[r+1][7] = -Y * y
		b[r+1] = y
	}

	h, ok := solve8x8(a, b)
	if !ok {
		return homography{}, false
	}
	return homography{h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], 1}, true
}

func solve8x8(a [8][8]float64, b [8]float64) ([8]float64, bool) {
	matrix := a
	vector := b

	for i := 0; i < 8; i++ {
		if !pivotAndNormalize(&matrix, &vector, i) {
			return [8]float64{}, false
		}
		eliminateColumn(&matrix, &vector, i)
	}

	var x [8]float64
	for i := 0; i < 8; i++ {
		x[i] = vector[i]
	}
	return x, true
}

func pivotAndNormalize(matrix *[8][8]float64, vector *[8]float64, col int) bool {
	pivotRow := findPivotRow(*matrix, col)
	if pivotRow == -1 {
		return false
	}
	if pivotRow != col {
		matrix[col], matrix[pivotRow] = matrix[pivotRow], matrix[col]
		vector[col], vector[pivotRow] = vector[pivotRow], vector[col]
	}
	div := matrix[col][col]
	for c := col; c < 8; c++ {
		matrix[col][c] /= div
	}
	vector[col] /= div
	return true
}

func findPivotRow(matrix [8][8]float64, col int) int {
	maxAbs := math.Abs(matrix[col][col])
	pivotRow := col
	for r := col + 1; r < 8; r++ {
		if math.Abs(matrix[r][col]) > maxAbs {
			maxAbs = math.Abs(matrix[r][col])
			pivotRow = r
		}
	}
	if maxAbs == 0 {
		return -1
	}
	return pivotRow
}

func eliminateColumn(matrix *[8][8]float64, vector *[8]float64, col int) {
	for r := 0; r < 8; r++ {
		if r == col {
			continue
		}
		factor := matrix[r][col]
		if factor == 0 {
			continue
		}
		for c := col; c < 8; c++ {
			matrix[r][c] -= factor * matrix[col][c]
		}
		vector[r] -= factor * vector[col]
	}
}

// apply maps (x,y) through h.
func (h homography) apply(x, y float64) (float64, float64) {
	denom := h[6]*x + h[7]*y + h[8]
	if denom == 0 {
		return -1e9, -1e9
	}
	return (h[0]*x + h[1]*y + h[2]) / denom, (h[3]*x + h[4]*y + h[5]) / denom
}
