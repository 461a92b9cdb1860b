package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("matrix is not invertible (determinant is 0)")

// Matrix is a row-major 4x4 affine transform
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m × other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m × t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// minor3 is the determinant of the 3x3 submatrix left after removing row and col
func (m Matrix) minor3(row, col int) float64 {
	var sub [3][3]float64
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[r][c] = m[i][j]
			c++
		}
		r++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.minor3(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the determinant is non-zero
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrSingularMatrix for a degenerate transform
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed on assignment
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// ApproxEqual compares two matrices element-wise within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "| %g %g %g %g |", m[row][0], m[row][1], m[row][2], m[row][3])
		if row < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
