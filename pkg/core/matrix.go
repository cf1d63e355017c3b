package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is the panic value cause when two matrices cannot be
// multiplied.
var ErrDimensionMismatch = errors.New("matrix dimension mismatch")

// Matrix is a fixed-size rows×cols grid of float64. Its dimensions are set at
// construction and never change.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix creates a zero matrix with the given dimensions
func NewMatrix(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	return Matrix{dense: mat.NewDense(rows, cols, nil)}
}

// NewMatrixFromRows creates a matrix from row slices of equal length
func NewMatrixFromRows(rows [][]float64) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("matrix must have at least one row and one column")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("row %d has %d columns, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return Matrix{dense: mat.NewDense(len(rows), cols, data)}
}

// Dims returns the number of rows and columns
func (m Matrix) Dims() (rows, cols int) {
	return m.dense.Dims()
}

// At returns the element at row i, column j
func (m Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Set sets the element at row i, column j
func (m Matrix) Set(i, j int, v float64) {
	m.dense.Set(i, j, v)
}

// Multiply returns m·other. The inner dimensions must agree; a mismatch is a
// programming error and panics.
func (m Matrix) Multiply(other Matrix) Matrix {
	r, inner := m.Dims()
	otherRows, c := other.Dims()
	if inner != otherRows {
		panic(fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, r, inner, otherRows, c))
	}
	result := mat.NewDense(r, c, nil)
	result.Mul(m.dense, other.dense)
	return Matrix{dense: result}
}

// Equal reports whether two matrices have the same dimensions and all
// elements within tolerance
func (m Matrix) Equal(other Matrix, tolerance float64) bool {
	return mat.EqualApprox(m.dense, other.dense, tolerance)
}

// Mat4 converts a 4×4 matrix into its fixed-size transform form
func (m Matrix) Mat4() (Mat4, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return Mat4{}, fmt.Errorf("%w: %dx%d is not 4x4", ErrDimensionMismatch, r, c)
	}
	rows := [4][4]float64{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return mat4FromRows(rows), nil
}

// TransformPoints maps every point through m with a single 4×N multiply:
// the points are the columns of a homogeneous coordinate matrix.
func TransformPoints(m Mat4, points []Point) []Point {
	result := make([]Point, len(points))
	if len(points) == 0 {
		return result
	}

	columns := NewMatrix(4, len(points))
	for j, p := range points {
		columns.Set(0, j, p.X)
		columns.Set(1, j, p.Y)
		columns.Set(2, j, p.Z)
		columns.Set(3, j, 1)
	}

	product := m.Matrix().Multiply(columns)
	for j := range points {
		p := Point{product.At(0, j), product.At(1, j), product.At(2, j)}
		if w := product.At(3, j); w != 0 && w != 1 {
			p = Point{p.X / w, p.Y / w, p.Z / w}
		}
		result[j] = p
	}
	return result
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense))
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
