package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4×4 affine transform.
//
// Homogeneous convention: a Point is embedded as (x, y, z, 1) so translation
// applies to it, a Vector as (x, y, z, 0) so translation is ignored. Normals
// are mapped by the inverse transpose and re-normalized.
type Mat4 struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{m: mgl64.Ident4()}
}

// RotationX returns a right-handed rotation about the X axis
func RotationX(radians float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DX(radians)}
}

// RotationY returns a right-handed rotation about the Y axis
func RotationY(radians float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DY(radians)}
}

// RotationZ returns a right-handed rotation about the Z axis
func RotationZ(radians float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DZ(radians)}
}

// ScaleMatrix returns a (possibly non-uniform) scale by the factor components
func ScaleMatrix(factor Vector) Mat4 {
	return Mat4{m: mgl64.Scale3D(factor.X, factor.Y, factor.Z)}
}

// TranslationMatrix returns a translation by offset
func TranslationMatrix(offset Vector) Mat4 {
	return Mat4{m: mgl64.Translate3D(offset.X, offset.Y, offset.Z)}
}

func mat4FromRows(rows [4][4]float64) Mat4 {
	var m mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return Mat4{m: m}
}

// At returns the element at the given row and column
func (a Mat4) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Multiply returns a·b, i.e. b is applied first
func (a Mat4) Multiply(b Mat4) Mat4 {
	return Mat4{m: a.m.Mul4(b.m)}
}

// MultiplyPoint transforms a point (w = 1)
func (a Mat4) MultiplyPoint(p Point) Point {
	r := a.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if w := r.W(); w != 0 && w != 1 {
		return Point{r.X() / w, r.Y() / w, r.Z() / w}
	}
	return Point{r.X(), r.Y(), r.Z()}
}

// MultiplyVector transforms a direction (w = 0)
func (a Mat4) MultiplyVector(v Vector) Vector {
	r := a.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vector{r.X(), r.Y(), r.Z()}
}

// MultiplyNormal transforms a surface normal by the inverse transpose. A
// singular matrix yields the zero normal.
func (a Mat4) MultiplyNormal(n Normal) Normal {
	inverseTranspose := a.m.Inv().Transpose()
	r := inverseTranspose.Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
	return Vector{r.X(), r.Y(), r.Z()}.Normalize()
}

// Matrix returns the transform as a general 4×4 matrix
func (a Mat4) Matrix() Matrix {
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = make([]float64, 4)
		for j := range rows[i] {
			rows[i][j] = a.m.At(i, j)
		}
	}
	return NewMatrixFromRows(rows)
}

// ApproxEqual reports whether every element is within tolerance
func (a Mat4) ApproxEqual(b Mat4, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !almostEqual(a.At(i, j), b.At(i, j), tolerance) {
				return false
			}
		}
	}
	return true
}

// Axis names a world axis for rotations
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis parses "x", "y" or "z" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// TransformKind distinguishes the supported transformations
type TransformKind int

const (
	TranslationKind TransformKind = iota
	ScaleKind
	RotationKind
)

// Transformation is a single translation, scale or rotation to apply to a
// Transformer.
type Transformation struct {
	Kind    TransformKind
	Vector  Vector  // offset for translations, factors for scales
	Axis    Axis    // rotation axis
	Degrees float64 // rotation angle
}

// Translate returns a translation by offset
func Translate(offset Vector) Transformation {
	return Transformation{Kind: TranslationKind, Vector: offset}
}

// Scale returns a scale by the factor components
func Scale(factor Vector) Transformation {
	return Transformation{Kind: ScaleKind, Vector: factor}
}

// Rotate returns a rotation about axis by an angle in degrees
func Rotate(axis Axis, degrees float64) Transformation {
	return Transformation{Kind: RotationKind, Axis: axis, Degrees: degrees}
}

// Matrix returns the 4×4 matrix for the transformation
func (t Transformation) Matrix() Mat4 {
	switch t.Kind {
	case TranslationKind:
		return TranslationMatrix(t.Vector)
	case ScaleKind:
		return ScaleMatrix(t.Vector)
	case RotationKind:
		radians := mgl64.DegToRad(t.Degrees)
		switch t.Axis {
		case AxisX:
			return RotationX(radians)
		case AxisY:
			return RotationY(radians)
		case AxisZ:
			return RotationZ(radians)
		}
	}
	panic(fmt.Sprintf("invalid transformation %+v", t))
}

// Compose returns the single matrix that applies transforms in order, so
// the first transformation is the right-most factor
func Compose(transforms ...Transformation) Mat4 {
	m := Identity()
	for _, t := range transforms {
		m = t.Matrix().Multiply(m)
	}
	return m
}

// MaxScaleFactor returns the largest absolute scale component, used to
// over-approximate non-uniform scaling of rotationally symmetric shapes.
func (t Transformation) MaxScaleFactor() float64 {
	return math.Max(math.Abs(t.Vector.X), math.Max(math.Abs(t.Vector.Y), math.Abs(t.Vector.Z)))
}

func (t Transformation) String() string {
	switch t.Kind {
	case TranslationKind:
		return fmt.Sprintf("translate(%g, %g, %g)", t.Vector.X, t.Vector.Y, t.Vector.Z)
	case ScaleKind:
		return fmt.Sprintf("scale(%g, %g, %g)", t.Vector.X, t.Vector.Y, t.Vector.Z)
	case RotationKind:
		return fmt.Sprintf("rotate(%s, %g°)", t.Axis, t.Degrees)
	default:
		return fmt.Sprintf("Transformation(%d)", int(t.Kind))
	}
}
