package geometry

import "github.com/df07/go-lambert-raytracer/pkg/core"

// ViewFrame is the virtual image plane in world space. It is centered on
// Origin and faces the camera along the z axis.
type ViewFrame struct {
	Origin core.Point
	Width  float64
	Height float64
}

// NewViewFrame creates a view frame centered on origin
func NewViewFrame(origin core.Point, width, height float64) ViewFrame {
	return ViewFrame{Origin: origin, Width: width, Height: height}
}

// PointOnPixel maps pixel (x, y) of an imageWidth x imageHeight image to a
// world point on the frame. Pixel (0, 0) maps to the corner at
// (origin.X - width/2, origin.Y - height/2).
func (f ViewFrame) PointOnPixel(x, y, imageWidth, imageHeight int) core.Point {
	return core.NewPoint(
		f.Origin.X-f.Width/2+float64(x)*f.Width/float64(imageWidth),
		f.Origin.Y-f.Height/2+float64(y)*f.Height/float64(imageHeight),
		f.Origin.Z,
	)
}

// Camera shoots rays from a single viewpoint through a view frame
type Camera struct {
	Position core.Point
	Frame    ViewFrame
}

// NewCamera creates a camera at position looking through frame
func NewCamera(position core.Point, frame ViewFrame) *Camera {
	return &Camera{Position: position, Frame: frame}
}

// NewDefaultCamera returns a camera at (0,0,20) looking down -z through a
// 10x10 frame at z=10
func NewDefaultCamera() *Camera {
	return NewCamera(core.NewPoint(0, 0, 20), NewViewFrame(core.NewPoint(0, 0, 10), 10, 10))
}

// RayForPixel returns the unit-direction ray from the camera position
// through the frame point for pixel (x, y)
func (c *Camera) RayForPixel(x, y, imageWidth, imageHeight int) core.Ray {
	target := c.Frame.PointOnPixel(x, y, imageWidth, imageHeight)
	direction := target.Subtract(c.Position).Normalize()
	return core.NewRay(c.Position, direction.ToVector())
}

// Transform moves the camera position. The view frame is left in place.
func (c *Camera) Transform(t core.Transformation) {
	c.Position = t.Matrix().MultiplyPoint(c.Position)
}
