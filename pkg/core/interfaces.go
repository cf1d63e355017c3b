package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Transformer is implemented by entities that can be repositioned, rescaled
// or rotated in place. It is an optional capability checked with a type
// assertion; not every shape supports it.
type Transformer interface {
	Transform(t Transformation)
}
