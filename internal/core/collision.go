package core

import "math"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Circle is a disc in world units, positioned by its center.
type Circle struct {
	X, Y float64
	R    float64
}

// Box is an axis-aligned rectangle in world units, positioned by its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// ClosestPoint returns the point of b nearest to (px, py).
// Points inside the box map to themselves.
func ClosestPoint(px, py float64, b Box) Point {
	return Point{
		X: ClampF(px, b.X, b.Right()),
		Y: ClampF(py, b.Y, b.Bottom()),
	}
}

// CircleBoxDistance returns the distance from the circle center to the nearest
// point of the box. It is zero when the center lies inside the box.
func CircleBoxDistance(c Circle, b Box) float64 {
	p := ClosestPoint(c.X, c.Y, b)
	return Distance(c.X, c.Y, p.X, p.Y)
}

// CircleIntersectsBox reports whether the circle overlaps the box.
// Touching edges (distance == radius) do not count.
func CircleIntersectsBox(c Circle, b Box) bool {
	return CircleBoxDistance(c, b) < c.R
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance == r1+r2) do not count.
func CirclesOverlap(a, b Circle) bool {
	return Distance(a.X, a.Y, b.X, b.Y) < a.R+b.R
}
