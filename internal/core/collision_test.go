package core

import (
	"math"
	"testing"
)

func TestClosestPoint(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name   string
		px, py float64
		want   Point
	}{
		{"inside", 15, 20, Point{15, 20}},
		{"left", 0, 15, Point{10, 15}},
		{"right", 50, 15, Point{30, 15}},
		{"above", 20, 0, Point{20, 10}},
		{"below-right corner", 40, 40, Point{30, 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClosestPoint(tc.px, tc.py, b)
			if got != tc.want {
				t.Errorf("ClosestPoint(%v, %v) = %v, expected %v", tc.px, tc.py, got, tc.want)
			}
		})
	}
}

func TestCircleIntersectsBox(t *testing.T) {
	tests := []struct {
		name     string
		c        Circle
		b        Box
		distance float64
		expected bool
	}{
		{
			name:     "center inside box",
			c:        Circle{X: 100, Y: 580, R: 20},
			b:        Box{X: 90, Y: 560, W: 40, H: 40},
			distance: 0,
			expected: true,
		},
		{
			name:     "overlapping edge",
			c:        Circle{X: 75, Y: 580, R: 20},
			b:        Box{X: 90, Y: 560, W: 40, H: 40},
			distance: 15,
			expected: true,
		},
		{
			name:     "touching edge does not count",
			c:        Circle{X: 70, Y: 580, R: 20},
			b:        Box{X: 90, Y: 560, W: 40, H: 40},
			distance: 20,
			expected: false,
		},
		{
			name:     "near corner but outside",
			c:        Circle{X: 75, Y: 545, R: 20},
			b:        Box{X: 90, Y: 560, W: 40, H: 40},
			distance: math.Sqrt(15*15 + 15*15),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := CircleBoxDistance(tc.c, tc.b)
			if math.Abs(d-tc.distance) > 1e-9 {
				t.Errorf("CircleBoxDistance() = %f, expected %f", d, tc.distance)
			}
			if got := CircleIntersectsBox(tc.c, tc.b); got != tc.expected {
				t.Errorf("CircleIntersectsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	player := Circle{X: 50, Y: 50, R: 20}
	star := Circle{X: 55, Y: 55, R: 12}

	d := Distance(player.X, player.Y, star.X, star.Y)
	if math.Abs(d-7.0710678) > 1e-6 {
		t.Errorf("Distance() = %f, expected ~7.07", d)
	}
	if !CirclesOverlap(player, star) {
		t.Error("CirclesOverlap() should be true for distance 7.07 < 32")
	}
	if !CirclesOverlap(star, player) {
		t.Error("CirclesOverlap() should be symmetric")
	}

	touching := Circle{X: 82, Y: 50, R: 12}
	if CirclesOverlap(player, touching) {
		t.Error("Touching circles should not overlap")
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 5, Y: 10, W: 20, H: 16}
	if b.Right() != 25 || b.Bottom() != 26 {
		t.Errorf("edges = (%f, %f), expected (25, 26)", b.Right(), b.Bottom())
	}
	if c := b.Center(); c != (Point{15, 18}) {
		t.Errorf("Center() = %v, expected (15, 18)", c)
	}
}
