package core

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Paint describes how a shape is filled.
type Paint struct {
	Color Color
	Glyph rune // Terminal fill character; zero means a full block
}

// Canvas is a 2D drawing surface addressed in world units.
// Games draw onto a Canvas; each front-end supplies its own implementation.
type Canvas interface {
	// Size returns the world dimensions the canvas covers.
	Size() (w, h float64)

	FillRect(b Box, p Paint)
	StrokeRect(b Box, p Paint)
	FillCircle(c Circle, p Paint)
	FillPolygon(pts []Point, p Paint)
	Line(from, to Point, p Paint)

	// Text draws a string with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
	// TextCentered draws a string centered on (cx, cy).
	TextCentered(cx, cy float64, s string, c Color)
}

// ScreenCanvas rasterizes world-space shapes onto a character Screen.
// A cell is covered by a shape when the cell's center lies inside it; shapes
// smaller than a cell still mark the cell under their center.
type ScreenCanvas struct {
	screen *Screen
	worldW float64
	worldH float64

	intersections []float64 // Reusable scanline buffer
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH space onto s.
// The mapping follows the screen's current size, so resizing s rescales the canvas.
func NewScreenCanvas(s *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen: s,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying character buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the world dimensions.
func (c *ScreenCanvas) Size() (float64, float64) {
	return c.worldW, c.worldH
}

func (c *ScreenCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// cellSpan returns the first and last cell whose centers lie in [lo, hi].
// ok is false when no cell center falls inside the range.
func cellSpan(lo, hi, scale float64) (first, last int, ok bool) {
	first = int(math.Ceil(lo*scale - 0.5))
	last = int(math.Floor(hi*scale - 0.5))
	return first, last, first <= last
}

// cellOf returns the cell containing the world point.
func (c *ScreenCanvas) cellOf(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func glyphOf(p Paint) rune {
	if p.Glyph == 0 {
		return '█'
	}
	return p.Glyph
}

// FillRect fills the cells covered by b.
func (c *ScreenCanvas) FillRect(b Box, p Paint) {
	sx, sy := c.scale()
	c0, c1, okX := cellSpan(b.X, b.Right(), sx)
	r0, r1, okY := cellSpan(b.Y, b.Bottom(), sy)
	if !okX || !okY {
		center := b.Center()
		col, row := c.cellOf(center.X, center.Y)
		if okX {
			c.screen.DrawRect(NewRect(c0, row, c1-c0+1, 1), glyphOf(p), p.Color)
			return
		}
		if okY {
			c.screen.DrawRect(NewRect(col, r0, 1, r1-r0+1), glyphOf(p), p.Color)
			return
		}
		c.screen.SetWithColor(col, row, glyphOf(p), p.Color)
		return
	}
	c.screen.DrawRect(NewRect(c0, r0, c1-c0+1, r1-r0+1), glyphOf(p), p.Color)
}

// StrokeRect outlines b with box-drawing characters.
func (c *ScreenCanvas) StrokeRect(b Box, p Paint) {
	x0, y0 := c.cellOf(b.X, b.Y)
	x1, y1 := c.cellOf(b.Right(), b.Bottom())
	c.screen.DrawBox(NewRect(x0, y0, x1-x0, y1-y0), p.Color)
}

// FillCircle fills the cells whose centers lie inside the circle.
func (c *ScreenCanvas) FillCircle(circle Circle, p Paint) {
	sx, sy := c.scale()
	drawn := false

	r0, r1, ok := cellSpan(circle.Y-circle.R, circle.Y+circle.R, sy)
	if ok {
		for row := r0; row <= r1; row++ {
			dy := (float64(row)+0.5)/sy - circle.Y
			if math.Abs(dy) > circle.R {
				continue
			}
			half := math.Sqrt(circle.R*circle.R - dy*dy)
			c0, c1, okX := cellSpan(circle.X-half, circle.X+half, sx)
			if !okX {
				continue
			}
			for col := c0; col <= c1; col++ {
				c.screen.SetWithColor(col, row, glyphOf(p), p.Color)
			}
			drawn = true
		}
	}

	if !drawn {
		col, row := c.cellOf(circle.X, circle.Y)
		c.screen.SetWithColor(col, row, glyphOf(p), p.Color)
	}
}

// FillPolygon fills a polygon using a scanline pass through cell centers.
func (c *ScreenCanvas) FillPolygon(pts []Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	sx, sy := c.scale()

	minY, maxY := pts[0].Y, pts[0].Y
	var cx, cy float64
	for _, pt := range pts {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
		cx += pt.X
		cy += pt.Y
	}

	drawn := false
	r0, r1, ok := cellSpan(minY, maxY, sy)
	if ok {
		n := len(pts)
		for row := r0; row <= r1; row++ {
			scanY := (float64(row) + 0.5) / sy

			c.intersections = c.intersections[:0]
			for i := 0; i < n; i++ {
				a := pts[i]
				b := pts[(i+1)%n]
				if (a.Y <= scanY && b.Y > scanY) || (b.Y <= scanY && a.Y > scanY) {
					t := (scanY - a.Y) / (b.Y - a.Y)
					c.intersections = append(c.intersections, a.X+t*(b.X-a.X))
				}
			}
			sort.Float64s(c.intersections)

			for i := 0; i+1 < len(c.intersections); i += 2 {
				c0, c1, okX := cellSpan(c.intersections[i], c.intersections[i+1], sx)
				if !okX {
					continue
				}
				for col := c0; col <= c1; col++ {
					c.screen.SetWithColor(col, row, glyphOf(p), p.Color)
				}
				drawn = true
			}
		}
	}

	if !drawn {
		n := float64(len(pts))
		col, row := c.cellOf(cx/n, cy/n)
		c.screen.SetWithColor(col, row, glyphOf(p), p.Color)
	}
}

// Line draws a line between two points using Bresenham's algorithm.
func (c *ScreenCanvas) Line(from, to Point, p Paint) {
	x1, y1 := c.cellOf(from.X, from.Y)
	x2, y2 := c.cellOf(to.X, to.Y)

	// Keep endpoints on the far edge inside the screen.
	x1 = Clamp(x1, -1, c.screen.Width())
	x2 = Clamp(x2, -1, c.screen.Width())
	y1 = Clamp(y1, -1, c.screen.Height())
	y2 = Clamp(y2, -1, c.screen.Height())

	dx := Abs(x2 - x1)
	dy := Abs(y2 - y1)
	stepX := 1
	if x1 > x2 {
		stepX = -1
	}
	stepY := 1
	if y1 > y2 {
		stepY = -1
	}
	err := dx - dy

	for {
		c.screen.SetWithColor(x1, y1, glyphOf(p), p.Color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += stepX
		}
		if e2 < dx {
			err += dx
			y1 += stepY
		}
	}
}

// Text writes s starting at the cell containing (x, y).
func (c *ScreenCanvas) Text(x, y float64, s string, color Color) {
	col, row := c.cellOf(x, y)
	c.screen.DrawTextColor(col, row, s, color)
}

// TextCentered writes s centered on the cell containing (cx, cy).
func (c *ScreenCanvas) TextCentered(cx, cy float64, s string, color Color) {
	col, row := c.cellOf(cx, cy)
	c.screen.DrawTextColor(col-utf8.RuneCountInString(s)/2, row, s, color)
}

// Ensure ScreenCanvas implements Canvas
var _ Canvas = (*ScreenCanvas)(nil)
