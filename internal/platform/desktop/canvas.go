package desktop

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Debug font cell size in pixels
const (
	charWidth  = 6
	charHeight = 16
)

// Canvas draws world-space shapes onto an ebiten image.
// One world unit is one logical pixel.
type Canvas struct {
	dst    *ebiten.Image
	worldW float64
	worldH float64

	whiteImg *ebiten.Image // Source texture for polygon fills
	textImg  *ebiten.Image // Scratch image for tinted text
}

// NewCanvas creates a canvas for a worldW x worldH world.
func NewCanvas(worldW, worldH float64) *Canvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	return &Canvas{
		worldW:   worldW,
		worldH:   worldH,
		whiteImg: white,
		textImg:  ebiten.NewImage(int(worldW), charHeight),
	}
}

// SetTarget sets the image drawn onto by subsequent calls.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the world dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.worldW, c.worldH
}

// FillRect fills b.
func (c *Canvas) FillRect(b core.Box, p core.Paint) {
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), p.Color.NRGBA(), false)
}

// StrokeRect outlines b.
func (c *Canvas) StrokeRect(b core.Box, p core.Paint) {
	vector.StrokeRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, p.Color.NRGBA(), false)
}

// FillCircle fills the circle with anti-aliasing.
func (c *Canvas) FillCircle(circle core.Circle, p core.Paint) {
	vector.DrawFilledCircle(c.dst, float32(circle.X), float32(circle.Y), float32(circle.R), p.Color.NRGBA(), true)
}

// FillPolygon fills a polygon by triangulating its path.
func (c *Canvas) FillPolygon(pts []core.Point, p core.Paint) {
	if len(pts) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	clr := p.Color.NRGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(clr.R) / 255
		vertices[i].ColorG = float32(clr.G) / 255
		vertices[i].ColorB = float32(clr.B) / 255
		vertices[i].ColorA = float32(clr.A) / 255
	}

	c.dst.DrawTriangles(vertices, indices, c.whiteImg, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		FillRule:       ebiten.FillRuleNonZero,
		AntiAlias:      true,
	})
}

// Line draws a one pixel line.
func (c *Canvas) Line(from, to core.Point, p core.Paint) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, p.Color.NRGBA(), false)
}

// Text draws s with its top-left corner at (x, y).
// The debug font is white, so it is rendered to a scratch image and tinted.
func (c *Canvas) Text(x, y float64, s string, clr core.Color) {
	c.textImg.Clear()
	ebitenutil.DebugPrint(c.textImg, s)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr.NRGBA())
	c.dst.DrawImage(c.textImg, opts)
}

// TextCentered draws s centered on (cx, cy).
func (c *Canvas) TextCentered(cx, cy float64, s string, clr core.Color) {
	w := float64(utf8.RuneCountInString(s) * charWidth)
	c.Text(cx-w/2, cy-charHeight/2, s, clr)
}

// Ensure Canvas implements core.Canvas
var _ core.Canvas = (*Canvas)(nil)
