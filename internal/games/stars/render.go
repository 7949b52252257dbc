package stars

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Layout constants in canvas units.
const (
	gridSpacing    = 40
	textureSpacing = 30
	textureW       = 15
	textureH       = 5
	hudX           = 20
	hudLine        = 30
	highlightDX    = -8
	highlightDY    = -8
	highlightR     = 6
	starPoints     = 5
	starOuter      = 1.5 // Star glyph radii relative to the star radius
	starInner      = 0.5
	resultBoxW     = 400
	resultBoxH     = 200
)

// Paints for each element. Glyphs only matter on character canvases.
var (
	skyTopPaint      = core.Paint{Color: core.ColorNavy, Glyph: ' '}
	skyBottomPaint   = core.Paint{Color: core.ColorTeal, Glyph: ' '}
	gridPaint        = core.Paint{Color: core.ColorGray, Glyph: ' '}
	groundPaint      = core.Paint{Color: core.ColorSlate, Glyph: '▀'}
	texturePaint     = core.Paint{Color: core.ColorSteel, Glyph: '▓'}
	starDiscPaint    = core.Paint{Color: core.ColorYellow, Glyph: '●'}
	starGlyphPaint   = core.Paint{Color: core.ColorBrightYellow, Glyph: '★'}
	obstaclePaint    = core.Paint{Color: core.ColorRed, Glyph: '█'}
	playerPaint      = core.Paint{Color: core.ColorBlue, Glyph: '█'}
	playerHitPaint   = core.Paint{Color: core.ColorBrightRed, Glyph: '█'}
	highlightPaint   = core.Paint{Color: core.ColorBrightCyan, Glyph: '▪'}
	resultPanelPaint = core.Paint{Color: core.ColorBlack, Glyph: ' '}
	resultFramePaint = core.Paint{Color: core.ColorBrightWhite}
)

// Render draws the world onto dst. It only reads w.
func Render(w *World, dst core.Canvas) {
	renderBackground(w, dst)
	renderGround(w, dst)

	for _, s := range w.Stars {
		if !s.Collected {
			renderStar(s, dst)
		}
	}
	for _, o := range w.Obstacles {
		renderObstacle(o, dst)
	}
	renderPlayer(w.Player, dst)

	renderHUD(w, dst)
	renderOverlay(w, dst)
}

func renderBackground(w *World, dst core.Canvas) {
	width, height := w.Width(), w.Height()

	// Two bands stand in for the vertical gradient
	dst.FillRect(core.Box{X: 0, Y: 0, W: width, H: height / 2}, skyTopPaint)
	dst.FillRect(core.Box{X: 0, Y: height / 2, W: width, H: height / 2}, skyBottomPaint)

	for x := 0.0; x <= width; x += gridSpacing {
		dst.Line(core.Point{X: x, Y: 0}, core.Point{X: x, Y: height}, gridPaint)
	}
	for y := 0.0; y <= height; y += gridSpacing {
		dst.Line(core.Point{X: 0, Y: y}, core.Point{X: width, Y: y}, gridPaint)
	}
}

func renderGround(w *World, dst core.Canvas) {
	groundY := w.GroundY()
	dst.FillRect(core.Box{X: 0, Y: groundY, W: w.Width(), H: w.Height() - groundY}, groundPaint)

	for x := 0.0; x < w.Width(); x += textureSpacing {
		dst.FillRect(core.Box{X: x, Y: groundY, W: textureW, H: textureH}, texturePaint)
	}
}

func renderStar(s Star, dst core.Canvas) {
	dst.FillCircle(s.Circle(), starDiscPaint)
	dst.FillPolygon(starShape(s.X, s.Y, s.Radius*starOuter, s.Radius*starInner), starGlyphPaint)
}

// starShape returns the vertices of a five-point star centered on (cx, cy),
// alternating outer and inner radius, first spike pointing right.
func starShape(cx, cy, outer, inner float64) []core.Point {
	pts := make([]core.Point, 0, starPoints*2)
	step := math.Pi / starPoints
	for i := 0; i < starPoints; i++ {
		angle := float64(i) * 2 * step
		pts = append(pts,
			core.Point{X: cx + outer*math.Cos(angle), Y: cy + outer*math.Sin(angle)},
			core.Point{X: cx + inner*math.Cos(angle+step), Y: cy + inner*math.Sin(angle+step)},
		)
	}
	return pts
}

func renderObstacle(o Obstacle, dst core.Canvas) {
	b := o.Box()
	dst.FillRect(b, obstaclePaint)
	c := b.Center()
	dst.TextCentered(c.X, c.Y, "!", core.ColorBrightWhite)
}

func renderPlayer(p Player, dst core.Canvas) {
	paint := playerPaint
	if p.Color == PlayerHit {
		paint = playerHitPaint
	}
	dst.FillCircle(p.Circle(), paint)
	dst.FillCircle(core.Circle{X: p.X + highlightDX, Y: p.Y + highlightDY, R: highlightR}, highlightPaint)
}

func renderHUD(w *World, dst core.Canvas) {
	dst.Text(hudX, hudLine, fmt.Sprintf("Score: %d", w.Score), core.ColorBrightWhite)
	dst.Text(hudX, 2*hudLine, fmt.Sprintf("Lives: %d", w.Lives), core.ColorBrightRed)
	dst.Text(hudX, 3*hudLine, fmt.Sprintf("Level: %d", w.Level), core.ColorBrightCyan)
	dst.Text(hudX, 4*hudLine, fmt.Sprintf("Time: %.1fs", w.Time), core.ColorWhite)
}

func renderOverlay(w *World, dst core.Canvas) {
	cx, cy := w.Width()/2, w.Height()/2

	switch w.Phase {
	case core.PhaseStopped:
		dst.TextCentered(cx, cy, "PRESS ENTER TO START", core.ColorBrightYellow)
		dst.TextCentered(cx, cy+2*hudLine, "? for instructions", core.ColorWhite)

	case core.PhasePaused:
		dst.TextCentered(cx, cy, "PAUSED", core.ColorBrightYellow)
		dst.TextCentered(cx, cy+2*hudLine, "P to resume", core.ColorWhite)

	case core.PhaseGameOver:
		box := core.Box{X: cx - resultBoxW/2, Y: cy - resultBoxH/2, W: resultBoxW, H: resultBoxH}
		dst.FillRect(box, resultPanelPaint)
		dst.StrokeRect(box, resultFramePaint)

		msgColor := core.ColorBrightRed
		if w.Won {
			msgColor = core.ColorBrightGreen
		}
		dst.TextCentered(cx, cy-2*hudLine, ResultMessage(w.Won), msgColor)
		dst.TextCentered(cx, cy-hudLine/2, fmt.Sprintf("Final Score: %d", w.Score), core.ColorBrightWhite)
		dst.TextCentered(cx, cy+hudLine/2, fmt.Sprintf("Final Level: %d", w.Level), core.ColorBrightWhite)
		dst.TextCentered(cx, cy+2*hudLine, "ENTER to play again", core.ColorWhite)
	}
}

// ResultMessage returns the game-over headline.
func ResultMessage(won bool) string {
	if won {
		return "YOU WIN!"
	}
	return "GAME OVER"
}
