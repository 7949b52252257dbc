// Package desktop provides the Ebiten front-end: a native window with real
// key-up events and a pixel canvas.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/games/stars"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// heldKeys are polled every tick; an action is held while any of its keys is down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:      {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:     {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionSuperJump: {ebiten.KeySpace},
}

// controlKeys fire once per press.
var controlKeys = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionHelp:    {ebiten.KeySlash, ebiten.KeyH},
	core.ActionQuit:    {ebiten.KeyQ},
}

var helpPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}

// Game adapts a registry.Game to ebiten.Game.
// Ebiten calls Update at the configured TPS, so each Update is one simulation tick.
type Game struct {
	game   registry.Game
	canvas *Canvas
	logger *log.Logger

	frame    core.InputFrame
	state    core.GameState
	showHelp bool
}

// NewGame creates the adapter and resets the game with cfg.
func NewGame(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	game.Reset(cfg)
	worldW, worldH := game.WorldSize()

	return &Game{
		game:   game,
		canvas: NewCanvas(worldW, worldH),
		logger: logger,
		frame:  core.NewInputFrame(),
		state:  game.State(),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update runs one tick.
func (g *Game) Update() error {
	g.frame.Clear()

	for action, keys := range controlKeys {
		if anyJustPressed(keys) {
			g.frame.Set(action)
		}
	}

	if g.frame.Has(core.ActionQuit) {
		g.logger.Info("quit", "score", g.state.Score, "level", g.state.Level)
		return ebiten.Termination
	}
	if g.frame.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
		return nil
	}
	if g.showHelp {
		// Any other control key closes the instructions
		if len(g.frame.Actions) > 0 {
			g.showHelp = false
		}
		return nil
	}

	for action, keys := range heldKeys {
		if anyPressed(keys) {
			g.frame.Set(action)
		}
	}

	result := g.game.Step(g.frame)
	g.state = result.State
	for _, e := range result.Events {
		g.logger.Debug(e.Kind.String(), "score", e.Score, "lives", e.Lives, "level", e.Level)
	}

	return nil
}

// Draw renders the game and, when open, the instructions panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.game.Render(g.canvas)

	if g.showHelp {
		g.drawHelp(screen)
	}
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	w, h := g.canvas.Size()
	const margin = 80
	vector.DrawFilledRect(screen, margin, margin, float32(w-2*margin), float32(h-2*margin), helpPanelColor, false)

	y := float64(margin + 20)
	g.canvas.Text(margin+20, y, g.game.Title(), core.ColorBrightYellow)
	y += 2 * charHeight
	for _, line := range stars.Instructions {
		g.canvas.Text(margin+20, y, line, core.ColorBrightWhite)
		y += charHeight + 4
	}
	y += charHeight
	g.canvas.Text(margin+20, y, "Enter start  P pause  R reset  ? close  Q quit", core.ColorWhite)
}

// Layout returns the world size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.canvas.Size()
	return int(w), int(h)
}

// Run opens a window and plays the game until it is closed or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	adapter := NewGame(game, cfg, logger)
	w, h := game.WorldSize()

	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("window opened", "game", game.ID(), "seed", cfg.Seed, "tps", cfg.TickRate)
	if err := ebiten.RunGame(adapter); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
