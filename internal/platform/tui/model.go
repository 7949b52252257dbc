package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/games/stars"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// maxStepsPerFrame bounds catch-up after a slow frame.
const maxStepsPerFrame = 5

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *core.ScreenCanvas
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	holds    *core.HoldTracker // Movement keys, released when they stop repeating
	controls core.InputFrame   // Control keys pressed since the last step
	clock    *core.FixedStep
	lastTick time.Time

	gameState core.GameState
	showHelp  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model and resets the game with cfg.
// The bottom terminal row is kept for the status bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The world size is known once the game has loaded its config
	game.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1))
	worldW, worldH := game.WorldSize()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    screen,
		canvas:    core.NewScreenCanvas(screen, worldW, worldH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    logger,
		holds:     core.NewHoldTracker(core.DefaultHoldWindow),
		controls:  core.NewInputFrame(),
		clock:     core.NewFixedStep(cfg.TickRate, maxStepsPerFrame),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "tps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit

	case action == core.ActionHelp:
		m.showHelp = !m.showHelp

	case action.IsHeld():
		m.holds.Press(action, time.Now())

	case action != core.ActionNone:
		if m.showHelp {
			// Any control key closes the instructions first
			m.showHelp = false
			return m, nil
		}
		m.controls.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world keeps its own coordinates, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick turns elapsed wall time into fixed simulation steps.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.Step()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.holds.Expire(now)

	// The instructions overlay freezes the game
	if m.showHelp {
		m.clock.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	steps := m.clock.Advance(elapsed)
	for range steps {
		frame := m.controls.Clone()
		m.holds.Apply(&frame)

		result := m.game.Step(frame)
		m.gameState = result.State
		logEvents(m.logger, result.Events)

		// Control keys act once
		m.controls.Clear()
	}

	return m, tickCmd(m.config.TickRate)
}

func logEvents(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		logger.Debug(e.Kind.String(), "score", e.Score, "lives", e.Lives, "level", e.Level)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.instructionsView()
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.canvas)

	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine shows the phase and the short key help.
func (m Model) statusLine() string {
	phase := m.gameState.Phase.String()
	if m.gameState.GameOver {
		phase = stars.ResultMessage(m.gameState.Won)
	}
	return statusStyle.Render(fmt.Sprintf("%s  ", phase) + m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp()))
}

// instructionsView renders the instructions panel centered on the terminal.
func (m Model) instructionsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.game.Title()))
	b.WriteString("\n")
	b.WriteString(stars.InstructionsText())
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keyMapper.Keys().FullHelp()))

	return lipgloss.Place(
		m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center,
		panelStyle.Render(b.String()),
	)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
