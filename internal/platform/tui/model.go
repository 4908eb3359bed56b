package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// nudgeFraction is the share of the world width one arrow key press moves the paddle.
const nudgeFraction = 0.05

// Model is the Bubble Tea model for one brick breaker session. The engine
// runs its own loops; the model only forwards input and repaints on request.
type Model struct {
	engine *brickbreaker.Engine
	redraw *Redrawer
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	worldW   int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a started or about to be started engine.
func NewModel(engine *brickbreaker.Engine, redraw *Redrawer, worldW int, rc core.RuntimeConfig) Model {
	m := Model{
		engine: engine,
		redraw: redraw,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		worldW: worldW,
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}
	m.help.Width = rc.ScreenW
	m.screen = core.NewScreen(rc.ScreenW, m.fieldHeight())
	return m
}

// Init waits for the first redraw request.
func (m Model) Init() tea.Cmd {
	return m.redraw.Wait(m.engine.Done())
}

// Update handles messages and forwards input to the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.engine.MovePaddle(brickbreaker.WorldX(msg.X, m.screen.Width(), m.worldW))
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.fieldHeight())
		return m, nil

	case RedrawMsg:
		return m, m.redraw.Wait(m.engine.Done())

	case SessionEndedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nudge := float64(m.worldW) * nudgeFraction

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit
	case core.ActionPause:
		m.engine.TogglePause()
	case core.ActionRestart:
		m.engine.ResetIfGameOver()
	case core.ActionLeft:
		m.engine.NudgePaddle(-nudge)
	case core.ActionRight:
		m.engine.NudgePaddle(nudge)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.fieldHeight())
	}
	return m, nil
}

// fieldHeight returns the rows left for the game once help is drawn.
func (m Model) fieldHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = 2 // Every full help column holds two bindings
	}
	return max(0, m.height-rows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays one local session: it starts an engine for cfg, runs the Bubble
// Tea program in the alternate screen with mouse motion reporting, and stops
// the engine when the program exits.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger, rc core.RuntimeConfig) error {
	redraw := NewRedrawer()
	engine := brickbreaker.New(cfg,
		brickbreaker.WithLogger(logger),
		brickbreaker.WithRedraw(redraw.Request),
	)
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(
		NewModel(engine, redraw, cfg.World.Width, rc),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	engine.Stop()

	if err := engine.Wait(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", runErr)
	}
	return nil
}
