package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants for the terminal rendering.
const (
	hudHeight   = 1  // Score line above the well
	cellWidth   = 2  // Terminal columns per board cell
	panelWidth  = 14 // Side panel with score and preview
	panelMargin = 2  // Gap between well and panel
)

// Game adapts an Engine to frame-based driving: each Step applies the
// frame's commands and advances the gravity timer.
type Game struct {
	engine *Engine
	cfg    core.RuntimeConfig
	frame  uint64

	// Gravity timer: the engine ticks once the time since the last
	// gravity step strictly exceeds the fall interval.
	sinceFall time.Duration

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a fresh game on an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	defaults := core.DefaultConfig()
	if cfg.BoardW <= 0 {
		cfg.BoardW = defaults.BoardW
	}
	if cfg.BoardH <= 0 {
		cfg.BoardH = defaults.BoardH
	}
	if cfg.FallInterval <= 0 {
		cfg.FallInterval = defaults.FallInterval
	}

	g.cfg = cfg
	g.engine = NewEngine(cfg.BoardW, cfg.BoardH, WithSeed(cfg.Seed))
	g.frame = 0
	g.sinceFall = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
	g.checkScreenSize()
}

// MinScreenSize returns the smallest screen that fits the well and panel.
func (g *Game) MinScreenSize() (int, int) {
	wellW, wellH := g.wellSize()
	return wellW + panelMargin + panelWidth, wellH + hudHeight
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.MinScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// wellSize returns the bordered board size in terminal cells.
func (g *Game) wellSize() (int, int) {
	return g.cfg.BoardW*cellWidth + 2, g.cfg.BoardH + 2
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if g.engine == nil || g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Two presses in one frame cancel out
	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	result := core.StepResult{}
	g.sinceFall += g.cfg.FrameDuration()
	if g.sinceFall > g.cfg.FallInterval {
		g.sinceFall = 0
		if !g.engine.Tick() {
			result.Locked = true
			result.Cleared = g.engine.LastCleared()
		}
	}

	result.State = g.State()
	return result
}

// applyInput maps the frame's actions to engine commands.
func (g *Game) applyInput(in core.InputFrame) {
	for range in.Count(core.ActionRotate) {
		g.engine.Rotate()
	}
	for range in.Count(core.ActionLeft) {
		g.engine.MoveLeft()
	}
	for range in.Count(core.ActionRight) {
		g.engine.MoveRight()
	}
	for range in.Count(core.ActionDown) {
		g.engine.SoftDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}
