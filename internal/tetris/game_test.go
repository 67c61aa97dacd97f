package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// testConfig runs at 10 frames per second so five frames equal the
// default fall interval.
func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     10,
		Seed:         12345,
		BoardW:       10,
		BoardH:       20,
		FallInterval: 500 * time.Millisecond,
	}
}

func newGame(cfg core.RuntimeConfig) *Game {
	g := New()
	g.Reset(cfg)
	return g
}

func TestGravityWaitsForFallInterval(t *testing.T) {
	g := newGame(testConfig())
	empty := core.NewInputFrame()

	for i := 0; i < 5; i++ {
		g.Step(empty)
	}
	assert.Equal(t, 0, g.Engine().Current().Y, "500ms elapsed is not more than the interval")

	g.Step(empty)
	assert.Equal(t, 1, g.Engine().Current().Y)

	// Timer restarts after each gravity step
	for i := 0; i < 5; i++ {
		g.Step(empty)
	}
	assert.Equal(t, 1, g.Engine().Current().Y)
	g.Step(empty)
	assert.Equal(t, 2, g.Engine().Current().Y)
}

func TestStepAppliesCommands(t *testing.T) {
	g := newGame(testConfig())
	startX := g.Engine().Current().X

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionLeft)
	g.Step(in)
	assert.Equal(t, startX-2, g.Engine().Current().X)

	in.Clear()
	in.Set(core.ActionDown)
	g.Step(in)
	assert.Equal(t, 1, g.Engine().Current().Y, "soft drop moves one row")

	in.Clear()
	in.Set(core.ActionRight)
	g.Step(in)
	assert.Equal(t, startX-1, g.Engine().Current().X)
}

func TestStepRotates(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	// Move away from the top so every kind can turn
	for i := 0; i < 3; i++ {
		g.Engine().SoftDrop()
	}
	before := g.Engine().Current().Shape

	in := core.NewInputFrame()
	in.Set(core.ActionRotate)
	g.Step(in)

	assert.True(t, Rotate(before).Equal(g.Engine().Current().Shape))
}

func TestPauseFreezesGravity(t *testing.T) {
	g := newGame(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	require.True(t, res.State.Paused)

	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	assert.Equal(t, 0, g.Engine().Current().Y)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	res = g.Step(in)
	assert.False(t, res.State.Paused)
}

func TestStepReportsLockedPieces(t *testing.T) {
	cfg := testConfig()
	cfg.BoardH = 4
	cfg.TickRate = 1 // every frame is a gravity step
	g := newGame(cfg)

	empty := core.NewInputFrame()
	locked := false
	for i := 0; i < 10 && !locked; i++ {
		locked = g.Step(empty).Locked
	}

	assert.True(t, locked)
	assert.Equal(t, 1, g.Engine().Pieces())
}

func TestGameOverStopsSimulation(t *testing.T) {
	cfg := testConfig()
	cfg.BoardH = 4
	cfg.TickRate = 1
	g := newGame(cfg)

	empty := core.NewInputFrame()
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Step(empty)
	}
	require.True(t, g.State().GameOver)

	before := g.Snapshot()
	g.Step(empty)
	after := g.Snapshot()

	assert.Equal(t, before.Frame+1, after.Frame)
	before.Frame = after.Frame
	assert.Equal(t, before, after)
	assert.Equal(t, StateGameOver, after.State)
}

func TestResizeKeepsGame(t *testing.T) {
	g := newGame(testConfig())
	g.Engine().SoftDrop()

	g.Resize(20, 10)
	assert.True(t, g.State().Paused, "too small pauses the game")
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, 1, g.Engine().Current().Y, "resize must not reset")
}

func TestResetAppliesDefaults(t *testing.T) {
	g := newGame(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	assert.Equal(t, 10, g.Engine().Width())
	assert.Equal(t, 20, g.Engine().Height())
	w, h := g.MinScreenSize()
	assert.Equal(t, 38, w)
	assert.Equal(t, 23, h)
}

func TestRender(t *testing.T) {
	g := newGame(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Tetris")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Next Shape")
	assert.Contains(t, out, string(blockChar))

	cur := g.Engine().Current()
	well := g.wellRect()
	c := cur.Cells()[0]
	cell := screen.GetCell(well.X+1+c.X*cellWidth, well.Y+1+c.Y)
	assert.Equal(t, cur.Color, cell.Color, "current piece drawn in its color")
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(testConfig())
	screen := core.NewScreen(80, 24)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Resize(20, 10)
	screen.Resize(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}

func TestGameDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(testConfig())
	g2 := newGame(testConfig())

	in := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		in.Clear()
		switch i % 7 {
		case 1:
			in.Set(core.ActionLeft)
		case 3:
			in.Set(core.ActionRotate)
		case 5:
			in.Set(core.ActionRight)
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}
