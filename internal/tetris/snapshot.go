package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame    uint64
	Score    int
	Lines    int
	Pieces   int
	Kind     Kind
	X, Y     int
	Shape    string
	NextKind Kind
	Filled   int // Settled cells on the board
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Frame: g.frame}
	}

	state := StatePlaying
	switch {
	case g.engine.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	cur := g.engine.Current()
	return Snapshot{
		Frame:    g.frame,
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Pieces:   g.engine.Pieces(),
		Kind:     cur.Kind,
		X:        cur.X,
		Y:        cur.Y,
		Shape:    cur.Shape.String(),
		NextKind: g.engine.Next().Kind,
		Filled:   g.engine.grid.FilledCount(),
		State:    state,
	}
}
