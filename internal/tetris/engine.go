package tetris

// PointsPerRow is the score awarded for each cleared row.
const PointsPerRow = 10

// Engine owns the board, the falling piece, the preview piece and the score.
// All operations are synchronous and must be called from a single goroutine.
//
// Lifecycle: Falling -> (Tick blocked) -> freeze -> Falling with the next
// piece, or GameOver when that piece cannot spawn. Once GameOver is set every
// command is a no-op that reports false.
type Engine struct {
	grid    *Grid
	picker  Picker
	current Piece
	next    Piece

	score       int
	lines       int
	pieces      int // pieces frozen so far
	lastCleared int // rows removed by the most recent freeze
	gameOver    bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithPicker sets the source of piece kinds.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// WithSeed uses a uniform random picker seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.picker = NewRandomPicker(seed)
	}
}

// NewEngine creates a game on an empty width×height board with two freshly
// drawn pieces and a score of zero. Without options the picker is a uniform
// random picker with seed 0. Panics if either dimension is not positive.
func NewEngine(width, height int, opts ...Option) *Engine {
	e := &Engine{
		grid: NewGrid(width, height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(0)
	}

	e.current = e.draw()
	e.next = e.draw()
	e.spawn()
	return e
}

// draw pulls a new piece from the picker.
func (e *Engine) draw() Piece {
	return NewPiece(e.picker.Pick())
}

// spawn places the current piece centered at the top and ends the game if
// it does not fit there.
func (e *Engine) spawn() {
	e.current.X = spawnX(e.grid.Width(), e.current.Shape.Width())
	e.current.Y = 0
	if !e.IsValidPosition(e.current) {
		e.gameOver = true
	}
}

// IsValidPosition reports whether every occupied cell of p lies inside the
// side walls, above the floor and on an empty square. Cells above the top
// edge are allowed.
func (e *Engine) IsValidPosition(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= e.grid.Width() || c.Y >= e.grid.Height() {
			return false
		}
		if c.Y < 0 {
			continue
		}
		if e.grid.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Move shifts the current piece by (dx, dy). If the target position is
// invalid the piece stays where it was and Move returns false.
func (e *Engine) Move(dx, dy int) bool {
	if e.gameOver {
		return false
	}
	e.current.X += dx
	e.current.Y += dy
	if !e.IsValidPosition(e.current) {
		e.current.X -= dx
		e.current.Y -= dy
		return false
	}
	return true
}

// MoveLeft shifts the current piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.Move(-1, 0)
}

// MoveRight shifts the current piece one column right.
func (e *Engine) MoveRight() bool {
	return e.Move(1, 0)
}

// SoftDrop moves the current piece one row down without freezing it.
func (e *Engine) SoftDrop() bool {
	return e.Move(0, 1)
}

// Rotate turns the current piece a quarter turn in place. When the turned
// piece collides, three further quarter turns bring it back to the
// orientation it had, and Rotate returns false.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	e.current.Shape = Rotate(e.current.Shape)
	if e.IsValidPosition(e.current) {
		return true
	}
	e.current.Shape = Rotate(Rotate(Rotate(e.current.Shape)))
	return false
}

// Tick applies one step of gravity. It returns true if the piece fell one
// row; otherwise the piece is frozen, the next one spawns and Tick returns
// false.
func (e *Engine) Tick() bool {
	if e.gameOver {
		return false
	}
	if e.Move(0, 1) {
		return true
	}
	e.freeze()
	return false
}

// freeze writes the current piece into the board, clears full rows, scores
// them and promotes the preview piece.
func (e *Engine) freeze() {
	for _, c := range e.current.Cells() {
		e.grid.Set(c.X, c.Y, e.current.Color)
	}

	cleared := e.grid.ClearFullRows()
	e.score += cleared * PointsPerRow
	e.lines += cleared
	e.lastCleared = cleared
	e.pieces++

	e.current = e.next
	e.next = e.draw()
	e.spawn()
}

// Width returns the board width in cells.
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the board height in cells.
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Grid returns a snapshot of the settled cells as [row][col].
func (e *Engine) Grid() [][]Cell {
	return e.grid.Rows()
}

// Cell returns the settled cell at (x, y), or an empty cell out of bounds.
func (e *Engine) Cell(x, y int) Cell {
	return e.grid.At(x, y)
}

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece {
	return e.current.Clone()
}

// Next returns a copy of the preview piece. Its position is meaningless
// until it spawns.
func (e *Engine) Next() Piece {
	return e.next.Clone()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns how many pieces have been frozen.
func (e *Engine) Pieces() int {
	return e.pieces
}

// LastCleared returns the rows removed by the most recent freeze.
func (e *Engine) LastCleared() int {
	return e.lastCleared
}

// GameOver reports whether a spawned piece could not be placed.
func (e *Engine) GameOver() bool {
	return e.gameOver
}
