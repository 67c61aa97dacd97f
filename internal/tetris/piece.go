package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a shape with its color and the grid position of the shape's
// top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece creates a piece of the given kind in spawn orientation at the origin.
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: ShapeOf(k),
		Color: k.Color(),
	}
}

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

// Cells returns the absolute coordinates of every occupied shape cell,
// ordered by row then column.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				pts = append(pts, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return pts
}

// Clone returns a copy that shares no shape storage with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// spawnX returns the column that centers a shape of the given width.
func spawnX(gridW, shapeW int) int {
	return gridW/2 - shapeW/2
}
