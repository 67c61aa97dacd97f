// Package tetris implements the falling-block puzzle engine: the shape
// catalog, the board, piece movement and rotation, freezing, line clears
// and scoring. It contains no terminal code; the platform layer drives it
// through Engine commands or the frame-based Game adapter.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven piece variants.
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindS
	KindZ
	KindL
	KindJ
)

// KindCount is the number of piece variants.
const KindCount = 7

// Kinds lists every variant in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindT, KindO, KindS, KindZ, KindL, KindJ}
}

// Shape is a rectangular occupancy matrix indexed [row][col].
// Shapes are treated as immutable: every operation returns a new matrix.
type Shape [][]bool

// catalog is the fixed shape and color table. It is never handed out
// directly; ShapeOf returns copies.
var catalog = [KindCount]struct {
	name  string
	rows  []string
	color core.Color
}{
	KindI: {"I", []string{"1111"}, core.ColorCyan},
	KindT: {"T", []string{"111", "010"}, core.ColorPurple},
	KindO: {"O", []string{"11", "11"}, core.ColorYellow},
	KindS: {"S", []string{"011", "110"}, core.ColorGreen},
	KindZ: {"Z", []string{"110", "011"}, core.ColorRed},
	KindL: {"L", []string{"111", "100"}, core.ColorOrange},
	KindJ: {"J", []string{"111", "001"}, core.ColorBlue},
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return "?"
	}
	return catalog[k].name
}

// Color returns the display color paired with the kind.
func (k Kind) Color() core.Color {
	if int(k) >= KindCount {
		return core.ColorDefault
	}
	return catalog[k].color
}

// ShapeOf returns a fresh copy of the spawn orientation for the kind.
func ShapeOf(k Kind) Shape {
	if int(k) >= KindCount {
		return nil
	}
	return ParseShape(catalog[k].rows...)
}

// ParseShape builds a shape from rows of '1' (occupied) and any other
// character (empty). Rows shorter than the first are padded as empty.
func ParseShape(rows ...string) Shape {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, width)
		for x := 0; x < width && x < len(row); x++ {
			s[y][x] = row[x] == '1'
		}
	}
	return s
}

// Rotate returns a new shape turned a quarter turn.
// An R×C input yields a C×R output with out[x][y] = in[y][C-1-x].
// Four rotations give back a matrix equal to the input.
func Rotate(s Shape) Shape {
	rows := s.Height()
	cols := s.Width()
	out := make(Shape, cols)
	for x := 0; x < cols; x++ {
		out[x] = make([]bool, rows)
		for y := 0; y < rows; y++ {
			out[x][y] = s[y][cols-1-x]
		}
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same size and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape as rows of '1' and '0' separated by '/'.
func (s Shape) String() string {
	b := make([]byte, 0, s.Height()*(s.Width()+1))
	for y, row := range s {
		if y > 0 {
			b = append(b, '/')
		}
		for _, filled := range row {
			if filled {
				b = append(b, '1')
			} else {
				b = append(b, '0')
			}
		}
	}
	return string(b)
}
