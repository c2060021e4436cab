package blocks

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every piece kind in the order the generator indexes them.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Cells holds the four pivot-relative offsets of a piece.
type Cells [4]Coord

// Piece is a shape kind together with its current orientation.
type Piece struct {
	Kind  Kind
	Cells Cells
}

var shapes = [len(Kinds)]Cells{
	I: {{0, -2}, {0, -1}, {0, 0}, {0, 1}},
	J: {{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
	L: {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
	O: {{0, -1}, {1, -1}, {1, 0}, {0, 0}},
	S: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
	T: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
	Z: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
}

// Shape returns the spawn orientation of kind. It panics on an unknown kind.
func Shape(kind Kind) Piece {
	if int(kind) >= len(shapes) {
		panic(fmt.Sprintf("blocks: unknown piece kind %d", kind))
	}
	return Piece{Kind: kind, Cells: shapes[kind]}
}

// RotateCells turns every offset a quarter turn about the pivot,
// mapping (x, y) to (y, -x).
func RotateCells(cells Cells) Cells {
	var rotated Cells
	for i, c := range cells {
		rotated[i] = Coord{X: c.Y, Y: -c.X}
	}
	return rotated
}

// Rotated returns a copy of p turned a quarter turn. Validity against a
// grid is checked separately.
func (p Piece) Rotated() Piece {
	return Piece{Kind: p.Kind, Cells: RotateCells(p.Cells)}
}

// Generator draws pieces uniformly at random from a RandomSource.
type Generator struct {
	src RandomSource
}

// NewGenerator returns a generator drawing from src.
func NewGenerator(src RandomSource) *Generator {
	return &Generator{src: src}
}

// Next returns the spawn shape of a uniformly drawn kind.
func (g *Generator) Next() Piece {
	return Shape(Kinds[g.src.IntN(len(Kinds))])
}
