package blocks_test

import (
	"testing"

	"github.com/plus3/ferrisblocks/blocks"
	"github.com/stretchr/testify/assert"
)

func TestCoordArithmetic(t *testing.T) {
	a := blocks.Coord{X: 3, Y: -2}
	b := blocks.Coord{X: -1, Y: 5}

	assert.Equal(t, blocks.Coord{X: 2, Y: 3}, a.Add(b))
	assert.Equal(t, blocks.Coord{X: 4, Y: -7}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestShapeTable(t *testing.T) {
	expected := map[blocks.Kind]blocks.Cells{
		blocks.I: {{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		blocks.J: {{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		blocks.L: {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		blocks.O: {{0, -1}, {1, -1}, {1, 0}, {0, 0}},
		blocks.S: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		blocks.T: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		blocks.Z: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
	}

	for _, kind := range blocks.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := blocks.Shape(kind)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, expected[kind], p.Cells)

			seen := make(map[blocks.Coord]bool)
			for _, c := range p.Cells {
				assert.False(t, seen[c], "duplicate cell %v", c)
				seen[c] = true
			}
		})
	}
}

func TestShapeUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { blocks.Shape(blocks.Kind(7)) })
}

func TestRotateCells(t *testing.T) {
	cells := blocks.Cells{{1, 0}, {0, 1}, {-2, 3}, {0, 0}}
	assert.Equal(t, blocks.Cells{{0, -1}, {1, 0}, {3, 2}, {0, 0}}, blocks.RotateCells(cells))
}

func TestRotationHasOrderFour(t *testing.T) {
	for _, kind := range blocks.Kinds {
		if kind == blocks.O {
			continue
		}
		t.Run(kind.String(), func(t *testing.T) {
			p := blocks.Shape(kind)
			once := p.Rotated()
			assert.NotEqual(t, sortedCells(p.Cells), sortedCells(once.Cells))

			full := once.Rotated().Rotated().Rotated()
			assert.Equal(t, p, full)
		})
	}
}

func TestORotationKeepsShape(t *testing.T) {
	p := blocks.Shape(blocks.O)
	r := p.Rotated()

	// The square turns about a corner, so it is the same shape shifted by
	// one column.
	assert.Equal(t, normalized(p.Cells), normalized(r.Cells))
	assert.Equal(t, p.Cells, r.Rotated().Rotated().Rotated().Cells)
}

func TestGeneratorMapsDrawsToKinds(t *testing.T) {
	src := script(blocks.I, blocks.J, blocks.L, blocks.O, blocks.S, blocks.T, blocks.Z)
	gen := blocks.NewGenerator(src)

	for _, kind := range blocks.Kinds {
		assert.Equal(t, blocks.Shape(kind), gen.Next())
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := blocks.NewGenerator(blocks.NewRandomSource(42))
	b := blocks.NewGenerator(blocks.NewRandomSource(42))

	counts := make(map[blocks.Kind]int)
	for range 700 {
		pa, pb := a.Next(), b.Next()
		assert.Equal(t, pa, pb)
		counts[pa.Kind]++
	}

	// every kind shows up in a long enough run
	assert.Len(t, counts, len(blocks.Kinds))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "T", blocks.T.String())
	assert.Equal(t, "?", blocks.Kind(42).String())
}
