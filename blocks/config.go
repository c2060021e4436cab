package blocks

import (
	"errors"
	"fmt"
)

// Smallest board that can hold every spawn shape at the spawn anchor.
const (
	MinRows = 4
	MinCols = 4
)

// ErrInvalidConfig is returned when a board is constructed with dimensions
// the engine cannot play on.
var ErrInvalidConfig = errors.New("blocks: invalid config")

// Config holds the construction parameters of a game. CellSizePx is only
// read by renderers; 0 is accepted for headless games, and hosts that
// draw check it with ValidateDisplay.
type Config struct {
	Rows       int
	Cols       int
	CellSizePx int
}

// DefaultConfig returns the classic 20x10 board with 20 pixel cells.
func DefaultConfig() Config {
	return Config{
		Rows:       20,
		Cols:       10,
		CellSizePx: 20,
	}
}

// Validate reports whether the board dimensions are playable.
func (c Config) Validate() error {
	if c.Rows < MinRows {
		return fmt.Errorf("%w: rows %d below minimum %d", ErrInvalidConfig, c.Rows, MinRows)
	}
	if c.Cols < MinCols {
		return fmt.Errorf("%w: cols %d below minimum %d", ErrInvalidConfig, c.Cols, MinCols)
	}
	if c.CellSizePx < 0 {
		return fmt.Errorf("%w: negative cell size %d", ErrInvalidConfig, c.CellSizePx)
	}
	return nil
}

// ValidateDisplay is Validate plus a positive cell size.
func (c Config) ValidateDisplay() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CellSizePx <= 0 {
		return fmt.Errorf("%w: cell size must be positive to draw, got %d", ErrInvalidConfig, c.CellSizePx)
	}
	return nil
}
