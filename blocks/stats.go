package blocks

import "github.com/kamstrup/intmap"

// Stats counts what happened over the life of a game.
type Stats struct {
	spawned *intmap.Map[Kind, uint32]
	clears  *intmap.Map[int, uint32]
	locks   uint32
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, uint32](len(Kinds)),
		clears:  intmap.New[int, uint32](len(clearScores)),
	}
}

func (s *Stats) recordSpawn(kind Kind) {
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locks++
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
}

// Spawned returns how many pieces of kind became active, including the
// lookahead piece once it is promoted.
func (s *Stats) Spawned(kind Kind) uint32 {
	n, _ := s.spawned.Get(kind)
	return n
}

// Locks returns the number of pieces committed to the grid.
func (s *Stats) Locks() uint32 {
	return s.locks
}

// Clears returns how many locks removed exactly rows rows.
func (s *Stats) Clears(rows int) uint32 {
	n, _ := s.clears.Get(rows)
	return n
}
