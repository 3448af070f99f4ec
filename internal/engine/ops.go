package engine

import (
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
)

// execute runs one popped Op against the shared grid and fleet. A
// precondition violation degrades b to Wait (queue cleared, no state
// change) rather than failing the tick; only Halt misuse is fatal.
func (s *State) execute(b *nbot.Bot, op nbot.Op) error {
	switch op.Kind {
	case nbot.Wait:
		s.trace(tracefmt.Command{Kind: tracefmt.Wait})
	case nbot.Flip:
		s.execFlip(b)
	case nbot.SMove:
		s.execSMove(b, op.D1)
	case nbot.LMove:
		s.execLMove(b, op.D1, op.D2)
	case nbot.Fission:
		s.execFission(b, op.D1, op.M)
	case nbot.FusionP:
		target := b.Pos.Add(op.D1)
		s.primaryFuse = append(s.primaryFuse, fusionClaim{bot: b, target: target})
		s.trace(tracefmt.Command{Kind: tracefmt.FusionP, D1: op.D1})
	case nbot.FusionS:
		target := b.Pos.Add(op.D1)
		s.secondaryFuse = append(s.secondaryFuse, fusionClaim{bot: b, target: target})
		s.trace(tracefmt.Command{Kind: tracefmt.FusionS, D1: op.D1})
	case nbot.Fill:
		s.execFill(b, op.D1)
	case nbot.Void:
		s.execVoid(b, op.D1)
	case nbot.GFill:
		s.execGFill(b, op.D1, op.D2)
	case nbot.GVoid:
		s.execGVoid(b, op.D1, op.D2)
	case nbot.Halt:
		if len(s.Bots) != 1 {
			return ErrHaltNotAlone
		}
		if b.Pos != (geom.Coord{}) {
			return ErrHaltNotHome
		}
		s.Halted = true
		s.trace(tracefmt.Command{Kind: tracefmt.Halt})
	}
	return nil
}

// trace appends a wire-format command to the current tick's group.
func (s *State) trace(cmd tracefmt.Command) {
	s.tickCommands = append(s.tickCommands, cmd)
}

// degrade clears b's queue and records a Wait in its place, the standard
// response to a precondition violated by stale planning.
func (s *State) degrade(b *nbot.Bot) {
	b.ClearQueue()
	b.InvalidateCache()
	s.ReplanCount++
	s.trace(tracefmt.Command{Kind: tracefmt.Wait})
}

func (s *State) reserved(c geom.Coord) bool {
	_, ok := s.currentMoves[c]
	return ok
}

func (s *State) reserve(c geom.Coord) {
	s.currentMoves[c] = struct{}{}
}

func (s *State) execFlip(b *nbot.Bot) {
	if s.HarmonicsHigh && s.Grid.UngroundedCount() > 0 {
		s.degrade(b)
		return
	}
	s.HarmonicsHigh = !s.HarmonicsHigh
	s.trace(tracefmt.Command{Kind: tracefmt.Flip})
}

// linearPath returns the cells a move of d from from passes through, in
// travel order: from itself is excluded and from+d is the last entry.
func linearPath(from geom.Coord, d geom.Diff) []geom.Coord {
	unit := d.Unit()
	n := d.MLen()
	cells := make([]geom.Coord, 0, n)
	cur := from
	for i := 0; i < n; i++ {
		cur = cur.Add(unit)
		cells = append(cells, cur)
	}
	return cells
}

func (s *State) execSMove(b *nbot.Bot, d geom.Diff) {
	path := linearPath(b.Pos, d)
	for _, c := range path {
		if !s.Grid.IsVoid(c) || s.reserved(c) {
			s.degrade(b)
			return
		}
	}
	if s.reserved(b.Pos) {
		s.degrade(b)
		return
	}

	dest := path[len(path)-1]
	s.Grid.ToggleBot(b.Pos)
	s.Grid.ToggleBot(dest)
	s.reserve(b.Pos)
	for _, c := range path {
		s.reserve(c)
	}
	b.Pos = dest
	s.Energy += 2 * d.MLen()
	s.trace(tracefmt.Command{Kind: tracefmt.SMove, D1: d})
}

func (s *State) execLMove(b *nbot.Bot, d1, d2 geom.Diff) {
	leg1 := linearPath(b.Pos, d1)
	corner := leg1[len(leg1)-1]
	leg2 := linearPath(corner, d2)

	all := append(append([]geom.Coord{}, leg1...), leg2...)
	for _, c := range all {
		if !s.Grid.IsVoid(c) || s.reserved(c) {
			s.degrade(b)
			return
		}
	}
	if s.reserved(b.Pos) {
		s.degrade(b)
		return
	}

	dest := leg2[len(leg2)-1]
	s.Grid.ToggleBot(b.Pos)
	s.Grid.ToggleBot(dest)
	s.reserve(b.Pos)
	for _, c := range all {
		s.reserve(c)
	}
	b.Pos = dest
	s.Energy += 2 * (d1.MLen() + 2 + d2.MLen())
	s.trace(tracefmt.Command{Kind: tracefmt.LMove, D1: d1, D2: d2})
}

func (s *State) execFission(b *nbot.Bot, nd geom.Diff, m int) {
	target := b.Pos.Add(nd)
	if !s.Grid.IsVoid(target) || s.reserved(target) || len(b.Seeds) < m+1 {
		s.degrade(b)
		return
	}
	newSeeds := append([]int(nil), b.Seeds[:m+1]...)
	b.Seeds = b.Seeds[m+1:]

	child := nbot.New(newSeeds[0], target, newSeeds[1:])
	s.Grid.ToggleBot(target)
	s.reserve(target)
	s.botsToAdd = append(s.botsToAdd, child)
	s.FissionCount++
	s.Energy += 24
	s.trace(tracefmt.Command{Kind: tracefmt.Fission, D1: nd, M: m})
}

func (s *State) execFill(b *nbot.Bot, nd geom.Diff) {
	target := b.Pos.Add(nd)
	if s.reserved(target) {
		s.degrade(b)
		return
	}
	if s.Grid.IsFull(target) {
		s.reserve(target)
		s.Energy += 6
		s.trace(tracefmt.Command{Kind: tracefmt.Fill, D1: nd})
		return
	}

	grounded := s.Grid.WouldBeGrounded(target)
	if !grounded && !s.HarmonicsHigh {
		s.degrade(b)
		return
	}
	if err := s.Grid.SetFull(target); err != nil {
		s.degrade(b)
		return
	}
	if grounded {
		s.Grid.SetGrounded(target)
		s.Grid.GroundAdjacent(target)
	} else {
		s.Grid.MarkUngrounded(target)
	}
	s.reserve(target)
	s.Energy += 12
	s.trace(tracefmt.Command{Kind: tracefmt.Fill, D1: nd})
}

func (s *State) execVoid(b *nbot.Bot, nd geom.Diff) {
	target := b.Pos.Add(nd)
	if s.reserved(target) || !s.Grid.IsFull(target) {
		s.degrade(b)
		return
	}
	if err := s.Grid.SetVoid(target); err != nil {
		s.degrade(b)
		return
	}
	s.reserve(target)
	s.Energy -= 12
	s.trace(tracefmt.Command{Kind: tracefmt.Void, D1: nd})
}

// regionCells enumerates every cell in the axis-aligned box between
// corner and corner+fd, inclusive of both ends.
func regionCells(corner geom.Coord, fd geom.Diff, r int) []geom.Coord {
	far := corner.Add(fd)
	minX, maxX := minMax(corner.X, far.X)
	minY, maxY := minMax(corner.Y, far.Y)
	minZ, maxZ := minMax(corner.Z, far.Z)
	var out []geom.Coord
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				c := geom.Coord{X: x, Y: y, Z: z}
				if c.InBounds(r) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// execGFill performs a best-effort bulk fill over the region: cells that
// are not currently void, or that would land ungrounded under LOW
// harmonics, are left untouched rather than degrading the whole command.
func (s *State) execGFill(b *nbot.Bot, nd, fd geom.Diff) {
	corner := b.Pos.Add(nd)
	for _, c := range regionCells(corner, fd, s.Grid.R) {
		if s.reserved(c) || !s.Grid.IsVoid(c) {
			continue
		}
		grounded := s.Grid.WouldBeGrounded(c)
		if !grounded && !s.HarmonicsHigh {
			continue
		}
		if err := s.Grid.SetFull(c); err != nil {
			continue
		}
		if grounded {
			s.Grid.SetGrounded(c)
			s.Grid.GroundAdjacent(c)
		} else {
			s.Grid.MarkUngrounded(c)
		}
		s.reserve(c)
	}
	s.Energy += 12
	s.trace(tracefmt.Command{Kind: tracefmt.GFill, D1: nd, D2: fd})
}

// execGVoid voids every currently Full cell in the region.
func (s *State) execGVoid(b *nbot.Bot, nd, fd geom.Diff) {
	corner := b.Pos.Add(nd)
	for _, c := range regionCells(corner, fd, s.Grid.R) {
		if s.reserved(c) || !s.Grid.IsFull(c) {
			continue
		}
		if err := s.Grid.SetVoid(c); err != nil {
			continue
		}
		s.reserve(c)
	}
	s.Energy -= 12
	s.trace(tracefmt.Command{Kind: tracefmt.GVoid, D1: nd, D2: fd})
}
