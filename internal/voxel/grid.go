package voxel

import (
	"fmt"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
)

// Flags is the 4-bit per-cell state: Full, Grounded, Model, Bot.
type Flags uint8

const (
	Full Flags = 1 << iota
	Grounded
	Model
	Bot
)

// Grid is the dense R x R x R occupancy plane.
type Grid struct {
	R     int
	cells []Flags

	ungrounded map[geom.Coord]struct{}

	nFull        int
	nFullDirty   bool
	nModel       int
	nModelDirty  bool
	nGround      int
	nGroundDirty bool
	bounds       geom.Box
	boundsDirty  bool
}

// New creates an empty RxRxR grid.
func New(r int) *Grid {
	return &Grid{
		R:            r,
		cells:        make([]Flags, r*r*r),
		ungrounded:   make(map[geom.Coord]struct{}),
		nFullDirty:   true,
		nModelDirty:  true,
		nGroundDirty: true,
		boundsDirty:  true,
	}
}

// index maps a coordinate to its offset in the flag plane: y slowest, x
// middle, z fastest, matching the .mdl file's bit enumeration order.
func (g *Grid) index(c geom.Coord) int {
	return c.Y*g.R*g.R + c.X*g.R + c.Z
}

func (g *Grid) checkBounds(c geom.Coord) error {
	if !c.InBounds(g.R) {
		return fmt.Errorf("%w: %v (R=%d)", ErrOutOfBounds, c, g.R)
	}
	return nil
}

// At returns the flags at c.
func (g *Grid) At(c geom.Coord) (Flags, error) {
	if err := g.checkBounds(c); err != nil {
		return 0, err
	}
	return g.cells[g.index(c)], nil
}

// IsFull reports whether c is Full. Out-of-bounds coordinates report false.
func (g *Grid) IsFull(c geom.Coord) bool {
	f, err := g.At(c)
	return err == nil && f&Full != 0
}

// IsBot reports whether c currently holds a bot.
func (g *Grid) IsBot(c geom.Coord) bool {
	f, err := g.At(c)
	return err == nil && f&Bot != 0
}

// IsVoid reports whether c is neither Full nor occupied by a bot.
func (g *Grid) IsVoid(c geom.Coord) bool {
	f, err := g.At(c)
	return err == nil && f&(Full|Bot) == 0
}

// IsModel reports whether c belongs to the target shape.
func (g *Grid) IsModel(c geom.Coord) bool {
	f, err := g.At(c)
	return err == nil && f&Model != 0
}

// IsGrounded reports whether c is marked grounded. Well-defined only when c is Full.
func (g *Grid) IsGrounded(c geom.Coord) bool {
	f, err := g.At(c)
	return err == nil && f&Grounded != 0
}

// SetModel marks c as belonging to the target model. Called only during load.
func (g *Grid) SetModel(c geom.Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[g.index(c)] |= Model
	g.nModelDirty = true
	g.boundsDirty = true
	return nil
}

// ToggleBot flips the Bot flag at c, used when a bot enters or leaves a voxel.
func (g *Grid) ToggleBot(c geom.Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[g.index(c)] ^= Bot
	return nil
}

// SetFull marks c as Full. c must not already be Full.
func (g *Grid) SetFull(c geom.Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	i := g.index(c)
	if g.cells[i]&Full != 0 {
		return fmt.Errorf("%w: %v", ErrAlreadyFull, c)
	}
	g.cells[i] |= Full
	g.nFullDirty = true
	return nil
}

// SetVoid clears Full at c. c must currently be Full.
func (g *Grid) SetVoid(c geom.Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	i := g.index(c)
	if g.cells[i]&Full == 0 {
		return fmt.Errorf("%w: %v", ErrNotFull, c)
	}
	g.cells[i] &^= Full | Grounded
	g.nFullDirty = true
	g.nGroundDirty = true
	delete(g.ungrounded, c)
	return nil
}

// SetGrounded marks c as grounded. Idempotent.
func (g *Grid) SetGrounded(c geom.Coord) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	i := g.index(c)
	if g.cells[i]&Grounded == 0 {
		g.cells[i] |= Grounded
		g.nGroundDirty = true
	}
	delete(g.ungrounded, c)
	return nil
}

// MarkUngrounded records c as a Full-but-ungrounded cell, permitted only
// while harmonics is HIGH.
func (g *Grid) MarkUngrounded(c geom.Coord) {
	g.ungrounded[c] = struct{}{}
}

// UngroundedCount returns the number of cells awaiting groundedness.
func (g *Grid) UngroundedCount() int {
	return len(g.ungrounded)
}

// WouldBeGrounded reports whether c would become grounded if filled right
// now: c holds no bot, and either y=0 or some 6-neighbor is already grounded.
func (g *Grid) WouldBeGrounded(c geom.Coord) bool {
	if g.IsBot(c) {
		return false
	}
	if c.Y == 0 {
		return true
	}
	for _, n := range c.Adjacent6(g.R) {
		if g.IsGrounded(n) {
			return true
		}
	}
	return false
}

// GroundAdjacent propagates groundedness depth-first, with an explicit
// stack, from gc over Full,
// not-yet-Grounded 6-neighbors, marking each one Grounded and removing it
// from the ungrounded set. Call after every fill that is itself grounded.
func (g *Grid) GroundAdjacent(gc geom.Coord) error {
	stack := []geom.Coord{gc}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range cur.Adjacent6(g.R) {
			if g.IsFull(n) && !g.IsGrounded(n) {
				if err := g.SetGrounded(n); err != nil {
					return err
				}
				stack = append(stack, n)
			}
		}
	}
	return nil
}

// FullCount returns the number of Full cells, recomputing from the flag
// plane if the cache was invalidated by a write.
func (g *Grid) FullCount() int {
	if g.nFullDirty {
		g.nFull = g.countFlag(Full)
		g.nFullDirty = false
	}
	return g.nFull
}

// ModelCount returns the number of Model cells.
func (g *Grid) ModelCount() int {
	if g.nModelDirty {
		g.nModel = g.countFlag(Model)
		g.nModelDirty = false
	}
	return g.nModel
}

// GroundedCount returns the number of Grounded cells.
func (g *Grid) GroundedCount() int {
	if g.nGroundDirty {
		g.nGround = g.countFlag(Grounded)
		g.nGroundDirty = false
	}
	return g.nGround
}

func (g *Grid) countFlag(f Flags) int {
	n := 0
	for _, v := range g.cells {
		if v&f != 0 {
			n++
		}
	}
	return n
}

// Bounds returns the tight axis-aligned box of Model cells, computed lazily
// on first use and cached. Returns the zero Box if no cell is Model.
func (g *Grid) Bounds() geom.Box {
	if g.boundsDirty {
		g.bounds = g.computeBounds()
		g.boundsDirty = false
	}
	return g.bounds
}

func (g *Grid) computeBounds() geom.Box {
	first := true
	var b geom.Box
	for y := 0; y < g.R; y++ {
		for x := 0; x < g.R; x++ {
			for z := 0; z < g.R; z++ {
				c := geom.Coord{X: x, Y: y, Z: z}
				if !g.IsModel(c) {
					continue
				}
				if first {
					b = geom.Box{MinX: x, MaxX: x + 1, MinY: y, MaxY: y + 1, MinZ: z, MaxZ: z + 1}
					first = false
					continue
				}
				if x < b.MinX {
					b.MinX = x
				}
				if x+1 > b.MaxX {
					b.MaxX = x + 1
				}
				if y < b.MinY {
					b.MinY = y
				}
				if y+1 > b.MaxY {
					b.MaxY = y + 1
				}
				if z < b.MinZ {
					b.MinZ = z
				}
				if z+1 > b.MaxZ {
					b.MaxZ = z + 1
				}
			}
		}
	}
	return b
}

// MatchesModel reports whether the set of Full cells exactly equals the
// set of Model cells: the terminal condition for a completed assembly.
func (g *Grid) MatchesModel() bool {
	if g.FullCount() != g.ModelCount() {
		return false
	}
	for y := 0; y < g.R; y++ {
		for x := 0; x < g.R; x++ {
			for z := 0; z < g.R; z++ {
				c := geom.Coord{X: x, Y: y, Z: z}
				if g.IsFull(c) != g.IsModel(c) {
					return false
				}
			}
		}
	}
	return true
}

// ModelCoords returns every Model cell with Full clear, in the ascending
// (y,x,z) enumeration order of the grid's native layout.
func (g *Grid) ModelCoords() []geom.Coord {
	var out []geom.Coord
	for y := 0; y < g.R; y++ {
		for x := 0; x < g.R; x++ {
			for z := 0; z < g.R; z++ {
				c := geom.Coord{X: x, Y: y, Z: z}
				if g.IsModel(c) && !g.IsFull(c) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}
