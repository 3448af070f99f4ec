package verify

import (
	"fmt"
	"sort"

	"github.com/elektrokombinacija/nanoforge/internal/engine"
	"github.com/elektrokombinacija/nanoforge/internal/geom"
)

// Violation is one invariant failure found by CheckInvariants.
type Violation struct {
	Kind   string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
}

// CheckInvariants inspects s and returns every violation of the four
// fleet/grid invariants: no two bots share a cell, no cell is both FULL
// and BOT, LOW harmonics implies no ungrounded FULL cell, and the live
// fleet's ids plus unclaimed seeds partition {1..40} exactly.
func CheckInvariants(s *engine.State) []Violation {
	var out []Violation
	out = append(out, checkDistinctPositions(s)...)
	out = append(out, checkNoFullBot(s)...)
	out = append(out, checkHarmonics(s)...)
	out = append(out, checkSeedPartition(s)...)
	return out
}

type botPos struct {
	id  int
	pos geom.Coord
}

func checkDistinctPositions(s *engine.State) []Violation {
	var violations []Violation
	positions := make([]botPos, 0, len(s.Bots))
	for _, b := range s.Bots {
		positions = append(positions, botPos{id: b.ID, pos: b.Pos})
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].id < positions[j].id })

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if positions[i].pos == positions[j].pos {
				violations = append(violations, Violation{
					Kind:   "shared-cell",
					Detail: fmt.Sprintf("bots %d and %d both at %v", positions[i].id, positions[j].id, positions[i].pos),
				})
			}
		}
	}
	return violations
}

func checkNoFullBot(s *engine.State) []Violation {
	var violations []Violation
	r := s.Grid.R
	for x := 0; x < r; x++ {
		for y := 0; y < r; y++ {
			for z := 0; z < r; z++ {
				c := geom.Coord{X: x, Y: y, Z: z}
				if s.Grid.IsFull(c) && s.Grid.IsBot(c) {
					violations = append(violations, Violation{
						Kind:   "full-and-bot",
						Detail: fmt.Sprintf("%v is both FULL and BOT", c),
					})
				}
			}
		}
	}
	return violations
}

func checkHarmonics(s *engine.State) []Violation {
	if s.HarmonicsHigh {
		return nil
	}
	if n := s.Grid.UngroundedCount(); n > 0 {
		return []Violation{{
			Kind:   "low-harmonics-ungrounded",
			Detail: fmt.Sprintf("%d ungrounded FULL cells under LOW harmonics", n),
		}}
	}
	return nil
}

// maxFleetID is the contest-fixed upper bound: seeds 1..40.
const maxFleetID = 40

func checkSeedPartition(s *engine.State) []Violation {
	seen := make(map[int]bool, maxFleetID)
	var violations []Violation
	note := func(id int) {
		if id < 1 || id > maxFleetID {
			violations = append(violations, Violation{
				Kind:   "id-out-of-range",
				Detail: fmt.Sprintf("id %d outside 1..%d", id, maxFleetID),
			})
			return
		}
		if seen[id] {
			violations = append(violations, Violation{
				Kind:   "id-claimed-twice",
				Detail: fmt.Sprintf("id %d held by more than one bot/seed", id),
			})
		}
		seen[id] = true
	}

	for _, b := range s.Bots {
		note(b.ID)
		for _, seed := range b.Seeds {
			note(seed)
		}
	}

	for id := 1; id <= maxFleetID; id++ {
		if !seen[id] {
			violations = append(violations, Violation{
				Kind:   "id-unclaimed",
				Detail: fmt.Sprintf("id %d held by no bot or seed", id),
			})
		}
	}
	return violations
}
