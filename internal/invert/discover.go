package invert

import (
	"fmt"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
)

// botTrack is a position-only bot, just enough to replay Fission/Fusion
// choreography without touching a voxel grid.
type botTrack struct {
	id  int
	pos geom.Coord
}

// split records that primID fissioned off newID during a tick.
type split struct{ primID, newID int }

// merge records that primID absorbed secID during a tick.
type merge struct{ primID, secID int }

type tickChange struct {
	splits []split
	merges []merge
}

// discover replays trace at the fleet-position level, returning the
// ticks at which a Fission or a matched Fusion pair occurred. Bot
// identities here are synthetic, assigned in creation order starting
// from 2 — exactly mirroring the real engine's seed-based ids, which
// also increase monotonically in creation order.
func discover(trace tracefmt.Trace) (map[int]tickChange, error) {
	bots := []botTrack{{id: 1}}
	nextID := 2
	changes := make(map[int]tickChange)

	for t, group := range trace {
		if len(group) != len(bots) {
			return nil, fmt.Errorf("%w: tick %d has %d commands for %d live bots", ErrGroupSizeMismatch, t, len(group), len(bots))
		}

		var newBots []botTrack
		deadIDs := make(map[int]bool)
		var prims, secs []fusionTarget
		var splits []split

		for i, cmd := range group {
			switch cmd.Kind {
			case tracefmt.Fission:
				child := botTrack{id: nextID, pos: bots[i].pos.Add(cmd.D1)}
				newBots = append(newBots, child)
				splits = append(splits, split{primID: bots[i].id, newID: nextID})
				nextID++
			case tracefmt.SMove:
				bots[i].pos = bots[i].pos.Add(cmd.D1)
			case tracefmt.LMove:
				bots[i].pos = bots[i].pos.Add(cmd.D1).Add(cmd.D2)
			case tracefmt.FusionS:
				deadIDs[bots[i].id] = true
				secs = append(secs, fusionTarget{id: bots[i].id, target: bots[i].pos.Add(cmd.D1)})
			case tracefmt.FusionP:
				prims = append(prims, fusionTarget{id: bots[i].id, target: bots[i].pos.Add(cmd.D1)})
			}
		}

		var merges []merge
		for _, p := range prims {
			for _, se := range secs {
				primBot := findBot(bots, p.id)
				secBot := findBot(bots, se.id)
				if p.target == secBot.pos && se.target == primBot.pos {
					merges = append(merges, merge{primID: p.id, secID: se.id})
				}
			}
		}

		bots = append(bots, newBots...)
		if len(deadIDs) > 0 {
			kept := bots[:0]
			for _, b := range bots {
				if !deadIDs[b.id] {
					kept = append(kept, b)
				}
			}
			bots = kept
		}

		if len(splits) > 0 || len(merges) > 0 {
			changes[t] = tickChange{splits: splits, merges: merges}
		}
	}
	return changes, nil
}

type fusionTarget struct {
	id     int
	target geom.Coord
}

func findBot(bots []botTrack, id int) botTrack {
	for _, b := range bots {
		if b.id == id {
			return b
		}
	}
	return botTrack{}
}

// buildMapping assigns each bot id encountered in a merge a renamed id,
// processing ticks in descending time order so the last merges in forward
// time (the first fissions of the inverted trace) are named first —
// matching unprinter.py exactly.
func buildMapping(changes map[int]tickChange) map[int]int {
	mapping := map[int]int{1: 1}
	nextMapped := 2

	ticks := make([]int, 0, len(changes))
	for t := range changes {
		ticks = append(ticks, t)
	}
	sortDesc(ticks)

	for _, t := range ticks {
		for _, m := range changes[t].merges {
			if _, ok := mapping[m.primID]; !ok {
				mapping[m.primID] = nextMapped
				nextMapped++
			}
			if _, ok := mapping[m.secID]; !ok {
				mapping[m.secID] = nextMapped
				nextMapped++
			}
		}
	}
	return mapping
}

func sortDesc(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] < xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
