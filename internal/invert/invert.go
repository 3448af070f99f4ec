package invert

import (
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
)

// slot pairs a renamed bot id with the (already-substituted) command it
// performs during one tick, carried through the reorder-and-reverse step.
type slot struct {
	mappedID int
	cmd      tracefmt.Command
}

// mapID returns mapping's entry for id, defaulting to id itself: a bot
// that never takes part in a fusion keeps its original identity.
func mapID(mapping map[int]int, id int) int {
	if v, ok := mapping[id]; ok {
		return v
	}
	return id
}

// Invert turns an assembly trace into the trace that undoes it: the fleet
// ends where it started (one bot, full seed pool, at the origin) and the
// grid ends empty wherever the input trace left it full. Unless skipHalt
// is set, the result ends with a Halt: one is placed at the head of the
// command list before the final reversal (mirroring unprint's own Halt),
// so it becomes the inverted trace's terminal command.
func Invert(trace tracefmt.Trace, skipHalt bool) (tracefmt.Trace, error) {
	changes, err := discover(trace)
	if err != nil {
		return nil, err
	}
	mapping := buildMapping(changes)

	bots := []botTrack{{id: 1}}
	var flat []tracefmt.Command

	if !skipHalt {
		flat = append(flat, tracefmt.Command{Kind: tracefmt.Halt})
	}

	for t, group := range trace {
		buf := make([]slot, len(group))
		for i, cmd := range group {
			buf[i] = slot{mappedID: mapID(mapping, bots[i].id), cmd: cmd}
		}

		if ch, ok := changes[t]; ok {
			for _, sp := range ch.splits {
				primIdx := indexOfBot(bots, sp.primID)
				primPos := bots[primIdx].pos
				secPos := primPos.Add(buf[primIdx].cmd.D1)

				buf[primIdx].cmd = tracefmt.Command{Kind: tracefmt.FusionP, D1: secPos.Sub(primPos)}
				buf = append(buf, slot{
					mappedID: mapID(mapping, sp.newID),
					cmd:      tracefmt.Command{Kind: tracefmt.FusionS, D1: primPos.Sub(secPos)},
				})
				bots = append(bots, botTrack{id: sp.newID, pos: secPos})
			}

			for _, m := range ch.merges {
				primIdx := indexOfBot(bots, m.primID)
				secIdx := indexOfBot(bots, m.secID)
				diff := bots[secIdx].pos.Sub(bots[primIdx].pos)

				buf[primIdx].cmd = tracefmt.Command{Kind: tracefmt.Fission, D1: diff}
				buf = removeBufIndex(buf, secIdx)
				bots = removeBotIndex(bots, secIdx)
			}
		}

		for i := range buf {
			bi := indexOfMapped(bots, mapping, buf[i].mappedID)
			switch buf[i].cmd.Kind {
			case tracefmt.SMove:
				bots[bi].pos = bots[bi].pos.Add(buf[i].cmd.D1)
			case tracefmt.LMove:
				bots[bi].pos = bots[bi].pos.Add(buf[i].cmd.D1).Add(buf[i].cmd.D2)
			}
		}

		sortSlotsDesc(buf)
		haltedThisTick := false
		for _, s := range buf {
			if s.cmd.Kind == tracefmt.Halt {
				// The original trace's own terminal Halt marks where
				// assembly finished, not where disassembly should halt;
				// the prepended Halt above already supplies that command
				// once the whole sequence is reversed.
				haltedThisTick = true
				continue
			}
			flat = append(flat, invertCommand(s.cmd))
		}
		if haltedThisTick {
			break
		}
	}

	reverseCommands(flat)
	return regroup(flat), nil
}

func indexOfBot(bots []botTrack, id int) int {
	for i, b := range bots {
		if b.id == id {
			return i
		}
	}
	return -1
}

// indexOfMapped returns the index into bots whose mapped id equals mapped,
// searching by original id since bots are tracked under original ids.
func indexOfMapped(bots []botTrack, mapping map[int]int, mapped int) int {
	for i, b := range bots {
		if mapID(mapping, b.id) == mapped {
			return i
		}
	}
	return -1
}

func removeBufIndex(buf []slot, idx int) []slot {
	out := make([]slot, 0, len(buf)-1)
	out = append(out, buf[:idx]...)
	out = append(out, buf[idx+1:]...)
	return out
}

func removeBotIndex(bots []botTrack, idx int) []botTrack {
	out := make([]botTrack, 0, len(bots)-1)
	out = append(out, bots[:idx]...)
	out = append(out, bots[idx+1:]...)
	return out
}

func sortSlotsDesc(buf []slot) {
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && buf[j-1].mappedID < buf[j].mappedID; j-- {
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
}

// invertCommand returns the inverse of cmd. Fission/FusionP/FusionS pass
// through unchanged: the splits/merges preprocessing above already
// substituted the correct command kind for these.
func invertCommand(cmd tracefmt.Command) tracefmt.Command {
	switch cmd.Kind {
	case tracefmt.SMove:
		return tracefmt.Command{Kind: tracefmt.SMove, D1: cmd.D1.Neg()}
	case tracefmt.LMove:
		return tracefmt.Command{Kind: tracefmt.LMove, D1: cmd.D2.Neg(), D2: cmd.D1.Neg()}
	case tracefmt.Fill:
		return tracefmt.Command{Kind: tracefmt.Void, D1: cmd.D1}
	case tracefmt.Void:
		return tracefmt.Command{Kind: tracefmt.Fill, D1: cmd.D1}
	case tracefmt.GFill:
		return tracefmt.Command{Kind: tracefmt.GVoid, D1: cmd.D1, D2: cmd.D2}
	case tracefmt.GVoid:
		return tracefmt.Command{Kind: tracefmt.GFill, D1: cmd.D1, D2: cmd.D2}
	default:
		return cmd
	}
}

func reverseCommands(cmds []tracefmt.Command) {
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
}

// regroup re-derives tick-group boundaries for a flat, already-reversed
// command sequence by tracking fleet size exactly as tracefmt.Decode does.
func regroup(cmds []tracefmt.Command) tracefmt.Trace {
	var t tracefmt.Trace
	fleet := 1
	i := 0
	for i < len(cmds) {
		group := make([]tracefmt.Command, 0, fleet)
		fissions, fusions := 0, 0
		for len(group) < fleet && i < len(cmds) {
			c := cmds[i]
			group = append(group, c)
			i++
			switch c.Kind {
			case tracefmt.Fission:
				fissions++
			case tracefmt.FusionP:
				fusions++
			}
		}
		t = append(t, group)
		fleet += fissions - fusions
	}
	return t
}
