package planner

import (
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
)

const (
	maxSMove    = 15
	maxLMoveLeg = 5
)

// run is a maximal collinear stretch of unit steps in the same direction.
type run struct {
	unit   geom.Diff
	length int
}

// Compress turns a cell-by-cell path (as returned by FindPath, start
// excluded) into the minimum number of SMove/LMove ops, preferring fewer
// commands and never reordering steps across a turn.
func Compress(start geom.Coord, path []geom.Coord) []nbot.Op {
	runs := toRuns(start, path)

	var ops []nbot.Op
	for i := 0; i < len(runs); {
		r := runs[i]
		for r.length > maxSMove {
			ops = append(ops, smoveOp(r.unit, maxSMove))
			r.length -= maxSMove
		}
		if r.length <= maxLMoveLeg && i+1 < len(runs) && runs[i+1].length <= maxLMoveLeg {
			ops = append(ops, lmoveOp(r.unit, r.length, runs[i+1].unit, runs[i+1].length))
			i += 2
			continue
		}
		ops = append(ops, smoveOp(r.unit, r.length))
		i++
	}
	return ops
}

func toRuns(start geom.Coord, path []geom.Coord) []run {
	var runs []run
	prev := start
	for _, c := range path {
		d := c.Sub(prev)
		if len(runs) > 0 && runs[len(runs)-1].unit == d {
			runs[len(runs)-1].length++
		} else {
			runs = append(runs, run{unit: d, length: 1})
		}
		prev = c
	}
	return runs
}

func smoveOp(unit geom.Diff, length int) nbot.Op {
	return nbot.Op{Kind: nbot.SMove, D1: unit.Mul(length)}
}

func lmoveOp(unit1 geom.Diff, len1 int, unit2 geom.Diff, len2 int) nbot.Op {
	return nbot.Op{Kind: nbot.LMove, D1: unit1.Mul(len1), D2: unit2.Mul(len2)}
}
