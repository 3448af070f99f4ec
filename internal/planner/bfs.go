package planner

import (
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// node is a BFS frontier entry carrying a parent pointer, grounded on the
// astarNode/reconstructPath shape; the open set here is a plain FIFO
// instead of a heap since every edge has unit cost.
type node struct {
	coord  geom.Coord
	parent *node
}

// FindPath returns the sequence of cells from start to goal, exclusive of
// start, over a 6-connected BFS through cells the grid reports void. An
// empty, nil-error result means start already equals goal. Returns
// ErrNoPath if no void corridor reaches goal.
func FindPath(g *voxel.Grid, start, goal geom.Coord) ([]geom.Coord, error) {
	if start == goal {
		return nil, nil
	}

	visited := map[geom.Coord]bool{start: true}
	queue := []*node{{coord: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range cur.coord.Adjacent6(g.R) {
			if visited[n] {
				continue
			}
			if !g.IsVoid(n) {
				continue
			}
			next := &node{coord: n, parent: cur}
			if n == goal {
				return reconstructPath(next), nil
			}
			visited[n] = true
			queue = append(queue, next)
		}
	}
	return nil, ErrNoPath
}

// reconstructPath walks parent pointers back to (but excluding) the root
// and returns the cells in travel order.
func reconstructPath(n *node) []geom.Coord {
	var rev []geom.Coord
	for cur := n; cur.parent != nil; cur = cur.parent {
		rev = append(rev, cur.coord)
	}
	out := make([]geom.Coord, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
