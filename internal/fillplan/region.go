package fillplan

import (
	"sort"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
)

// BuildRegions partitions [0,R) along X into one stripe per bot and
// assigns each bot the full Z extent within its stripe. Called once after
// fission has finished expanding the fleet; an unassigned bot (Region
// left zero) falls back to the full plane in NextFill.
func BuildRegions(bots []*nbot.Bot, r int) {
	if len(bots) == 0 {
		return
	}
	ordered := append([]*nbot.Bot(nil), bots...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	n := len(ordered)
	width := (r + n - 1) / n
	for i, b := range ordered {
		minX := i * width
		maxX := minX + width
		if maxX > r {
			maxX = r
		}
		b.Region = geom.Rect{MinX: minX, MaxX: maxX, MinZ: 0, MaxZ: r}
		b.InvalidateCache()
	}
}
