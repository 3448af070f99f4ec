package fillplan

import (
	"sort"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// cacheInvalidationDistance is how far a bot may drift from the cached
// anchor before its candidate list is considered stale.
const cacheInvalidationDistance = 4

// NextFill returns the next model cell bot should fill, or (Coord{},
// false) if nothing in its cached candidate list is currently fillable.
// A false result means the caller should synchronize the fleet layer by
// layer (see SynchronizeLayer) before asking again.
func NextFill(bot *nbot.Bot, grid *voxel.Grid) (geom.Coord, bool) {
	if !bot.Cache.Valid || bot.Pos.Sub(bot.Cache.Anchor).MLen() > cacheInvalidationDistance {
		rebuildCache(bot, grid)
	}
	for _, c := range bot.Cache.Coords {
		if grid.IsFull(c) {
			continue
		}
		if grid.WouldBeGrounded(c) {
			return c, true
		}
		// A candidate bot is standing on is never "would be grounded" as
		// far as the grid is concerned, since WouldBeGrounded treats any
		// occupied cell as unfillable. But the bot itself is about to
		// vacate it to fill from a neighbor, so judge groundedness as if
		// it already had: the origin-cell case (spec scenario 2) would
		// otherwise have no candidate at all.
		if c == bot.Pos && groundedIgnoringOccupant(grid, c) {
			return c, true
		}
	}
	return geom.Coord{}, false
}

// NextFillAny returns the next model cell bot should fill without
// requiring groundedness, for use once the caller has already flipped
// harmonics to HIGH and an ungrounded fill is the only way to make
// progress. It still skips cells a bot occupies, since a bot can never
// fill its own cell regardless of harmonics.
func NextFillAny(bot *nbot.Bot, grid *voxel.Grid) (geom.Coord, bool) {
	if !bot.Cache.Valid || bot.Pos.Sub(bot.Cache.Anchor).MLen() > cacheInvalidationDistance {
		rebuildCache(bot, grid)
	}
	for _, c := range bot.Cache.Coords {
		if grid.IsFull(c) || grid.IsBot(c) {
			continue
		}
		return c, true
	}
	return geom.Coord{}, false
}

func groundedIgnoringOccupant(grid *voxel.Grid, c geom.Coord) bool {
	if c.Y == 0 {
		return true
	}
	for _, n := range c.Adjacent6(grid.R) {
		if grid.IsGrounded(n) {
			return true
		}
	}
	return false
}

func rebuildCache(bot *nbot.Bot, grid *voxel.Grid) {
	region := bot.Region
	if region.MaxX == 0 && region.MaxZ == 0 {
		region = geom.FullRect(grid.R)
	}

	var candidates []geom.Coord
	for _, c := range grid.ModelCoords() {
		if region.Contains(c) {
			candidates = append(candidates, c)
		}
	}

	pos := bot.Pos
	sort.Slice(candidates, func(i, j int) bool {
		return score(pos, candidates[i], grid.R) < score(pos, candidates[j], grid.R)
	})

	bot.Cache = nbot.FillCache{Anchor: pos, Coords: candidates, Valid: true}
}

// score biases lower-y candidates first so the filled region grows as a
// monotone, always-groundable frontier.
func score(pos, c geom.Coord, r int) int {
	manhattan := pos.Sub(c).MLen()
	return manhattan + r*abs(c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SynchronizeLayer returns the lowest y among bots strictly above cur,
// used to nudge a stalled bot up one layer so the fleet fills bottom-up
// in lockstep. ok is false if no bot sits higher.
func SynchronizeLayer(bots []*nbot.Bot, cur int) (int, bool) {
	best := -1
	found := false
	for _, b := range bots {
		if b.Pos.Y > cur && (!found || b.Pos.Y < best) {
			best = b.Pos.Y
			found = true
		}
	}
	return best, found
}
