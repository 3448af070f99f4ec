// Package fillplan decides, for a single bot, which model cell it should
// fill next.
//
// What: BuildRegions partitions the (x,z) plane across the fleet once,
// after fission has finished expanding it, so bots do not contend over
// the same stretch of model; NextFill returns the best candidate cell
// within a bot's region, using a cached and periodically invalidated
// sort so repeated calls don't rescan the whole grid.
//
// Why: grounded on a prioritized-assignment solver's sort-once,
// assign-by-priority approach — recompute only when state has moved
// enough to invalidate the ordering.
//
// Complexity: BuildRegions is O(bots log bots); NextFill is O(candidates log
// candidates) on a cache rebuild, O(candidates) otherwise.
package fillplan
