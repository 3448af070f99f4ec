package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func TestSolveTwoAdjacentCells(t *testing.T) {
	grid := voxel.New(4)
	require.NoError(t, grid.SetModel(geom.Coord{X: 1}))
	require.NoError(t, grid.SetModel(geom.Coord{Z: 1}))

	d := New(grid)
	trace, metrics, err := d.Solve()
	require.NoError(t, err)

	assert.True(t, d.State.Halted)
	assert.True(t, grid.MatchesModel())
	assert.Equal(t, 1, len(d.State.Bots))
	assert.Equal(t, geom.Coord{}, d.State.Bots[0].Pos)
	assert.NotEmpty(t, trace)
	assert.Greater(t, metrics.Energy, 0)
}

func TestSolveEmptyModelJustHalts(t *testing.T) {
	grid := voxel.New(3)
	d := New(grid)

	_, _, err := d.Solve()
	require.NoError(t, err)
	assert.True(t, d.State.Halted)
}

// TestSolveOffsetSingleCell is spec concrete scenario 1: R=3, MODEL={(1,0,1)}.
func TestSolveOffsetSingleCell(t *testing.T) {
	grid := voxel.New(3)
	require.NoError(t, grid.SetModel(geom.Coord{X: 1, Y: 0, Z: 1}))

	d := New(grid)
	trace, metrics, err := d.Solve()
	require.NoError(t, err)

	assert.True(t, d.State.Halted)
	assert.True(t, grid.MatchesModel())
	assert.Equal(t, 1, grid.FullCount())
	assert.Equal(t, geom.Coord{}, d.State.Bots[0].Pos)
	assert.NotEmpty(t, trace)
	assert.Greater(t, metrics.Energy, 0)
}

// TestSolveOriginCell is spec concrete scenario 2: R=3, MODEL={(0,0,0)}. The
// origin bot cannot fill the cell it stands on; the driver must smove it
// off first and fill back in.
func TestSolveOriginCell(t *testing.T) {
	grid := voxel.New(3)
	require.NoError(t, grid.SetModel(geom.Coord{}))

	d := New(grid)
	trace, metrics, err := d.Solve()
	require.NoError(t, err)

	assert.True(t, d.State.Halted)
	assert.True(t, grid.MatchesModel())
	assert.Equal(t, 1, grid.FullCount())
	assert.Equal(t, geom.Coord{}, d.State.Bots[0].Pos)
	assert.NotEmpty(t, trace)
	assert.Greater(t, metrics.Energy, 0)
}

// TestSolveColumnFillsBottomUp is spec concrete scenario 3: R=4, a column at
// x=1,z=1 over y in {0,1,2}. Under LOW harmonics every fill must already be
// grounded, which for a single column forces bottom-up order.
func TestSolveColumnFillsBottomUp(t *testing.T) {
	grid := voxel.New(4)
	require.NoError(t, grid.SetModel(geom.Coord{X: 1, Y: 0, Z: 1}))
	require.NoError(t, grid.SetModel(geom.Coord{X: 1, Y: 1, Z: 1}))
	require.NoError(t, grid.SetModel(geom.Coord{X: 1, Y: 2, Z: 1}))

	d := New(grid)
	_, _, err := d.Solve()
	require.NoError(t, err)

	assert.True(t, grid.MatchesModel())
	assert.False(t, d.State.HarmonicsHigh)

	var filledY []int
	pos := geom.Coord{}
	for _, tick := range d.State.Trace {
		for _, cmd := range tick {
			switch cmd.Kind {
			case tracefmt.SMove:
				pos = pos.Add(cmd.D1)
			case tracefmt.LMove:
				pos = pos.Add(cmd.D1).Add(cmd.D2)
			case tracefmt.Fill:
				filledY = append(filledY, pos.Add(cmd.D1).Y)
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, filledY)
}
