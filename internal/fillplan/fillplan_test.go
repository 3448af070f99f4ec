package fillplan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func TestBuildRegionsPartitionsXStripes(t *testing.T) {
	bots := []*nbot.Bot{
		nbot.New(1, geom.Coord{}, nil),
		nbot.New(2, geom.Coord{}, nil),
	}
	BuildRegions(bots, 10)

	require.Equal(t, geom.Rect{MinX: 0, MaxX: 5, MinZ: 0, MaxZ: 10}, bots[0].Region)
	require.Equal(t, geom.Rect{MinX: 5, MaxX: 10, MinZ: 0, MaxZ: 10}, bots[1].Region)
}

func TestNextFillPrefersLowYAndClose(t *testing.T) {
	g := voxel.New(5)
	require.NoError(t, g.SetModel(geom.Coord{X: 2, Y: 2, Z: 0}))
	require.NoError(t, g.SetModel(geom.Coord{X: 0, Y: 0, Z: 0}))

	bot := nbot.New(1, geom.Coord{X: 0, Y: 0, Z: 1}, nil)
	bot.Region = geom.FullRect(5)

	c, ok := NextFill(bot, g)
	require.True(t, ok)
	require.Equal(t, geom.Coord{X: 0, Y: 0, Z: 0}, c, "grounded y=0 cell wins over the ungroundable higher one")
}

func TestNextFillSkipsAlreadyFullCandidates(t *testing.T) {
	g := voxel.New(3)
	require.NoError(t, g.SetModel(geom.Coord{X: 0, Y: 0, Z: 0}))
	require.NoError(t, g.SetModel(geom.Coord{X: 1, Y: 0, Z: 0}))
	require.NoError(t, g.SetFull(geom.Coord{X: 0, Y: 0, Z: 0}))

	bot := nbot.New(1, geom.Coord{X: 2, Y: 0, Z: 0}, nil)
	bot.Region = geom.FullRect(3)

	c, ok := NextFill(bot, g)
	require.True(t, ok)
	require.Equal(t, geom.Coord{X: 1, Y: 0, Z: 0}, c)
}

func TestNextFillNotFoundWhenUngroundable(t *testing.T) {
	g := voxel.New(3)
	require.NoError(t, g.SetModel(geom.Coord{X: 0, Y: 2, Z: 0}))
	bot := nbot.New(1, geom.Coord{X: 0, Y: 0, Z: 0}, nil)
	bot.Region = geom.FullRect(3)

	_, ok := NextFill(bot, g)
	require.False(t, ok)
}

func TestSynchronizeLayerPicksLowestHigherBot(t *testing.T) {
	bots := []*nbot.Bot{
		nbot.New(1, geom.Coord{Y: 0}, nil),
		nbot.New(2, geom.Coord{Y: 3}, nil),
		nbot.New(3, geom.Coord{Y: 1}, nil),
	}
	y, ok := SynchronizeLayer(bots, 0)
	require.True(t, ok)
	require.Equal(t, 1, y)
}
