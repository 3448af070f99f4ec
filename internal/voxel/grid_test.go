package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
)

func TestSetFullVoidInvariants(t *testing.T) {
	g := New(3)
	c := geom.Coord{X: 1, Y: 0, Z: 1}

	require.NoError(t, g.SetFull(c))
	assert.True(t, g.IsFull(c))
	assert.Equal(t, 1, g.FullCount())

	err := g.SetFull(c)
	require.ErrorIs(t, err, ErrAlreadyFull)

	require.NoError(t, g.SetVoid(c))
	assert.False(t, g.IsFull(c))
	assert.Equal(t, 0, g.FullCount())

	err = g.SetVoid(c)
	require.ErrorIs(t, err, ErrNotFull)
}

func TestOutOfBounds(t *testing.T) {
	g := New(3)
	_, err := g.At(geom.Coord{X: 3, Y: 0, Z: 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestWouldBeGroundedAndPropagation(t *testing.T) {
	g := New(4)
	base := geom.Coord{X: 1, Y: 0, Z: 1}
	require.NoError(t, g.SetFull(base))
	assert.True(t, g.WouldBeGrounded(base), "y=0 cells are always groundable")
	require.NoError(t, g.SetGrounded(base))
	require.NoError(t, g.GroundAdjacent(base))

	above := geom.Coord{X: 1, Y: 1, Z: 1}
	require.NoError(t, g.SetFull(above))
	assert.True(t, g.WouldBeGrounded(above), "sits directly above a grounded cell")
}

func TestBotBlocksGroundedness(t *testing.T) {
	g := New(3)
	c := geom.Coord{X: 0, Y: 0, Z: 0}
	require.NoError(t, g.ToggleBot(c))
	assert.False(t, g.WouldBeGrounded(c), "a bot-occupied cell cannot be filled")
}

func TestBoundsCache(t *testing.T) {
	g := New(5)
	require.NoError(t, g.SetModel(geom.Coord{X: 1, Y: 2, Z: 1}))
	require.NoError(t, g.SetModel(geom.Coord{X: 3, Y: 0, Z: 4}))

	b := g.Bounds()
	assert.Equal(t, geom.Box{MinX: 1, MaxX: 4, MinY: 0, MaxY: 3, MinZ: 1, MaxZ: 5}, b)

	// cache should reflect a subsequent write once invalidated
	require.NoError(t, g.SetModel(geom.Coord{X: 4, Y: 4, Z: 4}))
	b = g.Bounds()
	assert.Equal(t, 4, b.MaxX-1)
	assert.Equal(t, 4, b.MaxY-1)
}

func TestModelCoordsExcludesFull(t *testing.T) {
	g := New(3)
	a := geom.Coord{X: 0, Y: 0, Z: 0}
	b := geom.Coord{X: 1, Y: 0, Z: 0}
	require.NoError(t, g.SetModel(a))
	require.NoError(t, g.SetModel(b))
	require.NoError(t, g.SetFull(a))

	coords := g.ModelCoords()
	assert.Len(t, coords, 1)
	assert.Equal(t, b, coords[0])
}
