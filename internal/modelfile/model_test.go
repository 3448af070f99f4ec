package modelfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := 5
	grid := voxel.New(r)
	pts := []geom.Coord{{X: 0, Y: 0, Z: 0}, {X: 4, Y: 4, Z: 4}, {X: 2, Y: 1, Z: 3}}
	for _, c := range pts {
		require.NoError(t, grid.SetModel(c))
	}

	buf := Save(grid)
	assert.Equal(t, byte(r), buf[0])

	got, err := Load(buf)
	require.NoError(t, err)
	assert.Equal(t, r, got.R)
	for _, c := range pts {
		assert.True(t, got.IsModel(c), "expected %v to be MODEL", c)
	}
	assert.Equal(t, len(pts), got.ModelCount())
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := Load(nil)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadTruncated(t *testing.T) {
	_, err := Load([]byte{5}) // R=5 needs ceil(125/8)=16 bytes, none given
	require.ErrorIs(t, err, ErrTruncated)
}

func TestBitOrderYSlowestXMiddleZFastest(t *testing.T) {
	r := 2
	grid := voxel.New(r)
	require.NoError(t, grid.SetModel(geom.Coord{X: 1, Y: 0, Z: 0}))
	buf := Save(grid)
	// index = y*r*r + x*r + z = 0*4 + 1*2 + 0 = 2 -> bit 2 of byte 0
	assert.Equal(t, byte(1<<2), buf[1])
}
