package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearDiff(t *testing.T) {
	tests := []struct {
		name    string
		d       [3]int
		wantErr bool
	}{
		{"unit +x", [3]int{1, 0, 0}, false},
		{"diagonal xy", [3]int{1, 1, 0}, false},
		{"zero", [3]int{0, 0, 0}, true},
		{"too far on one axis", [3]int{2, 0, 0}, true},
		{"triple diagonal", [3]int{1, 1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NearDiff(tt.d[0], tt.d[1], tt.d[2])
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDiff)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLinearClasses(t *testing.T) {
	_, err := ShortLinear(6, 0, 0)
	require.Error(t, err, "6 exceeds ShortLinear's max of 5")

	d, err := ShortLinear(5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, d.MLen())

	_, err = LongLinear(16, 0, 0)
	require.Error(t, err, "16 exceeds LongLinear's max of 15")

	d, err = LongLinear(15, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, d.MLen())

	_, err = LinearDiff(1, 1, 0)
	require.Error(t, err, "two nonzero axes is not linear")
}

func TestFarDiff(t *testing.T) {
	_, err := FarDiff(31, 0, 0)
	require.Error(t, err)

	d, err := FarDiff(30, -30, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, d.CLen())
}

func TestCoordAddSub(t *testing.T) {
	c := Coord{1, 2, 3}
	d := Diff{1, -1, 0}
	got := c.Add(d)
	assert.Equal(t, Coord{2, 1, 3}, got)
	assert.Equal(t, d, got.Sub(c))
}

func TestAdjacent6(t *testing.T) {
	mid := Coord{1, 1, 1}
	assert.Len(t, mid.Adjacent6(10), 6)

	corner := Coord{0, 1, 1}
	assert.Len(t, corner.Adjacent6(10), 5)
}

func TestRectContains(t *testing.T) {
	r := Rect{MinX: 2, MaxX: 5, MinZ: 0, MaxZ: 3}
	assert.True(t, r.Contains(Coord{X: 3, Y: 9, Z: 1}))
	assert.False(t, r.Contains(Coord{X: 1, Y: 0, Z: 1}), "x below region")
	assert.False(t, r.Contains(Coord{X: 3, Y: 0, Z: 3}), "z at exclusive upper bound")
}
