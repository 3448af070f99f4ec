package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/engine"
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func newFreshState(t *testing.T, r int) *engine.State {
	t.Helper()
	return engine.New(voxel.New(r))
}

func TestCheckInvariantsCleanState(t *testing.T) {
	s := newFreshState(t, 4)
	assert.Empty(t, CheckInvariants(s))
}

func TestCheckInvariantsDetectsSharedCell(t *testing.T) {
	s := newFreshState(t, 4)
	dup := nbot.New(2, s.Bots[0].Pos, nil)
	s.Bots = append(s.Bots, dup)

	violations := CheckInvariants(s)
	found := false
	for _, v := range violations {
		if v.Kind == "shared-cell" {
			found = true
		}
	}
	assert.True(t, found, "expected a shared-cell violation, got %v", violations)
}

func TestCheckInvariantsDetectsUngroundedUnderLow(t *testing.T) {
	s := newFreshState(t, 4)
	target := geom.Coord{X: 2, Y: 2, Z: 2}
	require.NoError(t, s.Grid.SetFull(target))
	s.Grid.MarkUngrounded(target)

	violations := CheckInvariants(s)
	found := false
	for _, v := range violations {
		if v.Kind == "low-harmonics-ungrounded" {
			found = true
		}
	}
	assert.True(t, found, "expected a low-harmonics-ungrounded violation, got %v", violations)
}

func TestCheckInvariantsSeedPartitionComplete(t *testing.T) {
	s := newFreshState(t, 4)
	violations := CheckInvariants(s)
	for _, v := range violations {
		assert.NotEqual(t, "id-unclaimed", v.Kind)
		assert.NotEqual(t, "id-claimed-twice", v.Kind)
	}
}
