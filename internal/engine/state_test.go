package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func mustNear(t *testing.T, dx, dy, dz int) geom.Diff {
	t.Helper()
	d, err := geom.NearDiff(dx, dy, dz)
	require.NoError(t, err)
	return d
}

func mustLong(t *testing.T, dx, dy, dz int) geom.Diff {
	t.Helper()
	d, err := geom.LongLinear(dx, dy, dz)
	require.NoError(t, err)
	return d
}

func TestSMoveMovesAndCharges(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	bot := s.Bots[0]
	bot.Enqueue(nbot.Op{Kind: nbot.SMove, D1: mustLong(t, 3, 0, 0)})

	progressed, err := s.Step()
	require.NoError(t, err)
	require.True(t, progressed)

	require.Equal(t, geom.Coord{X: 3}, bot.Pos)
	require.Equal(t, 6, s.Energy-3*4*4*4-20) // move cost net of the flat tick charge
	require.True(t, g.IsBot(geom.Coord{X: 3}))
	require.False(t, g.IsBot(geom.Coord{}))
}

func TestFillGroundedAtOrigin(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	bot := s.Bots[0]
	target := geom.Coord{X: 1}
	bot.Enqueue(nbot.Op{Kind: nbot.Fill, D1: mustNear(t, 1, 0, 0)})

	_, err := s.Step()
	require.NoError(t, err)

	require.True(t, g.IsFull(target))
	require.True(t, g.IsGrounded(target))
	require.Equal(t, 12, s.Energy-3*4*4*4-20)
}

func TestFillConflictDegradesSecondBot(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	primary := s.Bots[0]

	secondPos := geom.Coord{Z: 1}
	require.NoError(t, g.ToggleBot(secondPos))
	second := nbot.New(2, secondPos, []int{})
	s.Bots = append(s.Bots, second)

	target := geom.Coord{X: 1}
	primary.Enqueue(nbot.Op{Kind: nbot.Fill, D1: mustNear(t, 1, 0, 0)})
	second.Enqueue(nbot.Op{Kind: nbot.Fill, D1: mustNear(t, 1, 0, -1)})

	_, err := s.Step()
	require.NoError(t, err)

	require.True(t, g.IsFull(target))
	require.False(t, second.HasWork(), "degraded bot's queue was cleared")
}

func TestFissionThenFusionRoundTrip(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	primary := s.Bots[0]
	originalSeeds := append([]int(nil), primary.Seeds...)

	primary.Enqueue(nbot.Op{Kind: nbot.Fission, D1: mustNear(t, 1, 0, 0), M: 1})
	_, err := s.Step()
	require.NoError(t, err)
	require.Len(t, s.Bots, 2)
	require.Equal(t, 1, s.FissionCount)

	child := s.Bots[1]
	require.Equal(t, geom.Coord{X: 1}, child.Pos)

	primary.Enqueue(nbot.Op{Kind: nbot.FusionP, D1: mustNear(t, 1, 0, 0)})
	child.Enqueue(nbot.Op{Kind: nbot.FusionS, D1: mustNear(t, -1, 0, 0)})
	_, err = s.Step()
	require.NoError(t, err)

	require.Len(t, s.Bots, 1)
	require.Equal(t, 1, s.FusionCount)
	require.Equal(t, originalSeeds, primary.Seeds)
	require.False(t, g.IsBot(geom.Coord{X: 1}))

	primary.Enqueue(nbot.Op{Kind: nbot.Halt})
	_, err = s.Step()
	require.NoError(t, err)
	require.True(t, s.Halted)
}

func TestHaltRejectsExtraBots(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	primary := s.Bots[0]
	other := nbot.New(2, geom.Coord{Z: 2}, nil)
	require.NoError(t, g.ToggleBot(other.Pos))
	s.Bots = append(s.Bots, other)

	primary.Enqueue(nbot.Op{Kind: nbot.Halt})
	other.Enqueue(nbot.Op{Kind: nbot.Wait})
	_, err := s.Step()
	require.ErrorIs(t, err, ErrHaltNotAlone)
}

func TestRunDetectsStuckFleet(t *testing.T) {
	g := voxel.New(4)
	s := New(g)
	cfg := Config{MaxSteps: 100, StuckThreshold: 3}

	_, err := s.Run(cfg)
	var stuck *StuckError
	require.ErrorAs(t, err, &stuck)
}
