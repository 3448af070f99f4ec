package nbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
)

func TestQueueFIFO(t *testing.T) {
	b := New(1, geom.Coord{}, DefaultSeeds())
	b.Enqueue(Op{Kind: Wait})
	b.Enqueue(Op{Kind: SMove, D1: geom.Diff{DX: 1}})

	op, ok := b.PopFront()
	assert.True(t, ok)
	assert.Equal(t, Wait, op.Kind)

	op, ok = b.PopFront()
	assert.True(t, ok)
	assert.Equal(t, SMove, op.Kind)

	_, ok = b.PopFront()
	assert.False(t, ok)
}

func TestClearQueueOnConflict(t *testing.T) {
	b := New(1, geom.Coord{}, DefaultSeeds())
	b.Enqueue(Op{Kind: Wait})
	b.Enqueue(Op{Kind: Wait})
	b.ClearQueue()
	assert.False(t, b.HasWork())
}

func TestDefaultSeedsRange(t *testing.T) {
	seeds := DefaultSeeds()
	assert.Len(t, seeds, 39)
	assert.Equal(t, 2, seeds[0])
	assert.Equal(t, 40, seeds[len(seeds)-1])
}
