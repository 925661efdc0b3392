package history

import (
	"io"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bplus "BPlusViz/bplustree"
	"BPlusViz/conf"
)

func newHistory(t *testing.T, order int) *History {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	h, err := New(order, l, bplus.WithInvariantChecks(true))
	require.NoError(t, err)
	return h
}

func TestNewRejectsOrder(t *testing.T) {
	_, err := New(2, logrus.New())
	assert.True(t, errors.Is(err, bplus.ErrInvalidOrder))
}

func TestRecordsOnlySuccess(t *testing.T) {
	h := newHistory(t, 4)
	assert.True(t, h.Insert(1))
	assert.False(t, h.Insert(1))
	assert.False(t, h.Delete(7))
	assert.True(t, h.Delete(1))
	assert.Equal(t, []Action{{Kind: Insert, Key: 1}, {Kind: Delete, Key: 1}}, h.Actions())
}

func TestUndo(t *testing.T) {
	h := newHistory(t, 4)
	for _, k := range []int{1, 2, 3, 4, 5} {
		require.True(t, h.Insert(k))
	}
	require.True(t, h.Delete(3))

	ok, err := h.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, h.Tree().Keys())

	ok, err = h.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, h.Tree().Keys())
	assert.Equal(t, 4, h.Len())
}

func TestUndoEmpty(t *testing.T) {
	h := newHistory(t, 4)
	ok, err := h.Undo()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, h.Tree().IsEmpty())
}

func TestUndoAcrossOrderChange(t *testing.T) {
	h := newHistory(t, 5)
	require.True(t, h.Insert(10))
	require.NoError(t, h.SetOrder(3))
	assert.True(t, h.Tree().IsEmpty())
	require.True(t, h.Insert(20))

	_, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 3, h.Tree().Order())
	assert.True(t, h.Tree().IsEmpty())

	_, err = h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 5, h.Tree().Order())
	assert.Equal(t, []int{10}, h.Tree().Keys())
}

func TestSetOrderRejected(t *testing.T) {
	h := newHistory(t, 4)
	require.True(t, h.Insert(1))
	assert.Error(t, h.SetOrder(2))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, []int{1}, h.Tree().Keys())
}

func TestResetKeepsOrder(t *testing.T) {
	h := newHistory(t, 5)
	require.NoError(t, h.SetOrder(3))
	require.True(t, h.Insert(1))
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 3, h.Tree().Order())

	require.True(t, h.Insert(2))
	require.True(t, h.Insert(3))
	_, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 3, h.Tree().Order())
	assert.Equal(t, []int{2}, h.Tree().Keys())
}

func TestRandom(t *testing.T) {
	h := newHistory(t, 4)
	require.True(t, h.Insert(1000))
	r := conf.RandomRange{MinKeys: 16, MaxKeys: 64, MinKey: 8, MaxKey: 128}

	keys := h.Random(rand.New(rand.NewSource(42)), r)
	assert.GreaterOrEqual(t, len(keys), 16)
	assert.LessOrEqual(t, len(keys), 64)
	assert.Equal(t, len(keys), h.Len())
	assert.Equal(t, len(keys), h.Tree().Len())
	assert.False(t, h.Tree().Contains(1000))
	for _, k := range keys {
		assert.GreaterOrEqual(t, k, 8)
		assert.LessOrEqual(t, k, 128)
	}
	assert.NoError(t, h.Tree().Validate())
}

func TestRandomSaturatesRange(t *testing.T) {
	h := newHistory(t, 3)
	keys := h.Random(rand.New(rand.NewSource(1)), conf.RandomRange{MinKeys: 5, MaxKeys: 5, MinKey: 1, MaxKey: 3})
	assert.Len(t, keys, 3)
	assert.Equal(t, []int{1, 2, 3}, h.Tree().Keys())
}
