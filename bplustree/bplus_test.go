package bplus

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, order int) *BPlusTree[int] {
	t.Helper()
	tree, err := NewIntTree(order, WithInvariantChecks(true))
	require.NoError(t, err)
	return tree
}

func insertAll(t *testing.T, tree *BPlusTree[int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		require.True(t, tree.Insert(k), "insert %d", k)
	}
}

func exportJSON(t *testing.T, tree *BPlusTree[int]) string {
	t.Helper()
	b, err := json.Marshal(tree.Export())
	require.NoError(t, err)
	return string(b)
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestNewBPlusTreeOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 1, 2} {
		tree, err := NewIntTree(order)
		assert.Nil(t, tree)
		assert.True(t, errors.Is(err, ErrInvalidOrder), "order %d: %v", order, err)
	}

	tree, err := NewIntTree(3)
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 3, tree.Order())
	assert.Equal(t, 1, tree.Height())
	assert.NoError(t, tree.Validate())
}

func TestNewBPlusTreeNilCmp(t *testing.T) {
	_, err := NewBPlusTree[int](4, nil)
	assert.Error(t, err)
}

func TestLimits(t *testing.T) {
	tests := []struct {
		order int
		want  Limits
	}{
		{3, Limits{MinInternalChildren: 2, MaxInternalChildren: 3, MinInternalKeys: 1, MaxInternalKeys: 2,
			MinLeafKeys: 1, MaxLeafKeys: 2, LeafSplit: 2, InternalKeySplit: 1, InternalChildrenSplit: 2}},
		{4, Limits{MinInternalChildren: 2, MaxInternalChildren: 4, MinInternalKeys: 1, MaxInternalKeys: 3,
			MinLeafKeys: 2, MaxLeafKeys: 3, LeafSplit: 2, InternalKeySplit: 2, InternalChildrenSplit: 3}},
		{5, Limits{MinInternalChildren: 3, MaxInternalChildren: 5, MinInternalKeys: 2, MaxInternalKeys: 4,
			MinLeafKeys: 2, MaxLeafKeys: 4, LeafSplit: 3, InternalKeySplit: 2, InternalChildrenSplit: 3}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NewLimits(tc.order), "order %d", tc.order)
	}
}

func TestInsertSequentialSplits(t *testing.T) {
	tree := newTestTree(t, 4)
	insertAll(t, tree, 1, 2, 3, 4, 5)

	snap := tree.Export()
	assert.False(t, snap.Leaf)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Keys())
	assert.Equal(t, `[[1,2],3,[3,4,5]]`, exportJSON(t, tree))
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 5, tree.Len())
}

func TestInsertDuplicate(t *testing.T) {
	tree := newTestTree(t, 4)
	require.True(t, tree.Insert(5))
	before := exportJSON(t, tree)
	version := tree.Version()

	assert.False(t, tree.Insert(5))
	assert.Equal(t, before, exportJSON(t, tree))
	assert.Equal(t, version, tree.Version())
	assert.Equal(t, 1, tree.Len())
}

func TestInsertDuplicateInDeepTree(t *testing.T) {
	tree := newTestTree(t, 3)
	insertAll(t, tree, seq(1, 40)...)
	before := exportJSON(t, tree)
	for _, k := range seq(1, 40) {
		assert.False(t, tree.Insert(k))
	}
	assert.Equal(t, before, exportJSON(t, tree))
}

func TestInternalSplitPromotesKey(t *testing.T) {
	tree := newTestTree(t, 3)
	insertAll(t, tree, 1, 2, 3, 4, 5)
	assert.Equal(t, `[[1,2],3,[3,4],5,[5]]`, exportJSON(t, tree))

	// the fourth leaf overflows the root
	insertAll(t, tree, 6, 7)
	assert.Equal(t, `[[[1,2],3,[3,4]],5,[[5,6],7,[7]]]`, exportJSON(t, tree))
	assert.Equal(t, 3, tree.Height())
}

func TestContains(t *testing.T) {
	tree := newTestTree(t, 4)
	insertAll(t, tree, 10, 20, 30, 40, 50)
	for _, k := range []int{10, 20, 30, 40, 50} {
		assert.True(t, tree.Contains(k))
	}
	for _, k := range []int{0, 15, 35, 60} {
		assert.False(t, tree.Contains(k))
	}
}

func TestFindLeafRecordsPath(t *testing.T) {
	tree := newTestTree(t, 3)
	insertAll(t, tree, seq(1, 7)...)

	leaf, path := tree.findLeaf(7)
	require.Len(t, path, 2)
	assert.Equal(t, tree.root, path[0].node.id)
	assert.Equal(t, 1, path[0].idx)
	assert.Equal(t, 1, path[1].idx) // 7 equals the separator and routes right
	assert.Equal(t, []int{7}, leaf.key)

	leaf, path = tree.findLeaf(2)
	require.Len(t, path, 2)
	assert.Equal(t, 0, path[0].idx)
	assert.Equal(t, 0, path[1].idx)
	assert.Equal(t, []int{1, 2}, leaf.key)

	empty := newTestTree(t, 3)
	leaf, path = empty.findLeaf(7)
	assert.Empty(t, path)
	assert.Equal(t, empty.root, leaf.id)
}

func TestBytesKeys(t *testing.T) {
	tree, err := NewBPlusTree(4, bytes.Compare, WithInvariantChecks(true))
	require.NoError(t, err)
	for _, k := range []string{"S003", "S001", "S005", "S002", "S004"} {
		require.True(t, tree.Insert([]byte(k)))
	}
	assert.False(t, tree.Insert([]byte("S001")))

	var got []string
	for _, k := range tree.Keys() {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"S001", "S002", "S003", "S004", "S005"}, got)
}

func TestTreesHaveDistinctIDs(t *testing.T) {
	a := newTestTree(t, 3)
	b := newTestTree(t, 3)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRandomInsertKeepsInvariants(t *testing.T) {
	for _, order := range []int{3, 4, 5, 6, 7, 10} {
		rng := rand.New(rand.NewSource(int64(order)))
		tree := newTestTree(t, order)
		want := map[int]bool{}
		for i := 0; i < 500; i++ {
			k := rng.Intn(300)
			assert.Equal(t, !want[k], tree.Insert(k))
			want[k] = true
		}
		keys := tree.Keys()
		assert.Len(t, keys, len(want))
		for i := 1; i < len(keys); i++ {
			assert.Less(t, keys[i-1], keys[i])
		}
	}
}
