package bplus

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, order int, keys ...int) *BPlusTree[int] {
	t.Helper()
	tree, err := NewIntTree(order)
	require.NoError(t, err)
	insertAll(t, tree, keys...)
	require.NoError(t, tree.Validate())
	return tree
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *BPlusTree[int])
	}{
		{"unsorted leaf", func(tree *BPlusTree[int]) {
			leaf := tree.firstLeaf()
			leaf.key[0], leaf.key[1] = leaf.key[1], leaf.key[0]
		}},
		{"key outside separator range", func(tree *BPlusTree[int]) {
			tree.firstLeaf().key[1] = 100
		}},
		{"underfull leaf", func(tree *BPlusTree[int]) {
			leaf := tree.firstLeaf()
			leaf.key = leaf.key[:1]
			tree.size--
		}},
		{"broken leaf chain", func(tree *BPlusTree[int]) {
			tree.firstLeaf().next = 0
		}},
		{"size mismatch", func(tree *BPlusTree[int]) {
			tree.size++
		}},
		{"leaked node", func(tree *BPlusTree[int]) {
			tree.newNode(NodeLeaf)
		}},
		{"children count", func(tree *BPlusTree[int]) {
			root := tree.node(tree.root)
			root.key = append(root.key, 99)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(t, 4, seq(1, 6)...)
			tc.corrupt(tree)
			err := tree.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), err.Error())
		})
	}
}

func TestInvariantChecksPanic(t *testing.T) {
	tree, err := NewIntTree(4, WithInvariantChecks(true))
	require.NoError(t, err)
	insertAll(t, tree, 1, 2, 3)
	tree.size = 10 // corrupt the bookkeeping
	assert.Panics(t, func() { tree.Insert(4) })
}
