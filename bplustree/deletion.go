package bplus

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Delete removes key from the tree. It returns false, leaving the tree
// untouched, if the key is not present.
func (t *BPlusTree[K]) Delete(key K) bool {
	leaf, path := t.findLeaf(key)

	idx := binarySearch(leaf.key, key, t.cmp)
	if idx < 0 {
		t.log.WithField("key", key).Debug("delete: key not present")
		return false
	}

	t.deleteEntry(leaf, idx, path)
	t.size--

	t.mutated()
	return true
}

// deleteEntry removes key idx from node (and, for internal nodes, the child to
// its right), then resolves any underflow by coalescing with or borrowing from
// a sibling. A coalesce removes a separator from the parent, so the loop
// continues one level up with the parent as node.
func (t *BPlusTree[K]) deleteEntry(node *Node[K], idx int, path []pathEntry[K]) {
	for {
		node.key = slices.Delete(node.key, idx, idx+1)
		if !node.isLeaf() {
			t.nodes.free(node.children[idx+1])
			node.children = slices.Delete(node.children, idx+1, idx+2)
		}

		if node.id == t.root {
			// if the root has only one child, replace it with its child
			if !node.isLeaf() && len(node.children) == 1 {
				t.root = node.children[0]
				t.nodes.free(node.id)
				t.log.WithField("root", t.root).Debug("root collapsed")
			}
			return
		}

		if len(node.key) >= t.limits.minKeys(node.nodeType) {
			return
		}

		// the node is underfull
		entry := path[len(path)-1]
		path = path[:len(path)-1]
		parent, childIdx := entry.node, entry.idx

		sepIdx, ok := t.coalesceTarget(parent, childIdx, node)
		if !ok {
			t.redistribute(parent, childIdx, node)
			return
		}

		left := t.node(parent.children[sepIdx])
		right := t.node(parent.children[sepIdx+1])
		t.coalesce(left, parent.key[sepIdx], right)

		node, idx = parent, sepIdx
	}
}

// coalesceTarget looks for a sibling node can merge with, checking the left
// sibling first. It returns the index in parent of the separator between
// the pair.
func (t *BPlusTree[K]) coalesceTarget(parent *Node[K], childIdx int, node *Node[K]) (int, bool) {
	if childIdx > 0 {
		left := t.node(parent.children[childIdx-1])
		if t.limits.fits(node.nodeType, len(left.key), len(node.key)) {
			return childIdx - 1, true
		}
	}
	if childIdx+1 < len(parent.children) {
		right := t.node(parent.children[childIdx+1])
		if t.limits.fits(node.nodeType, len(node.key), len(right.key)) {
			return childIdx, true
		}
	}
	return 0, false
}

// coalesce moves everything in right into left. right is freed when the
// caller removes the separator from the parent.
func (t *BPlusTree[K]) coalesce(left *Node[K], sepKey K, right *Node[K]) {
	if left.isLeaf() {
		left.key = append(left.key, right.key...)
		left.next = right.next
	} else {
		left.key = append(left.key, sepKey)
		left.key = append(left.key, right.key...)
		left.children = append(left.children, right.children...)
	}

	t.log.WithFields(logrus.Fields{
		"left":  left.id,
		"right": right.id,
		"type":  left.nodeType.String(),
	}).Debug("coalesce")
}
