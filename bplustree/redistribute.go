package bplus

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// redistribute moves one entry into an underfull node from the sibling
// holding more keys, preferring the left sibling on a tie. It is only called
// when neither sibling can be coalesced with node, which guarantees the donor
// stays at or above its minimum. The parent keeps its key count.
func (t *BPlusTree[K]) redistribute(parent *Node[K], childIdx int, node *Node[K]) {
	fromLeft := childIdx > 0
	if fromLeft && childIdx+1 < len(parent.children) {
		left := t.node(parent.children[childIdx-1])
		right := t.node(parent.children[childIdx+1])
		fromLeft = len(left.key) >= len(right.key)
	}

	if fromLeft {
		t.borrowFromLeft(parent, childIdx, node)
	} else {
		t.borrowFromRight(parent, childIdx, node)
	}
}

func (t *BPlusTree[K]) borrowFromLeft(parent *Node[K], childIdx int, node *Node[K]) {
	sepIdx := childIdx - 1
	sibling := t.node(parent.children[sepIdx])

	// rightmost key of left sibling
	last := len(sibling.key) - 1
	lastKey := sibling.key[last]
	sibling.key = slices.Delete(sibling.key, last, last+1)

	if node.isLeaf() {
		node.key = slices.Insert(node.key, 0, lastKey)
	} else {
		node.key = slices.Insert(node.key, 0, parent.key[sepIdx])

		// rightmost child of left sibling
		lc := len(sibling.children) - 1
		lastChild := sibling.children[lc]
		sibling.children = slices.Delete(sibling.children, lc, lc+1)
		node.children = slices.Insert(node.children, 0, lastChild)
	}
	parent.key[sepIdx] = lastKey

	t.log.WithFields(logrus.Fields{
		"node":    node.id,
		"sibling": sibling.id,
		"type":    node.nodeType.String(),
	}).Debug("borrow from left")
}

func (t *BPlusTree[K]) borrowFromRight(parent *Node[K], childIdx int, node *Node[K]) {
	sepIdx := childIdx
	sibling := t.node(parent.children[sepIdx+1])

	firstKey := sibling.key[0]
	sibling.key = slices.Delete(sibling.key, 0, 1)

	if node.isLeaf() {
		node.key = append(node.key, firstKey)
		// separator moves up to the sibling's new smallest key
		parent.key[sepIdx] = sibling.key[0]
	} else {
		node.key = append(node.key, parent.key[sepIdx])

		firstChild := sibling.children[0]
		sibling.children = slices.Delete(sibling.children, 0, 1)
		node.children = append(node.children, firstChild)
		parent.key[sepIdx] = firstKey
	}

	t.log.WithFields(logrus.Fields{
		"node":    node.id,
		"sibling": sibling.id,
		"type":    node.nodeType.String(),
	}).Debug("borrow from right")
}
