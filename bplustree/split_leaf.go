package bplus

import "github.com/sirupsen/logrus"

// splitLeaf splits an overflowing leaf at LeafSplit. The new right leaf is
// linked into the chain after leaf and its first key is promoted.
func (t *BPlusTree[K]) splitLeaf(leaf *Node[K], path []pathEntry[K]) {
	split := t.limits.LeafSplit

	right := t.newNode(NodeLeaf)
	right.key = append(right.key, leaf.key[split:]...)
	clear(leaf.key[split:])
	leaf.key = leaf.key[:split]

	right.next = leaf.next
	leaf.next = right.id

	t.log.WithFields(logrus.Fields{
		"left":      leaf.id,
		"right":     right.id,
		"separator": right.key[0],
	}).Debug("split leaf")

	t.insertIntoParent(leaf, right.key[0], right, path)
}
