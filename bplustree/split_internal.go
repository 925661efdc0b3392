package bplus

import "github.com/sirupsen/logrus"

// splitInternal splits an overflowing internal node and returns the two halves
// with the key to promote between them. The promoted key is kept in neither half.
func (t *BPlusTree[K]) splitInternal(node *Node[K]) (*Node[K], K, *Node[K]) {
	ks := t.limits.InternalKeySplit
	cs := t.limits.InternalChildrenSplit

	right := t.newNode(NodeInternal)

	// keys: left keeps [0:ks), promote key[ks], right gets (ks, end]
	// children: left keeps [0:cs), right gets [cs:]
	promote := node.key[ks]
	right.key = append(right.key, node.key[ks+1:]...)
	right.children = append(right.children, node.children[cs:]...)

	// shrink left node
	clear(node.key[ks:])
	node.key = node.key[:ks]
	clear(node.children[cs:])
	node.children = node.children[:cs]

	t.log.WithFields(logrus.Fields{
		"left":     node.id,
		"right":    right.id,
		"promoted": promote,
	}).Debug("split internal")

	return node, promote, right
}
