package bplus

// findLeaf descends from the root to the leaf that would hold key. Each
// internal node visited is recorded with the child index followed, root first.
// A key equal to a separator routes to the right subtree.
//
// The path is only valid until the next structural change.
func (t *BPlusTree[K]) findLeaf(key K) (*Node[K], []pathEntry[K]) {
	var path []pathEntry[K]
	n := t.node(t.root)
	for !n.isLeaf() {
		i := upperBound(n.key, key, t.cmp)
		path = append(path, pathEntry[K]{node: n, idx: i})
		n = t.node(n.children[i])
	}
	return n, path
}

// Contains reports whether key is stored in the tree.
func (t *BPlusTree[K]) Contains(key K) bool {
	leaf, _ := t.findLeaf(key)
	return binarySearch(leaf.key, key, t.cmp) >= 0
}

// firstLeaf returns the leftmost leaf, the head of the leaf chain.
func (t *BPlusTree[K]) firstLeaf() *Node[K] {
	n := t.node(t.root)
	for !n.isLeaf() {
		n = t.node(n.children[0])
	}
	return n
}
