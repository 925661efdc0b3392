package bplus

import "slices"

// Insert adds key to the tree. It returns false, leaving the tree untouched,
// if the key is already present.
func (t *BPlusTree[K]) Insert(key K) bool {
	//find leaf
	leaf, path := t.findLeaf(key)

	i := upperBound(leaf.key, key, t.cmp)
	if i > 0 && t.cmp(leaf.key[i-1], key) == 0 {
		t.log.WithField("key", key).Debug("insert: key already present")
		return false
	}

	leaf.key = slices.Insert(leaf.key, i, key)
	t.size++

	if len(leaf.key) > t.limits.MaxLeafKeys {
		t.splitLeaf(leaf, path)
	}

	t.mutated()
	return true
}
