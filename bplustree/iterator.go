package bplus

// Iterator walks the keys in ascending order by following the leaf chain.
// Any Insert or Delete invalidates it.
type Iterator[K any] struct {
	tree  *BPlusTree[K]
	leaf  *Node[K]
	index int
	valid bool
}

// First positions an iterator at the smallest key.
func (t *BPlusTree[K]) First() *Iterator[K] {
	it := &Iterator[K]{tree: t, leaf: t.firstLeaf()}
	it.valid = len(it.leaf.key) > 0
	return it
}

// Valid reports whether Key can be called.
func (it *Iterator[K]) Valid() bool {
	return it.valid
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[K]) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	if it.index < len(it.leaf.key) {
		return true
	}
	// move to next leaf
	if it.leaf.next == 0 {
		it.valid = false
		return false
	}
	it.leaf = it.tree.node(it.leaf.next)
	it.index = 0
	it.valid = len(it.leaf.key) > 0
	return it.valid
}

// Key returns the current key.
func (it *Iterator[K]) Key() K {
	if !it.valid {
		var zero K
		return zero
	}
	return it.leaf.key[it.index]
}

// Keys returns every key in ascending order.
func (t *BPlusTree[K]) Keys() []K {
	out := make([]K, 0, t.size)
	for it := t.First(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}
