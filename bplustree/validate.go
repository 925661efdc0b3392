package bplus

// Validate checks every structural invariant and returns an error wrapping
// ErrCorrupt describing the first violation found:
//   - keys strictly ascending in every node and across the leaf chain
//   - internal nodes have len(keys)+1 children
//   - non-root nodes respect their occupancy bounds
//   - every key lies in the range its ancestors' separators allow
//   - all leaves sit at the same depth
//   - the leaf chain visits every leaf exactly once, left to right
//   - the arena holds no unreachable nodes
func (t *BPlusTree[K]) Validate() error {
	v := validator[K]{t: t, leafDepth: -1}
	root, ok := t.nodes.get(t.root)
	if !ok {
		return corruptf("root %d not found in arena", t.root)
	}
	if err := v.walk(root, 0, nil, nil); err != nil {
		return err
	}
	if v.keys != t.size {
		return corruptf("tree reports %d keys, found %d", t.size, v.keys)
	}
	if v.nodes != t.nodes.len() {
		return corruptf("arena holds %d nodes, %d reachable", t.nodes.len(), v.nodes)
	}
	return v.checkChain()
}

type validator[K any] struct {
	t         *BPlusTree[K]
	leafDepth int
	leaves    []NodeID
	keys      int
	nodes     int
}

// walk checks n and its subtree. lo and hi, when set, are the inclusive lower
// and exclusive upper bound for every key below n.
func (v *validator[K]) walk(n *Node[K], depth int, lo, hi *K) error {
	t := v.t
	v.nodes++
	isRoot := n.id == t.root

	for i, k := range n.key {
		if i > 0 && t.cmp(n.key[i-1], k) >= 0 {
			return corruptf("node %d: keys not strictly ascending at %d", n.id, i)
		}
		if lo != nil && t.cmp(k, *lo) < 0 {
			return corruptf("node %d: key %v below separator %v", n.id, k, *lo)
		}
		if hi != nil && t.cmp(k, *hi) >= 0 {
			return corruptf("node %d: key %v not below separator %v", n.id, k, *hi)
		}
	}

	maxKeys := t.limits.maxKeys(n.nodeType)
	if len(n.key) > maxKeys {
		return corruptf("node %d: %d keys exceeds max %d", n.id, len(n.key), maxKeys)
	}

	if n.isLeaf() {
		if len(n.children) != 0 {
			return corruptf("leaf %d has children", n.id)
		}
		if !isRoot && len(n.key) < t.limits.MinLeafKeys {
			return corruptf("leaf %d: %d keys below min %d", n.id, len(n.key), t.limits.MinLeafKeys)
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return corruptf("leaf %d at depth %d, expected %d", n.id, depth, v.leafDepth)
		}
		v.leaves = append(v.leaves, n.id)
		v.keys += len(n.key)
		return nil
	}

	if len(n.children) != len(n.key)+1 {
		return corruptf("internal %d: %d children for %d keys", n.id, len(n.children), len(n.key))
	}
	if isRoot {
		if len(n.key) < 1 {
			return corruptf("internal root %d has no keys", n.id)
		}
	} else if len(n.children) < t.limits.MinInternalChildren {
		return corruptf("internal %d: %d children below min %d", n.id, len(n.children), t.limits.MinInternalChildren)
	}

	for i, cid := range n.children {
		c, ok := t.nodes.get(cid)
		if !ok {
			return corruptf("internal %d: child %d not found in arena", n.id, cid)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.key[i-1]
		}
		if i < len(n.key) {
			chi = &n.key[i]
		}
		if err := v.walk(c, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator[K]) checkChain() error {
	t := v.t
	var prev *K
	id := v.leaves[0]
	for i, want := range v.leaves {
		if id != want {
			return corruptf("leaf chain: position %d is node %d, expected %d", i, id, want)
		}
		leaf, ok := t.nodes.get(id)
		if !ok {
			return corruptf("leaf chain: node %d not found in arena", id)
		}
		for j := range leaf.key {
			if prev != nil && t.cmp(*prev, leaf.key[j]) >= 0 {
				return corruptf("leaf chain: key %v after %v", leaf.key[j], *prev)
			}
			prev = &leaf.key[j]
		}
		id = leaf.next
	}
	if id != 0 {
		return corruptf("leaf chain: rightmost leaf points to %d", id)
	}
	return nil
}
