package bplus

// newNode creates a node of given type, registers it in the arena and returns its pointer.
// Slices get room for one overflow entry so a split never reallocates first.
func (t *BPlusTree[K]) newNode(nodeType NodeType) *Node[K] {
	n := &Node[K]{nodeType: nodeType}
	if nodeType == NodeInternal {
		n.key = make([]K, 0, t.limits.MaxInternalKeys+1)
		n.children = make([]NodeID, 0, t.limits.MaxInternalChildren+1)
	} else {
		n.key = make([]K, 0, t.limits.MaxLeafKeys+1)
	}
	t.nodes.allocate(n)
	return n
}
