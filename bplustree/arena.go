package bplus

// arena owns every node of a tree. Parents and leaf siblings refer to nodes
// only by NodeID, so each node has exactly one owner.
type arena[K any] struct {
	nodes  map[NodeID]*Node[K]
	nextID NodeID
}

func newArena[K any]() *arena[K] {
	return &arena[K]{
		nodes:  make(map[NodeID]*Node[K]),
		nextID: 1,
	}
}

func (a *arena[K]) allocate(n *Node[K]) NodeID {
	id := a.nextID
	a.nextID++
	n.id = id
	a.nodes[id] = n
	return id
}

func (a *arena[K]) get(id NodeID) (*Node[K], bool) {
	n, ok := a.nodes[id]
	return n, ok
}

func (a *arena[K]) free(id NodeID) {
	delete(a.nodes, id)
}

func (a *arena[K]) len() int {
	return len(a.nodes)
}

// node resolves id or panics: a dangling id means the tree is corrupt.
func (t *BPlusTree[K]) node(id NodeID) *Node[K] {
	n, ok := t.nodes.get(id)
	if !ok {
		panic(corruptf("node %d not found in arena", id))
	}
	return n
}
