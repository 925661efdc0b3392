// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child ids)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + next id)


- keys: strictly ascending, no duplicates
- internal nodes: len(children) == len(keys)+1
- child[0] < keys[0] <= child[1] < keys[1] ... <= child[last]
- leaf nodes linked with `next` (a handle into the arena, never an owner)
- all leaf nodes at same depth
- every node except the root respects the occupancy bounds in Limits

*/
package bplus

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (nt NodeType) String() string {
	if nt == NodeLeaf {
		return "LEAF"
	}
	return "INTERNAL"
}

// NodeID addresses a node inside the tree's arena. The zero value means "no node".
type NodeID int64

type Node[K any] struct {
	id       NodeID
	nodeType NodeType
	key      []K      // keys in the node (sorted keys)
	children []NodeID // only for internal node
	next     NodeID   // only for leaf node
}

func (n *Node[K]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// pathEntry is one step of a root-to-leaf descent: the internal node visited
// and the index of the child that was followed.
type pathEntry[K any] struct {
	node *Node[K]
	idx  int
}

type BPlusTree[K any] struct {
	id      uuid.UUID
	root    NodeID
	order   int
	limits  Limits
	nodes   *arena[K]
	cmp     func(a, b K) int // comparison function for keys
	size    int
	version uint64

	log             logrus.FieldLogger
	checkInvariants bool
}
