package bplus

import (
	"encoding/json"
	"slices"
)

// Snapshot is a read-only copy of one node and its subtree.
// A leaf carries only Keys; an internal node carries separator Keys and
// len(Keys)+1 Children.
type Snapshot[K any] struct {
	Leaf     bool
	Keys     []K
	Children []Snapshot[K]
}

// Export copies the current shape of the tree. The result shares no memory
// with the tree and is unaffected by later mutations.
func (t *BPlusTree[K]) Export() Snapshot[K] {
	return t.export(t.node(t.root))
}

func (t *BPlusTree[K]) export(n *Node[K]) Snapshot[K] {
	s := Snapshot[K]{
		Leaf: n.isLeaf(),
		Keys: slices.Clone(n.key),
	}
	if s.Keys == nil {
		s.Keys = []K{}
	}
	if n.isLeaf() {
		return s
	}
	s.Children = make([]Snapshot[K], 0, len(n.children))
	for _, c := range n.children {
		s.Children = append(s.Children, t.export(t.node(c)))
	}
	return s
}

// Elements returns the node as a flat sequence. For a leaf this is its keys;
// for an internal node children and separators alternate:
// child0, key0, child1, key1, ..., childN. Children are Snapshot values.
func (s Snapshot[K]) Elements() []interface{} {
	out := make([]interface{}, 0, len(s.Keys)+len(s.Children))
	if s.Leaf {
		for _, k := range s.Keys {
			out = append(out, k)
		}
		return out
	}
	for i, c := range s.Children {
		out = append(out, c)
		if i < len(s.Keys) {
			out = append(out, s.Keys[i])
		}
	}
	return out
}

// Leaves returns the leaf snapshots from left to right.
func (s Snapshot[K]) Leaves() []Snapshot[K] {
	if s.Leaf {
		return []Snapshot[K]{s}
	}
	var out []Snapshot[K]
	for _, c := range s.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// MarshalJSON encodes the snapshot as nested arrays, e.g. [[1,2],3,[3,4]].
func (s Snapshot[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Elements())
}
