// Package bplus: tree inspection for debugging.
// Use Dump(w) to print a human-readable, level by level view of the node graph.

package bplus

import (
	"fmt"
	"io"
)

// Dump writes every node to w in BFS order, one block per level:
// internal nodes with their separators and child ids, leaves with their keys
// and successor id.
func (t *BPlusTree[K]) Dump(w io.Writer) error {
	p := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := p("B+ tree order=%d keys=%d height=%d root=%d\n", t.order, t.size, t.Height(), t.root); err != nil {
		return err
	}
	if t.IsEmpty() {
		return p("  (empty tree)\n")
	}

	queue := []NodeID{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		if err := p("  Level %d:\n", level); err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			n := t.node(queue[i])
			var err error
			if n.isLeaf() {
				err = p("    [node %d] LEAF keys=%v next=%d\n", n.id, n.key, n.next)
			} else {
				err = p("    [node %d] INTERNAL keys=%v children=%v\n", n.id, n.key, n.children)
				queue = append(queue, n.children...)
			}
			if err != nil {
				return err
			}
		}
		queue = queue[size:]
		level++
	}
	return nil
}
