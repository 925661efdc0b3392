package render

import (
	"fmt"
	"strings"

	bplus "BPlusViz/bplustree"
)

// Text renders a snapshot one level per line, nodes as bracketed key lists:
//
//	Level 0: [3]
//	Level 1: [1 2] [3 4 5]
func Text[K any](s bplus.Snapshot[K]) string {
	var b strings.Builder
	level := []bplus.Snapshot[K]{s}
	for depth := 0; len(level) > 0; depth++ {
		if depth > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Level %d:", depth)
		var next []bplus.Snapshot[K]
		for _, n := range level {
			fmt.Fprintf(&b, " %v", n.Keys)
			next = append(next, n.Children...)
		}
		level = next
	}
	return b.String()
}
