package render

import (
	"fmt"
	"strconv"
	"strings"

	bplus "BPlusViz/bplustree"
)

// DOT renders a snapshot as a Graphviz script. Nodes are named by their path
// from the root (n, n_0, n_0_1, ...), each parent slot <cI> points at child I,
// consecutive leaves are chained, and every level shares a rank. If highlight
// is non-nil and present in a leaf, a "New Key" marker points at it.
func DOT[K comparable](s bplus.Snapshot[K], highlight *K) string {
	g := dotGraph[K]{highlight: highlight}
	lines := []string{"digraph G {", "  node [shape = record]"}
	if !(s.Leaf && len(s.Keys) == 0) {
		lines = append(lines, g.node(s, "n", 0)...)
		for _, paths := range g.levels {
			lines = append(lines, "  { rank = same; "+strings.Join(paths, "; ")+"; }")
		}
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

type dotGraph[K comparable] struct {
	highlight *K
	levels    [][]string
	prevLeaf  string
}

func (g *dotGraph[K]) node(s bplus.Snapshot[K], path string, level int) []string {
	if level == len(g.levels) {
		g.levels = append(g.levels, nil)
	}
	g.levels[level] = append(g.levels[level], path)

	var lines []string
	if i := strings.LastIndex(path, "_"); i >= 0 {
		lines = append(lines, fmt.Sprintf("  %s:c%s -> %s", path[:i], path[i+1:], path))
	}

	var label []string
	if s.Leaf {
		if g.prevLeaf != "" {
			lines = append(lines, fmt.Sprintf("  %s -> %s", g.prevLeaf, path))
		}
		g.prevLeaf = path

		for _, k := range s.Keys {
			if g.highlight != nil && k == *g.highlight {
				lines = append(lines,
					`  new_key [label = "New Key", shape = plaintext]`,
					"  new_key -> "+path+":nk")
				label = append(label, "<nk>"+fmt.Sprint(k))
				continue
			}
			label = append(label, fmt.Sprint(k))
		}
	} else {
		for i := range s.Children {
			label = append(label, "<c"+strconv.Itoa(i)+">")
			if i < len(s.Keys) {
				label = append(label, fmt.Sprint(s.Keys[i]))
			}
		}
	}
	lines = append(lines, fmt.Sprintf(`  %s [label = "%s"]`, path, strings.Join(label, "|")))

	for i, c := range s.Children {
		lines = append(lines, g.node(c, path+"_"+strconv.Itoa(i), level+1)...)
	}
	return lines
}
