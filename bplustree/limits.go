package bplus

// Limits holds the capacity thresholds derived from the order n.
// All bounds are inclusive.
type Limits struct {
	MinInternalChildren int // ceil(n/2)
	MaxInternalChildren int // n
	MinInternalKeys     int
	MaxInternalKeys     int
	MinLeafKeys         int // ceil((n-1)/2)
	MaxLeafKeys         int // n-1

	// e.g. n == 4: a leaf overflowing to 4 keys splits into [0 1] [2 3]
	// e.g. n == 5: a leaf overflowing to 5 keys splits into [0 1 2] [3 4]
	LeafSplit int

	// e.g. n == 4: keys [0 1 2 3] split into [0 1] and [3], key 2 is promoted
	// e.g. n == 5: keys [0 1 2 3 4] split into [0 1] and [3 4], key 2 is promoted
	InternalKeySplit int

	// e.g. n == 4: children [0 1 2 3 4] split into [0 1 2] [3 4]
	// e.g. n == 5: children [0 1 2 3 4 5] split into [0 1 2] [3 4 5]
	InternalChildrenSplit int
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// NewLimits derives the thresholds for order n. It does not validate n.
func NewLimits(n int) Limits {
	l := Limits{
		MinInternalChildren:   ceilDiv(n, 2),
		MaxInternalChildren:   n,
		MinLeafKeys:           ceilDiv(n-1, 2),
		MaxLeafKeys:           n - 1,
		LeafSplit:             ceilDiv(n, 2),
		InternalKeySplit:      ceilDiv(n+1, 2) - 1,
		InternalChildrenSplit: ceilDiv(n+1, 2),
	}
	l.MinInternalKeys = l.MinInternalChildren - 1
	l.MaxInternalKeys = l.MaxInternalChildren - 1
	return l
}

func (l Limits) minKeys(nt NodeType) int {
	if nt == NodeLeaf {
		return l.MinLeafKeys
	}
	return l.MinInternalKeys
}

func (l Limits) maxKeys(nt NodeType) int {
	if nt == NodeLeaf {
		return l.MaxLeafKeys
	}
	return l.MaxInternalKeys
}

// fits reports whether two siblings of type nt can be merged into one node.
// Merging internal nodes pulls the separator down from the parent, so it
// counts as one extra key.
func (l Limits) fits(nt NodeType, left, right int) bool {
	if nt == NodeLeaf {
		return left+right <= l.MaxLeafKeys
	}
	return left+right+1 <= l.MaxInternalKeys
}
