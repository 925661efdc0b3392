package bplus

import "slices"

// insertIntoParent places sepKey and right next to left in left's parent,
// taken from the end of path. If the parent overflows it is split and the
// promotion continues one level up, until a parent absorbs it or a new root
// is created.
func (t *BPlusTree[K]) insertIntoParent(left *Node[K], sepKey K, right *Node[K], path []pathEntry[K]) {
	for {
		if left.id == t.root {
			t.newRoot(left, sepKey, right)
			return
		}

		// get the parent and the index of the left child in the parent
		entry := path[len(path)-1]
		path = path[:len(path)-1]
		parent, idx := entry.node, entry.idx

		// keys: insert at idx, children: insert right after left (idx+1)
		parent.key = slices.Insert(parent.key, idx, sepKey)
		parent.children = slices.Insert(parent.children, idx+1, right.id)

		if len(parent.children) <= t.limits.MaxInternalChildren {
			return
		}

		left, sepKey, right = t.splitInternal(parent)
	}
}

// newRoot grows the tree by one level.
func (t *BPlusTree[K]) newRoot(left *Node[K], sepKey K, right *Node[K]) {
	root := t.newNode(NodeInternal)
	root.key = append(root.key, sepKey)
	root.children = append(root.children, left.id, right.id)
	t.root = root.id
	t.log.WithField("root", root.id).Debug("new root")
}
