package foreign

// Index protocol shared by the qualifier producer and the enhancement
// consumer. Both sides must derive node numbering from these functions
// and never re-implement the arithmetic: a divergence silently pairs
// qualifiers with the wrong nodes.
//
// Numbering: the root takes index 0 and every classifier argument is
// visited in declared order, each argument occupying a contiguous span
// of SubtreeSize indices starting right after the span of its left
// sibling. A wildcard argument occupies exactly one index no matter how
// large its bound is; its interior is never numbered.

// SubtreeSize returns the number of indices the node's subtree occupies.
func SubtreeSize(n *Node) int {
	if n == nil {
		return 0
	}
	if n.Kind != KindClassifier {
		return 1
	}
	size := 1
	for _, a := range n.Args {
		if a.IsWildcard() {
			size++
			continue
		}
		size += SubtreeSize(a.Type)
	}
	return size
}

// ForEachIndexed visits every indexed slot of the tree in index order.
// Ordinary nodes are passed with wild == nil; a wildcard slot is passed
// with node == nil and its wildcard payload. The walk does not descend
// into wildcard bounds.
func ForEachIndexed(root *Node, fn func(index int, node *Node, wild *Wildcard)) {
	walkIndexed(root, 0, fn)
}

func walkIndexed(n *Node, index int, fn func(int, *Node, *Wildcard)) {
	if n == nil {
		return
	}
	fn(index, n, nil)
	if n.Kind != KindClassifier {
		return
	}
	cursor := index + 1
	for _, a := range n.Args {
		if a.IsWildcard() {
			fn(cursor, nil, a.Wildcard)
			cursor++
			continue
		}
		walkIndexed(a.Type, cursor, fn)
		cursor += SubtreeSize(a.Type)
	}
}

// IndexOf returns the index of target within root's numbering, or -1
// when target is not an indexed node (for example inside a wildcard
// bound). Pointer identity is used.
func IndexOf(root, target *Node) int {
	found := -1
	ForEachIndexed(root, func(idx int, node *Node, _ *Wildcard) {
		if found < 0 && node == target {
			found = idx
		}
	})
	return found
}
