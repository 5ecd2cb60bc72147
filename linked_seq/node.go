package linked_seq

// node is one cell of a sequence's chain. A nil *node is the empty chain.
type node struct {
	elem float64
	next *node
}

// addNodeAfter links a new node holding elem directly after n.
func (n *node) addNodeAfter(elem float64) {
	n.next = &node{elem: elem, next: n.next}
}

// copyChain allocates an independent copy of the chain starting at start and
// returns its first and last nodes (both nil for an empty chain).
func copyChain(start *node) (head, tail *node) {
	head, tail, _, _ = copyChainMarked(start, nil)
	return head, tail
}

// copyChainMarked is copyChain that also returns the copy of mark and the copy
// of the node before mark. newMark is nil if mark is nil or not on the chain;
// newBeforeMark is nil if newMark is nil or is the new head.
func copyChainMarked(start, mark *node) (head, tail, newMark, newBeforeMark *node) {
	for n := start; n != nil; n = n.next {
		c := &node{elem: n.elem}
		if n == mark {
			newMark = c
			newBeforeMark = tail
		}
		if head == nil {
			head = c
		} else {
			tail.next = c
		}
		tail = c
	}
	return head, tail, newMark, newBeforeMark
}
