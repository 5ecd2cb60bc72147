package linked_seq

import "iter"

// Values iterates over the elements from first to last. The cursor is not
// used or moved. s must not be modified during iteration.
func (s *Sequence) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Slice returns the elements in order.
func (s *Sequence) Slice() []float64 {
	els := make([]float64, 0, s.count)
	for v := range s.Values() {
		els = append(els, v)
	}
	return els
}
