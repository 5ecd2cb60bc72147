package linked_seq

import (
	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

// Sequence is an ordered chain of float64 values with an optional current
// element (the cursor).
//
// The Sequence owns every node reachable from head; tail, cursor and
// precursor only point into that chain. precursor is the node right before
// cursor, and is nil whenever cursor is nil or cursor is head.
//
// The zero value is an empty sequence. A Sequence is not safe for concurrent
// use.
type Sequence struct {
	head      *node
	tail      *node
	cursor    *node
	precursor *node
	count     uint64
}

// New returns an empty sequence.
func New() *Sequence {
	return &Sequence{}
}

// FromValues builds a sequence holding values in order, with the last one
// current.
func FromValues(values ...float64) *Sequence {
	s := New()
	for _, v := range values {
		s.AddAfter(v)
	}
	return s
}

// AddBefore inserts elem before the current element, or at the front if there
// is none. The new element becomes current.
func (s *Sequence) AddBefore(elem float64) {
	if s.cursor == nil || s.cursor == s.head {
		s.head = &node{elem: elem, next: s.head}
		if s.tail == nil {
			s.tail = s.head
		}
		s.cursor = s.head
		s.precursor = nil
	} else {
		s.precursor.addNodeAfter(elem)
		s.cursor = s.precursor.next
	}
	s.count++
}

// AddAfter inserts elem after the current element, or at the end if there is
// none. The new element becomes current.
func (s *Sequence) AddAfter(elem float64) {
	switch {
	case s.cursor != nil:
		s.cursor.addNodeAfter(elem)
		if s.cursor == s.tail {
			s.tail = s.cursor.next
		}
		s.precursor = s.cursor
		s.cursor = s.cursor.next
	case s.tail == nil:
		s.head = &node{elem: elem}
		s.tail = s.head
		s.cursor = s.head
		s.precursor = nil
	default:
		s.tail.addNodeAfter(elem)
		s.precursor = s.tail
		s.tail = s.tail.next
		s.cursor = s.tail
	}
	s.count++
}

// Start makes the first element current. An empty sequence has no current
// element afterwards.
func (s *Sequence) Start() {
	s.cursor = s.head
	s.precursor = nil
}

// Advance moves the cursor to the next element. Advancing from the last
// element leaves no current element.
func (s *Sequence) Advance() error {
	if s.cursor == nil {
		return errors.WithStack(ErrInvalidState)
	}
	s.precursor = s.cursor
	s.cursor = s.cursor.next
	if s.cursor == nil {
		s.precursor = nil
	}
	return nil
}

// IsCurrent reports whether there is a current element.
func (s *Sequence) IsCurrent() bool {
	return s.cursor != nil
}

// Current returns the value of the current element.
func (s *Sequence) Current() (float64, error) {
	if s.cursor == nil {
		return 0, errors.WithStack(ErrInvalidState)
	}
	return s.cursor.elem, nil
}

// RemoveCurrent removes the current element. The element after it, if any,
// becomes current.
func (s *Sequence) RemoveCurrent() error {
	if s.cursor == nil {
		return errors.WithStack(ErrInvalidState)
	}

	switch {
	case s.cursor == s.head:
		s.head = s.head.next
		s.cursor = s.head
		if s.head == nil {
			s.tail = nil
		}
	case s.cursor == s.tail:
		std.Assert(s.precursor != nil && s.precursor.next == s.cursor)
		s.tail = s.precursor
		s.tail.next = nil
		s.cursor = nil
		s.precursor = nil
	default:
		std.Assert(s.precursor != nil && s.precursor.next == s.cursor)
		s.precursor.next = s.cursor.next
		s.cursor = s.cursor.next
	}
	s.count--
	return nil
}

// Size returns the number of elements.
func (s *Sequence) Size() uint64 {
	return s.count
}

// AddAll appends a copy of every element of other to the end of s. The
// cursor of s does not move and other is unchanged. other may be s itself.
func (s *Sequence) AddAll(other *Sequence) error {
	if other == nil {
		return errors.WithStack(ErrNullArgument)
	}
	count := std.SumAssumeNoOverflow(s.count, other.count)

	head, tail := copyChain(other.head)
	if head == nil {
		return nil
	}
	if s.tail == nil {
		s.head = head
	} else {
		s.tail.next = head
	}
	s.tail = tail
	s.count = count
	return nil
}

// Clone returns an independent copy of s whose current element is at the
// same position as the current element of s.
func (s *Sequence) Clone() *Sequence {
	head, tail, cursor, precursor := copyChainMarked(s.head, s.cursor)
	return &Sequence{
		head:      head,
		tail:      tail,
		cursor:    cursor,
		precursor: precursor,
		count:     s.count,
	}
}

// Concatenation returns a new sequence holding copies of the elements of s1
// followed by copies of the elements of s2, with no current element.
func Concatenation(s1, s2 *Sequence) (*Sequence, error) {
	if s1 == nil {
		return nil, errors.Wrap(ErrNullArgument, "s1")
	}
	if s2 == nil {
		return nil, errors.Wrap(ErrNullArgument, "s2")
	}

	s3 := New()
	s3.head, s3.tail = copyChain(s1.head)
	s3.count = s1.count
	if err := s3.AddAll(s2); err != nil {
		return nil, err
	}
	return s3, nil
}
