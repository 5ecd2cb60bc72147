package linked_seq

import (
	"math"
	"strconv"
	"strings"
)

// String renders s as "<1.1, [2.2], 3.3>", with the current element in
// brackets. An empty sequence is "<>".
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteString(", ")
		}
		if n == s.cursor {
			b.WriteByte('[')
			b.WriteString(formatElem(n.elem))
			b.WriteByte(']')
		} else {
			b.WriteString(formatElem(n.elem))
		}
	}
	b.WriteByte('>')
	return b.String()
}

// formatElem writes v in shortest round-trip decimal form, always with a
// fractional part ("1.0"), switching to "1.0E7" notation outside [1e-3, 1e7).
func formatElem(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		str := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(str, ".") {
			str += ".0"
		}
		return str
	}

	// FormatFloat gives "1.5e+07"; we want "1.5E7".
	str := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(str, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}

// Equal reports whether s and other render to the same string. Equal
// sequences hold the same values and have the same current position.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.String() == other.String()
}

// ValueEqual reports whether s and other hold equal values in the same
// order, ignoring the current element.
func (s *Sequence) ValueEqual(other *Sequence) bool {
	if other == nil || s.count != other.count {
		return false
	}
	a, b := s.head, other.head
	for ; a != nil && b != nil; a, b = a.next, b.next {
		if a.elem != b.elem {
			return false
		}
	}
	return a == nil && b == nil
}
