package core

// Candidates represents a bitmask of possible digits (1-9) for a Sudoku cell.
// Bit positions 1-9 correspond to digits 1-9. Bit 0 is unused.
type Candidates uint16

// FullCandidates is the bitmask with every digit 1-9 set, the initial state
// of every cell in a freshly constructed Grid.
const FullCandidates Candidates = 0b1_1111_1111 << 1

// NewCandidates builds a Candidates bitmask from a slice of digits.
func NewCandidates(digits ...int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Add(d)
	}
	return c
}

// Has returns true if digit is a candidate.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return c&(1<<digit) != 0
}

// Add sets digit as a candidate and returns the new bitmask.
func (c Candidates) Add(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c | (1 << digit)
}

// Remove clears digit from the candidate set and returns the new bitmask.
func (c Candidates) Remove(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c &^ (1 << digit)
}

// RemoveAll clears every digit present in other and returns the new bitmask.
func (c Candidates) RemoveAll(other Candidates) Candidates {
	return c &^ other
}

// Count returns the number of candidate digits still set.
func (c Candidates) Count() int {
	count := 0
	for v := c; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// Only returns the single remaining digit and true if exactly one candidate
// is set, otherwise (0, false).
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for i := 1; i <= 9; i++ {
		if c.Has(i) {
			return i, true
		}
	}
	return 0, false
}

// Digits returns the candidate digits in ascending order.
func (c Candidates) Digits() []int {
	var out []int
	for i := 1; i <= 9; i++ {
		if c.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// IsEmpty returns true if no digit remains a candidate.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns the digits present in both bitmasks.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Union returns the digits present in either bitmask.
func (c Candidates) Union(other Candidates) Candidates {
	return c | other
}

// Equals returns true if the two candidate sets hold the same digits.
func (c Candidates) Equals(other Candidates) bool {
	return c == other
}

// String renders the candidate set as e.g. "{2,5,9}", used in naked-subset
// move explanations and in test failure messages.
func (c Candidates) String() string {
	if c == 0 {
		return "{}"
	}
	digits := c.Digits()
	s := "{"
	for i, d := range digits {
		if i > 0 {
			s += ","
		}
		s += string(rune('0' + d))
	}
	return s + "}"
}
