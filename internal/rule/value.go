package rule

// maxNeighbors is the largest neighbor count any supported neighborhood can
// produce (Moore, 3x3x3 minus center).
const maxNeighbors = 26

// Value is a constant-time membership predicate over neighbor counts.
// Bit N is set iff neighbor count N satisfies the predicate; bits 0-26 are
// meaningful and counts beyond 26 never match. A 4-byte bitmask keeps rule
// evaluation a single branch-free bit test per cell.
type Value uint32

// FromCounts builds a Value matching exactly the given neighbor counts.
// Counts outside [0, 26] are ignored; no neighborhood can produce them.
func FromCounts(counts ...int) Value {
	var v Value
	for _, c := range counts {
		if c >= 0 && c <= maxNeighbors {
			v |= 1 << uint(c)
		}
	}
	return v
}

// FromRange builds a Value matching every count in [min, max] inclusive.
// The range is clipped to [0, 26].
func FromRange(min, max int) Value {
	if min < 0 {
		min = 0
	}
	if max > maxNeighbors {
		max = maxNeighbors
	}
	var v Value
	for c := min; c <= max; c++ {
		v |= 1 << uint(c)
	}
	return v
}

// Union returns a Value matching any count that v or o matches. It lets
// composite rules like "13-14 or 17-19" be built from simpler pieces.
func (v Value) Union(o Value) Value { return v | o }

// Matches reports whether the given neighbor count satisfies the predicate.
func (v Value) Matches(count int) bool {
	if count < 0 || count > maxNeighbors {
		return false
	}
	return v&(1<<uint(count)) != 0
}
