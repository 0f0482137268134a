package tabu

// List is a bounded first-in-first-out memory of recent move fingerprints.
//
// A move's fingerprint is the sum of absolute cell-wise differences between
// consecutive solutions (see fingerprint in neighbor.go). Membership uses
// exact float equality: distinct moves of equal total magnitude collide.
// That is a deliberately weak criterion inherited from the design history;
// strengthening it (e.g. hashing the touched cells) would change observable
// search trajectories, so it stays as-is.
type List struct {
	capacity int
	entries  []float64
}

// NewList returns a tabu list bounded at capacity entries.
// capacity == 0 yields a list that never retains anything.
func NewList(capacity int) *List {
	return &List{
		capacity: capacity,
		entries:  make([]float64, 0, capacity),
	}
}

// Contains reports whether fp is currently tabu.
//
// Complexity: O(capacity), and capacity is small by construction.
func (l *List) Contains(fp float64) bool {
	for _, e := range l.entries {
		if e == fp {
			return true
		}
	}

	return false
}

// Push records fp as the most recent move, evicting the oldest entry once
// the list exceeds its capacity.
func (l *List) Push(fp float64) {
	l.entries = append(l.entries, fp)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
	}
}

// Len returns the current number of remembered fingerprints.
func (l *List) Len() int {
	return len(l.entries)
}
