package analyzer

// Entry is one key of a Tally with its count.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Tally counts occurrences per key and remembers the order keys were first seen.
// Absent keys count as zero. Entries are never removed.
type Tally struct {
	keys   []string
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Inc adds one to key and returns the new count.
func (t *Tally) Inc(key string) int {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
	return t.counts[key]
}

// Count returns the count for key, or zero if it was never seen.
func (t *Tally) Count(key string) int {
	return t.counts[key]
}

// has reports whether key has an entry.
func (t *Tally) has(key string) bool {
	_, ok := t.counts[key]
	return ok
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Entries returns all entries in first-seen order.
func (t *Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		entries = append(entries, Entry{Key: k, Count: t.counts[k]})
	}
	return entries
}

// Above returns the entries whose count is strictly greater than threshold,
// in first-seen order.
func (t *Tally) Above(threshold int) []Entry {
	entries := []Entry{}
	for _, k := range t.keys {
		if n := t.counts[k]; n > threshold {
			entries = append(entries, Entry{Key: k, Count: n})
		}
	}
	return entries
}

// Max returns the entry with the greatest count. Among equal counts the key
// seen first wins. ok is false when the tally is empty.
func (t *Tally) Max() (best Entry, ok bool) {
	for _, k := range t.keys {
		if n := t.counts[k]; !ok || n > best.Count {
			best = Entry{Key: k, Count: n}
			ok = true
		}
	}
	return best, ok
}
