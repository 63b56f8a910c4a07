package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTally_InsertionOrder(t *testing.T) {
	tally := NewTally()
	for _, k := range []string{"b", "a", "b", "c", "a", "b"} {
		tally.Inc(k)
	}

	want := []Entry{{"b", 3}, {"a", 2}, {"c", 1}}
	if diff := cmp.Diff(want, tally.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if tally.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tally.Len())
	}
	if tally.Total() != 6 {
		t.Errorf("Total() = %d, want 6", tally.Total())
	}
}

func TestTally_AbsentIsZero(t *testing.T) {
	tally := NewTally()
	tally.Inc("present")

	if got := tally.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
	if tally.has("missing") {
		t.Error("has(missing) = true, want false")
	}
	if !tally.has("present") {
		t.Error("has(present) = false, want true")
	}
	// Reading a missing key must not create it.
	if tally.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tally.Len())
	}
}

func TestTally_IncReturnsCount(t *testing.T) {
	tally := NewTally()
	for want := 1; want <= 3; want++ {
		if got := tally.Inc("k"); got != want {
			t.Errorf("Inc() = %d, want %d", got, want)
		}
	}
}

func TestTally_Max(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		want   Entry
		wantOK bool
	}{
		{"empty", nil, Entry{}, false},
		{"single", []string{"/a"}, Entry{"/a", 1}, true},
		{"clear winner", []string{"/a", "/b", "/b"}, Entry{"/b", 2}, true},
		{"tie goes to first seen", []string{"/b", "/a", "/a", "/b"}, Entry{"/b", 2}, true},
		{"later overtakes", []string{"/a", "/b", "/b", "/a", "/b"}, Entry{"/b", 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := NewTally()
			for _, k := range tt.keys {
				tally.Inc(k)
			}
			got, ok := tally.Max()
			if ok != tt.wantOK {
				t.Fatalf("Max() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Max() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTally_Above(t *testing.T) {
	tally := NewTally()
	counts := map[string]int{"low": 10, "high": 11}
	for _, k := range []string{"high", "low"} {
		for i := 0; i < counts[k]; i++ {
			tally.Inc(k)
		}
	}
	tally.Inc("zero-ish")

	got := tally.Above(10)
	want := []Entry{{"high", 11}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Above(10) mismatch (-want +got):\n%s", diff)
	}

	if got := tally.Above(100); got == nil || len(got) != 0 {
		t.Errorf("Above(100) = %v, want empty non-nil slice", got)
	}
}
