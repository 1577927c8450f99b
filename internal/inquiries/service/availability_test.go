package service

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 time.Time
		want                       bool
	}{
		{"partial overlap at tail", day(15), day(18), day(16), day(20), true},
		{"partial overlap at head", day(16), day(20), day(15), day(18), true},
		{"identical spans", day(15), day(18), day(15), day(18), true},
		{"existing contains candidate", day(10), day(20), day(12), day(14), true},
		{"candidate contains existing", day(12), day(14), day(10), day(20), true},
		{"back to back, candidate after", day(15), day(18), day(18), day(20), false},
		{"back to back, candidate before", day(18), day(20), day(15), day(18), false},
		{"disjoint", day(1), day(5), day(10), day(12), false},
		{"single shared day", day(15), day(16), day(15), day(16), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
		})
	}
}

// The two-inequality overlap test must agree with the spelled-out
// case analysis: start inside, end inside, or full containment.
func TestOverlapsMatchesCaseAnalysis(t *testing.T) {
	spans := []struct{ start, end time.Time }{
		{day(1), day(3)}, {day(1), day(5)}, {day(2), day(4)},
		{day(3), day(5)}, {day(4), day(8)}, {day(5), day(6)},
		{day(1), day(8)},
	}

	caseAnalysis := func(s1, e1, s2, e2 time.Time) bool {
		startInside := (s1.After(s2) || s1.Equal(s2)) && s1.Before(e2)
		endInside := e1.After(s2) && (e1.Before(e2) || e1.Equal(e2))
		contains := (s1.Before(s2) || s1.Equal(s2)) && (e1.After(e2) || e1.Equal(e2))
		return startInside || endInside || contains
	}

	for _, a := range spans {
		for _, b := range spans {
			got := Overlaps(a.start, a.end, b.start, b.end)
			want := caseAnalysis(a.start, a.end, b.start, b.end)
			if got != want {
				t.Errorf("[%v,%v) vs [%v,%v): Overlaps=%v, case analysis=%v",
					a.start, a.end, b.start, b.end, got, want)
			}
		}
	}
}
