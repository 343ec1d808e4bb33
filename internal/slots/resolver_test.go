package slots

import (
	"testing"
	"time"

	"turfbook/internal/facility"
)

func interval(startHour, startMin, endHour, endMin int) Interval {
	return Interval{
		Start: time.Date(2026, 9, 7, startHour, startMin, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 7, endHour, endMin, 0, 0, time.UTC),
	}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", interval(10, 0, 11, 0), interval(10, 0, 11, 0), true},
		{"partial overlap", interval(10, 0, 11, 0), interval(10, 30, 11, 30), true},
		{"contained", interval(10, 0, 12, 0), interval(10, 30, 11, 0), true},
		{"touching endpoints", interval(10, 0, 11, 0), interval(11, 0, 12, 0), false},
		{"disjoint", interval(10, 0, 11, 0), interval(13, 0, 14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// symmetry
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cfg := testConfig(6, 22, 0)
	court := facility.Court{ID: "turf-a", DurationMins: 60}
	candidates := Generate(day(t, cfg), court, cfg)

	// one existing reservation 10:00-11:00
	booked := []Interval{interval(10, 0, 11, 0)}

	classified := Classify(candidates, booked)
	if len(classified) != len(candidates) {
		t.Fatalf("Classify() returned %d slots, want %d", len(classified), len(candidates))
	}

	for _, slot := range classified {
		want := StatusFree
		if slot.Start.Hour() == 10 {
			want = StatusBooked
		}
		if slot.Status != want {
			t.Errorf("slot at %s classified %s, want %s", slot.Start.Format("15:04"), slot.Status, want)
		}
	}
}

func TestClassifyNoReservations(t *testing.T) {
	candidates := []Interval{interval(6, 0, 7, 0), interval(7, 0, 8, 0)}

	for _, slot := range Classify(candidates, nil) {
		if slot.Status != StatusFree {
			t.Errorf("slot at %s classified %s, want free", slot.Start.Format("15:04"), slot.Status)
		}
	}
}

func TestClassifyOverlappingExistingReservations(t *testing.T) {
	// inconsistent store data is tolerated, not repaired
	candidates := []Interval{interval(10, 0, 11, 0)}
	booked := []Interval{interval(10, 0, 11, 0), interval(10, 30, 11, 30)}

	classified := Classify(candidates, booked)
	if classified[0].Status != StatusBooked {
		t.Errorf("slot classified %s, want booked", classified[0].Status)
	}
}

func TestClassifyEmptyCandidates(t *testing.T) {
	if got := Classify(nil, []Interval{interval(10, 0, 11, 0)}); len(got) != 0 {
		t.Errorf("Classify(nil) = %v, want empty", got)
	}
}
