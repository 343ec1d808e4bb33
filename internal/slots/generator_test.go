package slots

import (
	"testing"
	"time"

	"turfbook/internal/facility"
)

func testConfig(open, close, bufferMins int) *facility.Config {
	return &facility.Config{
		Hours:      facility.Hours{Open: open, Close: close},
		BufferMins: bufferMins,
		Location:   time.UTC,
	}
}

func day(t *testing.T, cfg *facility.Config) time.Time {
	t.Helper()
	d, err := ParseDate("2026-09-07", cfg)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		open, close  int
		bufferMins   int
		durationMins int
		wantCount    int
		wantFirst    string
		wantLast     string
	}{
		{"hourly no buffer", 6, 22, 0, 60, 16, "06:00", "21:00"},
		{"hourly with buffer", 6, 22, 15, 60, 13, "06:00", "21:00"},
		{"ninety minutes", 6, 22, 0, 90, 10, "06:00", "19:30"},
		{"two hour slots", 6, 22, 30, 120, 6, "06:00", "18:30"},
		{"nothing fits", 6, 8, 0, 180, 0, "", ""},
		{"single slot fits exactly", 6, 8, 0, 120, 1, "06:00", "06:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.open, tt.close, tt.bufferMins)
			court := facility.Court{ID: "turf-a", DurationMins: tt.durationMins}

			got := Generate(day(t, cfg), court, cfg)
			if len(got) != tt.wantCount {
				t.Fatalf("Generate() returned %d slots, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if first := got[0].Start.Format("15:04"); first != tt.wantFirst {
				t.Errorf("first slot starts %s, want %s", first, tt.wantFirst)
			}
			if last := got[len(got)-1].Start.Format("15:04"); last != tt.wantLast {
				t.Errorf("last slot starts %s, want %s", last, tt.wantLast)
			}
		})
	}
}

func TestGenerateInvariants(t *testing.T) {
	cfg := testConfig(6, 22, 15)
	court := facility.Court{ID: "turf-a", DurationMins: 45}
	duration := time.Duration(court.DurationMins) * time.Minute
	buffer := time.Duration(cfg.BufferMins) * time.Minute

	slots := Generate(day(t, cfg), court, cfg)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	open := time.Date(2026, 9, 7, cfg.Hours.Open, 0, 0, 0, time.UTC)
	closing := time.Date(2026, 9, 7, cfg.Hours.Close, 0, 0, 0, time.UTC)

	for i, s := range slots {
		if s.End.Sub(s.Start) != duration {
			t.Errorf("slot %d has length %v, want %v", i, s.End.Sub(s.Start), duration)
		}
		if s.Start.Before(open) || s.End.After(closing) {
			t.Errorf("slot %d [%v, %v) outside operating window", i, s.Start, s.End)
		}
		if i > 0 {
			if gap := s.Start.Sub(slots[i-1].End); gap < buffer {
				t.Errorf("gap before slot %d is %v, want at least %v", i, gap, buffer)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	cfg := testConfig(6, 22, 0)

	d, err := ParseDate("2026-09-07", cfg)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Hour() != 0 || d.Day() != 7 {
		t.Errorf("ParseDate() = %v, want midnight on the 7th", d)
	}

	if _, err := ParseDate("07-09-2026", cfg); err == nil {
		t.Error("ParseDate() expected error for non-ISO date")
	}
}
