package booking

import (
	"errors"
	"testing"
	"time"

	"fritidsbo/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func reservation(id, start, end, status string) models.Reservation {
	return models.Reservation{
		ID:          id,
		FastighetID: "fast-1",
		StartDatum:  start,
		SlutDatum:   end,
		GastNamn:    "Anna Andersson",
		GastEmail:   "anna@example.com",
		Status:      status,
	}
}

func TestCheckAvailability_Overlap(t *testing.T) {
	existing := []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusConfirmed),
	}

	tests := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{"fully before", "2024-06-01", "2024-06-05", true},
		{"fully after", "2024-06-20", "2024-06-25", true},
		{"identical range", "2024-06-10", "2024-06-15", false},
		{"contained inside", "2024-06-11", "2024-06-14", false},
		{"containing existing", "2024-06-08", "2024-06-18", false},
		{"overlapping tail", "2024-06-14", "2024-06-20", false},
		{"overlapping head", "2024-06-05", "2024-06-11", false},
		// Inclusive boundaries: touching ranges conflict. No back-to-back
		// bookings on the turnover day.
		{"candidate starts on existing end", "2024-06-15", "2024-06-20", false},
		{"candidate ends on existing start", "2024-06-05", "2024-06-10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CheckAvailability(existing, mustDate(t, tt.start), mustDate(t, tt.end), OverlapPolicy{})
			if err != nil {
				t.Fatalf("CheckAvailability failed: %v", err)
			}
			if result.Available != tt.available {
				t.Errorf("Available = %v, want %v", result.Available, tt.available)
			}
			if !tt.available && result.Konflikt == nil {
				t.Error("expected conflicting reservation to be referenced")
			}
			if tt.available && result.Konflikt != nil {
				t.Errorf("unexpected conflict: %+v", result.Konflikt)
			}
		})
	}
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"zero nights", "2024-06-10", "2024-06-10"},
		{"end before start", "2024-06-15", "2024-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckAvailability(nil, mustDate(t, tt.start), mustDate(t, tt.end), OverlapPolicy{})
			var rangeErr *InvalidRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected InvalidRangeError, got %v", err)
			}
		})
	}
}

func TestCheckAvailability_CancelledPolicy(t *testing.T) {
	existing := []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusCancelled),
	}
	start := mustDate(t, "2024-06-12")
	end := mustDate(t, "2024-06-14")

	result, err := CheckAvailability(existing, start, end, OverlapPolicy{})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Error("cancelled reservation should not block under the default policy")
	}

	result, err = CheckAvailability(existing, start, end, OverlapPolicy{BlockCancelled: true})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if result.Available {
		t.Error("cancelled reservation should block when BlockCancelled is set")
	}
}

func TestCheckAvailability_FirstConflictReturned(t *testing.T) {
	existing := []models.Reservation{
		reservation("res-1", "2024-06-01", "2024-06-05", models.StatusConfirmed),
		reservation("res-2", "2024-06-10", "2024-06-15", models.StatusConfirmed),
		reservation("res-3", "2024-06-12", "2024-06-18", models.StatusUnconfirmed),
	}

	result, err := CheckAvailability(existing, mustDate(t, "2024-06-11"), mustDate(t, "2024-06-20"), OverlapPolicy{})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if result.Available {
		t.Fatal("expected a conflict")
	}
	if result.Konflikt.ID != "res-2" {
		t.Errorf("Konflikt.ID = %s, want res-2 (first match in scan order)", result.Konflikt.ID)
	}
}

func TestCheckAvailability_SkipsUnparseableDates(t *testing.T) {
	existing := []models.Reservation{
		reservation("res-1", "not-a-date", "2024-06-15", models.StatusConfirmed),
	}

	result, err := CheckAvailability(existing, mustDate(t, "2024-06-10"), mustDate(t, "2024-06-12"), OverlapPolicy{})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Error("reservation with unparseable dates should be skipped")
	}
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	existing := []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusConfirmed),
	}
	start := mustDate(t, "2024-06-12")
	end := mustDate(t, "2024-06-20")

	first, err := CheckAvailability(existing, start, end, OverlapPolicy{})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	second, err := CheckAvailability(existing, start, end, OverlapPolicy{})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if first.Available != second.Available {
		t.Error("repeated checks with identical inputs disagreed")
	}
	if first.Konflikt.ID != second.Konflikt.ID {
		t.Error("repeated checks referenced different conflicts")
	}
	if len(existing) != 1 || existing[0].ID != "res-1" {
		t.Error("input slice was mutated")
	}
}
