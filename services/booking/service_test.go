package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fritidsbo/models"

	"go.uber.org/zap"
)

// fakeReservationRepo is an in-memory ReservationRepository.
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
	listErr      error
	createErr    error
}

func (f *fakeReservationRepo) ListByProperty(_ context.Context, fastighetID string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.FastighetID == fastighetID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListAll(_ context.Context) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Reservation(nil), f.reservations...), nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id, status string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			res := f.reservations[i]
			return &res, nil
		}
	}
	return nil, fmt.Errorf("reservation %s not found", id)
}

func (f *fakeReservationRepo) DeleteByProperty(_ context.Context, fastighetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.reservations[:0]
	for _, r := range f.reservations {
		if r.FastighetID != fastighetID {
			kept = append(kept, r)
		}
	}
	f.reservations = kept
	return nil
}

func (f *fakeReservationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reservations)
}

func newTestService(repo *fakeReservationRepo) *DefaultBookingService {
	return NewDefaultBookingService(repo, OverlapPolicy{}, zap.NewNop())
}

func validInput() models.ReservationInput {
	return models.ReservationInput{
		FastighetID: "fast-1",
		StartDatum:  "2024-06-01",
		SlutDatum:   "2024-06-05",
		GastNamn:    "Anna Andersson",
		GastEmail:   "anna@example.com",
	}
}

func TestReserve_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	res, err := svc.Reserve(ctx, validInput())
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if res.ID == "" {
		t.Error("expected an assigned id")
	}
	if res.Status != models.StatusUnconfirmed {
		t.Errorf("Status = %s, want %s", res.Status, models.StatusUnconfirmed)
	}
	if res.SkapadDatum.IsZero() {
		t.Error("expected SkapadDatum to be set")
	}

	// The created reservation is visible in a following list call.
	listed, err := svc.ListForProperty(ctx, "fast-1")
	if err != nil {
		t.Fatalf("ListForProperty failed: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != res.ID {
		t.Errorf("listed = %+v, want the created reservation", listed)
	}
}

func TestReserve_MissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.ReservationInput)
	}{
		{"fastighetId", func(in *models.ReservationInput) { in.FastighetID = "" }},
		{"startDatum", func(in *models.ReservationInput) { in.StartDatum = "" }},
		{"slutDatum", func(in *models.ReservationInput) { in.SlutDatum = "" }},
		{"gastNamn", func(in *models.ReservationInput) { in.GastNamn = "   " }},
		{"gastEmail", func(in *models.ReservationInput) { in.GastEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			repo := &fakeReservationRepo{}
			svc := newTestService(repo)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.Reserve(context.Background(), input)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != tt.field {
				t.Errorf("Field = %s, want %s", valErr.Field, tt.field)
			}
			if repo.count() != 0 {
				t.Error("no repository write may occur on validation failure")
			}
		})
	}
}

func TestReserve_MalformedDate(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo)

	input := validInput()
	input.StartDatum = "01/06/2024"

	_, err := svc.Reserve(context.Background(), input)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "startDatum" {
		t.Errorf("Field = %s, want startDatum", valErr.Field)
	}
	if repo.count() != 0 {
		t.Error("no repository write may occur on malformed input")
	}
}

func TestReserve_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		slut string
	}{
		{"zero nights", "2024-06-10"},
		{"end before start", "2024-06-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{}
			svc := newTestService(repo)

			input := validInput()
			input.StartDatum = "2024-06-10"
			input.SlutDatum = tt.slut

			_, err := svc.Reserve(context.Background(), input)
			var rangeErr *InvalidRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected InvalidRangeError, got %v", err)
			}
			if repo.count() != 0 {
				t.Error("no repository write may occur on an invalid range")
			}
		})
	}
}

func TestReserve_DatesUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusConfirmed),
	}}
	svc := newTestService(repo)

	input := validInput()
	input.StartDatum = "2024-06-12"
	input.SlutDatum = "2024-06-18"

	_, err := svc.Reserve(context.Background(), input)
	var unavailErr *UnavailableError
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if unavailErr.Konflikt.StartDatum != "2024-06-10" || unavailErr.Konflikt.SlutDatum != "2024-06-15" {
		t.Errorf("Konflikt = %+v, want the existing range", unavailErr.Konflikt)
	}
	if repo.count() != 1 {
		t.Error("no new reservation may be written when dates are unavailable")
	}
}

func TestReserve_StorageErrorOnCreate(t *testing.T) {
	repo := &fakeReservationRepo{createErr: errors.New("connection reset")}
	svc := newTestService(repo)

	_, err := svc.Reserve(context.Background(), validInput())
	var storErr *StorageError
	if !errors.As(err, &storErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestReserve_ConcurrentOverlappingSubmissions(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo)

	const n = 16
	var wg sync.WaitGroup
	successes := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := validInput()
			input.GastEmail = fmt.Sprintf("gast%d@example.com", i)
			// All ranges mutually overlap around 2024-06-01..05.
			if res, err := svc.Reserve(context.Background(), input); err == nil {
				successes <- res.ID
			}
		}(i)
	}
	wg.Wait()
	close(successes)

	var won []string
	for id := range successes {
		won = append(won, id)
	}
	if len(won) != 1 {
		t.Fatalf("exactly one of %d overlapping submissions may succeed, got %d", n, len(won))
	}
	if repo.count() != 1 {
		t.Fatalf("repository holds %d reservations, want 1", repo.count())
	}
}

func TestReserve_DifferentPropertiesDoNotConflict(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	first := validInput()
	if _, err := svc.Reserve(ctx, first); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	second := validInput()
	second.FastighetID = "fast-2"
	if _, err := svc.Reserve(ctx, second); err != nil {
		t.Fatalf("same range on another property must be accepted: %v", err)
	}
}

func TestListForProperty_DegradesStorageFailure(t *testing.T) {
	repo := &fakeReservationRepo{listErr: errors.New("table does not exist")}
	svc := newTestService(repo)

	listed, err := svc.ListForProperty(context.Background(), "fast-1")
	if err != nil {
		t.Fatalf("display path must not surface storage errors, got %v", err)
	}
	if listed == nil || len(listed) != 0 {
		t.Errorf("listed = %v, want empty non-nil slice", listed)
	}
}

func TestReserve_ProceedsWhenListFails(t *testing.T) {
	// A broken read path degrades to "nothing booked": the submission still
	// goes through rather than failing the booking UI.
	repo := &fakeReservationRepo{listErr: errors.New("backend not provisioned")}
	svc := newTestService(repo)

	res, err := svc.Reserve(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if res.Status != models.StatusUnconfirmed {
		t.Errorf("Status = %s, want %s", res.Status, models.StatusUnconfirmed)
	}
}

func TestCheckDates(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusConfirmed),
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	resp, err := svc.CheckDates(ctx, "fast-1", "2024-06-01", "2024-06-05")
	if err != nil {
		t.Fatalf("CheckDates failed: %v", err)
	}
	if !resp.Available || resp.Message != msgAvailable {
		t.Errorf("resp = %+v, want available", resp)
	}

	resp, err = svc.CheckDates(ctx, "fast-1", "2024-06-15", "2024-06-20")
	if err != nil {
		t.Fatalf("CheckDates failed: %v", err)
	}
	if resp.Available || resp.Message != msgUnavailable {
		t.Errorf("resp = %+v, want unavailable", resp)
	}
	if resp.Konflikt == nil || resp.Konflikt.StartDatum != "2024-06-10" {
		t.Errorf("Konflikt = %+v, want the conflicting range", resp.Konflikt)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("res-1", "2024-06-10", "2024-06-15", models.StatusUnconfirmed),
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, "res-1", models.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Errorf("Status = %s, want %s", updated.Status, models.StatusConfirmed)
	}

	_, err = svc.UpdateStatus(ctx, "res-1", "Okänd")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestExpireStale(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("res-old", "2024-01-01", "2024-01-05", models.StatusUnconfirmed),
		reservation("res-confirmed", "2024-01-01", "2024-01-05", models.StatusConfirmed),
		reservation("res-recent", "2024-05-28", "2024-06-02", models.StatusUnconfirmed),
	}}
	svc := newTestService(repo)

	now := mustDate(t, "2024-06-10")
	expired, err := svc.ExpireStale(context.Background(), now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("ExpireStale failed: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expired = %d, want 1", expired)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	for _, r := range all {
		switch r.ID {
		case "res-old":
			if r.Status != models.StatusCancelled {
				t.Errorf("res-old status = %s, want %s", r.Status, models.StatusCancelled)
			}
		case "res-confirmed":
			if r.Status != models.StatusConfirmed {
				t.Errorf("res-confirmed status changed to %s", r.Status)
			}
		case "res-recent":
			if r.Status != models.StatusUnconfirmed {
				t.Errorf("res-recent status changed to %s", r.Status)
			}
		}
	}
}
