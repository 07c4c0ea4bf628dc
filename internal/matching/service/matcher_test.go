package service

import (
	"context"
	"sync"
	"testing"
	"time"

	availabilityerrors "paintly/internal/availability/errors"
	profileserrors "paintly/internal/profiles/errors"
	"paintly/pkg/config"
	mongotx "paintly/pkg/db/mongo"
	apperrors "paintly/pkg/errors"
	"paintly/pkg/events"
	"paintly/pkg/logger"
	"paintly/pkg/model"
)

// Mock repositories for testing

type mockSlotRepository struct {
	findFreeContainingFunc func(ctx context.Context, start, end time.Time) ([]*model.Slot, error)
	findFreeNearFunc       func(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error)
	markBookedFunc         func(ctx context.Context, slotID string) error
	executeTransactionFunc func(ctx context.Context, fn mongotx.TransactionFunc) error
}

func (m *mockSlotRepository) Create(ctx context.Context, slot *model.Slot) error { return nil }

func (m *mockSlotRepository) FindByID(ctx context.Context, id string) (*model.Slot, error) {
	return nil, availabilityerrors.ErrNotFound
}

func (m *mockSlotRepository) FindByPainter(ctx context.Context, painterID string) ([]*model.Slot, error) {
	return []*model.Slot{}, nil
}

func (m *mockSlotRepository) FindFreeContaining(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
	if m.findFreeContainingFunc != nil {
		return m.findFreeContainingFunc(ctx, start, end)
	}
	return []*model.Slot{}, nil
}

func (m *mockSlotRepository) FindFreeNear(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
	if m.findFreeNearFunc != nil {
		return m.findFreeNearFunc(ctx, windowStart, windowEnd, limit)
	}
	return []*model.Slot{}, nil
}

func (m *mockSlotRepository) MarkBooked(ctx context.Context, slotID string) error {
	if m.markBookedFunc != nil {
		return m.markBookedFunc(ctx, slotID)
	}
	return nil
}

func (m *mockSlotRepository) Delete(ctx context.Context, slotID string) error { return nil }

func (m *mockSlotRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	if m.executeTransactionFunc != nil {
		return m.executeTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockBookingRepository struct {
	createFunc         func(ctx context.Context, booking *model.Booking) error
	findByCustomerFunc func(ctx context.Context, customerID string) ([]*model.Booking, error)
	findByPainterFunc  func(ctx context.Context, painterID string) ([]*model.Booking, error)
	countActiveFunc    func(ctx context.Context, painterID string) (int64, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "68b000000000000000000099"
	return nil
}

func (m *mockBookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]*model.Booking, error) {
	if m.findByCustomerFunc != nil {
		return m.findByCustomerFunc(ctx, customerID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByPainter(ctx context.Context, painterID string) ([]*model.Booking, error) {
	if m.findByPainterFunc != nil {
		return m.findByPainterFunc(ctx, painterID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) CountActiveByPainter(ctx context.Context, painterID string) (int64, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx, painterID)
	}
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(ctx)
}

type mockPainterRepository struct {
	findByIDFunc     func(ctx context.Context, id string) (*model.PainterProfile, error)
	findByUserIDFunc func(ctx context.Context, userID string) (*model.PainterProfile, error)
}

func (m *mockPainterRepository) Create(ctx context.Context, profile *model.PainterProfile) error {
	return nil
}

func (m *mockPainterRepository) FindByID(ctx context.Context, id string) (*model.PainterProfile, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, profileserrors.ErrPainterNotFound
}

func (m *mockPainterRepository) FindByUserID(ctx context.Context, userID string) (*model.PainterProfile, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, profileserrors.ErrPainterNotFound
}

type mockCustomerRepository struct {
	findByUserIDFunc func(ctx context.Context, userID string) (*model.CustomerProfile, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, profile *model.CustomerProfile) error {
	return nil
}

func (m *mockCustomerRepository) FindByUserID(ctx context.Context, userID string) (*model.CustomerProfile, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return &model.CustomerProfile{ID: "68b0000000000000000000c1", UserID: userID}, nil
}

type mockPublisher struct {
	mu        sync.Mutex
	published []events.BookingConfirmed
}

func (m *mockPublisher) PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func newTestConfig() *config.Config {
	return &config.Config{
		AltSearchBefore:   72 * time.Hour,
		AltSearchAfter:    168 * time.Hour,
		AltCandidateLimit: 25,
		MaxAlternatives:   5,
		Log: logger.New(logger.Config{
			Level:     "error",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
	}
}

func newTestMatcher(slots *mockSlotRepository, bookings *mockBookingRepository, painters *mockPainterRepository, customers *mockCustomerRepository, publisher events.Publisher) *matcherService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &matcherService{
		slots:     slots,
		bookings:  bookings,
		painters:  painters,
		customers: customers,
		publisher: publisher,
		cfg:       newTestConfig(),
	}
}

var (
	reqStart = time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	reqEnd   = time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
)

func containingSlot(id, painterID string) *model.Slot {
	return &model.Slot{
		ID:        id,
		PainterID: painterID,
		StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestRequestBooking_SelectsHighestScoringPainter(t *testing.T) {
	painterA := &model.PainterProfile{ID: "68b0000000000000000000a1", Name: "Painter A", Rating: 4.5, Experience: 5}
	painterB := &model.PainterProfile{ID: "68b0000000000000000000a2", Name: "Painter B", Rating: 4.0, Experience: 8}

	slotA := containingSlot("68b0000000000000000000e1", painterA.ID)
	slotB := containingSlot("68b0000000000000000000e2", painterB.ID)

	var bookedSlotID string
	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{slotA, slotB}, nil
		},
		markBookedFunc: func(ctx context.Context, slotID string) error {
			bookedSlotID = slotID
			return nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			if id == painterA.ID {
				return painterA, nil
			}
			return painterB, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !outcome.Matched() {
		t.Fatal("expected a confirmed booking")
	}
	// 0.5*0.8 + 0.3*0.8 + 0.2 = 0.84 beats 0.5*0.9 + 0.3*0.5 + 0.2 = 0.8
	if outcome.Booking.Painter.ID != painterB.ID {
		t.Errorf("expected painter %s to win, got %s", painterB.ID, outcome.Booking.Painter.ID)
	}
	if bookedSlotID != slotB.ID {
		t.Errorf("expected slot %s to be claimed, got %s", slotB.ID, bookedSlotID)
	}
	if outcome.Booking.Booking.Status != model.StatusConfirmed {
		t.Errorf("expected status %s, got %s", model.StatusConfirmed, outcome.Booking.Booking.Status)
	}
	if outcome.Booking.Booking.SlotID != slotB.ID {
		t.Errorf("booking references slot %s, expected %s", outcome.Booking.Booking.SlotID, slotB.ID)
	}
}

func TestRequestBooking_WorkloadPenaltyShiftsSelection(t *testing.T) {
	painterA := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.5, Experience: 5}
	painterB := &model.PainterProfile{ID: "68b0000000000000000000a2", Rating: 4.0, Experience: 8}

	slotA := containingSlot("68b0000000000000000000e1", painterA.ID)
	slotB := containingSlot("68b0000000000000000000e2", painterB.ID)

	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{slotA, slotB}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			if id == painterA.ID {
				return painterA, nil
			}
			return painterB, nil
		},
	}
	// B carries 5 active bookings: 0.84 - 0.1 = 0.74 now loses to A's 0.8.
	bookings := &mockBookingRepository{
		countActiveFunc: func(ctx context.Context, painterID string) (int64, error) {
			if painterID == painterB.ID {
				return 5, nil
			}
			return 0, nil
		},
	}

	svc := newTestMatcher(slots, bookings, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Matched() {
		t.Fatal("expected a confirmed booking")
	}
	if outcome.Booking.Painter.ID != painterA.ID {
		t.Errorf("expected painter %s to win under workload penalty, got %s", painterA.ID, outcome.Booking.Painter.ID)
	}
}

func TestRequestBooking_TieBreaksOnLowestSlotID(t *testing.T) {
	painterA := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 6}
	painterB := &model.PainterProfile{ID: "68b0000000000000000000a2", Rating: 4.0, Experience: 6}

	slotHigh := containingSlot("68b0000000000000000000e9", painterA.ID)
	slotLow := containingSlot("68b0000000000000000000e2", painterB.ID)

	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{slotHigh, slotLow}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			if id == painterA.ID {
				return painterA, nil
			}
			return painterB, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Matched() {
		t.Fatal("expected a confirmed booking")
	}
	if outcome.Booking.Booking.SlotID != slotLow.ID {
		t.Errorf("expected lowest slot ID %s, got %s", slotLow.ID, outcome.Booking.Booking.SlotID)
	}
}

func TestRequestBooking_InvalidRange(t *testing.T) {
	svc := newTestMatcher(&mockSlotRepository{}, &mockBookingRepository{}, &mockPainterRepository{}, &mockCustomerRepository{}, nil)

	_, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqEnd,
		EndTime:   reqStart,
	})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}

	_, err = svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqStart,
	})
	if err == nil {
		t.Fatal("expected error for zero-length range")
	}
}

func TestRequestBooking_CustomerNotFound(t *testing.T) {
	customers := &mockCustomerRepository{
		findByUserIDFunc: func(ctx context.Context, userID string) (*model.CustomerProfile, error) {
			return nil, profileserrors.ErrCustomerNotFound
		},
	}
	svc := newTestMatcher(&mockSlotRepository{}, &mockBookingRepository{}, &mockPainterRepository{}, customers, nil)

	_, err := svc.RequestBooking(context.Background(), "ghost", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err == nil {
		t.Fatal("expected error for unknown customer")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestRequestBooking_NoAvailabilityReturnsAlternatives(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Name: "Near Painter", Rating: 4.2, Experience: 3}

	nearSlot := &model.Slot{
		ID:        "68b0000000000000000000e5",
		PainterID: painter.ID,
		StartTime: reqEnd.Add(24 * time.Hour),
		EndTime:   reqEnd.Add(28 * time.Hour),
	}

	var gotWindowStart, gotWindowEnd time.Time
	slots := &mockSlotRepository{
		findFreeNearFunc: func(ctx context.Context, windowStart, windowEnd time.Time, limit int) ([]*model.Slot, error) {
			gotWindowStart, gotWindowEnd = windowStart, windowEnd
			return []*model.Slot{nearSlot}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Matched() {
		t.Fatal("expected no-availability outcome")
	}
	if len(outcome.Alternatives) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(outcome.Alternatives))
	}

	alt := outcome.Alternatives[0]
	if alt.SlotID != nearSlot.ID {
		t.Errorf("expected alternative slot %s, got %s", nearSlot.ID, alt.SlotID)
	}
	wantDistance := nearSlot.StartTime.Sub(reqEnd)
	if alt.Distance != wantDistance {
		t.Errorf("expected distance %v, got %v", wantDistance, alt.Distance)
	}
	if alt.DistanceSeconds != int64(wantDistance/time.Second) {
		t.Errorf("expected distance seconds %d, got %d", int64(wantDistance/time.Second), alt.DistanceSeconds)
	}
	if alt.Painter.ID != painter.ID {
		t.Errorf("expected painter %s, got %s", painter.ID, alt.Painter.ID)
	}

	if !gotWindowStart.Equal(reqStart.Add(-72 * time.Hour)) {
		t.Errorf("window start %v, expected 3 days before request", gotWindowStart)
	}
	if !gotWindowEnd.Equal(reqEnd.Add(168 * time.Hour)) {
		t.Errorf("window end %v, expected 7 days after request", gotWindowEnd)
	}
}

func TestRequestBooking_RetriesOnceAfterLostRace(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}

	slot1 := containingSlot("68b0000000000000000000e1", painter.ID)
	slot2 := containingSlot("68b0000000000000000000e2", painter.ID)

	queries := 0
	claims := 0
	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			queries++
			if queries == 1 {
				return []*model.Slot{slot1}, nil
			}
			return []*model.Slot{slot2}, nil
		},
		markBookedFunc: func(ctx context.Context, slotID string) error {
			claims++
			if slotID == slot1.ID {
				return availabilityerrors.ErrAlreadyBooked
			}
			return nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Matched() {
		t.Fatal("expected retry to land a booking")
	}
	if outcome.Booking.Booking.SlotID != slot2.ID {
		t.Errorf("expected reselected slot %s, got %s", slot2.ID, outcome.Booking.Booking.SlotID)
	}
	if queries != 2 {
		t.Errorf("expected 2 containment queries, got %d", queries)
	}
	if claims != 2 {
		t.Errorf("expected 2 claim attempts, got %d", claims)
	}
}

func TestRequestBooking_FallsBackAfterSecondLostRace(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}
	slot := containingSlot("68b0000000000000000000e1", painter.ID)

	claims := 0
	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{slot}, nil
		},
		markBookedFunc: func(ctx context.Context, slotID string) error {
			claims++
			return availabilityerrors.ErrAlreadyBooked
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Matched() {
		t.Fatal("expected fallback to alternatives after losing twice")
	}
	if claims != 2 {
		t.Errorf("expected exactly 2 claim attempts, got %d", claims)
	}
}

func TestRequestBooking_SkipsUnresolvablePainter(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a2", Rating: 3.0, Experience: 1}

	orphanSlot := containingSlot("68b0000000000000000000e1", "68b0000000000000000000ff")
	goodSlot := containingSlot("68b0000000000000000000e2", painter.ID)

	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{orphanSlot, goodSlot}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			if id == painter.ID {
				return painter, nil
			}
			return nil, profileserrors.ErrPainterNotFound
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Matched() {
		t.Fatal("expected the resolvable painter's slot to be booked")
	}
	if outcome.Booking.Booking.SlotID != goodSlot.ID {
		t.Errorf("expected slot %s, got %s", goodSlot.ID, outcome.Booking.Booking.SlotID)
	}
}

func TestRequestBooking_PublishesConfirmedEvent(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}
	slot := containingSlot("68b0000000000000000000e1", painter.ID)

	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			return []*model.Slot{slot}, nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}
	publisher := &mockPublisher{}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, publisher)

	outcome, err := svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
		StartTime: reqStart,
		EndTime:   reqEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Matched() {
		t.Fatal("expected a confirmed booking")
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}
	event := publisher.published[0]
	if event.SlotID != slot.ID {
		t.Errorf("event slot %s, expected %s", event.SlotID, slot.ID)
	}
	if event.PainterID != painter.ID {
		t.Errorf("event painter %s, expected %s", event.PainterID, painter.ID)
	}
	if event.BookingID != outcome.Booking.Booking.ID {
		t.Errorf("event booking %s, expected %s", event.BookingID, outcome.Booking.Booking.ID)
	}
}

func TestRequestBooking_SingleWinnerUnderConcurrency(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", Rating: 4.0, Experience: 5}
	slot := containingSlot("68b0000000000000000000e1", painter.ID)

	var mu sync.Mutex
	booked := false

	slots := &mockSlotRepository{
		findFreeContainingFunc: func(ctx context.Context, start, end time.Time) ([]*model.Slot, error) {
			mu.Lock()
			defer mu.Unlock()
			if booked {
				return []*model.Slot{}, nil
			}
			return []*model.Slot{slot}, nil
		},
		markBookedFunc: func(ctx context.Context, slotID string) error {
			mu.Lock()
			defer mu.Unlock()
			if booked {
				return availabilityerrors.ErrAlreadyBooked
			}
			booked = true
			return nil
		},
	}
	painters := &mockPainterRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PainterProfile, error) {
			return painter, nil
		},
	}

	svc := newTestMatcher(slots, &mockBookingRepository{}, painters, &mockCustomerRepository{}, nil)

	const callers = 8
	var wg sync.WaitGroup
	outcomes := make([]*MatchOutcome, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = svc.RequestBooking(context.Background(), "customer-1", &model.BookingRequest{
				StartTime: reqStart,
				EndTime:   reqEnd,
			})
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if outcomes[i].Matched() {
			confirmed++
		}
	}
	if confirmed != 1 {
		t.Errorf("expected exactly one winner, got %d", confirmed)
	}
}

func TestListForCustomer(t *testing.T) {
	customer := &model.CustomerProfile{ID: "68b0000000000000000000c1", UserID: "user-1"}
	want := []*model.Booking{{ID: "68b0000000000000000000b1", CustomerID: customer.ID}}

	customers := &mockCustomerRepository{
		findByUserIDFunc: func(ctx context.Context, userID string) (*model.CustomerProfile, error) {
			if userID != "user-1" {
				return nil, profileserrors.ErrCustomerNotFound
			}
			return customer, nil
		},
	}
	bookings := &mockBookingRepository{
		findByCustomerFunc: func(ctx context.Context, customerID string) ([]*model.Booking, error) {
			if customerID != customer.ID {
				t.Errorf("queried customer %s, expected %s", customerID, customer.ID)
			}
			return want, nil
		},
	}

	svc := newTestMatcher(&mockSlotRepository{}, bookings, &mockPainterRepository{}, customers, nil)

	got, err := svc.ListForCustomer(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Errorf("unexpected bookings: %+v", got)
	}

	_, err = svc.ListForCustomer(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for unknown customer")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected not-found code, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestListForPainter(t *testing.T) {
	painter := &model.PainterProfile{ID: "68b0000000000000000000a1", UserID: "painter-1"}
	want := []*model.Booking{{ID: "68b0000000000000000000b2", PainterID: painter.ID}}

	painters := &mockPainterRepository{
		findByUserIDFunc: func(ctx context.Context, userID string) (*model.PainterProfile, error) {
			if userID != "painter-1" {
				return nil, profileserrors.ErrPainterNotFound
			}
			return painter, nil
		},
	}
	bookings := &mockBookingRepository{
		findByPainterFunc: func(ctx context.Context, painterID string) ([]*model.Booking, error) {
			return want, nil
		},
	}

	svc := newTestMatcher(&mockSlotRepository{}, bookings, painters, &mockCustomerRepository{}, nil)

	got, err := svc.ListForPainter(context.Background(), "painter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Errorf("unexpected bookings: %+v", got)
	}
}
