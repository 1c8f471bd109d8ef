package usecase_test

import (
	"context"
	"sync"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

type fakeUsers struct {
	mu      sync.Mutex
	lists   int
	created []entity.UserDraft
	err     error
}

func (f *fakeUsers) List(_ context.Context, p entity.Pagination) (*entity.PagedResponse[entity.User], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.PagedResponse[entity.User]{
		Content: []entity.User{{ID: int64(p.Page*p.Size + 1), UserName: "ana"}},
		Page:    entity.PageMetadata{Size: p.Size, Number: p.Page, TotalElements: 21, TotalPages: entity.TotalPagesFor(21, p.Size)},
	}, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return &entity.User{ID: id, UserName: "ana"}, f.err
}

func (f *fakeUsers) Create(_ context.Context, d entity.UserDraft) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, d)
	return &entity.User{ID: 99, UserName: d.UserName, Email: d.Email}, nil
}

type fakeStaff struct {
	lists, byRole int
	withUser      []entity.StaffWithUserDraft
}

func (f *fakeStaff) List(_ context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Staff], error) {
	f.lists++
	return &entity.PagedResponse[entity.Staff]{Content: []entity.Staff{}, Page: entity.PageMetadata{Size: p.Size}}, nil
}
func (f *fakeStaff) GetByID(_ context.Context, id int64) (*entity.Staff, error) {
	return &entity.Staff{ID: id}, nil
}
func (f *fakeStaff) ListByRole(_ context.Context, role entity.StaffRole) ([]entity.Staff, error) {
	f.byRole++
	return []entity.Staff{{ID: 1, Role: role}}, nil
}
func (f *fakeStaff) Create(_ context.Context, d entity.StaffDraft) (*entity.Staff, error) {
	return &entity.Staff{ID: 5, Role: d.Role}, nil
}
func (f *fakeStaff) CreateWithUser(_ context.Context, d entity.StaffWithUserDraft) (*entity.Staff, error) {
	f.withUser = append(f.withUser, d)
	return &entity.Staff{ID: 6, Role: d.Role}, nil
}

type fakeLiquidations struct {
	mu         sync.Mutex
	status     map[int64]entity.LiquidationStatus
	gets       int
	updates    []entity.LiquidationStatus
	updateErr  error
	payments   []entity.PaymentDraft
	paymentErr error
	block      chan struct{}
}

func newFakeLiquidations() *fakeLiquidations {
	return &fakeLiquidations{status: map[int64]entity.LiquidationStatus{}}
}

func (f *fakeLiquidations) List(_ context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Liquidation], error) {
	return &entity.PagedResponse[entity.Liquidation]{Content: []entity.Liquidation{}, Page: entity.PageMetadata{Size: p.Size}}, nil
}

func (f *fakeLiquidations) GetByID(_ context.Context, id int64) (*entity.Liquidation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	st, ok := f.status[id]
	if !ok {
		st = entity.StatusInQuote
	}
	return &entity.Liquidation{ID: id, Status: st, PaymentStatus: entity.PaymentPending}, nil
}

func (f *fakeLiquidations) Create(_ context.Context, d entity.LiquidationDraft) (*entity.Liquidation, error) {
	return &entity.Liquidation{ID: 1, Status: entity.StatusInQuote}, nil
}

func (f *fakeLiquidations) AddTourService(context.Context, int64, entity.TourServiceDraft) error {
	return nil
}
func (f *fakeLiquidations) AddHotelService(context.Context, int64, entity.HotelServiceDraft) error {
	return nil
}
func (f *fakeLiquidations) AddFlightService(context.Context, int64, entity.FlightServiceDraft) error {
	return nil
}
func (f *fakeLiquidations) AddAdditionalService(context.Context, int64, entity.AdditionalServiceDraft) error {
	return nil
}

func (f *fakeLiquidations) AddPayment(_ context.Context, _ int64, d entity.PaymentDraft) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.paymentErr != nil {
		return f.paymentErr
	}
	f.payments = append(f.payments, d)
	return nil
}

func (f *fakeLiquidations) AddIncidency(context.Context, int64, entity.IncidencyDraft) error {
	return nil
}

func (f *fakeLiquidations) UpdateStatus(_ context.Context, id int64, s entity.LiquidationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, s)
	f.status[id] = s
	return nil
}

type fakeTransitions struct {
	mu      sync.Mutex
	created []*entity.StatusTransition
	done    map[string]entity.TransitionOutcome
}

func newFakeTransitions() *fakeTransitions {
	return &fakeTransitions{done: map[string]entity.TransitionOutcome{}}
}

func (f *fakeTransitions) Create(_ context.Context, t *entity.StatusTransition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = "tr-" + string(rune('a'+len(f.created)))
	cp := *t
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeTransitions) Complete(_ context.Context, id string, o entity.TransitionOutcome, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done[id] = o
	return nil
}

func (f *fakeTransitions) ListByLiquidation(_ context.Context, id int64) ([]*entity.StatusTransition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StatusTransition
	for _, t := range f.created {
		if t.LiquidationID == id {
			out = append(out, t)
		}
	}
	return out, nil
}
