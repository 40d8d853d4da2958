package employee

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
	repo "github.com/oksasatya/employee-records-api/internal/domain/repository"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time { return s.now }

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

type fakeEmployeeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Employee
	calls  int
	err    error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1, rows: map[int64]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) seed(e entity.Employee) *entity.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.nextID
	f.nextID++
	f.rows[e.ID] = &e
	cp := e
	return &cp
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.rows[id]
	if !ok {
		return nil, repo.ErrEmployeeNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.rows {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repo.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) sorted(match func(*entity.Employee) bool) []*entity.Employee {
	out := []*entity.Employee{}
	for _, e := range f.rows {
		if match(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeEmployeeRepo) FindAll(context.Context) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(*entity.Employee) bool { return true }), nil
}

func (f *fakeEmployeeRepo) SearchByName(_ context.Context, term string) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	needle := strings.ToLower(term)
	return f.sorted(func(e *entity.Employee) bool {
		return strings.Contains(strings.ToLower(e.Name), needle)
	}), nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.Email == e.Email {
			return nil, repo.ErrEmailTaken
		}
	}
	cp := *e
	cp.ID = f.nextID
	f.nextID++
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[e.ID]; !ok {
		return repo.ErrEmployeeNotFound
	}
	cp := *e
	f.rows[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) DeleteByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return repo.ErrEmployeeNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeEmployeeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if evt, ok := body.(Event); ok {
		p.events = append(p.events, evt)
	}
	return p.err
}

var errStorage = errors.New("storage unavailable")

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func johnDoe() entity.Employee {
	return entity.Employee{
		Email:       "john@example.com",
		Name:        "John Doe",
		Address:     "123 Main St",
		PhoneNumber: "+1234567890",
		DateOfBirth: date(1990, 1, 1),
		Gender:      entity.GenderMale,
		Position:    "Developer",
		Department:  "Engineering",
		HireDate:    date(2020, 1, 1),
		IsActive:    true,
		CreatedAt:   date(2020, 1, 1),
		UpdatedAt:   date(2020, 1, 1),
	}
}

func validCreate() CreateEmployeeCommand {
	return CreateEmployeeCommand{
		Name:        "John Doe",
		Email:       "john@example.com",
		Address:     "123 Main St",
		PhoneNumber: "+1234567890",
		DateOfBirth: date(1990, 1, 1),
		Gender:      entity.GenderMale,
		Position:    "Developer",
		Department:  "Engineering",
		HireDate:    date(2020, 1, 1),
	}
}

func validUpdate(id int64, active bool) UpdateEmployeeCommand {
	return UpdateEmployeeCommand{
		ID:          id,
		Name:        "John Smith",
		Email:       "john@example.com",
		Address:     "456 Side St",
		PhoneNumber: "+1987654321",
		DateOfBirth: date(1990, 1, 1),
		Gender:      entity.GenderMale,
		Position:    "Lead Developer",
		Department:  "Engineering",
		HireDate:    date(2020, 1, 1),
		IsActive:    &active,
	}
}

func newTestHandlers(r *fakeEmployeeRepo, p Publisher) *Handlers {
	return NewHandlers(Deps{Repo: r, Clock: stubClock{now: testNow}, Publisher: p})
}

// racingRepo reports the email as free on lookup but taken on insert.
type racingRepo struct {
	*fakeEmployeeRepo
}

func (r *racingRepo) FindByEmail(context.Context, string) (*entity.Employee, error) {
	return nil, repo.ErrEmployeeNotFound
}

func (r *racingRepo) Create(context.Context, *entity.Employee) (*entity.Employee, error) {
	return nil, repo.ErrEmailTaken
}
