package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/events"
	"github.com/talentdesk/recruitment-service/internal/repository"
)

type fakeStaffRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Staff
	touched []string

	// lookupErr simulates an unreachable store.
	lookupErr error
}

func newFakeStaffRepo(staff ...*domain.Staff) *fakeStaffRepo {
	repo := &fakeStaffRepo{byID: make(map[string]*domain.Staff)}
	for _, s := range staff {
		repo.byID[s.ID] = s
	}
	return repo
}

func (f *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if staff.ID == "" {
		staff.ID = fmt.Sprintf("staff-%d", len(f.byID)+1)
	}
	f.byID[staff.ID] = staff
	return nil
}

func (f *fakeStaffRepo) Update(_ context.Context, staff *domain.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[staff.ID] = staff
	return nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if staff, ok := f.byID[id]; ok {
		return staff, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, staff := range f.byID {
		if staff.Email == email {
			return staff, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter) ([]domain.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]domain.Staff, 0, len(f.byID))
	for _, staff := range f.byID {
		list = append(list, *staff)
	}
	return list, nil
}

func (f *fakeStaffRepo) TouchLastLogin(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, id)
	return nil
}

type fakeCandidateRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Candidate
}

func newFakeCandidateRepo(candidates ...*domain.Candidate) *fakeCandidateRepo {
	repo := &fakeCandidateRepo{byID: make(map[string]*domain.Candidate)}
	for _, c := range candidates {
		repo.byID[c.ID] = c
	}
	return repo
}

func (f *fakeCandidateRepo) Create(_ context.Context, candidate *domain.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if candidate.ID == "" {
		candidate.ID = fmt.Sprintf("cand-%d", len(f.byID)+1)
	}
	f.byID[candidate.ID] = candidate
	return nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, candidate *domain.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[candidate.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[candidate.ID] = candidate
	return nil
}

func (f *fakeCandidateRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if candidate, ok := f.byID[id]; ok {
		return candidate, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, candidate := range f.byID {
		if candidate.Email == email {
			return candidate, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCandidateRepo) List(_ context.Context, _ repository.CandidateFilter) ([]domain.Candidate, error) {
	return nil, nil
}

func (f *fakeCandidateRepo) TouchLastLogin(_ context.Context, _ string) error {
	return nil
}

type fakeCompanyRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Company
}

func newFakeCompanyRepo(companies ...*domain.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{byID: make(map[string]*domain.Company)}
	for _, c := range companies {
		repo.byID[c.ID] = c
	}
	return repo
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if company.ID == "" {
		company.ID = fmt.Sprintf("comp-%d", len(f.byID)+1)
	}
	f.byID[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[company.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if company, ok := f.byID[id]; ok {
		return company, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, company := range f.byID {
		if company.Email == email {
			return company, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) List(_ context.Context, _ repository.CompanyFilter) ([]domain.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) TouchLastLogin(_ context.Context, _ string) error {
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Job
}

func newFakeJobRepo(jobs ...*domain.Job) *fakeJobRepo {
	repo := &fakeJobRepo{byID: make(map[string]*domain.Job)}
	for _, j := range jobs {
		repo.byID[j.ID] = j
	}
	return repo
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(f.byID)+1)
	}
	f.byID[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.byID[id]; ok {
		return job, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeJobRepo) List(_ context.Context, _ repository.JobFilter) ([]domain.Job, error) {
	return nil, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Application
}

func newFakeApplicationRepo(applications ...*domain.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{byID: make(map[string]*domain.Application)}
	for _, a := range applications {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if application.ID == "" {
		application.ID = fmt.Sprintf("app-%d", len(f.byID)+1)
	}
	f.byID[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, application *domain.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[application.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if application, ok := f.byID[id]; ok {
		return application, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeApplicationRepo) GetByJobAndCandidate(_ context.Context, jobID, candidateID string) (*domain.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, application := range f.byID {
		if application.JobID == jobID && application.CandidateID == candidateID {
			return application, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeApplicationRepo) List(_ context.Context, _ repository.ApplicationFilter) ([]domain.Application, error) {
	return nil, nil
}

type fakeResetRepo struct {
	mu      sync.Mutex
	byToken map[string]*repository.PasswordResetToken
	seq     int
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: make(map[string]*repository.PasswordResetToken)}
}

func (f *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	token.ID = fmt.Sprintf("reset-%d", f.seq)
	f.byToken[token.Token] = token
	return nil
}

func (f *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token, ok := f.byToken[tokenStr]; ok {
		return token, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, token := range f.byToken {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
