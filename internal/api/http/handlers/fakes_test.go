package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// scopedApp builds a fiber app whose routes run under a staged auth
// context, with the production error envelope.
func scopedApp(authCtx *auth.AuthContext) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"code": fiberErr.Code})
			}
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		auth.Attach(c, authCtx)
		return c.Next()
	})
	return app
}

func regionStaffCtx(region string) *auth.AuthContext {
	role := domain.StaffRoleAdmin
	return &auth.AuthContext{
		PrincipalID: "staff-1",
		Kind:        domain.PrincipalKindStaff,
		Role:        &role,
		Scope:       domain.Scope{Kind: domain.ScopeRegionBound, Region: region},
	}
}

func superAdminCtx() *auth.AuthContext {
	role := domain.StaffRoleSuperAdmin
	return &auth.AuthContext{
		PrincipalID: "staff-root",
		Kind:        domain.PrincipalKindStaff,
		Role:        &role,
		Scope:       domain.Scope{Kind: domain.ScopeUnrestricted},
	}
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
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
		copied := *job
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeJobRepo) List(_ context.Context, _ repository.JobFilter) ([]domain.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) stored(id string) *domain.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}

func (f *fakeJobRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
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
		copied := *candidate
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, candidate := range f.byID {
		if candidate.Email == email {
			copied := *candidate
			return &copied, nil
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

func (f *fakeCandidateRepo) stored(id string) *domain.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}
