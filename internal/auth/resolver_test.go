package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

type fakeStaffStore map[string]*domain.Staff

func (f fakeStaffStore) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	if staff, ok := f[id]; ok {
		return staff, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeCandidateStore map[string]*domain.Candidate

func (f fakeCandidateStore) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	if candidate, ok := f[id]; ok {
		return candidate, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeCompanyStore map[string]*domain.Company

func (f fakeCompanyStore) GetByID(_ context.Context, id string) (*domain.Company, error) {
	if company, ok := f[id]; ok {
		return company, nil
	}
	return nil, pgx.ErrNoRows
}

func newTestResolver() *Resolver {
	return NewResolver(
		fakeStaffStore{
			"staff-1":    {ID: "staff-1", Role: domain.StaffRoleAdmin, Region: "Dubai", Active: true},
			"staff-gone": {ID: "staff-gone", Role: domain.StaffRoleConsultant, Active: false},
		},
		fakeCandidateStore{
			"cand-1":    {ID: "cand-1", Location: "London", Active: true},
			"cand-gone": {ID: "cand-gone", Active: false},
		},
		fakeCompanyStore{
			"comp-1":       {ID: "comp-1", Location: "Berlin", Status: domain.CompanyStatusActive},
			"comp-pending": {ID: "comp-pending", Status: domain.CompanyStatusPending},
		},
	)
}

func TestResolveStaff(t *testing.T) {
	r := newTestResolver()

	principal, err := r.Resolve(context.Background(), &Claims{StaffID: "staff-1"})
	require.NoError(t, err)
	require.Equal(t, domain.PrincipalKindStaff, principal.Kind)
	require.Equal(t, "staff-1", principal.ID())
	require.Equal(t, domain.StaffRoleAdmin, principal.Staff.Role)
}

func TestResolveStaffIDWinsOverMarker(t *testing.T) {
	r := newTestResolver()

	// A staff identifier always takes the staff path even when the role
	// claim happens to carry a portal marker value.
	principal, err := r.Resolve(context.Background(), &Claims{StaffID: "staff-1", Role: "candidate"})
	require.NoError(t, err)
	require.Equal(t, domain.PrincipalKindStaff, principal.Kind)
}

func TestResolveCandidate(t *testing.T) {
	r := newTestResolver()

	principal, err := r.Resolve(context.Background(), &Claims{SubjectID: "cand-1", Role: "candidate"})
	require.NoError(t, err)
	require.Equal(t, domain.PrincipalKindCandidate, principal.Kind)
	require.Equal(t, "cand-1", principal.ID())
}

func TestResolveCompanyMarkers(t *testing.T) {
	r := newTestResolver()

	for _, marker := range []string{"employer", "company"} {
		principal, err := r.Resolve(context.Background(), &Claims{SubjectID: "comp-1", Role: marker})
		require.NoError(t, err)
		require.Equal(t, domain.PrincipalKindCompany, principal.Kind)
	}
}

func TestResolveInactivePrincipals(t *testing.T) {
	r := newTestResolver()

	cases := []Claims{
		{StaffID: "staff-gone"},
		{SubjectID: "cand-gone", Role: "candidate"},
		{SubjectID: "comp-pending", Role: "employer"},
	}
	for _, claims := range cases {
		c := claims
		_, err := r.Resolve(context.Background(), &c)
		require.ErrorIs(t, err, ErrPrincipalInactive)
	}
}

func TestResolveMissingRecord(t *testing.T) {
	r := newTestResolver()

	cases := []Claims{
		{StaffID: "nope"},
		{SubjectID: "nope", Role: "candidate"},
		{SubjectID: "nope", Role: "employer"},
	}
	for _, claims := range cases {
		c := claims
		_, err := r.Resolve(context.Background(), &c)
		require.ErrorIs(t, err, ErrPrincipalNotFound)
	}
}

func TestResolveUnknownShape(t *testing.T) {
	r := newTestResolver()

	cases := []Claims{
		{},
		{Role: "candidate"},
		{SubjectID: "cand-1"},
		{SubjectID: "cand-1", Role: "intruder"},
	}
	for _, claims := range cases {
		c := claims
		_, err := r.Resolve(context.Background(), &c)
		require.ErrorIs(t, err, ErrPrincipalNotFound)
	}
}
