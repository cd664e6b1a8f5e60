package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// StaffStore loads staff accounts by id.
type StaffStore interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// CandidateStore loads candidate accounts by id.
type CandidateStore interface {
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
}

// CompanyStore loads company accounts by id.
type CompanyStore interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
}

// Resolver maps verified claims onto exactly one live principal record.
type Resolver struct {
	staff      StaffStore
	candidates CandidateStore
	companies  CompanyStore
}

// NewResolver constructs a resolver over the three principal stores.
func NewResolver(staff StaffStore, candidates CandidateStore, companies CompanyStore) *Resolver {
	return &Resolver{staff: staff, candidates: candidates, companies: companies}
}

// Resolve dispatches on the claim shape: a staff identifier wins, then
// the explicit kind marker for candidate and company tokens. Any other
// shape is ErrPrincipalNotFound. The record is always re-fetched; the
// claims' role/region snapshot may be stale and is never consulted for
// liveness or scope.
func (r *Resolver) Resolve(ctx context.Context, claims *Claims) (*domain.Principal, error) {
	switch {
	case claims.StaffID != "":
		staff, err := r.staff.GetByID(ctx, claims.StaffID)
		if err != nil {
			return nil, mapLookupErr(err)
		}
		if !staff.Active {
			return nil, ErrPrincipalInactive
		}
		return &domain.Principal{Kind: domain.PrincipalKindStaff, Staff: staff}, nil

	case claims.SubjectID != "" && claims.Role == kindMarkerCandidate:
		candidate, err := r.candidates.GetByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, mapLookupErr(err)
		}
		if !candidate.Active {
			return nil, ErrPrincipalInactive
		}
		return &domain.Principal{Kind: domain.PrincipalKindCandidate, Candidate: candidate}, nil

	case claims.SubjectID != "" && (claims.Role == kindMarkerEmployer || claims.Role == kindMarkerCompany):
		company, err := r.companies.GetByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, mapLookupErr(err)
		}
		if company.Status != domain.CompanyStatusActive {
			return nil, ErrPrincipalInactive
		}
		return &domain.Principal{Kind: domain.PrincipalKindCompany, Company: company}, nil

	default:
		return nil, ErrPrincipalNotFound
	}
}

func mapLookupErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPrincipalNotFound
	}
	return err
}
