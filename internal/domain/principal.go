package domain

// PrincipalKind discriminates the three authenticated actor variants.
type PrincipalKind string

const (
	PrincipalKindStaff     PrincipalKind = "staff"
	PrincipalKindCandidate PrincipalKind = "candidate"
	PrincipalKindCompany   PrincipalKind = "company"
)

// Principal is a tagged union over the three account variants. Exactly
// one of Staff, Candidate, Company is non-nil, matching Kind.
type Principal struct {
	Kind      PrincipalKind
	Staff     *Staff
	Candidate *Candidate
	Company   *Company
}

// ID returns the identifier of whichever variant is set.
func (p *Principal) ID() string {
	switch p.Kind {
	case PrincipalKindStaff:
		return p.Staff.ID
	case PrincipalKindCandidate:
		return p.Candidate.ID
	case PrincipalKindCompany:
		return p.Company.ID
	}
	return ""
}

// ScopeKind distinguishes unrestricted visibility from region-bound.
type ScopeKind string

const (
	ScopeUnrestricted ScopeKind = "UNRESTRICTED"
	ScopeRegionBound  ScopeKind = "REGION_BOUND"
)

// Scope is the visibility boundary computed per request. Region is
// lower-cased; it may be empty for a region-bound staff principal that
// has no region assigned, in which case the region gate rejects the
// request on enforced routes.
type Scope struct {
	Kind   ScopeKind
	Region string
}

// Restricted reports whether queries must be narrowed to Scope.Region.
func (s Scope) Restricted() bool {
	return s.Kind == ScopeRegionBound
}
