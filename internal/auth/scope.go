package auth

import (
	"strings"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// ComputeScope derives the visibility scope for a resolved principal.
// Super admins see everything; every other principal is bound to one
// region derived from its region or location field, lower-cased for
// case-insensitive comparison. A staff member with no region yields a
// region-bound scope with an empty region: the computation stays total
// and the region gate is the single place that turns the missing region
// into a failure.
func ComputeScope(p *domain.Principal) domain.Scope {
	switch p.Kind {
	case domain.PrincipalKindStaff:
		if p.Staff.Role == domain.StaffRoleSuperAdmin {
			return domain.Scope{Kind: domain.ScopeUnrestricted}
		}
		return domain.Scope{Kind: domain.ScopeRegionBound, Region: strings.ToLower(p.Staff.Region)}
	case domain.PrincipalKindCandidate:
		return domain.Scope{Kind: domain.ScopeRegionBound, Region: strings.ToLower(p.Candidate.Location)}
	case domain.PrincipalKindCompany:
		return domain.Scope{Kind: domain.ScopeRegionBound, Region: strings.ToLower(p.Company.Location)}
	}
	return domain.Scope{Kind: domain.ScopeRegionBound}
}
