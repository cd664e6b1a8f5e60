package repository

import "github.com/talentdesk/recruitment-service/internal/domain"

// ScopeRegion translates a visibility scope into the region filter
// applied by list queries. An unrestricted scope yields nil (no
// filter); a region-bound scope always yields its region, so handlers
// cannot accidentally widen a bound scope by skipping the check.
func ScopeRegion(scope domain.Scope) *string {
	if scope.Kind != domain.ScopeRegionBound {
		return nil
	}
	region := scope.Region
	return &region
}
