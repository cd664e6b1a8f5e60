package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentdesk/recruitment-service/internal/domain"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// RequireRegion enforces region entitlement on routes that partition
// data by office. Super admins always pass. Everyone else must carry a
// region-bound scope with a non-empty region; this is the single place
// an absent region becomes an observable failure, surfaced as forbidden
// because the caller's identity is not in question.
func RequireRegion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := FromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthenticated")
		}
		if authCtx.Role != nil && *authCtx.Role == domain.StaffRoleSuperAdmin {
			return c.Next()
		}
		if authCtx.Scope.Kind == domain.ScopeRegionBound && authCtx.Scope.Region != "" {
			return c.Next()
		}
		return apperrors.NewForbidden("region access denied")
	}
}

// RequireStaff ensures a staff principal with one of the allowed roles.
// With no roles listed any staff member passes.
func RequireStaff(allowed ...domain.StaffRole) fiber.Handler {
	allowedSet := make(map[domain.StaffRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		authCtx, ok := FromContext(c)
		if !ok || authCtx.Kind != domain.PrincipalKindStaff || authCtx.Role == nil {
			return apperrors.NewForbidden("staff access required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[*authCtx.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireKind restricts a route to one principal kind.
func RequireKind(kind domain.PrincipalKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := FromContext(c)
		if !ok || authCtx.Kind != kind {
			return apperrors.NewForbidden(string(kind) + " access required")
		}
		return c.Next()
	}
}
