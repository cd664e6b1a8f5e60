package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/talentdesk/recruitment-service/internal/domain"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

const authContextKey = "auth_context"

// AuthContext is the request-scoped contract handed to every resource
// handler. Handlers narrow their queries with Scope and never
// re-implement the visibility policy.
type AuthContext struct {
	PrincipalID string
	Kind        domain.PrincipalKind
	Role        *domain.StaffRole
	Scope       domain.Scope
	Principal   *domain.Principal
}

// Middleware authenticates bearer tokens and attaches the auth context.
type Middleware struct {
	tokens   *TokenManager
	resolver *Resolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, resolver *Resolver) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver}
}

// Handle runs verify, resolve and scope computation for protected
// routes. Every failure before scope attachment is terminal and all
// authentication failures share one surface.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	claims, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	principal, err := m.resolver.Resolve(c.Context(), claims)
	if err != nil {
		switch {
		case errors.Is(err, ErrPrincipalNotFound), errors.Is(err, ErrPrincipalInactive):
			return apperrors.NewUnauthorized("unauthenticated")
		default:
			return apperrors.MapError(err)
		}
	}

	authCtx := &AuthContext{
		PrincipalID: principal.ID(),
		Kind:        principal.Kind,
		Scope:       ComputeScope(principal),
		Principal:   principal,
	}
	if principal.Kind == domain.PrincipalKindStaff {
		role := principal.Staff.Role
		authCtx.Role = &role
	}

	Attach(c, authCtx)
	return c.Next()
}

// Attach stores the auth context on the request. Handle calls it after
// resolution; handler tests use it to stage a principal directly.
func Attach(c *fiber.Ctx, authCtx *AuthContext) {
	c.Locals(authContextKey, authCtx)
}

// FromContext retrieves the auth context attached by Handle.
func FromContext(c *fiber.Ctx) (*AuthContext, bool) {
	val := c.Locals(authContextKey)
	if val == nil {
		return nil, false
	}
	authCtx, ok := val.(*AuthContext)
	return authCtx, ok
}
