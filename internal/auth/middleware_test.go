package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/domain"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
}

func protectedApp(t *testing.T, capture **AuthContext) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager("test-secret", 60)
	mw := NewMiddleware(tm, newTestResolver())

	app := newTestApp()
	app.Get("/probe", mw.Handle, func(c *fiber.Ctx) error {
		authCtx, ok := FromContext(c)
		require.True(t, ok)
		if capture != nil {
			*capture = authCtx
		}
		return c.SendStatus(http.StatusOK)
	})
	return app, tm
}

func TestMiddlewareAttachesStaffContext(t *testing.T) {
	var captured *AuthContext
	app, tm := protectedApp(t, &captured)

	token, _, err := tm.IssueStaff(&domain.Staff{ID: "staff-1", Role: domain.StaffRoleAdmin, Region: "Dubai"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, captured)
	require.Equal(t, "staff-1", captured.PrincipalID)
	require.Equal(t, domain.PrincipalKindStaff, captured.Kind)
	require.NotNil(t, captured.Role)
	require.Equal(t, domain.StaffRoleAdmin, *captured.Role)
	require.Equal(t, domain.ScopeRegionBound, captured.Scope.Kind)
	require.Equal(t, "dubai", captured.Scope.Region)
}

func TestMiddlewareAttachesCandidateContext(t *testing.T) {
	var captured *AuthContext
	app, tm := protectedApp(t, &captured)

	token, _, err := tm.IssueCandidate("cand-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, domain.PrincipalKindCandidate, captured.Kind)
	require.Nil(t, captured.Role)
	require.Equal(t, "london", captured.Scope.Region)
}

func TestMiddlewareRejectsMissingOrBadHeader(t *testing.T) {
	app, tm := protectedApp(t, nil)

	token, _, err := tm.IssueCandidate("cand-1")
	require.NoError(t, err)

	cases := map[string]string{
		"no header":    "",
		"no scheme":    token,
		"wrong scheme": "Basic " + token,
		"garbage":      "Bearer not-a-token",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}

func TestMiddlewareRejectsUnresolvablePrincipal(t *testing.T) {
	app, tm := protectedApp(t, nil)

	// Valid signatures over principals that cannot resolve: deleted
	// record and inactive record both collapse to 401.
	for _, id := range []string{"nope", "cand-gone"} {
		token, _, err := tm.IssueCandidate(id)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, id)
	}
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	app, _ := protectedApp(t, nil)

	forged := NewTokenManager("other-secret", 60)
	token, _, err := forged.IssueStaff(&domain.Staff{ID: "staff-1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
