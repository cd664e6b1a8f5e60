package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

func TestScopeCovers(t *testing.T) {
	unrestricted := domain.Scope{Kind: domain.ScopeUnrestricted}
	dubai := domain.Scope{Kind: domain.ScopeRegionBound, Region: "dubai"}

	require.True(t, scopeCovers(unrestricted, "anywhere"))
	require.True(t, scopeCovers(dubai, "dubai"))
	require.True(t, scopeCovers(dubai, "Dubai"))
	require.False(t, scopeCovers(dubai, "london"))
	require.False(t, scopeCovers(dubai, ""))
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	app.Get("/page", func(c *fiber.Ctx) error {
		limit, offset := parsePagination(c)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	cases := []struct {
		query  string
		limit  int
		offset int
	}{
		{"", 50, 0},
		{"?page=2&page_size=10", 10, 10},
		{"?page=0&page_size=-5", 50, 0},
		{"?page=3", 50, 100},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/page"+tc.query, nil))
		require.NoError(t, err, tc.query)

		var got struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, tc.limit, got.Limit, tc.query)
		require.Equal(t, tc.offset, got.Offset, tc.query)
	}
}
