package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/domain"
)

func TestCandidatesCreateDefaultsLocationToRegion(t *testing.T) {
	repo := newFakeCandidateRepo()
	h := NewCandidatesHandler(repo)

	app := scopedApp(regionStaffCtx("dubai"))
	app.Post("/candidates", h.Create)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/candidates", dto.CandidateRegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "dubai", repo.stored("cand-1").Location)
}

func TestCandidatesCreateRejectsOutOfScopeLocation(t *testing.T) {
	repo := newFakeCandidateRepo()
	h := NewCandidatesHandler(repo)

	app := scopedApp(regionStaffCtx("dubai"))
	app.Post("/candidates", h.Create)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/candidates", dto.CandidateRegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Location:  "London",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Nil(t, repo.stored("cand-1"))
}

func TestCandidatesUpdateRejectsMoveOutOfScope(t *testing.T) {
	repo := newFakeCandidateRepo(&domain.Candidate{
		ID:        "cand-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Location:  "dubai",
		Active:    true,
	})
	h := NewCandidatesHandler(repo)

	app := scopedApp(regionStaffCtx("dubai"))
	app.Put("/candidates/:id", h.Update)

	london := "London"
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/candidates/cand-1", dto.CandidateUpdateRequest{Location: &london}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "dubai", repo.stored("cand-1").Location)
}

func TestCandidatesUpdateUnrestrictedMayRelocate(t *testing.T) {
	repo := newFakeCandidateRepo(&domain.Candidate{
		ID:       "cand-1",
		Email:    "jane@example.com",
		Location: "dubai",
		Active:   true,
	})
	h := NewCandidatesHandler(repo)

	app := scopedApp(superAdminCtx())
	app.Put("/candidates/:id", h.Update)

	london := "London"
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/candidates/cand-1", dto.CandidateUpdateRequest{Location: &london}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "London", repo.stored("cand-1").Location)
}
