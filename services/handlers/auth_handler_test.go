package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/model"
)

type stubProfileService struct {
	user          *model.LearnerProfile
	authenticated bool
	loggedOut     int
}

func (s *stubProfileService) Login(email, password string) *model.LearnerProfile {
	name := "stub"
	s.user = &model.LearnerProfile{ID: "u-1", Email: &email, Name: &name, Level: 1}
	s.authenticated = true
	return s.user
}

func (s *stubProfileService) LoginAsGuest() *model.LearnerProfile {
	s.user = &model.LearnerProfile{ID: "guest-1", IsGuest: true, Level: 1}
	s.authenticated = true
	return s.user
}

func (s *stubProfileService) Logout() {
	s.user = nil
	s.authenticated = false
	s.loggedOut++
}

func (s *stubProfileService) UpdateIdentity(req dto.UpdateProfileRequest) (*model.LearnerProfile, error) {
	if req.Name != nil {
		s.user.Name = req.Name
	}
	return s.user, nil
}

func (s *stubProfileService) Profile() *model.LearnerProfile {
	return s.user
}

func (s *stubProfileService) IsAuthenticated() bool {
	return s.authenticated
}

func newAuthTestApp() (*fiber.App, *stubProfileService) {
	profileSvc := &stubProfileService{}
	handler := NewAuthHandler(profileSvc)

	app := fiber.New()
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/guest", handler.LoginAsGuest)
	app.Post("/auth/logout", handler.Logout)
	app.Get("/profile", handler.GetProfile)
	return app, profileSvc
}

func TestLoginEndpoint(t *testing.T) {
	app, profileSvc := newAuthTestApp()

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"alice@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, profileSvc.IsAuthenticated())

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "alice@example.com")
}

func TestLoginEndpointRejectsMalformedEmail(t *testing.T) {
	app, profileSvc := newAuthTestApp()

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"not-an-email","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.False(t, profileSvc.IsAuthenticated())
}

func TestLogoutEndpointIsIdempotent(t *testing.T) {
	app, profileSvc := newAuthTestApp()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/auth/logout", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
	assert.Equal(t, 2, profileSvc.loggedOut)
}

func TestGetProfileWhenLoggedOut(t *testing.T) {
	app, _ := newAuthTestApp()

	req := httptest.NewRequest("GET", "/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"is_authenticated":false`)
}
