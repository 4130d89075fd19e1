package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/shared"
)

type AuthHandler struct {
	profileSvc ProfileServiceInterface
}

func NewAuthHandler(profileSvc ProfileServiceInterface) *AuthHandler {
	return &AuthHandler{profileSvc: profileSvc}
}

// @Summary Login
// @Description Creates a learner profile from the email. Credentials are not verified; identity providers are external collaborators.
// @Tags auth
// @Accept  json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login request"
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	user := h.profileSvc.Login(req.Email, req.Password)

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.LoginResponse{
		User:            user,
		IsAuthenticated: true,
	})
}

// @Summary Guest Login
// @Description Starts a guest session with a unique session-scoped profile
// @Tags auth
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/guest [post]
func (h *AuthHandler) LoginAsGuest(c *fiber.Ctx) error {
	user := h.profileSvc.LoginAsGuest()

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.LoginResponse{
		User:            user,
		IsAuthenticated: true,
	})
}

// @Summary Logout
// @Description Discards the active profile. Idempotent.
// @Tags auth
// @Accept  json
// @Produce json
// @Success 200
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.profileSvc.Logout()
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Get Profile
// @Description Returns the active profile and authentication flag
// @Tags profile
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Router /api/v1/profile [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.LoginResponse{
		User:            h.profileSvc.Profile(),
		IsAuthenticated: h.profileSvc.IsAuthenticated(),
	})
}

// @Summary Update Profile
// @Description Merges identity fields (name, email) into the active profile. Points, level and completions are never touched.
// @Tags profile
// @Accept  json
// @Produce json
// @Param updateProfileRequest body dto.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} shared.Response{data=model.LearnerProfile}
// @Router /api/v1/profile [patch]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	user, err := h.profileSvc.UpdateIdentity(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", user)
}
