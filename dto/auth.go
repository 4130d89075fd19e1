package dto

import "github.com/pocketnative/pocketnative_api/model"

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	// Password is accepted but never verified; credential checks belong to an
	// external identity provider.
	Password string `json:"password" validate:"required,min=1"`
}

func (r LoginRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginResponse struct {
	User            *model.LearnerProfile `json:"user"`
	IsAuthenticated bool                  `json:"is_authenticated"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (r UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(r)
}
