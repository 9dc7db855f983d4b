package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// ProfileManager defines the profile operations used by /me.
type ProfileManager interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error)
}

// ProfileResponse is the caller's own account.
// swagger:model ProfileResponse
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	MinKcal   *float64  `json:"min_kcal"`
	MaxKcal   *float64  `json:"max_kcal"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest is a partial update. Omitted fields are kept; a null
// target clears it.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// default: Alice
	Name *string `json:"name"`

	// default: 1800
	MinKcal models.OptionalFloat `json:"min_kcal" swaggertype:"number"`

	// default: 2200
	MaxKcal models.OptionalFloat `json:"max_kcal" swaggertype:"number"`
}

func newProfileResponse(user *models.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		MinKcal:   user.MinKcal,
		MaxKcal:   user.MaxKcal,
		CreatedAt: user.CreatedAt,
	}
}

// NewGetProfileHandler returns the authenticated user's profile.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /me [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newProfileResponse(user))
	}
}

// NewUpdateProfileHandler applies a partial profile update.
// @Summary Update own profile
// @Description Changes name and daily targets. min_kcal must stay below max_kcal.
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Nothing to update or invalid targets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, models.ProfileUpdate{
			Name:    req.Name,
			MinKcal: req.MinKcal,
			MaxKcal: req.MaxKcal,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newProfileResponse(user))
	}
}
