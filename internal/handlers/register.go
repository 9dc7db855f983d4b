package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, minKcal, maxKcal *float64) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Alice
	Name string `json:"name" validate:"required"`

	// Email, unique and case-sensitive
	// required: true
	// default: alice@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	// Optional lower daily target
	// default: 1800
	MinKcal *float64 `json:"min_kcal" validate:"omitempty,gt=0"`

	// Optional upper daily target
	// default: 2200
	MaxKcal *float64 `json:"max_kcal" validate:"omitempty,gt=0"`
}

// AuthResponse is returned by registration and login.
// swagger:model AuthResponse
type AuthResponse struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	MinKcal *float64 `json:"min_kcal"`
	MaxKcal *float64 `json:"max_kcal"`

	// Bearer token for the Authorization header
	Token string `json:"token"`
}

func newAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		MinKcal: user.MinKcal,
		MaxKcal: user.MaxKcal,
		Token:   token,
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and returns it with a session token. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or invalid targets"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.MinKcal, req.MaxKcal)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newAuthResponse(user, token))
	}
}
