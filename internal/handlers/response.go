package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/facades"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
)

// UserIDGetter returns the authenticated user id stored in the request context.
type UserIDGetter func(ctx context.Context) (int64, bool)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: invalid credentials
	Error string `json:"error"`

	// Upstream HTTP status, set for food database failures
	Status int `json:"status,omitempty"`

	// Upstream message, set for food database failures
	Message string `json:"message,omitempty"`
}

// OKResponse acknowledges an operation without payload.
// swagger:model OKResponse
type OKResponse struct {
	OK bool `json:"ok"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// writeJSON encodes v before the status goes out, so an unencodable value
// becomes a 500 with a JSON body instead of a bare status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps service and facade errors to HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	var upstreamErr *facades.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		writeErrorMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrValidation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeErrorMessage(w, http.StatusConflict, "email already registered")
	case errors.Is(err, services.ErrUserNotFound):
		writeErrorMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, facades.ErrNotConfigured):
		writeErrorMessage(w, http.StatusInternalServerError, "food database is not configured")
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "food database request failed",
			Status:  upstreamErr.Status,
			Message: upstreamErr.Message,
		})
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"err", err,
		)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeAndValidate reads a JSON body into v and checks its validate tags.
// On failure the 400 response is already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be YYYY-MM-DD", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// authorizedUser returns the caller's id or writes 401.
func authorizedUser(w http.ResponseWriter, r *http.Request, getUserID UserIDGetter) (int64, bool) {
	userID, ok := getUserID(r.Context())
	if !ok {
		logger.Log.Error("request without authenticated user")
		writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}
