package handlers

//go:generate mockgen -source=day.go -destination=day_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// DayReader builds the day view.
type DayReader interface {
	GetDay(ctx context.Context, userID int64, date string) (*models.DayView, error)
}

// FoodLogger mutates the caller's food log.
type FoodLogger interface {
	AddEntry(ctx context.Context, userID int64, in models.NewFoodEntry) (*models.FoodEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID int64, grams, kcal100g float64) (int64, float64, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) (int64, error)
}

// AddEntryRequest logs a food on a date.
// swagger:model AddEntryRequest
type AddEntryRequest struct {
	// required: true
	// default: 2024-03-01
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// required: true
	// default: Rice
	Name string `json:"name" validate:"required"`

	// required: true
	// default: 150
	Grams float64 `json:"grams" validate:"gt=0,lte=100000"`

	// required: true
	// default: 130
	Kcal100g float64 `json:"kcal_100g" validate:"gt=0,lte=1000"`

	Protein100g *float64 `json:"protein_100g" validate:"omitempty,gte=0,lte=100"`
	Carbs100g   *float64 `json:"carbs_100g" validate:"omitempty,gte=0,lte=100"`
	Fat100g     *float64 `json:"fat_100g" validate:"omitempty,gte=0,lte=100"`
}

// AddEntryResponse carries the new entry id and its kcal.
// swagger:model AddEntryResponse
type AddEntryResponse struct {
	ID   int64   `json:"id"`
	Kcal float64 `json:"kcal"`
}

// UpdateEntryRequest replaces grams and rate of an entry.
// swagger:model UpdateEntryRequest
type UpdateEntryRequest struct {
	// required: true
	// default: 200
	Grams float64 `json:"grams" validate:"gt=0,lte=100000"`

	// required: true
	// default: 130
	Kcal100g float64 `json:"kcal_100g" validate:"gt=0,lte=1000"`
}

// UpdateEntryResponse reports how many entries changed.
// swagger:model UpdateEntryResponse
type UpdateEntryResponse struct {
	OK      bool    `json:"ok"`
	Updated int64   `json:"updated"`
	Kcal    float64 `json:"kcal"`
}

// DeleteEntryResponse reports how many entries were removed.
// swagger:model DeleteEntryResponse
type DeleteEntryResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

// NewGetDayHandler returns the day view for ?date=YYYY-MM-DD.
// @Summary Get a day
// @Description Entries newest first, total kcal, targets, status and note of one date.
// @Tags day
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} models.DayView
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed date"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /day [get]
// @Security BearerAuth
func NewGetDayHandler(svc DayReader, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		view, err := svc.GetDay(r.Context(), userID, r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAddEntryHandler logs a food entry.
// @Summary Add a food entry
// @Tags day
// @Accept json
// @Produce json
// @Param addEntryRequest body handlers.AddEntryRequest true "Entry"
// @Success 201 {object} handlers.AddEntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /day [post]
// @Security BearerAuth
func NewAddEntryHandler(svc FoodLogger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		var req AddEntryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := svc.AddEntry(r.Context(), userID, models.NewFoodEntry{
			Date:        req.Date,
			Name:        req.Name,
			Grams:       req.Grams,
			Kcal100g:    req.Kcal100g,
			Protein100g: req.Protein100g,
			Carbs100g:   req.Carbs100g,
			Fat100g:     req.Fat100g,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, AddEntryResponse{ID: entry.ID, Kcal: entry.Kcal})
	}
}

// NewUpdateEntryHandler changes grams and rate of one of the caller's entries.
// @Summary Update a food entry
// @Description updated is 0 when the entry does not exist or belongs to someone else.
// @Tags day
// @Accept json
// @Produce json
// @Param id path int true "Entry id"
// @Param updateEntryRequest body handlers.UpdateEntryRequest true "New amounts"
// @Success 200 {object} handlers.UpdateEntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /day/{id} [put]
// @Security BearerAuth
func NewUpdateEntryHandler(svc FoodLogger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		entryID, ok := entryIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateEntryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		updated, kcal, err := svc.UpdateEntry(r.Context(), userID, entryID, req.Grams, req.Kcal100g)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateEntryResponse{OK: true, Updated: updated, Kcal: kcal})
	}
}

// NewDeleteEntryHandler removes one of the caller's entries.
// @Summary Delete a food entry
// @Description deleted is 0 when the entry does not exist or belongs to someone else.
// @Tags day
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} handlers.DeleteEntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /day/{id} [delete]
// @Security BearerAuth
func NewDeleteEntryHandler(svc FoodLogger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		entryID, ok := entryIDParam(w, r)
		if !ok {
			return
		}

		deleted, err := svc.DeleteEntry(r.Context(), userID, entryID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteEntryResponse{OK: true, Deleted: deleted})
	}
}

func entryIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeErrorMessage(w, http.StatusBadRequest, "invalid entry id")
		return 0, false
	}
	return id, true
}
