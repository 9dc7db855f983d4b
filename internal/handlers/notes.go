package handlers

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// NoteManager keeps one note per user and date.
type NoteManager interface {
	GetNote(ctx context.Context, userID int64, date string) (*models.DayNote, error)
	SaveNote(ctx context.Context, userID int64, date, text string) (*models.DayNote, error)
	DeleteNote(ctx context.Context, userID int64, date string) error
}

// SaveNoteRequest sets the note of a date. A blank note deletes it.
// swagger:model SaveNoteRequest
type SaveNoteRequest struct {
	// required: true
	// default: 2024-03-01
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// default: Long run in the morning
	Note string `json:"note"`
}

// NoteResponse is the note of a date; note is null when there is none.
// swagger:model NoteResponse
type NoteResponse struct {
	Date string  `json:"date"`
	Note *string `json:"note"`
}

func newNoteResponse(date string, note *models.DayNote) NoteResponse {
	resp := NoteResponse{Date: date}
	if note != nil {
		resp.Note = &note.Note
	}
	return resp
}

// NewGetNoteHandler returns the note for ?date=.
// @Summary Get a day note
// @Tags notes
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} handlers.NoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed date"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notes [get]
// @Security BearerAuth
func NewGetNoteHandler(svc NoteManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		date := r.URL.Query().Get("date")
		note, err := svc.GetNote(r.Context(), userID, date)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newNoteResponse(date, note))
	}
}

// NewSaveNoteHandler creates, replaces or clears the note of a date.
// @Summary Save a day note
// @Tags notes
// @Accept json
// @Produce json
// @Param saveNoteRequest body handlers.SaveNoteRequest true "Note"
// @Success 200 {object} handlers.NoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed date"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notes [post]
// @Security BearerAuth
func NewSaveNoteHandler(svc NoteManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		var req SaveNoteRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		note, err := svc.SaveNote(r.Context(), userID, req.Date, req.Note)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newNoteResponse(req.Date, note))
	}
}

// NewDeleteNoteHandler removes the note for ?date=.
// @Summary Delete a day note
// @Tags notes
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} handlers.OKResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed date"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notes [delete]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authorizedUser(w, r, getUserID)
		if !ok {
			return
		}

		if err := svc.DeleteNote(r.Context(), userID, r.URL.Query().Get("date")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}
