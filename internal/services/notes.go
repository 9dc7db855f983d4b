package services

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// NoteReader reads day notes.
type NoteReader interface {
	Get(ctx context.Context, userID int64, date string) (*models.DayNote, error)
}

// NoteWriter writes day notes.
type NoteWriter interface {
	Upsert(ctx context.Context, userID int64, date, text string) (*models.DayNote, error)
	Delete(ctx context.Context, userID int64, date string) (int64, error)
}

// NoteService keeps at most one note per user and date.
type NoteService struct {
	reader NoteReader
	writer NoteWriter
}

func NewNoteService(reader NoteReader, writer NoteWriter) *NoteService {
	return &NoteService{reader: reader, writer: writer}
}

// GetNote returns the note for date or nil.
func (s *NoteService) GetNote(ctx context.Context, userID int64, date string) (*models.DayNote, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	note, err := s.reader.Get(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to get note", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	return note, nil
}

// SaveNote stores text as the note for date. Blank text deletes the note and
// nil is returned.
func (s *NoteService) SaveNote(ctx context.Context, userID int64, date, text string) (*models.DayNote, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		if err := s.DeleteNote(ctx, userID, date); err != nil {
			return nil, err
		}
		return nil, nil
	}

	note, err := s.writer.Upsert(ctx, userID, date, text)
	if err != nil {
		logger.Log.Errorw("failed to save note", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	return note, nil
}

// DeleteNote removes the note for date. A missing note is not an error.
func (s *NoteService) DeleteNote(ctx context.Context, userID int64, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}

	if _, err := s.writer.Delete(ctx, userID, date); err != nil {
		logger.Log.Errorw("failed to delete note", "userID", userID, "date", date, "error", err)
		return err
	}
	return nil
}
