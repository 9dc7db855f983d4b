package services

import (
	"context"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/calories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// DayService composes the day view. It only reads; when the caller runs it
// inside a transaction all reads share one snapshot.
type DayService struct {
	entries FoodEntryReader
	users   UserReader
	notes   NoteReader
}

func NewDayService(entries FoodEntryReader, users UserReader, notes NoteReader) *DayService {
	return &DayService{
		entries: entries,
		users:   users,
		notes:   notes,
	}
}

// GetDay returns the user's entries, total, targets, status and note for date.
func (s *DayService) GetDay(ctx context.Context, userID int64, date string) (*models.DayView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	items, err := s.entries.ListByDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to list food entries", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	for i := range items {
		items[i].Kcal = calories.Round(items[i].Kcal, 2)
	}

	total, err := s.entries.TotalByDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to total food entries", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	total = calories.Round(total, 1)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	note, err := s.notes.Get(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to get note", "userID", userID, "date", date, "error", err)
		return nil, err
	}

	targets := user.Targets()
	view := &models.DayView{
		Date:        date,
		Items:       items,
		TotalKcal:   total,
		UserTargets: targets,
		Status:      targets.Status(total),
	}
	if note != nil {
		view.Note = &note.Note
	}
	return view, nil
}
