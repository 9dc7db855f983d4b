package services

//go:generate mockgen -source=food_log.go -destination=food_log_mock.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/calories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// FoodEntryReader reads a user's food log.
type FoodEntryReader interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]models.FoodEntry, error) // Entries of one day, newest first
	TotalByDate(ctx context.Context, userID int64, date string) (float64, error)           // Unrounded kcal sum of one day
}

// FoodEntryWriter mutates a user's food log. Update and Delete return the
// number of affected rows; rows of other users are never touched.
type FoodEntryWriter interface {
	Save(ctx context.Context, userID int64, in models.NewFoodEntry) (*models.FoodEntry, error)
	Update(ctx context.Context, userID, entryID int64, grams, kcal100g float64) (int64, error)
	Delete(ctx context.Context, userID, entryID int64) (int64, error)
}

// Upper bounds of logged amounts. They keep every derived kcal value and day
// total finite.
const (
	MaxGrams     = 100_000 // one entry, in grams
	MaxKcal100g  = 1_000   // pure fat is about 900 kcal per 100 g
	MaxMacro100g = 100     // grams of a macro per 100 g of food
)

// PublishTimeout bounds one food log event write.
const PublishTimeout = 2 * time.Second

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FoodLogService manages food log entries and publishes their changes.
type FoodLogService struct {
	reader      FoodEntryReader
	writer      FoodEntryWriter
	kafkaWriter KafkaWriter
}

// NewFoodLogService creates a new FoodLogService. kafkaWriter may be nil.
func NewFoodLogService(reader FoodEntryReader, writer FoodEntryWriter, kafkaWriter KafkaWriter) *FoodLogService {
	return &FoodLogService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a food log change to Kafka.
func (s *FoodLogService) publishEvent(ctx context.Context, event models.FoodLogEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal food log event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	// the response does not wait on a slow or unreachable broker
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(pubCtx, msg); err != nil {
		logger.Log.Errorw("Failed to publish food log event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Food log event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

func newEvent(operation string, userID, entryID int64, date string, kcal float64) models.FoodLogEvent {
	return models.FoodLogEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		EntryID:   entryID,
		Date:      date,
		Kcal:      kcal,
		Operation: operation,
	}
}

// AddEntry logs a food for the user. The returned kcal is rounded to 2 decimals.
func (s *FoodLogService) AddEntry(ctx context.Context, userID int64, in models.NewFoodEntry) (*models.FoodEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	if err := validateAmounts(in.Grams, in.Kcal100g); err != nil {
		return nil, err
	}
	macros := []struct {
		field string
		value *float64
	}{
		{"protein_100g", in.Protein100g},
		{"carbs_100g", in.Carbs100g},
		{"fat_100g", in.Fat100g},
	}
	for _, m := range macros {
		if m.value == nil {
			continue
		}
		if *m.value < 0 {
			return nil, invalid(m.field + " must not be negative")
		}
		if *m.value > MaxMacro100g {
			return nil, invalid(fmt.Sprintf("%s must be at most %g", m.field, float64(MaxMacro100g)))
		}
	}

	entry, err := s.writer.Save(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to save food entry", "userID", userID, "date", in.Date, "error", err)
		return nil, err
	}
	entry.Kcal = calories.Round(entry.Kcal, 2)

	s.publishEvent(ctx, newEvent(models.EventEntryAdded, userID, entry.ID, entry.Date, entry.Kcal))

	return entry, nil
}

// UpdateEntry changes grams and rate of an entry owned by the user. It returns
// the number of updated rows and the recomputed kcal rounded to 2 decimals.
func (s *FoodLogService) UpdateEntry(ctx context.Context, userID, entryID int64, grams, kcal100g float64) (int64, float64, error) {
	if err := validateAmounts(grams, kcal100g); err != nil {
		return 0, 0, err
	}

	updated, err := s.writer.Update(ctx, userID, entryID, grams, kcal100g)
	if err != nil {
		logger.Log.Errorw("failed to update food entry", "userID", userID, "entryID", entryID, "error", err)
		return 0, 0, err
	}
	kcal := calories.Display(grams, kcal100g)

	if updated > 0 {
		s.publishEvent(ctx, newEvent(models.EventEntryUpdated, userID, entryID, "", kcal))
	}

	return updated, kcal, nil
}

// DeleteEntry removes an entry owned by the user and returns the deleted count.
func (s *FoodLogService) DeleteEntry(ctx context.Context, userID, entryID int64) (int64, error) {
	deleted, err := s.writer.Delete(ctx, userID, entryID)
	if err != nil {
		logger.Log.Errorw("failed to delete food entry", "userID", userID, "entryID", entryID, "error", err)
		return 0, err
	}

	if deleted > 0 {
		s.publishEvent(ctx, newEvent(models.EventEntryDeleted, userID, entryID, "", 0))
	}

	return deleted, nil
}

// ListForDay returns the user's entries for date, newest first.
func (s *FoodLogService) ListForDay(ctx context.Context, userID int64, date string) ([]models.FoodEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	entries, err := s.reader.ListByDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to list food entries", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	for i := range entries {
		entries[i].Kcal = calories.Round(entries[i].Kcal, 2)
	}
	return entries, nil
}

// TotalForDay returns the day's kcal sum rounded to 1 decimal.
func (s *FoodLogService) TotalForDay(ctx context.Context, userID int64, date string) (float64, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}

	total, err := s.reader.TotalByDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to total food entries", "userID", userID, "date", date, "error", err)
		return 0, err
	}
	return calories.Round(total, 1), nil
}

func validateAmounts(grams, kcal100g float64) error {
	if grams <= 0 {
		return invalid("grams must be positive")
	}
	if grams > MaxGrams {
		return invalid(fmt.Sprintf("grams must be at most %g", float64(MaxGrams)))
	}
	if kcal100g <= 0 {
		return invalid("kcal_100g must be positive")
	}
	if kcal100g > MaxKcal100g {
		return invalid(fmt.Sprintf("kcal_100g must be at most %g", float64(MaxKcal100g)))
	}
	return nil
}
