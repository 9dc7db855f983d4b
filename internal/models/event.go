package models

// Food log event operations.
const (
	EventEntryAdded   = "entry_added"
	EventEntryUpdated = "entry_updated"
	EventEntryDeleted = "entry_deleted"
)

// FoodLogEvent is published whenever a user's food log changes.
type FoodLogEvent struct {
	EventID   string  `json:"event_id"`  // Unique identifier of the event
	Timestamp int64   `json:"timestamp"` // Unix seconds
	UserID    int64   `json:"user_id"`
	EntryID   int64   `json:"entry_id"`
	Date      string  `json:"date,omitempty"`
	Kcal      float64 `json:"kcal"`
	Operation string  `json:"operation"` // entry_added, entry_updated or entry_deleted
}
