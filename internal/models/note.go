package models

import "time"

// DayNote is the free-text note a user keeps for one date.
type DayNote struct {
	UserID    int64     `json:"-" db:"user_id"`
	Date      string    `json:"date" db:"log_date"`
	Note      string    `json:"note" db:"note"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
