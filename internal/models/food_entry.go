package models

import "time"

// FoodEntry represents a logged food row. Kcal is derived from Grams and
// Kcal100g when the row is read and is never stored.
type FoodEntry struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"-" db:"user_id"`
	Date        string    `json:"date" db:"log_date"` // YYYY-MM-DD
	Name        string    `json:"name" db:"name"`
	Grams       float64   `json:"grams" db:"grams"`
	Kcal100g    float64   `json:"kcal_100g" db:"kcal_100g"`
	Kcal        float64   `json:"kcal" db:"kcal"`
	Protein100g *float64  `json:"protein_100g" db:"protein_100g"`
	Carbs100g   *float64  `json:"carbs_100g" db:"carbs_100g"`
	Fat100g     *float64  `json:"fat_100g" db:"fat_100g"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewFoodEntry is the input for logging a food on a date.
type NewFoodEntry struct {
	Date        string
	Name        string
	Grams       float64
	Kcal100g    float64
	Protein100g *float64
	Carbs100g   *float64
	Fat100g     *float64
}
