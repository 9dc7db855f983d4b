package models

// Day status values.
const (
	StatusBelow  = "below"
	StatusWithin = "within"
	StatusAbove  = "above"
)

// Targets are the daily calorie bounds of a user. Either may be nil.
type Targets struct {
	MinKcal *float64 `json:"min_kcal"`
	MaxKcal *float64 `json:"max_kcal"`
}

// Status classifies total against the targets. The lower bound is checked
// first, then the upper one. Nil means no target is configured.
func (t Targets) Status(total float64) *string {
	var s string
	switch {
	case t.MinKcal != nil && total < *t.MinKcal:
		s = StatusBelow
	case t.MaxKcal != nil && total > *t.MaxKcal:
		s = StatusAbove
	case t.MinKcal != nil || t.MaxKcal != nil:
		s = StatusWithin
	default:
		return nil
	}
	return &s
}

// DayView is everything shown for one user and date.
type DayView struct {
	Date        string      `json:"date"`
	Items       []FoodEntry `json:"items"`
	TotalKcal   float64     `json:"total_kcal"`
	UserTargets Targets     `json:"user_targets"`
	Status      *string     `json:"status"`
	Note        *string     `json:"note"`
}
