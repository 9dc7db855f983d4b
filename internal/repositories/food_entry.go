package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/calories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// FoodEntryReadRepository reads a user's food log. Reads join the request
// transaction when one is open so a day view sees a single snapshot.
type FoodEntryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFoodEntryReadRepository(db *sqlx.DB, txGetter TxGetter) *FoodEntryReadRepository {
	return &FoodEntryReadRepository{db: db, txGetter: txGetter}
}

// ListByDate returns the user's entries for date, newest first.
func (r *FoodEntryReadRepository) ListByDate(ctx context.Context, userID int64, date string) ([]models.FoodEntry, error) {
	const query = `
		SELECT id, user_id, log_date, name, grams, kcal_100g,
		       grams * kcal_100g / 100.0 AS kcal,
		       protein_100g, carbs_100g, fat_100g, created_at
		FROM food_entries
		WHERE user_id = ? AND log_date = ?
		ORDER BY created_at DESC, id DESC
	`
	ex := executor(ctx, r.db, r.txGetter)

	entries := []models.FoodEntry{}
	err := sqlx.SelectContext(ctx, ex, &entries, ex.Rebind(query), userID, date)

	logQuery(query, []any{userID, date}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TotalByDate sums the kcal of the user's entries on date; 0 when there are none.
func (r *FoodEntryReadRepository) TotalByDate(ctx context.Context, userID int64, date string) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(grams * kcal_100g / 100.0), 0)
		FROM food_entries
		WHERE user_id = ? AND log_date = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	var total float64
	err := sqlx.GetContext(ctx, ex, &total, ex.Rebind(query), userID, date)

	logQuery(query, []any{userID, date}, total, err)

	return total, err
}

// FoodEntryWriteRepository handles food log writes. Every mutation is scoped
// to the owning user.
type FoodEntryWriteRepository struct {
	db *sqlx.DB
}

func NewFoodEntryWriteRepository(db *sqlx.DB) *FoodEntryWriteRepository {
	return &FoodEntryWriteRepository{db: db}
}

// Save inserts an entry and returns it with id, derived kcal and creation time.
func (r *FoodEntryWriteRepository) Save(ctx context.Context, userID int64, in models.NewFoodEntry) (*models.FoodEntry, error) {
	const query = `
		INSERT INTO food_entries (user_id, log_date, name, grams, kcal_100g, protein_100g, carbs_100g, fat_100g, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	createdAt := time.Now().UTC()
	args := []any{userID, in.Date, in.Name, in.Grams, in.Kcal100g, in.Protein100g, in.Carbs100g, in.Fat100g, createdAt}

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id)

	logQuery(query, args, id, err)

	if err != nil {
		return nil, err
	}

	return &models.FoodEntry{
		ID:          id,
		UserID:      userID,
		Date:        in.Date,
		Name:        in.Name,
		Grams:       in.Grams,
		Kcal100g:    in.Kcal100g,
		Kcal:        calories.Compute(in.Grams, in.Kcal100g),
		Protein100g: in.Protein100g,
		Carbs100g:   in.Carbs100g,
		Fat100g:     in.Fat100g,
		CreatedAt:   createdAt,
	}, nil
}

// Update changes grams and rate of one entry owned by userID and returns the
// affected row count. An entry of another user is left untouched.
func (r *FoodEntryWriteRepository) Update(ctx context.Context, userID, entryID int64, grams, kcal100g float64) (int64, error) {
	const query = `
		UPDATE food_entries
		SET grams = ?, kcal_100g = ?
		WHERE id = ? AND user_id = ?
	`
	return r.exec(ctx, query, grams, kcal100g, entryID, userID)
}

// Delete removes one entry owned by userID and returns the affected row count.
func (r *FoodEntryWriteRepository) Delete(ctx context.Context, userID, entryID int64) (int64, error) {
	const query = `
		DELETE FROM food_entries
		WHERE id = ? AND user_id = ?
	`
	return r.exec(ctx, query, entryID, userID)
}

func (r *FoodEntryWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
