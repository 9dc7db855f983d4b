package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

type NoteReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNoteReadRepository(db *sqlx.DB, txGetter TxGetter) *NoteReadRepository {
	return &NoteReadRepository{db: db, txGetter: txGetter}
}

// Get returns the user's note for date, or nil when there is none.
func (r *NoteReadRepository) Get(ctx context.Context, userID int64, date string) (*models.DayNote, error) {
	const query = `
		SELECT user_id, log_date, note, updated_at
		FROM day_notes
		WHERE user_id = ? AND log_date = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	var note models.DayNote
	err := sqlx.GetContext(ctx, ex, &note, ex.Rebind(query), userID, date)

	logQuery(query, []any{userID, date}, note.Note, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

type NoteWriteRepository struct {
	db *sqlx.DB
}

func NewNoteWriteRepository(db *sqlx.DB) *NoteWriteRepository {
	return &NoteWriteRepository{db: db}
}

// Upsert creates or overwrites the note for (userID, date).
func (r *NoteWriteRepository) Upsert(ctx context.Context, userID int64, date, text string) (*models.DayNote, error) {
	const query = `
		INSERT INTO day_notes (user_id, log_date, note, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, log_date)
		DO UPDATE SET note = excluded.note, updated_at = excluded.updated_at
	`
	updatedAt := time.Now().UTC()
	args := []any{userID, date, text, updatedAt}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return nil, err
	}
	return &models.DayNote{UserID: userID, Date: date, Note: text, UpdatedAt: updatedAt}, nil
}

// Delete removes the note for (userID, date) and returns the affected row count.
func (r *NoteWriteRepository) Delete(ctx context.Context, userID int64, date string) (int64, error) {
	const query = `
		DELETE FROM day_notes
		WHERE user_id = ? AND log_date = ?
	`
	args := []any{userID, date}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
