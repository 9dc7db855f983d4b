package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with exactly this email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, password_hash, min_kcal, max_kcal, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, name, email, password_hash, min_kcal, max_kcal, created_at
		FROM users
		WHERE id = ?
	`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and fills in its id and creation time.
// ErrDuplicate is returned when the email is taken.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (name, email, password_hash, min_kcal, max_kcal, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	createdAt := time.Now().UTC()
	args := []any{user.Name, user.Email, user.PasswordHash, user.MinKcal, user.MaxKcal, createdAt}

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id)

	// the password hash stays out of the log
	logQuery(query, []any{user.Name, user.Email, user.MinKcal, user.MaxKcal}, id, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	user.ID = id
	user.CreatedAt = createdAt
	return nil
}

// UpdateProfile overwrites name and targets and returns the affected row count.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, name string, minKcal, maxKcal *float64) (int64, error) {
	const query = `
		UPDATE users
		SET name = ?, min_kcal = ?, max_kcal = ?
		WHERE id = ?
	`
	args := []any{name, minKcal, maxKcal, id}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
