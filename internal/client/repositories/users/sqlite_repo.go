// Package users implements the local user record store on SQLite.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/byteme/internal/client/models"
	"github.com/dmitrijs2005/byteme/internal/common"
	"github.com/dmitrijs2005/byteme/internal/dbx"
	"github.com/google/uuid"
)

const selectUser = `SELECT id, email, full_name, password_hash, learning_streak, experience_points, created_at FROM users`

var _ Repository = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, newID: uuid.NewString, now: time.Now}
}

// Create inserts the record and reads it back in one transaction. The
// insert is skipped by the email unique constraint when the address is
// taken, which turns check-then-create into a single atomic step.
func (r *SQLiteRepository) Create(ctx context.Context, u models.NewUser) (*models.User, error) {
	id := r.newID()
	createdAt := r.now().UTC().UnixMilli()

	var created *models.User
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, email, full_name, password_hash, learning_streak, experience_points, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(email) DO NOTHING
		`, id, u.Email, u.FullName, u.PasswordHash, u.LearningStreak, u.ExperiencePoints, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if n == 0 {
			return common.ErrDuplicateEmail
		}

		created, err = scanUser(tx.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
		if err != nil {
			return fmt.Errorf("failed to read back user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = ?`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *SQLiteRepository) UpdateFullName(ctx context.Context, id string, fullName string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET full_name = ? WHERE id = ?`, fullName, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u         models.User
		createdAt int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.LearningStreak, &u.ExperiencePoints, &createdAt)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &u, nil
}
