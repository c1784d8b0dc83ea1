package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// The same code serves PostgreSQL and SQLite, the [DB] handle supplies
// placeholders and error classification.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB

	newID func() string
	now   func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		newID:  utils.NewUUIDGenerator().Generate,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// FindAll implements [UserRepository].
func (r *userRepository) FindAll(ctx context.Context, query models.ListQuery) ([]models.User, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.buildFindAllQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.unavailable(err))
	}
	defer rows.Close()

	users := make([]models.User, 0, query.PageSize)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAll").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.unavailable(err))
	}

	return users, nil
}

// Count implements [UserRepository].
func (r *userRepository) Count(ctx context.Context, search string) (int, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.buildCountQuery(search)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Count").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.Count").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.unavailable(err))
	}

	return total, nil
}

// FindByID implements [UserRepository].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findBy(ctx, "id", id)
}

// FindByEmail implements [UserRepository].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.buildFindByQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = scanUser(r.db.QueryRowContext(ctx, sqlQuery, args...), &user)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findBy").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.unavailable(err))
	}

	return user, nil
}

// Insert implements [UserRepository].
//
// Error handling:
//   - unique violation on email (PostgreSQL 23505, SQLite constraint
//     unique) → [ErrEmailAlreadyExists].
//   - transient driver error → wrapped [ErrStoreUnavailable].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *userRepository) Insert(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user := models.User{
		ID:           r.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	sqlQuery, args, err := r.db.buildInsertQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.unavailable(err))
	}

	return user, nil
}

// Update implements [UserRepository].
func (r *userRepository) Update(ctx context.Context, id, name, email string) error {
	return r.update(ctx, "*userRepository.Update", id, map[string]any{
		"name":       name,
		"email":      email,
		"updated_at": r.now(),
	})
}

// UpdatePassword implements [UserRepository].
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.update(ctx, "*userRepository.UpdatePassword", id, map[string]any{
		"password_hash": passwordHash,
		"updated_at":    r.now(),
	})
}

func (r *userRepository) update(ctx context.Context, funcName, id string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.buildUpdateQuery(id, fields)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.unavailable(err))
	}

	return r.expectOneRow(result, funcName, log)
}

// Delete implements [UserRepository].
func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.db.buildDeleteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.unavailable(err))
	}

	return r.expectOneRow(result, "*userRepository.Delete", log)
}

func (r *userRepository) expectOneRow(result sql.Result, funcName string, log *logger.Logger) error {
	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
}
