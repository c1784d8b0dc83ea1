package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// List defaults and limits.
const (
	DefaultPage      = 1
	DefaultPageSize  = 10
	MaxPageSize      = 100
	DefaultSortBy    = "email"
	DefaultSortOrder = models.SortAsc
)

var sortableFields = []string{"name", "email", "created_at"}

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService delegating to userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// List returns one page of users. Zero-valued query fields are replaced by
// defaults; out-of-range values yield ErrInvalidListQuery.
func (s *userService) List(ctx context.Context, query models.ListQuery) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	query, err := normalizeListQuery(query)
	if err != nil {
		return models.UserPage{}, err
	}

	total, err := s.userRepository.Count(ctx, query.Search)
	if err != nil {
		log.Err(err).Msg("error counting users")
		return models.UserPage{}, fmt.Errorf("error counting users: %w", err)
	}

	users, err := s.userRepository.FindAll(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing users")
		return models.UserPage{}, fmt.Errorf("error listing users: %w", err)
	}

	return newUserPage(query, total, users), nil
}

func normalizeListQuery(query models.ListQuery) (models.ListQuery, error) {
	if query.Page == 0 {
		query.Page = DefaultPage
	}
	if query.PageSize == 0 {
		query.PageSize = DefaultPageSize
	}
	if query.SortBy == "" {
		query.SortBy = DefaultSortBy
	}
	if query.SortOrder == "" {
		query.SortOrder = DefaultSortOrder
	}
	query.SortOrder = strings.ToLower(query.SortOrder)
	query.Search = strings.TrimSpace(query.Search)

	switch {
	case query.Page < 1:
		return query, fmt.Errorf("%w: page %d", ErrInvalidListQuery, query.Page)
	case query.PageSize < 1 || query.PageSize > MaxPageSize:
		return query, fmt.Errorf("%w: page size %d", ErrInvalidListQuery, query.PageSize)
	case !slices.Contains(sortableFields, query.SortBy):
		return query, fmt.Errorf("%w: sort by %q", ErrInvalidListQuery, query.SortBy)
	case query.SortOrder != models.SortAsc && query.SortOrder != models.SortDesc:
		return query, fmt.Errorf("%w: sort order %q", ErrInvalidListQuery, query.SortOrder)
	}

	return query, nil
}

func newUserPage(query models.ListQuery, total int, users []models.User) models.UserPage {
	pageTotal := (total + query.PageSize - 1) / query.PageSize
	if users == nil {
		users = []models.User{}
	}

	return models.UserPage{
		PageNum:         query.Page,
		PageSize:        query.PageSize,
		Count:           len(users),
		Total:           total,
		PageTotal:       pageTotal,
		HasPreviousPage: query.Page > 1,
		HasNextPage:     query.Page < pageTotal,
		Data:            users,
	}
}

// Get returns the user with the given id or ErrNotFound.
func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Update changes the name and email of a user. A user may keep their own
// email; taking one that belongs to another user yields ErrEmailAlreadyTaken.
func (s *userService) Update(ctx context.Context, req models.UpdateUserRequest) (string, error) {
	log := logger.FromContext(ctx)

	owner, err := s.userRepository.FindByEmail(ctx, req.Email)
	switch {
	case err == nil && owner.ID != req.UserID:
		return "", ErrEmailAlreadyTaken
	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	err = s.userRepository.Update(ctx, req.UserID, req.Name, req.Email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "", ErrNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "", ErrEmailAlreadyTaken
	case err != nil:
		log.Err(err).Str("id", req.UserID).Msg("user update ended with error")
		return "", fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	return req.UserID, nil
}

// Delete removes a user and returns its id, or ErrNotFound.
func (s *userService) Delete(ctx context.Context, id string) (string, error) {
	err := s.userRepository.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "", ErrNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("user deletion ended with error")
		return "", fmt.Errorf("user deletion ended with error: %w", err)
	}

	return id, nil
}
