package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestUserService_List_Defaults(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	users := []models.User{{ID: "1"}, {ID: "2"}}

	want := models.ListQuery{Page: 1, PageSize: 10, SortBy: "email", SortOrder: models.SortAsc}
	repo.EXPECT().Count(gomock.Any(), "").Return(2, nil)
	repo.EXPECT().FindAll(gomock.Any(), want).Return(users, nil)

	page, err := svc.List(context.Background(), models.ListQuery{})

	require.NoError(t, err)
	assert.Equal(t, models.UserPage{
		PageNum:   1,
		PageSize:  10,
		Count:     2,
		Total:     2,
		PageTotal: 1,
		Data:      users,
	}, page)
}

func TestUserService_List_Paging(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		total         int
		returned      int
		wantPageTotal int
		wantPrev      bool
		wantNext      bool
	}{
		{name: "first of three", page: 1, total: 25, returned: 10, wantPageTotal: 3, wantNext: true},
		{name: "middle", page: 2, total: 25, returned: 10, wantPageTotal: 3, wantPrev: true, wantNext: true},
		{name: "last partial", page: 3, total: 25, returned: 5, wantPageTotal: 3, wantPrev: true},
		{name: "past the end", page: 4, total: 25, returned: 0, wantPageTotal: 3, wantPrev: true},
		{name: "empty store", page: 1, total: 0, returned: 0, wantPageTotal: 0},
		{name: "exact multiple", page: 2, total: 20, returned: 10, wantPageTotal: 2, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserSvc(t)
			users := make([]models.User, tt.returned)

			repo.EXPECT().Count(gomock.Any(), "ali").Return(tt.total, nil)
			repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(users, nil)

			page, err := svc.List(context.Background(), models.ListQuery{
				Page:      tt.page,
				PageSize:  10,
				SortBy:    "name",
				SortOrder: "DESC",
				Search:    "  ali ",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.page, page.PageNum)
			assert.Equal(t, tt.returned, page.Count)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.wantPageTotal, page.PageTotal)
			assert.Equal(t, tt.wantPrev, page.HasPreviousPage)
			assert.Equal(t, tt.wantNext, page.HasNextPage)
			assert.NotNil(t, page.Data)
		})
	}
}

func TestUserService_List_InvalidQuery(t *testing.T) {
	for _, q := range []models.ListQuery{
		{Page: -1},
		{PageSize: 101},
		{PageSize: -5},
		{SortBy: "password_hash"},
		{SortOrder: "sideways"},
	} {
		svc, _ := newTestUserSvc(t)
		_, err := svc.List(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidListQuery, "%+v", q)
	}
}

func TestUserService_List_StoreUnavailable(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().Count(gomock.Any(), "").Return(0, store.ErrStoreUnavailable)

	_, err := svc.List(context.Background(), models.ListQuery{})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestUserService_Get(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	alice := models.User{ID: "u1", Name: "Alice"}

	repo.EXPECT().FindByID(gomock.Any(), "u1").Return(alice, nil)
	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindByID(gomock.Any(), "down").Return(models.User{}, store.ErrStoreUnavailable)

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "down")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUserService_Update(t *testing.T) {
	req := models.UpdateUserRequest{UserID: "u1", Name: "Alice B", Email: "alice@x.com"}

	tests := []struct {
		name    string
		setup   func(repo *mock.MockUserRepository)
		wantErr []error
	}{
		{
			name: "new email",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().Update(gomock.Any(), "u1", req.Name, req.Email).Return(nil)
			},
		},
		{
			name: "keeps own email",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{ID: "u1"}, nil)
				repo.EXPECT().Update(gomock.Any(), "u1", req.Name, req.Email).Return(nil)
			},
		},
		{
			name: "email owned by another user",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{ID: "u2"}, nil)
			},
			wantErr: []error{ErrEmailAlreadyTaken},
		},
		{
			name: "race on unique constraint",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().Update(gomock.Any(), "u1", req.Name, req.Email).Return(store.ErrEmailAlreadyExists)
			},
			wantErr: []error{ErrEmailAlreadyTaken},
		},
		{
			name: "user missing",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().Update(gomock.Any(), "u1", req.Name, req.Email).Return(store.ErrUserNotFound)
			},
			wantErr: []error{ErrNotFound},
		},
		{
			name: "update unavailable",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().Update(gomock.Any(), "u1", req.Name, req.Email).Return(store.ErrStoreUnavailable)
			},
			wantErr: []error{ErrUpdateFailed, store.ErrStoreUnavailable},
		},
		{
			name: "lookup unavailable",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrStoreUnavailable)
			},
			wantErr: []error{store.ErrStoreUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserSvc(t)
			tt.setup(repo)

			id, err := svc.Update(context.Background(), req)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				assert.Equal(t, "u1", id)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestUserService_Delete(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().Delete(gomock.Any(), "u1").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "missing").Return(store.ErrUserNotFound)
	repo.EXPECT().Delete(gomock.Any(), "down").Return(store.ErrStoreUnavailable)

	id, err := svc.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(context.Background(), "down")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
