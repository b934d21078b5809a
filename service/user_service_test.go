// api/service/user_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/api/cache"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/service"
	"github.com/shopora/api/util"
)

type fakeUserStore struct {
	getErr    error
	createErr error
	deleteErr error
	user      *model.User
	onCreate  func()
}

func (f *fakeUserStore) CreateUser(_ context.Context, user model.User) (string, error) {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return "", f.createErr
	}
	return user.ID, nil
}

func (f *fakeUserStore) GetUser(context.Context, string) (*model.User, error) {
	return f.user, f.getErr
}

func (f *fakeUserStore) AllUsers(context.Context) ([]model.User, error) {
	return nil, nil
}

func (f *fakeUserStore) DeleteUser(context.Context, string) error {
	return f.deleteErr
}

func newUserService(store *cache.Store, users *fakeUserStore) service.IUserService {
	return service.NewUserService(
		users,
		util.NewValidationUtil(),
		cache.NewInvalidator(store),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func validUser() model.User {
	return model.User{
		ID:     "u1",
		Name:   "Asha",
		Email:  "asha@example.com",
		Gender: model.GenderFemale,
		DOB:    time.Date(1995, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpsertUser(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	t.Run("NewUserCommitThenInvalidate", func(t *testing.T) {
		store := cache.NewStore()
		seedAggregateKeys(store)

		users := &fakeUserStore{getErr: shopora_errors.ErrUserNotFound}
		users.onCreate = func() {
			assert.True(t, store.Has(cache.KeyAdminStats))
		}

		svc := newUserService(store, users)
		created, isNew, err := svc.UpsertUser(context.Background(), validUser())
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, "u1", created.ID)

		// A user write stales only the admin aggregates.
		assert.False(t, store.Has(cache.KeyAdminStats))
		assert.False(t, store.Has(cache.KeyAdminPieCharts))
		assert.True(t, store.Has(cache.KeyAllOrders))
		assert.True(t, store.Has(cache.KeyLatestProducts))
	})

	t.Run("ExistingUserInvalidatesNothing", func(t *testing.T) {
		store := cache.NewStore()
		seedAggregateKeys(store)

		existing := validUser()
		svc := newUserService(store, &fakeUserStore{user: &existing})
		got, isNew, err := svc.UpsertUser(context.Background(), validUser())
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, existing.ID, got.ID)

		assert.True(t, store.Has(cache.KeyAdminStats))
	})

	t.Run("NoInvalidationWhenCreateFails", func(t *testing.T) {
		store := cache.NewStore()
		seedAggregateKeys(store)

		users := &fakeUserStore{getErr: shopora_errors.ErrUserNotFound, createErr: assert.AnError}
		svc := newUserService(store, users)
		_, _, err := svc.UpsertUser(context.Background(), validUser())
		require.Error(t, err)

		assert.True(t, store.Has(cache.KeyAdminStats))
	})
}

func TestDeleteUser(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	t.Run("InvalidatesAfterDelete", func(t *testing.T) {
		store := cache.NewStore()
		seedAggregateKeys(store)

		existing := validUser()
		svc := newUserService(store, &fakeUserStore{user: &existing})
		require.NoError(t, svc.DeleteUser(context.Background(), "u1"))

		assert.False(t, store.Has(cache.KeyAdminStats))
	})

	t.Run("NoInvalidationWhenDeleteFails", func(t *testing.T) {
		store := cache.NewStore()
		seedAggregateKeys(store)

		existing := validUser()
		svc := newUserService(store, &fakeUserStore{user: &existing, deleteErr: assert.AnError})
		require.Error(t, svc.DeleteUser(context.Background(), "u1"))

		assert.True(t, store.Has(cache.KeyAdminStats))
	})
}
