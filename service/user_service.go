// api/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopora/api/cache"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	UpsertUser(ctx context.Context, user model.User) (*model.User, bool, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// UserStore is the slice of the user DAO the service reads and writes
// through.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (string, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// UserService handles business logic for user operations
type UserService struct {
	userStore       UserStore
	validationUtil  *util.ValidationUtil
	invalidator     *cache.Invalidator
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(
	userStore UserStore,
	validationUtil *util.ValidationUtil,
	invalidator *cache.Invalidator,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *UserService {
	service := &UserService{
		userStore:       userStore,
		validationUtil:  validationUtil,
		invalidator:     invalidator,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("user.created", service.handleUserChanged)
	eventBus.Subscribe("user.deleted", service.handleUserChanged)

	return service
}

func (s *UserService) handleUserChanged(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	changeType := event.Type[len("user."):]
	logger.Info("User change event received",
		zap.String("userID", user.ID),
		zap.String("changeType", changeType))
	return s.notificationSvc.NotifyUserChange(ctx, changeType, user)
}

// UpsertUser creates the user on first login and is a lookup on every
// later one; the bool reports whether a new record was created. The ID
// comes from the external identity provider.
func (s *UserService) UpsertUser(ctx context.Context, user model.User) (*model.User, bool, error) {
	existing, err := s.userStore.GetUser(ctx, user.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shopora_errors.ErrUserNotFound) {
		return nil, false, err
	}

	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, false, fmt.Errorf("invalid user: %w", err)
	}

	userID, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.String("userID", user.ID))
		return nil, false, err
	}
	user.ID = userID

	s.invalidator.Invalidate(model.UserChanged{UserID: userID})

	s.eventBus.Publish(ctx, "user.created", user)

	logger.Info("User created successfully", zap.String("userID", userID))
	return &user, true, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userStore.GetUser(ctx, userID)
}

func (s *UserService) AllUsers(ctx context.Context) ([]model.User, error) {
	return s.userStore.AllUsers(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userStore.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userStore.DeleteUser(ctx, userID); err != nil {
		logger.Error("Error deleting user", zap.Error(err), zap.String("userID", userID))
		return err
	}

	s.invalidator.Invalidate(model.UserChanged{UserID: userID})

	s.eventBus.Publish(ctx, "user.deleted", *user)

	logger.Info("User deleted successfully", zap.String("userID", userID))
	return nil
}
