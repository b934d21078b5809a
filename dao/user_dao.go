package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/shopora/api/audit"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

type UserDAO struct {
	Collection   *mongo.Collection
	AuditService audit.Service
}

func NewUserDAO(database *mongo.Database, auditService audit.Service) *UserDAO {
	return &UserDAO{
		Collection:   database.Collection("users"),
		AuditService: auditService,
	}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (string, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("userID", user.ID))

	if user.Role == "" {
		user.Role = model.RoleUser
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if _, err := dao.Collection.InsertOne(ctx, user); err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.Duration("duration", time.Since(start)))
		return "", shopora_errors.ErrDatabaseOperation
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     user.ID,
		Action:     "CREATE_USER",
		ResourceID: user.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return user.ID, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := dao.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shopora_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.String("userID", userID))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	result, err := dao.Collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err), zap.String("userID", userID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.DeletedCount == 0 {
		return shopora_errors.ErrUserNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "DELETE_USER",
		ResourceID: userID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

func (dao *UserDAO) AllUsers(ctx context.Context) ([]model.User, error) {
	return dao.find(ctx, bson.M{})
}

func (dao *UserDAO) UsersCreatedBetween(ctx context.Context, from, to time.Time) ([]model.User, error) {
	return dao.find(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}})
}

func (dao *UserDAO) CountUsers(ctx context.Context) (int64, error) {
	return dao.count(ctx, bson.M{})
}

func (dao *UserDAO) CountUsersByGender(ctx context.Context, gender string) (int64, error) {
	return dao.count(ctx, bson.M{"gender": gender})
}

func (dao *UserDAO) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	return dao.count(ctx, bson.M{"role": role})
}

func (dao *UserDAO) find(ctx context.Context, filter bson.M) ([]model.User, error) {
	cursor, err := dao.Collection.Find(ctx, filter)
	if err != nil {
		logger.Error("Failed to query users", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return users, nil
}

func (dao *UserDAO) count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := dao.Collection.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("Failed to count users", zap.Error(err))
		return 0, shopora_errors.ErrDatabaseOperation
	}
	return count, nil
}
