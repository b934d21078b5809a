package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/shopora/api/audit"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

// ProductsPerPage is the page size of the public filter endpoint.
const ProductsPerPage = 8

type ProductDAO struct {
	Collection   *mongo.Collection
	AuditService audit.Service
}

func NewProductDAO(database *mongo.Database, auditService audit.Service) *ProductDAO {
	return &ProductDAO{
		Collection:   database.Collection("products"),
		AuditService: auditService,
	}
}

func (dao *ProductDAO) CreateProduct(ctx context.Context, product model.Product) (string, error) {
	start := time.Now()
	logger.Info("Creating new product", zap.String("name", product.Name))

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := dao.Collection.InsertOne(ctx, product); err != nil {
		logger.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.Duration("duration", time.Since(start)))
		return "", shopora_errors.ErrDatabaseOperation
	}

	logger.Info("Product created successfully",
		zap.String("productID", product.ID),
		zap.Duration("duration", time.Since(start)))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "CREATE_PRODUCT",
		ResourceID: product.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return product.ID, nil
}

func (dao *ProductDAO) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := dao.Collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shopora_errors.ErrProductNotFound
	}
	if err != nil {
		logger.Error("Failed to get product", zap.Error(err), zap.String("productID", productID))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return &product, nil
}

func (dao *ProductDAO) SaveProduct(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now()
	result, err := dao.Collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		logger.Error("Failed to save product", zap.Error(err), zap.String("productID", product.ID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return shopora_errors.ErrProductNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "UPDATE_PRODUCT",
		ResourceID: product.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

func (dao *ProductDAO) DeleteProduct(ctx context.Context, productID string) error {
	result, err := dao.Collection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		logger.Error("Failed to delete product", zap.Error(err), zap.String("productID", productID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.DeletedCount == 0 {
		return shopora_errors.ErrProductNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "DELETE_PRODUCT",
		ResourceID: productID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

// ReduceStock decrements stock for each ordered item. The guard on the
// current stock level keeps a concurrent surge of orders from driving
// stock negative.
func (dao *ProductDAO) ReduceStock(ctx context.Context, items []model.OrderItem) error {
	for _, item := range items {
		result, err := dao.Collection.UpdateOne(ctx,
			bson.M{"_id": item.ProductID, "stock": bson.M{"$gte": item.Quantity}},
			bson.M{"$inc": bson.M{"stock": -item.Quantity}})
		if err != nil {
			logger.Error("Failed to reduce stock", zap.Error(err), zap.String("productID", item.ProductID))
			return shopora_errors.ErrDatabaseOperation
		}
		if result.MatchedCount == 0 {
			// Either the product is gone or the stock ran out.
			if _, err := dao.GetProduct(ctx, item.ProductID); err != nil {
				return err
			}
			return shopora_errors.ErrInsufficientStock
		}
	}
	return nil
}

func (dao *ProductDAO) LatestProducts(ctx context.Context, limit int) ([]model.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return dao.find(ctx, bson.M{}, opts)
}

func (dao *ProductDAO) AllProducts(ctx context.Context) ([]model.Product, error) {
	return dao.find(ctx, bson.M{})
}

func (dao *ProductDAO) ProductsCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Product, error) {
	return dao.find(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}})
}

// SearchProducts applies the public catalog filter and returns the
// requested page plus the total page count.
func (dao *ProductDAO) SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, int, error) {
	filter := bson.M{}
	if criteria.Search != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: criteria.Search, Options: "i"}}
	}
	if criteria.Category != "" {
		filter["category"] = criteria.Category
	}
	if criteria.MaxPrice > 0 {
		filter["price"] = bson.M{"$lte": criteria.MaxPrice}
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}

	sortOrder := 1
	if criteria.Sort == "dsc" {
		sortOrder = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "price", Value: sortOrder}}).
		SetSkip(int64((page - 1) * ProductsPerPage)).
		SetLimit(ProductsPerPage)

	products, err := dao.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := dao.Collection.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("Failed to count filtered products", zap.Error(err))
		return nil, 0, shopora_errors.ErrDatabaseOperation
	}
	totalPages := int((total + ProductsPerPage - 1) / ProductsPerPage)

	return products, totalPages, nil
}

func (dao *ProductDAO) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := dao.Collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		logger.Error("Failed to list distinct categories", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (dao *ProductDAO) CountProducts(ctx context.Context) (int64, error) {
	count, err := dao.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("Failed to count products", zap.Error(err))
		return 0, shopora_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *ProductDAO) CountProductsOutOfStock(ctx context.Context) (int64, error) {
	count, err := dao.Collection.CountDocuments(ctx, bson.M{"stock": 0})
	if err != nil {
		logger.Error("Failed to count out-of-stock products", zap.Error(err))
		return 0, shopora_errors.ErrDatabaseOperation
	}
	return count, nil
}

// CountProductsByCategory counts products per distinct category.
func (dao *ProductDAO) CountProductsByCategory(ctx context.Context) (map[string]int64, error) {
	categories, err := dao.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(categories))
	for _, category := range categories {
		count, err := dao.Collection.CountDocuments(ctx, bson.M{"category": category})
		if err != nil {
			logger.Error("Failed to count products in category",
				zap.Error(err), zap.String("category", category))
			return nil, shopora_errors.ErrDatabaseOperation
		}
		counts[category] = count
	}
	return counts, nil
}

func (dao *ProductDAO) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Product, error) {
	cursor, err := dao.Collection.Find(ctx, filter, opts...)
	if err != nil {
		logger.Error("Failed to query products", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return products, nil
}
