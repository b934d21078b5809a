// api/service/product_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopora/api/cache"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/util"
)

// IProductService defines the interface for product operations
type IProductService interface {
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	LatestProducts(ctx context.Context) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	AdminProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, int, error)
}

// ProductStore is the slice of the product DAO the service reads and
// writes through.
type ProductStore interface {
	CreateProduct(ctx context.Context, product model.Product) (string, error)
	SaveProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	LatestProducts(ctx context.Context, limit int) ([]model.Product, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, int, error)
}

// ProductService handles business logic for catalog operations
type ProductService struct {
	productStore    ProductStore
	validationUtil  *util.ValidationUtil
	cacheStore      *cache.Store
	invalidator     *cache.Invalidator
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IProductService = &ProductService{}

func NewProductService(
	productStore ProductStore,
	validationUtil *util.ValidationUtil,
	cacheStore *cache.Store,
	invalidator *cache.Invalidator,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *ProductService {
	service := &ProductService{
		productStore:    productStore,
		validationUtil:  validationUtil,
		cacheStore:      cacheStore,
		invalidator:     invalidator,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("product.created", service.handleProductChanged)
	eventBus.Subscribe("product.updated", service.handleProductChanged)
	eventBus.Subscribe("product.deleted", service.handleProductChanged)

	return service
}

func (s *ProductService) handleProductChanged(ctx context.Context, event util.Event) error {
	product := event.Payload.(model.Product)
	changeType := event.Type[len("product."):]
	logger.Info("Product change event received",
		zap.String("productID", product.ID),
		zap.String("changeType", changeType))

	if err := s.notificationSvc.NotifyProductChange(ctx, changeType, product); err != nil {
		return err
	}
	if changeType != "deleted" && product.Stock == 0 {
		return s.notificationSvc.NotifyLowStock(ctx, product)
	}
	return nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	productID, err := s.productStore.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Error creating product", zap.Error(err), zap.String("name", product.Name))
		return nil, err
	}
	product.ID = productID

	s.invalidator.Invalidate(model.ProductChanged{ProductIDs: []string{productID}})

	s.eventBus.Publish(ctx, "product.created", product)

	logger.Info("Product created successfully", zap.String("productID", productID))
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	if err := s.productStore.SaveProduct(ctx, &product); err != nil {
		logger.Error("Error updating product", zap.Error(err), zap.String("productID", product.ID))
		return nil, err
	}

	s.invalidator.Invalidate(model.ProductChanged{ProductIDs: []string{product.ID}})

	s.eventBus.Publish(ctx, "product.updated", product)

	logger.Info("Product updated successfully", zap.String("productID", product.ID))
	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.productStore.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.productStore.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Error deleting product", zap.Error(err), zap.String("productID", productID))
		return err
	}

	s.invalidator.Invalidate(model.ProductChanged{ProductIDs: []string{productID}})

	s.eventBus.Publish(ctx, "product.deleted", *product)

	logger.Info("Product deleted successfully", zap.String("productID", productID))
	return nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	key := cache.ProductKey(productID)
	if product, ok := cache.Lookup[*model.Product](s.cacheStore, key); ok {
		return product, nil
	}

	product, err := s.productStore.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(key, product)
	return product, nil
}

// LatestProducts returns the five newest products, memoized until the
// next product mutation.
func (s *ProductService) LatestProducts(ctx context.Context) ([]model.Product, error) {
	if products, ok := cache.Lookup[[]model.Product](s.cacheStore, cache.KeyLatestProducts); ok {
		return products, nil
	}

	products, err := s.productStore.LatestProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(cache.KeyLatestProducts, products)
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	if categories, ok := cache.Lookup[[]string](s.cacheStore, cache.KeyCategories); ok {
		return categories, nil
	}

	categories, err := s.productStore.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(cache.KeyCategories, categories)
	return categories, nil
}

func (s *ProductService) AdminProducts(ctx context.Context) ([]model.Product, error) {
	return s.productStore.AllProducts(ctx)
}

// SearchProducts is deliberately uncached: the filter space is open
// ended, which would defeat the bounded-key assumption of the store.
func (s *ProductService) SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, int, error) {
	return s.productStore.SearchProducts(ctx, criteria)
}
