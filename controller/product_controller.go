// api/controller/product_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	shopora_errors "github.com/shopora/api/errors"
	"github.com/shopora/api/model"
	"github.com/shopora/api/service"
	"github.com/shopora/api/util"
)

type ProductController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// RegisterRoutes registers the API routes
func (pc *ProductController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	products := r.Group("/products")
	{
		products.POST("/new", adminOnly, pc.CreateProduct)
		products.GET("/latest", pc.LatestProducts)
		products.GET("/categories", pc.Categories)
		products.GET("/filter", pc.SearchProducts)
		products.GET("/admin-products", adminOnly, pc.AdminProducts)
		products.GET("/:id", pc.GetProduct)
		products.PUT("/:id", adminOnly, pc.UpdateProduct)
		products.DELETE("/:id", adminOnly, pc.DeleteProduct)
	}
}

// CreateProduct endpoint
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", shopora_errors.ErrInvalidProductData)
		return
	}

	createdProduct, err := pc.productService.CreateProduct(c, product)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrDatabaseOperation) {
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		} else {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create product", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": createdProduct})
}

// LatestProducts endpoint
func (pc *ProductController) LatestProducts(c *gin.Context) {
	products, err := pc.productService.LatestProducts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Categories endpoint
func (pc *ProductController) Categories(c *gin.Context) {
	categories, err := pc.productService.Categories(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// SearchProducts endpoint
func (pc *ProductController) SearchProducts(c *gin.Context) {
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("price", "0"), 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	criteria := model.ProductSearchCriteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		MaxPrice: maxPrice,
		Sort:     c.Query("sort"),
		Page:     page,
	}

	products, totalPages, err := pc.productService.SearchProducts(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products, "total_pages": totalPages})
}

// AdminProducts endpoint
func (pc *ProductController) AdminProducts(c *gin.Context) {
	products, err := pc.productService.AdminProducts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GetProduct endpoint
func (pc *ProductController) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := pc.productService.GetProduct(c, productID)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve product", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct endpoint
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", shopora_errors.ErrInvalidProductData)
		return
	}
	product.ID = productID

	updatedProduct, err := pc.productService.UpdateProduct(c, product)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": updatedProduct})
}

// DeleteProduct endpoint
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := pc.productService.DeleteProduct(c, productID); err != nil {
		if errors.Is(err, shopora_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
