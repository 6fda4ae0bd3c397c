package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpereira-dev/storefront/internal/cache"
	"github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	repository "github.com/mpereira-dev/storefront/internal/repositories"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error)
	GetProductsBySearchTerm(ctx context.Context, searchTerm string) ([]models.Product, error)
	GetProductByName(ctx context.Context, productName string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, productCache cache.Cache) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo, cache: productCache}
}

func (s *productService) GetProducts(ctx context.Context) ([]models.Product, error) {

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve products").WithError(err)
	}

	if len(products) == 0 {
		return nil, errors.NotFoundError("No products found")
	}

	return products, nil
}

func (s *productService) GetProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error) {

	products, err := s.productRepo.GetProductsByCategoryName(ctx, categoryName)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve products").WithError(err)
	}

	if len(products) == 0 {
		return nil, errors.NotFoundError("No products found for this category")
	}

	return products, nil
}

func (s *productService) GetProductsBySearchTerm(ctx context.Context, searchTerm string) ([]models.Product, error) {

	products, err := s.productRepo.GetProductsBySearchTerm(ctx, searchTerm)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve products").WithError(err)
	}

	if len(products) == 0 {
		return nil, errors.NotFoundError("No products found")
	}

	return products, nil
}

func (s *productService) GetProductByName(ctx context.Context, productName string) (*models.Product, error) {

	product, err := s.productRepo.GetProductByName(ctx, productName)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("No product found with this name").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve product").WithError(err)
	}

	return product, nil
}

// GetProductByID reads through the catalog cache. Cache failures are
// logged and fall back to the store.
func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	cacheKey := fmt.Sprintf("product:%d", id)

	if s.cache != nil {
		var cached models.Product
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			slog.Warn("Product cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("No product found with this ID").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, product, 10*time.Minute); err != nil {
			slog.Warn("Product cache write failed", slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) GetCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve categories").WithError(err)
	}

	if len(categories) == 0 {
		return nil, errors.NotFoundError("No categories found")
	}

	return categories, nil
}
