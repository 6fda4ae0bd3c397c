package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
)

// ProductRepository is the read-only catalog reader.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error)
	GetProductsBySearchTerm(ctx context.Context, searchTerm string) ([]models.Product, error)
	GetProductByName(ctx context.Context, productName string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, display_name, sku, price, description, image, thumbnail, in_stock, category_id`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {

	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Name, &product.DisplayName, &product.SKU, &product.Price,
		&product.Description, &product.Image, &product.Thumbnail, &product.InStock, &product.CategoryID)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM product ORDER BY id`

	return r.queryProducts(dbCtx, query)
}

func (r *productRepository) GetProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var categoryID int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT id FROM category WHERE name = $1`, categoryName).Scan(&categoryID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM product WHERE category_id = $1 ORDER BY id`

	return r.queryProducts(dbCtx, query, categoryID)
}

func (r *productRepository) GetProductsBySearchTerm(ctx context.Context, searchTerm string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM product WHERE name LIKE $1 ORDER BY id`

	return r.queryProducts(dbCtx, query, "%"+searchTerm+"%")
}

func (r *productRepository) GetProductByName(ctx context.Context, productName string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM product WHERE name = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, productName))
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM product WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}
