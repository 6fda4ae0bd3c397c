package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
)

// CartRepository owns cart line items and the running total of a shopping
// session. Every mutation adjusts the session total in the same
// transaction, so readers never observe a line item without its total
// bookkeeping or vice versa.
type CartRepository interface {
	GetCart(ctx context.Context, shoppingSessionID int64) (*models.Cart, error)
	IsProductInCart(ctx context.Context, productID, shoppingSessionID int64) (bool, error)
	IsValidCartItem(ctx context.Context, itemID int64) (bool, error)
	IsCartItemOwner(ctx context.Context, itemID, shoppingSessionID int64) (bool, error)
	AddItem(ctx context.Context, shoppingSessionID, productID int64, quantity int, unitPrice decimal.Decimal) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// withTx runs fn inside a transaction. Any error rolls everything back and
// propagates to the caller untouched.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *cartRepository) GetCart(ctx context.Context, shoppingSessionID int64) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.quantity,
		       p.id, p.name, p.display_name, p.sku, p.price, p.description,
		       p.image, p.thumbnail, p.in_stock, p.category_id
		FROM cart_item ci
		JOIN product p ON p.id = ci.product_id
		WHERE ci.shopping_session_id = $1
		ORDER BY ci.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, shoppingSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {

		var item models.CartItem

		product := &models.Product{}

		err := rows.Scan(&item.ID, &item.Quantity,
			&product.ID, &product.Name, &product.DisplayName, &product.SKU, &product.Price,
			&product.Description, &product.Image, &product.Thumbnail, &product.InStock, &product.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		item.Product = product
		items = append(items, item)

	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// An empty cart is a valid state, not an error.
	if len(items) == 0 {
		return &models.Cart{Total: decimal.Zero, Items: items}, nil
	}

	var total decimal.Decimal

	totalQuery := `SELECT total FROM shopping_session WHERE id = $1`

	if err := r.DB.QueryRowContext(dbCtx, totalQuery, shoppingSessionID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to get session total: %w", err)
	}

	// Surface the total truncated to the cent, never rounded.
	return &models.Cart{Total: total.Truncate(2), Items: items}, nil
}

func (r *cartRepository) IsProductInCart(ctx context.Context, productID, shoppingSessionID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM cart_item WHERE shopping_session_id = $1 AND product_id = $2`

	var id int64

	err := r.DB.QueryRowContext(dbCtx, query, shoppingSessionID, productID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check cart for product: %w", err)
	}

	return true, nil
}

func (r *cartRepository) IsValidCartItem(ctx context.Context, itemID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM cart_item WHERE id = $1`

	var id int64

	err := r.DB.QueryRowContext(dbCtx, query, itemID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check cart item: %w", err)
	}

	return true, nil
}

func (r *cartRepository) IsCartItemOwner(ctx context.Context, itemID, shoppingSessionID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM cart_item WHERE id = $1 AND shopping_session_id = $2`

	var id int64

	err := r.DB.QueryRowContext(dbCtx, query, itemID, shoppingSessionID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check cart item owner: %w", err)
	}

	return true, nil
}

// AddItem inserts a cart line and adds quantity × unitPrice to the session
// total, atomically.
func (r *cartRepository) AddItem(ctx context.Context, shoppingSessionID, productID int64, quantity int, unitPrice decimal.Decimal) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		insertQuery := `
			INSERT INTO cart_item (shopping_session_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`

		if _, err := tx.ExecContext(dbCtx, insertQuery, shoppingSessionID, productID, quantity); err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}

		totalQuery := `
			UPDATE shopping_session
			SET total = total + $1, modified_at = NOW()
			WHERE id = $2
		`

		if _, err := tx.ExecContext(dbCtx, totalQuery, itemPrice, shoppingSessionID); err != nil {
			return fmt.Errorf("failed to update session total: %w", err)
		}

		return nil
	})
}

// UpdateItemQuantity sets a new quantity and applies the delta
// (newQuantity - previousQuantity) × current catalog price to the session
// total. The line is locked for the duration of the transaction so
// concurrent mutations of the same session cannot corrupt the total.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		lineQuery := `
			SELECT ci.quantity, ci.shopping_session_id, p.price
			FROM cart_item ci
			JOIN product p ON p.id = ci.product_id
			WHERE ci.id = $1
			FOR UPDATE OF ci
		`

		var previousQuantity int
		var shoppingSessionID int64
		var price decimal.Decimal

		if err := tx.QueryRowContext(dbCtx, lineQuery, itemID).Scan(&previousQuantity, &shoppingSessionID, &price); err != nil {
			return fmt.Errorf("failed to get cart item: %w", err)
		}

		delta := price.Mul(decimal.NewFromInt(int64(quantity - previousQuantity)))

		updateQuery := `UPDATE cart_item SET quantity = $1 WHERE id = $2`

		if _, err := tx.ExecContext(dbCtx, updateQuery, quantity, itemID); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}

		totalQuery := `
			UPDATE shopping_session
			SET total = total + $1, modified_at = NOW()
			WHERE id = $2
		`

		if _, err := tx.ExecContext(dbCtx, totalQuery, delta, shoppingSessionID); err != nil {
			return fmt.Errorf("failed to update session total: %w", err)
		}

		return nil
	})
}

// RemoveItem deletes a cart line and subtracts quantity × current catalog
// price from the session total, atomically.
func (r *cartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		lineQuery := `
			SELECT ci.quantity, ci.shopping_session_id, p.price
			FROM cart_item ci
			JOIN product p ON p.id = ci.product_id
			WHERE ci.id = $1
			FOR UPDATE OF ci
		`

		var quantity int
		var shoppingSessionID int64
		var price decimal.Decimal

		if err := tx.QueryRowContext(dbCtx, lineQuery, itemID).Scan(&quantity, &shoppingSessionID, &price); err != nil {
			return fmt.Errorf("failed to get cart item: %w", err)
		}

		linePrice := price.Mul(decimal.NewFromInt(int64(quantity)))

		deleteQuery := `DELETE FROM cart_item WHERE id = $1`

		if _, err := tx.ExecContext(dbCtx, deleteQuery, itemID); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}

		totalQuery := `
			UPDATE shopping_session
			SET total = total - $1, modified_at = NOW()
			WHERE id = $2
		`

		if _, err := tx.ExecContext(dbCtx, totalQuery, linePrice, shoppingSessionID); err != nil {
			return fmt.Errorf("failed to update session total: %w", err)
		}

		return nil
	})
}
