package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, address *models.ShippingAddress, customerID, shoppingSessionID int64) (int64, error)
	IsValidOrder(ctx context.Context, orderID int64) (bool, error)
	IsOrderOwner(ctx context.Context, orderID, customerID int64) (bool, error)
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID int64) ([]models.Order, error)
	GetOrderStatusByID(ctx context.Context, orderID int64) (models.OrderStatus, error)
	DeleteOrderByID(ctx context.Context, orderID int64) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder moves the session's cart wholesale into durable order state:
// shipping address, order header with the session total snapshot, one order
// item per cart line, then the cart is drained and the total reset. One
// transaction, no partial order and no partial drain.
func (r *orderRepository) CreateOrder(ctx context.Context, address *models.ShippingAddress, customerID, shoppingSessionID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var orderID int64

	err := withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		// Lock the session row so the total snapshot and the drain see the
		// same cart state under concurrent mutations.
		var total decimal.Decimal

		sessionQuery := `SELECT total FROM shopping_session WHERE id = $1 FOR UPDATE`

		if err := tx.QueryRowContext(dbCtx, sessionQuery, shoppingSessionID).Scan(&total); err != nil {
			return fmt.Errorf("failed to get shopping session: %w", err)
		}

		itemsQuery := `SELECT product_id, quantity FROM cart_item WHERE shopping_session_id = $1`

		rows, err := tx.QueryContext(dbCtx, itemsQuery, shoppingSessionID)
		if err != nil {
			return fmt.Errorf("failed to get cart items: %w", err)
		}

		type cartLine struct {
			productID int64
			quantity  int
		}

		var lines []cartLine

		for rows.Next() {
			var line cartLine
			if err := rows.Scan(&line.productID, &line.quantity); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan cart item: %w", err)
			}
			lines = append(lines, line)
		}

		rows.Close()

		if err := rows.Err(); err != nil {
			return err
		}

		addressQuery := `
			INSERT INTO shipping_address (address_line1, address_line2, city, postal_code, country)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		var shippingAddressID int64

		addressLine2 := sql.NullString{String: address.AddressLine2, Valid: address.AddressLine2 != ""}

		if err := tx.QueryRowContext(dbCtx, addressQuery,
			address.AddressLine1, addressLine2, address.City, address.PostalCode, address.Country).Scan(&shippingAddressID); err != nil {
			return fmt.Errorf("failed to insert shipping address: %w", err)
		}

		orderQuery := `
			INSERT INTO order_details (customer_id, shipping_address_id, total, status, created_at)
			VALUES ($1, $2, $3, 'pending', NOW())
			RETURNING id
		`

		if err := tx.QueryRowContext(dbCtx, orderQuery, customerID, shippingAddressID, total).Scan(&orderID); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`

		for _, line := range lines {
			if _, err := tx.ExecContext(dbCtx, itemQuery, orderID, line.productID, line.quantity); err != nil {
				return fmt.Errorf("failed to insert order item: %w", err)
			}
		}

		drainQuery := `DELETE FROM cart_item WHERE shopping_session_id = $1`

		if _, err := tx.ExecContext(dbCtx, drainQuery, shoppingSessionID); err != nil {
			return fmt.Errorf("failed to drain cart: %w", err)
		}

		resetQuery := `
			UPDATE shopping_session
			SET total = 0, modified_at = NOW()
			WHERE id = $1
		`

		if _, err := tx.ExecContext(dbCtx, resetQuery, shoppingSessionID); err != nil {
			return fmt.Errorf("failed to reset session total: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *orderRepository) IsValidOrder(ctx context.Context, orderID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM order_details WHERE id = $1`

	var id int64

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}

	return true, nil
}

func (r *orderRepository) IsOrderOwner(ctx context.Context, orderID, customerID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT customer_id FROM order_details WHERE id = $1`

	var ownerID int64

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check order owner: %w", err)
	}

	return ownerID == customerID, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: orderID}
	address := &models.ShippingAddress{}

	query := `
		SELECT od.customer_id, od.total, od.status, od.created_at,
		       sa.address_line1, sa.address_line2, sa.city, sa.postal_code, sa.country
		FROM order_details od
		JOIN shipping_address sa ON sa.id = od.shipping_address_id
		WHERE od.id = $1
	`

	var addressLine2 sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(
		&order.CustomerID, &order.Total, &order.Status, &order.CreatedAt,
		&address.AddressLine1, &addressLine2, &address.City, &address.PostalCode, &address.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	address.AddressLine2 = addressLine2.String
	order.ShippingAddress = address

	itemsQuery := `
		SELECT oi.quantity,
		       p.id, p.name, p.display_name, p.sku, p.price, p.description,
		       p.image, p.thumbnail, p.in_stock, p.category_id
		FROM order_items oi
		JOIN product p ON p.id = oi.product_id
		WHERE oi.order_id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, itemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {

		var item models.OrderItem

		product := &models.Product{}

		err := rows.Scan(&item.Quantity,
			&product.ID, &product.Name, &product.DisplayName, &product.SKU, &product.Price,
			&product.Description, &product.Image, &product.Thumbnail, &product.InStock, &product.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.Product = product
		items = append(items, item)

	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// GetOrdersByCustomerID returns the customer's orders fully assembled,
// newest first.
func (r *orderRepository) GetOrdersByCustomerID(ctx context.Context, customerID int64) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM order_details WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var orderIDs []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order id: %w", err)
		}
		orderIDs = append(orderIDs, id)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	orders := []models.Order{}

	for _, id := range orderIDs {
		order, err := r.GetOrderByID(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

func (r *orderRepository) GetOrderStatusByID(ctx context.Context, orderID int64) (models.OrderStatus, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT status FROM order_details WHERE id = $1`

	var status models.OrderStatus

	if err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&status); err != nil {
		return "", fmt.Errorf("failed to get order status: %w", err)
	}

	return status, nil
}

// DeleteOrderByID removes the order, its items and its shipping address in
// one transaction. Order items are cascade-deleted rather than archived.
func (r *orderRepository) DeleteOrderByID(ctx context.Context, orderID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		var shippingAddressID int64

		addressIDQuery := `SELECT shipping_address_id FROM order_details WHERE id = $1`

		if err := tx.QueryRowContext(dbCtx, addressIDQuery, orderID).Scan(&shippingAddressID); err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM order_details WHERE id = $1`, orderID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM shipping_address WHERE id = $1`, shippingAddressID); err != nil {
			return fmt.Errorf("failed to delete shipping address: %w", err)
		}

		return nil
	})
}
