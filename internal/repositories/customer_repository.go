package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
)

type CustomerRepository interface {
	IsCustomer(ctx context.Context, email string) (bool, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerByID(ctx context.Context, customer *models.Customer, id int64) error
	DeleteCustomerByID(ctx context.Context, id int64) error
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepo(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) IsCustomer(ctx context.Context, email string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var found string

	err := r.DB.QueryRowContext(dbCtx, `SELECT email FROM customer WHERE email = $1`, email).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}

	return true, nil
}

// GetCustomerByEmail returns the credential view used by the login flow,
// including the password hash and the customer's shopping session.
func (r *customerRepository) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.email, c.password, ss.id
		FROM customer c
		JOIN shopping_session ss ON ss.customer_id = c.id
		WHERE c.email = $1
	`

	customer := &models.Customer{}

	err := r.DB.QueryRowContext(dbCtx, query, email).Scan(
		&customer.ID, &customer.Email, &customer.PasswordHash, &customer.ShoppingSessionID)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.email, c.first_name, c.last_name, to_char(c.birth_date, 'YYYY-MM-DD'), c.phone, ss.id
		FROM customer c
		JOIN shopping_session ss ON ss.customer_id = c.id
		WHERE c.id = $1
	`

	customer := &models.Customer{}

	var lastName, phone sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&customer.ID, &customer.Email, &customer.FirstName, &lastName,
		&customer.BirthDate, &phone, &customer.ShoppingSessionID)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.LastName = lastName.String
	customer.Phone = phone.String

	return customer, nil
}

// CreateCustomer inserts the customer row together with its 1:1 shopping
// session in one transaction.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		customerQuery := `
			INSERT INTO customer (email, password, first_name, last_name, birth_date, phone)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		lastName := sql.NullString{String: customer.LastName, Valid: customer.LastName != ""}
		phone := sql.NullString{String: customer.Phone, Valid: customer.Phone != ""}

		if err := tx.QueryRowContext(dbCtx, customerQuery,
			customer.Email, customer.PasswordHash, customer.FirstName, lastName,
			customer.BirthDate, phone).Scan(&customer.ID); err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}

		sessionQuery := `
			INSERT INTO shopping_session (customer_id, total, created_at, modified_at)
			VALUES ($1, 0, NOW(), NOW())
			RETURNING id
		`

		if err := tx.QueryRowContext(dbCtx, sessionQuery, customer.ID).Scan(&customer.ShoppingSessionID); err != nil {
			return fmt.Errorf("failed to insert shopping session: %w", err)
		}

		return nil
	})
}

func (r *customerRepository) UpdateCustomerByID(ctx context.Context, customer *models.Customer, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE customer
		SET email = $1, password = $2, first_name = $3, last_name = $4, birth_date = $5, phone = $6
		WHERE id = $7
	`

	lastName := sql.NullString{String: customer.LastName, Valid: customer.LastName != ""}
	phone := sql.NullString{String: customer.Phone, Valid: customer.Phone != ""}

	result, err := r.DB.ExecContext(dbCtx, query,
		customer.Email, customer.PasswordHash, customer.FirstName, lastName, customer.BirthDate, phone, id)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *customerRepository) DeleteCustomerByID(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM customer WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
