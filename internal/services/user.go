package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpereira-dev/storefront/internal/config"
	"github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	repository "github.com/mpereira-dev/storefront/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Profile(ctx context.Context, customerID int64) (*models.Customer, error)
	Update(ctx context.Context, customerID int64, req *models.UpdateCustomerRequest) error
	Delete(ctx context.Context, customerID int64) error
}

type userService struct {
	customerRepo repository.CustomerRepository
	rateLimiter  repository.RateLimitRepository
	jwtKey       []byte
	tokenExpiry  time.Duration
}

func NewUserService(customerRepo repository.CustomerRepository, rateLimiter repository.RateLimitRepository, security *config.Security) UserService {
	return &userService{
		customerRepo: customerRepo,
		rateLimiter:  rateLimiter,
		jwtKey:       []byte(security.JWTKey),
		tokenExpiry:  security.TokenExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) error {

	exists, err := s.customerRepo.IsCustomer(ctx, req.Email)
	if err != nil {
		return errors.DatabaseError("Failed to check email").WithError(err)
	}

	if exists {
		return errors.BadRequestError("This email is already registered to a customer")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	customer := &models.Customer{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		Phone:        req.Phone,
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return errors.DatabaseError("Failed to create customer").WithError(err)
	}

	return nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	allowed, _, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.InternalError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("Retry after %d seconds", retryAfter))
	}

	customer, err := s.customerRepo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.UnauthorizedError("Invalid email or password")
		}
		return nil, errors.DatabaseError("Failed to retrieve customer").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid email or password")
	}

	expiresAt := time.Now().Add(s.tokenExpiry)

	claims := &models.Claims{
		CustomerID:        customer.ID,
		ShoppingSessionID: customer.ShoppingSessionID,
		Email:             customer.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *userService) Profile(ctx context.Context, customerID int64) (*models.Customer, error) {

	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve customer").WithError(err)
	}

	return customer, nil
}

func (s *userService) Update(ctx context.Context, customerID int64, req *models.UpdateCustomerRequest) error {

	current, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return errors.DatabaseError("Failed to retrieve customer").WithError(err)
	}

	// Reject the new email only when it belongs to a different customer.
	if current.Email != req.Email {
		exists, err := s.customerRepo.IsCustomer(ctx, req.Email)
		if err != nil {
			return errors.DatabaseError("Failed to check email").WithError(err)
		}
		if exists {
			return errors.BadRequestError("This email is already registered to a customer")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	customer := &models.Customer{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		Phone:        req.Phone,
	}

	if err := s.customerRepo.UpdateCustomerByID(ctx, customer, customerID); err != nil {
		return errors.DatabaseError("Failed to update customer").WithError(err)
	}

	return nil
}

func (s *userService) Delete(ctx context.Context, customerID int64) error {

	if err := s.customerRepo.DeleteCustomerByID(ctx, customerID); err != nil {
		return errors.DatabaseError("Failed to delete customer").WithError(err)
	}

	return nil
}
