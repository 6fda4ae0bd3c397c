package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Customer struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName,omitempty"`
	BirthDate         string    `json:"birthDate"`
	Phone             string    `json:"phone,omitempty"`
	ShoppingSessionID int64     `json:"shoppingSessionId"`
	PasswordHash      string    `json:"-"`
	CreatedAt         time.Time `json:"-"`
}

// Claims carried by the session token. ShoppingSessionID is bound 1:1 to
// the customer at registration time and trusted as already authenticated.
type Claims struct {
	CustomerID        int64  `json:"customerId"`
	ShoppingSessionID int64  `json:"shoppingSessionId"`
	Email             string `json:"email"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName"`
	BirthDate       string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Phone           string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UpdateCustomerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Phone     string `json:"phone"`
}
