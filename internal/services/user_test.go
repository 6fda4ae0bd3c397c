package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpereira-dev/storefront/internal/config"
	appErrors "github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/repositories/mocks"
	service "github.com/mpereira-dev/storefront/internal/services"
)

func setupUserServiceTest() (*mocks.CustomerRepository, *mocks.RateLimitRepository, service.UserService) {
	customerRepo := new(mocks.CustomerRepository)
	rateLimiter := new(mocks.RateLimitRepository)
	security := &config.Security{JWTKey: "test-signing-key", TokenExpiry: time.Hour}
	userService := service.NewUserService(customerRepo, rateLimiter, security)
	return customerRepo, rateLimiter, userService
}

func TestRegister(t *testing.T) {
	ctx := t.Context()

	req := &models.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "Str0ngPass!word",
		FirstName: "Jane",
		BirthDate: "1990-04-01",
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		customerRepo.On("IsCustomer", ctx, req.Email).Return(false, nil).Once()
		customerRepo.On("CreateCustomer", ctx, mock.MatchedBy(func(customer *models.Customer) bool {
			// The stored credential must be a bcrypt hash of the request password.
			return customer.Email == req.Email &&
				bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)) == nil
		})).Return(nil).Once()

		// Act
		err := userService.Register(ctx, req)

		// Assert
		assert.NoError(t, err)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Failure - Email Already Registered", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		customerRepo.On("IsCustomer", ctx, req.Email).Return(true, nil).Once()

		// Act
		err := userService.Register(ctx, req)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "This email is already registered to a customer", appErr.Message)
		customerRepo.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
		customerRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := t.Context()

	password := "Str0ngPass!word"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	storedCustomer := &models.Customer{
		ID:                5,
		ShoppingSessionID: 42,
		Email:             "jane@example.com",
		PasswordHash:      string(hash),
	}

	req := &models.LoginRequest{Email: "jane@example.com", Password: password}

	t.Run("Success - Token Carries Session", func(t *testing.T) {
		// Arrange
		customerRepo, rateLimiter, userService := setupUserServiceTest()
		rateLimiter.On("CheckLoginRateLimit", ctx, req.Email).Return(true, 0, 0, nil).Once()
		customerRepo.On("GetCustomerByEmail", ctx, req.Email).Return(storedCustomer, nil).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (any, error) {
			return []byte("test-signing-key"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), claims.CustomerID)
		assert.Equal(t, int64(42), claims.ShoppingSessionID)
		assert.Equal(t, "jane@example.com", claims.Email)

		customerRepo.AssertExpectations(t)
		rateLimiter.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Email", func(t *testing.T) {
		// Arrange
		customerRepo, rateLimiter, userService := setupUserServiceTest()
		rateLimiter.On("CheckLoginRateLimit", ctx, req.Email).Return(true, 0, 0, nil).Once()
		customerRepo.On("GetCustomerByEmail", ctx, req.Email).Return(nil, sql.ErrNoRows).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		// Arrange
		customerRepo, rateLimiter, userService := setupUserServiceTest()
		rateLimiter.On("CheckLoginRateLimit", ctx, req.Email).Return(true, 0, 0, nil).Once()
		customerRepo.On("GetCustomerByEmail", ctx, req.Email).Return(storedCustomer, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: req.Email, Password: "wrong"})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		customerRepo, rateLimiter, userService := setupUserServiceTest()
		rateLimiter.On("CheckLoginRateLimit", ctx, req.Email).Return(false, 5, 120, nil).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, appErr.Code)
		assert.Contains(t, appErr.Detail, "120")
		customerRepo.AssertNotCalled(t, "GetCustomerByEmail", mock.Anything, mock.Anything)
		rateLimiter.AssertExpectations(t)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := t.Context()

	current := &models.Customer{
		ID:        5,
		Email:     "jane@example.com",
		FirstName: "Jane",
	}

	t.Run("Success - Same Email Skips Uniqueness Check", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		req := &models.UpdateCustomerRequest{
			Email:     "jane@example.com",
			Password:  "NewPass!word1",
			FirstName: "Janet",
			BirthDate: "1990-04-01",
		}
		customerRepo.On("GetCustomerByID", ctx, int64(5)).Return(current, nil).Once()
		customerRepo.On("UpdateCustomerByID", ctx, mock.Anything, int64(5)).Return(nil).Once()

		// Act
		err := userService.Update(ctx, 5, req)

		// Assert
		assert.NoError(t, err)
		customerRepo.AssertNotCalled(t, "IsCustomer", mock.Anything, mock.Anything)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Failure - New Email Taken", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		req := &models.UpdateCustomerRequest{
			Email:     "taken@example.com",
			Password:  "NewPass!word1",
			FirstName: "Jane",
			BirthDate: "1990-04-01",
		}
		customerRepo.On("GetCustomerByID", ctx, int64(5)).Return(current, nil).Once()
		customerRepo.On("IsCustomer", ctx, "taken@example.com").Return(true, nil).Once()

		// Act
		err := userService.Update(ctx, 5, req)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		customerRepo.AssertNotCalled(t, "UpdateCustomerByID", mock.Anything, mock.Anything, mock.Anything)
		customerRepo.AssertExpectations(t)
	})
}

func TestUserServiceDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		customerRepo.On("DeleteCustomerByID", ctx, int64(5)).Return(nil).Once()

		// Act
		err := userService.Delete(ctx, 5)

		// Assert
		assert.NoError(t, err)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		customerRepo, _, userService := setupUserServiceTest()
		dbError := errors.New("delete failed")
		customerRepo.On("DeleteCustomerByID", ctx, int64(5)).Return(dbError).Once()

		// Act
		err := userService.Delete(ctx, 5)

		// Assert
		assert.Error(t, err)
		assert.ErrorIs(t, err, dbError)
		customerRepo.AssertExpectations(t)
	})
}
