package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appErrors "github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/repositories/mocks"
	service "github.com/mpereira-dev/storefront/internal/services"
)

func setupOrderServiceTest() (*mocks.OrderRepository, *mocks.CartRepository, service.OrderService) {
	orderRepo := new(mocks.OrderRepository)
	cartRepo := new(mocks.CartRepository)
	customerRepo := new(mocks.CustomerRepository)
	orderService := service.NewOrderService(orderRepo, cartRepo, customerRepo, nil)
	return orderRepo, cartRepo, orderService
}

func TestOrderServiceCreateOrder(t *testing.T) {
	ctx := t.Context()

	req := &models.CreateOrderRequest{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "USA",
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		orderRepo, cartRepo, orderService := setupOrderServiceTest()
		cart := &models.Cart{
			Total: decimal.RequireFromString("21.98"),
			Items: []models.CartItem{{ID: 7, Quantity: 2, Product: &models.Product{ID: 3}}},
		}
		cartRepo.On("GetCart", ctx, int64(42)).Return(cart, nil).Once()
		orderRepo.On("CreateOrder", ctx, mock.MatchedBy(func(address *models.ShippingAddress) bool {
			return address.AddressLine1 == req.AddressLine1 && address.City == req.City
		}), int64(5), int64(42)).Return(int64(11), nil).Once()

		// Act
		orderID, err := orderService.CreateOrder(ctx, 5, 42, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(11), orderID)
		orderRepo.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		orderRepo, cartRepo, orderService := setupOrderServiceTest()
		cartRepo.On("GetCart", ctx, int64(42)).
			Return(&models.Cart{Total: decimal.Zero, Items: []models.CartItem{}}, nil).Once()

		// Act
		orderID, err := orderService.CreateOrder(ctx, 5, 42, req)

		// Assert
		assert.Error(t, err)
		assert.Zero(t, orderID)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePreconditionFailed, appErr.Code)
		assert.Equal(t, "Shopping cart is empty", appErr.Message)
		orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		orderRepo, cartRepo, orderService := setupOrderServiceTest()
		dbError := errors.New("transaction aborted")
		cart := &models.Cart{
			Total: decimal.RequireFromString("21.98"),
			Items: []models.CartItem{{ID: 7, Quantity: 2, Product: &models.Product{ID: 3}}},
		}
		cartRepo.On("GetCart", ctx, int64(42)).Return(cart, nil).Once()
		orderRepo.On("CreateOrder", ctx, mock.Anything, int64(5), int64(42)).
			Return(int64(0), dbError).Once()

		// Act
		orderID, err := orderService.CreateOrder(ctx, 5, 42, req)

		// Assert
		assert.Error(t, err)
		assert.Zero(t, orderID)
		assert.ErrorIs(t, err, dbError)
		orderRepo.AssertExpectations(t)
	})
}

func TestOrderServiceGetOrderByID(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		existingOrder := &models.Order{ID: 11, Status: models.OrderStatusPending}
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(true, nil).Once()
		orderRepo.On("IsOrderOwner", ctx, int64(11), int64(5)).Return(true, nil).Once()
		orderRepo.On("GetOrderByID", ctx, int64(11)).Return(existingOrder, nil).Once()

		// Act
		order, err := orderService.GetOrderByID(ctx, 5, 11)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, existingOrder, order)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Order", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(false, nil).Once()

		// Act
		order, err := orderService.GetOrderByID(ctx, 5, 11)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		orderRepo.AssertNotCalled(t, "IsOrderOwner", mock.Anything, mock.Anything, mock.Anything)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Order Owned By Another Customer", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(true, nil).Once()
		orderRepo.On("IsOrderOwner", ctx, int64(11), int64(5)).Return(false, nil).Once()

		// Act
		order, err := orderService.GetOrderByID(ctx, 5, 11)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		orderRepo.AssertNotCalled(t, "GetOrderByID", mock.Anything, mock.Anything)
		orderRepo.AssertExpectations(t)
	})
}

func TestOrderServiceDeleteOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Pending Order", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(true, nil).Once()
		orderRepo.On("IsOrderOwner", ctx, int64(11), int64(5)).Return(true, nil).Once()
		orderRepo.On("GetOrderStatusByID", ctx, int64(11)).Return(models.OrderStatusPending, nil).Once()
		orderRepo.On("DeleteOrderByID", ctx, int64(11)).Return(nil).Once()

		// Act
		err := orderService.DeleteOrder(ctx, 5, 11)

		// Assert
		assert.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Order Already Shipping", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(true, nil).Once()
		orderRepo.On("IsOrderOwner", ctx, int64(11), int64(5)).Return(true, nil).Once()
		orderRepo.On("GetOrderStatusByID", ctx, int64(11)).Return(models.OrderStatusShipping, nil).Once()

		// Act
		err := orderService.DeleteOrder(ctx, 5, 11)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePreconditionFailed, appErr.Code)
		orderRepo.AssertNotCalled(t, "DeleteOrderByID", mock.Anything, mock.Anything)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not The Owner", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("IsValidOrder", ctx, int64(11)).Return(true, nil).Once()
		orderRepo.On("IsOrderOwner", ctx, int64(11), int64(5)).Return(false, nil).Once()

		// Act
		err := orderService.DeleteOrder(ctx, 5, 11)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		orderRepo.AssertNotCalled(t, "GetOrderStatusByID", mock.Anything, mock.Anything)
		orderRepo.AssertExpectations(t)
	})
}

func TestOrderServiceListOrders(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Empty History", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		orderRepo.On("GetOrdersByCustomerID", ctx, int64(5)).Return([]models.Order{}, nil).Once()

		// Act
		orders, err := orderService.ListOrders(ctx, 5)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, orders)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		orderRepo, _, orderService := setupOrderServiceTest()
		dbError := errors.New("database connection failed")
		orderRepo.On("GetOrdersByCustomerID", ctx, int64(5)).Return(nil, dbError).Once()

		// Act
		orders, err := orderService.ListOrders(ctx, 5)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, orders)
		assert.ErrorIs(t, err, dbError)
		orderRepo.AssertExpectations(t)
	})
}
