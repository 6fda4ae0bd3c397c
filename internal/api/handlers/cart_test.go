package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mpereira-dev/storefront/internal/api/handlers"
	"github.com/mpereira-dev/storefront/internal/api/middleware"
	appErrors "github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/services/mocks"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

// setupCartTest -> creates common test dependencies
func setupCartTest() (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	return mockCartService, cartHandler
}

// createAuthenticatedRequest -> creates a request with authentication context
func createAuthenticatedRequest(method, url string, body []byte) (*http.Request, *models.Claims) {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	claims := &models.Claims{
		CustomerID:        5,
		ShoppingSessionID: 42,
		Email:             "test@example.com",
	}

	// Context with user claims & logger
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	logger := slog.Default()
	ctx = context.WithValue(ctx, middleware.LoggerKey, logger)
	req = req.WithContext(ctx)

	return req, claims
}

// createUnauthenticatedRequest -> creates a request with only the logger context
func createUnauthenticatedRequest(method, url string, body []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	ctx := context.WithValue(req.Context(), middleware.LoggerKey, slog.Default())

	return req.WithContext(ctx)
}

func TestGetCartHandler(t *testing.T) {
	t.Run("Success - Retrieve Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req, claims := createAuthenticatedRequest("GET", "/api/v1/cart", nil)
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{
			Total: decimal.RequireFromString("21.98"),
			Items: []models.CartItem{{ID: 7, Quantity: 2, Product: &models.Product{ID: 3, Name: "red-mug"}}},
		}

		// Mock Call
		mockCartService.On("GetCart", mock.Anything, claims.ShoppingSessionID).Return(mockCart, nil).Once()

		// Act
		handler := cartHandler.GetCart()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		// Verify
		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Empty Cart Is Not An Error", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req, claims := createAuthenticatedRequest("GET", "/api/v1/cart", nil)
		recorder := httptest.NewRecorder()

		mockCart := &models.Cart{Total: decimal.Zero, Items: []models.CartItem{}}

		// Mock Call
		mockCartService.On("GetCart", mock.Anything, claims.ShoppingSessionID).Return(mockCart, nil).Once()

		// Act
		handler := cartHandler.GetCart()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"items":[]`)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, cartHandler := setupCartTest()
		req := createUnauthenticatedRequest("GET", "/api/v1/cart", nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := cartHandler.GetCart()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		// Verify
		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "Authentication required")
	})
}

func TestAddItemHandler(t *testing.T) {
	t.Run("Success - Add Item To Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		addItemRequest := models.AddCartItemRequest{ProductID: 3, Quantity: 2}
		requestBody, _ := json.Marshal(addItemRequest)

		req, claims := createAuthenticatedRequest("POST", "/api/v1/cart", requestBody)
		recorder := httptest.NewRecorder()

		// Mock Call
		mockCartService.On("AddItem", mock.Anything, claims.ShoppingSessionID, mock.MatchedBy(func(req *models.AddCartItemRequest) bool {
			return req.ProductID == addItemRequest.ProductID && req.Quantity == addItemRequest.Quantity
		})).Return(nil).Once()

		// Act
		handler := cartHandler.AddItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Product Already In Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		requestBody, _ := json.Marshal(models.AddCartItemRequest{ProductID: 3, Quantity: 2})

		req, claims := createAuthenticatedRequest("POST", "/api/v1/cart", requestBody)
		recorder := httptest.NewRecorder()

		// Mock Call
		conflictErr := appErrors.ConflictError("This product is already in the cart")
		mockCartService.On("AddItem", mock.Anything, claims.ShoppingSessionID, mock.Anything).Return(conflictErr).Once()

		// Act
		handler := cartHandler.AddItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "already in the cart")

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Quantity Above Limit", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		requestBody, _ := json.Marshal(models.AddCartItemRequest{ProductID: 3, Quantity: 501})

		req, _ := createAuthenticatedRequest("POST", "/api/v1/cart", requestBody)
		recorder := httptest.NewRecorder()

		// Act
		handler := cartHandler.AddItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Request Body", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		invalidJSON := []byte(`{"productId": "not-a-number"}`)

		req, _ := createAuthenticatedRequest("POST", "/api/v1/cart", invalidJSON)
		recorder := httptest.NewRecorder()

		// Act
		handler := cartHandler.AddItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateQuantityHandler(t *testing.T) {
	t.Run("Success - Update Item Quantity", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		requestBody, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 5})

		req, claims := createAuthenticatedRequest("PUT", "/api/v1/cart/7", requestBody)
		req.SetPathValue("itemId", "7")
		recorder := httptest.NewRecorder()

		// Mock Call
		mockCartService.On("UpdateItemQuantity", mock.Anything, claims.ShoppingSessionID, int64(7), 5).Return(nil).Once()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.Bytes())

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Item ID Out Of Range", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		requestBody, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 5})

		req, _ := createAuthenticatedRequest("PUT", "/api/v1/cart/100000001", requestBody)
		req.SetPathValue("itemId", "100000001")
		recorder := httptest.NewRecorder()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Foreign Item", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		requestBody, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 5})

		req, claims := createAuthenticatedRequest("PUT", "/api/v1/cart/7", requestBody)
		req.SetPathValue("itemId", "7")
		recorder := httptest.NewRecorder()

		// Mock Call
		forbiddenErr := appErrors.ForbiddenError("Not authorized to access this cart item")
		mockCartService.On("UpdateItemQuantity", mock.Anything, claims.ShoppingSessionID, int64(7), 5).Return(forbiddenErr).Once()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockCartService.AssertExpectations(t)
	})
}

func TestRemoveItemHandler(t *testing.T) {
	t.Run("Success - Remove Item", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		req, claims := createAuthenticatedRequest("DELETE", "/api/v1/cart/7", nil)
		req.SetPathValue("itemId", "7")
		recorder := httptest.NewRecorder()

		// Mock Call
		mockCartService.On("RemoveItem", mock.Anything, claims.ShoppingSessionID, int64(7)).Return(nil).Once()

		// Act
		handler := cartHandler.RemoveItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()

		req, claims := createAuthenticatedRequest("DELETE", "/api/v1/cart/7", nil)
		req.SetPathValue("itemId", "7")
		recorder := httptest.NewRecorder()

		// Mock Call
		notFoundErr := appErrors.NotFoundError("No cart item found with this ID")
		mockCartService.On("RemoveItem", mock.Anything, claims.ShoppingSessionID, int64(7)).Return(notFoundErr).Once()

		// Act
		handler := cartHandler.RemoveItem()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		mockCartService.AssertExpectations(t)
	})
}
