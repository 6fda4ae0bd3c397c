package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mpereira-dev/storefront/internal/api/middleware"
	"github.com/mpereira-dev/storefront/internal/models"
	service "github.com/mpereira-dev/storefront/internal/services"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		var req models.CreateOrderRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := h.orderService.CreateOrder(r.Context(), claims.CustomerID, claims.ShoppingSessionID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Order created", "orderId", orderID)

		response.Success(w, http.StatusCreated, models.CreateOrderResponse{OrderID: orderID})
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		orders, err := h.orderService.ListOrders(r.Context(), claims.CustomerID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		orderID, ok := pathID(w, r, "orderId")
		if !ok {
			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), claims.CustomerID, orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		orderID, ok := pathID(w, r, "orderId")
		if !ok {
			return
		}

		if err := h.orderService.DeleteOrder(r.Context(), claims.CustomerID, orderID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
