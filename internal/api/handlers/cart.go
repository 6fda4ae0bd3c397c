package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mpereira-dev/storefront/internal/api/middleware"
	"github.com/mpereira-dev/storefront/internal/models"
	service "github.com/mpereira-dev/storefront/internal/services"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.ShoppingSessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		var req models.AddCartItemRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.cartService.AddItem(r.Context(), claims.ShoppingSessionID, &req); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart",
			"productId", req.ProductID, "quantity", req.Quantity)

		response.Success(w, http.StatusCreated, nil)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		itemID, ok := pathID(w, r, "itemId")
		if !ok {
			return
		}

		var req models.UpdateCartItemRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		if err := h.cartService.UpdateItemQuantity(r.Context(), claims.ShoppingSessionID, itemID, req.Quantity); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		itemID, ok := pathID(w, r, "itemId")
		if !ok {
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), claims.ShoppingSessionID, itemID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
