package handlers

import (
	"net/http"

	service "github.com/mpereira-dev/storefront/internal/services"
	"github.com/mpereira-dev/storefront/internal/utils"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

// ProductHandler serves the public, read-only catalog surface. No
// authentication is required for browsing.
type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts returns all products, or the subset matching an optional
// search term or category name.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if search := r.URL.Query().Get("search"); search != "" {

			products, err := h.productService.GetProductsBySearchTerm(r.Context(), utils.SanitizeString(search))
			if err != nil {
				response.Error(w, err)
				return
			}

			response.Success(w, http.StatusOK, products)
			return
		}

		if category := r.URL.Query().Get("category"); category != "" {

			products, err := h.productService.GetProductsByCategoryName(r.Context(), utils.SanitizeString(category))
			if err != nil {
				response.Error(w, err)
				return
			}

			response.Success(w, http.StatusOK, products)
			return
		}

		products, err := h.productService.GetProducts(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProductByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productName := utils.SanitizeString(r.PathValue("productName"))

		product, err := h.productService.GetProductByName(r.Context(), productName)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) GetProductByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, ok := pathID(w, r, "productId")
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.productService.GetCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}
