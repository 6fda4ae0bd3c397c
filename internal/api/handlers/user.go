package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mpereira-dev/storefront/internal/api/middleware"
	"github.com/mpereira-dev/storefront/internal/models"
	service "github.com/mpereira-dev/storefront/internal/services"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RegisterRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		if err := h.userService.Register(r.Context(), &req); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Customer registered")

		response.Success(w, http.StatusCreated, nil)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		customer, err := h.userService.Profile(r.Context(), claims.CustomerID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}

func (h *UserHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		var req models.UpdateCustomerRequest

		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		if err := h.userService.Update(r.Context(), claims.CustomerID, &req); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, nil)
	}
}

func (h *UserHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := authenticate(w, r)
		if claims == nil {
			return
		}

		if err := h.userService.Delete(r.Context(), claims.CustomerID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
