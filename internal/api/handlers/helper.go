package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/api/middleware"
	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
	"github.com/mpereira-dev/storefront/internal/utils/response"
)

// authenticate returns the request's claims, writing a 401 and returning
// nil when no identity is present.
func authenticate(w http.ResponseWriter, r *http.Request) *models.Claims {

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, apperrors.UnauthorizedError("Authentication required"))
		return nil
	}

	return claims
}

// decodeAndValidate decodes the JSON body into dest and applies the struct
// validation rules, writing the 400 response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dest any) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, apperrors.BadRequestError("Invalid request body").WithError(err))
		return false
	}

	if err := validate.Struct(dest); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, apperrors.InternalError("Unexpected validation error").WithError(err))
		}

		return false
	}

	return true
}

// pathID parses and range-checks an integer path identifier, writing the
// 400 response itself on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {

	id, err := utils.ParseID(r.PathValue(name))
	if err != nil {
		response.Error(w, apperrors.ValidationError("Invalid value for "+name+" path parameter").WithError(err))
		return 0, false
	}

	return id, true
}
