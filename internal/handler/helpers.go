package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewFieldErrors(fields))
		return false
	}
	return true
}

// bindQuery binds and validates query-string filters.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation(err.Error()))
		return false
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("parametros de consulta invalidos"))
		return false
	}
	return true
}

// respondError maps service sentinel errors to HTTP statuses. Unclassified
// errors are attached to the context for the ErrorHandler middleware, which
// logs them and answers a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrReturnExceedsRented),
		errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, apierror.Validation(err.Error()))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierror.Unauthorized(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.Forbidden(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.NotFound(err.Error()))
	default:
		_ = c.Error(err)
	}
}
