package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/domerr"
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
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeDomainError maps the typed inventory errors onto HTTP statuses. The
// capacity and quantity errors keep their messages because they carry the
// exact numbers the user needs. Anything unrecognized is a 500 via the
// error-handler middleware.
func writeDomainError(c *gin.Context, err error) {
	var (
		capExcedida *domerr.CapacidadExcedida
		limPlan     *domerr.LimitePlanExcedido
		cantInsuf   *domerr.CantidadInsuficiente
		capInvalida *domerr.CapacidadInvalida
		apiErr      *apierror.APIError
	)
	switch {
	case errors.Is(err, domerr.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
	case errors.Is(err, domerr.ErrPremiumRequerido):
		c.JSON(http.StatusForbidden, apierror.New(domerr.ErrPremiumRequerido.Error()))
	case errors.As(err, &capExcedida):
		c.JSON(http.StatusConflict, apierror.New(capExcedida.Error()))
	case errors.As(err, &limPlan):
		c.JSON(http.StatusConflict, apierror.New(limPlan.Error()))
	case errors.As(err, &cantInsuf):
		c.JSON(http.StatusConflict, apierror.New(cantInsuf.Error()))
	case errors.As(err, &capInvalida):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(capInvalida.Error()))
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadRequest, apiErr)
	default:
		_ = c.Error(err)
	}
}
