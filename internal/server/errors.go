package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

// newValidator reports field names as they appear on the wire, taken from
// the json, query or param tag, so 400 responses match the request shape.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// validationError shapes a validator failure as 400 with itemized
// field errors.
func validationError(ctx echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ctx.JSON(http.StatusBadRequest, Res{Message: "Validation error."})
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}

	return ctx.JSON(http.StatusBadRequest, Res{
		Message: "Validation error.",
		Errors:  fields,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// domainError maps usecase sentinels to response codes; anything
// unrecognized falls through as 500 with the raw message.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return ctx.JSON(http.StatusNotFound, Res{Message: "Client not found."})
	case errors.Is(err, usecase.ErrAllocationNotFound):
		return ctx.JSON(http.StatusNotFound, Res{Message: "Allocation not found."})
	case errors.Is(err, usecase.ErrAllocationExists):
		return ctx.JSON(http.StatusConflict, Res{Message: "Allocation already exists."})
	case errors.Is(err, usecase.ErrReferenceNotFound):
		return ctx.JSON(http.StatusNotFound, Res{Message: "Referenced client or asset not found."})
	default:
		return ctx.JSON(http.StatusInternalServerError, Res{Message: err.Error()})
	}
}
