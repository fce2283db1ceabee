package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "sampledash/pkg/errors"
)

// ErrorBody is the wire shape every JSON endpoint uses for failures.
type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error occurred"})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "len":
			message = field + " must have exactly " + err.Param() + " elements"
		case "min":
			message = field + " must be at least " + err.Param()
		case "max":
			message = field + " must be at most " + err.Param()
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Invalid input data"})
}
