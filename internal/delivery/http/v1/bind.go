package v1

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body into req. Malformed JSON is a 400; well-formed
// JSON that fails type or rule checks is a 422 with per-field messages.
func bindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		timeErr        *time.ParseError
	)
	switch {
	case errors.As(err, &validationErrs):
		return apperror.Validation("Invalid request body", validation.FormatValidationErrors(validationErrs))
	case errors.As(err, &typeErr):
		return apperror.Validation("Invalid request body", []string{typeErr.Field + ": must be " + typeErr.Type.String()})
	case errors.As(err, &timeErr):
		return apperror.Validation("Invalid request body", []string{"Scheduled at: must be an ISO-8601 timestamp"})
	}
	return apperror.BadRequest("Malformed JSON body")
}

// int64Param parses a numeric path parameter.
func int64Param(c *gin.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.Validation("Invalid "+label, []string{label + ": must be an integer"})
	}
	return id, nil
}
