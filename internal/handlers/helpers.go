package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "rentorbuy/internal/errors"
	"rentorbuy/internal/logger"
	"rentorbuy/internal/simulation"
)

// ErrorResponse is the JSON envelope of every error reply.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single error.
type ErrorDetail struct {
	Code    string                  `json:"code" example:"INVALID_INPUT"`
	Message string                  `json:"message" example:"invalid simulation input: monthly_rent must be greater than 0"`
	Details []simulation.FieldError `json:"details,omitempty"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil && appErr.StatusCode >= 500 {
			log.Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, appErr.Body())
		return
	}

	log.Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, apperrors.ErrInternalServer.Body())
}

// errorCode returns the AppError code carried by err, or "" for nil.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return apperrors.ErrInternalServer.Code
}

// errorStatus returns the HTTP status a handler replies with for err.
func errorStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return apperrors.ErrInternalServer.StatusCode
}

// bindingError converts a JSON binding failure into an INVALID_INPUT error
// that names the offending fields.
func bindingError(err error) *apperrors.AppError {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		fields := simulation.FieldErrorsFrom(verrs)
		return invalidFields(fields, err)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return apperrors.WithDetails(apperrors.ErrInvalidInput, "request body must be a JSON object", nil, err)
		}
		return invalidFields([]simulation.FieldError{{Field: field, Reason: "must be a " + jsonKind(typeErr.Type.Kind().String())}}, err)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.WithDetails(apperrors.ErrInvalidInput, "request body is not valid JSON", nil, err)
	case errors.Is(err, io.EOF):
		return apperrors.WithDetails(apperrors.ErrInvalidInput, "request body is required", nil, err)
	}
	return apperrors.WithDetails(apperrors.ErrInvalidInput, err.Error(), nil, err)
}

func invalidFields(fields []simulation.FieldError, cause error) *apperrors.AppError {
	msg := simulation.NewInvalidInputError(fields...).Error()
	return apperrors.WithDetails(apperrors.ErrInvalidInput, msg, fields, cause)
}

func jsonKind(goKind string) string {
	switch {
	case strings.HasPrefix(goKind, "int"), strings.HasPrefix(goKind, "uint"):
		return "whole number"
	case strings.HasPrefix(goKind, "float"):
		return "number"
	case goKind == "bool":
		return "boolean"
	}
	return goKind
}
