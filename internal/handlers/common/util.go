package common

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state, and clear, focused behavior.

// ErrInvalidID is returned by ParseID for non-numeric or non-positive ids.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path identifier that must be a positive integer.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Error writes the standard error body: {"error": code, "message": msg}.
func Error(c *gin.Context, status int, code, msg string) {
	body := gin.H{"error": code}
	if msg != "" {
		body["message"] = msg
	}
	c.JSON(status, body)
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, "invalid_request", msg)
}

func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, "not_found", msg)
}

func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, "conflict", msg)
}

func ServerError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, "server_error", msg)
}

// FieldError names one offending request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// InvalidFields writes a 400 listing the fields rejected by binding.
// Errors other than validator.ValidationErrors (malformed JSON, wrong types)
// are reported without a field list.
func InvalidFields(c *gin.Context, msg string, err error) {
	body := gin.H{"error": "invalid_request", "message": msg}
	if fe := FieldErrors(err); len(fe) > 0 {
		body["fields"] = fe
	}
	c.JSON(http.StatusBadRequest, body)
}

// FieldErrors converts validator errors into FieldError values. Field names
// are JSON keys once SetupValidator has run.
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Error: describe(e)})
	}
	return out
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "lte":
		return "must be at most " + e.Param()
	case "notblank":
		return "must not be blank"
	default:
		return "is invalid"
	}
}
