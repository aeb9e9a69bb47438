package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Referenced-entity errors; absent references are not-found, never
	// bad-request, so these map to 404 like the primary resource.
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodePostNotFound    ErrorCode = "POST_NOT_FOUND"
	CodeCommentNotFound ErrorCode = "COMMENT_NOT_FOUND"
	CodeBadgeNotFound   ErrorCode = "BADGE_NOT_FOUND"
	CodePlanNotFound    ErrorCode = "PLAN_NOT_FOUND"
	CodeDashboardEmpty  ErrorCode = "USER_DATA_NOT_FOUND"

	// Pagination errors (community feed rejects instead of clamping)
	CodeInvalidLimit  ErrorCode = "INVALID_LIMIT"
	CodeLimitExceeded ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidOffset ErrorCode = "INVALID_OFFSET"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewNotFoundError(code ErrorCode, message string) *DomainError {
	return NewError(code, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// ValidationError represents a single field-level input error.
// Codes follow the MISSING_<FIELD> / INVALID_<FIELD> convention.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors aggregates field errors for a single request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    "MISSING_" + FieldCode(field),
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFieldError(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    "INVALID_" + FieldCode(field),
		Message: message,
	}
}

func NewFieldError(field, code, message string) ValidationError {
	return ValidationError{Field: field, Code: code, Message: message}
}

// FieldCode converts a camelCase JSON field name to its error-code form,
// e.g. "userId" -> "USER_ID", "planData" -> "PLAN_DATA".
func FieldCode(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
