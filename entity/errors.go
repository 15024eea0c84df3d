package entity

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the structured error returned to clients. Message is the
// user-facing text; Code is stable and machine-readable.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnauthorizedError(reason string) *APIError {
	return &APIError{
		Code:    "Unauthorized",
		Message: reason,
		Status:  http.StatusUnauthorized,
	}
}

func NewValidationError(details string) *APIError {
	return &APIError{
		Code:    "Invalid request body",
		Message: details,
		Status:  http.StatusBadRequest,
	}
}

func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:   "User not found",
		Status: http.StatusNotFound,
	}
}

func NewMuseumNotFoundError() *APIError {
	return &APIError{
		Code:    "Museum not found",
		Message: "指定された会場が見つかりません。",
		Status:  http.StatusNotFound,
	}
}

func NewExhibitionNotFoundError() *APIError {
	return &APIError{
		Code:    "Exhibition not found",
		Message: "指定された展覧会が見つかりません。",
		Status:  http.StatusNotFound,
	}
}

func NewPlanRequiredError() *APIError {
	return &APIError{
		Code:    "Pro plan required",
		Message: "ブックマーク機能はProプラン限定です。",
		Status:  http.StatusForbidden,
	}
}

func NewFavoriteLimitError(limit int) *APIError {
	return &APIError{
		Code:    "Favorite limit exceeded",
		Message: fmt.Sprintf("Freeプランでは%d件までお気に入りに追加できます。", limit),
		Status:  http.StatusForbidden,
	}
}

func NewInternalError() *APIError {
	return &APIError{
		Code:   "Internal server error",
		Status: http.StatusInternalServerError,
	}
}

// AsAPIError unwraps err to an APIError, falling back to an internal error
// so every failure reaches the client in the typed shape.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError()
}
