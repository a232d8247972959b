// Package apierror defines structured errors surfaced to API callers.
package apierror

import "fmt"

// Kind identifies a class of API error.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindInvalidGender     Kind = "invalid_gender"
	KindInvalidMealType   Kind = "invalid_meal_type"
	KindInvalidFormat     Kind = "invalid_format"
	KindNoFoodItems       Kind = "no_food_items"
	KindUserNotFound      Kind = "user_not_found"
	KindInvalidDateFormat Kind = "invalid_date_format"
	KindInvalidRequest    Kind = "invalid_request"
	KindPayloadTooLarge   Kind = "payload_too_large"
)

// APIError is an error with a kind and a human-readable message. Transports
// map the kind to their own status codes.
type APIError struct {
	Kind    Kind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches any APIError of the same kind, so errors.Is works against the
// sentinels below regardless of message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation        = &APIError{Kind: KindValidation}
	ErrInvalidGender     = &APIError{Kind: KindInvalidGender}
	ErrInvalidMealType   = &APIError{Kind: KindInvalidMealType}
	ErrInvalidFormat     = &APIError{Kind: KindInvalidFormat}
	ErrNoFoodItems       = &APIError{Kind: KindNoFoodItems}
	ErrUserNotFound      = &APIError{Kind: KindUserNotFound}
	ErrInvalidDateFormat = &APIError{Kind: KindInvalidDateFormat}
	ErrInvalidRequest    = &APIError{Kind: KindInvalidRequest}
	ErrPayloadTooLarge   = &APIError{Kind: KindPayloadTooLarge}
)

func newErr(base *APIError, msg string) *APIError {
	return &APIError{Kind: base.Kind, Message: msg}
}

func NewErrValidation(field, reason string) *APIError {
	return newErr(ErrValidation, fmt.Sprintf("%s %s", field, reason))
}

func NewErrInvalidGender(gender string) *APIError {
	return newErr(ErrInvalidGender, fmt.Sprintf("gender must be 'male' or 'female', got %q", gender))
}

func NewErrInvalidMealType(mealType string) *APIError {
	return newErr(ErrInvalidMealType, fmt.Sprintf("invalid meal type %q, must be breakfast, lunch, or dinner", mealType))
}

func NewErrInvalidFormat(reason string) *APIError {
	return newErr(ErrInvalidFormat, "invalid message format: "+reason)
}

func NewErrNoFoodItems() *APIError {
	return newErr(ErrNoFoodItems, "no food items provided")
}

func NewErrUserNotFound(userID string) *APIError {
	return newErr(ErrUserNotFound, fmt.Sprintf("user %s not found", userID))
}

func NewErrInvalidDateFormat(date string) *APIError {
	return newErr(ErrInvalidDateFormat, fmt.Sprintf("invalid date %q, use YYYY-MM-DD", date))
}

func NewErrInvalidRequest(reason string) *APIError {
	return newErr(ErrInvalidRequest, "invalid request body: "+reason)
}

func NewErrPayloadTooLarge(limit int64) *APIError {
	return newErr(ErrPayloadTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit))
}
