// Package handler implements the HTTP endpoints of the service.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
)

const statusSuccess = "success"

// maxBodyBytes caps the size of decoded request bodies.
const maxBodyBytes int64 = 1 << 20

var kindStatus = map[apierror.Kind]int{
	apierror.KindValidation:        http.StatusUnprocessableEntity,
	apierror.KindInvalidGender:     http.StatusBadRequest,
	apierror.KindInvalidMealType:   http.StatusBadRequest,
	apierror.KindInvalidFormat:     http.StatusBadRequest,
	apierror.KindNoFoodItems:       http.StatusBadRequest,
	apierror.KindUserNotFound:      http.StatusNotFound,
	apierror.KindInvalidDateFormat: http.StatusBadRequest,
	apierror.KindInvalidRequest:    http.StatusBadRequest,
	apierror.KindPayloadTooLarge:   http.StatusRequestEntityTooLarge,
}

// statusFor returns the HTTP status of an API error kind. Unknown kinds are
// treated as bad requests.
func statusFor(kind apierror.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusBadRequest
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads a single JSON value of at most maxBodyBytes from the request
// body. Syntax errors map to invalid_request and type mismatches to validation_error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apierror.NewErrPayloadTooLarge(maxErr.Limit)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apierror.NewErrValidation(field, "has invalid type "+typeErr.Value)
	}
	if errors.Is(err, io.EOF) {
		return apierror.NewErrInvalidRequest("empty body")
	}
	return apierror.NewErrInvalidRequest(err.Error())
}

// parseUserID treats identifiers that are not UUIDs as unknown users.
func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.NewErrUserNotFound(raw)
	}
	return id, nil
}

// handleError writes err as an error response. Errors without an API kind
// become 500 and their message is only logged.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, statusFor(apiErr.Kind), errorResponse{
			Status: "error",
			Error:  string(apiErr.Kind),
			Detail: apiErr.Message,
		})
		return
	}

	log.Error("HTTP handler: unexpected error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Status: "error",
		Error:  "internal_error",
		Detail: "internal server error",
	})
}
