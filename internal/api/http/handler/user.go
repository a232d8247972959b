package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/model"
)

// UserService defines user registration.
type UserService interface {
	Register(ctx context.Context, params model.RegisterUserParams) (model.User, error)
}

// User handles user endpoints.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Register handles POST /register.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := req.validate(); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), model.RegisterUserParams{
		Name:   req.Name,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
		Gender: model.Gender(req.Gender),
		Goal:   req.Goal,
	})
	if err != nil {
		h.logger.Debug("User handler: registration failed", "error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Status:  statusSuccess,
		Message: "User registered successfully",
		UserID:  user.ID.String(),
		BMR:     user.BMR,
	})
}

func (req registerRequest) validate() error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return apierror.NewErrValidation("name", "must not be empty")
	case req.Age <= 0:
		return apierror.NewErrValidation("age", "must be greater than 0")
	case req.Weight <= 0:
		return apierror.NewErrValidation("weight", "must be greater than 0")
	case req.Height <= 0:
		return apierror.NewErrValidation("height", "must be greater than 0")
	case strings.TrimSpace(req.Goal) == "":
		return apierror.NewErrValidation("goal", "must not be empty")
	}

	switch model.Gender(strings.ToLower(req.Gender)) {
	case model.GenderMale, model.GenderFemale:
		return nil
	}
	return apierror.NewErrValidation("gender", "must be 'male' or 'female'")
}
