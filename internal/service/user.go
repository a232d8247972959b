package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/nutrilog-server/internal/apierror"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
	"github.com/dtroode/nutrilog-server/internal/model"
	"github.com/dtroode/nutrilog-server/internal/nutrition"
)

// WebhookUserID identifies the shared identity that free-text meals are logged against.
var WebhookUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("nutrilog:webhook-user"))

// webhookUserProfile holds the placeholder attributes of the webhook identity.
var webhookUserProfile = model.RegisterUserParams{
	Age:    25,
	Weight: 70,
	Height: 170,
	Gender: model.GenderMale,
	Goal:   "general",
}

type User struct {
	userStore       model.UserStore
	ids             model.IDGenerator
	metrics         *metrics.Metrics
	logger          *logger.Logger
	webhookUserName string
	now             func() time.Time
}

func NewUser(
	userStore model.UserStore,
	ids model.IDGenerator,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	webhookUserName string,
) *User {
	return &User{
		userStore:       userStore,
		ids:             ids,
		metrics:         metrics,
		logger:          logger,
		webhookUserName: webhookUserName,
		now:             time.Now,
	}
}

// Register validates params, computes the BMR and stores a new user.
func (s *User) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	s.logger.Debug("User service: registering user",
		"name", params.Name,
		"gender", params.Gender)

	if err := validateRegistration(params); err != nil {
		return model.User{}, err
	}

	user, err := s.newUser(s.ids.NewID(), params)
	if err != nil {
		return model.User{}, err
	}

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.UserRegistered()
	s.logger.Info("User service: user registered",
		"user_id", created.ID,
		"bmr", created.BMR)

	return created, nil
}

func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierror.NewErrUserNotFound(id.String())
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// EnsureDefault returns the webhook identity, creating it on first use.
// Concurrent first callers converge on a single record.
func (s *User) EnsureDefault(ctx context.Context) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, WebhookUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get webhook user: %w", err)
	}

	params := webhookUserProfile
	params.Name = s.webhookUserName
	user, err = s.newUser(WebhookUserID, params)
	if err != nil {
		return model.User{}, err
	}

	created, err := s.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		return s.userStore.GetByID(ctx, WebhookUserID)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create webhook user: %w", err)
	}

	s.logger.Info("User service: webhook user provisioned",
		"user_id", created.ID)

	return created, nil
}

func (s *User) newUser(id uuid.UUID, params model.RegisterUserParams) (model.User, error) {
	bmr, err := nutrition.CalculateBMR(params.Weight, params.Height, params.Age, params.Gender)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		ID:        id,
		Name:      params.Name,
		Age:       params.Age,
		Weight:    params.Weight,
		Height:    params.Height,
		Gender:    model.Gender(strings.ToLower(string(params.Gender))),
		Goal:      params.Goal,
		BMR:       bmr,
		CreatedAt: s.now(),
	}, nil
}

func validateRegistration(params model.RegisterUserParams) error {
	switch {
	case strings.TrimSpace(params.Name) == "":
		return apierror.NewErrValidation("name", "must not be empty")
	case params.Age <= 0:
		return apierror.NewErrValidation("age", "must be greater than 0")
	case params.Weight <= 0:
		return apierror.NewErrValidation("weight", "must be greater than 0")
	case params.Height <= 0:
		return apierror.NewErrValidation("height", "must be greater than 0")
	case strings.TrimSpace(params.Goal) == "":
		return apierror.NewErrValidation("goal", "must not be empty")
	}
	return nil
}
