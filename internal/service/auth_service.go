// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"errors"
	"log/slog"

	"socialite/internal/identity"
	"socialite/internal/middleware"
	"socialite/internal/models"
	"socialite/internal/repository"
	"socialite/internal/validation"
)

// AuthService gates access through the external identity provider and keeps
// the profile store in step with it.
type AuthService struct {
	provider identity.Provider
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(provider identity.Provider, userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		provider: provider,
		userRepo: userRepo,
	}
}

// Register creates an identity-provider account and the matching profile
// record. If the profile write fails after the account was created, the
// account is left orphaned (no compensating rollback); the returned error
// names the failed step so the orphan can be resolved out of band.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	userID, err := s.provider.CreateAccount(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrAccountExists) {
			return nil, models.NewConflictError("An account with this email already exists")
		}
		return nil, models.WrapStoreError(err)
	}

	user := &models.User{
		ID:    userID,
		Name:  name,
		Email: email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Known failure gap: the identity account now exists without a
		// profile record.
		middleware.Logger.ErrorContext(ctx, "profile creation failed after account creation",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, &models.AppError{
			Code:    models.CodeStoreError,
			Message: "Account created but profile creation failed",
			Err:     err,
		}
	}
	return user, nil
}

// Login authenticates against the identity provider and loads the profile
// record for the returned id.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	userID, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, models.NewAuthError("Invalid credentials")
		}
		return nil, models.WrapStoreError(err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			// The account authenticated but its profile record is absent.
			return nil, &models.AppError{
				Code:    models.CodeNotFound,
				Message: "Profile not found for authenticated account",
			}
		}
		return nil, err
	}
	return user, nil
}
