package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/internal/domain/user"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/auth"
	"github.com/khoahotran/foliohub/pkg/logger"
	"github.com/khoahotran/foliohub/pkg/validate"
)

type SignupUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewSignupUseCase(uRepo user.Repository, pRepo profile.Repository, log logger.Logger) *SignupUseCase {
	return &SignupUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		logger:      log,
	}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type SignupOutput struct {
	User *user.User
}

// Execute validates and creates the user plus the default profile.
// No token comes back from signup, the client logs in afterwards.
func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {

	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("All fields are required", nil)
	}
	if !validate.Username(input.Username) {
		return nil, apperror.NewInvalidInput("Username must be 3-30 characters and can only contain lowercase letters, numbers, hyphens, and underscores", nil)
	}
	if !validate.Email(input.Email) {
		return nil, apperror.NewInvalidInput("Invalid email format", nil)
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewInvalidInput("Password must be at least 6 characters", nil)
	}

	email := strings.ToLower(input.Email)

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, email, input.Username)
	if err != nil {
		return nil, apperror.NewInternal("failed to check existing user", err)
	}
	if exists {
		return nil, apperror.NewConflict("User with this email or username already exists")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		// the unique indexes catch the race between the existence check
		// and the insert
		return nil, err
	}

	if err := uc.profileRepo.Save(ctx, profile.NewDefault(newUser.ID, newUser.Username)); err != nil {
		return nil, fmt.Errorf("create default profile failed: %w", err)
	}

	uc.logger.Info("User registered", zap.String("user_id", newUser.ID.String()), zap.String("username", newUser.Username))
	return &SignupOutput{User: newUser}, nil
}
