package auth

import (
	"context"
	"strings"

	"github.com/khoahotran/foliohub/internal/domain/user"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/auth"
	"github.com/khoahotran/foliohub/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("auth_usecase")

// invalidCredentials is shared by the user-lookup and password paths so a
// caller cannot tell which one failed.
func invalidCredentials() error {
	return apperror.NewUnauthorized("Invalid credentials", "email or password is incorrect")
}

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User        *user.User
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, invalidCredentials()
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID, u.Username, u.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{User: u, AccessToken: token}, nil
}
