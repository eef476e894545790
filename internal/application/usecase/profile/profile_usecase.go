package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/adapters/event"
	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	UserID   uuid.UUID
	Username string
	Update   profile.Update
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile applies only the allow-listed fields present in
// the request. Fields the caller left out stay untouched.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if err := input.Update.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	p, err := uc.profileRepo.ApplyUpdate(ctx, input.UserID, input.Update)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, input.UserID, input.Username)
	return &UpdateProfileOutput{Profile: p}, nil
}

func (uc *ProfileUseCase) publishEvent(ctx context.Context, userID uuid.UUID, username string) {
	payload := event.PortfolioEventPayload{
		EventType: event.EventProfileUpdated,
		UserID:    userID,
		Username:  username,
	}
	if err := uc.kafkaClient.Publish(ctx, payload); err != nil {
		uc.logger.Warn("Failed to publish profile event", zap.String("username", username), zap.Error(err))
	}
}
