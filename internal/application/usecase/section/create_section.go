package section

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/adapters/event"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/logger"
)

type CreateSectionUseCase struct {
	sectionRepo section.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCreateSectionUseCase(repo section.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *CreateSectionUseCase {
	return &CreateSectionUseCase{
		sectionRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreateSectionInput struct {
	UserID   uuid.UUID
	Username string
	Type     section.Type
	Title    string
	Items    []section.Item
}

type CreateSectionOutput struct {
	Section *section.Section
}

func (uc *CreateSectionUseCase) Execute(ctx context.Context, input CreateSectionInput) (*CreateSectionOutput, error) {
	if input.Type == "" || input.Title == "" {
		return nil, apperror.NewInvalidInput("Section type and title are required", nil)
	}
	if !input.Type.Valid() {
		return nil, apperror.NewInvalidInput(section.ErrInvalidType.Error(), nil)
	}

	items := input.Items
	if items == nil {
		items = []section.Item{}
	}

	now := time.Now().UTC()
	s := &section.Section{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Items:     items,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.sectionRepo.Save(ctx, s); err != nil {
		return nil, err
	}

	publishSectionEvent(ctx, uc.kafkaClient, uc.logger, event.EventSectionCreated, input.UserID, input.Username, s.ID)
	return &CreateSectionOutput{Section: s}, nil
}

func publishSectionEvent(ctx context.Context, client *event.KafkaProducerClient, log logger.Logger, eventType string, userID uuid.UUID, username string, sectionID uuid.UUID) {
	payload := event.PortfolioEventPayload{
		EventType: eventType,
		UserID:    userID,
		Username:  username,
		SectionID: &sectionID,
	}
	if err := client.Publish(ctx, payload); err != nil {
		log.Warn("Failed to publish section event", zap.String("event_type", eventType), zap.String("section_id", sectionID.String()), zap.Error(err))
	}
}
