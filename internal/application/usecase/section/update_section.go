package section

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/foliohub/adapters/event"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/logger"
)

type UpdateSectionUseCase struct {
	sectionRepo section.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateSectionUseCase(repo section.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *UpdateSectionUseCase {
	return &UpdateSectionUseCase{
		sectionRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type UpdateSectionInput struct {
	SectionID uuid.UUID
	UserID    uuid.UUID
	Username  string
	// Items, when non-nil, replaces the whole stored sequence. There is
	// no item-level merge: a caller appending one item sends the full
	// desired array.
	Items        []section.Item
	Title        *string
	Visible      *bool
	DisplayOrder *int
}

type UpdateSectionOutput struct {
	Section *section.Section
}

func (uc *UpdateSectionUseCase) Execute(ctx context.Context, input UpdateSectionInput) (*UpdateSectionOutput, error) {

	s, err := uc.sectionRepo.FindByID(ctx, input.SectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Items != nil {
		s.Items = input.Items
	}
	if input.Title != nil {
		s.Title = *input.Title
	}
	if input.Visible != nil {
		s.Visible = *input.Visible
	}
	if input.DisplayOrder != nil {
		s.DisplayOrder = *input.DisplayOrder
	}
	s.UpdatedAt = time.Now().UTC()

	if err := uc.sectionRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	publishSectionEvent(ctx, uc.kafkaClient, uc.logger, event.EventSectionUpdated, input.UserID, input.Username, s.ID)
	return &UpdateSectionOutput{Section: s}, nil
}
