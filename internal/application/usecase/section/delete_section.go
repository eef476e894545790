package section

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/foliohub/adapters/event"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/logger"
)

type DeleteSectionUseCase struct {
	sectionRepo section.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteSectionUseCase(repo section.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *DeleteSectionUseCase {
	return &DeleteSectionUseCase{
		sectionRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeleteSectionInput struct {
	SectionID uuid.UUID
	UserID    uuid.UUID
	Username  string
}

type DeleteSectionOutput struct {
	Section *section.Section
}

// Execute deletes the section only when the caller owns it and returns
// the deleted row for the response summary.
func (uc *DeleteSectionUseCase) Execute(ctx context.Context, input DeleteSectionInput) (*DeleteSectionOutput, error) {
	s, err := uc.sectionRepo.Delete(ctx, input.SectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	publishSectionEvent(ctx, uc.kafkaClient, uc.logger, event.EventSectionDeleted, input.UserID, input.Username, s.ID)
	return &DeleteSectionOutput{Section: s}, nil
}
