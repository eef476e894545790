package section

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/foliohub/internal/domain/section"
)

type ListSectionsUseCase struct {
	sectionRepo section.Repository
}

func NewListSectionsUseCase(repo section.Repository) *ListSectionsUseCase {
	return &ListSectionsUseCase{sectionRepo: repo}
}

type ListSectionsInput struct {
	UserID uuid.UUID
}

type ListSectionsOutput struct {
	Sections []*section.Section
}

// Execute returns all of the caller's sections, oldest first.
func (uc *ListSectionsUseCase) Execute(ctx context.Context, input ListSectionsInput) (*ListSectionsOutput, error) {
	sections, err := uc.sectionRepo.ListByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("list sections failed: %w", err)
	}
	return &ListSectionsOutput{Sections: sections}, nil
}
