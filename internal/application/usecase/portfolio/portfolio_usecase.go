package portfolio

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/logger"
)

// Portfolio is the public payload for one username: the profile plus the
// visible sections in display order.
type Portfolio struct {
	Profile  *profile.Profile   `json:"profile"`
	Sections []*section.Section `json:"sections"`
}

// Cache fronts the assembled payload. Misses return (nil, nil). The
// worker evicts entries on mutation events, and entries expire by TTL,
// so a lost event only extends staleness.
type Cache interface {
	Get(ctx context.Context, username string) (*Portfolio, error)
	Set(ctx context.Context, username string, p *Portfolio) error
	Delete(ctx context.Context, username string) error
}

type PortfolioUseCase struct {
	profileRepo profile.Repository
	sectionRepo section.Repository
	cache       Cache
	logger      logger.Logger
}

func NewPortfolioUseCase(pRepo profile.Repository, sRepo section.Repository, cache Cache, log logger.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{
		profileRepo: pRepo,
		sectionRepo: sRepo,
		cache:       cache,
		logger:      log,
	}
}

type GetPortfolioInput struct {
	Username string
}

type GetPortfolioOutput struct {
	Portfolio *Portfolio
}

func (uc *PortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	username := strings.ToLower(input.Username)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, username)
		if err != nil {
			uc.logger.Warn("Portfolio cache read failed", zap.String("username", username), zap.Error(err))
		} else if cached != nil {
			return &GetPortfolioOutput{Portfolio: cached}, nil
		}
	}

	p, err := uc.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	sections, err := uc.sectionRepo.ListVisibleByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	result := &Portfolio{Profile: p, Sections: sections}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, username, result); err != nil {
			uc.logger.Warn("Portfolio cache write failed", zap.String("username", username), zap.Error(err))
		}
	}

	return &GetPortfolioOutput{Portfolio: result}, nil
}
