package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/khoahotran/foliohub/internal/application/service"
	domain "github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/logger"
)

const avatarFolder = "foliohub/avatars"

type UploadAvatarUseCase struct {
	profileRepo domain.Repository
	uploader    service.Uploader
	logger      logger.Logger
}

func NewUploadAvatarUseCase(repo domain.Repository, uploader service.Uploader, log logger.Logger) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		profileRepo: repo,
		uploader:    uploader,
		logger:      log,
	}
}

type UploadAvatarInput struct {
	UserID uuid.UUID
	File   io.Reader
}

type UploadAvatarOutput struct {
	AvatarURL string
}

// Execute uploads the image and stores the returned secure URL on the
// caller's profile. One avatar per user, the public ID is the user ID so
// re-uploads replace the previous image.
func (uc *UploadAvatarUseCase) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {
	if uc.uploader == nil {
		return nil, apperror.NewInternal("media storage is not configured", nil)
	}

	url, err := uc.uploader.Upload(ctx, input.File, avatarFolder, input.UserID.String())
	if err != nil {
		return nil, fmt.Errorf("upload avatar failed: %w", err)
	}

	upd := domain.Update{Avatar: &url}
	if _, err := uc.profileRepo.ApplyUpdate(ctx, input.UserID, upd); err != nil {
		return nil, err
	}

	return &UploadAvatarOutput{AvatarURL: url}, nil
}
