package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/foliohub/internal/application/usecase/profile"
	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/validate"
)

type ProfileHandler struct {
	profileUseCase      *profileUC.ProfileUseCase
	uploadAvatarUseCase *profileUC.UploadAvatarUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, avatarUC *profileUC.UploadAvatarUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:      uc,
		uploadAvatarUseCase: avatarUC,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	input := profileUC.GetProfileInput{UserID: claims.UserID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToProfileDTO(output.Profile), "Profile fetched successfully"))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}

	upd := profile.Update{
		FullName: req.FullName,
		Title:    req.Title,
		Bio:      req.Bio,
		Location: req.Location,
		Avatar:   req.Avatar,
	}
	if req.SocialLinks != nil {
		upd.SocialLinks = validate.SanitizeSocialLinks(req.SocialLinks)
	}
	if req.Theme != nil {
		theme := profile.Theme(*req.Theme)
		upd.Theme = &theme
	}
	if req.Layout != nil {
		layout := profile.Layout(*req.Layout)
		upd.Layout = &layout
	}

	input := profileUC.UpdateProfileInput{
		UserID:   claims.UserID,
		Username: claims.Username,
		Update:   upd,
	}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToProfileDTO(output.Profile), "Profile updated successfully"))
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.NewInvalidInput("Avatar file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("Cannot read avatar file", err))
		return
	}
	defer file.Close()

	input := profileUC.UploadAvatarInput{
		UserID: claims.UserID,
		File:   file,
	}
	output, err := h.uploadAvatarUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(gin.H{
		"avatar": output.AvatarURL,
	}, "Avatar uploaded successfully"))
}
