package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sectionUC "github.com/khoahotran/foliohub/internal/application/usecase/section"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/apperror"
)

type SectionHandler struct {
	createSectionUseCase *sectionUC.CreateSectionUseCase
	listSectionsUseCase  *sectionUC.ListSectionsUseCase
	updateSectionUseCase *sectionUC.UpdateSectionUseCase
	deleteSectionUseCase *sectionUC.DeleteSectionUseCase
}

func NewSectionHandler(
	createUC *sectionUC.CreateSectionUseCase,
	listUC *sectionUC.ListSectionsUseCase,
	updateUC *sectionUC.UpdateSectionUseCase,
	deleteUC *sectionUC.DeleteSectionUseCase,
) *SectionHandler {
	return &SectionHandler{
		createSectionUseCase: createUC,
		listSectionsUseCase:  listUC,
		updateSectionUseCase: updateUC,
		deleteSectionUseCase: deleteUC,
	}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	var req createSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Items must be an array", err))
		return
	}

	input := sectionUC.CreateSectionInput{
		UserID:   claims.UserID,
		Username: claims.Username,
		Type:     section.Type(req.Type),
		Title:    req.Title,
		Items:    toDomainItems(req.Items),
	}

	output, err := h.createSectionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToSectionDTO(output.Section), "Section created successfully"))
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	input := sectionUC.ListSectionsInput{UserID: claims.UserID}
	output, err := h.listSectionsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SectionDTO, len(output.Sections))
	for i, s := range output.Sections {
		dtos[i] = ToSectionDTO(s)
	}
	c.JSON(http.StatusOK, successEnvelope(dtos, "Sections fetched successfully"))
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	var req updateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Items must be an array", err))
		return
	}

	if req.ID == "" {
		c.Error(apperror.NewInvalidInput("Section id is required", nil))
		return
	}
	sectionID, err := uuid.Parse(req.ID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Invalid section id", err))
		return
	}

	input := sectionUC.UpdateSectionInput{
		SectionID:    sectionID,
		UserID:       claims.UserID,
		Username:     claims.Username,
		Title:        req.Title,
		Visible:      req.Visible,
		DisplayOrder: req.Order,
	}
	if req.Items != nil {
		input.Items = toDomainItems(*req.Items)
	}

	output, err := h.updateSectionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToSectionDTO(output.Section), "Section updated successfully"))
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}

	id := c.Query("id")
	if id == "" {
		c.Error(apperror.NewInvalidInput("Section id is required", nil))
		return
	}
	sectionID, err := uuid.Parse(id)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Invalid section id", err))
		return
	}

	input := sectionUC.DeleteSectionInput{
		SectionID: sectionID,
		UserID:    claims.UserID,
		Username:  claims.Username,
	}
	output, err := h.deleteSectionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(ToSectionSummaryDTO(output.Section), "Section deleted successfully"))
}
