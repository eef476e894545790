package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/foliohub/internal/application/usecase/portfolio"
	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/internal/domain/user"
)

// Every endpoint shares one envelope:
//
//	success: { "success": true,  "data": ..., "message": "..." }  (200)
//	failure: { "success": false, "error": "..." }                 (status per error)
func successEnvelope(data any, message string) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
		"message": message,
	}
}

func errorEnvelope(errMsg string) gin.H {
	return gin.H{
		"success": false,
		"error":   errMsg,
	}
}

// User DTOs

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Username    string            `json:"username"`
	FullName    string            `json:"fullName"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Location    string            `json:"location"`
	Avatar      string            `json:"avatar"`
	SocialLinks map[string]string `json:"socialLinks"`
	Theme       string            `json:"theme"`
	Layout      string            `json:"layout"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	links := p.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return ProfileDTO{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Username:    p.Username,
		FullName:    p.FullName,
		Title:       p.Title,
		Bio:         p.Bio,
		Location:    p.Location,
		Avatar:      p.Avatar,
		SocialLinks: links,
		Theme:       string(p.Theme),
		Layout:      string(p.Layout),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// updateProfileRequest covers the allow-listed fields only. Unknown keys
// in the body are dropped by JSON binding, which is the whole point:
// nothing outside this set ever reaches the store.
type updateProfileRequest struct {
	FullName    *string        `json:"fullName"`
	Title       *string        `json:"title"`
	Bio         *string        `json:"bio"`
	Location    *string        `json:"location"`
	Avatar      *string        `json:"avatar"`
	SocialLinks map[string]any `json:"socialLinks"`
	Theme       *string        `json:"theme"`
	Layout      *string        `json:"layout"`
}

// Section DTOs

type ItemDTO struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Date         string   `json:"date,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

func (d ItemDTO) toDomain() section.Item {
	return section.Item{
		Title:        d.Title,
		Company:      d.Company,
		Date:         d.Date,
		Location:     d.Location,
		Description:  d.Description,
		Link:         d.Link,
		Technologies: d.Technologies,
	}
}

func toDomainItems(dtos []ItemDTO) []section.Item {
	items := make([]section.Item, len(dtos))
	for i, d := range dtos {
		items[i] = d.toDomain()
	}
	return items
}

type SectionDTO struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Items        []section.Item `json:"items"`
	Visible      bool           `json:"visible"`
	DisplayOrder int            `json:"order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func ToSectionDTO(s *section.Section) SectionDTO {
	items := s.Items
	if items == nil {
		items = []section.Item{}
	}
	return SectionDTO{
		ID:           s.ID.String(),
		UserID:       s.UserID.String(),
		Type:         string(s.Type),
		Title:        s.Title,
		Items:        items,
		Visible:      s.Visible,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// SectionSummaryDTO is the delete response: identity fields plus the
// items that were removed with the section.
type SectionSummaryDTO struct {
	ID     string         `json:"id"`
	UserID string         `json:"userId"`
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Items  []section.Item `json:"items"`
}

func ToSectionSummaryDTO(s *section.Section) SectionSummaryDTO {
	items := s.Items
	if items == nil {
		items = []section.Item{}
	}
	return SectionSummaryDTO{
		ID:     s.ID.String(),
		UserID: s.UserID.String(),
		Type:   string(s.Type),
		Title:  s.Title,
		Items:  items,
	}
}

type createSectionRequest struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Items []ItemDTO `json:"items"`
}

// updateSectionRequest: a nil Items pointer means the key was absent,
// a non-nil pointer (including an empty array) replaces the stored
// sequence wholesale.
type updateSectionRequest struct {
	ID      string     `json:"id"`
	Items   *[]ItemDTO `json:"items"`
	Title   *string    `json:"title"`
	Visible *bool      `json:"visible"`
	Order   *int       `json:"order"`
}

// Portfolio DTOs

type PortfolioDTO struct {
	Profile  ProfileDTO   `json:"profile"`
	Sections []SectionDTO `json:"sections"`
}

func ToPortfolioDTO(p *portfolio.Portfolio) PortfolioDTO {
	sections := make([]SectionDTO, len(p.Sections))
	for i, s := range p.Sections {
		sections[i] = ToSectionDTO(s)
	}
	return PortfolioDTO{
		Profile:  ToProfileDTO(p.Profile),
		Sections: sections,
	}
}
