package section

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeProjects       Type = "projects"
	TypeExperience     Type = "experience"
	TypeEducation      Type = "education"
	TypeSkills         Type = "skills"
	TypeCertifications Type = "certifications"
	TypeCustom         Type = "custom"
)

var ErrInvalidType = errors.New("section type must be one of: projects, experience, education, skills, certifications, custom")

func (t Type) Valid() bool {
	switch t {
	case TypeProjects, TypeExperience, TypeEducation, TypeSkills, TypeCertifications, TypeCustom:
		return true
	}
	return false
}

// Item is a freeform section entry. All keys are optional, keys outside
// this set are dropped at the JSON boundary instead of stored verbatim.
type Item struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Date         string   `json:"date,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Section is many-to-one with a user. Every mutation is scoped by owner.
type Section struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Type         Type      `json:"type"`
	Title        string    `json:"title"`
	Items        []Item    `json:"items"`
	Visible      bool      `json:"visible"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, s *Section) error
	// FindByID is owner-scoped: an id owned by another user reads as
	// not found, never as permission denied.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Section, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*Section, error)
	ListVisibleByOwner(ctx context.Context, userID uuid.UUID) ([]*Section, error)
	Update(ctx context.Context, s *Section) error
	Delete(ctx context.Context, id, userID uuid.UUID) (*Section, error)
}
