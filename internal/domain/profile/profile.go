package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
	ThemeOrange Theme = "orange"
	ThemeDark   Theme = "dark"
)

type Layout string

const (
	LayoutModern   Layout = "modern"
	LayoutClassic  Layout = "classic"
	LayoutMinimal  Layout = "minimal"
	LayoutCreative Layout = "creative"
)

var (
	ErrInvalidTheme  = errors.New("theme must be one of: blue, green, purple, orange, dark")
	ErrInvalidLayout = errors.New("layout must be one of: modern, classic, minimal, creative")
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeBlue, ThemeGreen, ThemePurple, ThemeOrange, ThemeDark:
		return true
	}
	return false
}

func (l Layout) Valid() bool {
	switch l {
	case LayoutModern, LayoutClassic, LayoutMinimal, LayoutCreative:
		return true
	}
	return false
}

// Profile is one-to-one with a user. The owning user never changes.
type Profile struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Username    string            `json:"username"`
	FullName    string            `json:"full_name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Location    string            `json:"location"`
	Avatar      string            `json:"avatar"`
	SocialLinks map[string]string `json:"social_links"`
	Theme       Theme             `json:"theme"`
	Layout      Layout            `json:"layout"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewDefault is the profile created right after signup: everything
// defaulted from the username.
func NewDefault(userID uuid.UUID, username string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Username:    username,
		FullName:    username,
		SocialLinks: map[string]string{},
		Theme:       ThemeBlue,
		Layout:      LayoutModern,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update carries the allow-listed mutable fields. A nil pointer means
// "not present in the request", which leaves the stored value alone.
type Update struct {
	FullName    *string
	Title       *string
	Bio         *string
	Location    *string
	Avatar      *string
	SocialLinks map[string]string
	Theme       *Theme
	Layout      *Layout
}

func (u Update) Validate() error {
	if u.Theme != nil && !u.Theme.Valid() {
		return ErrInvalidTheme
	}
	if u.Layout != nil && !u.Layout.Valid() {
		return ErrInvalidLayout
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	// ApplyUpdate sets only the fields present in upd and returns the
	// profile after the write, or a not-found error when no profile row
	// exists for the user.
	ApplyUpdate(ctx context.Context, userID uuid.UUID, upd Update) (*Profile, error)
}
