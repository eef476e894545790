package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `id, user_id, username, full_name, title, bio, location, avatar, social_links, theme, layout, created_at, updated_at`

func (r *postgresProfileRepo) scanProfile(row pgx.Row, identifier string) (*profile.Profile, error) {
	p := &profile.Profile{}
	var socialLinksBytes []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Username,
		&p.FullName,
		&p.Title,
		&p.Bio,
		&p.Location,
		&p.Avatar,
		&socialLinksBytes,
		&p.Theme,
		&p.Layout,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", identifier)
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(socialLinksBytes, &p.SocialLinks); err != nil {
		r.logger.Warn("Failed to unmarshal social_links", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.SocialLinks = map[string]string{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = map[string]string{}
	}

	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	socialLinksBytes, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return apperror.NewInternal("failed to marshal social_links", err)
	}

	query := `
		INSERT INTO profiles (id, user_id, username, full_name, title, bio, location, avatar, social_links, theme, layout, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Username, p.FullName, p.Title, p.Bio, p.Location,
		p.Avatar, socialLinksBytes, p.Theme, p.Layout, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID), userID.String())
}

func (r *postgresProfileRepo) GetByUsername(ctx context.Context, username string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, username), username)
}

// ApplyUpdate builds the SET clause from the fields actually present so
// fields the caller left out are never touched.
func (r *postgresProfileRepo) ApplyUpdate(ctx context.Context, userID uuid.UUID, upd profile.Update) (*profile.Profile, error) {
	builder := psql.Update("profiles").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + profileColumns)

	if upd.FullName != nil {
		builder = builder.Set("full_name", *upd.FullName)
	}
	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Bio != nil {
		builder = builder.Set("bio", *upd.Bio)
	}
	if upd.Location != nil {
		builder = builder.Set("location", *upd.Location)
	}
	if upd.Avatar != nil {
		builder = builder.Set("avatar", *upd.Avatar)
	}
	if upd.SocialLinks != nil {
		socialLinksBytes, err := json.Marshal(upd.SocialLinks)
		if err != nil {
			return nil, apperror.NewInternal("failed to marshal social_links", err)
		}
		builder = builder.Set("social_links", socialLinksBytes)
	}
	if upd.Theme != nil {
		builder = builder.Set("theme", string(*upd.Theme))
	}
	if upd.Layout != nil {
		builder = builder.Set("layout", string(*upd.Layout))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile update query", err)
	}

	return r.scanProfile(r.db.QueryRow(ctx, query, args...), userID.String())
}
