package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/logger"
)

type postgresSectionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSectionRepo(db *pgxpool.Pool, logger logger.Logger) section.Repository {
	return &postgresSectionRepo{db: db, logger: logger}
}

const sectionColumns = `id, user_id, type, title, items, visible, display_order, created_at, updated_at`

func scanSection(row pgx.Row, l logger.Logger) (*section.Section, error) {
	s := &section.Section{}
	var itemsBytes []byte

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Type,
		&s.Title,
		&itemsBytes,
		&s.Visible,
		&s.DisplayOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("section", "")
		}
		return nil, apperror.NewInternal("failed to scan section row", err)
	}

	if err := json.Unmarshal(itemsBytes, &s.Items); err != nil {
		l.Warn("Failed to unmarshal section items", zap.String("section_id", s.ID.String()), zap.Error(err))
		s.Items = []section.Item{}
	}
	if s.Items == nil {
		s.Items = []section.Item{}
	}

	return s, nil
}

func scanSections(rows pgx.Rows, l logger.Logger) ([]*section.Section, error) {
	defer rows.Close()
	sections := make([]*section.Section, 0)

	for rows.Next() {
		s, err := scanSection(rows, l)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section rows", err)
	}
	return sections, nil
}

func (r *postgresSectionRepo) Save(ctx context.Context, s *section.Section) error {
	itemsBytes, err := json.Marshal(s.Items)
	if err != nil {
		return apperror.NewInternal("failed to marshal section items", err)
	}

	query := `
		INSERT INTO sections (id, user_id, type, title, items, visible, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		s.ID, s.UserID, s.Type, s.Title, itemsBytes,
		s.Visible, s.DisplayOrder, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save section", err)
	}
	return nil
}

func (r *postgresSectionRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*section.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1 AND user_id = $2`
	return scanSection(r.db.QueryRow(ctx, query, id, userID), r.logger)
}

func (r *postgresSectionRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*section.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query sections", err)
	}
	return scanSections(rows, r.logger)
}

func (r *postgresSectionRepo) ListVisibleByOwner(ctx context.Context, userID uuid.UUID) ([]*section.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE user_id = $1 AND visible = TRUE ORDER BY display_order ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query visible sections", err)
	}
	return scanSections(rows, r.logger)
}

func (r *postgresSectionRepo) Update(ctx context.Context, s *section.Section) error {
	itemsBytes, err := json.Marshal(s.Items)
	if err != nil {
		return apperror.NewInternal("failed to marshal section items", err)
	}

	query := `
		UPDATE sections
		SET title = $1, items = $2, visible = $3, display_order = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`
	tag, err := r.db.Exec(ctx, query,
		s.Title, itemsBytes, s.Visible, s.DisplayOrder, s.UpdatedAt, s.ID, s.UserID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update section", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("section", s.ID.String())
	}
	return nil
}

func (r *postgresSectionRepo) Delete(ctx context.Context, id, userID uuid.UUID) (*section.Section, error) {
	query := `DELETE FROM sections WHERE id = $1 AND user_id = $2 RETURNING ` + sectionColumns
	return scanSection(r.db.QueryRow(ctx, query, id, userID), r.logger)
}
