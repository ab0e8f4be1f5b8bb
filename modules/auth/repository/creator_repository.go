package repository

import (
	"context"
	"database/sql"

	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/entity"

	"github.com/google/uuid"
)

const creatorColumns = `id, email, password, display_name, slug, timezone, created_at, updated_at`

type CreatorRepository struct {
	DB database.Database
}

func NewCreatorRepository(db database.Database) *CreatorRepository {
	return &CreatorRepository{DB: db}
}

type CreatorRepositoryInterface interface {
	Create(ctx context.Context, creator *entity.Creator) (*entity.Creator, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Creator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Creator, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Creator, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateProfile(ctx context.Context, creator *entity.Creator) error
}

func (r *CreatorRepository) Create(ctx context.Context, creator *entity.Creator) (*entity.Creator, error) {
	query := `
		INSERT INTO creators (email, password, display_name, slug, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + creatorColumns

	var created entity.Creator
	err := r.DB.GetContext(ctx, &created, query,
		creator.Email, creator.Password, creator.DisplayName, creator.Slug, creator.Timezone)
	if err != nil {
		logger.Error("CreatorRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *CreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Creator, error) {
	return r.getOne(ctx, `SELECT `+creatorColumns+` FROM creators WHERE id = $1`, id)
}

func (r *CreatorRepository) GetByEmail(ctx context.Context, email string) (*entity.Creator, error) {
	return r.getOne(ctx, `SELECT `+creatorColumns+` FROM creators WHERE email = $1`, email)
}

func (r *CreatorRepository) GetBySlug(ctx context.Context, slug string) (*entity.Creator, error) {
	return r.getOne(ctx, `SELECT `+creatorColumns+` FROM creators WHERE slug = $1`, slug)
}

func (r *CreatorRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM creators WHERE slug = $1)`, slug)
	if err != nil {
		logger.Error("CreatorRepository:SlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *CreatorRepository) UpdateProfile(ctx context.Context, creator *entity.Creator) error {
	query := `
		UPDATE creators
		SET display_name = $2, timezone = $3, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query, creator.ID, creator.DisplayName, creator.Timezone)
	if err != nil {
		logger.Error("CreatorRepository:UpdateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *CreatorRepository) getOne(ctx context.Context, query string, arg any) (*entity.Creator, error) {
	var creator entity.Creator
	err := r.DB.GetContext(ctx, &creator, query, arg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CreatorRepository:Get:Error:", err)
		return nil, err
	}
	return &creator, nil
}
