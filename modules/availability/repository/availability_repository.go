package repository

import (
	"context"

	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"

	"github.com/google/uuid"
)

type AvailabilityRepository struct {
	DB database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

type AvailabilityRepositoryInterface interface {
	ReplaceDay(ctx context.Context, payload dto.AvailabilityPayload) error
	GetDay(ctx context.Context, creatorID uuid.UUID, date string) ([]entity.AvailabilitySlot, error)
}

// ReplaceDay swaps the creator's slot rows for one date in a single
// transaction, so two sessions saving the same day can never interleave into a
// torn merge: the later commit wins wholesale.
func (r *AvailabilityRepository) ReplaceDay(ctx context.Context, payload dto.AvailabilityPayload) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceDay:Begin:Error:", err)
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM availability_slots WHERE creator_id = $1 AND availability_date = $2`,
		payload.CreatorID, payload.AvailabilityDate)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceDay:Delete:Error:", err)
		return err
	}

	insert := `
		INSERT INTO availability_slots (creator_id, availability_date, period, slot_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (creator_id, availability_date, period, slot_time) DO NOTHING
	`
	for _, slot := range payload.Slots {
		if _, err = tx.ExecContext(ctx, insert,
			payload.CreatorID, payload.AvailabilityDate, slot.Period, slot.SlotTime); err != nil {
			logger.Error("AvailabilityRepository:ReplaceDay:Insert:Error:", err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:ReplaceDay:Commit:Error:", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) GetDay(ctx context.Context, creatorID uuid.UUID, date string) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, creator_id, availability_date, period, slot_time, created_at, updated_at
		FROM availability_slots
		WHERE creator_id = $1 AND availability_date = $2
		ORDER BY period, slot_time
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, creatorID, date)
	if err != nil {
		logger.Error("AvailabilityRepository:GetDay:Error:", err)
		return nil, err
	}
	return slots, nil
}
