package repository

import (
	"context"
	"database/sql"

	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `id, creator_id, type, title, start_date, start_time, duration_minutes, attendee_count, created_at, updated_at`

type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetByCreator(ctx context.Context, creatorID uuid.UUID, fromDate, toDate string) ([]entity.Event, error)
	GetWindow(ctx context.Context, fromDate, toDate string) ([]entity.Event, error)
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (creator_id, type, title, start_date, start_time, duration_minutes, attendee_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.CreatorID, event.Type, event.Title,
		event.StartDate, event.StartTime, event.DurationMinutes, event.AttendeeCount)
	if err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

// GetByCreator returns the creator's events whose stored UTC date falls inside
// [fromDate, toDate]. The range is queried one day wide on each side so that
// local-day bucketing never loses an event stored under a neighbouring UTC date.
func (r *EventRepository) GetByCreator(ctx context.Context, creatorID uuid.UUID, fromDate, toDate string) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE creator_id = $1 AND start_date BETWEEN $2 AND $3
		ORDER BY start_date, start_time
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, creatorID, fromDate, toDate)
	if err != nil {
		logger.Error("EventRepository:GetByCreator:Error:", err)
		return nil, err
	}
	return events, nil
}

// GetWindow returns every creator's events in the date window; the status
// poller uses it to re-derive statuses with one query per tick.
func (r *EventRepository) GetWindow(ctx context.Context, fromDate, toDate string) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_date BETWEEN $1 AND $2
		ORDER BY start_date, start_time
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, fromDate, toDate)
	if err != nil {
		logger.Error("EventRepository:GetWindow:Error:", err)
		return nil, err
	}
	return events, nil
}
