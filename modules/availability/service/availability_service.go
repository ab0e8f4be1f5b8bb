package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/core/realtime"
	authRepo "github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/repository"

	"github.com/google/uuid"
)

const dayCacheTTL = 5 * time.Minute

type AvailabilityService interface {
	Catalog() *dto.CatalogResponse
	SaveDay(ctx context.Context, creatorID uuid.UUID, date string, req *dto.SaveDayRequest) (*dto.DayResponse, *errors.AppError)
	GetDay(ctx context.Context, creatorID uuid.UUID, date string) (*dto.DayResponse, *errors.AppError)
	PublicDay(ctx context.Context, slug string, date string) (*dto.DayResponse, *errors.AppError)
}

type availabilityService struct {
	repo        repository.AvailabilityRepositoryInterface
	creatorRepo authRepo.CreatorRepositoryInterface
	cache       cache.Cache
	hub         realtime.Hub
}

func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	creatorRepo authRepo.CreatorRepositoryInterface,
	c cache.Cache,
	hub realtime.Hub,
) AvailabilityService {
	return &availabilityService{
		repo:        repo,
		creatorRepo: creatorRepo,
		cache:       c,
		hub:         hub,
	}
}

// Catalog returns the fixed selectable grid for the editor.
func (s *availabilityService) Catalog() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Morning:   GenerateTimeSlots(entity.PeriodMorning),
		Afternoon: GenerateTimeSlots(entity.PeriodAfternoon),
		Night:     GenerateTimeSlots(entity.PeriodNight),
		Overnight: GenerateTimeSlots(entity.PeriodOvernight),
	}
}

// SaveDay persists the creator's selections for one local calendar date and
// returns the authoritative read-back. The client never trusts its optimistic
// state; what the database holds after the save is the truth.
func (s *availabilityService) SaveDay(ctx context.Context, creatorID uuid.UUID, date string, req *dto.SaveDayRequest) (*dto.DayResponse, *errors.AppError) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}

	if appErr := validateSelections(req); appErr != nil {
		return nil, appErr
	}

	payload := BuildDayPayload(creatorID, day, req.Morning, req.Afternoon, req.Night, req.Overnight)

	if err := s.repo.ReplaceDay(ctx, payload); err != nil {
		logger.Error("AvailabilityService:SaveDay:ReplaceDay:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save availability", err)
	}

	_ = s.cache.Del(ctx, dayCacheKey(creatorID, payload.AvailabilityDate))

	topic := fmt.Sprintf(constants.TopicAvailability, creatorID)
	if err := s.hub.Publish(ctx, topic, payload.AvailabilityDate); err != nil {
		logger.Warn("AvailabilityService:SaveDay:Publish:Error:", err)
	}

	return s.GetDay(ctx, creatorID, payload.AvailabilityDate)
}

// GetDay returns the saved selections for one date, grouped by period.
func (s *availabilityService) GetDay(ctx context.Context, creatorID uuid.UUID, date string) (*dto.DayResponse, *errors.AppError) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}

	key := dayCacheKey(creatorID, date)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
		var resp dto.DayResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			return &resp, nil
		}
	}

	slots, err := s.repo.GetDay(ctx, creatorID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load availability", err)
	}

	resp := groupByPeriod(date, slots)

	if encoded, err := json.Marshal(resp); err == nil {
		_ = s.cache.Set(ctx, key, string(encoded), dayCacheTTL)
	}
	return resp, nil
}

// PublicDay returns a creator's open slots for visitors of the public agenda page.
func (s *availabilityService) PublicDay(ctx context.Context, slug string, date string) (*dto.DayResponse, *errors.AppError) {
	creator, err := s.creatorRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up creator", err)
	}
	if creator == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "creator not found", nil)
	}
	return s.GetDay(ctx, creator.ID, date)
}

func validateSelections(req *dto.SaveDayRequest) *errors.AppError {
	check := func(period entity.Period, slots []string) *errors.AppError {
		seen := make(map[string]bool, len(slots))
		for _, slot := range slots {
			if !InCatalog(period, slot) {
				return errors.NewAppError(errors.ErrInvalidInput,
					fmt.Sprintf("slot %s is not in the %s catalog", slot, period), nil)
			}
			if seen[slot] {
				return errors.NewAppError(errors.ErrInvalidInput,
					fmt.Sprintf("slot %s listed twice for %s", slot, period), nil)
			}
			seen[slot] = true
		}
		return nil
	}

	if err := check(entity.PeriodMorning, req.Morning); err != nil {
		return err
	}
	if err := check(entity.PeriodAfternoon, req.Afternoon); err != nil {
		return err
	}
	if err := check(entity.PeriodNight, req.Night); err != nil {
		return err
	}
	return check(entity.PeriodOvernight, req.Overnight)
}

func groupByPeriod(date string, slots []entity.AvailabilitySlot) *dto.DayResponse {
	resp := &dto.DayResponse{
		Date:      date,
		Morning:   []string{},
		Afternoon: []string{},
		Night:     []string{},
		Overnight: []string{},
	}
	for _, slot := range slots {
		switch slot.Period {
		case entity.PeriodMorning:
			resp.Morning = append(resp.Morning, slot.SlotTime)
		case entity.PeriodAfternoon:
			resp.Afternoon = append(resp.Afternoon, slot.SlotTime)
		case entity.PeriodNight:
			resp.Night = append(resp.Night, slot.SlotTime)
		case entity.PeriodOvernight:
			resp.Overnight = append(resp.Overnight, slot.SlotTime)
		}
	}
	return resp
}

func dayCacheKey(creatorID uuid.UUID, date string) string {
	return constants.RedisKeyAvailabilityDay + creatorID.String() + ":" + date
}
