package service

import (
	"context"
	"sort"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	authRepo "github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/repository"

	"github.com/google/uuid"
)

type EventService interface {
	Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError)
	Agenda(ctx context.Context, creatorID uuid.UUID, from, to string) (*dto.AgendaResponse, *errors.AppError)
	PublicAgenda(ctx context.Context, slug string, from, to string) (*dto.AgendaResponse, *errors.AppError)
}

type eventService struct {
	repo        repository.EventRepositoryInterface
	creatorRepo authRepo.CreatorRepositoryInterface
	now         func() time.Time
}

func NewEventService(repo repository.EventRepositoryInterface, creatorRepo authRepo.CreatorRepositoryInterface) EventService {
	return &eventService{
		repo:        repo,
		creatorRepo: creatorRepo,
		now:         time.Now,
	}
}

func (s *eventService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError) {
	if !req.Type.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "type must be live or call", nil)
	}
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "duration must be positive", nil)
	}
	if _, ok := StartInstant(req.StartDate, req.StartTime); !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start_date/start_time must be a valid UTC date and time", nil)
	}

	event := &entity.Event{
		CreatorID:       creatorID,
		Type:            req.Type,
		Title:           req.Title,
		StartDate:       req.StartDate,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		logger.Error("EventService:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create event", err)
	}
	return created, nil
}

// Agenda returns the creator's events bucketed by their local calendar day and
// decorated with the derived status. Statuses are computed fresh on every call;
// nothing here is persisted.
func (s *eventService) Agenda(ctx context.Context, creatorID uuid.UUID, from, to string) (*dto.AgendaResponse, *errors.AppError) {
	creator, err := s.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load creator", err)
	}
	if creator == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "creator not found", nil)
	}

	loc := LoadViewerLocation(creator.Timezone)
	fromDate, toDate, appErr := resolveRange(from, to, loc, s.now())
	if appErr != nil {
		return nil, appErr
	}

	// Widen the stored-date range by a day each side: a local-day bucket can
	// contain events stored under the neighbouring UTC date.
	events, err := s.repo.GetByCreator(ctx, creatorID, shiftDate(fromDate, -1), shiftDate(toDate, 1))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load events", err)
	}

	return s.buildAgenda(events, loc, fromDate, toDate), nil
}

// PublicAgenda is the visitor view of a creator's schedule, bucketed in the
// creator's own timezone.
func (s *eventService) PublicAgenda(ctx context.Context, slug string, from, to string) (*dto.AgendaResponse, *errors.AppError) {
	creator, err := s.creatorRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to look up creator", err)
	}
	if creator == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "creator not found", nil)
	}
	return s.Agenda(ctx, creator.ID, from, to)
}

func (s *eventService) buildAgenda(events []entity.Event, loc *time.Location, fromDate, toDate string) *dto.AgendaResponse {
	now := s.now()
	buckets := make(map[string][]dto.EventResponse)
	dayKeys := make(map[string]string)

	for _, event := range events {
		localDay, ok := LocalEventDay(event.StartDate, event.StartTime, loc)
		if !ok {
			// Malformed rows still render, under the placeholder bucket.
			buckets[PlaceholderDate] = append(buckets[PlaceholderDate], s.decorate(event, loc, now))
			dayKeys[PlaceholderDate] = PlaceholderDate
			continue
		}

		date := localDay.Format("2006-01-02")
		if date < fromDate || date > toDate {
			continue
		}
		buckets[date] = append(buckets[date], s.decorate(event, loc, now))
		dayKeys[date] = DayKey(localDay)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	resp := &dto.AgendaResponse{Days: []dto.AgendaDay{}}
	for _, date := range dates {
		resp.Days = append(resp.Days, dto.AgendaDay{
			DayKey: dayKeys[date],
			Date:   date,
			Events: buckets[date],
		})
	}
	return resp
}

func (s *eventService) decorate(event entity.Event, loc *time.Location, now time.Time) dto.EventResponse {
	resp := dto.EventResponse{
		ID:              event.ID.String(),
		Type:            event.Type,
		Title:           event.Title,
		LocalTime:       FormatTimeLocal(event.StartDate, event.StartTime, loc),
		DurationMinutes: event.DurationMinutes,
		AttendeeCount:   event.AttendeeCount,
	}

	start, ok := StartInstant(event.StartDate, event.StartTime)
	if !ok {
		// No valid instant means no duration math; leave the status upcoming
		// with no countdown rather than guessing.
		resp.Status = entity.StatusUpcoming
		return resp
	}

	resp.Status = ComputeStatus(start, event.DurationMinutes, now)
	if resp.Status == entity.StatusUpcoming {
		resp.Countdown = CountdownAt(start, now)
	}
	return resp
}

func resolveRange(from, to string, loc *time.Location, now time.Time) (string, string, *errors.AppError) {
	if from == "" && to == "" {
		// Default: the viewer-local week starting today.
		year, month, day := now.In(loc).Date()
		start := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return start.Format("2006-01-02"), start.AddDate(0, 0, 6).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return "", "", errors.NewAppError(errors.ErrInvalidInput, "from must be YYYY-MM-DD", err)
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return "", "", errors.NewAppError(errors.ErrInvalidInput, "to must be YYYY-MM-DD", err)
	}
	if to < from {
		return "", "", errors.NewAppError(errors.ErrInvalidInput, "to must not precede from", nil)
	}
	return from, to, nil
}

func shiftDate(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
