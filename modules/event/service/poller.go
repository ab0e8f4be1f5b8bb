package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/core/realtime"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/repository"

	"github.com/google/uuid"
)

// TransitionNotifier is told when an event's join window opens, so a
// "joinable now" notification can be delivered off the hot path.
type TransitionNotifier interface {
	EventJoinable(ctx context.Context, event *entity.Event) error
}

// StatusPoller re-derives every recent event's status on one shared interval
// instead of a timer per event. Displayed state may lag by up to one tick;
// the only consequence is a delayed UI transition, never a missed booking.
type StatusPoller struct {
	repo     repository.EventRepositoryInterface
	hub      realtime.Hub
	notifier TransitionNotifier
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	last   map[uuid.UUID]entity.EventStatus
	cancel context.CancelFunc
	done   chan struct{}
}

func NewStatusPoller(repo repository.EventRepositoryInterface, hub realtime.Hub, notifier TransitionNotifier) *StatusPoller {
	return &StatusPoller{
		repo:     repo,
		hub:      hub,
		notifier: notifier,
		interval: constants.StatusPollInterval,
		now:      time.Now,
		last:     make(map[uuid.UUID]entity.EventStatus),
	}
}

// Start launches the polling loop. Idempotent; a second call is a no-op.
func (p *StatusPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)
	logger.Info("StatusPoller:Start", "interval", p.interval.String())
}

// Stop cancels the loop and waits for it to drain. Safe to call more than once.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.Info("StatusPoller:Stop")
}

func (p *StatusPoller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick loads events around today (stored dates are UTC; one day of slack on
// each side covers timezone skew) and publishes a refresh for every creator
// whose events changed status since the last pass.
func (p *StatusPoller) tick(ctx context.Context) {
	now := p.now()
	from := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")
	to := now.UTC().AddDate(0, 0, 1).Format("2006-01-02")

	events, err := p.repo.GetWindow(ctx, from, to)
	if err != nil {
		logger.Error("StatusPoller:Tick:GetWindow:Error:", err)
		return
	}

	changedCreators := make(map[uuid.UUID]bool)
	next := make(map[uuid.UUID]entity.EventStatus, len(events))

	p.mu.Lock()
	for i := range events {
		event := events[i]
		start, ok := StartInstant(event.StartDate, event.StartTime)
		if !ok {
			continue
		}

		status := ComputeStatus(start, event.DurationMinutes, now)
		next[event.ID] = status

		prev, seen := p.last[event.ID]
		if !seen || prev == status {
			continue
		}
		changedCreators[event.CreatorID] = true

		if prev == entity.StatusUpcoming && status == entity.StatusAvailable && p.notifier != nil {
			if err := p.notifier.EventJoinable(ctx, &event); err != nil {
				logger.Warn("StatusPoller:Tick:Notify:Error:", "event_id", event.ID, "error", err)
			}
		}
	}
	p.last = next
	p.mu.Unlock()

	for creatorID := range changedCreators {
		topic := fmt.Sprintf(constants.TopicEvents, creatorID)
		if err := p.hub.Publish(ctx, topic, "status-changed"); err != nil {
			logger.Warn("StatusPoller:Tick:Publish:Error:", "creator_id", creatorID, "error", err)
		}
	}
}
