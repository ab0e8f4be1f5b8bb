package service

import (
	"context"
	"sync"
	"testing"
	"time"

	coreEntity "github.com/devlupca-cloud/njob-creator-sub000/core/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"

	"github.com/google/uuid"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []entity.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	return event, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetByCreator(ctx context.Context, creatorID uuid.UUID, fromDate, toDate string) ([]entity.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetWindow(ctx context.Context, fromDate, toDate string) ([]entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

type fakeHub struct {
	mu     sync.Mutex
	topics []string
}

func (f *fakeHub) Publish(ctx context.Context, topic string, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	return nil
}

func (f *fakeHub) Subscribe(ctx context.Context, topic string, onEvent func(payload string)) (func(), error) {
	return func() {}, nil
}

func (f *fakeHub) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.topics))
	copy(out, f.topics)
	return out
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []uuid.UUID
}

func (f *fakeNotifier) EventJoinable(ctx context.Context, event *entity.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event.ID)
	return nil
}

func (f *fakeNotifier) notified() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uuid.UUID, len(f.events))
	copy(out, f.events)
	return out
}

func newTestEvent(creatorID uuid.UUID, start time.Time) entity.Event {
	return entity.Event{
		CreatorID:       creatorID,
		Type:            entity.EventTypeLive,
		Title:           "morning show",
		StartDate:       start.UTC().Format("2006-01-02"),
		StartTime:       start.UTC().Format("15:04:05"),
		DurationMinutes: 60,
		BaseEntity:      coreEntity.BaseEntity{ID: uuid.New()},
	}
}

func TestPollerDetectsJoinWindowOpening(t *testing.T) {
	creatorID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	event := newTestEvent(creatorID, now.Add(20*time.Minute))

	repo := &fakeEventRepo{events: []entity.Event{event}}
	hub := &fakeHub{}
	notifier := &fakeNotifier{}

	poller := NewStatusPoller(repo, hub, notifier)
	poller.now = func() time.Time { return now }

	ctx := context.Background()

	// First pass: upcoming, nothing to announce yet.
	poller.tick(ctx)
	if got := hub.published(); len(got) != 0 {
		t.Fatalf("first tick published %v, want none", got)
	}
	if got := notifier.notified(); len(got) != 0 {
		t.Fatalf("first tick notified %v, want none", got)
	}

	// Ten minutes later the join buffer is open.
	now = now.Add(10 * time.Minute)
	poller.tick(ctx)

	published := hub.published()
	if len(published) != 1 {
		t.Fatalf("got %d publishes, want 1", len(published))
	}
	wantTopic := "events:" + creatorID.String()
	if published[0] != wantTopic {
		t.Errorf("published topic = %q, want %q", published[0], wantTopic)
	}

	notified := notifier.notified()
	if len(notified) != 1 || notified[0] != event.ID {
		t.Errorf("notified = %v, want [%v]", notified, event.ID)
	}

	// Same status next pass: no duplicate announcements.
	poller.tick(ctx)
	if got := hub.published(); len(got) != 1 {
		t.Errorf("steady state published again: %v", got)
	}
}

func TestPollerFinishTransitionPublishesWithoutNotify(t *testing.T) {
	creatorID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	event := newTestEvent(creatorID, now.Add(-50*time.Minute)) // in progress

	repo := &fakeEventRepo{events: []entity.Event{event}}
	hub := &fakeHub{}
	notifier := &fakeNotifier{}

	poller := NewStatusPoller(repo, hub, notifier)
	poller.now = func() time.Time { return now }

	ctx := context.Background()
	poller.tick(ctx)

	now = now.Add(15 * time.Minute) // past the end
	poller.tick(ctx)

	if got := hub.published(); len(got) != 1 {
		t.Errorf("got %d publishes, want 1", len(got))
	}
	if got := notifier.notified(); len(got) != 0 {
		t.Errorf("finish transition should not notify, got %v", got)
	}
}

func TestPollerStartStop(t *testing.T) {
	repo := &fakeEventRepo{}
	poller := NewStatusPoller(repo, &fakeHub{}, &fakeNotifier{})
	poller.interval = 5 * time.Millisecond

	ctx := context.Background()
	poller.Start(ctx)
	poller.Start(ctx) // idempotent

	time.Sleep(20 * time.Millisecond)

	poller.Stop()
	poller.Stop() // safe to repeat
}
