package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	eventEntity "github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/entity"

	"github.com/hibiken/asynq"
)

const TaskTypeDeliver = "notification:deliver"

func NewDeliverTask(req *dto.CreateNotificationRequest) (*asynq.Task, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeDeliver, payload), nil
}

// HandleDeliverTask is the worker-side consumer of queued notifications.
func (s *NotificationService) HandleDeliverTask(ctx context.Context, task *asynq.Task) error {
	var req dto.CreateNotificationRequest
	if err := json.Unmarshal(task.Payload(), &req); err != nil {
		return fmt.Errorf("notification: unmarshal deliver payload: %w", err)
	}

	if err := s.Create(ctx, &req); err != nil {
		logger.Error("NotificationService:HandleDeliverTask:Error:", err)
		return err
	}
	return nil
}

// EventJoinable enqueues the "your event is joinable now" notification the
// status poller fires when an event's join window opens.
func (s *NotificationService) EventJoinable(ctx context.Context, event *eventEntity.Event) error {
	return s.Enqueue(ctx, &dto.CreateNotificationRequest{
		CreatorID: event.CreatorID,
		Title:     "Event starting soon",
		Message:   fmt.Sprintf("%q can be joined now", event.Title),
		Type:      entity.TypeEventJoinable,
		Data: map[string]any{
			"event_id":   event.ID.String(),
			"event_type": string(event.Type),
			"start_date": event.StartDate,
			"start_time": event.StartTime,
		},
	})
}
