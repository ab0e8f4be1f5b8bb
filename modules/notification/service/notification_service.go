package service

import (
	"context"
	"time"

	coreEntity "github.com/devlupca-cloud/njob-creator-sub000/core/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/core/params"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo   *repository.NotificationRepository
	client *asynq.Client
}

func NewNotificationService(repo *repository.NotificationRepository, client *asynq.Client) *NotificationService {
	return &NotificationService{repo: repo, client: client}
}

// Create writes a notification row directly. Background producers should
// prefer Enqueue so delivery happens off their hot path.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		CreatorID: req.CreatorID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Data:      entity.JSONB(req.Data),
		IsRead:    false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

// Enqueue hands the notification to the background worker.
func (s *NotificationService) Enqueue(ctx context.Context, req *dto.CreateNotificationRequest) error {
	task, err := NewDeliverTask(req)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		logger.Error("NotificationService:Enqueue:Error:", err)
		return err
	}
	return nil
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, creatorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByCreatorID(ctx, creatorID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, creatorID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, creatorID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, creatorID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, creatorID)
}

func (s *NotificationService) CountUnread(ctx context.Context, creatorID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, creatorID)
}
