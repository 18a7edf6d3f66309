package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridcore/internal/domain"
)

const defaultLimit = 50

type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListNotifications(ctx context.Context, personaID string, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, personaID string, now time.Time) error
}

// Service is the best-effort notification sink. Notify never reports failure
// to its caller: delivery problems are logged and swallowed so they cannot
// unwind the operation that triggered them.
type Service struct {
	repo NotificationRepo
}

func New(repo NotificationRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Notify(ctx context.Context, personaID, notifType string, payload map[string]any) {
	_, err := s.repo.CreateNotification(ctx, &domain.Notification{
		PersonaID: personaID,
		Type:      notifType,
		Payload:   payload,
	})
	if err != nil {
		zap.L().Warn("notification delivery failed",
			zap.String("personaId", personaID),
			zap.String("type", notifType),
			zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, personaID string) ([]domain.Notification, error) {
	return s.repo.ListNotifications(ctx, personaID, defaultLimit)
}

func (s *Service) MarkRead(ctx context.Context, notificationID, personaID string) error {
	return s.repo.MarkNotificationRead(ctx, notificationID, personaID, time.Now())
}
