package handler

import (
	"context"

	"github.com/drivehub/rental-service/notifier/internal/model"
	"github.com/drivehub/rental-service/notifier/internal/service"
	"github.com/drivehub/rental-service/pkg/kafka"
)

type NotifierService interface {
	ListNotifications(ctx context.Context) (model.NotificationInfo, error)
	HandleEvent(ctx context.Context, event kafka.NotificationEvent) error
}

var _ NotifierService = (*service.Service)(nil)
