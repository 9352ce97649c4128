package service

import (
	"context"
	"fmt"

	"github.com/drivehub/rental-service/notifier/internal/model"
	notifRepo "github.com/drivehub/rental-service/notifier/internal/repository"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sender delivers a composed message to the customer's phone.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

type Service struct {
	log    *zap.Logger
	repo   notifRepo.Repository
	sender Sender
}

func NewService(repo notifRepo.Repository, sender Sender, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		sender: sender,
	}
}

// HandleEvent used by kafka consumer.
func (s *Service) HandleEvent(ctx context.Context, event kafka.NotificationEvent) error {
	message, err := ComposeMessage(event)
	if err != nil {
		return err
	}

	id, err := s.repo.CreateNotification(ctx, model.Notification{
		Kind:       event.Kind,
		Phone:      event.Phone,
		Message:    message,
		BookingUid: event.BookingUid,
	})
	if err != nil {
		return errors.Wrap(err, "persist notification")
	}
	if id == 0 {
		// replayed event, already recorded and delivered
		s.log.Debug("duplicate event skipped", zap.String("kind", event.Kind), zap.String("booking_uid", event.BookingUid))
		return nil
	}

	if err := s.sender.Send(ctx, event.Phone, message); err != nil {
		s.log.Error("send sms", zap.Int("id", id), zap.Error(err))
		return nil
	}
	return s.repo.MarkSent(ctx, id)
}

func (s *Service) ListNotifications(ctx context.Context) (model.NotificationInfo, error) {
	return s.repo.ListNotifications(ctx)
}

func ComposeMessage(event kafka.NotificationEvent) (string, error) {
	switch event.Kind {
	case kafka.EventKindOTPRequested:
		return fmt.Sprintf("Your DriveHub login code is %s. Valid for 5 minutes.", event.OTPCode), nil
	case kafka.EventKindBookingConfirmed:
		return fmt.Sprintf("Booking %s confirmed for %s. Total INR %d.", event.BookingUid, event.CarName, event.Total), nil
	default:
		return "", errors.Errorf("unknown event kind %q", event.Kind)
	}
}

// LogSender writes messages to the log instead of an SMS provider.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("sms")}
}

func (s *LogSender) Send(_ context.Context, phone, message string) error {
	s.log.Info("sms send", zap.String("phone", phone), zap.String("message", message))
	return nil
}
