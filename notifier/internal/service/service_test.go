package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/drivehub/rental-service/notifier/internal/model"
	"github.com/drivehub/rental-service/notifier/internal/service"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoStub struct {
	created []model.Notification
	sentIDs []int
}

func (r *repoStub) CreateNotification(_ context.Context, n model.Notification) (int, error) {
	if n.BookingUid != "" {
		for _, prev := range r.created {
			if prev.Kind == n.Kind && prev.BookingUid == n.BookingUid {
				return 0, nil
			}
		}
	}
	r.created = append(r.created, n)
	return len(r.created), nil
}

func (r *repoStub) MarkSent(_ context.Context, id int) error {
	r.sentIDs = append(r.sentIDs, id)
	return nil
}

func (r *repoStub) ListNotifications(_ context.Context) (model.NotificationInfo, error) {
	return model.NotificationInfo{Data: r.created}, nil
}

type senderStub struct {
	sent []string
	err  error
}

func (s *senderStub) Send(_ context.Context, phone, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, phone+": "+message)
	return nil
}

func TestComposeMessage(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name    string
		event   kafka.NotificationEvent
		want    string
		wantErr bool
	}{
		{
			name: "otp",
			event: kafka.NotificationEvent{
				Kind:    kafka.EventKindOTPRequested,
				Phone:   "+919876543210",
				OTPCode: "123456",
			},
			want: "Your DriveHub login code is 123456. Valid for 5 minutes.",
		},
		{
			name: "booking confirmed",
			event: kafka.NotificationEvent{
				Kind:       kafka.EventKindBookingConfirmed,
				Phone:      "+919876543210",
				BookingUid: "c1c3f9a2-0000-4000-8000-000000000042",
				CarName:    "Swift Dzire",
				Total:      240,
			},
			want: "Booking c1c3f9a2-0000-4000-8000-000000000042 confirmed for Swift Dzire. Total INR 240.",
		},
		{
			name:    "unknown kind",
			event:   kafka.NotificationEvent{Kind: "booking.torn"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := service.ComposeMessage(tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_HandleEvent(t *testing.T) {
	t.Parallel()

	event := kafka.NotificationEvent{
		Kind:       kafka.EventKindBookingConfirmed,
		Phone:      "+919876543210",
		BookingUid: "c1c3f9a2-0000-4000-8000-000000000042",
		CarName:    "Swift Dzire",
		Total:      240,
		OccurredAt: time.Now().UTC(),
	}

	t.Run("persisted and marked sent", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{}
		sender := &senderStub{}
		svc := service.NewService(repo, sender, zap.NewNop())

		require.NoError(t, svc.HandleEvent(context.Background(), event))
		require.Len(t, repo.created, 1)
		require.Equal(t, event.Phone, repo.created[0].Phone)
		require.Equal(t, event.BookingUid, repo.created[0].BookingUid)
		require.Equal(t, []int{1}, repo.sentIDs)
		require.Len(t, sender.sent, 1)
	})

	t.Run("replayed booking event is delivered once", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{}
		sender := &senderStub{}
		svc := service.NewService(repo, sender, zap.NewNop())

		require.NoError(t, svc.HandleEvent(context.Background(), event))
		require.NoError(t, svc.HandleEvent(context.Background(), event))
		require.Len(t, repo.created, 1)
		require.Len(t, sender.sent, 1)
		require.Equal(t, []int{1}, repo.sentIDs)
	})

	t.Run("send failure keeps row unsent", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{}
		sender := &senderStub{err: errors.New("provider down")}
		svc := service.NewService(repo, sender, zap.NewNop())

		require.NoError(t, svc.HandleEvent(context.Background(), event))
		require.Len(t, repo.created, 1)
		require.Empty(t, repo.sentIDs)
	})

	t.Run("unknown kind is rejected before persist", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{}
		svc := service.NewService(repo, &senderStub{}, zap.NewNop())

		require.Error(t, svc.HandleEvent(context.Background(), kafka.NotificationEvent{Kind: "nope"}))
		require.Empty(t, repo.created)
	})
}
