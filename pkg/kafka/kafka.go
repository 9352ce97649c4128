package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	NotificationTopic         = "rental.notifications"
	NotifierConsumerGroup     = "notifier"
	EventKindBookingConfirmed = "booking.confirmed"
	EventKindOTPRequested     = "otp.requested"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// NotificationEvent is the payload shared by the rental producer and the
// notifier consumer.
type NotificationEvent struct {
	Kind       string    `json:"kind"`
	Phone      string    `json:"phone"`
	BookingUid string    `json:"bookingUid,omitempty"`
	CarName    string    `json:"carName,omitempty"`
	Total      int64     `json:"total,omitempty"`
	OTPCode    string    `json:"otpCode,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group session loop until ctx is cancelled.
// sarama requires re-entering Consume after every rebalance.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
