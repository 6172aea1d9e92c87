package listeners

import (
	"context"

	"gearguard/internal/events"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/mq"

	"go.uber.org/zap"
)

// BrokerRelayListener forwards request lifecycle events to the message broker
// with the event name as routing key.
type BrokerRelayListener struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewBrokerRelayListener(publisher mq.Publisher, logger *zap.Logger) *BrokerRelayListener {
	return &BrokerRelayListener{publisher: publisher, logger: logger}
}

func (l *BrokerRelayListener) Register(bus *eventbus.Bus) {
	bus.SubscribeMany(l.handle, events.RequestEventNames...)
	l.logger.Info("broker relay subscribed", zap.Strings("events", events.RequestEventNames))
}

func (l *BrokerRelayListener) handle(ctx context.Context, event eventbus.Event) error {
	if err := l.publisher.Publish(ctx, event.Name(), event); err != nil {
		return err
	}
	l.logger.Debug("event relayed", zap.String("routing_key", event.Name()))
	return nil
}
