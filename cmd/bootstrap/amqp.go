package bootstrap

import (
	"context"
	"log/slog"

	"fitclass-server/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewAMQPChannel,
	),
)

func NewAMQPChannel(lc fx.Lifecycle, cfg config.Config) (*amqp.Channel, error) {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := ch.Close(); err != nil {
				slog.Warn("failed to close AMQP channel", "error", err.Error())
			}
			return conn.Close()
		},
	})

	slog.Info("AMQP connected", "queue", cfg.AMQP.CompletedQueue)
	return ch, nil
}
