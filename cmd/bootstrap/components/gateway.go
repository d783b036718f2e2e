package components

import (
	"fitclass-server/internal/infra/gateway"
	"fitclass-server/internal/pkg/config"
	"fitclass-server/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewAnalyticsPublisher,
		NewSocialNotifier,
		NewCompletionGateway,
	),
)

func NewAnalyticsPublisher(ch *amqp.Channel, cfg config.Config) (gateway.AnalyticsPublisher, error) {
	return gateway.NewAMQPAnalyticsPublisher(ch, cfg.AMQP.CompletedQueue)
}

func NewSocialNotifier(cfg config.Config) gateway.SocialNotifier {
	return gateway.NewHTTPSocialNotifier(cfg.Collaborator.SocialURL, cfg.Collaborator.Timeout)
}

func NewCompletionGateway(analytics gateway.AnalyticsPublisher, social gateway.SocialNotifier, cfg config.Config) commands.CompletionGateway {
	return gateway.NewCollaboratorGateway(analytics, social, cfg.Collaborator.Timeout)
}
