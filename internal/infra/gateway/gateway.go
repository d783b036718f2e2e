// Package gateway delivers completion events to the external
// collaborators. Deliveries are independent and bounded; failures are
// logged and reported, never raised back into the completion pipeline.
package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fitclass-server/internal/usecase/commands"
)

// AnalyticsPublisher is the analytics sink channel.
type AnalyticsPublisher interface {
	Publish(ctx context.Context, ev commands.CompletionEvent) error
}

// SocialNotifier is the social/feed service channel. The service
// deduplicates on event id, so repeated delivery is safe.
type SocialNotifier interface {
	Notify(ctx context.Context, ev commands.CompletionEvent) error
}

type CollaboratorGateway struct {
	analytics AnalyticsPublisher
	social    SocialNotifier
	timeout   time.Duration
}

func NewCollaboratorGateway(analytics AnalyticsPublisher, social SocialNotifier, timeout time.Duration) *CollaboratorGateway {
	return &CollaboratorGateway{
		analytics: analytics,
		social:    social,
		timeout:   timeout,
	}
}

// NotifyCompletion attempts both deliveries concurrently and waits for
// both to settle. One collaborator failing never blocks or rolls back the
// other.
func (g *CollaboratorGateway) NotifyCompletion(ctx context.Context, ev commands.CompletionEvent) commands.DeliveryReport {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var (
		wg           sync.WaitGroup
		analyticsErr error
		socialErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		analyticsErr = g.analytics.Publish(ctx, ev)
	}()
	go func() {
		defer wg.Done()
		socialErr = g.social.Notify(ctx, ev)
	}()
	wg.Wait()

	report := commands.DeliveryReport{
		AnalyticsDelivered: analyticsErr == nil,
		SocialDelivered:    socialErr == nil,
	}

	if analyticsErr != nil {
		logDeliveryFailure("analytics", ev, analyticsErr)
	}
	if socialErr != nil {
		logDeliveryFailure("social", ev, socialErr)
	}
	return report
}

func logDeliveryFailure(collaborator string, ev commands.CompletionEvent, err error) {
	slog.Warn("collaborator delivery failed",
		"collaborator", collaborator,
		"event_id", ev.EventID.String(),
		"class_id", ev.ClassID.String(),
		"user_id", ev.UserID.String(),
		"error", err.Error())
}
