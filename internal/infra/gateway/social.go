package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/commands"
)

// socialEvent is the "class workout completed" payload. The social side
// deduplicates on event_id.
type socialEvent struct {
	EventID        string  `json:"event_id"`
	ClassID        string  `json:"class_id"`
	UserID         string  `json:"user_id"`
	CaloriesBurned float64 `json:"calories_burned"`
	MechanicalWork float64 `json:"mechanical_work"`
	DurationMin    int     `json:"duration_min"`
	Date           string  `json:"date"`
}

// HTTPSocialNotifier posts one completion event per attendee to the
// social/feed service. Non-2xx responses count as delivery failure; there
// is no synchronous retry.
type HTTPSocialNotifier struct {
	client *http.Client
	url    string
}

func NewHTTPSocialNotifier(url string, timeout time.Duration) *HTTPSocialNotifier {
	return &HTTPSocialNotifier{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (n *HTTPSocialNotifier) Notify(ctx context.Context, ev commands.CompletionEvent) error {
	body, err := json.Marshal(socialEvent{
		EventID:        ev.EventID.String(),
		ClassID:        ev.ClassID.String(),
		UserID:         ev.UserID.String(),
		CaloriesBurned: ev.Calories,
		MechanicalWork: ev.Watts,
		DurationMin:    ev.DurationMin,
		Date:           ev.CompletedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal social event")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build social request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "social request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("social service returned status %d", resp.StatusCode))
	}
	return nil
}
