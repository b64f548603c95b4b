// Package notifier delivers queued order notifications to the chat bridge webhook.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/jobs"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

// ErrPermanent marks a delivery the receiver rejected; the dispatcher fails the job without retrying.
var ErrPermanent = jobs.ErrPermanent

type webhookMessage struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	Topic   string          `json:"topic"`
	Attempt int32           `json:"attempt"`
	Payload json.RawMessage `json:"payload"`
}

type WebhookSender struct {
	client *resty.Client
	url    string
}

func NewWebhookSender(cfg config.NotifierConfig) *WebhookSender {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "mysterybox-notifier/1")
	return &WebhookSender{client: client, url: cfg.WebhookURL}
}

func (s *WebhookSender) Send(ctx context.Context, job shared.NotificationJob) error {
	payload := json.RawMessage(job.Payload)
	if !json.Valid(payload) {
		return errs.Mark(fmt.Errorf("job %s payload is not valid JSON", job.ID), ErrPermanent)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", job.ID.String()).
		SetBody(webhookMessage{
			ID:      job.ID.String(),
			Kind:    job.Kind,
			Topic:   job.Topic,
			Attempt: job.Attempts,
			Payload: payload,
		}).
		Post(s.url)
	if err != nil {
		return errs.Wrap(err, "webhook request failed")
	}

	switch code := resp.StatusCode(); {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("webhook responded %d", code)
	default:
		return errs.Mark(fmt.Errorf("webhook responded %d: %s", code, resp.String()), ErrPermanent)
	}
}

// LogSender stands in when no webhook is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, job shared.NotificationJob) error {
	s.logger.InfoContext(ctx, "notification (no webhook configured)",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.String("topic", job.Topic),
		slog.Int("payload_bytes", len(job.Payload)))
	return nil
}
