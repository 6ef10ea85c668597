package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/luxemoda/storefront-backend/pkg/errors"
)

// Submitter hands a finished order off to an external system.
type Submitter interface {
	Submit(ctx context.Context, order OrderPayload) error
}

// WebhookSubmitter posts the order payload as JSON to an automation webhook.
type WebhookSubmitter struct {
	client *http.Client
	url    string
}

func NewWebhookSubmitter(url string, timeout time.Duration) *WebhookSubmitter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSubmitter{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (w *WebhookSubmitter) Submit(ctx context.Context, order OrderPayload) error {
	body, err := json.Marshal(order)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSubmission, err, "serializing order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSubmission, err, "building webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSubmission, err, "posting order to webhook")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.New(apperrors.CodeSubmission,
			fmt.Sprintf("webhook responded with status %d", resp.StatusCode))
	}
	return nil
}
