package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/notify"
)

var (
	json          = jsoniter.ConfigCompatibleWithStandardLibrary
	webhookLogger = logger.With().Str("component", "webhook").Logger()
)

// Common function to send a JSON POST request. The decoded response body is written
// into out when it's not nil.
func sendJSONRequest(ctx context.Context, client *http.Client, url string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	postData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request JSON: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(postData))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %s", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			webhookLogger.Error().Err(err).Msg("closing")
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response body: %s", err)
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil && resp.StatusCode < 400 {
			return fmt.Errorf("unmarshaling response: %s", err)
		}
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}

	return nil
}

// DiscordWebhook posts messages to a Discord channel webhook.
type DiscordWebhook struct {
	// URL is the webhook URL.
	URL string

	client *http.Client
}

var _ notify.Notifier = (*DiscordWebhook)(nil)

// NewDiscordWebhook validates urlStr and returns a Discord notifier.
func NewDiscordWebhook(urlStr string) (*DiscordWebhook, error) {
	urlObject, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url: %s", err)
	}
	if urlObject.Scheme != "https" && urlObject.Scheme != "http" {
		return nil, fmt.Errorf("invalid webhook url scheme %q", urlObject.Scheme)
	}
	if urlObject.Hostname() == "" {
		return nil, fmt.Errorf("invalid webhook url")
	}

	return &DiscordWebhook{
		URL:    urlObject.String(),
		client: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// Notify sends text as the webhook message content.
func (w *DiscordWebhook) Notify(ctx context.Context, text string) error {
	// Discord requires that the data should be placed in the "content" field.
	body := struct {
		Content string `json:"content"`
	}{Content: text}
	if err := sendJSONRequest(ctx, w.client, w.URL, body, nil); err != nil {
		return fmt.Errorf("discord webhook: %s", err)
	}
	return nil
}
