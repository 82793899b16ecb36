package impl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/textileio/go-autostaker/pkg/notify"
)

// DefaultTelegramAPIURL is the Telegram Bot API base URL.
const DefaultTelegramAPIURL = "https://api.telegram.org"

// Telegram sends messages to a chat through a Telegram bot.
type Telegram struct {
	apiURL string
	token  string
	chatID string
	client *http.Client
}

var _ notify.Notifier = (*Telegram)(nil)

// NewTelegram returns a Telegram notifier. apiURL may be empty to use the public API.
func NewTelegram(apiURL, token, chatID string) (*Telegram, error) {
	if token == "" || chatID == "" {
		return nil, errors.New("telegram bot token and chat id are required")
	}
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}
	return &Telegram{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

type telegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify calls sendMessage.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	var resp telegramResponse
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.token)
	if err := sendJSONRequest(ctx, t.client, url, telegramMessage{ChatID: t.chatID, Text: text}, &resp); err != nil {
		if resp.Description != "" {
			return fmt.Errorf("telegram sendMessage: %s: %s", err, resp.Description)
		}
		// The url carries the bot token, don't leak it through the error.
		return fmt.Errorf("telegram sendMessage: %s", strings.ReplaceAll(err.Error(), t.token, "<token>"))
	}
	if !resp.OK {
		return fmt.Errorf("telegram sendMessage not ok: %s", resp.Description)
	}
	return nil
}
