package impl

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/textileio/go-autostaker/pkg/notify"
)

// Config holds the credentials of every supported channel. A channel is enabled when
// its credentials are set.
type Config struct {
	TelegramAPIURL   string
	TelegramBotToken string
	TelegramChatID   string
	DiscordWebhook   string
}

// NewNotifier builds the notifier for the configured channels. With no channel
// configured it returns notify.Noop.
func NewNotifier(config Config) (notify.Notifier, error) {
	var notifiers Multi
	if config.TelegramBotToken != "" && config.TelegramChatID != "" {
		tg, err := NewTelegram(config.TelegramAPIURL, config.TelegramBotToken, config.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("creating telegram notifier: %s", err)
		}
		notifiers = append(notifiers, tg)
	}
	if config.DiscordWebhook != "" {
		dw, err := NewDiscordWebhook(config.DiscordWebhook)
		if err != nil {
			return nil, fmt.Errorf("creating discord notifier: %s", err)
		}
		notifiers = append(notifiers, dw)
	}

	switch len(notifiers) {
	case 0:
		return notify.Noop{}, nil
	case 1:
		return notifiers[0], nil
	default:
		return notifiers, nil
	}
}

// Multi fans a message out to every notifier. Every notifier is tried, and the errors
// are joined.
type Multi []notify.Notifier

// Notify sends text through every notifier.
func (m Multi) Notify(ctx context.Context, text string) error {
	var result *multierror.Error
	for _, n := range m {
		if err := n.Notify(ctx, text); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
