package discord

import (
	"context"

	pkghttp "content-srv/pkg/http"
	"content-srv/pkg/log"
)

// IDiscord posts operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a Discord client. It fails when the webhook is not configured.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.RetryCount,
			RetryWait: cfg.RetryDelay,
		}),
	}, nil
}
