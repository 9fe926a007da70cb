package discord

import (
	"errors"
	"time"

	pkghttp "content-srv/pkg/http"
	"content-srv/pkg/log"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"
	maxContentLength = 2000
	maxDescLength    = 4096

	colorError = 0xE74C3C
	colorBug   = 0xE67E22
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Config contains configuration for the Discord client.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "content-srv",
	}
}

type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  pkghttp.IClient
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload is the body sent to the webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
