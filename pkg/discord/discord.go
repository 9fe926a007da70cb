package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) url() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	body, status, err := d.client.Post(ctx, d.url(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "pkg.discord.send: unexpected status %d: %s", status, string(body))
		return fmt.Errorf("discord: unexpected status %d", status)
	}
	return nil
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: truncate(content, maxContentLength)})
}

// SendError sends an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: truncate(description, maxDescLength),
		Color:       colorError,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), 1024)}}
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{embed}})
}

// ReportBug sends a panic or unexpected failure report.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, WebhookPayload{Embeds: []Embed{{
		Title:       "Bug report",
		Description: truncate(message, maxDescLength),
		Color:       colorBug,
		Timestamp:   time.Now().Format(time.RFC3339),
	}}})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
