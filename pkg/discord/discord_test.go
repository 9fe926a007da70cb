package discord

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"content-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	url    string
	body   any
	status int
}

func (f *fakeClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return nil, f.status, nil
}

func (f *fakeClient) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	f.url = url
	f.body = body
	return nil, f.status, nil
}

func newTestDiscord(status int) (*discordImpl, *fakeClient) {
	fc := &fakeClient{status: status}
	return &discordImpl{
		l:       log.NewNop(),
		webhook: &DiscordWebhook{ID: "id", Token: "tok"},
		config:  DefaultConfig(),
		client:  fc,
	}, fc
}

func TestNew_RequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), &DiscordWebhook{ID: "id"})
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestSendError(t *testing.T) {
	d, fc := newTestDiscord(http.StatusNoContent)

	err := d.SendError(context.Background(), "Panic", "boom", errors.New("nil map"))
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/id/tok", fc.url)

	payload, ok := fc.body.(WebhookPayload)
	require.True(t, ok)
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "content-srv", payload.Username)
	assert.Equal(t, "nil map", payload.Embeds[0].Fields[0].Value)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	d, _ := newTestDiscord(http.StatusBadRequest)
	assert.Error(t, d.SendMessage(context.Background(), "hi"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 10)
	assert.Equal(t, "aaaa...", truncate(long, 7))
	assert.Equal(t, "abc", truncate("abc", 7))
}
