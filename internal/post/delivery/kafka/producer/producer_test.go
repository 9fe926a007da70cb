package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-srv/internal/model"
	kafkaDelivery "content-srv/internal/post/delivery/kafka"
	"content-srv/pkg/log"
)

type published struct {
	key   string
	value kafkaDelivery.PostEventMessage
}

type fakeProducer struct {
	msgs []published
	err  error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	var msg kafkaDelivery.PostEventMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return err
	}
	f.msgs = append(f.msgs, published{key: string(key), value: msg})
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestIndex(t *testing.T) {
	fp := &fakeProducer{}
	p := New(log.NewNop(), fp)

	require.NoError(t, p.Index(context.Background(), model.Post{ID: "p1", Title: "t"}))

	require.Len(t, fp.msgs, 1)
	assert.Equal(t, "p1", fp.msgs[0].key)
	assert.Equal(t, kafkaDelivery.EventTypePostUpserted, fp.msgs[0].value.Type)
	assert.Equal(t, "p1", fp.msgs[0].value.PostID)
	assert.False(t, fp.msgs[0].value.OccurredAt.IsZero())
}

func TestRemove(t *testing.T) {
	fp := &fakeProducer{}
	p := New(log.NewNop(), fp)

	require.NoError(t, p.Remove(context.Background(), []string{"a", "b"}))

	require.Len(t, fp.msgs, 2)
	for i, id := range []string{"a", "b"} {
		assert.Equal(t, id, fp.msgs[i].key)
		assert.Equal(t, kafkaDelivery.EventTypePostDeleted, fp.msgs[i].value.Type)
	}
}

func TestPublishError(t *testing.T) {
	fp := &fakeProducer{err: errors.New("broker down")}
	p := New(log.NewNop(), fp)

	err := p.Index(context.Background(), model.Post{ID: "p1"})
	assert.ErrorContains(t, err, "failed to publish post event")
}
