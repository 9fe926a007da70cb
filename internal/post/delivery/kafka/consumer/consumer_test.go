package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-srv/config"
	"content-srv/internal/model"
	"content-srv/internal/post"
	kafkaDelivery "content-srv/internal/post/delivery/kafka"
	"content-srv/pkg/log"
	"content-srv/pkg/scope"
)

type fakeUseCase struct {
	post.UseCase
	inputs []post.SyncIndexInput
	scopes []model.Scope
	err    error
	failID string
}

func (f *fakeUseCase) SyncIndex(ctx context.Context, input post.SyncIndexInput) error {
	f.inputs = append(f.inputs, input)
	f.scopes = append(f.scopes, scope.GetScopeFromContext(ctx))
	if f.failID != "" && input.ID == f.failID {
		return errors.New("index failed")
	}
	return f.err
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	marked []int64
}

func (s *fakeSession) Context() context.Context { return context.Background() }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newConsumer(t *testing.T, uc post.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	uc := &fakeUseCase{}
	tcs := map[string]Config{
		"no logger":  {UseCase: uc, KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}},
		"no usecase": {Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}},
		"no brokers": {Logger: log.NewNop(), UseCase: uc},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestDefaults(t *testing.T) {
	c := newConsumer(t, &fakeUseCase{})
	assert.Equal(t, kafkaDelivery.ConsumerGroupPostIndexing, c.groupID())
	assert.Equal(t, kafkaDelivery.TopicPostEvents, c.topic())
	assert.NoError(t, c.Close())
}

func TestHandlePostEventMessage(t *testing.T) {
	tcs := map[string]struct {
		value  string
		inputs []post.SyncIndexInput
	}{
		"upserted": {
			value:  `{"type":"post.upserted","post_id":"p1"}`,
			inputs: []post.SyncIndexInput{{ID: "p1"}},
		},
		"deleted": {
			value:  `{"type":"post.deleted","post_id":"p1"}`,
			inputs: []post.SyncIndexInput{{ID: "p1", Deleted: true}},
		},
		"malformed json is skipped": {value: `{`},
		"missing id is skipped":     {value: `{"type":"post.upserted"}`},
		"unknown type is skipped":   {value: `{"type":"post.liked","post_id":"p1"}`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			c := newConsumer(t, uc)

			err := c.handlePostEventMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tc.value)})
			require.NoError(t, err)
			assert.Equal(t, tc.inputs, uc.inputs)
			for _, sc := range uc.scopes {
				assert.Equal(t, model.SystemUserID, sc.UserID)
			}
		})
	}
}

func TestHandlePostEventMessage_UseCaseError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("qdrant down")}
	c := newConsumer(t, uc)

	err := c.handlePostEventMessage(context.Background(), &sarama.ConsumerMessage{
		Value: []byte(`{"type":"post.upserted","post_id":"p1"}`),
	})
	assert.ErrorContains(t, err, "qdrant down")
}

func TestConsumeClaim_MarksHandledMessages(t *testing.T) {
	uc := &fakeUseCase{failID: "p2"}
	c := newConsumer(t, uc)

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"type":"post.upserted","post_id":"p1"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`{"type":"post.upserted","post_id":"p2"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{`)}
	close(claim.messages)

	session := &fakeSession{}
	h := &postEventsHandler{consumer: c}
	require.NoError(t, h.ConsumeClaim(session, claim))

	// The failed offset is not marked; marking 3 moves the committed offset past it.
	assert.Equal(t, []int64{1, 3}, session.marked)
	assert.Len(t, uc.inputs, 2)
}
