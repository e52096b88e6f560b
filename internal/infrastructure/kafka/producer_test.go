package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/roster"
	"github.com/jhoicas/Roster-api/internal/infrastructure/kafka"
)

func newMockProducer(t *testing.T) *mocks.SyncProducer {
	t.Helper()
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, cfg)
	t.Cleanup(func() { _ = sp.Close() })
	return sp
}

func TestChangeProducer_Publish(t *testing.T) {
	sp := newMockProducer(t)
	var sent *sarama.ProducerMessage
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		sent = msg
		return nil
	})
	p := kafka.NewChangeProducer(sp, kafka.Config{Topic: "roster.changes", Source: "test"}, zerolog.Nop())

	err := p.Publish(context.Background(), ports.ChangeEvent{ID: "ev-1", Kind: "DELETE_EMPLOYEE", EmployeeID: 7, Total: 3})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "roster.changes", sent.Topic)
	key, _ := sent.Key.Encode()
	assert.Equal(t, "7", string(key))

	body, _ := sent.Value.Encode()
	var ev ports.ChangeEvent
	require.NoError(t, json.Unmarshal(body, &ev))
	assert.Equal(t, "DELETE_EMPLOYEE", ev.Kind)
	assert.Equal(t, 3, ev.Total)
}

func TestChangeProducer_ErrorDelBroker(t *testing.T) {
	sp := newMockProducer(t)
	sp.ExpectSendMessageAndFail(errors.New("broker caído"))
	p := kafka.NewChangeProducer(sp, kafka.Config{Topic: "roster.changes"}, zerolog.Nop())

	err := p.Publish(context.Background(), ports.ChangeEvent{ID: "ev-2", Kind: "ADD_EMPLOYEE"})

	assert.Error(t, err)
}

func TestChangeFeed_PublicaMutacionesDelStore(t *testing.T) {
	sp := newMockProducer(t)
	kinds := make(chan string, 4)
	for i := 0; i < 2; i++ {
		sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			body, _ := msg.Value.Encode()
			var ev ports.ChangeEvent
			if err := json.Unmarshal(body, &ev); err != nil {
				return err
			}
			kinds <- ev.Kind
			return nil
		})
	}
	store := approster.NewStore(nil, 2, zerolog.Nop())
	feed := approster.NewChangeFeed(kafka.NewChangeProducer(sp, kafka.Config{Topic: "t"}, zerolog.Nop()), 8, zerolog.Nop())
	detach := feed.Attach(store)
	defer detach()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx) }()

	store.Dispatch(roster.SetLoading(true))
	store.Add(entity.Employee{FirstName: "Ada"})
	store.Delete(1)

	for _, want := range []string{"ADD_EMPLOYEE", "DELETE_EMPLOYEE"} {
		select {
		case got := <-kinds:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("no se publicó %s", want)
		}
	}
	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, feed.Dropped())
}
