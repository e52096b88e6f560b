// Package kafka publica el feed de cambios de la plantilla en un tópico de Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/ports"
)

var _ ports.ChangePublisher = (*ChangeProducer)(nil)

// ChangeProducer implementa ports.ChangePublisher sobre un SyncProducer de sarama.
type ChangeProducer struct {
	sp     sarama.SyncProducer
	topic  string
	source string
	log    zerolog.Logger
}

// Config tópico y origen de los mensajes.
type Config struct {
	Topic  string
	Source string
}

func NewChangeProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *ChangeProducer {
	return &ChangeProducer{
		sp:     sp,
		topic:  cfg.Topic,
		source: cfg.Source,
		log:    log.With().Str("component", "ChangeProducer").Logger(),
	}
}

// NewSyncProducer crea el productor con acks de todas las réplicas e idempotencia.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_3_2_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: crear productor: %w", err)
	}
	return sp, nil
}

func (p *ChangeProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

// Publish envía el evento con key = ID del empleado, para que los cambios de un mismo empleado
// caigan en la misma partición.
func (p *ChangeProducer) Publish(_ context.Context, ev ports.ChangeEvent) error {
	if p == nil || p.sp == nil {
		return errors.New("kafka: productor no inicializado")
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: serializar evento: %w", err)
	}
	key := strconv.Itoa(ev.EmployeeID)

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-id"), Value: []byte(ev.ID)},
			{Key: []byte("event-kind"), Value: []byte(ev.Kind)},
			{Key: []byte("source"), Value: []byte(p.source)},
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka: enviar mensaje: %w", err)
	}
	p.log.Debug().
		Str("topic", p.topic).
		Str("key", key).
		Str("kind", ev.Kind).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(body)).
		Msg("cambio publicado")
	return nil
}

// NopPublisher descarta los eventos; se usa cuando no hay brokers configurados.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ports.ChangeEvent) error { return nil }
