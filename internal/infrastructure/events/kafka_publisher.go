package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/pkg/config"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// producer subconjunto de *kgo.Client que usa el publicador.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// KafkaPublisher envía los eventos de acceso como JSON al tópico configurado.
// La clave es el canal, así los eventos de un mismo canal conservan el orden.
type KafkaPublisher struct {
	client producer
	topic  string
}

// NewKafkaPublisher conecta con los brokers. Devuelve error si la configuración es inválida.
func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("kafka: sin brokers configurados")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.AccessTopic),
		kgo.ClientID(cfg.ClientID),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka: crear cliente: %w", err)
	}
	return &KafkaPublisher{client: client, topic: cfg.AccessTopic}, nil
}

// Publish produce el evento de forma síncrona.
func (p *KafkaPublisher) Publish(ctx context.Context, ev entity.AccessEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: serializar evento: %w", err)
	}
	rec := &kgo.Record{Topic: p.topic, Key: []byte(ev.Canal), Value: payload}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("kafka: publicar evento %s: %w", ev.ID, err)
	}
	return nil
}

// Close vacía y cierra el cliente.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
