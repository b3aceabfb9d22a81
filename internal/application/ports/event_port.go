package ports

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// EventPublisher define el puerto de salida para los eventos de auditoría de acceso.
// Adaptadores: log estructurado (zerolog) o Kafka (franz-go).
type EventPublisher interface {
	Publish(ctx context.Context, event entity.AccessEvent) error
}
