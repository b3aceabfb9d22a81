package access

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// auditor registra cada decisión de acceso en métricas y en el publicador de eventos.
// Un fallo al publicar no cambia la decisión: solo se registra en el log.
type auditor struct {
	publisher ports.EventPublisher
	metrics   Metrics
}

func (a auditor) record(ctx context.Context, canal, credencial, motivo, residenteID string, permitido bool, at time.Time) {
	decision := entity.DecisionDenegado
	if permitido {
		decision = entity.DecisionPermitido
	}
	if a.metrics != nil {
		a.metrics.AccessDecision(canal, decision, motivo)
	}
	if a.publisher == nil {
		return
	}
	ev := entity.AccessEvent{
		ID:          uuid.New().String(),
		Canal:       canal,
		Credencial:  credencial,
		Decision:    decision,
		Motivo:      motivo,
		ResidenteID: residenteID,
		OcurridoEn:  at,
	}
	if err := a.publisher.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("canal", canal).Str("motivo", motivo).Msg("acceso: no se pudo publicar evento")
	}
}
