// Package events publica los eventos de auditoría de portería.
package events

import (
	"context"
	"errors"

	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/pkg/logger"
)

var (
	_ ports.EventPublisher = (*LogPublisher)(nil)
	_ ports.EventPublisher = Multi(nil)
)

// LogPublisher escribe cada decisión en el log estructurado. Es el destino por defecto
// cuando no hay brokers configurados.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher crea el publicador sobre un sublogger "acceso".
func NewLogPublisher(l *logger.Logger) *LogPublisher {
	return &LogPublisher{log: l.Component("acceso")}
}

// Publish nunca falla.
func (p *LogPublisher) Publish(_ context.Context, ev entity.AccessEvent) error {
	e := p.log.Info()
	if !ev.Permitido() {
		e = p.log.Warn()
	}
	e.Str("evento_id", ev.ID).
		Str("canal", ev.Canal).
		Str("credencial", ev.Credencial).
		Str("decision", ev.Decision).
		Str("motivo", ev.Motivo).
		Str("residente_id", ev.ResidenteID).
		Time("ocurrido_en", ev.OcurridoEn).
		Msg("decisión de acceso")
	return nil
}

// Multi reenvía el evento a todos los publicadores y une sus errores.
type Multi []ports.EventPublisher

func (m Multi) Publish(ctx context.Context, ev entity.AccessEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
