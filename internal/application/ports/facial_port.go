package ports

import "context"

// FacialVerifier define el puerto de salida hacia el servicio externo de reconocimiento facial.
// La imagen es opaca para esta API: solo se reenvía.
type FacialVerifier interface {
	// Identify devuelve el ID del residente reconocido, o "" si no hubo coincidencia.
	// El contexto debe llevar un timeout para evitar bloqueos en la portería.
	Identify(ctx context.Context, imagen []byte) (string, error)
}
