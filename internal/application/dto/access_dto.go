package dto

// ── Validación en portería (formato fijo consumido por la app móvil) ─────────

// ValidarPlacaRequest body de POST /api/access/validate-plate (texto leído por el OCR externo).
type ValidarPlacaRequest struct {
	Placa string `json:"placa"`
}

// ValidarPlacaResponse veredicto de placa. Una placa desconocida responde 200 con valido=false.
type ValidarPlacaResponse struct {
	Valido    bool   `json:"valido"`
	Mensaje   string `json:"mensaje"`
	Residente string `json:"residente"`
	Tipo      string `json:"tipo"`
	Unidad    string `json:"unidad,omitempty"`
}

// ValidarQRRequest body de POST /api/access/validate-qr.
type ValidarQRRequest struct {
	CodigoQR string `json:"codigo_qr"`
}

// VisitaResumen identidad del visitante que se muestra al guardia.
type VisitaResumen struct {
	NombreVisitante string `json:"nombre_visitante"`
	ResidenteNombre string `json:"residente_nombre"`
	Unidad          string `json:"unidad"`
}

// ValidarQRResponse veredicto del QR. Visita es null si el código no existe.
type ValidarQRResponse struct {
	Autorizado bool           `json:"autorizado"`
	Mensaje    string         `json:"mensaje"`
	Visita     *VisitaResumen `json:"visita"`
}

// ValidarFacialRequest body de POST /api/access/validate-facial. La imagen es opaca
// (base64 en JSON o archivo multipart).
type ValidarFacialRequest struct {
	Imagen string `json:"imagen" form:"imagen"`
}

// ResidenteFacial datos del residente revelados tras la verificación.
type ResidenteFacial struct {
	Nombre     string  `json:"nombre"`
	Unidad     string  `json:"unidad"`
	FotoPerfil *string `json:"foto_perfil,omitempty"`
}

// ValidarFacialResponse veredicto facial; siempre se responde 200.
type ValidarFacialResponse struct {
	Valido        bool            `json:"valido"`
	Mensaje       string          `json:"mensaje"`
	EsPropietario bool            `json:"es_propietario"`
	Residente     ResidenteFacial `json:"residente"`
}

// ── Registro de visitas y vehículos ──────────────────────────────────────────

// CreateVisitaRequest body de POST /api/visitas. El código QR lo genera el servidor.
type CreateVisitaRequest struct {
	ResidenteID         string `json:"residente_id"`
	NombreVisitante     string `json:"nombre_visitante"`
	DocumentoVisitante  string `json:"documento_visitante,omitempty"`
	FechaVisita         string `json:"fecha_visita"`                    // YYYY-MM-DD
	HoraEntradaEsperada string `json:"hora_entrada_esperada"`           // HH:MM
	HoraSalidaEsperada  string `json:"hora_salida_esperada,omitempty"` // HH:MM
	Notas               string `json:"notas,omitempty"`
}

// VisitaResponse visita en respuestas.
type VisitaResponse struct {
	ID                  string  `json:"id"`
	Residente           string  `json:"residente"`
	ResidenteNombre     string  `json:"residente_nombre,omitempty"`
	NombreVisitante     string  `json:"nombre_visitante"`
	DocumentoVisitante  string  `json:"documento_visitante,omitempty"`
	FechaVisita         string  `json:"fecha_visita"`
	HoraEntradaEsperada string  `json:"hora_entrada_esperada"`
	HoraSalidaEsperada  string  `json:"hora_salida_esperada,omitempty"`
	CodigoQRAcceso      string  `json:"codigo_qr_acceso"`
	HoraEntradaReal     *string `json:"hora_entrada_real"`
	HoraSalidaReal      *string `json:"hora_salida_real"`
	Estado              string  `json:"estado"`
	Notas               string  `json:"notas,omitempty"`
}

// CreateVehiculoRequest body de POST /api/vehiculos. Autorizado por defecto es true.
type CreateVehiculoRequest struct {
	ResidenteID  string `json:"residente_id"`
	Placa        string `json:"placa"`
	Marca        string `json:"marca,omitempty"`
	Modelo       string `json:"modelo,omitempty"`
	Color        string `json:"color,omitempty"`
	TipoVehiculo string `json:"tipo_vehiculo,omitempty"`
	Autorizado   *bool  `json:"autorizado,omitempty"`
}

// VehiculoResponse vehículo autorizado en respuestas.
type VehiculoResponse struct {
	ID              string `json:"id"`
	Residente       string `json:"residente"`
	ResidenteNombre string `json:"residente_nombre,omitempty"`
	Placa           string `json:"placa"`
	Marca           string `json:"marca,omitempty"`
	Modelo          string `json:"modelo,omitempty"`
	Color           string `json:"color,omitempty"`
	TipoVehiculo    string `json:"tipo_vehiculo,omitempty"`
	Autorizado      bool   `json:"autorizado"`
	FechaRegistro   string `json:"fecha_registro"`
}
