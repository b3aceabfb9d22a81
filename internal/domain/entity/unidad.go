package entity

// Unidad representa un departamento o casa del condominio. La administra el registro externo;
// aquí solo se lee para etiquetas y ocupación.
type Unidad struct {
	ID     string
	Numero string // identificador único, ej: A-101
	Torre  string
	Activo bool
}

// Label devuelve la etiqueta visible de la unidad ("Torre A - 101" o solo el número).
func (u Unidad) Label() string {
	if u.Torre != "" {
		return u.Torre + " - " + u.Numero
	}
	return u.Numero
}
