// Package padron lee el padrón de unidades y residentes que exporta la administración del
// condominio (CSV, usualmente desde Excel). Lo usan el seed de PostgreSQL y el modo memoria.
package padron

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// namespace de los IDs deterministas: el mismo padrón produce siempre los mismos IDs.
var namespace = uuid.MustParse("6f1c8c3e-4b1a-4f5e-9d2a-3c7b2e9a1d40")

// Padron unidades y residentes listos para cargar.
type Padron struct {
	Unidades   []entity.Unidad
	Residentes []entity.Residente
}

// Load abre y parsea el archivo indicado.
func Load(path string) (*Padron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("padrón: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse lee un CSV con encabezado. Columnas reconocidas: torre, numero, nombre, telefono,
// es_propietario, foto_perfil (solo numero es obligatoria). Acepta ';' o ',' como separador
// y UTF-8 o ISO-8859-1. Una fila sin nombre registra la unidad desocupada.
func Parse(r io.Reader) (*Padron, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("padrón: leer: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		// Excel en español exporta en Latin-1.
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = detectComma(raw)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("padrón: encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["numero"]; !ok {
		return nil, fmt.Errorf("padrón: falta la columna numero")
	}

	out := &Padron{}
	seen := make(map[string]int) // numero -> índice en Unidades
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("padrón: línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		numero := get("numero")
		if numero == "" {
			if strings.TrimSpace(strings.Join(rec, "")) == "" {
				continue
			}
			return nil, fmt.Errorf("padrón: línea %d: numero vacío", line)
		}
		idx, ok := seen[numero]
		if !ok {
			out.Unidades = append(out.Unidades, entity.Unidad{
				ID:     UnidadID(numero),
				Numero: numero,
				Torre:  get("torre"),
				Activo: true,
			})
			idx = len(out.Unidades) - 1
			seen[numero] = idx
		}

		nombre := get("nombre")
		if nombre == "" {
			continue
		}
		out.Residentes = append(out.Residentes, entity.Residente{
			ID:            ResidenteID(numero, nombre),
			Nombre:        nombre,
			UnidadID:      out.Unidades[idx].ID,
			Telefono:      get("telefono"),
			EsPropietario: parseBool(get("es_propietario")),
			FotoPerfil:    get("foto_perfil"),
		})
	}
	return out, nil
}

// UnidadID ID determinista de la unidad.
func UnidadID(numero string) string {
	return uuid.NewSHA1(namespace, []byte("unidad:"+strings.ToUpper(numero))).String()
}

// ResidenteID ID determinista del residente dentro de su unidad.
func ResidenteID(numero, nombre string) string {
	key := "residente:" + strings.ToUpper(numero) + "|" + strings.ToLower(strings.Join(strings.Fields(nombre), " "))
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

func detectComma(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "si", "sí", "s", "x", "propietario":
		return true
	}
	return false
}
