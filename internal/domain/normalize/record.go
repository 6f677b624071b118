// Package normalize convierte las respuestas JSON del backend, de forma
// inconsistente entre despliegues, en los registros canónicos de
// internal/domain/entity.
//
// Reglas generales:
//   - Cada campo canónico se resuelve con una cadena de sinónimos: una lista
//     ordenada de rutas (posiblemente anidadas) que se prueban hasta que una
//     produce un valor no nulo.
//   - Un payload malformado nunca produce un error: el peor caso es un
//     registro con campos vacíos, cero o nil. Los fallos de transporte se
//     reportan en la capa rest; los desajustes de forma en un 200 se absorben
//     aquí en silencio, porque el contrato del backend no es estable.
//   - Todo es puro y determinista: normalizar dos veces el mismo payload
//     produce exactamente el mismo registro.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Record es un objeto JSON crudo ya decodificado (json.Unmarshal sobre any).
// Un Record nil se comporta como un objeto vacío: toda resolución devuelve
// el valor por defecto.
type Record map[string]any

// AsRecord interpreta un valor JSON arbitrario como objeto.
// Devuelve nil si el valor no es un objeto.
func AsRecord(v any) Record {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// get resuelve una ruta con puntos ("contact.name") dentro del record.
// Devuelve nil si cualquier segmento falta o no es un objeto.
func (r Record) get(path string) any {
	if r == nil {
		return nil
	}
	segments := strings.Split(path, ".")
	var current any = map[string]any(r)
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[seg]
		if current == nil {
			return nil
		}
	}
	return current
}

// First devuelve el valor de la primera ruta que produce algo no nulo,
// o nil si ninguna lo hace. Es la primitiva de cadena de sinónimos: el
// orden de las rutas define la precedencia.
func (r Record) First(paths ...string) any {
	for _, p := range paths {
		if v := r.get(p); v != nil {
			return v
		}
	}
	return nil
}

// ── Coerciones escalares ──────────────────────────────────────────────────────

// asString convierte un escalar JSON a string. Los números se formatean sin
// decimales sobrantes (el id numérico 7 queda "7", no "7.000000").
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// asNumber aplica la conversión numérica estricta: números JSON finitos y
// strings numéricos convierten; booleanos, objetos y strings no numéricos no.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ── Resolución tipada ─────────────────────────────────────────────────────────

// StringOr resuelve la cadena de rutas y coerciona a string; def si ninguna
// ruta produce un escalar.
func (r Record) StringOr(def string, paths ...string) string {
	v := r.First(paths...)
	if v == nil {
		return def
	}
	s, ok := asString(v)
	if !ok {
		return def
	}
	return s
}

// StringPtr resuelve a string opcional: nil cuando no hay valor o el valor
// coercionado queda vacío.
func (r Record) StringPtr(paths ...string) *string {
	for _, p := range paths {
		v := r.get(p)
		if v == nil {
			continue
		}
		s, ok := asString(v)
		if !ok || s == "" {
			continue
		}
		return &s
	}
	return nil
}

// NumberOr resuelve un numérico obligatorio: si no hay valor o no convierte,
// devuelve def. Nunca deja pasar NaN ni infinitos.
func (r Record) NumberOr(def float64, paths ...string) float64 {
	v := r.First(paths...)
	if v == nil {
		return def
	}
	f, ok := asNumber(v)
	if !ok {
		return def
	}
	return f
}

// NumberPtr resuelve un numérico opcional: nil si no hay valor o no convierte.
func (r Record) NumberPtr(paths ...string) *float64 {
	v := r.First(paths...)
	if v == nil {
		return nil
	}
	f, ok := asNumber(v)
	if !ok {
		return nil
	}
	return &f
}

// IntOr como NumberOr pero truncando a entero.
func (r Record) IntOr(def int, paths ...string) int {
	v := r.First(paths...)
	if v == nil {
		return def
	}
	f, ok := asNumber(v)
	if !ok {
		return def
	}
	return int(f)
}

// ID resuelve el identificador del registro como string, vacío si no hay
// ninguno recuperable. Los ids numéricos se convierten a su forma decimal.
func (r Record) ID(paths ...string) string {
	return r.StringOr("", paths...)
}

// IDPtr resuelve una clave foránea opcional. Un string vacío cuenta como
// ausente y deja que la cadena siga con el candidato siguiente (típicamente
// el id del objeto anidado).
func (r Record) IDPtr(paths ...string) *string {
	for _, p := range paths {
		v := r.get(p)
		if v == nil {
			continue
		}
		s, ok := asString(v)
		if !ok || s == "" {
			continue
		}
		return &s
	}
	return nil
}

// ActiveFlag deriva el booleano isActive con la precedencia fija:
// isActive booleano > status booleano > status string comparado contra
// "active" sin distinguir mayúsculas > nil cuando no hay señal.
func (r Record) ActiveFlag() *bool {
	if b, ok := r.get("isActive").(bool); ok {
		return &b
	}
	switch status := r.get("status").(type) {
	case bool:
		return &status
	case string:
		active := strings.EqualFold(status, "active")
		return &active
	default:
		return nil
	}
}
