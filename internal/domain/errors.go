package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnavailable  = errors.New("backend no disponible")
)

// APIError es el error de transporte que devuelve el backend: estado HTTP
// distinto de 2xx más el cuerpo crudo tal como llegó. El cuerpo se conserva
// sin tocar para que la capa de presentación decida qué mostrar; FieldErrors
// y Summary son lecturas derivadas, no mutan nada.
type APIError struct {
	Status int
	Body   json.RawMessage
}

// Error implementa error con el estado y el resumen legible.
func (e *APIError) Error() string {
	summary := e.Summary()
	if summary == "" {
		return fmt.Sprintf("api: estado %d", e.Status)
	}
	return fmt.Sprintf("api: estado %d: %s", e.Status, summary)
}

// IsNotFound indica si el backend respondió 404.
func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// IsValidation indica si el estado sugiere errores de validación de campos.
func (e *APIError) IsValidation() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
}

// errorBody formas reconocidas del cuerpo de error del backend. Cada campo
// es opcional; los backends desplegados usan una u otra variante.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
	Details json.RawMessage `json:"details"`
}

// fieldEntry par campo/mensaje en las variantes de lista.
// El nombre del campo puede venir como field, path o name; el mensaje como
// message, msg o error.
type fieldEntry struct {
	Field   string `json:"field"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Err     string `json:"error"`
}

func (f fieldEntry) field() string {
	for _, c := range []string{f.Field, f.Path, f.Name} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

func (f fieldEntry) message() string {
	for _, c := range []string{f.Message, f.Msg, f.Err} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// FieldErrors extrae los errores de validación por campo del cuerpo.
// Reconoce tres formas:
//
//	{ "errors": { "sku": "requerido" } }
//	{ "errors": [ { "field"|"path"|"name": ..., "message"|"msg"|"error": ... } ] }
//	{ "details": [ ...misma forma de lista... ] }
//
// Devuelve nil si ninguna forma aplica; nunca falla por un cuerpo malformado.
func (e *APIError) FieldErrors() map[string]string {
	var body errorBody
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return nil
	}

	if out := fieldMap(body.Errors); out != nil {
		return out
	}
	if out := fieldList(body.Errors); out != nil {
		return out
	}
	return fieldList(body.Details)
}

// Summary extrae un resumen legible: primero message, luego error, luego el
// primer error de campo; vacío si el cuerpo no trae nada reconocible.
func (e *APIError) Summary() string {
	var body errorBody
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	if s := strings.TrimSpace(body.Message); s != "" {
		return s
	}
	if s := strings.TrimSpace(body.Error); s != "" {
		return s
	}
	if fields := e.FieldErrors(); len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys[0] + ": " + fields[keys[0]]
	}
	return ""
}

func fieldMap(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil || len(m) == 0 {
		return nil
	}
	return m
}

func fieldList(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var list []fieldEntry
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil
	}
	out := make(map[string]string, len(list))
	for _, entry := range list {
		field := entry.field()
		if field == "" {
			continue
		}
		out[field] = entry.message()
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
