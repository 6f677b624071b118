// Package rest implementa los puertos de repository contra el backend REST
// de inventario: transporte HTTP + normalización de respuestas.
//
// Política de errores en dos clases, sin excepciones:
//   - fallo de transporte (red o estado no-2xx): se propaga intacto al
//     llamador como *domain.APIError, sin reintentos ni backoff;
//   - desajuste de forma en un 200: nunca es un error; la normalización lo
//     absorbe con listas vacías y campos por defecto.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-console/internal/domain"
	"github.com/tu-usuario/inventory-console/pkg/config"
	"github.com/tu-usuario/inventory-console/pkg/logger"
)

// maxBodyBytes límite de lectura del cuerpo de respuesta.
const maxBodyBytes = 8 << 20

// Client es el colaborador de transporte: emite la llamada HTTP y devuelve
// el JSON decodificado (any) o el error de transporte. No conoce entidades.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente sobre la configuración del backend.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log,
	}
}

// Get emite GET y devuelve el cuerpo decodificado.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post emite POST con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put emite PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete emite DELETE; el cuerpo de respuesta se descarta.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: serializar cuerpo %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("rest: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("rest: leer respuesta %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// El cuerpo viaja crudo dentro del error; la traducción a mensajes
		// por campo es problema del consumidor.
		return nil, &domain.APIError{Status: resp.StatusCode, Body: rawBody}
	}

	if len(bytes.TrimSpace(rawBody)) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		// Un 200 con cuerpo no parseable se trata como respuesta vacía.
		c.log.Warn().Str("method", method).Str("path", path).
			Msg("respuesta 2xx con cuerpo no JSON; se descarta")
		return nil, nil
	}

	c.log.Trace().Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Interface("payload", payload).
		Msg("respuesta cruda del backend")

	return payload, nil
}
