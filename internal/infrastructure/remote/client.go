// Package remote implementa el store sobre un backend hospedado estilo PostgREST (Supabase):
// una tabla por entidad, filtros ?columna=eq.valor y registros en snake_case.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 4 << 20

	// mensaje del toast cuando una lectura falla en modo tolerante
	readFailedMessage = "no se pudieron cargar los datos del servidor"
)

// Config credenciales y política de errores del backend remoto.
type Config struct {
	ProjectID string
	PublicKey string
	BaseURL   string // opcional; por defecto https://<project>.supabase.co/rest/v1
	Timeout   time.Duration
	Strict    bool // true: toda falla se devuelve como domain.ErrUpstream
}

// Client cliente HTTP del backend remoto.
// Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	baseURL    string
	key        string
	strict     bool
	httpClient *http.Client
	log        zerolog.Logger
	notifier   ports.Notifier
	now        func() time.Time
}

// NewClient construye el cliente. ProjectID y PublicKey son obligatorios salvo que BaseURL
// apunte a un servidor propio (tests).
func NewClient(cfg Config, log zerolog.Logger, notifier ports.Notifier) (*Client, error) {
	if cfg.PublicKey == "" {
		return nil, fmt.Errorf("remote: REMOTE_PUBLIC_KEY no configurado")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("remote: REMOTE_PROJECT_ID no configurado")
		}
		base = fmt.Sprintf("https://%s.supabase.co/rest/v1", cfg.ProjectID)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &Client{
		baseURL:    base,
		key:        cfg.PublicKey,
		strict:     cfg.Strict,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		notifier:   notifier,
		now:        time.Now,
	}, nil
}

// apiError respuesta de error de PostgREST.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

func (e *apiError) uniqueViolation() bool {
	return e.Code == "23505" || e.Status == http.StatusConflict
}

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, table string, query url.Values, body, out any) error {
	u := c.baseURL + "/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		return apiErr
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("deserializar respuesta: %w", err)
	}
	return nil
}

// readFailed aplica la política de lectura: en modo tolerante registra, avisa y devuelve nil.
func (c *Client) readFailed(ctx context.Context, op string, err error) error {
	c.log.Error().Err(err).Str("op", op).Msg("remote: lectura fallida")
	if c.strict {
		return domain.Upstream(op, err)
	}
	c.notifier.Error(ctx, readFailedMessage)
	return nil
}

// writeFailed las escrituras siempre devuelven error; los errores de dominio pasan tal cual.
func (c *Client) writeFailed(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicate) {
		return err
	}
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.uniqueViolation() {
		return domain.ErrDuplicate
	}
	c.log.Error().Err(err).Str("op", op).Msg("remote: escritura fallida")
	return domain.Upstream(op, err)
}

func eq(column, value string) url.Values {
	return url.Values{column: []string{"eq." + value}}
}

// ── Tabla genérica ─────────────────────────────────────────────────────────────

type table[R any] struct {
	c    *Client
	name string
}

func (t table[R]) list(ctx context.Context, filter url.Values) ([]R, error) {
	q := url.Values{"select": []string{"*"}, "order": []string{"seq.asc"}}
	for k, v := range filter {
		q[k] = v
	}
	var out []R
	if err := t.c.do(ctx, http.MethodGet, t.name, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get devuelve nil si no hay registro con ese id.
func (t table[R]) get(ctx context.Context, id string) (*R, error) {
	rows, err := t.list(ctx, eq("id", id))
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (t table[R]) insert(ctx context.Context, rec R) (*R, error) {
	var out []R
	if err := t.c.do(ctx, http.MethodPost, t.name, nil, rec, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return &rec, nil
	}
	return &out[0], nil
}

// patch devuelve nil si no hay registro con ese id.
func (t table[R]) patch(ctx context.Context, id string, rec R) (*R, error) {
	var out []R
	if err := t.c.do(ctx, http.MethodPatch, t.name, eq("id", id), rec, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// remove devuelve nil si no hay registro con ese id.
func (t table[R]) remove(ctx context.Context, id string) (*R, error) {
	var out []R
	if err := t.c.do(ctx, http.MethodDelete, t.name, eq("id", id), nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}
