package supabase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/20Magus03/back-express/internal/store"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Package supabase talks to the hosted data service through its PostgREST
// interface and exposes it as a store.RoomStore.

const (
	table = "habitaciones"

	// pgUniqueViolation is the Postgres SQLSTATE for unique_violation.
	pgUniqueViolation = "23505"
)

// APIError is the error body returned by PostgREST.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Client is a RoomStore over the hosted data service.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ store.RoomStore = (*Client)(nil)

// New returns a client for the project at baseURL authenticated with key.
// Request-path calls are not retried.
func New(baseURL, key string, timeout time.Duration, logger *zap.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetTimeout(timeout).
		SetHeader("apikey", key).
		SetAuthToken(key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c, logger: logger}
}

// newRoom is the insert payload; the id is assigned by the service.
type newRoom struct {
	NumHabi   int    `json:"num_habi"`
	Tipo      string `json:"tipo"`
	Capacidad int    `json:"capacidad"`
	Precio    int    `json:"precio"`
	Estado    bool   `json:"estado"`
}

func (c *Client) List(ctx context.Context) ([]store.Room, error) {
	var rows []store.Room
	resp, err := c.request(ctx, &rows).
		SetQueryParam("select", "*").
		SetQueryParam("order", "habitacion_id.asc").
		Get("/" + table)
	if err := c.check("select", resp, err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*store.Room, error) {
	var rows []store.Room
	resp, err := c.request(ctx, &rows).
		SetQueryParam("select", "*").
		SetQueryParam("habitacion_id", eq(id)).
		Get("/" + table)
	if err := c.check("select", resp, err); err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *Client) Create(ctx context.Context, r store.Room) (*store.Room, error) {
	var rows []store.Room
	resp, err := c.request(ctx, &rows).
		SetHeader("Prefer", "return=representation").
		SetBody(newRoom{NumHabi: r.NumHabi, Tipo: r.Tipo, Capacidad: r.Capacidad, Precio: r.Precio, Estado: r.Estado}).
		Post("/" + table)
	if err := c.check("insert", resp, err); err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *Client) Update(ctx context.Context, id int64, p store.RoomPatch) (*store.Room, error) {
	var rows []store.Room
	resp, err := c.request(ctx, &rows).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("habitacion_id", eq(id)).
		SetBody(p).
		Patch("/" + table)
	if err := c.check("update", resp, err); err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	var rows []store.Room
	resp, err := c.request(ctx, &rows).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("habitacion_id", eq(id)).
		Delete("/" + table)
	if err := c.check("delete", resp, err); err != nil {
		return err
	}
	if len(rows) == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c *Client) request(ctx context.Context, result any) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&APIError{})
}

// check turns transport failures and error statuses into errors.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("data service call failed", zap.String("op", op), zap.Error(err))
		return errors.Wrapf(err, "%s %s", op, table)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr, _ := resp.Error().(*APIError)
	if apiErr == nil || apiErr.Message == "" {
		apiErr = &APIError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode())}
	}
	c.logger.Warn("data service returned error",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode()),
		zap.String("code", apiErr.Code),
		zap.String("message", apiErr.Message),
	)
	if apiErr.Code == pgUniqueViolation || resp.StatusCode() == http.StatusConflict {
		return store.ErrDuplicateNumber
	}
	return apiErr
}

func eq(id int64) string { return "eq." + strconv.FormatInt(id, 10) }

func first(rows []store.Room) (*store.Room, error) {
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	r := rows[0]
	return &r, nil
}
