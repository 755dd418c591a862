package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/20Magus03/back-express/internal/store"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeService records the last request and answers with a canned response.
type fakeService struct {
	status int
	body   string

	method string
	query  string
	prefer string
	apikey string
	auth   string
	sent   map[string]any
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.method = r.Method
	f.query = r.URL.RawQuery
	f.prefer = r.Header.Get("Prefer")
	f.apikey = r.Header.Get("apikey")
	f.auth = r.Header.Get("Authorization")
	f.sent = nil
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &f.sent)
	}
	if r.URL.Path != "/rest/v1/habitaciones" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if f.body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func setup(t *testing.T, status int, body string) (*Client, *fakeService) {
	f := &fakeService{status: status, body: body}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "secret-key", 5*time.Second, zap.NewNop()), f
}

func TestList(t *testing.T) {
	c, f := setup(t, http.StatusOK, `[{"habitacion_id":1,"num_habi":101,"tipo":"doble","capacidad":2,"precio":80,"estado":true}]`)

	rooms, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, store.Room{ID: 1, NumHabi: 101, Tipo: "doble", Capacidad: 2, Precio: 80, Estado: true}, rooms[0])
	assert.Equal(t, http.MethodGet, f.method)
	assert.Equal(t, "secret-key", f.apikey)
	assert.Equal(t, "Bearer secret-key", f.auth)
	assert.Contains(t, f.query, "select=%2A")
}

func TestGet(t *testing.T) {
	c, f := setup(t, http.StatusOK, `[]`)

	_, err := c.Get(context.Background(), 7)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Contains(t, f.query, "habitacion_id=eq.7")

	f.body = `[{"habitacion_id":7,"num_habi":107,"tipo":"suite","capacidad":4,"precio":200,"estado":false}]`
	r, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 107, r.NumHabi)
}

func TestCreate(t *testing.T) {
	c, f := setup(t, http.StatusCreated, `[{"habitacion_id":3,"num_habi":103,"tipo":"doble","capacidad":2,"precio":90,"estado":false}]`)

	r, err := c.Create(context.Background(), store.Room{NumHabi: 103, Tipo: "doble", Capacidad: 2, Precio: 90, Estado: false})
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.ID)
	assert.Equal(t, http.MethodPost, f.method)
	assert.Equal(t, "return=representation", f.prefer)
	assert.NotContains(t, f.sent, "habitacion_id")
	assert.Equal(t, false, f.sent["estado"])
	assert.Equal(t, float64(103), f.sent["num_habi"])
}

func TestCreate_UniqueViolation(t *testing.T) {
	c, _ := setup(t, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint \"habitaciones_num_habi_key\"","details":"Key (num_habi)=(103) already exists.","hint":null}`)

	_, err := c.Create(context.Background(), store.Room{NumHabi: 103, Tipo: "doble", Capacidad: 2, Precio: 90})
	assert.True(t, errors.Is(err, store.ErrDuplicateNumber))
}

func TestUpstreamErrorMessage(t *testing.T) {
	c, _ := setup(t, http.StatusUnauthorized, `{"code":"PGRST301","message":"JWT expired","details":"","hint":null}`)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "JWT expired", err.Error())

	c2, _ := setup(t, http.StatusBadGateway, ``)
	_, err = c2.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "unexpected status 502", err.Error())
}

func TestUpdate_SendsOnlyPatchFields(t *testing.T) {
	c, f := setup(t, http.StatusOK, `[{"habitacion_id":2,"num_habi":102,"tipo":"doble","capacidad":2,"precio":60,"estado":false}]`)

	precio, estado := 60, false
	r, err := c.Update(context.Background(), 2, store.RoomPatch{Precio: &precio, Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, 60, r.Precio)
	assert.Equal(t, http.MethodPatch, f.method)
	assert.Contains(t, f.query, "habitacion_id=eq.2")
	assert.Equal(t, map[string]any{"precio": float64(60), "estado": false}, f.sent)
}

func TestDelete(t *testing.T) {
	c, f := setup(t, http.StatusOK, `[{"habitacion_id":2,"num_habi":102,"tipo":"doble","capacidad":2,"precio":60,"estado":false}]`)

	require.NoError(t, c.Delete(context.Background(), 2))
	assert.Equal(t, http.MethodDelete, f.method)

	f.body = `[]`
	assert.True(t, errors.Is(c.Delete(context.Background(), 2), store.ErrNotFound))
}
