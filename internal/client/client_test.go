package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamhouse/internal/domain"
	httpapi "dreamhouse/internal/http"
	"dreamhouse/internal/repository"
	"dreamhouse/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	svc := service.NewDesignService(repository.NewMemoryDesignsRepo(), nil, logger)
	r := httpapi.NewRouter(logger)
	r.RegisterDesignRoutes(httpapi.NewDesignHandler(svc, nil, logger))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GenerateSaveListGet(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, zap.NewNop())
	ctx := context.Background()

	gen, err := c.Generate(ctx, "2BHK minimal home with garden", "Cottage")
	require.NoError(t, err)
	assert.Equal(t, 2, gen.Parsed.Bedrooms)
	assert.Equal(t, domain.StyleMinimal, gen.Parsed.Style)
	assert.Equal(t, "Cottage", gen.Layout.Name)

	raw, err := json.Marshal(gen.Layout)
	require.NoError(t, err)
	require.NoError(t, c.Save(ctx, "Cottage", "2BHK minimal home with garden", raw))
	require.NoError(t, c.Save(ctx, "Empty", "", nil))

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Empty", list[0].Name)
	assert.Equal(t, "{}", list[0].Data)

	d, err := c.Get(ctx, list[1].ID)
	require.NoError(t, err)
	l, err := d.Layout()
	require.NoError(t, err)
	assert.Equal(t, gen.Layout, l)
}

func TestClient_GetNotFound(t *testing.T) {
	c := New(newTestServer(t).URL, zap.NewNop())

	_, err := c.Get(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Internal server error"}`))
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, zap.NewNop())

	_, err := c.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")
	assert.Contains(t, err.Error(), "500")
}

func TestClient_OkFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL, zap.NewNop()).Save(context.Background(), "a", "", nil)

	assert.ErrorContains(t, err, "ok=false")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, zap.NewNop()).List(context.Background())

	assert.Error(t, err)
}
