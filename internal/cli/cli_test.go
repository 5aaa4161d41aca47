package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"dreamhouse/internal/config"
	"dreamhouse/internal/domain"
	"dreamhouse/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate_YAML(t *testing.T) {
	out, err := run(t, "", "generate", "--name", "Villa", "3BHK", "traditional", "house", "with", "garage")
	require.NoError(t, err)

	var res service.GenerateResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Parsed.Bedrooms)
	assert.Equal(t, domain.StyleTraditional, res.Parsed.Style)
	assert.True(t, res.Parsed.Parking)
	assert.Equal(t, "Villa", res.Layout.Name)
	require.Len(t, res.Layout.Extras, 1)
	assert.Equal(t, domain.Room{Type: domain.RoomParking, ID: "Parking1", Width: 4, Height: 3}, res.Layout.Extras[0])
}

func TestGenerate_JSON(t *testing.T) {
	out, err := run(t, "", "generate", "-o", "json", "studio")
	require.NoError(t, err)

	var res service.GenerateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Parsed.Bedrooms)
	assert.Equal(t, domain.DefaultDesignName, res.Layout.Name)
}

func TestGenerate_UnknownOutput(t *testing.T) {
	_, err := run(t, "", "generate", "-o", "toml", "2bhk")
	assert.ErrorContains(t, err, "unknown output format")
}

func newTestApp(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.DBEnabled = true
	cfg.Database = config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		Path:        filepath.Join(t.TempDir(), "designs.db"),
		AutoMigrate: true,
	}
	a := buildApp(context.Background(), cfg, zap.NewNop())
	t.Cleanup(a.Close)
	require.Equal(t, config.DriverSQLite, a.store)

	srv := httptest.NewServer(a.handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestBuildApp_SQLite(t *testing.T) {
	srv := newTestApp(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestBuildApp_FallsBackToMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.DBEnabled = true
	cfg.Database = config.DatabaseConfig{Driver: "oracle"}

	a := buildApp(context.Background(), cfg, zap.NewNop())
	t.Cleanup(a.Close)

	assert.Equal(t, "memory", a.store)
	assert.Nil(t, a.db)
}

func TestRemote_SaveListGet(t *testing.T) {
	srv := newTestApp(t)

	out, err := run(t, "", "remote", "--server", srv.URL, "save", "--name", "Cabin", "1", "bhk", "with", "balcony")
	require.NoError(t, err)
	assert.Equal(t, "saved\n", out)

	layout := `{"name":"Manual","rooms":[],"extras":[],"style":"minimal"}`
	_, err = run(t, layout, "remote", "--server", srv.URL, "save", "--name", "Manual", "--layout", "-")
	require.NoError(t, err)

	out, err = run(t, "", "remote", "--server", srv.URL, "-o", "json", "list")
	require.NoError(t, err)
	var designs []domain.SavedDesign
	require.NoError(t, json.Unmarshal([]byte(out), &designs))
	require.Len(t, designs, 2)
	assert.Equal(t, "Manual", designs[0].Name)
	assert.JSONEq(t, layout, designs[0].Data)
	assert.Equal(t, "Cabin", designs[1].Name)
	assert.Equal(t, "1 bhk with balcony", designs[1].Prompt)

	out, err = run(t, "", "remote", "--server", srv.URL, "get", "2")
	require.NoError(t, err)
	var view designView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, "Manual", view.Name)
	assert.Equal(t, "minimal", view.Data.(map[string]any)["style"])
}

func TestRemote_GetErrors(t *testing.T) {
	srv := newTestApp(t)

	_, err := run(t, "", "remote", "--server", srv.URL, "get", "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = run(t, "", "remote", "--server", srv.URL, "get", "abc")
	assert.ErrorContains(t, err, "invalid design id")
}

func TestRemote_SaveRejectsInvalidLayout(t *testing.T) {
	_, err := run(t, "{broken", "remote", "--server", "http://127.0.0.1:1", "save", "--layout", "-")
	assert.ErrorContains(t, err, "not valid JSON")
}
