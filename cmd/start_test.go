package cmd

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"json-diff/core/config"
	"json-diff/core/middleware/auth"
	"json-diff/core/middleware/rayid"
	"json-diff/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`[{"id":1}]`), 0o644))

	cfg := &config.Config{}
	cfg.Server.ApiKey = "secret"
	app := newApp(&env{cfg: cfg, logger: zap.NewNop(), source: source.NewDirectory(dir), close: func() {}})

	t.Run("requires api key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/diff/files", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("serves files", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/diff/files", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
