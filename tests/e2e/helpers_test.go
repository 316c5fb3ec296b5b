//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	promptrepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/prompt"
	templaterepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/template"
	"github.com/promptstash/promptstash-backend/internal/adapter/postgres/testhelper"
	versionrepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/version"
	"github.com/promptstash/promptstash-backend/internal/config"
	"github.com/promptstash/promptstash-backend/internal/service/impex"
	"github.com/promptstash/promptstash-backend/internal/service/prompt"
	"github.com/promptstash/promptstash-backend/internal/service/taxonomy"
	"github.com/promptstash/promptstash-backend/internal/service/template"
	"github.com/promptstash/promptstash-backend/internal/transport/middleware"
	"github.com/promptstash/promptstash-backend/internal/transport/rest"
)

// testServer wraps the full HTTP stack for end-to-end tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer builds the complete application over the shared test
// database: real repos, real services, real router and middleware.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := postgres.NewTxManager(pool)
	prompts := promptrepo.New(pool)
	versions := versionrepo.New(pool)
	templates := templaterepo.New(pool)

	promptsCfg := config.PromptsConfig{
		MaxPrompts:      10000,
		ImportChunkSize: 50,
		ImportMaxBatch:  1000,
	}

	mux := rest.NewRouter(rest.Handlers{
		Prompts:   rest.NewPromptHandler(prompt.NewService(logger, prompts, versions, txManager, promptsCfg), logger),
		Templates: rest.NewTemplateHandler(template.NewService(logger, templates, txManager), logger),
		Taxonomy:  rest.NewTaxonomyHandler(taxonomy.NewService(logger, prompts), logger),
		Impex:     rest.NewImpexHandler(impex.NewService(logger, prompts, templates, txManager, promptsCfg), logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON performs an HTTP request with an optional JSON body and decodes the
// JSON response into out (when out is non-nil). Returns the status code.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "build request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "%s %s", method, path)
	defer resp.Body.Close()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "read response body")
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, out), "decode response: %s", raw)
		}
	}

	return resp.StatusCode
}

// promptJSON is the wire shape of a prompt response.
type promptJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

type versionJSON struct {
	ID       string `json:"id"`
	PromptID string `json:"promptId"`
	Content  string `json:"content"`
}

type restoreJSON struct {
	Restored bool       `json:"restored"`
	Prompt   promptJSON `json:"prompt"`
}

type templateJSON struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsCustom bool     `json:"isCustom"`
}

func promptBody(title, category, content string, tags ...string) map[string]any {
	return map[string]any{
		"title":    title,
		"category": category,
		"content":  content,
		"tags":     tags,
	}
}

func uniqueTitle(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
