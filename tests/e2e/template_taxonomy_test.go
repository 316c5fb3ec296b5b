//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstash/promptstash-backend/internal/adapter/postgres/testhelper"
)

// TestE2E_TemplateImmutability verifies that seeded templates reject writes
// while user templates accept them.
func TestE2E_TemplateImmutability(t *testing.T) {
	ts := setupTestServer(t)

	seeded := testhelper.SeedTemplate(t, ts.Pool, false)

	body := map[string]any{
		"label":   seeded.Label,
		"title":   "Hijacked",
		"content": "changed",
	}
	status := ts.doJSON(t, http.MethodPut, "/api/v1/templates/"+seeded.ID.String(), body, nil)
	assert.Equal(t, http.StatusConflict, status, "seeded template update")

	status = ts.doJSON(t, http.MethodDelete, "/api/v1/templates/"+seeded.ID.String(), nil, nil)
	assert.Equal(t, http.StatusConflict, status, "seeded template delete")

	// A custom template goes through the whole CRUD cycle.
	var custom templateJSON
	status = ts.doJSON(t, http.MethodPost, "/api/v1/templates", map[string]any{
		"label":   uniqueTitle("custom"),
		"title":   "My template",
		"content": "body",
	}, &custom)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, custom.IsCustom)

	status = ts.doJSON(t, http.MethodPut, "/api/v1/templates/"+custom.ID, map[string]any{
		"label":   custom.Label,
		"title":   "My template v2",
		"content": "body v2",
	}, &custom)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "My template v2", custom.Title)

	status = ts.doJSON(t, http.MethodDelete, "/api/v1/templates/"+custom.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

// TestE2E_Taxonomy verifies that categories and tags union across prompts
// and templates.
func TestE2E_Taxonomy(t *testing.T) {
	ts := setupTestServer(t)

	category := uniqueTitle("Cat")
	tag := uniqueTitle("tag")

	status := ts.doJSON(t, http.MethodPost, "/api/v1/prompts",
		promptBody(uniqueTitle("tax"), category, "content", tag), nil)
	require.Equal(t, http.StatusCreated, status)

	tplCategory := uniqueTitle("TplCat")
	status = ts.doJSON(t, http.MethodPost, "/api/v1/templates", map[string]any{
		"label":    uniqueTitle("tax-tpl"),
		"title":    "Taxonomy source",
		"category": tplCategory,
		"content":  "body",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var cats struct {
		Categories []string `json:"categories"`
	}
	status = ts.doJSON(t, http.MethodGet, "/api/v1/categories", nil, &cats)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, cats.Categories, category)
	assert.Contains(t, cats.Categories, tplCategory, "template categories are included")

	var tags struct {
		Tags []string `json:"tags"`
	}
	status = ts.doJSON(t, http.MethodGet, "/api/v1/tags", nil, &tags)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, tags.Tags, tag)
}

// TestE2E_ExportImport round-trips the library through the JSON document.
func TestE2E_ExportImport(t *testing.T) {
	ts := setupTestServer(t)

	title := uniqueTitle("exported")
	status := ts.doJSON(t, http.MethodPost, "/api/v1/prompts",
		promptBody(title, "Export", "exported content", "export-tag"), nil)
	require.Equal(t, http.StatusCreated, status)

	var doc map[string]any
	status = ts.doJSON(t, http.MethodGet, "/api/v1/export", nil, &doc)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, doc["prompts"])

	prompts, ok := doc["prompts"].([]any)
	require.True(t, ok)
	found := false
	for _, raw := range prompts {
		p, ok := raw.(map[string]any)
		require.True(t, ok)
		if p["title"] == title {
			found = true
		}
	}
	assert.True(t, found, "export should contain the created prompt")

	// Import a fresh document.
	importDoc := map[string]any{
		"schema_version": 1,
		"prompts": []map[string]any{
			{"title": uniqueTitle("imported"), "category": "Import", "content": "imported content"},
		},
		"templates": []map[string]any{},
	}
	var result struct {
		PromptsCreated   int `json:"promptsCreated"`
		TemplatesCreated int `json:"templatesCreated"`
	}
	status = ts.doJSON(t, http.MethodPost, "/api/v1/import", importDoc, &result)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, result.PromptsCreated)

	// A malformed record rejects the whole batch with 400.
	badDoc := map[string]any{
		"schema_version": 1,
		"prompts": []map[string]any{
			{"title": uniqueTitle("ok"), "content": "fine"},
			{"title": "", "content": "missing title"},
		},
	}
	status = ts.doJSON(t, http.MethodPost, "/api/v1/import", badDoc, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
