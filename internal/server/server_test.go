package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/storage"
	"github.com/jmallet/cv-builder/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "document.json"))
	s, err := New(Config{
		Addr:          "127.0.0.1:0",
		Store:         store,
		AutosaveDelay: 10 * time.Millisecond,
		PreviewDelay:  10 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		s.autosave.Close()
		s.preview.Close()
	})
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func decodeDocument(t *testing.T, rec *httptest.ResponseRecorder) *types.CVDocument {
	t.Helper()
	var doc types.CVDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return &doc
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, true, resp["storageAvailable"])
}

func TestGetDocumentStartsWithDefaults(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/document", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeDocument(t, rec)
	assert.Equal(t, document.DefaultTemplate, doc.Template)
	assert.Equal(t, types.LanguageEnglish, doc.Language)
	assert.NotEmpty(t, doc.SectionOrder)
}

func TestPutDocumentReplacesState(t *testing.T) {
	s := newTestServer(t)
	next := document.WithLanguage(document.New(), "en")
	payload, err := document.ExportJSON(next)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/document", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	got := doRequest(t, s, http.MethodGet, "/document", nil)
	assert.Equal(t, "en", decodeDocument(t, got).Language)
}

func TestPutDocumentRejectsInvalid(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPut, "/document", bytes.NewReader([]byte(`{"template":"simple","language":"de","sections":[]}`)))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSectionStartToggle(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPatch, "/document/section-start", SectionStartRequest{
		Section:   types.SectionExperiences,
		StartPage: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeDocument(t, rec)
	assert.True(t, doc.SectionStartPage[types.SectionExperiences])
}

func TestSectionStartRejectsUnknownSection(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPatch, "/document/section-start", SectionStartRequest{
		Section: "galaxies",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemBreakToggleAndReset(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPatch, "/document/item-break", ItemBreakRequest{
		ItemID:    "item-1",
		PageBreak: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeDocument(t, rec).ItemPageBreaks["item-1"])

	rec = doRequest(t, s, http.MethodPost, "/document/reset-breaks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeDocument(t, rec)
	assert.Empty(t, doc.ItemPageBreaks)
	for _, v := range doc.SectionStartPage {
		assert.False(t, v)
	}
}

func TestItemBreakRequiresID(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPatch, "/document/item-break", ItemBreakRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSectionOrderIsRepaired(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPatch, "/document/order", SectionOrderRequest{
		Order: []types.SectionType{
			types.SectionEducation,
			types.SectionEducation, // duplicate dropped
			types.SectionExperiences,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeDocument(t, rec)
	assert.Equal(t, types.SectionEducation, doc.SectionOrder[0])
	assert.Equal(t, types.SectionExperiences, doc.SectionOrder[1])

	seen := map[types.SectionType]int{}
	for _, tt := range doc.SectionOrder {
		seen[tt]++
	}
	for tt, n := range seen {
		assert.Equal(t, 1, n, "duplicate order entry for %s", tt)
	}
	// Order repair keeps every present section in the order.
	assert.Len(t, doc.SectionOrder, len(doc.Sections))
}

func TestTemplateListingAndSwitch(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []TemplateInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.NotEmpty(t, infos)
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	assert.Contains(t, ids, "simple")
	assert.Contains(t, ids, "modern")

	rec = doRequest(t, s, http.MethodPatch, "/document/template", SetTemplateRequest{Template: "modern"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "modern", decodeDocument(t, rec).Template)

	rec = doRequest(t, s, http.MethodPatch, "/document/template", SetTemplateRequest{Template: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewReturnsBoxTree(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rendered layout.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rendered))
	assert.Equal(t, document.DefaultTemplate, rendered.Template)
	assert.NotEmpty(t, rendered.Boxes)
}

func TestExportHTML(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/export/html", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), "break-before: page")
}

func TestDeleteDocumentResets(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPatch, "/document/item-break", ItemBreakRequest{ItemID: "x", PageBreak: true})

	rec := doRequest(t, s, http.MethodDelete, "/document", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeDocument(t, rec).ItemPageBreaks)
}
