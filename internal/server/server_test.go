package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haysc/careerscan/internal/ledger"
	"github.com/haysc/careerscan/internal/profile"
	"github.com/haysc/careerscan/internal/types"
)

func newTestServer(t *testing.T) (*Server, *profile.Store, *ledger.Ledger) {
	t.Helper()
	dir := t.TempDir()
	store := profile.NewStore(filepath.Join(dir, "profile.json"), nil)
	led := ledger.Load(filepath.Join(dir, "ledger.json"), nil)
	return New(":0", store, led, nil), store, led
}

func TestServer_Health(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestServer_ProfileReturnsStoredProfile(t *testing.T) {
	s, store, _ := newTestServer(t)

	p := types.NewEmptyProfile()
	p.PersonalInfo["name"] = "Ada Lovelace"
	p.Metadata.TotalDocumentsProcessed = 2
	require.NoError(t, store.Save(p))

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Ada Lovelace", got.PersonalInfo["name"])
	assert.Equal(t, 2, got.Metadata.TotalDocumentsProcessed)
}

func TestServer_ProfileBeforeAnyProcessing(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, types.ProfileVersion, got.Metadata.Version)
}

func TestServer_DocumentsListsLedgerEntries(t *testing.T) {
	s, _, led := newTestServer(t)
	require.NoError(t, led.Record(ledger.Entry{
		FilePath:          "/docs/resume.pdf",
		FileHash:          "abc123",
		DocumentCategory:  types.CategoryResume,
		ExtractionSuccess: true,
	}))

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Documents []ledger.Entry `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Documents, 1)
	assert.Equal(t, "/docs/resume.pdf", body.Documents[0].FilePath)
	assert.True(t, body.Documents[0].ExtractionSuccess)
}

func TestServer_WriteMethodsRejected(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profile", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
