package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/morphodrill"
	"github.com/cours-de-latin/morphodrill/internal/seenstore"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	d, err := morphodrill.New(filepath.Join("..", "..", "data"))
	require.NoError(t, err)
	store, err := seenstore.Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &server{drill: d, store: store, sampler: morphodrill.NewSampler(d)}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleVerbs(t *testing.T) {
	h := newTestServer(t).routes()
	rec := do(t, h, http.MethodGet, "/api/verbs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp verbsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Verbs, 3)
	assert.Equal(t, "λύω", resp.Verbs[0].Lemma)
	assert.Positive(t, resp.Verbs[0].Forms)

	rec = do(t, h, http.MethodPost, "/api/verbs", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDrillSessionNeverRepeats(t *testing.T) {
	h := newTestServer(t).routes()

	body := `{"verb":1,"start":{"person":"first","number":"singular","tense":"present","mood":"indicative","voice":"active"},"max_changes":1,"unit":2,
		"allowed":{"persons":["first","second","third"],"numbers":["singular","plural"],"tenses":["present","imperfect","future","aorist"],"moods":["indicative"],"voices":["active"]}}`
	rec := do(t, h, http.MethodPost, "/api/drill", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first drillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	_, err := uuid.Parse(first.Session)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Surface)

	codes := map[morphodrill.EncodedForm]bool{first.Code: true}
	for range 5 {
		var req map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		req["session"] = first.Session
		b, _ := json.Marshal(req)

		rec := do(t, h, http.MethodPost, "/api/drill", string(b))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp drillResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, first.Session, resp.Session)
		assert.False(t, codes[resp.Code], "code %d repeated", resp.Code)
		assert.Equal(t, morphodrill.Active, resp.Form.Voice)
		codes[resp.Code] = true
	}

	rec = do(t, h, http.MethodDelete, "/api/drill?session="+first.Session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reset resetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reset))
	assert.Equal(t, 6, reset.Removed)
}

func TestDrillUnitGate(t *testing.T) {
	h := newTestServer(t).routes()
	const base = `"verb":1,"max_changes":1,
		"start":{"person":"first","number":"singular","tense":"present","mood":"indicative","voice":"active"},
		"allowed":{"persons":["first"],"numbers":["singular"],"tenses":["present","perfect"],"moods":["indicative"],"voices":["active"]}`

	rec := do(t, h, http.MethodPost, "/api/drill", `{`+base+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp drillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, morphodrill.Perfect, resp.Form.Tense)
	assert.Equal(t, "λέλυκα", resp.Surface)

	// A learner with no completed unit does not see the perfect yet.
	session := uuid.New().String()
	rec = do(t, h, http.MethodPost, "/api/drill", `{"session":"`+session+`","unit":0,`+base+`}`)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	var exhausted exhaustedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exhausted))
	assert.Equal(t, session, exhausted.Session)
	assert.True(t, exhausted.Diagnostics.Exhausted)
	assert.Equal(t, morphodrill.DefaultMaxAttempts, exhausted.Diagnostics.UnitBlocked)

	rec = do(t, h, http.MethodDelete, "/api/drill?session="+session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reset resetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reset))
	assert.Zero(t, reset.Removed, "an exhausted draw must not be recorded")
}

func TestDrillBadRequests(t *testing.T) {
	h := newTestServer(t).routes()
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"bad session", `{"session":"not-a-uuid","verb":1}`, http.StatusBadRequest},
		{"unknown verb", `{"verb":42}`, http.StatusNotFound},
		{"unknown tense", `{"verb":1,"start":{"tense":"gnomic"}}`, http.StatusBadRequest},
		{"empty allowed", `{"verb":1,"allowed":{"persons":[],"numbers":["singular"],"tenses":["present"],"moods":["indicative"],"voices":["active"]}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/drill", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodDelete, "/api/drill", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPut, "/api/drill", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleDecode(t *testing.T) {
	h := newTestServer(t).routes()
	rec := do(t, h, http.MethodGet, "/api/decode?code=220", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"code":220,"form":{"person":"second","number":"plural","tense":"present","mood":"optative","voice":"middle"}}`,
		rec.Body.String())

	for _, q := range []string{"", "abc", "432", "-1"} {
		rec := do(t, h, http.MethodGet, "/api/decode?code="+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "code=%q", q)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DRILL_ADDR", ":9999")
	t.Setenv("DRILL_CORS_ORIGINS", "https://a.example, https://b.example")
	cfg, err := loadConfig([]string{"-data", "elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.dataDir)
	assert.Equal(t, ":9999", cfg.addr)
	assert.Equal(t, "seen.db", cfg.dbPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.corsOrigins)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusTeapot, "short and stout")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte("short and stout")))
}
