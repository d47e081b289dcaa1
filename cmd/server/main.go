// Command server exposes the drill sampler as a JSON REST API.
//
// Endpoints:
//
//	GET    /api/verbs
//	POST   /api/drill            body: {"session":"…","verb":1,"start":{…},"max_changes":2,"unit":5,"allowed":{…}}
//	                             409 when no acceptable form is reachable; nothing is recorded
//	                             omit "unit" for no curriculum gate
//	DELETE /api/drill?session=<id>
//	GET    /api/decode?code=<n>
//
// Flags may be overridden by DRILL_DATA, DRILL_ADDR, DRILL_DB and
// DRILL_CORS_ORIGINS, read from the environment or a .env file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/cours-de-latin/morphodrill"
	"github.com/cours-de-latin/morphodrill/internal/seenstore"
)

// ---- JSON request/response types ----------------------------------------

type formJSON struct {
	Person morphodrill.Person `json:"person"`
	Number morphodrill.Number `json:"number"`
	Tense  morphodrill.Tense  `json:"tense"`
	Mood   morphodrill.Mood   `json:"mood"`
	Voice  morphodrill.Voice  `json:"voice"`
}

type verbJSON struct {
	ID             int      `json:"id"`
	Lemma          string   `json:"lemma"`
	PrincipalParts []string `json:"principal_parts"`
	Hq             int      `json:"hq,omitempty"`
	Forms          int      `json:"forms"`
}

type verbsResponse struct {
	Verbs []verbJSON `json:"verbs"`
}

type drillRequest struct {
	Session    string                     `json:"session"`
	Verb       int                        `json:"verb"`
	Start      formJSON                   `json:"start"`
	MaxChanges int                        `json:"max_changes"`
	Unit       *int                       `json:"unit"`
	Allowed    *morphodrill.AllowedValues `json:"allowed"`
}

type drillResponse struct {
	Session     string                  `json:"session"`
	Form        formJSON                `json:"form"`
	Code        morphodrill.EncodedForm `json:"code"`
	Surface     string                  `json:"surface"`
	Diagnostics morphodrill.Diagnostics `json:"diagnostics"`
}

type resetResponse struct {
	Session string `json:"session"`
	Removed int    `json:"removed"`
}

type decodeResponse struct {
	Code morphodrill.EncodedForm `json:"code"`
	Form formJSON                `json:"form"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type exhaustedResponse struct {
	Error       string                  `json:"error"`
	Session     string                  `json:"session"`
	Diagnostics morphodrill.Diagnostics `json:"diagnostics"`
}

// ---- helpers ------------------------------------------------------------

const defaultMaxChanges = 2

func toFormJSON(f morphodrill.VerbForm) formJSON {
	return formJSON{Person: f.Person, Number: f.Number, Tense: f.Tense, Mood: f.Mood, Voice: f.Voice}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// sessionID returns s if it is a valid UUID, or a fresh one if s is empty.
func sessionID(s string) (string, error) {
	if s == "" {
		return uuid.New().String(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid session %q: %w", s, err)
	}
	return id.String(), nil
}

// ---- handlers -----------------------------------------------------------

type server struct {
	drill   *morphodrill.Drill
	store   *seenstore.Store
	sampler *morphodrill.Sampler
}

func (s *server) handleVerbs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	verbs := s.drill.Verbs()
	out := make([]verbJSON, 0, len(verbs))
	for _, v := range verbs {
		forms := 0
		if p := s.drill.Paradigm(v.ID); p != nil {
			forms = p.Len()
		}
		out = append(out, verbJSON{
			ID:             v.ID,
			Lemma:          v.Lemma(),
			PrincipalParts: v.PrincipalParts,
			Hq:             v.Hq,
			Forms:          forms,
		})
	}
	writeJSON(w, http.StatusOK, verbsResponse{Verbs: out})
}

func (s *server) handleDrill(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.drillNext(w, r)
	case http.MethodDelete:
		s.drillReset(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "POST or DELETE required")
	}
}

func (s *server) drillNext(w http.ResponseWriter, r *http.Request) {
	var req drillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("bad request body: %v", err))
		return
	}
	session, err := sessionID(req.Session)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	verb := s.drill.Verb(req.Verb)
	if verb == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("verb %d not found", req.Verb))
		return
	}
	allowed := req.Allowed
	if allowed == nil {
		allowed = morphodrill.AllAllowed()
	}
	if err := allowed.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxChanges := req.MaxChanges
	if maxChanges <= 0 {
		maxChanges = defaultMaxChanges
	}

	seen, err := s.store.Load(session)
	if err != nil {
		log.Printf("load session %s: %v", session, err)
		writeError(w, http.StatusInternalServerError, "could not load session")
		return
	}

	unit := morphodrill.NoUnit
	if req.Unit != nil {
		unit = morphodrill.Unit(*req.Unit)
	}

	st := req.Start
	start := morphodrill.NewFiniteForm(verb, st.Person, st.Number, st.Tense, st.Mood, st.Voice)
	form, diag := s.sampler.RandomForm(start, maxChanges, unit, allowed, seen)
	if diag.Exhausted {
		log.Printf("session %s: sampler exhausted after %d rejections (%+v)", session, diag.Rejected(), diag)
		writeJSON(w, http.StatusConflict, exhaustedResponse{
			Error:       "no acceptable form reachable from start",
			Session:     session,
			Diagnostics: diag,
		})
		return
	}

	code := morphodrill.Encode(form)
	if err := s.store.Add(session, code); err != nil {
		log.Printf("save session %s: %v", session, err)
		writeError(w, http.StatusInternalServerError, "could not save session")
		return
	}

	surface := ""
	if frags, err := s.drill.Realize(form); err == nil && len(frags) > 0 {
		surface = frags[len(frags)-1].Form
	}
	writeJSON(w, http.StatusOK, drillResponse{
		Session:     session,
		Form:        toFormJSON(form),
		Code:        code,
		Surface:     surface,
		Diagnostics: diag,
	})
}

func (s *server) drillReset(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("session")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing 'session' query parameter")
		return
	}
	session, err := sessionID(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := s.store.Reset(session)
	if err != nil {
		log.Printf("reset session %s: %v", session, err)
		writeError(w, http.StatusInternalServerError, "could not reset session")
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{Session: session, Removed: n})
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	n, err := strconv.ParseUint(r.URL.Query().Get("code"), 10, 32)
	if err != nil || n >= morphodrill.NumEncodedForms {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("'code' must be an integer in [0,%d)", morphodrill.NumEncodedForms))
		return
	}
	var f morphodrill.VerbForm
	f.Decode(morphodrill.EncodedForm(n))
	writeJSON(w, http.StatusOK, decodeResponse{Code: morphodrill.EncodedForm(n), Form: toFormJSON(f)})
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/verbs", s.handleVerbs)
	mux.HandleFunc("/api/drill", s.handleDrill)
	mux.HandleFunc("/api/decode", s.handleDecode)
	return mux
}

// ---- config -------------------------------------------------------------

type config struct {
	dataDir     string
	addr        string
	dbPath      string
	corsOrigins []string
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfig(args []string) (config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	dataDir := fs.String("data", envOr("DRILL_DATA", "data"), "path to the verbs/paradigms data directory")
	addr := fs.String("addr", envOr("DRILL_ADDR", ":8080"), "listen address")
	dbPath := fs.String("db", envOr("DRILL_DB", "seen.db"), "LevelDB directory for seen forms")
	origins := fs.String("cors", envOr("DRILL_CORS_ORIGINS", "*"), "comma-separated allowed CORS origins")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg := config{dataDir: *dataDir, addr: *addr, dbPath: *dbPath}
	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.corsOrigins = append(cfg.corsOrigins, o)
		}
	}
	return cfg, nil
}

// ---- main ---------------------------------------------------------------

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("loading data from %s …", cfg.dataDir)
	d, err := morphodrill.New(cfg.dataDir)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Printf("data loaded: %d verbs", len(d.Verbs()))

	store, err := seenstore.Open(cfg.dbPath)
	if err != nil {
		log.Fatalf("failed to open seen store: %v", err)
	}
	defer store.Close()

	srv := &server{drill: d, store: store, sampler: morphodrill.NewSampler(d)}
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}).Handler(srv.routes())

	log.Printf("listening on %s", cfg.addr)
	if err := http.ListenAndServe(cfg.addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
