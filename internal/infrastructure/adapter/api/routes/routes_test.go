package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/studrev/internal/domain/usecase/pool"
	"github.com/amirhossein-jamali/studrev/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/studrev/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/jsonfile"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/security"
	timeprovider "github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/time"
)

type testServer struct {
	router *gin.Engine
	store  *jsonfile.Store
}

func newTestServer(t *testing.T, staticDir string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeprovider.FixedTimeProvider{At: time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC)}

	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "db.json"), log)
	require.NoError(t, err)

	userRepo := jsonfile.NewUserRepository(store)
	poolService, err := pool.NewService(
		jsonfile.NewQuestionSetRepository(store),
		random.NewSeededSource(7),
		clock,
		log,
		pool.DefaultSessionSize,
	)
	require.NoError(t, err)
	_, _, err = poolService.InitializePool(context.Background())
	require.NoError(t, err)

	sessionService := session.NewService(poolService, userRepo, jsonfile.NewHistoryRepository(store), clock, log)
	userService := user.NewUserUseCase(userRepo, security.PlaintextHasher{}, log)

	router := gin.New()
	SetupMiddlewares(router, log, clock)
	SetupRoutes(router, Handlers{
		Pool:    handler.NewPoolHandler(poolService, log),
		Session: handler.NewSessionHandler(sessionService, log),
		User:    handler.NewUserHandler(userService, log),
		Health:  handler.NewHealthHandler(store, log),
	}, staticDir)

	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func credentials(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}

func TestPoolEndpoints(t *testing.T) {
	srv := newTestServer(t, "")

	t.Run("Pool has 500 records", func(t *testing.T) {
		w, body := srv.do(t, http.MethodGet, "/api/pool", nil)

		require.Equal(t, http.StatusOK, w.Code)
		records := body["pool"].([]any)
		assert.Len(t, records, 500)

		first := records[0].(map[string]any)
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, "Easy", first["difficulty"])
		assert.Contains(t, first["desc"], "₱")
		assert.NotEmpty(t, first["explanation_en"])
		assert.NotEmpty(t, first["explanation_tl"])
	})

	t.Run("Sets expose ids and sessions", func(t *testing.T) {
		w, body := srv.do(t, http.MethodGet, "/api/sets", nil)

		require.Equal(t, http.StatusOK, w.Code)
		sets := body["sets"].(map[string]any)
		assert.Len(t, sets["ids"], 500)
		sessions := sets["sessions"].([]any)
		require.Len(t, sessions, 5)
		first := sessions[0].([]any)
		assert.Len(t, first, 100)
		assert.Equal(t, float64(1), first[0])
		assert.Equal(t, float64(100), first[99])
		assert.Equal(t, "2024-06-01T02:00:00Z", sets["generatedAt"])
	})

	t.Run("Index page lists the pool", func(t *testing.T) {
		w, _ := srv.do(t, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Stud.Rev 500 Transactions")
		assert.Equal(t, 500, strings.Count(w.Body.String(), "<tr>\n<td>"))
	})
}

func TestSessionEndpoints(t *testing.T) {
	srv := newTestServer(t, "")

	t.Run("Last session holds ids 401 to 500", func(t *testing.T) {
		w, body := srv.do(t, http.MethodGet, "/api/session/4", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["ok"])
		items := body["items"].([]any)
		require.Len(t, items, 100)
		assert.Equal(t, float64(401), items[0].(map[string]any)["id"])
		assert.Equal(t, "Hard", items[0].(map[string]any)["difficulty"])
	})

	for _, path := range []string{"/api/session/5", "/api/session/-1", "/api/session/abc"} {
		t.Run("Unknown session "+path, func(t *testing.T) {
			w, body := srv.do(t, http.MethodGet, path, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, map[string]any{"ok": false}, body)
		})
	}
}

func TestCompleteSession(t *testing.T) {
	srv := newTestServer(t, "")
	w, _ := srv.do(t, http.MethodPost, "/api/register", credentials("a@b.com", "x"))
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Records history", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/2/complete",
			map[string]any{"email": "a@b.com", "correct": 0, "max": 100})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"ok": true}, body)

		w, body = srv.do(t, http.MethodGet, "/api/history?email=a@b.com", nil)
		require.Equal(t, http.StatusOK, w.Code)
		history := body["history"].([]any)
		require.Len(t, history, 1)
		entry := history[0].(map[string]any)
		assert.Equal(t, float64(2), entry["sessionNumber"])
		assert.Equal(t, float64(0), entry["correctCount"])
		assert.Equal(t, float64(100), entry["maxCount"])
		assert.Equal(t, "2024-06-01T02:00:00Z", entry["timestamp"])
	})

	t.Run("Unknown session", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/9/complete",
			map[string]any{"email": "a@b.com", "correct": 1, "max": 100})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]any{"ok": false}, body)
	})

	t.Run("Unknown user", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/0/complete",
			map[string]any{"email": "ghost@b.com", "correct": 1, "max": 100})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "Unknown user", body["msg"])
	})

	t.Run("Impossible score", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/0/complete",
			map[string]any{"email": "a@b.com", "correct": 101, "max": 100})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["ok"])
		assert.NotEmpty(t, body["msg"])
	})

	t.Run("Missing fields", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/0/complete",
			map[string]any{"email": "a@b.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		w, body := srv.do(t, http.MethodPost, "/api/session/0/complete", "{")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("History needs an email", func(t *testing.T) {
		w, body := srv.do(t, http.MethodGet, "/api/history", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["ok"])
	})
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t, "")

	w, body := srv.do(t, http.MethodPost, "/api/register", credentials("a@b.com", "x"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true, "user": map[string]any{"email": "a@b.com"}}, body)

	w, body = srv.do(t, http.MethodPost, "/api/register", credentials("a@b.com", "x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Email exists", body["msg"])

	w, body = srv.do(t, http.MethodPost, "/api/login", credentials("a@b.com", "x"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true, "user": map[string]any{"email": "a@b.com"}}, body)

	w, body = srv.do(t, http.MethodPost, "/api/login", credentials("a@b.com", "y"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Invalid credentials", body["msg"])

	w, body = srv.do(t, http.MethodPost, "/api/login", credentials("nobody@b.com", "x"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", body["msg"])

	w, body = srv.do(t, http.MethodPost, "/api/register", credentials("", "x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["ok"])
}

func TestHealthAndCORS(t *testing.T) {
	srv := newTestServer(t, "")

	w, body := srv.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log('quiz')"), 0o644))
	srv := newTestServer(t, dir)

	w, _ := srv.do(t, http.MethodGet, "/script.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log('quiz')", w.Body.String())

	w, _ = srv.do(t, http.MethodGet, "/api/pool", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
