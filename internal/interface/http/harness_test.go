package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/backend"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/progress"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/validation"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

// harness serves the dashboard against an in-process fake backend that
// plays both the core and the bot API.
type harness struct {
	backend  *http.ServeMux
	engine   *gin.Engine
	progress *progress.MemoryStore
	docs     *application.DocumentService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := backend.NewClient(srv.URL, 5*time.Second, logger)

	h := &harness{backend: mux, progress: progress.NewMemoryStore(time.Minute)}
	h.json("GET /metrics/", http.StatusOK, `{}`)
	h.json("GET /chatbot/", http.StatusOK, `{}`)
	h.docs = application.NewDocumentService(backend.NewDocumentGateway(client), h.progress, nil, 0, logger)
	catalog, err := application.LoadCatalog()
	require.NoError(t, err)
	proxy, err := NewProxyHandler(srv.URL, logger)
	require.NoError(t, err)

	auth := NewAuthHandler(application.NewAuthService(backend.NewAdminGateway(client), logger), logger, "", false)
	dash := NewDashboardHandler(application.NewMetricsService(backend.NewMetricsGateway(client, client), logger), catalog, logger)
	admins := NewAdminHandler(application.NewAdminService(backend.NewAdminGateway(client), logger), logger)
	clinics := NewClinicHandler(application.NewClinicService(backend.NewClinicGateway(client), logger), logger)
	quizzes := NewQuizHandler(application.NewQuizService(backend.NewQuizGateway(client), logger), logger)
	resources := NewResourceHandler(h.docs, logger)

	r := gin.New()
	r.HTMLRender = views.MustRenderer()
	r.Use(middleware.RequestIDMiddleware(), middleware.EdgeGate(middleware.DefaultPublicPaths), middleware.Actor())
	r.GET("/", auth.LoginPage)
	r.POST("/", auth.Login)
	r.Any("/api/*path", proxy.Handle)
	d := r.Group("/dashboard")
	d.GET("", dash.Home)
	d.GET("/analysis", dash.Analysis)
	d.GET("/admins", admins.Page)
	d.POST("/admins", admins.Create)
	d.DELETE("/admins/:id", admins.Delete)
	d.GET("/clinics", clinics.Page)
	d.POST("/clinics", clinics.Create)
	d.PUT("/clinics/:id", clinics.Update)
	d.DELETE("/clinics/:id", clinics.Delete)
	d.GET("/gamification", quizzes.Page)
	d.GET("/gamification/quizzes/:id/questions", quizzes.Questions)
	d.POST("/gamification/quizzes", quizzes.Create)
	d.DELETE("/gamification/quizzes/:id", quizzes.Delete)
	d.GET("/resources-management", resources.Page)
	d.POST("/resources-management/upload", resources.Upload)
	d.GET("/resources-management/uploads/:id", resources.Progress)
	h.engine = r
	return h
}

// json registers a canned JSON answer on the fake backend.
func (h *harness) json(pattern string, status int, body string) {
	h.backend.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (h *harness) do(method, path, role string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if role != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: tokenFor(role)})
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func (h *harness) get(path, role string) *httptest.ResponseRecorder {
	return h.do(http.MethodGet, path, role, nil, "")
}

func (h *harness) sendJSON(method, path, role, body string) *httptest.ResponseRecorder {
	return h.do(method, path, role, strings.NewReader(body), "application/json")
}

// tokenFor signs with a throwaway key; nothing verifies it.
func tokenFor(role string) string {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "tester", "role": role}).SignedString([]byte("k"))
	if err != nil {
		panic(err)
	}
	return s
}
