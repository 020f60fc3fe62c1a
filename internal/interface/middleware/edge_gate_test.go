package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func gatedEngine() *gin.Engine {
	r := gin.New()
	r.Use(EdgeGate(DefaultPublicPaths))
	r.NoRoute(func(c *gin.Context) { c.String(http.StatusOK, "passed") })
	return r
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/static", true},
		{"/static/app.js", true},
		{"/api", true},
		{"/api/clinics/clinics", true},
		{"/staticfoo", false},
		{"/apix", false},
		{"/dashboard", false},
		{"/dashboard/admins", false},
		{"/debug/vars", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublicPath(tt.path, DefaultPublicPaths))
		})
	}
}

func TestEdgeGate_PublicPathsPassWithoutCookie(t *testing.T) {
	r := gatedEngine()
	for _, p := range []string{"/", "/static/app.css", "/api/pdf/upload"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusOK, w.Code, p)
		assert.Equal(t, "passed", w.Body.String(), p)
	}
}

func TestEdgeGate_RedirectsWithoutCookie(t *testing.T) {
	r := gatedEngine()
	for _, p := range []string{"/dashboard", "/dashboard/admins", "/dashboard/resources-management", "/debug/vars"} {
		t.Run(p, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
			require.Equal(t, http.StatusTemporaryRedirect, w.Code)

			loc, err := url.Parse(w.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "/", loc.Path)
			assert.Equal(t, p, loc.Query().Get("redirect"))
		})
	}
}

func TestEdgeGate_EmptyCookieRedirects(t *testing.T) {
	r := gatedEngine()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: ""})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestEdgeGate_AnyCookieValuePasses(t *testing.T) {
	r := gatedEngine()
	for _, v := range []string{"garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.eyJyb2xlIjoidmlld2VyIn0.sig"} {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/clinics", nil)
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: v})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, v)
	}
}

func TestEdgeGate_CustomAllowList(t *testing.T) {
	r := gin.New()
	r.Use(EdgeGate([]string{"/", "/healthz"}))
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}
