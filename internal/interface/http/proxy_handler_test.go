package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// proxyServer mounts the proxy on a live listener. ReverseProxy needs a
// cancellable request context, which a bare recorder does not give it.
func proxyServer(t *testing.T, p *ProxyHandler) *httptest.Server {
	t.Helper()
	e := gin.New()
	e.Any("/api/*path", p.Handle)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestProxy_ForwardsWithBearer(t *testing.T) {
	var gotPath, gotAuth, gotCookie, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		gotAuth, gotCookie = r.Header.Get("Authorization"), r.Header.Get("Cookie")
		_, _ = io.WriteString(w, `[]`)
	}))
	t.Cleanup(upstream.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	p, err := NewProxyHandler(upstream.URL, logger)
	require.NoError(t, err)

	srv := proxyServer(t, p)
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/clinics/clinics?skip=0&limit=10", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: "abc"})
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/clinics/clinics", gotPath)
	assert.Equal(t, "skip=0&limit=10", gotQuery)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Empty(t, gotCookie)
}

func TestProxy_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	p, err := NewProxyHandler(addr, logger)
	require.NoError(t, err)

	srv := proxyServer(t, p)
	resp, err := srv.Client().Get(srv.URL + "/api/metrics/engagement_rate")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.JSONEq(t, `{"detail": "Network error"}`, string(body))
}

func TestSingleJoin(t *testing.T) {
	assert.Equal(t, "/v1/x", singleJoin("/v1", "/x"))
	assert.Equal(t, "/v1/x", singleJoin("/v1/", "/x"))
	assert.Equal(t, "/x", singleJoin("", "/x"))
	assert.Equal(t, "/", singleJoin("", ""))
}
