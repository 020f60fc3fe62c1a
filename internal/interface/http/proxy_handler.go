package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// ProxyHandler relays /api/* to the core backend with the session token as
// bearer credential.
type ProxyHandler struct {
	proxy  *httputil.ReverseProxy
	Logger *logrus.Logger
}

func NewProxyHandler(backendURL string, logger *logrus.Logger) (*ProxyHandler, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, err
	}
	h := &ProxyHandler{Logger: logger}
	h.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.URL.Path = singleJoin(target.Path, strings.TrimPrefix(r.In.URL.Path, "/api"))
			r.Out.URL.RawPath = ""
			r.Out.Host = target.Host
			r.Out.Header.Del("Cookie")
			r.Out.Header.Set("Cache-Control", "no-cache")
			if c, err := r.In.Cookie(helpers.TokenCookie); err == nil && c.Value != "" && r.Out.Header.Get("Authorization") == "" {
				r.Out.Header.Set("Authorization", "Bearer "+c.Value)
			}
		},
		ErrorHandler: h.proxyError,
	}
	return h, nil
}

func (h *ProxyHandler) Handle(c *gin.Context) {
	helpers.BackendCalls.Add(1)
	h.proxy.ServeHTTP(c.Writer, c.Request)
}

func (h *ProxyHandler) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	helpers.BackendFailures.Add(1)
	helpers.LogError(h.Logger, "api proxy failed", err, logrus.Fields{"path": r.URL.Path})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Network error"})
}

func singleJoin(a, b string) string {
	if b == "" {
		b = "/"
	}
	switch {
	case strings.HasSuffix(a, "/") && strings.HasPrefix(b, "/"):
		return a + b[1:]
	case !strings.HasSuffix(a, "/") && !strings.HasPrefix(b, "/"):
		return a + "/" + b
	}
	return a + b
}
