package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// LoginPath is where the edge gate sends requests without a session cookie.
const LoginPath = "/"

// DefaultPublicPaths are reachable without a session cookie.
var DefaultPublicPaths = []string{"/", "/static", "/api"}

// IsPublicPath reports whether path equals one of the prefixes or starts
// with prefix+"/". For "/" that means only the root itself.
func IsPublicPath(path string, public []string) bool {
	for _, p := range public {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// EdgeGate redirects non-public requests that carry no non-empty session
// cookie to the login page with ?redirect=<original path>. Only presence is
// checked; the token is never validated here.
func EdgeGate(public []string) gin.HandlerFunc {
	if len(public) == 0 {
		public = DefaultPublicPaths
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if IsPublicPath(path, public) || helpers.Token(c) != "" {
			c.Next()
			return
		}
		helpers.GateRedirects.Add(1)
		q := url.Values{}
		q.Set("redirect", path)
		c.Redirect(http.StatusTemporaryRedirect, LoginPath+"?"+q.Encode())
		c.Abort()
	}
}
