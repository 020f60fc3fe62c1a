package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the real client IP into Gin context (key: "real_ip").
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", clientIP(c))
		c.Next()
	}
}

// clientIP picks, in order: CF-Connecting-IP, X-Real-IP, the left-most
// X-Forwarded-For entry, then Gin's own ClientIP.
func clientIP(c *gin.Context) string {
	for _, h := range []string{"CF-Connecting-IP", "X-Real-IP"} {
		if ip := net.ParseIP(strings.TrimSpace(c.GetHeader(h))); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
