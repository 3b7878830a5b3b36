package middleware

import "github.com/gin-gonic/gin"

var securityHeaders = map[string]string{
	"X-Frame-Options":           "DENY",
	"X-Content-Type-Options":    "nosniff",
	"Referrer-Policy":           "no-referrer",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	// Responses embed the caller's image; keep them out of shared caches.
	"Cache-Control": "no-store",
}

func SecurityHeaders() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		for name, value := range securityHeaders {
			ctx.Header(name, value)
		}
		ctx.Next()
	}
}
