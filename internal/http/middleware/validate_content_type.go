package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/image-watermark/internal/models"
)

// ValidateContentType rejects request bodies that are not JSON.
func ValidateContentType() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		contentType := strings.ToLower(ctx.GetHeader("Content-Type"))

		if !strings.HasPrefix(contentType, "application/json") {
			ctx.AbortWithStatusJSON(http.StatusUnsupportedMediaType, models.ErrorResponse{
				Error: "content type must be application/json",
			})
			return
		}

		ctx.Next()
	}
}
