package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/image-watermark/internal/http/handlers"
	"github.com/phambaophuc/image-watermark/internal/http/middleware"
	"github.com/phambaophuc/image-watermark/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	imageHandler *handlers.ImageHandler
	metrics      *metrics.Metrics
	gatherer     prometheus.Gatherer
	maxBodySize  int64
	logger       *zap.Logger
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	maxBodySize int64,
	logger *zap.Logger,
) *Router {
	return &Router{
		imageHandler: imageHandler,
		metrics:      m,
		gatherer:     gatherer,
		maxBodySize:  maxBodySize,
		logger:       logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger, r.metrics))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.SecurityHeaders())

	process := []gin.HandlerFunc{
		middleware.BodyLimit(r.maxBodySize),
		middleware.ValidateContentType(),
		r.imageHandler.ProcessWatermark,
	}

	router.POST("/image/process", process...)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.imageHandler.HealthCheck)

		images := v1.Group("/images")
		{
			images.POST("/process", process...)
		}
	}

	if r.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Image watermarking is running",
		})
	})

	return router
}
