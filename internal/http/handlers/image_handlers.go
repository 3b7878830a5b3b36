package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/phambaophuc/image-watermark/internal/http/middleware"
	"github.com/phambaophuc/image-watermark/internal/models"
	"github.com/phambaophuc/image-watermark/internal/services/processor"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_handlers.go -package=mock_handlers . WatermarkProcessor

// WatermarkProcessor is satisfied by *processor.ImageProcessor.
type WatermarkProcessor interface {
	Process(req *models.WatermarkRequest) (*processor.Result, error)
	HealthCheck() map[string]string
}

type ImageHandler struct {
	processor WatermarkProcessor
	logger    *zap.Logger
}

func NewImageHandler(processor WatermarkProcessor, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		processor: processor,
		logger:    logger,
	}
}

// ProcessWatermark stamps the source image and returns the full-size and
// resized outputs.
// POST /image/process
func (h *ImageHandler) ProcessWatermark(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	var req models.WatermarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &validationErrs):
			h.rejectInvalidInput(c, logger, &req)
		case errors.As(err, &tooLarge):
			logger.Warn("Request body too large", zap.Int64("limit", tooLarge.Limit))
			h.respondError(c, http.StatusRequestEntityTooLarge, "request body too large")
		default:
			logger.Warn("Malformed request body", zap.Error(err))
			h.respondError(c, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	result, err := h.processor.Process(&req)
	if err != nil {
		if processor.IsInvalidInput(err) {
			h.rejectInvalidInput(c, logger, &req)
			return
		}

		logger.Error("An error occurred while processing the image",
			zap.Int("source_length", len(req.SourceImage)),
			zap.String("watermark", req.Watermark.Text),
			zap.String("error_message", err.Error()),
		)
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("Image watermarked",
		zap.String("profile", result.FullLayout.Profile),
		zap.String("resized_profile", result.ResizedLayout.Profile),
	)
	c.JSON(http.StatusOK, result.Response())
}

// HealthCheck
// GET /api/v1/health
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	services := h.processor.HealthCheck()
	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

func (h *ImageHandler) rejectInvalidInput(c *gin.Context, logger *zap.Logger, req *models.WatermarkRequest) {
	logger.Warn("Invalid input while processing the image",
		zap.Int("source_length", len(req.SourceImage)),
		zap.String("watermark", req.Watermark.Text),
	)
	h.respondError(c, http.StatusUnprocessableEntity, processor.ErrInvalidInput.Message)
}

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" {
			return "unhealthy"
		}
	}
	return "healthy"
}
