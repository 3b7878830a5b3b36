package processor

import (
	"image/draw"
	"time"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/image-watermark/internal/metrics"
	"github.com/phambaophuc/image-watermark/internal/models"
	"github.com/phambaophuc/image-watermark/internal/services/watermark"
	"github.com/phambaophuc/image-watermark/pkg/utils"
	"go.uber.org/zap"
)

// Stamper is satisfied by *watermark.Placer.
type Stamper interface {
	Apply(dst draw.Image, text string) ([]byte, watermark.Layout, error)
	HealthCheck() map[string]string
}

// Result holds both encoded outputs and the layouts used to produce them.
type Result struct {
	ProcessedImage string
	Resized        string
	FullLayout     watermark.Layout
	ResizedLayout  watermark.Layout
}

func (r *Result) Response() models.WatermarkResponse {
	return models.WatermarkResponse{
		ProcessedImage: r.ProcessedImage,
		Resized:        r.Resized,
	}
}

type ImageProcessor struct {
	placer  Stamper
	resize  models.ResizeTarget
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewImageProcessor(placer Stamper, resize models.ResizeTarget, m *metrics.Metrics, logger *zap.Logger) *ImageProcessor {
	return &ImageProcessor{
		placer:  placer,
		resize:  resize,
		metrics: m,
		logger:  logger,
	}
}

// Process produces the full-size and thumbnail outputs for one request. The
// source is decoded once; each pass stamps its own buffer so the decoded
// source is never mutated. The thumbnail is resized before stamping, so its
// profile follows the resized width.
func (p *ImageProcessor) Process(req *models.WatermarkRequest) (result *Result, err error) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveProcessing(outcome(err), time.Since(start))
	}()

	if err := p.ValidateRequest(req); err != nil {
		return nil, err
	}
	text := req.Watermark.Text

	src, err := p.decodeSource(req.SourceImage)
	if err != nil {
		return nil, Failure(err)
	}

	full := imaging.Clone(src)
	processed, fullLayout, err := p.placer.Apply(full, text)
	if err != nil {
		return nil, Failure(err)
	}
	p.metrics.ObserveProfile(fullLayout.Profile)

	thumb := p.resizeImage(src, p.resize)
	resized, resizedLayout, err := p.placer.Apply(thumb, text)
	if err != nil {
		return nil, Failure(err)
	}
	p.metrics.ObserveProfile(resizedLayout.Profile)

	p.logger.Debug("Watermark applied",
		zap.Int("width", full.Bounds().Dx()),
		zap.Int("height", full.Bounds().Dy()),
		zap.String("profile", fullLayout.Profile),
		zap.Int("resized_width", thumb.Bounds().Dx()),
		zap.Int("resized_height", thumb.Bounds().Dy()),
		zap.String("resized_profile", resizedLayout.Profile),
	)

	return &Result{
		ProcessedImage: utils.EncodeDataURI(models.MediaTypeWebP, processed),
		Resized:        utils.EncodeDataURI(models.MediaTypeWebP, resized),
		FullLayout:     fullLayout,
		ResizedLayout:  resizedLayout,
	}, nil
}

func (p *ImageProcessor) HealthCheck() map[string]string {
	return p.placer.HealthCheck()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case IsInvalidInput(err):
		return metrics.OutcomeInvalidInput
	default:
		return metrics.OutcomeFailure
	}
}
