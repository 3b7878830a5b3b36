package watermark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	BackgroundOpacity = 0.32
	TextOpacity       = 0.6
)

var (
	BackgroundColor = withAlpha(color.White, BackgroundOpacity)
	TextColor       = withAlpha(color.Black, TextOpacity)
)

var ErrEmptyText = errors.New("watermark text is empty")

// Encoder writes the final composited image.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// Placer stamps a text label in the bottom-right corner of images. Fonts are
// parsed once by NewPlacer and shared read-only between requests.
type Placer struct {
	config  Config
	fonts   map[string]*opentype.Font
	encoder Encoder
}

func NewPlacer(cfg Config, encoder Encoder) (*Placer, error) {
	cfg.setNames()

	fonts := make(map[string]*opentype.Font)
	for _, profile := range cfg.profiles() {
		if profile.FontSize <= 0 {
			return nil, fmt.Errorf("%s profile: font size must be positive, got %v", profile.Name, profile.FontSize)
		}
		if _, ok := fonts[profile.FontPath]; ok {
			continue
		}
		f, err := loadFont(profile.FontPath)
		if err != nil {
			return nil, fmt.Errorf("%s profile: %w", profile.Name, err)
		}
		fonts[profile.FontPath] = f
	}

	return &Placer{
		config:  cfg,
		fonts:   fonts,
		encoder: encoder,
	}, nil
}

func (p *Placer) Config() Config {
	return p.config
}

// Stamp composites the label onto dst in place: the background rectangle
// first, then the text, so the text is never covered.
func (p *Placer) Stamp(dst draw.Image, text string) (Layout, error) {
	if text == "" {
		return Layout{}, ErrEmptyText
	}

	bounds := dst.Bounds()
	profile := p.config.Select(bounds.Dx())

	face, err := newFace(p.fonts[profile.FontPath], profile.FontSize)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to load %s font: %w", profile.Name, err)
	}
	defer face.Close()

	textWidth, textHeight, ascent := measure(face, text)
	layout := ComputeLayout(bounds.Dx(), bounds.Dy(), textWidth, textHeight, profile)

	background := layout.Background.Pixels().Add(bounds.Min)
	draw.Draw(dst, background, image.NewUniform(BackgroundColor), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(TextColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: toFixed(layout.Anchor.X + float64(bounds.Min.X)),
			Y: toFixed(layout.Anchor.Y+float64(bounds.Min.Y)) + ascent,
		},
	}
	drawer.DrawString(text)

	return layout, nil
}

// Apply stamps dst and returns its encoded form.
func (p *Placer) Apply(dst draw.Image, text string) ([]byte, Layout, error) {
	layout, err := p.Stamp(dst, text)
	if err != nil {
		return nil, Layout{}, err
	}

	buffer := &bytes.Buffer{}
	if err := p.encoder.Encode(buffer, dst); err != nil {
		return nil, layout, fmt.Errorf("failed to encode image: %w", err)
	}

	return buffer.Bytes(), layout, nil
}

// HealthCheck opens a face for every profile.
func (p *Placer) HealthCheck() map[string]string {
	status := make(map[string]string)
	for _, profile := range p.config.profiles() {
		key := "font_" + profile.Name
		face, err := newFace(p.fonts[profile.FontPath], profile.FontSize)
		if err != nil {
			status[key] = "unhealthy: " + err.Error()
			continue
		}
		face.Close()
		status[key] = "healthy"
	}
	return status
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * 255))
	return n
}
