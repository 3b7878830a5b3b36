package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phambaophuc/image-watermark/internal/services/watermark"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Server.ReadTimeout != 10*time.Second || cfg.Server.MaxBodySize != 20*1024*1024 {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.Watermark.Cutoff != 500 {
		t.Errorf("cutoff = %d, want 500", cfg.Watermark.Cutoff)
	}
	if cfg.Watermark.Big != (ProfileConfig{FontSize: 24, PaddingX: 10, PaddingY: 6}) {
		t.Errorf("big profile = %+v", cfg.Watermark.Big)
	}
	if cfg.Watermark.Small != (ProfileConfig{FontSize: 12, PaddingX: 5, PaddingY: 3}) {
		t.Errorf("small profile = %+v", cfg.Watermark.Small)
	}
	if cfg.Resize != (ResizeConfig{Width: 300}) {
		t.Errorf("resize = %+v", cfg.Resize)
	}
	if cfg.Encoding.Quality != 75 || cfg.Encoding.Lossless {
		t.Errorf("encoding = %+v", cfg.Encoding)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WATERMARK_CUTOFF", "640")
	t.Setenv("WATERMARK_BIG_FONTSIZE", "36")
	t.Setenv("WATERMARK_SMALL_FILEPATH", "/fonts/small.ttf")
	t.Setenv("RESIZE_WIDTH", "320")
	t.Setenv("RESIZE_HEIGHT", "240")
	t.Setenv("SERVER_WRITETIMEOUT", "45s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 45*time.Second {
		t.Errorf("write timeout = %v, want 45s", cfg.Server.WriteTimeout)
	}
	if cfg.Watermark.Cutoff != 640 || cfg.Watermark.Big.FontSize != 36 {
		t.Errorf("watermark = %+v", cfg.Watermark)
	}
	if cfg.Watermark.Small.FilePath != "/fonts/small.ttf" {
		t.Errorf("small font path = %q", cfg.Watermark.Small.FilePath)
	}
	if cfg.Resize.Target().Width != 320 || cfg.Resize.Target().Height != 240 {
		t.Errorf("resize = %+v", cfg.Resize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
watermark:
  cutoff: 800
  big:
    filePath: /fonts/big.ttf
    fontSize: 40
    paddingX: 16
    paddingY: 8
resize:
  width: 0
  height: 180
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := ProfileConfig{FilePath: "/fonts/big.ttf", FontSize: 40, PaddingX: 16, PaddingY: 8}
	if cfg.Watermark.Cutoff != 800 || cfg.Watermark.Big != want {
		t.Errorf("watermark = %+v", cfg.Watermark)
	}
	if cfg.Watermark.Small.FontSize != 12 {
		t.Errorf("small profile should keep defaults, got %+v", cfg.Watermark.Small)
	}
	if cfg.Resize != (ResizeConfig{Height: 180}) {
		t.Errorf("resize = %+v", cfg.Resize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "zero font size", env: map[string]string{"WATERMARK_BIG_FONTSIZE": "0"}, want: "FontSize"},
		{name: "negative padding", env: map[string]string{"WATERMARK_SMALL_PADDINGX": "-1"}, want: "PaddingX"},
		{name: "zero cutoff", env: map[string]string{"WATERMARK_CUTOFF": "0"}, want: "Cutoff"},
		{name: "no resize target", env: map[string]string{"RESIZE_WIDTH": "0", "RESIZE_HEIGHT": "0"}, want: "Width"},
		{name: "quality out of range", env: map[string]string{"ENCODING_QUALITY": "101"}, want: "Quality"},
		{name: "unknown log level", env: map[string]string{"LOGGING_LEVEL": "loud"}, want: "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestWatermarkConfigPlacer(t *testing.T) {
	cfg := WatermarkConfig{
		Cutoff: 500,
		Big:    ProfileConfig{FilePath: "big.ttf", FontSize: 24, PaddingX: 10, PaddingY: 6},
		Small:  ProfileConfig{FilePath: "small.ttf", FontSize: 12, PaddingX: 5, PaddingY: 3},
	}

	got := cfg.Placer()

	want := watermark.Config{
		Cutoff: 500,
		Big:    watermark.SizeProfile{Name: watermark.ProfileBig, FontPath: "big.ttf", FontSize: 24, PaddingX: 10, PaddingY: 6},
		Small:  watermark.SizeProfile{Name: watermark.ProfileSmall, FontPath: "small.ttf", FontSize: 12, PaddingX: 5, PaddingY: 3},
	}
	if got != want {
		t.Fatalf("Placer() = %+v, want %+v", got, want)
	}
}
