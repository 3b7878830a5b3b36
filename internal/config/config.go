package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/phambaophuc/image-watermark/internal/models"
	"github.com/phambaophuc/image-watermark/internal/services/watermark"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "config.yaml"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Watermark WatermarkConfig `mapstructure:"watermark"`
	Resize    ResizeConfig    `mapstructure:"resize"`
	Encoding  EncodingConfig  `mapstructure:"encoding"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout" validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout" validate:"gte=0"`
	MaxBodySize  int64         `mapstructure:"maxBodySize" validate:"gt=0"`
}

type WatermarkConfig struct {
	Cutoff int           `mapstructure:"cutoff" validate:"gte=1"`
	Big    ProfileConfig `mapstructure:"big"`
	Small  ProfileConfig `mapstructure:"small"`
}

// ProfileConfig is one size profile. An empty FilePath uses the bundled font.
type ProfileConfig struct {
	FilePath string  `mapstructure:"filePath"`
	FontSize float64 `mapstructure:"fontSize" validate:"gt=0"`
	PaddingX float64 `mapstructure:"paddingX" validate:"gte=0"`
	PaddingY float64 `mapstructure:"paddingY" validate:"gte=0"`
}

type ResizeConfig struct {
	Width  int `mapstructure:"width" validate:"gte=0,required_without=Height"`
	Height int `mapstructure:"height" validate:"gte=0,required_without=Width"`
}

type EncodingConfig struct {
	Quality  float32 `mapstructure:"quality" validate:"gte=0,lte=100"`
	Lossless bool    `mapstructure:"lossless"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Load reads .env, then the optional YAML file at path, then the environment.
// Environment keys are the dotted config keys upper-cased with '_', e.g.
// WATERMARK_BIG_FONTSIZE. PORT is accepted for server.port.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.maxBodySize", 20*1024*1024) // 20MB

	v.SetDefault("watermark.cutoff", 500)
	v.SetDefault("watermark.big.filePath", "")
	v.SetDefault("watermark.big.fontSize", 24)
	v.SetDefault("watermark.big.paddingX", 10)
	v.SetDefault("watermark.big.paddingY", 6)
	v.SetDefault("watermark.small.filePath", "")
	v.SetDefault("watermark.small.fontSize", 12)
	v.SetDefault("watermark.small.paddingX", 5)
	v.SetDefault("watermark.small.paddingY", 3)

	v.SetDefault("resize.width", 300)
	v.SetDefault("resize.height", 0)

	v.SetDefault("encoding.quality", 75)
	v.SetDefault("encoding.lossless", false)

	v.SetDefault("logging.level", "info")
}

func (c WatermarkConfig) Placer() watermark.Config {
	return watermark.Config{
		Cutoff: c.Cutoff,
		Big:    c.Big.profile(watermark.ProfileBig),
		Small:  c.Small.profile(watermark.ProfileSmall),
	}
}

func (c ProfileConfig) profile(name string) watermark.SizeProfile {
	return watermark.SizeProfile{
		Name:     name,
		FontPath: c.FilePath,
		FontSize: c.FontSize,
		PaddingX: c.PaddingX,
		PaddingY: c.PaddingY,
	}
}

func (c ResizeConfig) Target() models.ResizeTarget {
	return models.ResizeTarget{Width: c.Width, Height: c.Height}
}
