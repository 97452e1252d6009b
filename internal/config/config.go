package config

import (
	"fmt"
	"os"
	"strconv"

	"invoscan/internal/logger"
)

// Defaults for the extraction pipeline. The page ceiling and DPI mirror
// the reference scanner behavior but stay overridable per run.
const (
	DefaultMaxPages  = 2
	DefaultRasterDPI = 400
	DefaultOutput    = "output_text.txt"
)

type Config struct {
	// OCR Configuration
	OCRBackend  string // "tesseract" or "vision"
	PdftoppmBin string
	RasterDPI   int

	// Extraction Configuration
	MaxPages   int
	OutputFile string
	DedupNames bool

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		OCRBackend:    getEnv("OCR_BACKEND", "tesseract"),
		PdftoppmBin:   getEnv("PDFTOPPM_BIN", "pdftoppm"),
		RasterDPI:     getEnvInt("RASTER_DPI", DefaultRasterDPI),
		MaxPages:      getEnvInt("MAX_PAGES", DefaultMaxPages),
		OutputFile:    getEnv("OUTPUT_FILE", DefaultOutput),
		DedupNames:    getEnvBool("DEDUP_NAMES", false),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.OCRBackend {
	case "tesseract", "vision":
	default:
		return fmt.Errorf("OCR_BACKEND must be \"tesseract\" or \"vision\", got %q", c.OCRBackend)
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("MAX_PAGES must be at least 1, got %d", c.MaxPages)
	}
	if c.RasterDPI < 72 {
		return fmt.Errorf("RASTER_DPI must be at least 72, got %d", c.RasterDPI)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
