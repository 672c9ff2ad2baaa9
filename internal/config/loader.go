package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/modu-ai/modularizer/internal/defs"
)

// Loader reads configuration with viper. Precedence, lowest first:
// defaults, .modularizer.yaml in the project root, MODULARIZER_* env vars.
type Loader struct {
	logger   *slog.Logger
	fileUsed string
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// FilePath returns the configuration file path for a project root.
func FilePath(root string) string {
	return filepath.Join(filepath.Clean(root), defs.ConfigYAML)
}

// Load reads the configuration for the project at root and validates it.
// A missing configuration file is not an error.
func (l *Loader) Load(root string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefaultConfig())

	path := FilePath(root)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l.fileUsed = ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
		l.logger.Debug("config file not found, using defaults", "path", path)
	} else {
		l.fileUsed = path
		l.logger.Debug("config file loaded", "path", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileUsed returns the configuration file read by the last Load, or an
// empty string when defaults and environment were used alone.
func (l *Loader) FileUsed() string {
	return l.fileUsed
}

// setDefaults registers every key so environment overrides are honoured
// during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api_prefix", cfg.APIPrefix)
	v.SetDefault("ng_command", cfg.NgCommand)
	v.SetDefault("skip_tests", cfg.SkipTests)
	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("defaults.service", cfg.Defaults.Service)
	v.SetDefault("defaults.guard", cfg.Defaults.Guard)
	v.SetDefault("defaults.layout", cfg.Defaults.Layout)
	v.SetDefault("defaults.models", cfg.Defaults.Models)
}
