package config

// Default values applied before the config file and environment.
const (
	DefaultAPIPrefix = "/api"
	DefaultNgCommand = "ng"
	DefaultLocale    = "en"

	// EnvPrefix is the prefix of environment variable overrides,
	// e.g. MODULARIZER_API_PREFIX or MODULARIZER_DEFAULTS_GUARD.
	EnvPrefix = "MODULARIZER"
)

// SupportedLocales lists the locales with translated UI strings.
var SupportedLocales = []string{"en", "pt"}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		APIPrefix: DefaultAPIPrefix,
		NgCommand: DefaultNgCommand,
		SkipTests: true,
		Locale:    DefaultLocale,
		Defaults: ArtifactDefaults{
			Service: true,
			Guard:   true,
			Layout:  true,
			Models:  true,
		},
	}
}
