package config

// Config holds the settings that shape a modularizer run.
type Config struct {
	// APIPrefix is prepended to the module name in the generated service URL.
	APIPrefix string `mapstructure:"api_prefix" yaml:"api_prefix"`
	// NgCommand is the Angular CLI executable.
	NgCommand string `mapstructure:"ng_command" yaml:"ng_command"`
	// SkipTests controls --skip-tests on every Angular CLI command.
	SkipTests bool `mapstructure:"skip_tests" yaml:"skip_tests"`
	// Locale selects prompt and summary strings: "en" or "pt".
	Locale string `mapstructure:"locale" yaml:"locale"`
	// Defaults are the preselected answers of the four yes/no prompts.
	Defaults ArtifactDefaults `mapstructure:"defaults" yaml:"defaults"`
}

// ArtifactDefaults holds the default answer for each artifact prompt.
type ArtifactDefaults struct {
	Service bool `mapstructure:"service" yaml:"service"`
	Guard   bool `mapstructure:"guard" yaml:"guard"`
	Layout  bool `mapstructure:"layout" yaml:"layout"`
	Models  bool `mapstructure:"models" yaml:"models"`
}
