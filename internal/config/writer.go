package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/modularizer/internal/defs"
)

const fileHeader = "# modularizer configuration\n" +
	"# Every key can be overridden with a MODULARIZER_* environment variable,\n" +
	"# e.g. MODULARIZER_API_PREFIX=/v2 or MODULARIZER_DEFAULTS_GUARD=false.\n"

// WriteDefault writes the default configuration to .modularizer.yaml under
// root and returns the file path. An existing file is only replaced when
// force is true.
func WriteDefault(root string, force bool) (string, error) {
	path := FilePath(root)
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDefaultConfig()); err != nil {
		return path, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return path, fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), defs.FilePerm); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
