package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/clio/pkg/errors"
)

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return data, nil
}

// GenerateConfigContent returns the defaults file with every value
// commented out, as a starting point for a user file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// Init writes the generated content to path, creating its directory. An
// existing file is only replaced with force.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "cannot write %s", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep table headers (e.g. [[markup]]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
