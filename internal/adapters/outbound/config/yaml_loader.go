package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandguard/brandguard/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".brandguard.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .brandguard.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .brandguard.yaml from projectPath and overlays it on the defaults.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the raw file are reported as written.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return domain.DefaultConfig().Merge(cfg), nil
}
