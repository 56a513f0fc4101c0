package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-components/pkg/assets"
)

// Config mirrors the plugin configuration surface for callers that prefer a
// YAML file over functional options, e.g. the CLI. All fields are optional;
// absent values keep the built-in defaults.
type Config struct {
	// Glob locates component files relative to the configured filesystem.
	Glob string `yaml:"glob"`

	// CSSDir and JSDir are the asset bundle output directories.
	CSSDir string `yaml:"cssDir"`
	JSDir  string `yaml:"jsDir"`

	// CollectionName is the name the definitions collection is exposed
	// under.
	CollectionName string `yaml:"collectionName"`

	// DefaultDialect selects the engine used when render calls omit one.
	DefaultDialect string `yaml:"defaultDialect"`

	// Feature toggles. Pointers distinguish "absent" from "false".
	RenderEnabled     *bool `yaml:"renderEnabled"`
	AssetsEnabled     *bool `yaml:"assetsEnabled"`
	ProductionExclude *bool `yaml:"productionExclude"`
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the configuration into pipeline options. The filesystem
// is supplied separately by the caller since YAML cannot carry one.
func (c Config) Options() []Option {
	var options []Option
	if c.CollectionName != "" {
		options = append(options, WithCollectionName(c.CollectionName))
	}
	if c.DefaultDialect != "" {
		options = append(options, WithDefaultDialect(c.DefaultDialect))
	}
	if c.CSSDir != "" || c.JSDir != "" {
		options = append(options, WithBundler(assets.NewBundler(
			assets.WithCSSDir(c.CSSDir),
			assets.WithJSDir(c.JSDir),
		)))
	}
	if c.RenderEnabled != nil {
		options = append(options, WithRenderEnabled(*c.RenderEnabled))
	}
	if c.AssetsEnabled != nil {
		options = append(options, WithAssetsEnabled(*c.AssetsEnabled))
	}
	if c.ProductionExclude != nil {
		options = append(options, WithProductionExclude(*c.ProductionExclude))
	}
	return options
}
