// Package config loads build configuration.
//
// Values are layered, lowest precedence first:
//
//  1. built-in defaults ([Defaults])
//  2. a YAML file, given explicitly or through DATANATE_CONFIG
//  3. environment variables with the DATANATE_ prefix
//     (DATANATE_OUTPUT_DIR=public sets output_dir; lists are comma separated)
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/datanate/pkg/errors"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DATANATE_"

// EnvConfigFile names the environment variable holding a config file path.
const EnvConfigFile = EnvPrefix + "CONFIG"

// Config is the build configuration.
type Config struct {
	// MetricsFile is the metric definition file (.yaml, .yml or .toml).
	MetricsFile string `koanf:"metrics_file"`

	// DataDir holds the CSV series files.
	DataDir string `koanf:"data_dir"`

	// OutputDir receives the built site.
	OutputDir string `koanf:"output_dir"`

	// AssetsDir holds first-party stylesheets, scripts and static files.
	AssetsDir string `koanf:"assets_dir"`

	// NodeModulesDir is where vendored modules are installed.
	NodeModulesDir string `koanf:"node_modules_dir"`

	// VendorDir is the output subdirectory for vendored modules.
	VendorDir string `koanf:"vendor_dir"`

	// ModuleSourceSubdir is the directory inside each installed module
	// holding its ES-module sources.
	ModuleSourceSubdir string `koanf:"module_source_subdir"`

	Stylesheets   []string `koanf:"stylesheets"`
	Scripts       []string `koanf:"scripts"`
	LocalModules  []string `koanf:"local_modules"`
	VendorModules []string `koanf:"vendor_modules"`
	StaticFiles   []string `koanf:"static_files"`

	// Title is the dashboard page title.
	Title string `koanf:"title"`

	// Diagram enables the influence diagram asset.
	Diagram bool `koanf:"diagram"`
}

// defaults returns the built-in values keyed as in the config file.
func defaults() map[string]any {
	return map[string]any{
		"metrics_file":         "data/metrics.yaml",
		"data_dir":             "data",
		"output_dir":           "dist",
		"assets_dir":           "assets",
		"node_modules_dir":     "node_modules",
		"vendor_dir":           "d3",
		"module_source_subdir": "src",
		"stylesheets":          []string{"style.css"},
		"scripts":              []string{"app.js"},
		"local_modules":        []string{"helpers.js", "lineChart.js", "barChart.js", "relationshipChart.js"},
		"vendor_modules": []string{
			"d3-array", "d3-axis", "d3-color", "d3-dispatch", "d3-drag", "d3-ease",
			"d3-force", "d3-format", "d3-interpolate", "d3-path", "d3-quadtree",
			"d3-scale", "d3-selection", "d3-shape", "d3-time", "d3-time-format",
			"d3-timer", "internmap",
		},
		"static_files": []string{"favicon.svg"},
		"title":        "Datanate",
		"diagram":      true,
	}
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	cfg, err := load("", false)
	if err != nil {
		// Built-in values always decode.
		panic(err)
	}
	return cfg
}

// Load builds a Config by layering defaults, the YAML file at path (or at
// $DATANATE_CONFIG when path is empty) and DATANATE_* environment
// variables. A missing explicit file is an error.
func Load(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, external bool) (*Config, error) {
	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "set default %s", key)
		}
	}

	if external {
		if path == "" {
			path = os.Getenv(EnvConfigFile)
		}
		if path != "" {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
			}
		}

		// DATANATE_OUTPUT_DIR -> output_dir. Keys are flat, so underscores
		// are kept.
		envProvider := env.ProviderWithValue(EnvPrefix, ".", envValue)
		if err := k.Load(envProvider, nil); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read environment")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return &cfg, nil
}

// listKeys are the keys whose environment values are comma separated.
var listKeys = map[string]bool{
	"stylesheets":    true,
	"scripts":        true,
	"local_modules":  true,
	"vendor_modules": true,
	"static_files":   true,
}

func envValue(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if !listKeys[key] {
		return key, value
	}
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// Validate checks that required directories are named and that relative
// names stay inside their directories.
func (c *Config) Validate() error {
	required := []struct {
		key, val string
	}{
		{"metrics_file", c.MetricsFile},
		{"data_dir", c.DataDir},
		{"output_dir", c.OutputDir},
		{"assets_dir", c.AssetsDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be empty", r.key)
		}
	}
	if err := errors.ValidatePath(c.VendorDir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "vendor_dir")
	}
	if c.ModuleSourceSubdir != "" {
		if err := errors.ValidatePath(c.ModuleSourceSubdir); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "module_source_subdir")
		}
	}
	for _, list := range [][]string{c.Stylesheets, c.Scripts, c.LocalModules, c.StaticFiles} {
		for _, name := range list {
			if err := errors.ValidateManifestFilename(name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "asset %q", name)
			}
		}
	}
	for _, name := range c.VendorModules {
		if err := errors.ValidateModuleName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "vendor module %q", name)
		}
	}
	return nil
}
