// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging of
// YAML and TOML files, environment variable overrides, validation, and
// migration of arguments files written for the JavaScript tool.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// ErrInvalidConfig wraps every failure to produce a usable configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry resolves rule IDs and names used as option keys.
	// Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (JANDENT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.jandent.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/jandent/config.yaml)
//  6. System config (/etc/jandent/config.yaml)
//  7. Defaults
//
// Replace-table entries implied by toggles are registered once, after every
// layer is merged.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	cfg := config.NewConfig()
	cfg.Chars.Replace = config.NewReplaceTable()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", opts.ExplicitPath, false},
	}

	resolve := func(key string) (config.OptionName, bool) {
		return ResolveOptionKey(opts.Registry, key)
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		file, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s config %s: %w", ErrInvalidConfig, layer.name, layer.path, err)
		}
		unknown := file.apply(cfg, resolve)
		for _, w := range unknownOptionWarnings(unknown, layer.path) {
			result.Warnings = append(result.Warnings, w.Error())
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("%w: load environment: %w", ErrInvalidConfig, err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	cfg.SyncReplaceTable()

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, &validation.Errors[0])
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// WriteConfig writes a configuration file, choosing TOML or YAML by extension.
func WriteConfig(cfg *config.Config, path, header string) error {
	var (
		body []byte
		err  error
	)
	if IsTOMLConfig(path) {
		body, err = cfg.ToTOML()
	} else {
		body, err = cfg.ToYAML()
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, config.WithHeader(header, body), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
