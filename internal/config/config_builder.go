package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in precedence order. Each
// with* step appends one layer (or records an error); build merges them so
// that a later layer overrides non-zero fields of an earlier one.
type configBuilder struct {
	configs []*StructuredConfig
	// sources names each entry of configs, for error context.
	sources []string
	// environ replaces the process environment when non-nil.
	environ map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		sources: make([]string, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for i, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", b.source(i), err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) add(source string, cfg *StructuredConfig) {
	b.configs = append(b.configs, cfg)
	b.sources = append(b.sources, source)
}

func (b *configBuilder) fail(source string, err error) {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
}

func (b *configBuilder) source(i int) string {
	if i < len(b.sources) {
		return b.sources[i]
	}
	return "unnamed"
}

// withEnvironment makes withEnv read from environ instead of the process
// environment.
func (b *configBuilder) withEnvironment(environ map[string]string) *configBuilder {
	b.environ = environ
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add("defaults", defaults())
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(); err != nil {
		b.fail("dotenv", err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.fail("env", err)
		return b
	}

	b.add("env", envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.fail("flags", err)
		return b
	}

	b.add("flags", flags)
	return b
}

// withJSON loads the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.fail("json", err)
		return b
	}

	b.add("json", jsonCfg)
	return b
}
