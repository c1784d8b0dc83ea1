package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges collected configs (later ones override earlier non-zero
// fields), fills the remaining zero fields with defaults and validates.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithTransformers(optionalInts{override: true})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergeDefaults(config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, ""); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

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
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// mergeDefaults fills every zero field of cfg with its package default.
func mergeDefaults(cfg *StructuredConfig) error {
	if err := mergo.Merge(cfg, defaultConfig(), mergo.WithTransformers(optionalInts{})); err != nil {
		return fmt.Errorf("error applying default configs: %w", err)
	}

	return nil
}

var intPtrType = reflect.TypeOf((*int)(nil))

// optionalInts merges *int fields by presence instead of value, so an
// explicit 0 from a later source is kept rather than treated as unset.
// A nil destination is filled by mergo itself.
type optionalInts struct {
	override bool
}

func (t optionalInts) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != intPtrType {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if t.override && !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}
