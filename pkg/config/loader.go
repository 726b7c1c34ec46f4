package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/macropower/termbrot/api"
	"github.com/macropower/termbrot/api/v1beta1"
	"github.com/macropower/termbrot/api/v1beta1/configs"
	"github.com/macropower/termbrot/pkg/yaml"
)

// Validator validates decoded configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// Loader decodes and validates configuration data of kind T.
type Loader[T v1beta1.Object] struct {
	validator Validator
	newFunc   func() T
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] for data. The newFunc parameter is
// the constructor for T, such as [configs.New].
func NewLoaderFromBytes[T v1beta1.Object](data []byte, newFunc func() T, validator Validator) *Loader[T] {
	return &Loader[T]{
		data:      data,
		newFunc:   newFunc,
		validator: validator,
	}
}

// NewLoaderFromFile creates a [Loader] for the file at path.
func NewLoaderFromFile[T v1beta1.Object](path string, newFunc func() T, validator Validator) (*Loader[T], error) {
	data, err := api.ReadFile(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return NewLoaderFromBytes(data, newFunc, validator), nil
}

// Validate checks the data against the schema.
func (l *Loader[T]) Validate() error {
	var doc any

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&doc)
	if err != nil {
		return yaml.WithSource(err, l.data)
	}

	if l.validator != nil {
		err = l.validator.Validate(doc)
		if err != nil {
			return yaml.WithSource(err, l.data)
		}
	}

	return nil
}

// Load validates the data and decodes it on top of a fresh T. Unset
// sections receive their defaults.
//
//nolint:ireturn // Generic type parameter return is intentional.
func (l *Loader[T]) Load() (T, error) {
	var zero T

	err := l.Validate()
	if err != nil {
		return zero, err
	}

	cfg := l.newFunc()

	err = yaml.NewDecoder(bytes.NewReader(l.data)).Decode(cfg)
	if err != nil {
		return zero, yaml.WithSource(err, l.data)
	}

	cfg.EnsureDefaults()

	return cfg, nil
}

// Load reads the configuration file at path. A missing file yields the
// default configuration.
func Load(path string) (*configs.Config, error) {
	cl, err := NewLoaderFromFile(path, configs.New, configs.DefaultValidator)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, using defaults", slog.String("path", path))

		return configs.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	slog.Debug("loaded config", slog.String("path", path))

	return cfg, nil
}
