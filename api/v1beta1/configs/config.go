// Package configs provides the Configuration kind for termbrot.
package configs

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/termbrot/api"
	"github.com/macropower/termbrot/api/v1beta1"
	"github.com/macropower/termbrot/pkg/render"
	"github.com/macropower/termbrot/pkg/ui"
	"github.com/macropower/termbrot/pkg/viewport"
	"github.com/macropower/termbrot/pkg/yaml"
)

const (
	Kind = "Configuration"

	schemaURL = "https://raw.githubusercontent.com/macropower/termbrot/refs/heads/main/api/v1beta1/configs/configs.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	// ValidKinds contains the valid kind values for this configuration.
	ValidKinds = []string{Kind}

	// Compile-time interface checks.
	_ v1beta1.Object = (*Config)(nil)

	// DefaultValidator validates configuration files against the schema
	// reflected from [Config].
	DefaultValidator = yaml.MustNewValidator(schemaURL, must(Schema()))
)

// Config is the termbrot configuration file.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	v1beta1.TypeMeta `json:",inline"`

	// UI configures the title, colours and key binds.
	UI *ui.Config `json:"ui,omitempty" jsonschema:"title=UI"`
	// Viewport selects the initial view of the complex plane.
	Viewport *viewport.Config `json:"viewport,omitempty" jsonschema:"title=Viewport"`
	// Render controls grid population.
	Render *render.Config `json:"render,omitempty" jsonschema:"title=Render"`
}

// New creates a [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       Kind,
		},
		Viewport: viewport.NewConfig(),
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil sections to their default values.
func (c *Config) EnsureDefaults() {
	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}

	if c.Render == nil {
		c.Render = render.NewConfig()
	} else {
		c.Render.EnsureDefaults()
	}
}

// Validate checks the semantic rules that the schema cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.UI != nil {
		errs = append(errs, c.UI.Validate())
	}
	if c.Viewport != nil {
		errs = append(errs, c.Viewport.Validate())
	}
	if c.Render != nil {
		errs = append(errs, c.Render.Validate())
	}

	return errors.Join(errs...)
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := api.MarshalYAML(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}

// WriteDefault writes the embedded default configuration to path unless a file
// already exists there. It reports whether the file was written.
func WriteDefault(path string) (bool, error) {
	written, err := api.WriteIfNotExists(path, defaultConfigYAML)
	if err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}

	return written, nil
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}

// GetPath returns the path to the user's configuration file.
func GetPath() string {
	return api.GetConfigPath("config.yaml")
}

// Schema returns the JSON schema for [Config].
func Schema() ([]byte, error) {
	b, err := yaml.NewSchemaGenerator(&Config{}).Generate()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}

	return b, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
