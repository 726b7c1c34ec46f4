package render

import (
	"errors"
	"fmt"
)

var ErrInvalidWorkers = errors.New("invalid worker count")

// Config controls how grids are populated.
type Config struct {
	// Workers is the number of goroutines used to populate a grid. Values
	// below 2 populate sequentially.
	Workers int `json:"workers,omitempty" jsonschema:"title=Workers,minimum=0,maximum=256"`
}

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("render: %w: %d", ErrInvalidWorkers, c.Workers)
	}

	return nil
}
