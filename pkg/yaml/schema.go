package yaml

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaGenerator reflects a JSON schema from a Go value.
type SchemaGenerator struct {
	reflector *jsonschema.Reflector
	v         any
}

// NewSchemaGenerator creates a [SchemaGenerator] for v. Definitions are
// inlined, no $id is emitted, and unknown properties are rejected.
func NewSchemaGenerator(v any) *SchemaGenerator {
	return &SchemaGenerator{
		v: v,
		reflector: &jsonschema.Reflector{
			DoNotReference: true,
			Anonymous:      true,
		},
	}
}

// Generate returns the schema as indented JSON.
func (g *SchemaGenerator) Generate() ([]byte, error) {
	jss := g.reflector.Reflect(g.v)

	b, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}
