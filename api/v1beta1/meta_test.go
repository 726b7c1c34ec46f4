package v1beta1_test

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termbrot/api/v1beta1"
)

func TestTypeMeta(t *testing.T) {
	t.Parallel()

	tm := v1beta1.TypeMeta{APIVersion: v1beta1.APIVersion, Kind: "Configuration"}

	assert.Equal(t, "termbrot.macropower.dev/v1beta1", tm.GetAPIVersion())
	assert.Equal(t, "Configuration", tm.GetKind())
}

func TestExtendSchemaWithEnums(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		schema func() *jsonschema.Schema
	}{
		"existing properties": {
			schema: func() *jsonschema.Schema {
				jss := &jsonschema.Schema{Properties: jsonschema.NewProperties()}
				jss.Properties.Set("apiVersion", &jsonschema.Schema{Type: "string"})
				jss.Properties.Set("kind", &jsonschema.Schema{Type: "string"})

				return jss
			},
		},
		"missing properties": {
			schema: func() *jsonschema.Schema {
				return &jsonschema.Schema{}
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			jss := tc.schema()
			v1beta1.ExtendSchemaWithEnums(jss, []string{"v1", "v2"}, []string{"Configuration"})

			apiVersion, ok := jss.Properties.Get("apiVersion")
			require.True(t, ok)
			assert.Equal(t, []any{"v1", "v2"}, apiVersion.Enum)
			assert.Equal(t, "string", apiVersion.Type)

			kind, ok := jss.Properties.Get("kind")
			require.True(t, ok)
			assert.Equal(t, []any{"Configuration"}, kind.Enum)
		})
	}
}
