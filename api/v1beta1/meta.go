// Package v1beta1 contains the v1beta1 API types for termbrot configuration.
package v1beta1

import "github.com/invopop/jsonschema"

// APIVersion is the current API version for all termbrot configuration kinds.
const APIVersion = "termbrot.macropower.dev/v1beta1"

// ValidAPIVersions contains all accepted API versions.
var ValidAPIVersions = []string{APIVersion}

// TypeMeta identifies a configuration document.
type TypeMeta struct {
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

func (tm TypeMeta) GetAPIVersion() string {
	return tm.APIVersion
}

func (tm TypeMeta) GetKind() string {
	return tm.Kind
}

// Object is implemented by every configuration kind.
type Object interface {
	GetAPIVersion() string
	GetKind() string
	EnsureDefaults()
}

// ExtendSchemaWithEnums restricts the apiVersion and kind properties of jss
// to the given values. Missing properties are added.
func ExtendSchemaWithEnums(jss *jsonschema.Schema, apiVersions, kinds []string) {
	if jss.Properties == nil {
		jss.Properties = jsonschema.NewProperties()
	}

	setEnum(jss, "apiVersion", "API Version", apiVersions)
	setEnum(jss, "kind", "Kind", kinds)
}

func setEnum(jss *jsonschema.Schema, name, title string, values []string) {
	prop, ok := jss.Properties.Get(name)
	if !ok || prop == nil {
		prop = &jsonschema.Schema{Type: "string", Title: title}
	}

	prop.Enum = make([]any, 0, len(values))
	for _, v := range values {
		prop.Enum = append(prop.Enum, v)
	}

	jss.Properties.Set(name, prop)
}
