// pkg/catalog/schema.go
package catalog

// Segment values accepted by segment-typed parameters.
var Segments = []string{
	"all",
	"premium",
	"middle",
	"economy",
	"enterprise",
	"individual",
	"casual",
	"new_customer",
	"returning_customer",
}

// DatePattern constrains every date parameter to ISO calendar dates.
const DatePattern = `^\d{4}-\d{2}-\d{2}$`

type ParamSpec struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Default     string   `json:"default,omitempty"`
}

type OperationSchema struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]ParamSpec `json:"parameters"`
	Required    []string             `json:"required,omitempty"`
}

type catalogFile struct {
	Version    string            `json:"version"`
	Operations []OperationSchema `json:"operations"`
}
