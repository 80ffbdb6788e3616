// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// metaSchema validates the shape of a catalog file before the operations
// are compiled. Parameter types are limited to what the resolver can fill.
const metaSchema = `{
  "type": "object",
  "required": ["operations"],
  "properties": {
    "version": {"type": "string"},
    "operations": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "description", "parameters"],
        "properties": {
          "name": {"type": "string", "pattern": "^[a-z][a-z0-9_]*$"},
          "description": {"type": "string"},
          "parameters": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "required": ["type"],
              "properties": {
                "type": {"type": "string", "enum": ["string", "number"]},
                "description": {"type": "string"},
                "enum": {"type": "array", "items": {"type": "string"}},
                "pattern": {"type": "string"},
                "default": {"type": "string"}
              }
            }
          },
          "required": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// Catalog is an immutable set of operation schemas keyed by name.
type Catalog struct {
	operations map[string]OperationSchema
	names      []string
}

// New compiles operation schemas into a catalog. It rejects duplicate
// names, required parameters that are not declared, and patterns that do
// not compile.
func New(operations []OperationSchema) (*Catalog, error) {
	ops := make(map[string]OperationSchema, len(operations))
	names := make([]string, 0, len(operations))

	for _, op := range operations {
		if op.Name == "" {
			return nil, fmt.Errorf("operation with empty name")
		}
		if _, dup := ops[op.Name]; dup {
			return nil, fmt.Errorf("duplicate operation %q", op.Name)
		}
		for _, req := range op.Required {
			if _, ok := op.Parameters[req]; !ok {
				return nil, fmt.Errorf("operation %q requires undeclared parameter %q", op.Name, req)
			}
		}
		for pname, spec := range op.Parameters {
			if spec.Pattern != "" {
				if _, err := regexp.Compile(spec.Pattern); err != nil {
					return nil, fmt.Errorf("operation %q parameter %q: invalid pattern: %w", op.Name, pname, err)
				}
			}
		}
		ops[op.Name] = op
		names = append(names, op.Name)
	}
	sort.Strings(names)

	return &Catalog{operations: ops, names: names}, nil
}

// Load reads a catalog file, validates it against the meta-schema and
// compiles it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(metaSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("catalog file invalid: %s: %s", first.Field(), first.Description())
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}
	return New(file.Operations)
}

// Get returns the schema for an operation.
func (c *Catalog) Get(name string) (OperationSchema, bool) {
	op, ok := c.operations[name]
	return op, ok
}

// Has reports whether the catalog declares an operation.
func (c *Catalog) Has(name string) bool {
	_, ok := c.operations[name]
	return ok
}

// Names returns all operation names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of operations.
func (c *Catalog) Len() int {
	return len(c.names)
}
