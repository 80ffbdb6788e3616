// Package intent holds the candidate type exchanged between the
// classifiers and the reconciler.
package intent

// Unknown marks an entity ID that a classifier looked for but could not
// extract. Downstream merging treats it as absent rather than a value.
const Unknown = "unknown"

// Candidate is one classifier's proposed operation call. Parameters are
// kept as strings end to end; numeric parameters are formatted decimal.
type Candidate struct {
	Operation  string
	Parameters map[string]string
}

// Param returns a parameter value, or "" when absent.
func (c Candidate) Param(name string) string {
	return c.Parameters[name]
}

// HasKnown reports whether a parameter is present with a real value,
// i.e. set and not the Unknown sentinel.
func (c Candidate) HasKnown(name string) bool {
	v, ok := c.Parameters[name]
	return ok && v != Unknown && v != ""
}
