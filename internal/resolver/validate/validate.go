// Package validate normalizes a candidate operation call against its
// catalog schema before it is handed to the caller.
//
// The policy is deliberately lenient: required dates the classifiers
// could not determine are filled with the default year's bounds, a
// missing required parameter with a declared default takes the default,
// and anything else missing becomes a warning rather than a rejection.
// Enum and pattern violations are hard failures.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"intent-resolver/internal/common/errors"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/pkg/catalog"
)

type Validator struct {
	catalog     *catalog.Catalog
	defaultYear int
}

func New(cat *catalog.Catalog, defaultYear int) *Validator {
	return &Validator{catalog: cat, defaultYear: defaultYear}
}

// Apply checks a parameter set against the operation's schema and
// returns the normalized set plus warnings for required parameters that
// could not be filled. Parameters the schema does not declare are
// dropped. The error is non-nil only for hard failures: unknown
// operation or an enum/pattern violation.
func (v *Validator) Apply(operation string, params map[string]string) (map[string]string, []string, error) {
	op, ok := v.catalog.Get(operation)
	if !ok {
		return nil, nil, errors.NewUnknownOperationError(operation)
	}

	normalized := make(map[string]string, len(op.Parameters))
	var warnings []string

	for _, required := range op.Required {
		value, present := params[required]
		if present && value != "" && value != intent.Unknown {
			normalized[required] = value
			continue
		}
		switch {
		case required == "start_date" || strings.HasSuffix(required, "_start"):
			normalized[required] = fmt.Sprintf("%04d-01-01", v.defaultYear)
		case required == "end_date" || strings.HasSuffix(required, "_end"):
			normalized[required] = fmt.Sprintf("%04d-12-31", v.defaultYear)
		case op.Parameters[required].Default != "":
			normalized[required] = op.Parameters[required].Default
		default:
			// report-only: entity IDs have no derivable default
			perr := errors.NewMissingRequiredParameterError(operation, required)
			warnings = append(warnings, fmt.Sprintf("%s (%s)", perr.Error(), perr.Details))
		}
	}

	// optional declared parameters carry over as supplied
	for name := range op.Parameters {
		if _, done := normalized[name]; done {
			continue
		}
		if value, present := params[name]; present && value != "" {
			normalized[name] = value
		}
	}

	for name, value := range normalized {
		spec := op.Parameters[name]
		if len(spec.Enum) > 0 && !contains(spec.Enum, value) {
			return nil, warnings, errors.NewInvalidParameterValueError(name, value, strings.Join(spec.Enum, "|"))
		}
		if spec.Pattern != "" {
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, warnings, errors.NewCatalogSchemaViolationError(
					fmt.Sprintf("operation %s parameter %s: %v", operation, name, err))
			}
			if !re.MatchString(value) {
				return nil, warnings, errors.NewInvalidParameterValueError(name, value, spec.Pattern)
			}
		}
	}

	return normalized, warnings, nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
