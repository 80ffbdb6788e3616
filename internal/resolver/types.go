// internal/resolver/types.go
package resolver

// Status values of a ResolutionResult.
const (
	StatusReady = "ready_to_execute"
	StatusError = "error"
)

// Method tags record which reconciliation rule produced the result.
// They are part of the caller contract, not diagnostics.
const (
	MethodModelConfirmed            = "model_confirmed"
	MethodPatternOverrideSegment    = "pattern_override_segment"
	MethodPatternOverrideTopProduct = "pattern_override_top_product"
	MethodPatternOverrideOrderCount = "pattern_override_order_count"
	MethodModelOverrideSpecificity  = "model_override_specificity"
	MethodModelWithPatternDates     = "model_with_pattern_dates"
	MethodModelEnhancedDates        = "model_enhanced_dates"
	MethodModelPrimary              = "model_primary"
	MethodPatternFallback           = "pattern_fallback"
)

// ResolutionResult is the single outcome type of Resolve. Status is
// either ready_to_execute with a populated operation call, or error
// with Error and ErrorCode set.
type ResolutionResult struct {
	RequestID   string            `json:"request_id"`
	Operation   string            `json:"operation,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	Method      string            `json:"method,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	Error       string            `json:"error,omitempty"`
	ErrorCode   string            `json:"error_code,omitempty"`
}
