package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorTaxonomy(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name     string
		err      *StandardError
		wantCode ErrorCode
		wantSoft bool
	}{
		{"query too short", NewQueryTooShortError("ab"), ErrCodeQueryTooShort, false},
		{"unknown operation", NewUnknownOperationError("get_weather"), ErrCodeUnknownOperation, false},
		{"missing required parameter", NewMissingRequiredParameterError("get_order_detail", "order_id"), ErrCodeMissingRequiredParameter, false},
		{"invalid parameter value", NewInvalidParameterValueError("segment", "bogus", "all|premium"), ErrCodeInvalidParameterValue, false},
		{"completion unavailable", NewCompletionUnavailableError(cause), ErrCodeCompletionUnavailable, true},
		{"unparseable response", NewUnparseableResponseError("tôi không biết"), ErrCodeUnparseableResponse, true},
		{"resolution failed", NewResolutionFailedError("xin chào"), ErrCodeResolutionFailed, false},
		{"catalog load failed", NewCatalogLoadFailedError("configs/catalog.json", cause), ErrCodeCatalogLoadFailed, false},
		{"catalog schema violation", NewCatalogSchemaViolationError("bad pattern"), ErrCodeCatalogSchemaViolation, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, Code(tt.err))
			assert.Equal(t, tt.wantSoft, IsSoft(tt.err))
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestMissingRequiredParameterDetails(t *testing.T) {
	err := NewMissingRequiredParameterError("get_customer_history", "customer_id")
	assert.Contains(t, err.Details, "get_customer_history")
	assert.Contains(t, err.Details, "customer_id")
}

func TestUnparseableResponseTruncatesDetails(t *testing.T) {
	long := strings.Repeat("a", 500)
	err := NewUnparseableResponseError(long)
	require.LessOrEqual(t, len(err.Details), 200)
}

func TestHelpersOnForeignErrors(t *testing.T) {
	assert.False(t, IsSoft(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeResolutionFailed, Code(fmt.Errorf("plain")))
}
