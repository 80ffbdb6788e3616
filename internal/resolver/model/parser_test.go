// internal/resolver/model/parser_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-resolver/pkg/catalog"
)

func TestParseResponseStrategies(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name      string
		response  string
		wantOp    string
		wantParam map[string]string
		wantOK    bool
	}{
		{
			name:     "clean json",
			response: `{"function": "get_total_revenue", "parameters": {"start_date": "2024-01-01", "end_date": "2024-12-31"}}`,
			wantOp:   "get_total_revenue",
			wantParam: map[string]string{
				"start_date": "2024-01-01",
				"end_date":   "2024-12-31",
			},
			wantOK: true,
		},
		{
			name:     "json embedded in prose",
			response: `Based on the query, the answer is {"function": "get_vip_orders", "parameters": {}} as requested.`,
			wantOp:   "get_vip_orders",
			wantOK:   true,
		},
		{
			name:     "fenced json",
			response: "```json\n{\"function\": \"get_total_orders\", \"parameters\": {\"start_date\": \"2024-05-01\"}}\n```",
			wantOp:   "get_total_orders",
			wantParam: map[string]string{
				"start_date": "2024-05-01",
			},
			wantOK: true,
		},
		{
			name:     "multiline json normalized",
			response: "{\n  \"function\": \"get_roi\",\n  \"parameters\": {\n    \"campaign_id\": \"summer_sale\"\n  }\n}",
			wantOp:   "get_roi",
			wantParam: map[string]string{
				"campaign_id": "summer_sale",
			},
			wantOK: true,
		},
		{
			name:     "numeric parameter stringified",
			response: `{"function": "get_orders_above_value", "parameters": {"min_value": 5000000}}`,
			wantOp:   "get_orders_above_value",
			wantParam: map[string]string{
				"min_value": "5000000",
			},
			wantOK: true,
		},
		{
			name:     "broken json falls back to field extraction",
			response: `The function is "function": "get_customer_segment_report" with "segment": "premium" and "start_date": "2024-01-01"`,
			wantOp:   "get_customer_segment_report",
			wantParam: map[string]string{
				"segment":    "premium",
				"start_date": "2024-01-01",
			},
			wantOK: true,
		},
		{
			name:     "call syntax single quotes",
			response: `Output: get_customer_history(customer_id='cust42')`,
			wantOp:   "get_customer_history",
			wantParam: map[string]string{
				"customer_id": "cust42",
			},
			wantOK: true,
		},
		{
			name:     "call syntax mixed quoting",
			response: `compare_revenue(period1_start="2024-01-01", period1_end='2024-03-31', period2_start=2024-04-01)`,
			wantOp:   "compare_revenue",
			wantParam: map[string]string{
				"period1_start": "2024-01-01",
				"period1_end":   "2024-03-31",
				"period2_start": "2024-04-01",
			},
			wantOK: true,
		},
		{
			name:     "bare name in prose",
			response: `I would use get_top_selling_product for this query.`,
			wantOp:   "get_top_selling_product",
			wantOK:   true,
		},
		{
			name:     "longest name preferred",
			response: `Either get_total_revenue or get_total_revenue_by_branch could work here.`,
			wantOp:   "get_total_revenue_by_branch",
			wantOK:   true,
		},
		{
			name:     "nothing usable",
			response: `Tôi không chắc câu hỏi này thuộc loại nào.`,
			wantOK:   false,
		},
		{
			name:     "empty response",
			response: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseResponse(tt.response, cat)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantOp, got.Operation)
			for k, v := range tt.wantParam {
				assert.Equal(t, v, got.Parameters[k], "parameter %s", k)
			}
		})
	}
}

func TestStripDecoration(t *testing.T) {
	assert.Equal(t, `{"function": "x"}`, stripDecoration("Function call: {\"function\": \"x\"}"))
	assert.Equal(t, `{"function": "x"}`, stripDecoration("```\n{\"function\": \"x\"}\n```"))
	assert.Equal(t, "", stripDecoration("   "))
}

func TestBuildPrompt(t *testing.T) {
	cat := catalog.Default()
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	prompt := BuildPrompt(cat, "Doanh thu tháng 3 năm 2023", anchor)

	assert.Contains(t, prompt, "24 predefined functions")
	assert.Contains(t, prompt, "get_total_revenue")
	assert.Contains(t, prompt, "get_customer_segment_report")
	assert.Contains(t, prompt, "[REQUIRED]")
	assert.Contains(t, prompt, `"Doanh thu tháng 3 năm 2023"`)
	assert.Contains(t, prompt, "QUERY INTENT MAPPING")
	assert.Contains(t, prompt, "current date: 2024-03-15")
	assert.Contains(t, prompt, `"ngày mai/tomorrow" -> 2024-03-16`)
	assert.Contains(t, prompt, `"quý này/current quarter" -> 2024-01-01 to 2024-03-31`)
}
