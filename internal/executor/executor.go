// Package executor dispatches validated operation calls to their
// handlers. The handlers here return canned demo figures; a production
// deployment swaps in handlers backed by the real analytics store.
package executor

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownOperation = errors.New("unknown operation")

// OperationKind groups catalog operations by result shape.
type OperationKind int

const (
	KindScalarMetric OperationKind = iota
	KindComparison
	KindBreakdown
	KindEntityLookup
	KindReport
)

// Result is the execution outcome handed back to the caller.
type Result struct {
	Operation string                 `json:"operation"`
	Kind      string                 `json:"kind"`
	Data      map[string]interface{} `json:"data"`
}

// HandlerFunc produces the result payload for one operation kind.
type HandlerFunc func(ctx context.Context, operation string, params map[string]string) (map[string]interface{}, error)

var kinds = map[string]OperationKind{
	"get_total_revenue":         KindScalarMetric,
	"get_monthly_revenue":       KindScalarMetric,
	"get_total_profit":          KindScalarMetric,
	"get_total_orders":          KindScalarMetric,
	"get_new_customer_count":    KindScalarMetric,
	"get_new_customer_revenue":  KindScalarMetric,
	"get_order_completion_rate": KindScalarMetric,
	"get_roi":                   KindScalarMetric,

	"compare_revenue":           KindComparison,
	"compare_profit":            KindComparison,
	"compare_revenue_by_branch": KindComparison,

	"get_total_revenue_by_branch": KindBreakdown,
	"get_revenue_by_product":      KindBreakdown,
	"get_top_selling_product":     KindBreakdown,
	"get_avg_profit_by_month":     KindBreakdown,
	"get_avg_profit_by_quarter":   KindBreakdown,
	"get_orders_above_value":      KindBreakdown,
	"get_vip_orders":              KindBreakdown,
	"get_top_order":               KindBreakdown,

	"get_order_detail":      KindEntityLookup,
	"get_products_in_order": KindEntityLookup,
	"get_customer_history":  KindEntityLookup,

	"get_customer_segment_report": KindReport,
	"get_traffic_stats":           KindReport,
}

var handlers = map[OperationKind]HandlerFunc{
	KindScalarMetric: scalarMetric,
	KindComparison:   comparison,
	KindBreakdown:    breakdown,
	KindEntityLookup: entityLookup,
	KindReport:       report,
}

var kindNames = map[OperationKind]string{
	KindScalarMetric: "scalar_metric",
	KindComparison:   "comparison",
	KindBreakdown:    "breakdown",
	KindEntityLookup: "entity_lookup",
	KindReport:       "report",
}

// Execute runs the stub handler for the given operation. Operations
// outside the dispatch table report ErrUnknownOperation.
func Execute(ctx context.Context, operation string, params map[string]string) (Result, error) {
	kind, ok := kinds[operation]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	data, err := handlers[kind](ctx, operation, params)
	if err != nil {
		return Result{}, err
	}
	return Result{Operation: operation, Kind: kindNames[kind], Data: data}, nil
}

// Supported reports whether an operation has a dispatch entry.
func Supported(operation string) bool {
	_, ok := kinds[operation]
	return ok
}

func scalarMetric(_ context.Context, operation string, params map[string]string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"metric":     operation,
		"value":      1250000000.0,
		"currency":   "VND",
		"start_date": params["start_date"],
		"end_date":   params["end_date"],
	}, nil
}

func comparison(_ context.Context, operation string, params map[string]string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"metric":        operation,
		"period1_value": 820000000.0,
		"period2_value": 945000000.0,
		"change_pct":    15.2,
		"period1":       [2]string{params["period1_start"], params["period1_end"]},
		"period2":       [2]string{params["period2_start"], params["period2_end"]},
	}, nil
}

func breakdown(_ context.Context, operation string, params map[string]string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"metric": operation,
		"rows": []map[string]interface{}{
			{"label": "Hà Nội", "value": 450000000.0},
			{"label": "Hồ Chí Minh", "value": 620000000.0},
			{"label": "Đà Nẵng", "value": 180000000.0},
		},
		"start_date": params["start_date"],
		"end_date":   params["end_date"],
	}, nil
}

func entityLookup(_ context.Context, operation string, params map[string]string) (map[string]interface{}, error) {
	data := map[string]interface{}{"metric": operation}
	for _, key := range []string{"order_id", "customer_id"} {
		if v, ok := params[key]; ok {
			data[key] = v
		}
	}
	data["items"] = []map[string]interface{}{
		{"name": "Cà phê sữa đá", "quantity": 2, "price": 45000.0},
		{"name": "Bánh mì thịt", "quantity": 1, "price": 35000.0},
	}
	return data, nil
}

func report(_ context.Context, operation string, params map[string]string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"metric":     operation,
		"start_date": params["start_date"],
		"end_date":   params["end_date"],
		"summary": map[string]interface{}{
			"customers": 1840,
			"revenue":   1250000000.0,
			"sessions":  96500,
		},
	}
	if seg, ok := params["segment"]; ok {
		data["segment"] = seg
	}
	return data, nil
}
