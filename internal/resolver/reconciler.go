// internal/resolver/reconciler.go
package resolver

import (
	"intent-resolver/internal/resolver/dates"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/internal/resolver/vntext"
	"intent-resolver/pkg/catalog"
)

// Reconciler merges the model and pattern candidates into one operation
// call. Disagreements between the two are settled by an ordered rule
// table; rule order is the precedence contract, so new rules go in at
// the position their priority demands.
type Reconciler struct {
	catalog *catalog.Catalog
	dates   *dates.Resolver
	rules   []reconcileRule
}

// reconcileInput carries everything a rule predicate may inspect.
type reconcileInput struct {
	query     string // normalized
	model     intent.Candidate
	pattern   intent.Candidate
	patternOK bool
}

type reconcileRule struct {
	name  string
	when  func(in reconcileInput) bool
	apply func(in reconcileInput) (intent.Candidate, string)
}

func NewReconciler(cat *catalog.Catalog, dr *dates.Resolver) *Reconciler {
	r := &Reconciler{catalog: cat, dates: dr}
	r.rules = []reconcileRule{
		{
			// Model picked the generic revenue operation while the
			// pattern saw a segment-specific report query.
			name: MethodPatternOverrideSegment,
			when: func(in reconcileInput) bool {
				return in.model.Operation == "get_total_revenue" &&
					in.pattern.Operation == "get_customer_segment_report" &&
					in.pattern.Param("segment") != "all"
			},
			apply: func(in reconcileInput) (intent.Candidate, string) {
				return in.pattern, MethodPatternOverrideSegment
			},
		},
		{
			// Best-selling-product queries are a known model weak spot.
			name: MethodPatternOverrideTopProduct,
			when: func(in reconcileInput) bool {
				return in.pattern.Operation == "get_top_selling_product" &&
					vntext.ContainsAny(in.query, "sản phẩm", "product") &&
					vntext.ContainsAny(in.query, "bán chạy nhất", "best selling", "phổ biến nhất", "popular", "top selling", "nhiều nhất")
			},
			apply: func(in reconcileInput) (intent.Candidate, string) {
				return in.pattern, MethodPatternOverrideTopProduct
			},
		},
		{
			// Model answered with revenue for an explicit order-count
			// question.
			name: MethodPatternOverrideOrderCount,
			when: func(in reconcileInput) bool {
				return in.model.Operation == "get_total_revenue" &&
					in.pattern.Operation == "get_total_orders" &&
					vntext.ContainsAny(in.query, "đơn hàng", "orders", "order", "bao nhiêu đơn", "số đơn")
			},
			apply: func(in reconcileInput) (intent.Candidate, string) {
				return in.pattern, MethodPatternOverrideOrderCount
			},
		},
		{
			// Monthly profit is more specific than the pattern's general
			// profit; trust the model's operation, keep pattern dates.
			name: MethodModelOverrideSpecificity,
			when: func(in reconcileInput) bool {
				return in.model.Operation == "get_avg_profit_by_month" &&
					in.pattern.Operation == "get_total_profit"
			},
			apply: func(in reconcileInput) (intent.Candidate, string) {
				return adoptPatternDates(in.model, in.pattern), MethodModelOverrideSpecificity
			},
		},
		{
			// Any other disagreement: the model's operation choice
			// stands, pattern dates are still the better extraction.
			name: MethodModelWithPatternDates,
			when: func(in reconcileInput) bool { return true },
			apply: func(in reconcileInput) (intent.Candidate, string) {
				return adoptPatternDates(in.model, in.pattern), MethodModelWithPatternDates
			},
		},
	}
	return r
}

// Reconcile resolves the two candidates into the final operation call
// and its method tag. The boolean is false when neither path produced
// anything usable.
func (r *Reconciler) Reconcile(query string, model intent.Candidate, modelOK bool, pat intent.Candidate, patternOK bool) (intent.Candidate, string, bool) {
	query = vntext.Normalize(query)

	// Model failure, or a model operation outside the catalog, drops
	// straight to the pattern result.
	if !modelOK || !r.catalog.Has(model.Operation) {
		if patternOK {
			return pat, MethodPatternFallback, true
		}
		return intent.Candidate{}, "", false
	}

	if !patternOK {
		return r.enhanceDates(query, model)
	}

	if pat.Operation == model.Operation {
		return mergeConfirmed(model, pat), MethodModelConfirmed, true
	}

	in := reconcileInput{query: query, model: model, pattern: pat, patternOK: patternOK}
	for _, rule := range r.rules {
		if rule.when(in) {
			cand, method := rule.apply(in)
			return cand, method, true
		}
	}
	// unreachable: the last rule always matches
	return model, MethodModelPrimary, true
}

// mergeConfirmed keeps the model's parameters as base and overrides
// with pattern values wherever the pattern has a real (non-sentinel)
// extraction: dates, entity IDs and segment.
func mergeConfirmed(model, pat intent.Candidate) intent.Candidate {
	merged := cloneCandidate(model)

	if pat.HasKnown("start_date") && pat.HasKnown("end_date") {
		merged.Parameters["start_date"] = pat.Param("start_date")
		merged.Parameters["end_date"] = pat.Param("end_date")
	}
	for _, id := range []string{"campaign_id", "customer_id", "order_id"} {
		if pat.HasKnown(id) {
			merged.Parameters[id] = pat.Param(id)
		}
	}
	if pat.HasKnown("segment") {
		merged.Parameters["segment"] = pat.Param("segment")
	}
	for _, p := range []string{"period1_start", "period1_end", "period2_start", "period2_end"} {
		if pat.HasKnown(p) {
			merged.Parameters[p] = pat.Param(p)
		}
	}
	return merged
}

// adoptPatternDates keeps the model candidate but swaps in the
// pattern's date range when it extracted one.
func adoptPatternDates(model, pat intent.Candidate) intent.Candidate {
	merged := cloneCandidate(model)
	if pat.HasKnown("start_date") && pat.HasKnown("end_date") {
		merged.Parameters["start_date"] = pat.Param("start_date")
		merged.Parameters["end_date"] = pat.Param("end_date")
	}
	return merged
}

// enhanceDates covers the no-pattern-candidate case: a direct month or
// year extraction from the raw query still beats whatever free-text
// dates the model produced.
func (r *Reconciler) enhanceDates(query string, model intent.Candidate) (intent.Candidate, string, bool) {
	if month, ok := r.dates.NamedMonth(query); ok {
		year := r.dates.Year(query)
		rng := dates.MonthRange(year, month)
		merged := cloneCandidate(model)
		merged.Parameters["start_date"] = rng.Start
		merged.Parameters["end_date"] = rng.End
		return merged, MethodModelEnhancedDates, true
	}
	return model, MethodModelPrimary, true
}

func cloneCandidate(c intent.Candidate) intent.Candidate {
	params := make(map[string]string, len(c.Parameters))
	for k, v := range c.Parameters {
		params[k] = v
	}
	return intent.Candidate{Operation: c.Operation, Parameters: params}
}
