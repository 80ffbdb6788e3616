package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-resolver/internal/resolver/dates"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/pkg/catalog"
)

func testReconciler(t *testing.T) *Reconciler {
	t.Helper()
	return NewReconciler(catalog.Default(), dates.NewResolver(2024))
}

func cand(op string, params map[string]string) intent.Candidate {
	if params == nil {
		params = map[string]string{}
	}
	return intent.Candidate{Operation: op, Parameters: params}
}

func TestReconcileModelFailure(t *testing.T) {
	r := testReconciler(t)

	t.Run("pattern fallback", func(t *testing.T) {
		pat := cand("get_total_orders", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"})
		got, method, ok := r.Reconcile("có bao nhiêu đơn hàng", intent.Candidate{}, false, pat, true)
		require.True(t, ok)
		assert.Equal(t, MethodPatternFallback, method)
		assert.Equal(t, "get_total_orders", got.Operation)
	})

	t.Run("nothing usable", func(t *testing.T) {
		_, _, ok := r.Reconcile("xin chào", intent.Candidate{}, false, intent.Candidate{}, false)
		assert.False(t, ok)
	})

	t.Run("model operation outside catalog falls back", func(t *testing.T) {
		model := cand("get_weather_forecast", nil)
		pat := cand("get_total_revenue", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"})
		got, method, ok := r.Reconcile("doanh thu năm 2024", model, true, pat, true)
		require.True(t, ok)
		assert.Equal(t, MethodPatternFallback, method)
		assert.Equal(t, "get_total_revenue", got.Operation)
	})
}

func TestReconcileAgreement(t *testing.T) {
	r := testReconciler(t)

	model := cand("get_monthly_revenue", map[string]string{
		"start_date": "March 2023",
		"end_date":   "March 2023",
	})
	pat := cand("get_monthly_revenue", map[string]string{
		"start_date": "2023-03-01",
		"end_date":   "2023-03-31",
	})
	got, method, ok := r.Reconcile("doanh thu tháng 3 năm 2023", model, true, pat, true)
	require.True(t, ok)
	assert.Equal(t, MethodModelConfirmed, method)
	assert.Equal(t, "2023-03-01", got.Param("start_date"))
	assert.Equal(t, "2023-03-31", got.Param("end_date"))
}

func TestReconcileMergeKeepsKnownEntities(t *testing.T) {
	r := testReconciler(t)

	model := cand("get_roi", map[string]string{"campaign_id": "unknown"})
	pat := cand("get_roi", map[string]string{"campaign_id": "black_friday_2023"})
	got, method, ok := r.Reconcile("roi chiến dịch black friday", model, true, pat, true)
	require.True(t, ok)
	assert.Equal(t, MethodModelConfirmed, method)
	assert.Equal(t, "black_friday_2023", got.Param("campaign_id"))

	// the sentinel never overwrites a real model value
	model = cand("get_roi", map[string]string{"campaign_id": "summer_sale_2024"})
	pat = cand("get_roi", map[string]string{"campaign_id": "unknown"})
	got, _, ok = r.Reconcile("roi chiến dịch", model, true, pat, true)
	require.True(t, ok)
	assert.Equal(t, "summer_sale_2024", got.Param("campaign_id"))
}

func TestReconcileDisagreementRules(t *testing.T) {
	r := testReconciler(t)

	tests := []struct {
		name       string
		query      string
		model      intent.Candidate
		pattern    intent.Candidate
		wantOp     string
		wantMethod string
	}{
		{
			name:       "segment report beats generic revenue",
			query:      "doanh thu khách hàng vip",
			model:      cand("get_total_revenue", nil),
			pattern:    cand("get_customer_segment_report", map[string]string{"segment": "premium"}),
			wantOp:     "get_customer_segment_report",
			wantMethod: MethodPatternOverrideSegment,
		},
		{
			name:       "best selling product beats model",
			query:      "sản phẩm nào bán chạy nhất",
			model:      cand("get_total_revenue", nil),
			pattern:    cand("get_top_selling_product", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"}),
			wantOp:     "get_top_selling_product",
			wantMethod: MethodPatternOverrideTopProduct,
		},
		{
			name:       "order count question beats revenue answer",
			query:      "có bao nhiêu đơn hàng trong năm 2024",
			model:      cand("get_total_revenue", nil),
			pattern:    cand("get_total_orders", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"}),
			wantOp:     "get_total_orders",
			wantMethod: MethodPatternOverrideOrderCount,
		},
		{
			name:       "monthly profit is more specific than total profit",
			query:      "lợi nhuận trung bình theo tháng năm 2024",
			model:      cand("get_avg_profit_by_month", nil),
			pattern:    cand("get_total_profit", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"}),
			wantOp:     "get_avg_profit_by_month",
			wantMethod: MethodModelOverrideSpecificity,
		},
		{
			name:       "default keeps model operation",
			query:      "tổng doanh thu quý 2",
			model:      cand("get_total_revenue", nil),
			pattern:    cand("get_total_profit", map[string]string{"start_date": "2024-04-01", "end_date": "2024-06-30"}),
			wantOp:     "get_total_revenue",
			wantMethod: MethodModelWithPatternDates,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, method, ok := r.Reconcile(tt.query, tt.model, true, tt.pattern, true)
			require.True(t, ok)
			assert.Equal(t, tt.wantOp, got.Operation)
			assert.Equal(t, tt.wantMethod, method)
		})
	}
}

func TestReconcileDisagreementAdoptsPatternDates(t *testing.T) {
	r := testReconciler(t)

	model := cand("get_total_revenue", map[string]string{"start_date": "quý 2", "end_date": "quý 2"})
	pat := cand("get_total_profit", map[string]string{"start_date": "2024-04-01", "end_date": "2024-06-30"})
	got, _, ok := r.Reconcile("tổng doanh thu quý 2", model, true, pat, true)
	require.True(t, ok)
	assert.Equal(t, "2024-04-01", got.Param("start_date"))
	assert.Equal(t, "2024-06-30", got.Param("end_date"))
}

func TestReconcileModelOnly(t *testing.T) {
	r := testReconciler(t)

	t.Run("named month enhancement", func(t *testing.T) {
		model := cand("get_monthly_revenue", map[string]string{"start_date": "unknown", "end_date": "unknown"})
		got, method, ok := r.Reconcile("doanh thu tháng 7 năm 2023", model, true, intent.Candidate{}, false)
		require.True(t, ok)
		assert.Equal(t, MethodModelEnhancedDates, method)
		assert.Equal(t, "2023-07-01", got.Param("start_date"))
		assert.Equal(t, "2023-07-31", got.Param("end_date"))
	})

	t.Run("model primary when no month in query", func(t *testing.T) {
		model := cand("get_total_revenue", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"})
		got, method, ok := r.Reconcile("tổng doanh thu", model, true, intent.Candidate{}, false)
		require.True(t, ok)
		assert.Equal(t, MethodModelPrimary, method)
		assert.Equal(t, "get_total_revenue", got.Operation)
	})
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	r := testReconciler(t)

	model := cand("get_total_revenue", map[string]string{"start_date": "free text"})
	pat := cand("get_total_revenue", map[string]string{"start_date": "2024-01-01", "end_date": "2024-12-31"})
	_, _, ok := r.Reconcile("doanh thu năm 2024", model, true, pat, true)
	require.True(t, ok)
	assert.Equal(t, "free text", model.Parameters["start_date"])
}
