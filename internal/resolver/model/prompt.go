// internal/resolver/model/prompt.go
package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"intent-resolver/internal/resolver/dates"
	"intent-resolver/pkg/catalog"
)

// intentHints maps common Vietnamese phrasings to operation names. The
// table is embedded verbatim in every prompt; small local models follow
// it far more reliably than the schema list alone.
var intentHints = [][2]string{
	{"doanh thu tổng", "get_total_revenue"},
	{"doanh thu tháng cụ thể", "get_monthly_revenue"},
	{"lợi nhuận tổng", "get_total_profit"},
	{"lợi nhuận trung bình theo tháng", "get_avg_profit_by_month"},
	{"lợi nhuận trung bình theo quý", "get_avg_profit_by_quarter"},
	{"so sánh lợi nhuận", "compare_profit"},
	{"doanh thu phân khúc", "get_customer_segment_report"},
	{"báo cáo phân khúc", "get_customer_segment_report"},
	{"khách hàng mới", "get_new_customer_count"},
	{"doanh thu từ khách hàng mới", "get_new_customer_revenue"},
	{"đơn hàng", "get_total_orders"},
	{"đơn hàng trên X triệu", "get_orders_above_value"},
	{"đơn hàng VIP", "get_vip_orders"},
	{"đơn hàng giá trị cao nhất", "get_top_order"},
	{"chi tiết đơn hàng ORD123", "get_order_detail"},
	{"sản phẩm trong đơn ORD123", "get_products_in_order"},
	{"lịch sử khách CUST123", "get_customer_history"},
	{"so sánh doanh thu", "compare_revenue"},
	{"so sánh doanh thu các chi nhánh", "compare_revenue_by_branch"},
	{"doanh thu các chi nhánh", "get_total_revenue_by_branch"},
	{"doanh thu sản phẩm X", "get_revenue_by_product"},
	{"sản phẩm bán chạy nhất", "get_top_selling_product"},
	{"tỷ lệ hoàn thành đơn hàng", "get_order_completion_rate"},
	{"ROI chiến dịch", "get_roi"},
	{"traffic / truy cập website", "get_traffic_stats"},
}

var exampleQueries = map[string]string{
	"get_total_revenue":           "tổng doanh thu, doanh thu năm",
	"get_monthly_revenue":         "doanh thu tháng 3",
	"get_total_profit":            "tổng lợi nhuận, lợi nhuận năm",
	"get_avg_profit_by_month":     "lợi nhuận trung bình theo tháng, lợi nhuận từng tháng",
	"get_avg_profit_by_quarter":   "lợi nhuận trung bình theo quý, lợi nhuận từng quý",
	"compare_profit":              "so sánh lợi nhuận",
	"get_customer_segment_report": "báo cáo phân khúc, doanh thu VIP",
	"get_new_customer_count":      "khách hàng mới, số lượng khách mới",
	"get_total_orders":            "đơn hàng, số đơn",
	"get_orders_above_value":      "đơn hàng trên 100 triệu",
	"get_vip_orders":              "đơn hàng VIP",
	"get_order_detail":            "chi tiết đơn hàng ORD123",
	"get_customer_history":        "lịch sử khách CUST123",
	"compare_revenue":             "so sánh doanh thu",
	"get_roi":                     "ROI, return on investment",
}

// BuildPrompt renders the classification instruction for one query:
// the full operation catalog, the intent hint table, a date-context
// block computed from the caller's anchor date, and the query itself,
// ending with the required JSON output shape.
func BuildPrompt(cat *catalog.Catalog, query string, anchor time.Time) string {
	var b strings.Builder

	names := cat.Names()
	fmt.Fprintf(&b, "You are a Vietnamese business analytics expert. Your job is to identify the correct function from exactly %d predefined functions.\n\n", len(names))
	fmt.Fprintf(&b, "AVAILABLE FUNCTIONS (%d functions):\n", len(names))

	for i, name := range names {
		op, _ := cat.Get(name)
		fmt.Fprintf(&b, "\n%d. %s\n   Mô tả: %s\n   Tham số: %s\n", i+1, op.Name, op.Description, formatParams(op))
		if ex := exampleQueries[op.Name]; ex != "" {
			fmt.Fprintf(&b, "   Ví dụ: %s\n", ex)
		}
	}

	b.WriteString("\nANALYSIS RULES:\n")
	b.WriteString("1. READ the user query carefully in Vietnamese\n")
	b.WriteString("2. IDENTIFY the main business intent (revenue, orders, customers, v.v.)\n")
	fmt.Fprintf(&b, "3. CHOOSE exactly ONE function from the %d functions above\n", len(names))
	b.WriteString("4. RETURN only JSON format with \"function\" and \"parameters\"\n")

	b.WriteString("\nQUERY INTENT MAPPING:\n")
	for _, hint := range intentHints {
		fmt.Fprintf(&b, "- \"%s\" -> %s\n", hint[0], hint[1])
	}

	b.WriteString("\nDATE CONTEXT:\n")
	fmt.Fprintf(&b, "- current date: %s\n", anchor.Format(dates.ISODate))
	fmt.Fprintf(&b, "- \"hôm nay/today\" -> %s\n", anchor.Format(dates.ISODate))
	fmt.Fprintf(&b, "- \"ngày mai/tomorrow\" -> %s\n", dates.Tomorrow(anchor))
	fmt.Fprintf(&b, "- \"hôm qua/yesterday\" -> %s\n", dates.Yesterday(anchor))
	nextWeek := dates.NextWeekRange(anchor)
	fmt.Fprintf(&b, "- \"tuần sau/next week\" -> %s to %s\n", nextWeek.Start, nextWeek.End)
	fmt.Fprintf(&b, "- \"đầu tháng này/this month start\" -> %s\n", dates.ThisMonthStart(anchor))
	cur := dates.CurrentQuarter(anchor)
	fmt.Fprintf(&b, "- \"quý này/current quarter\" -> %s to %s\n", cur.Start, cur.End)
	next := dates.NextQuarter(anchor)
	fmt.Fprintf(&b, "- \"quý sau/next quarter\" -> %s to %s\n", next.Start, next.End)
	prev := dates.PreviousQuarter(anchor)
	fmt.Fprintf(&b, "- \"quý trước/previous quarter\" -> %s to %s\n", prev.Start, prev.End)

	fmt.Fprintf(&b, "\nUSER QUERY: %q\n", query)
	b.WriteString("\nReturn ONLY this JSON format:\n")
	b.WriteString(`{"function": "function_name", "parameters": {"param1": "value1", "param2": "value2"}}`)

	return b.String()
}

func formatParams(op catalog.OperationSchema) string {
	required := make(map[string]bool, len(op.Required))
	for _, r := range op.Required {
		required[r] = true
	}

	parts := make([]string, 0, len(op.Parameters))
	for _, name := range sortedParamNames(op) {
		spec := op.Parameters[name]
		desc := fmt.Sprintf("%s (%s)", name, spec.Type)
		if required[name] {
			desc += " [REQUIRED]"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, ", ")
}

func sortedParamNames(op catalog.OperationSchema) []string {
	names := make([]string, 0, len(op.Parameters))
	for name := range op.Parameters {
		names = append(names, name)
	}
	// required params first in declaration order, the rest sorted
	ordered := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, r := range op.Required {
		ordered = append(ordered, r)
		seen[r] = true
	}
	rest := names[:0]
	for _, n := range names {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
