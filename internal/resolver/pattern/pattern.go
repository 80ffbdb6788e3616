// Package pattern classifies Vietnamese analytics questions into
// operation calls with a fixed, ordered decision list of keyword
// branches. Branch order is a deliberate disambiguation policy: a query
// matching several branches is routed by the first one.
package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"intent-resolver/internal/resolver/dates"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/internal/resolver/segments"
	"intent-resolver/internal/resolver/vntext"
)

var (
	orderIDDetect  = regexp.MustCompile(`ord\d+|order[\s#]?\d+|\b\w*\d{6,}`)
	orderIDExtract = regexp.MustCompile(`ord\d+|order[\s#]?\d+|\b[a-z]*\d{6,}`)
	customerID     = regexp.MustCompile(`cust\d+|customer[\s#]?\d+`)
	millionValue   = regexp.MustCompile(`(\d+)\s*(?:triệu|million)`)

	productNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`sản phẩm\s+([a-zA-Z0-9\s]+?)(?:\s+từ|\s+trong|\s*$)`),
		regexp.MustCompile(`product\s+([a-zA-Z0-9\s]+?)(?:\s+from|\s+in|\s*$)`),
		regexp.MustCompile(`(?:sản phẩm|product)\s+([a-zA-Z0-9]+)`),
	}

	campaignIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`chiến dịch\s+([a-zA-Z0-9_\-]+)`),
		regexp.MustCompile(`campaign\s+([a-zA-Z0-9_\-]+)`),
		regexp.MustCompile(`của\s+([a-zA-Z0-9_\-]+)`),
		regexp.MustCompile(`roi\s+([a-zA-Z0-9_\-]+)`),
	}
)

var bestSellingKeywords = []string{
	"bán chạy nhất", "bán chạy", "best selling", "best-selling",
	"phổ biến nhất", "phổ biến", "popular", "top selling", "top-selling",
	"nhiều nhất", "cao nhất", "hàng đầu", "đứng đầu",
	"top", "leading", "hot nhất", "hot",
}

// Classifier emits pattern-derived operation candidates. Construct with
// NewClassifier; safe for concurrent use.
type Classifier struct {
	dates     *dates.Resolver
	segments  *segments.SegmentClassifier
	campaigns *segments.CampaignClassifier
}

func NewClassifier(dr *dates.Resolver, sc *segments.SegmentClassifier, cc *segments.CampaignClassifier) *Classifier {
	return &Classifier{dates: dr, segments: sc, campaigns: cc}
}

// Classify runs the decision list. Returns false only when no top-level
// branch's keywords appear in the query at all.
func (c *Classifier) Classify(query string) (intent.Candidate, bool) {
	q := vntext.Normalize(query)
	year := c.dates.Year(q)
	rng := c.dates.Resolve(q, year)
	segment := c.segments.Classify(q)

	switch {
	case vntext.ContainsAny(q, "sản phẩm", "product"):
		return c.productBranch(q, rng)

	case vntext.ContainsAny(q, "phân khúc", "segment") && vntext.ContainsAny(q, "báo cáo", "report"):
		return candidate("get_customer_segment_report", map[string]string{
			"segment":    segment,
			"start_date": rng.Start,
			"end_date":   rng.End,
		}), true

	case (vntext.ContainsAny(q, "lịch sử", "history") && vntext.ContainsAny(q, "khách hàng", "customer", "khách")) ||
		customerID.MatchString(q):
		return candidate("get_customer_history", map[string]string{
			"customer_id": extractFirst(customerID, q),
		}), true

	case vntext.ContainsAny(q, "doanh thu", "revenue"):
		return c.revenueBranch(q, year, rng, segment)

	case vntext.ContainsAny(q, "lợi nhuận", "profit", "thu nhập ròng", "net income"):
		return c.profitBranch(q, year, rng)

	case vntext.ContainsAny(q, "đơn hàng", "order"):
		return c.orderBranch(q, rng)

	case vntext.ContainsAny(q, "khách hàng", "customer", "khách"):
		return c.customerBranch(q, rng, segment)

	case vntext.ContainsAny(q, "roi", "return on investment"):
		return candidate("get_roi", map[string]string{
			"campaign_id": c.extractCampaignID(q),
		}), true

	case vntext.ContainsAny(q, "traffic", "truy cập", "website"):
		return candidate("get_traffic_stats", rangeParams(rng)), true

	case vntext.ContainsAny(q, "báo cáo tổng hợp", "tổng hợp", "comprehensive report"):
		return candidate("get_total_revenue", rangeParams(rng)), true

	case vntext.ContainsAny(q, "báo cáo", "report"):
		return candidate("get_total_revenue", rangeParams(rng)), true
	}

	return intent.Candidate{}, false
}

func (c *Classifier) productBranch(q string, rng dates.Range) (intent.Candidate, bool) {
	switch {
	case vntext.ContainsAny(q, bestSellingKeywords...):
		return candidate("get_top_selling_product", rangeParams(rng)), true

	case vntext.ContainsAny(q, "doanh thu", "revenue"):
		return candidate("get_revenue_by_product", map[string]string{
			"product_name": extractProductName(q),
			"start_date":   rng.Start,
			"end_date":     rng.End,
		}), true

	case vntext.ContainsAny(q, "liệt kê", "danh sách", "trong đơn") && orderIDDetect.MatchString(q):
		return candidate("get_products_in_order", map[string]string{
			"order_id": extractFirst(orderIDExtract, q),
		}), true
	}
	return intent.Candidate{}, false
}

func (c *Classifier) revenueBranch(q string, year int, rng dates.Range, segment string) (intent.Candidate, bool) {
	switch {
	case vntext.ContainsAny(q, "theo quý", "từng quý", "mỗi quý", "quarterly", "by quarter"):
		return candidate("get_total_revenue", rangeParams(rng)), true

	case vntext.ContainsAny(q, "chi nhánh", "branch"):
		if vntext.ContainsAny(q, "so sánh", "compare") {
			return candidate("compare_revenue_by_branch", rangeParams(rng)), true
		}
		return candidate("get_total_revenue_by_branch", rangeParams(rng)), true

	case segment != "all" && vntext.ContainsAny(q, "phân khúc", "segment", "doanh nghiệp", "enterprise", "vip", "cao cấp", "khách hàng"):
		return candidate("get_customer_segment_report", map[string]string{
			"segment":    segment,
			"start_date": rng.Start,
			"end_date":   rng.End,
		}), true

	case vntext.ContainsAny(q, "so sánh", "compare"):
		return c.comparison(q, year, rng, "compare_revenue"), true
	}

	// Bare named-month revenue questions ask about one month's figure.
	if _, ok := c.dates.NamedMonth(q); ok {
		return candidate("get_monthly_revenue", rangeParams(rng)), true
	}
	return candidate("get_total_revenue", rangeParams(rng)), true
}

func (c *Classifier) profitBranch(q string, year int, rng dates.Range) (intent.Candidate, bool) {
	switch {
	case vntext.ContainsAny(q, "theo tháng", "từng tháng", "mỗi tháng", "monthly", "trung bình theo tháng", "hàng tháng"):
		return candidate("get_avg_profit_by_month", rangeParams(rng)), true

	case vntext.ContainsAny(q, "theo quý", "từng quý", "mỗi quý", "quarterly", "trung bình theo quý"):
		return candidate("get_avg_profit_by_quarter", rangeParams(rng)), true

	case vntext.ContainsAny(q, "so sánh", "compare"):
		return c.comparison(q, year, rng, "compare_profit"), true
	}
	return candidate("get_total_profit", rangeParams(rng)), true
}

// comparison resolves the two periods of a compare query, trying the
// explicit forms first and falling back to current-period versus the
// previous calendar year.
func (c *Classifier) comparison(q string, year int, rng dates.Range, operation string) intent.Candidate {
	if cmp, ok := c.dates.Comparison(q); ok {
		return candidate(operation, comparisonParams(cmp))
	}
	if cmp, ok := c.dates.MonthVsMonth(q, year); ok {
		return candidate(operation, comparisonParams(cmp))
	}
	if cmp, ok := c.dates.HalfYear(q, year); ok {
		return candidate(operation, comparisonParams(cmp))
	}
	if cmp, ok := c.dates.QuarterVsQuarter(q, year); ok {
		return candidate(operation, comparisonParams(cmp))
	}
	if cmp, ok := c.dates.YearVsYear(q); ok {
		return candidate(operation, comparisonParams(cmp))
	}
	previous := dates.YearRange(year - 1)
	return candidate(operation, comparisonParams(dates.Comparison{
		Period1: rng,
		Period2: previous,
	}))
}

func (c *Classifier) orderBranch(q string, rng dates.Range) (intent.Candidate, bool) {
	switch {
	case vntext.ContainsAny(q, "vip"):
		return candidate("get_vip_orders", rangeParams(rng)), true

	case vntext.ContainsAny(q, "trên", "lớn hơn", "cao hơn", "greater than", "above", "over") &&
		vntext.ContainsAny(q, "triệu", "million", "đồng", "vnd"):
		return candidate("get_orders_above_value", map[string]string{
			"min_value":  extractMinValue(q),
			"start_date": rng.Start,
			"end_date":   rng.End,
		}), true

	case vntext.ContainsAny(q, "giá trị cao nhất", "highest value", "cao nhất", "lớn nhất", "maximum", "max") ||
		(vntext.ContainsAny(q, "highest") &&
			vntext.ContainsAny(q, "giá trị", "value", "tiền", "amount")):
		return candidate("get_top_order", rangeParams(rng)), true

	case vntext.ContainsAny(q, "sản phẩm", "product", "liệt kê", "danh sách") && orderIDDetect.MatchString(q):
		return candidate("get_products_in_order", map[string]string{
			"order_id": extractFirst(orderIDExtract, q),
		}), true

	case vntext.ContainsAny(q, "chi tiết", "detail", "thông tin") && orderIDDetect.MatchString(q):
		return candidate("get_order_detail", map[string]string{
			"order_id": extractFirst(orderIDExtract, q),
		}), true

	case vntext.ContainsAny(q, "hoàn thành", "completion"):
		return candidate("get_order_completion_rate", rangeParams(rng)), true
	}
	return candidate("get_total_orders", rangeParams(rng)), true
}

func (c *Classifier) customerBranch(q string, rng dates.Range, segment string) (intent.Candidate, bool) {
	switch {
	case vntext.ContainsAny(q, "mới", "new"):
		return candidate("get_new_customer_count", rangeParams(rng)), true

	case vntext.ContainsAny(q, "phân khúc", "segment"):
		return candidate("get_customer_segment_report", map[string]string{
			"segment":    segment,
			"start_date": rng.Start,
			"end_date":   rng.End,
		}), true
	}
	return intent.Candidate{}, false
}

// extractCampaignID resolves a campaign mention to a known campaign ID,
// then falls back to identifier-shaped tokens near campaign words.
func (c *Classifier) extractCampaignID(q string) string {
	if id, ok := c.campaigns.Classify(q); ok {
		return id
	}
	for _, re := range campaignIDPatterns {
		if m := re.FindStringSubmatch(q); m != nil {
			return m[1]
		}
	}
	for _, word := range strings.Fields(q) {
		switch word {
		case "chiến", "dịch", "campaign", "roi", "của", "báo", "cáo", "năm", "tháng", "cho", "tôi":
			continue
		}
		if strings.Contains(word, "_") || strings.ContainsAny(word, "0123456789") {
			return word
		}
	}
	return intent.Unknown
}

func extractProductName(q string) string {
	for _, re := range productNamePatterns {
		if m := re.FindStringSubmatch(q); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return name
			}
		}
	}
	return intent.Unknown
}

func extractMinValue(q string) string {
	if m := millionValue.FindStringSubmatch(q); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return fmt.Sprintf("%d", n*1_000_000)
		}
	}
	return "1000000"
}

func extractFirst(re *regexp.Regexp, q string) string {
	if m := re.FindString(q); m != "" {
		return m
	}
	return intent.Unknown
}

func candidate(operation string, params map[string]string) intent.Candidate {
	return intent.Candidate{Operation: operation, Parameters: params}
}

func rangeParams(rng dates.Range) map[string]string {
	return map[string]string{
		"start_date": rng.Start,
		"end_date":   rng.End,
	}
}

func comparisonParams(cmp dates.Comparison) map[string]string {
	return map[string]string{
		"period1_start": cmp.Period1.Start,
		"period1_end":   cmp.Period1.End,
		"period2_start": cmp.Period2.Start,
		"period2_end":   cmp.Period2.End,
	}
}
