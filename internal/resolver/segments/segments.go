// Package segments scores Vietnamese business vocabulary against static
// keyword tables to classify customer segments, metrics and marketing
// campaigns. Tables are built once and never mutated, so classifiers are
// safe for concurrent use.
//
// Scoring: each keyword present as a substring of the normalized query
// contributes its word count (multi-word phrases outweigh single words);
// an exact full-query match doubles that keyword's contribution. The
// highest total wins. Ties are broken by the larger total length of
// matched keyword text, then by the lexically smaller label, so results
// never depend on table iteration order.
package segments

import (
	"strings"

	"intent-resolver/internal/resolver/vntext"
)

type keywordTable map[string][]string

// scoreTable runs the shared scoring pass and returns the winning label,
// or "" when nothing matched.
func scoreTable(table keywordTable, query string, keywordWeight func(words int) int, exactBonus func(words int) int) string {
	query = vntext.Normalize(query)

	best := ""
	bestScore := 0
	bestMatched := 0

	for label, keywords := range table {
		score := 0
		matched := 0
		for _, kw := range keywords {
			if !strings.Contains(query, kw) {
				continue
			}
			words := len(strings.Fields(kw))
			score += keywordWeight(words)
			if kw == query {
				score += exactBonus(words)
			}
			matched += len(kw)
		}
		if score == 0 {
			continue
		}
		if score > bestScore ||
			(score == bestScore && matched > bestMatched) ||
			(score == bestScore && matched == bestMatched && label < best) {
			best = label
			bestScore = score
			bestMatched = matched
		}
	}
	return best
}

// SegmentClassifier maps queries onto customer segments.
type SegmentClassifier struct {
	table keywordTable
}

func NewSegmentClassifier() *SegmentClassifier {
	return &SegmentClassifier{table: keywordTable{
		"premium": {
			"cao cấp", "premium", "vip", "thượng hạng", "luxury",
			"high-end", "đặc biệt", "ưu tiên", "platinum", "gold",
		},
		"middle": {
			"trung bình", "middle", "standard", "bình thường",
			"thường", "regular", "silver", "cơ bản", "basic",
		},
		"economy": {
			"tiết kiệm", "economy", "budget", "giá rẻ", "phổ thông",
			"bronze", "entry", "starter", "cấp thấp",
		},
		"new_customer": {
			"khách hàng mới", "new customer", "khách mới",
			"customer mới", "mới gia nhập", "first time",
			"lần đầu", "new users", "người dùng mới",
		},
		"returning_customer": {
			"khách hàng cũ", "returning customer", "khách cũ",
			"quay lại", "returning", "repeat customer",
			"loyal customer", "thân thiết", "trung thành",
		},
		"enterprise": {
			"doanh nghiệp", "enterprise", "công ty", "tổ chức",
			"corporate", "business", "b2b", "thương mại",
		},
		"individual": {
			"cá nhân", "individual", "personal", "retail",
			"b2c", "người tiêu dùng", "consumer",
		},
		"casual": {
			"vãng lai", "occasional", "thỉnh thoảng", "không thường xuyên",
			"casual", "sporadic", "infrequent", "one-time", "ngẫu nhiên",
		},
	}}
}

// Classify returns the best-scoring segment, or "all" when the query
// names none.
func (c *SegmentClassifier) Classify(query string) string {
	label := scoreTable(c.table, query,
		func(words int) int { return words },
		func(words int) int { return words })
	if label == "" {
		return "all"
	}
	return label
}

// MetricClassifier maps queries onto the primary business metric they
// ask about.
type MetricClassifier struct {
	table keywordTable
}

func NewMetricClassifier() *MetricClassifier {
	return &MetricClassifier{table: keywordTable{
		"revenue":      {"doanh thu", "revenue", "sales", "bán hàng", "thu nhập"},
		"orders":       {"đơn hàng", "orders", "order", "số đơn", "đặt hàng"},
		"profit":       {"lợi nhuận", "profit", "net income", "thu nhập ròng"},
		"visits":       {"truy cập", "visits", "traffic", "website", "lượt xem", "pageview"},
		"users":        {"người dùng", "users", "user", "khách hàng", "customer"},
		"conversion":   {"chuyển đổi", "conversion", "tỷ lệ", "rate"},
		"transactions": {"giao dịch", "transaction", "thanh toán", "payment"},
	}}
}

// Classify returns the best-scoring metric, defaulting to "revenue".
func (c *MetricClassifier) Classify(query string) string {
	label := scoreTable(c.table, query,
		func(words int) int { return words },
		func(int) int { return 0 })
	if label == "" {
		return "revenue"
	}
	return label
}

// CampaignClassifier maps queries onto known marketing campaign IDs.
type CampaignClassifier struct {
	table keywordTable
}

func NewCampaignClassifier() *CampaignClassifier {
	return &CampaignClassifier{table: keywordTable{
		"quang_cao_mua_le_hoi":     {"mùa lễ hội", "lễ hội", "holiday", "festival", "tết", "giáng sinh", "christmas"},
		"black_friday_2023":        {"black friday", "thứ 6 đen", "giảm giá lớn", "sale lớn"},
		"summer_sale":              {"mùa hè", "summer", "hè", "khuyến mãi hè"},
		"new_customer_acquisition": {"khách hàng mới", "new customer", "thu hút", "acquisition"},
		"loyalty_program":          {"thân thiết", "loyalty", "trung thành", "vip"},
		"social_media_ads":         {"mạng xã hội", "social media", "facebook", "instagram", "tiktok"},
		"google_ads_q4":            {"google ads", "quý 4", "q4", "search ads"},
	}}
}

// Classify returns the best-scoring campaign ID and true, or "" and
// false when the query names no known campaign. Campaign keywords score
// double weight with a flat exact-match bonus since campaign mentions
// tend to be short fragments inside longer questions.
func (c *CampaignClassifier) Classify(query string) (string, bool) {
	label := scoreTable(c.table, query,
		func(words int) int { return words * 2 },
		func(int) int { return 5 })
	return label, label != ""
}
