package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentClassifier(t *testing.T) {
	c := NewSegmentClassifier()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "vip keyword", query: "doanh thu khách hàng VIP tháng 3", want: "premium"},
		{name: "enterprise", query: "báo cáo phân khúc doanh nghiệp", want: "enterprise"},
		{name: "multi-word beats single", query: "doanh thu khách hàng mới quý 1", want: "new_customer"},
		{name: "returning", query: "khách hàng thân thiết quay lại", want: "returning_customer"},
		{name: "economy", query: "phân khúc giá rẻ", want: "economy"},
		{name: "individual", query: "khách hàng cá nhân", want: "individual"},
		{name: "casual", query: "khách vãng lai", want: "casual"},
		{name: "no segment defaults to all", query: "tổng doanh thu năm 2024", want: "all"},
		{name: "exact match doubles", query: "cao cấp", want: "premium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.query))
		})
	}
}

func TestSegmentClassifierDeterministicTieBreak(t *testing.T) {
	c := NewSegmentClassifier()

	// "thường" scores 1 for middle; "casual" keywords are absent, so no
	// tie. Force a genuine tie with two single-keyword hits and check
	// the same winner comes back on repeated runs.
	query := "khách retail và khách silver"
	first := c.Classify(query)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify(query))
	}
}

func TestMetricClassifier(t *testing.T) {
	c := NewMetricClassifier()

	tests := []struct {
		query string
		want  string
	}{
		{"doanh thu tháng 3", "revenue"},
		{"số đơn hàng quý 2", "orders"},
		{"lợi nhuận năm nay", "profit"},
		{"lượng truy cập website", "visits"},
		{"tỷ lệ chuyển đổi", "conversion"},
		{"thống kê giao dịch thanh toán", "transactions"},
		{"xin chào", "revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.query))
		})
	}
}

func TestCampaignClassifier(t *testing.T) {
	c := NewCampaignClassifier()

	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{name: "black friday", query: "ROI chiến dịch black friday", want: "black_friday_2023", wantOK: true},
		{name: "holiday season", query: "roi quảng cáo mùa lễ hội", want: "quang_cao_mua_le_hoi", wantOK: true},
		{name: "summer", query: "hiệu quả khuyến mãi hè", want: "summer_sale", wantOK: true},
		{name: "social media", query: "roi quảng cáo facebook", want: "social_media_ads", wantOK: true},
		{name: "no campaign", query: "doanh thu tháng 3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
