// pkg/catalog/default.go
package catalog

func dateParam(desc string) ParamSpec {
	return ParamSpec{Type: "string", Description: desc, Pattern: DatePattern}
}

func rangeParams() map[string]ParamSpec {
	return map[string]ParamSpec{
		"start_date": dateParam("Ngày bắt đầu (YYYY-MM-DD)"),
		"end_date":   dateParam("Ngày kết thúc (YYYY-MM-DD)"),
	}
}

func withRange(extra map[string]ParamSpec) map[string]ParamSpec {
	params := rangeParams()
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// Default returns the built-in analytics operation catalog. It always
// compiles; the error path in New only fires on malformed external files.
func Default() *Catalog {
	c, err := New(defaultOperations())
	if err != nil {
		panic("built-in catalog invalid: " + err.Error())
	}
	return c
}

func defaultOperations() []OperationSchema {
	return []OperationSchema{
		{
			Name:        "get_total_revenue",
			Description: "Tổng doanh thu trong khoảng thời gian",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_monthly_revenue",
			Description: "Doanh thu theo tháng cụ thể",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_total_revenue_by_branch",
			Description: "Doanh thu theo chi nhánh",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "compare_revenue",
			Description: "So sánh doanh thu giữa hai khoảng thời gian",
			Parameters: map[string]ParamSpec{
				"period1_start": dateParam("Ngày bắt đầu kỳ thứ nhất"),
				"period1_end":   dateParam("Ngày kết thúc kỳ thứ nhất"),
				"period2_start": dateParam("Ngày bắt đầu kỳ thứ hai"),
				"period2_end":   dateParam("Ngày kết thúc kỳ thứ hai"),
			},
			Required: []string{"period1_start", "period1_end", "period2_start", "period2_end"},
		},
		{
			Name:        "compare_revenue_by_branch",
			Description: "So sánh doanh thu giữa các chi nhánh",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_revenue_by_product",
			Description: "Doanh thu theo sản phẩm",
			Parameters: withRange(map[string]ParamSpec{
				"product_name": {Type: "string", Description: "Tên sản phẩm"},
			}),
			Required: []string{"product_name", "start_date", "end_date"},
		},
		{
			Name:        "get_top_selling_product",
			Description: "Sản phẩm bán chạy nhất",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_products_in_order",
			Description: "Danh sách sản phẩm trong một đơn hàng",
			Parameters: map[string]ParamSpec{
				"order_id": {Type: "string", Description: "Mã đơn hàng"},
			},
			Required: []string{"order_id"},
		},
		{
			Name:        "get_customer_segment_report",
			Description: "Báo cáo chi tiết theo phân khúc khách hàng",
			Parameters: withRange(map[string]ParamSpec{
				"segment": {Type: "string", Description: "Phân khúc khách hàng", Enum: Segments, Default: "all"},
			}),
			Required: []string{"segment", "start_date", "end_date"},
		},
		{
			Name:        "get_new_customer_count",
			Description: "Số lượng khách hàng mới",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_new_customer_revenue",
			Description: "Doanh thu từ khách hàng mới",
			Parameters: withRange(map[string]ParamSpec{
				"segment": {Type: "string", Description: "Phân khúc khách hàng", Enum: Segments, Default: "all"},
			}),
			Required: []string{"start_date", "end_date"},
		},
		{
			Name:        "get_customer_history",
			Description: "Lịch sử mua hàng của khách hàng",
			Parameters: map[string]ParamSpec{
				"customer_id": {Type: "string", Description: "Mã khách hàng"},
			},
			Required: []string{"customer_id"},
		},
		{
			Name:        "get_total_orders",
			Description: "Tổng số đơn hàng trong khoảng thời gian",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_orders_above_value",
			Description: "Các đơn hàng có giá trị lớn hơn ngưỡng",
			Parameters: withRange(map[string]ParamSpec{
				"min_value": {Type: "number", Description: "Giá trị tối thiểu (VND)"},
			}),
			Required: []string{"min_value", "start_date", "end_date"},
		},
		{
			Name:        "get_vip_orders",
			Description: "Các đơn hàng VIP",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_top_order",
			Description: "Đơn hàng có giá trị cao nhất",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_order_detail",
			Description: "Chi tiết một đơn hàng",
			Parameters: map[string]ParamSpec{
				"order_id": {Type: "string", Description: "Mã đơn hàng"},
			},
			Required: []string{"order_id"},
		},
		{
			Name:        "get_order_completion_rate",
			Description: "Tỷ lệ hoàn thành đơn hàng",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_total_profit",
			Description: "Tổng lợi nhuận trong khoảng thời gian",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_avg_profit_by_month",
			Description: "Lợi nhuận trung bình theo tháng",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "get_avg_profit_by_quarter",
			Description: "Lợi nhuận trung bình theo quý",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
		{
			Name:        "compare_profit",
			Description: "So sánh lợi nhuận giữa hai khoảng thời gian",
			Parameters: map[string]ParamSpec{
				"period1_start": dateParam("Ngày bắt đầu kỳ thứ nhất"),
				"period1_end":   dateParam("Ngày kết thúc kỳ thứ nhất"),
				"period2_start": dateParam("Ngày bắt đầu kỳ thứ hai"),
				"period2_end":   dateParam("Ngày kết thúc kỳ thứ hai"),
			},
			Required: []string{"period1_start", "period1_end", "period2_start", "period2_end"},
		},
		{
			Name:        "get_roi",
			Description: "ROI của chiến dịch marketing",
			Parameters: map[string]ParamSpec{
				"campaign_id": {Type: "string", Description: "Mã chiến dịch"},
			},
			Required: []string{"campaign_id"},
		},
		{
			Name:        "get_traffic_stats",
			Description: "Lượng truy cập website",
			Parameters:  rangeParams(),
			Required:    []string{"start_date", "end_date"},
		},
	}
}
