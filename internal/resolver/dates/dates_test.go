package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearDetection(t *testing.T) {
	r := NewResolver(2024)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "explicit year", query: "doanh thu năm 2023", want: 2023},
		{name: "year inside range", query: "từ 1/1/2021 đến 31/3/2021", want: 2021},
		{name: "no year falls back", query: "doanh thu tháng này", want: 2024},
		{name: "implausible number ignored", query: "đơn hàng trên 5000 triệu", want: 2024},
		{name: "order id digits ignored", query: "chi tiết đơn hàng ord2023", want: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Year(tt.query))
		})
	}
}

func TestResolveLiteralRanges(t *testing.T) {
	r := NewResolver(2024)

	tests := []struct {
		name  string
		query string
		want  Range
	}{
		{
			name:  "tu ngay D/M den D/M nam YYYY",
			query: "doanh thu từ ngày 1/1 đến 31/3 năm 2023",
			want:  Range{Start: "2023-01-01", End: "2023-03-31"},
		},
		{
			name:  "tu D/M/YYYY den D/M/YYYY",
			query: "doanh thu từ 5/2/2023 đến 9/11/2023",
			want:  Range{Start: "2023-02-05", End: "2023-11-09"},
		},
		{
			name:  "hyphen joined full dates",
			query: "doanh thu 1/1/2023 - 31/3/2023",
			want:  Range{Start: "2023-01-01", End: "2023-03-31"},
		},
		{
			name:  "year only on second date",
			query: "doanh thu từ 1/1 đến 31/3/2023",
			want:  Range{Start: "2023-01-01", End: "2023-03-31"},
		},
		{
			name:  "trong khoang variant",
			query: "doanh thu trong khoảng từ 2/6 đến 15/9/2022",
			want:  Range{Start: "2022-06-02", End: "2022-09-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.query, r.Year(tt.query))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNamedMonths(t *testing.T) {
	r := NewResolver(2024)

	tests := []struct {
		query string
		want  Range
	}{
		{"doanh thu tháng 3 năm 2023", Range{Start: "2023-03-01", End: "2023-03-31"}},
		{"doanh thu tháng hai năm 2023", Range{Start: "2023-02-01", End: "2023-02-28"}},
		{"doanh thu tháng 10", Range{Start: "2024-10-01", End: "2024-10-31"}},
		{"doanh thu tháng 12 năm 2022", Range{Start: "2022-12-01", End: "2022-12-31"}},
		{"revenue for february 2024", Range{Start: "2024-02-01", End: "2024-02-29"}},
		{"doanh thu tháng mười một", Range{Start: "2024-11-01", End: "2024-11-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := r.Resolve(tt.query, r.Year(tt.query))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWeekBands(t *testing.T) {
	r := NewResolver(2024)

	tests := []struct {
		name  string
		query string
		year  int
		want  Range
	}{
		{
			name:  "first week",
			query: "doanh thu tuần đầu tháng 3",
			year:  2024,
			want:  Range{Start: "2024-03-01", End: "2024-03-07"},
		},
		{
			name:  "second week",
			query: "doanh thu tuần thứ 2 tháng 7",
			year:  2024,
			want:  Range{Start: "2024-07-08", End: "2024-07-14"},
		},
		{
			name:  "third week",
			query: "doanh thu tuần 3 tháng 9",
			year:  2024,
			want:  Range{Start: "2024-09-15", End: "2024-09-21"},
		},
		{
			name:  "last week of leap february",
			query: "doanh thu tuần cuối tháng 2 năm 2024",
			year:  2024,
			want:  Range{Start: "2024-02-22", End: "2024-02-29"},
		},
		{
			name:  "last week of non-leap february",
			query: "doanh thu tuần cuối tháng 2 năm 2023",
			year:  2023,
			want:  Range{Start: "2023-02-22", End: "2023-02-28"},
		},
		{
			name:  "last week of 31-day month",
			query: "doanh thu tuần cuối tháng 1 năm 2023",
			year:  2023,
			want:  Range{Start: "2023-01-22", End: "2023-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.query, tt.year)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveQuartersAndDefault(t *testing.T) {
	r := NewResolver(2024)

	assert.Equal(t,
		Range{Start: "2023-01-01", End: "2023-03-31"},
		r.Resolve("doanh thu quý 1 năm 2023", 2023))
	assert.Equal(t,
		Range{Start: "2024-04-01", End: "2024-06-30"},
		r.Resolve("lợi nhuận quý hai", 2024))
	assert.Equal(t,
		Range{Start: "2022-10-01", End: "2022-12-31"},
		r.Resolve("doanh thu q4 2022", 2022))
	assert.Equal(t,
		Range{Start: "2024-01-01", End: "2024-12-31"},
		r.Resolve("tổng doanh thu", 2024))
}

func TestComparisonRanges(t *testing.T) {
	r := NewResolver(2024)

	t.Run("two literal ranges", func(t *testing.T) {
		cmp, ok := r.Comparison("so sánh doanh thu 15/8/2021 - 1/6/2022 và 15/8/2023 - 1/6/2024")
		require.True(t, ok)
		assert.Equal(t, Range{Start: "2021-08-15", End: "2022-06-01"}, cmp.Period1)
		assert.Equal(t, Range{Start: "2023-08-15", End: "2024-06-01"}, cmp.Period2)
	})

	t.Run("tu den variant", func(t *testing.T) {
		cmp, ok := r.Comparison("so sánh doanh thu từ 1/1/2023 đến 31/3/2023 và từ 1/1/2024 đến 31/3/2024")
		require.True(t, ok)
		assert.Equal(t, Range{Start: "2023-01-01", End: "2023-03-31"}, cmp.Period1)
		assert.Equal(t, Range{Start: "2024-01-01", End: "2024-03-31"}, cmp.Period2)
	})

	t.Run("not a comparison", func(t *testing.T) {
		_, ok := r.Comparison("doanh thu từ 1/1/2023 đến 31/3/2023")
		assert.False(t, ok)
	})
}

func TestMonthVsMonth(t *testing.T) {
	r := NewResolver(2024)

	cmp, ok := r.MonthVsMonth("so sánh doanh thu tháng 3 và tháng 5 năm 2024", 2024)
	require.True(t, ok)
	assert.Equal(t, Range{Start: "2024-03-01", End: "2024-03-31"}, cmp.Period1)
	assert.Equal(t, Range{Start: "2024-05-01", End: "2024-05-31"}, cmp.Period2)

	cmp, ok = r.MonthVsMonth("so sánh lợi nhuận tháng 2 và tháng 4", 2023)
	require.True(t, ok)
	assert.Equal(t, "2023-02-28", cmp.Period1.End)

	_, ok = r.MonthVsMonth("so sánh doanh thu năm 2023", 2023)
	assert.False(t, ok)
}

func TestHalfYearComparison(t *testing.T) {
	r := NewResolver(2024)

	cmp, ok := r.HalfYear("so sánh doanh thu nửa đầu và nửa cuối năm 2023", 2024)
	require.True(t, ok)
	assert.Equal(t, Range{Start: "2023-01-01", End: "2023-06-30"}, cmp.Period1)
	assert.Equal(t, Range{Start: "2023-07-01", End: "2023-12-31"}, cmp.Period2)

	_, ok = r.HalfYear("so sánh doanh thu quý 1 và quý 2", 2024)
	assert.False(t, ok)
}

func TestQuarterVsQuarter(t *testing.T) {
	r := NewResolver(2024)

	t.Run("two named quarters", func(t *testing.T) {
		cmp, ok := r.QuarterVsQuarter("so sánh doanh thu quý 3 và quý 1 năm 2023", 2023)
		require.True(t, ok)
		assert.Equal(t, Range{Start: "2023-01-01", End: "2023-03-31"}, cmp.Period1)
		assert.Equal(t, Range{Start: "2023-07-01", End: "2023-09-30"}, cmp.Period2)
	})

	t.Run("single quarter defaults to q1 vs q2", func(t *testing.T) {
		cmp, ok := r.QuarterVsQuarter("so sánh doanh thu quý 4", 2024)
		require.True(t, ok)
		assert.Equal(t, Range{Start: "2024-01-01", End: "2024-03-31"}, cmp.Period1)
		assert.Equal(t, Range{Start: "2024-04-01", End: "2024-06-30"}, cmp.Period2)
	})
}

func TestYearVsYear(t *testing.T) {
	r := NewResolver(2024)

	cmp, ok := r.YearVsYear("so sánh doanh thu năm 2022 và năm 2023")
	require.True(t, ok)
	assert.Equal(t, Range{Start: "2022-01-01", End: "2022-12-31"}, cmp.Period1)
	assert.Equal(t, Range{Start: "2023-01-01", End: "2023-12-31"}, cmp.Period2)
}

func TestAnchorHelpers(t *testing.T) {
	anchor := time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-04-01", Tomorrow(anchor))
	assert.Equal(t, "2024-03-30", Yesterday(anchor))
	assert.Equal(t, "2024-03-01", ThisMonthStart(anchor))
	assert.Equal(t, Range{Start: "2024-04-07", End: "2024-04-13"}, NextWeekRange(anchor))
	assert.Equal(t, Range{Start: "2024-01-01", End: "2024-03-31"}, CurrentQuarter(anchor))
	assert.Equal(t, Range{Start: "2024-04-01", End: "2024-06-30"}, NextQuarter(anchor))

	q4 := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Range{Start: "2024-01-01", End: "2024-03-31"}, NextQuarter(q4))
	q1 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Range{Start: "2023-10-01", End: "2023-12-31"}, PreviousQuarter(q1))
}
