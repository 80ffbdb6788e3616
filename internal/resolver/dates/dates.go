// Package dates resolves Vietnamese date expressions into inclusive ISO
// calendar ranges. All lookups run against normalized lower-case text; the
// caller supplies an anchor date for relative expressions so resolution
// never reads the wall clock.
package dates

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"intent-resolver/internal/resolver/vntext"
)

// Range is an inclusive ISO calendar date span.
type Range struct {
	Start string
	End   string
}

// Comparison carries the two spans of a compare-style query.
type Comparison struct {
	Period1 Range
	Period2 Range
}

// Resolver extracts date ranges from query text. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	defaultYear int
}

func NewResolver(defaultYear int) *Resolver {
	return &Resolver{defaultYear: defaultYear}
}

// DefaultYear returns the year assumed when the query names none.
func (r *Resolver) DefaultYear() int { return r.defaultYear }

var (
	yearToken    = regexp.MustCompile(`\b(\d{4})\b`)
	namedYear    = regexp.MustCompile(`năm\s+(\d{4})`)
	yearVsYearRe = regexp.MustCompile(`năm\s+(\d{4})\s+và\s+năm\s+(\d{4})`)
	monthVsMonth = regexp.MustCompile(`tháng\s+(\d{1,2})\s+và\s+tháng\s+(\d{1,2})`)
)

// Year scans for the first plausible 4-digit year (1900-2100) in the
// query. Tokens that sit inside an order identifier ("đơn hàng 2024...")
// are skipped so order numbers never masquerade as years. Falls back to
// the configured default year.
func (r *Resolver) Year(query string) int {
	query = vntext.Normalize(query)
	for _, m := range yearToken.FindAllStringSubmatch(query, -1) {
		candidate, err := strconv.Atoi(m[1])
		if err != nil || candidate < 1900 || candidate > 2100 {
			continue
		}
		orderContext := regexp.MustCompile(`(?:ord|order|đơn)\s*\w*` + m[1])
		if orderContext.MatchString(query) {
			continue
		}
		return candidate
	}
	return r.defaultYear
}

// comparisonPatterns match two complete D/M/YYYY ranges joined by "và".
var comparisonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})\s*-\s*(\d{1,2})/(\d{1,2})/(\d{4})\s+và\s+(\d{1,2})/(\d{1,2})/(\d{4})\s*-\s*(\d{1,2})/(\d{1,2})/(\d{4})`),
	regexp.MustCompile(`từ\s+(\d{1,2})/(\d{1,2})/(\d{4})\s+đến\s+(\d{1,2})/(\d{1,2})/(\d{4})\s+và\s+từ\s+(\d{1,2})/(\d{1,2})/(\d{4})\s+đến\s+(\d{1,2})/(\d{1,2})/(\d{4})`),
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})-(\d{1,2})/(\d{1,2})/(\d{4})\s+và\s+(\d{1,2})/(\d{1,2})/(\d{4})-(\d{1,2})/(\d{1,2})/(\d{4})`),
}

// Comparison extracts two explicit literal date ranges from a
// compare-style query ("so sánh ... và ..."). Returns false when the
// query is not a comparison or carries no literal ranges.
func (r *Resolver) Comparison(query string) (Comparison, bool) {
	query = vntext.Normalize(query)
	if !vntext.ContainsAny(query, "so sánh", "compare") || !vntext.ContainsAny(query, "và") {
		return Comparison{}, false
	}
	for _, re := range comparisonPatterns {
		m := re.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		return Comparison{
			Period1: Range{
				Start: isoDate(m[3], m[2], m[1]),
				End:   isoDate(m[6], m[5], m[4]),
			},
			Period2: Range{
				Start: isoDate(m[9], m[8], m[7]),
				End:   isoDate(m[12], m[11], m[10]),
			},
		}, true
	}
	return Comparison{}, false
}

// literalPatterns cover the single-range date spellings users actually
// type. Group layouts differ per pattern; literalGroups records how to
// read each one.
var literalPatterns = []struct {
	re     *regexp.Regexp
	layout string // "dmY" = D/M...D/M năm Y, "full" = D/M/Y...D/M/Y, "tailY" = D/M...D/M/Y
}{
	{regexp.MustCompile(`từ\s+ngày\s+(\d{1,2})/(\d{1,2})\s+đến\s+(\d{1,2})/(\d{1,2})\s+năm\s+(\d{4})`), "dmY"},
	{regexp.MustCompile(`từ\s+(\d{1,2})/(\d{1,2})/(\d{4})\s+đến\s+(\d{1,2})/(\d{1,2})/(\d{4})`), "full"},
	{regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})\s*-\s*(\d{1,2})/(\d{1,2})/(\d{4})`), "full"},
	{regexp.MustCompile(`từ\s+(\d{1,2})/(\d{1,2})\s+đến\s+(\d{1,2})/(\d{1,2})/(\d{4})`), "tailY"},
	{regexp.MustCompile(`trong\s+khoảng\s+từ\s+(\d{1,2})/(\d{1,2})\s+đến\s+(\d{1,2})/(\d{1,2})/(\d{4})`), "tailY"},
}

// Resolve maps the query onto a single inclusive range, in priority
// order: explicit literal range, week-of-month band, named month, named
// quarter, full calendar year.
func (r *Resolver) Resolve(query string, year int) Range {
	query = vntext.Normalize(query)

	for _, p := range literalPatterns {
		m := p.re.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		switch p.layout {
		case "dmY":
			return Range{Start: isoDate(m[5], m[2], m[1]), End: isoDate(m[5], m[4], m[3])}
		case "full":
			return Range{Start: isoDate(m[3], m[2], m[1]), End: isoDate(m[6], m[5], m[4])}
		case "tailY":
			return Range{Start: isoDate(m[5], m[2], m[1]), End: isoDate(m[5], m[4], m[3])}
		}
	}

	if band, ok := weekBand(query); ok {
		if month, ok := namedMonth(query); ok {
			return weekBandRange(year, month, band)
		}
	}

	if month, ok := namedMonth(query); ok {
		return MonthRange(year, month)
	}

	for _, q := range quarterAliases {
		if vntext.ContainsAny(query, q.text) {
			return QuarterRange(year, q.quarter)
		}
	}

	return YearRange(year)
}

// NamedMonth reports the month a query names, if any. Exposed for the
// date-enhancement step that runs when pattern classification finds no
// intent but the model did.
func (r *Resolver) NamedMonth(query string) (time.Month, bool) {
	return namedMonth(vntext.Normalize(query))
}

// MonthVsMonth handles "tháng X và tháng Y" comparisons. A "năm YYYY"
// mention overrides the supplied year.
func (r *Resolver) MonthVsMonth(query string, year int) (Comparison, bool) {
	query = vntext.Normalize(query)
	m := monthVsMonth.FindStringSubmatch(query)
	if m == nil {
		return Comparison{}, false
	}
	m1, _ := strconv.Atoi(m[1])
	m2, _ := strconv.Atoi(m[2])
	if m1 < 1 || m1 > 12 || m2 < 1 || m2 > 12 {
		return Comparison{}, false
	}
	if ym := namedYear.FindStringSubmatch(query); ym != nil {
		year, _ = strconv.Atoi(ym[1])
	}
	return Comparison{
		Period1: MonthRange(year, time.Month(m1)),
		Period2: MonthRange(year, time.Month(m2)),
	}, true
}

// HalfYear handles "nửa đầu ... nửa cuối" comparisons, always pairing
// the two halves of one year.
func (r *Resolver) HalfYear(query string, year int) (Comparison, bool) {
	query = vntext.Normalize(query)
	if !vntext.ContainsAny(query, "nửa đầu", "nửa cuối", "first half", "second half", "6 tháng đầu", "6 tháng cuối") {
		return Comparison{}, false
	}
	if ym := namedYear.FindStringSubmatch(query); ym != nil {
		year, _ = strconv.Atoi(ym[1])
	}
	return Comparison{
		Period1: Range{Start: fmt.Sprintf("%04d-01-01", year), End: fmt.Sprintf("%04d-06-30", year)},
		Period2: Range{Start: fmt.Sprintf("%04d-07-01", year), End: fmt.Sprintf("%04d-12-31", year)},
	}, true
}

// QuarterVsQuarter handles comparisons that name quarters. Exactly two
// named quarters are compared low-to-high; anything else degrades to a
// Q1-vs-Q2 default.
func (r *Resolver) QuarterVsQuarter(query string, year int) (Comparison, bool) {
	query = vntext.Normalize(query)
	if !vntext.ContainsAny(query, "quý 1", "quý 2", "quý 3", "quý 4", "q1", "q2", "q3", "q4") {
		return Comparison{}, false
	}

	seen := map[int]bool{}
	for _, q := range quarterAliases {
		if vntext.ContainsAny(query, q.text) {
			seen[q.quarter] = true
		}
	}
	quarters := make([]int, 0, len(seen))
	for q := range seen {
		quarters = append(quarters, q)
	}
	sort.Ints(quarters)

	if len(quarters) == 2 {
		return Comparison{
			Period1: QuarterRange(year, quarters[0]),
			Period2: QuarterRange(year, quarters[1]),
		}, true
	}
	return Comparison{
		Period1: QuarterRange(year, 1),
		Period2: QuarterRange(year, 2),
	}, true
}

// YearVsYear handles "năm X và năm Y" comparisons.
func (r *Resolver) YearVsYear(query string) (Comparison, bool) {
	m := yearVsYearRe.FindStringSubmatch(vntext.Normalize(query))
	if m == nil {
		return Comparison{}, false
	}
	y1, _ := strconv.Atoi(m[1])
	y2, _ := strconv.Atoi(m[2])
	return Comparison{Period1: YearRange(y1), Period2: YearRange(y2)}, true
}

// MonthRange spans a full calendar month.
func MonthRange(year int, month time.Month) Range {
	return Range{
		Start: fmt.Sprintf("%04d-%02d-01", year, month),
		End:   fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay(year, month)),
	}
}

// YearRange spans a full calendar year.
func YearRange(year int) Range {
	return Range{
		Start: fmt.Sprintf("%04d-01-01", year),
		End:   fmt.Sprintf("%04d-12-31", year),
	}
}

// QuarterRange spans a calendar quarter (1-4).
func QuarterRange(year, quarter int) Range {
	startMonth := time.Month((quarter-1)*3 + 1)
	endMonth := time.Month(quarter * 3)
	return Range{
		Start: fmt.Sprintf("%04d-%02d-01", year, startMonth),
		End:   fmt.Sprintf("%04d-%02d-%02d", year, endMonth, lastDay(year, endMonth)),
	}
}

func weekBandRange(year int, month time.Month, band int) Range {
	switch band {
	case 1:
		return Range{Start: fmt.Sprintf("%04d-%02d-01", year, month), End: fmt.Sprintf("%04d-%02d-07", year, month)}
	case 2:
		return Range{Start: fmt.Sprintf("%04d-%02d-08", year, month), End: fmt.Sprintf("%04d-%02d-14", year, month)}
	case 3:
		return Range{Start: fmt.Sprintf("%04d-%02d-15", year, month), End: fmt.Sprintf("%04d-%02d-21", year, month)}
	default:
		return Range{Start: fmt.Sprintf("%04d-%02d-22", year, month), End: fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay(year, month))}
	}
}

func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isoDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
