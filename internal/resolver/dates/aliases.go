package dates

import (
	"sort"
	"strings"
	"time"
)

// rawMonthAliases lists every month spelling the resolver accepts:
// digit form, spelled-out Vietnamese, full English and the common
// three-letter abbreviation.
var rawMonthAliases = map[string]time.Month{
	"tháng 1": time.January, "tháng một": time.January, "january": time.January, "jan": time.January,
	"tháng 2": time.February, "tháng hai": time.February, "february": time.February, "feb": time.February,
	"tháng 3": time.March, "tháng ba": time.March, "march": time.March, "mar": time.March,
	"tháng 4": time.April, "tháng tư": time.April, "april": time.April, "apr": time.April,
	"tháng 5": time.May, "tháng năm": time.May, "may": time.May,
	"tháng 6": time.June, "tháng sáu": time.June, "june": time.June, "jun": time.June,
	"tháng 7": time.July, "tháng bảy": time.July, "july": time.July, "jul": time.July,
	"tháng 8": time.August, "tháng tám": time.August, "august": time.August, "aug": time.August,
	"tháng 9": time.September, "tháng chín": time.September, "september": time.September, "sep": time.September,
	"tháng 10": time.October, "tháng mười": time.October, "october": time.October, "oct": time.October,
	"tháng 11": time.November, "tháng mười một": time.November, "november": time.November, "nov": time.November,
	"tháng 12": time.December, "tháng mười hai": time.December, "december": time.December, "dec": time.December,
}

type monthAlias struct {
	text  string
	month time.Month
}

// monthAliases is checked longest-first so "tháng 10" never matches the
// "tháng 1" alias and "tháng mười một" beats "tháng mười".
var monthAliases = func() []monthAlias {
	out := make([]monthAlias, 0, len(rawMonthAliases))
	for text, m := range rawMonthAliases {
		out = append(out, monthAlias{text: text, month: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].text) != len(out[j].text) {
			return len(out[i].text) > len(out[j].text)
		}
		return out[i].text < out[j].text
	})
	return out
}()

func namedMonth(query string) (time.Month, bool) {
	for _, a := range monthAliases {
		if strings.Contains(query, a.text) {
			return a.month, true
		}
	}
	return 0, false
}

var quarterAliases = []struct {
	text    string
	quarter int
}{
	{"quý 1", 1}, {"quý một", 1}, {"q1", 1},
	{"quý 2", 2}, {"quý hai", 2}, {"q2", 2},
	{"quý 3", 3}, {"quý ba", 3}, {"q3", 3},
	{"quý 4", 4}, {"quý tư", 4}, {"q4", 4},
}

// weekBands map week-of-month language onto fixed day bands. Band 4
// runs to the true end of the month.
var weekBands = []struct {
	keywords []string
	band     int
}{
	{[]string{"tuần đầu", "tuần 1", "tuần một", "week 1", "first week"}, 1},
	{[]string{"tuần thứ hai", "tuần thứ 2", "tuần 2", "tuần hai", "week 2", "second week"}, 2},
	{[]string{"tuần thứ ba", "tuần thứ 3", "tuần 3", "tuần ba", "week 3", "third week"}, 3},
	{[]string{"tuần cuối", "tuần 4", "tuần tư", "week 4", "last week"}, 4},
}

func weekBand(query string) (int, bool) {
	for _, wb := range weekBands {
		for _, kw := range wb.keywords {
			if strings.Contains(query, kw) {
				return wb.band, true
			}
		}
	}
	return 0, false
}
