package dates

import "time"

// ISODate renders a calendar day in the wire form used everywhere in
// this module.
const ISODate = "2006-01-02"

// Relative-date helpers take the anchor date from the caller instead of
// reading the clock, so the same query and anchor always resolve to the
// same result.

func Tomorrow(anchor time.Time) string {
	return anchor.AddDate(0, 0, 1).Format(ISODate)
}

func Yesterday(anchor time.Time) string {
	return anchor.AddDate(0, 0, -1).Format(ISODate)
}

// NextWeekRange spans the seven days starting one week after the anchor.
func NextWeekRange(anchor time.Time) Range {
	start := anchor.AddDate(0, 0, 7)
	return Range{
		Start: start.Format(ISODate),
		End:   start.AddDate(0, 0, 6).Format(ISODate),
	}
}

func ThisMonthStart(anchor time.Time) string {
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).Format(ISODate)
}

// CurrentQuarter spans the quarter containing the anchor.
func CurrentQuarter(anchor time.Time) Range {
	return QuarterRange(anchor.Year(), quarterOf(anchor.Month()))
}

// NextQuarter spans the quarter after the anchor's, rolling into the
// next year after Q4.
func NextQuarter(anchor time.Time) Range {
	q := quarterOf(anchor.Month()) + 1
	year := anchor.Year()
	if q > 4 {
		q = 1
		year++
	}
	return QuarterRange(year, q)
}

// PreviousQuarter spans the quarter before the anchor's.
func PreviousQuarter(anchor time.Time) Range {
	q := quarterOf(anchor.Month()) - 1
	year := anchor.Year()
	if q < 1 {
		q = 4
		year--
	}
	return QuarterRange(year, q)
}

func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}
