package model

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Date fields accept an integer year or a YYYY-MM / YYYY-MM-DD string; end
// dates additionally accept "present". The free-form `date` field accepts any
// string, and downstream logic distinguishes parseable dates from opaque
// labels by attempting a parse.
var (
	// strictDatePattern is what start_date/end_date string values must match.
	strictDatePattern = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)
	// looseDatePattern covers everything that looks like a calendar date,
	// including bare years. A `date` value matching it must parse.
	looseDatePattern = regexp.MustCompile(`^\d{4}(-\d{2})?(-\d{2})?$`)
)

// Month abbreviations, taken from https://web.library.yale.edu/cataloging/months
var monthAbbreviations = [12]string{
	"Jan.", "Feb.", "Mar.", "Apr.", "May", "June",
	"July", "Aug.", "Sept.", "Oct.", "Nov.", "Dec.",
}

// DateValue is a flexible date expression: a bare year, a date string,
// the literal "present", or an arbitrary label. The zero value means unset.
type DateValue struct {
	year int
	text string
	set  bool
}

// Year returns a DateValue holding a bare integer year.
func Year(y int) DateValue { return DateValue{year: y, set: true} }

// DateString returns a DateValue holding a raw string expression.
func DateString(s string) DateValue { return DateValue{text: s, set: true} }

func (d DateValue) IsSet() bool  { return d.set }
func (d DateValue) IsYear() bool { return d.set && d.text == "" }

// String renders the raw expression as the user wrote it.
func (d DateValue) String() string {
	if !d.set {
		return ""
	}
	if d.IsYear() {
		return strconv.Itoa(d.year)
	}
	return d.text
}

func (d DateValue) MarshalJSON() ([]byte, error) {
	switch {
	case !d.set:
		return []byte("null"), nil
	case d.IsYear():
		return json.Marshal(d.year)
	default:
		return json.Marshal(d.text)
	}
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DateValue{}
		return nil
	}
	var y int
	if err := json.Unmarshal(data, &y); err == nil {
		*d = Year(y)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date expression must be a year or a string: %w", err)
	}
	*d = DateString(s)
	return nil
}

// ParseDate resolves a date expression to a calendar date. "present" resolves
// to the current date at parse time. Anything that is not a year, YYYY-MM,
// or YYYY-MM-DD expression fails with ErrInvalidDate.
func ParseDate(d DateValue) (time.Time, error) {
	if d.IsYear() {
		return time.Date(d.year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return parseDateString(d.text)
}

func parseDateString(s string) (time.Time, error) {
	if s == "present" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newFieldError(ErrInvalidDate, "", s,
		"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
}

// FormatDate renders a calendar date as "<month abbreviation> <year>",
// e.g. "May 2024".
func FormatDate(t time.Time) string {
	return monthAbbreviations[int(t.Month())-1] + " " + strconv.Itoa(t.Year())
}

// formatSide renders one side of a start/end range. Bare years render as the
// year digits, "present" renders literally, everything else goes through
// ParseDate and FormatDate. yearsOnly switches to 4-digit year rendering.
func formatSide(d DateValue, yearsOnly bool) string {
	if d.IsYear() {
		return strconv.Itoa(d.year)
	}
	if d.text == "present" {
		return "present"
	}
	t, err := ParseDate(d)
	if err != nil {
		// validated at construction, so unreachable for well-formed entries
		return d.String()
	}
	if yearsOnly {
		return strconv.Itoa(t.Year())
	}
	return FormatDate(t)
}

// dateRangeString derives the display string for an entry's timing fields.
// Precedence: a single `date` wins over the start/end pair; nothing set
// yields the empty string.
func dateRangeString(date, start, end DateValue, yearsOnly bool) string {
	switch {
	case date.IsSet():
		t, err := ParseDate(date)
		if err != nil {
			// an opaque label like "Fall 2020" is returned verbatim
			return date.String()
		}
		return FormatDate(t)
	case start.IsSet() && end.IsSet():
		return formatSide(start, yearsOnly) + " to " + formatSide(end, yearsOnly)
	default:
		return ""
	}
}

// timeSpanString derives the approximate duration of a start/end range.
// The arithmetic is intentionally approximate (365-day years, 30-day
// months) and must stay byte-compatible with existing rendered output.
func timeSpanString(date, start, end DateValue) string {
	if date.IsSet() || (!start.IsSet() && !end.IsSet()) {
		return ""
	}

	if start.IsYear() || end.IsYear() {
		startDate, _ := ParseDate(start)
		endDate, _ := ParseDate(end)
		years := endDate.Year() - startDate.Year()
		if years < 2 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}

	startDate, _ := ParseDate(start)
	endDate, _ := ParseDate(end)
	days := int(endDate.Sub(startDate).Hours() / 24)

	years := days / 365
	// Round half to even, matching the duration strings rendered so far.
	months := int(math.RoundToEven(float64(days%365) / 30))

	var monthsString string
	if months <= 1 {
		monthsString = "1 month"
	} else {
		monthsString = fmt.Sprintf("%d months", months)
	}

	switch years {
	case 0:
		return monthsString
	case 1:
		return "1 year " + monthsString
	default:
		return fmt.Sprintf("%d years ", years) + monthsString
	}
}
