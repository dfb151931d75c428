package model

import (
	"encoding/json"
	"errors"
	"sync"

	"cvkit/pkg/doi"
)

// Entry is one structured record inside a CV section. The set of entry types
// is closed; every implementation lives in this file.
type Entry interface {
	entryTypeName() string
}

// validator is implemented by entry types that carry model-level invariants
// beyond their structural schema.
type validator interface {
	validate() error
}

// EntryBase holds the fields shared by the dated entry types. Exactly one
// timing mode governs an entry: either `date` alone or the start/end pair.
type EntryBase struct {
	StartDate  DateValue `json:"start_date,omitempty"`
	EndDate    DateValue `json:"end_date,omitempty"`
	Date       DateValue `json:"date,omitempty"`
	Highlights []string  `json:"highlights,omitempty"`
	Location   string    `json:"location,omitempty"`

	deriveOnce   sync.Once
	dateStr      string
	dateStrYears string
	timeSpanStr  string
}

// checkDates normalizes and validates the timing fields:
//  1. `date` wins: start/end are cleared; a calendar-looking value must parse,
//     anything else is accepted as an opaque label.
//  2. `end_date` without `start_date` is an error.
//  3. `start_date` alone means an ongoing event, so `end_date` defaults to
//     "present"; both sides must parse and start must not be after end.
func (e *EntryBase) checkDates() error {
	switch {
	case e.Date.IsSet():
		e.StartDate = DateValue{}
		e.EndDate = DateValue{}
		if !e.Date.IsYear() && looseDatePattern.MatchString(e.Date.String()) {
			if _, err := ParseDate(e.Date); err != nil {
				return newFieldError(ErrInvalidDate, "date", e.Date.String(),
					"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
			}
		}
	case e.EndDate.IsSet() && !e.StartDate.IsSet():
		return newFieldError(ErrMissingStartDate, "start_date", "",
			`"end_date" is provided, but "start_date" is not. Either provide both "start_date" and "end_date" or provide "date"`)
	case e.StartDate.IsSet():
		if !e.EndDate.IsSet() {
			e.EndDate = DateString("present")
		}
		if err := checkRangeSide(e.EndDate, "end_date", true); err != nil {
			return err
		}
		if err := checkRangeSide(e.StartDate, "start_date", false); err != nil {
			return err
		}
		start, _ := ParseDate(e.StartDate)
		end, _ := ParseDate(e.EndDate)
		if start.After(end) {
			return newFieldError(ErrStartAfterEnd, "start_date", e.StartDate.String(),
				`"start_date" can not be after "end_date"!`)
		}
	}
	return nil
}

// checkRangeSide enforces the stricter field-level shape of start/end dates:
// an integer year, or a YYYY-MM / YYYY-MM-DD string ("present" for end only).
func checkRangeSide(d DateValue, path string, allowPresent bool) error {
	if d.IsYear() {
		return nil
	}
	s := d.String()
	if allowPresent && s == "present" {
		return nil
	}
	if !strictDatePattern.MatchString(s) {
		return newFieldError(ErrInvalidDate, path, s,
			"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
	}
	if _, err := parseDateString(s); err != nil {
		return newFieldError(ErrInvalidDate, path, s,
			"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
	}
	return nil
}

func (e *EntryBase) derive() {
	e.dateStr = dateRangeString(e.Date, e.StartDate, e.EndDate, false)
	e.dateStrYears = dateRangeString(e.Date, e.StartDate, e.EndDate, true)
	e.timeSpanStr = timeSpanString(e.Date, e.StartDate, e.EndDate)
}

// DateString returns the display string of the entry's timing fields,
// e.g. "Sept. 2020 to present". Computed once per instance.
func (e *EntryBase) DateString() string {
	e.deriveOnce.Do(e.derive)
	return e.dateStr
}

// DateStringOnlyYears is DateString with the range sides reduced to years.
func (e *EntryBase) DateStringOnlyYears() string {
	e.deriveOnce.Do(e.derive)
	return e.dateStrYears
}

// TimeSpanString returns the approximate duration of the start/end range,
// e.g. "1 year 4 months". Empty when a single `date` governs the entry.
func (e *EntryBase) TimeSpanString() string {
	e.deriveOnce.Do(e.derive)
	return e.timeSpanStr
}

// OneLineEntry is a label/details pair rendered on a single line.
type OneLineEntry struct {
	Label   string `json:"label"`
	Details string `json:"details"`
}

// NormalEntry is a dated entry with a name.
type NormalEntry struct {
	EntryBase
	Name string `json:"name"`
}

// ExperienceEntry is a dated entry describing a position at a company.
type ExperienceEntry struct {
	EntryBase
	Company  string `json:"company"`
	Position string `json:"position"`
}

// EducationEntry is a dated entry describing a degree program.
type EducationEntry struct {
	EntryBase
	Institution string `json:"institution"`
	Area        string `json:"area"`
	Degree      string `json:"degree,omitempty"`
}

// PublicationEntry describes a publication. Unlike the dated entry types it
// requires a single `date` and has no start/end pair.
type PublicationEntry struct {
	Title   string    `json:"title"`
	Authors []string  `json:"authors"`
	DOI     string    `json:"doi,omitempty"`
	Date    DateValue `json:"date"`
	Journal string    `json:"journal,omitempty"`

	deriveOnce sync.Once
	dateStr    string
}

// BulletEntry is a single bulleted line.
type BulletEntry struct {
	Bullet string `json:"bullet"`
}

// TextEntry is a bare paragraph of text with no structure.
type TextEntry string

func (*OneLineEntry) entryTypeName() string     { return "OneLineEntry" }
func (*NormalEntry) entryTypeName() string      { return "NormalEntry" }
func (*ExperienceEntry) entryTypeName() string  { return "ExperienceEntry" }
func (*EducationEntry) entryTypeName() string   { return "EducationEntry" }
func (*PublicationEntry) entryTypeName() string { return "PublicationEntry" }
func (*BulletEntry) entryTypeName() string      { return "BulletEntry" }
func (TextEntry) entryTypeName() string         { return "TextEntry" }

func (e *NormalEntry) validate() error     { return e.checkDates() }
func (e *ExperienceEntry) validate() error { return e.checkDates() }
func (e *EducationEntry) validate() error  { return e.checkDates() }

func (e *PublicationEntry) validate() error {
	if !e.Date.IsSet() {
		return newFieldError(ErrInvalidDate, "date", "", "publication date is required")
	}
	if !e.Date.IsYear() {
		if !looseDatePattern.MatchString(e.Date.String()) {
			return newFieldError(ErrInvalidDate, "date", e.Date.String(),
				"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
		}
		if _, err := ParseDate(e.Date); err != nil {
			return newFieldError(ErrInvalidDate, "date", e.Date.String(),
				"this is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format")
		}
	}
	if e.DOI != "" {
		if err := doiChecker.Exists(e.DOI); err != nil {
			if errors.Is(err, doi.ErrNotFound) {
				return newFieldError(ErrExternalLookup, "doi", e.DOI,
					"DOI cannot be found in the DOI System!")
			}
			// other transport failures are not a recovered kind
			return err
		}
	}
	return nil
}

// DOIURL returns the resolvable URL of the publication's DOI, or "" when no
// DOI is set.
func (e *PublicationEntry) DOIURL() string {
	if e.DOI == "" {
		return ""
	}
	return "https://doi.org/" + e.DOI
}

// DateString returns the formatted publication date. Bare years render as
// the year digits.
func (e *PublicationEntry) DateString() string {
	e.deriveOnce.Do(func() {
		if e.Date.IsYear() {
			e.dateStr = e.Date.String()
			return
		}
		t, err := ParseDate(e.Date)
		if err != nil {
			e.dateStr = e.Date.String()
			return
		}
		e.dateStr = FormatDate(t)
	})
	return e.dateStr
}

// DOIChecker verifies that a publication identifier exists in the DOI System.
type DOIChecker interface {
	Exists(doi string) error
}

var doiChecker DOIChecker = doi.NewClient()

// SetDOIChecker replaces the checker used during publication validation.
// Hosts use it to stub the network dependency out.
func SetDOIChecker(c DOIChecker) {
	doiChecker = c
}

// entryBaseFields are the shared EntryBase field names. A variant's
// characteristic fields are its own fields minus this set.
var entryBaseFields = map[string]bool{
	"start_date": true,
	"end_date":   true,
	"date":       true,
	"highlights": true,
	"location":   true,
}

// variantSpec describes one entry variant for the inference engine. The
// order of entryVariants is the fixed classification priority: a raw map
// carrying characteristic fields of two variants resolves to the earlier one.
type variantSpec struct {
	name           string
	characteristic []string
	decode         func(data []byte) (Entry, error)
}

func decodeInto[T any, PT interface {
	*T
	Entry
}](data []byte) (Entry, error) {
	v := PT(new(T))
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

var entryVariants = []variantSpec{
	{"OneLineEntry", []string{"label", "details"}, decodeInto[OneLineEntry]},
	{"NormalEntry", []string{"name"}, decodeInto[NormalEntry]},
	{"ExperienceEntry", []string{"company", "position"}, decodeInto[ExperienceEntry]},
	{"EducationEntry", []string{"institution", "area", "degree"}, decodeInto[EducationEntry]},
	{"PublicationEntry", []string{"title", "authors", "doi", "journal"}, decodeInto[PublicationEntry]},
	{"BulletEntry", []string{"bullet"}, decodeInto[BulletEntry]},
}

// EntryTypeNames lists every entry type tag in declaration order, including
// the unstructured text tag.
func EntryTypeNames() []string {
	names := make([]string, 0, len(entryVariants)+1)
	for _, v := range entryVariants {
		names = append(names, v.name)
	}
	return append(names, "TextEntry")
}
