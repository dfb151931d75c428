package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvkit/pkg/doi"
)

type stubDOIChecker struct {
	err error
}

func (s stubDOIChecker) Exists(string) error { return s.err }

func TestCheckDatesDateWins(t *testing.T) {
	e := EntryBase{
		Date:      DateString("2020-09-24"),
		StartDate: DateString("2019-01-01"),
		EndDate:   DateString("2021-01-01"),
	}
	require.NoError(t, e.checkDates())
	assert.False(t, e.StartDate.IsSet())
	assert.False(t, e.EndDate.IsSet())
	assert.Equal(t, "Sept. 2020", e.DateString())
	assert.Empty(t, e.TimeSpanString())
}

func TestCheckDatesOpaqueLabel(t *testing.T) {
	e := EntryBase{Date: DateString("Fall 2020")}
	require.NoError(t, e.checkDates())
	assert.Equal(t, "Fall 2020", e.DateString())
}

func TestCheckDatesCalendarLookingLabelMustParse(t *testing.T) {
	e := EntryBase{Date: DateString("2020-13")}
	err := e.checkDates()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCheckDatesEndWithoutStart(t *testing.T) {
	e := EntryBase{EndDate: DateString("2021-01-01")}
	err := e.checkDates()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingStartDate)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "start_date", fieldErr.Path)
}

func TestCheckDatesStartOnlyDefaultsToPresent(t *testing.T) {
	e := EntryBase{StartDate: DateString("2020-09")}
	require.NoError(t, e.checkDates())
	assert.Equal(t, "present", e.EndDate.String())
	assert.Equal(t, "Sept. 2020 to present", e.DateString())
}

func TestCheckDatesStartAfterEnd(t *testing.T) {
	e := EntryBase{StartDate: DateString("2022-01-01"), EndDate: DateString("2020-01-01")}
	err := e.checkDates()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStartAfterEnd)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "start_date", fieldErr.Path)
	assert.Equal(t, "2022-01-01", fieldErr.Value)
}

func TestCheckDatesStartEndOrdering(t *testing.T) {
	// Property: any pair that validates reads back with start <= end.
	pairs := []struct {
		start, end DateValue
	}{
		{DateString("2020-01-01"), DateString("2020-01-01")},
		{DateString("2020-01"), DateString("2022-12")},
		{Year(1999), Year(2004)},
		{DateString("2020-09-24"), DateString("present")},
	}
	for _, p := range pairs {
		e := EntryBase{StartDate: p.start, EndDate: p.end}
		require.NoError(t, e.checkDates())
		start, err := ParseDate(e.StartDate)
		require.NoError(t, err)
		end, err := ParseDate(e.EndDate)
		require.NoError(t, err)
		assert.False(t, start.After(end))
	}
}

func TestCheckDatesRejectsBareYearString(t *testing.T) {
	// "2020" parses as a date expression but is not a valid start_date shape.
	e := EntryBase{StartDate: DateString("2020")}
	assert.ErrorIs(t, e.checkDates(), ErrInvalidDate)
}

func TestDerivedStringsMemoized(t *testing.T) {
	e := EntryBase{StartDate: DateString("2020-01-01"), EndDate: DateString("2020-04-20")}
	require.NoError(t, e.checkDates())
	first := e.TimeSpanString()
	assert.Equal(t, "4 months", first)
	// mutating after the first access must not change the derived value
	e.EndDate = DateString("2022-01-01")
	assert.Equal(t, first, e.TimeSpanString())
}

func TestPublicationEntryValidate(t *testing.T) {
	prev := doiChecker
	SetDOIChecker(stubDOIChecker{})
	defer SetDOIChecker(prev)

	entry := &PublicationEntry{
		Title:   "Magneto-Thermal Thin Shell Approximation",
		Authors: []string{"A. Smith", "J. Doe"},
		DOI:     "10.1109/TASC.2023.3340648",
		Date:    DateString("2004-01"),
	}
	require.NoError(t, entry.validate())
	assert.Equal(t, "https://doi.org/10.1109/TASC.2023.3340648", entry.DOIURL())
	assert.Equal(t, "Jan. 2004", entry.DateString())
}

func TestPublicationEntryRequiresDate(t *testing.T) {
	entry := &PublicationEntry{Title: "T", Authors: []string{"A"}}
	assert.ErrorIs(t, entry.validate(), ErrInvalidDate)
}

func TestPublicationEntryYearDate(t *testing.T) {
	entry := &PublicationEntry{Title: "T", Authors: []string{"A"}, Date: Year(2010)}
	require.NoError(t, entry.validate())
	assert.Equal(t, "2010", entry.DateString())
	assert.Empty(t, entry.DOIURL())
}

func TestPublicationEntryDOINotFound(t *testing.T) {
	prev := doiChecker
	SetDOIChecker(stubDOIChecker{err: doi.ErrNotFound})
	defer SetDOIChecker(prev)

	entry := &PublicationEntry{Title: "T", Authors: []string{"A"}, Date: Year(2010), DOI: "10.0/nope"}
	err := entry.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExternalLookup)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "doi", fieldErr.Path)
	assert.Equal(t, "10.0/nope", fieldErr.Value)
}

func TestCharacteristicFieldsExcludeBase(t *testing.T) {
	for _, variant := range entryVariants {
		for _, field := range variant.characteristic {
			assert.False(t, entryBaseFields[field],
				"%s characteristic field %q is a shared base field", variant.name, field)
		}
	}
}

func TestEntryTypeNames(t *testing.T) {
	assert.Equal(t, []string{
		"OneLineEntry", "NormalEntry", "ExperienceEntry",
		"EducationEntry", "PublicationEntry", "BulletEntry", "TextEntry",
	}, EntryTypeNames())
}
