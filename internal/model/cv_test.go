package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCVInput() map[string]any {
	return map[string]any{
		"name":     "John Doe",
		"label":    "Software Engineer",
		"location": "Istanbul, Türkiye",
		"email":    "johndoe@example.com",
		"phone":    "+905419999999",
		"website":  "https://example.com",
		"social_networks": []any{
			map[string]any{"network": "LinkedIn", "username": "johndoe"},
			map[string]any{"network": "GitHub", "username": "johndoe"},
		},
		"sections": SectionsInput{
			{Key: "summary", Entries: []any{"A one-paragraph summary."}},
			{Key: "education", Entries: []any{
				map[string]any{
					"institution": "University of Pennsylvania",
					"area":        "Computer Science",
					"degree":      "BS",
					"start_date":  "2000-09",
					"end_date":    "2005-05",
				},
			}},
			{Key: "additional_experience_and_awards", Entries: []any{
				map[string]any{"label": "Instructor", "details": "Taught two courses."},
			}},
		},
	}
}

func TestNewCurriculumVitae(t *testing.T) {
	cv, err := NewCurriculumVitae(sampleCVInput())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", cv.Name)
	assert.Equal(t, "johndoe@example.com", cv.Email)
	require.Len(t, cv.SocialNetworks, 2)
	assert.Equal(t, "https://linkedin.com/in/johndoe", cv.SocialNetworks[0].URL())

	sections := cv.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Summary", sections[0].Title)
	assert.Equal(t, "TextEntry", sections[0].EntryType)
	assert.Equal(t, "Education", sections[1].Title)
	assert.Equal(t, "EducationEntry", sections[1].EntryType)
	assert.Equal(t, "Additional Experience And Awards", sections[2].Title)
	assert.Equal(t, "OneLineEntry", sections[2].EntryType)

	education := sections[1].Entries[0].(*EducationEntry)
	assert.Equal(t, "Sept. 2000 to May 2005", education.DateString())
	assert.Equal(t, "2000 to 2005", education.DateStringOnlyYears())
	assert.Equal(t, "4 years 8 months", education.TimeSpanString())
}

func TestSectionsComputedOnce(t *testing.T) {
	cv, err := NewCurriculumVitae(sampleCVInput())
	require.NoError(t, err)
	first := cv.Sections()
	second := cv.Sections()
	require.Len(t, first, 3)
	assert.Same(t, first[0], second[0])
}

func TestNewCurriculumVitaeUnknownField(t *testing.T) {
	raw := sampleCVInput()
	raw["nickname"] = "JD"
	_, err := NewCurriculumVitae(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestNewCurriculumVitaeInvalidEmail(t *testing.T) {
	raw := sampleCVInput()
	raw["email"] = "not-an-email"
	_, err := NewCurriculumVitae(raw)
	assert.Error(t, err)
}

func TestNewCurriculumVitaeInvalidPhone(t *testing.T) {
	raw := sampleCVInput()
	raw["phone"] = "call me"
	_, err := NewCurriculumVitae(raw)
	assert.Error(t, err)
}

func TestNewCurriculumVitaeInvalidWebsite(t *testing.T) {
	raw := sampleCVInput()
	raw["website"] = "not a url"
	_, err := NewCurriculumVitae(raw)
	assert.Error(t, err)
}

func TestNewCurriculumVitaeSectionErrorNamesKey(t *testing.T) {
	raw := sampleCVInput()
	raw["sections"] = SectionsInput{
		{Key: "experience", Entries: []any{
			map[string]any{"company": "X", "position": "Y"},
			map[string]any{"label": "A", "details": "B"},
		}},
	}
	_, err := NewCurriculumVitae(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sections.experience")

	var sectionErr *SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, "ExperienceEntry", sectionErr.EntryType)
}

func TestNewCurriculumVitaePlainMapSections(t *testing.T) {
	// External parsers may hand sections over as a plain map; order is
	// undefined there, so keys are sorted for determinism.
	raw := map[string]any{
		"name": "Jane",
		"sections": map[string]any{
			"b_second": []any{"text"},
			"a_first":  []any{"text"},
		},
	}
	cv, err := NewCurriculumVitae(raw)
	require.NoError(t, err)
	sections := cv.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "A First", sections[0].Title)
	assert.Equal(t, "B Second", sections[1].Title)
}

func TestSectionsInputMarshalPreservesOrder(t *testing.T) {
	s := SectionsInput{
		{Key: "zeta", Entries: []any{"z"}},
		{Key: "alpha", Entries: []any{"a"}},
	}
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":["z"],"alpha":["a"]}`, string(data))
	assert.Less(t, indexOf(string(data), "zeta"), indexOf(string(data), "alpha"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
