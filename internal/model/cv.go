package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s().-]{5,24}$`)

// NamedEntryList is one raw section: its key from the input file and its
// untyped entry list.
type NamedEntryList struct {
	Key     string
	Entries []any
}

// SectionsInput is the raw section mapping in input order. Go maps don't
// preserve key order, so the decode layer hands the sections over as an
// ordered list of key/entries pairs.
type SectionsInput []NamedEntryList

// MarshalJSON renders the sections as an object with the keys in input order.
func (s SectionsInput) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, named := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(named.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		entries, err := json.Marshal(named.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CurriculumVitae is the top-level person record. It is constructed once by
// NewCurriculumVitae and immutable afterwards.
type CurriculumVitae struct {
	Name           string
	Label          string
	Location       string
	Email          string
	Phone          string
	Website        string
	SocialNetworks []*SocialNetwork
	SectionsInput  SectionsInput

	sections []*Section
}

// Design is a resolved rendering configuration. Implementations live in the
// theme package; custom theme options satisfy it as well.
type Design interface {
	ThemeName() string
}

// RenderRequest binds a validated CV and its resolved design together. It is
// the artifact handed to the renderer.
type RenderRequest struct {
	CV     *CurriculumVitae
	Design Design
}

// NewCurriculumVitae validates a raw cv mapping and builds the typed
// aggregate. Every named section is inferred and validated here; errors are
// terminal, there is no partial model.
func NewCurriculumVitae(raw map[string]any) (*CurriculumVitae, error) {
	sections := normalizeSections(raw["sections"])

	structural := map[string]any{}
	for k, v := range raw {
		structural[k] = v
	}
	if sections != nil {
		structural["sections"] = sections
	}
	if errs := validateAgainstDefs(CVDefinitions(), "CurriculumVitae", structural); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cv := &CurriculumVitae{
		Name:          stringField(raw, "name"),
		Label:         stringField(raw, "label"),
		Location:      stringField(raw, "location"),
		Email:         stringField(raw, "email"),
		Phone:         stringField(raw, "phone"),
		Website:       stringField(raw, "website"),
		SectionsInput: sections,
	}

	if cv.Email != "" {
		if _, err := mail.ParseAddress(cv.Email); err != nil {
			return nil, newFieldError(ErrInvalidField, "email", cv.Email, "this is not a valid email address")
		}
	}
	if cv.Phone != "" && !phonePattern.MatchString(cv.Phone) {
		return nil, newFieldError(ErrInvalidField, "phone", cv.Phone, "this is not a valid phone number")
	}
	if cv.Website != "" {
		u, err := url.Parse(cv.Website)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, newFieldError(ErrInvalidField, "website", cv.Website, "this is not a valid URL")
		}
	}

	if rawNetworks, ok := raw["social_networks"].([]any); ok {
		for i, rawNetwork := range rawNetworks {
			m, ok := rawNetwork.(map[string]any)
			if !ok {
				return nil, newFieldError(ErrInvalidField, fmt.Sprintf("social_networks[%d]", i), "",
					"a social network must be a mapping with network and username")
			}
			network := &SocialNetwork{
				Network:  stringField(m, "network"),
				Username: stringField(m, "username"),
			}
			if err := network.Validate(); err != nil {
				return nil, fmt.Errorf("social_networks[%d]: %w", i, err)
			}
			cv.SocialNetworks = append(cv.SocialNetworks, network)
		}
	}

	for _, named := range cv.SectionsInput {
		section, err := ResolveSection(sectionTitle(named.Key), named.Entries)
		if err != nil {
			return nil, fmt.Errorf("sections.%s: %w", named.Key, err)
		}
		cv.sections = append(cv.sections, section)
	}

	return cv, nil
}

// Sections returns the validated sections in input order, with display
// titles derived from the raw keys. Computed once at construction.
func (cv *CurriculumVitae) Sections() []*Section {
	return cv.sections
}

// sectionTitle turns a raw section key into a display title: underscores
// become spaces and every word is title-cased.
func sectionTitle(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// normalizeSections accepts either the ordered form produced by the input
// decoder or a plain mapping from an external parser. Plain mappings carry no
// order, so their keys are sorted for determinism.
func normalizeSections(raw any) SectionsInput {
	switch v := raw.(type) {
	case nil:
		return nil
	case SectionsInput:
		return v
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sections := make(SectionsInput, 0, len(keys))
		for _, k := range keys {
			entries, _ := v[k].([]any)
			sections = append(sections, NamedEntryList{Key: k, Entries: entries})
		}
		return sections
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
