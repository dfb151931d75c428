// Package schema derives the public JSON schema of the whole input type
// system, for editor tooling. It is read-only over the model and theme
// definitions and has no validation side effects.
package schema

import (
	"encoding/json"
	"io"

	"cvkit/internal/model"
	"cvkit/internal/theme"
)

const (
	schemaID      = "https://raw.githubusercontent.com/cvkit/cvkit/main/schema.json"
	schemaDialect = "http://json-schema.org/draft-07/schema#"
)

// Generate produces the draft-07 compatible schema document describing a
// complete render request: the CV aggregate, every entry variant, and the
// built-in theme options.
func Generate() map[string]any {
	defs := model.EntryDefinitions()
	for name, def := range model.CVDefinitions() {
		defs[name] = def
	}
	for name, def := range theme.Definitions() {
		defs[name] = def
	}

	// The published schema spells the section alternation out in full: a
	// section is a homogeneous list of one of the entry variants.
	if cv, ok := defs["CurriculumVitae"].(map[string]any); ok {
		props := cv["properties"].(map[string]any)
		props["sections"] = map[string]any{
			"title": "Sections",
			"type":  "object",
			"additionalProperties": map[string]any{
				"anyOf": entryListAlternatives(),
			},
		}
	}

	designAlternatives := make([]any, 0, len(theme.BuiltInThemes()))
	for _, name := range theme.BuiltInThemes() {
		ref := "#/$defs/" + titleUpper(name) + "ThemeOptions"
		designAlternatives = append(designAlternatives, map[string]any{"$ref": ref})
	}

	doc := map[string]any{
		"title":       "cvkit",
		"description": "cvkit data model.",
		"$id":         schemaID,
		"$schema":     schemaDialect,
		"type":        "object",
		"properties": map[string]any{
			"cv": map[string]any{
				"title":       "Curriculum Vitae",
				"description": "The data of the CV.",
				"$ref":        "#/$defs/CurriculumVitae",
			},
			"design": map[string]any{
				"title":       "Design",
				"description": "The design information of the CV. The default is the classic theme.",
				"oneOf":       designAlternatives,
			},
		},
		"required":             []any{"cv"},
		"additionalProperties": false,
		"$defs":                defs,
	}

	for _, def := range defs {
		if m, ok := def.(map[string]any); ok {
			transformDefinition(m)
		}
	}
	return doc
}

// WriteTo renders the schema document as indented JSON.
func WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Generate())
}

func entryListAlternatives() []any {
	names := model.EntryTypeNames()
	alternatives := make([]any, 0, len(names))
	for _, name := range names {
		var items map[string]any
		if name == "TextEntry" {
			items = map[string]any{"type": "string"}
		} else {
			items = map[string]any{"$ref": "#/$defs/" + name}
		}
		alternatives = append(alternatives, map[string]any{"type": "array", "items": items})
	}
	return alternatives
}

// transformDefinition applies the export rules to one definition: unknown
// fields are disallowed, remaining alternations become oneOf (optional
// fields are already required-or-absent, never explicit null), and the
// `date` alternation drops the calendar-pattern string wherever a free-text
// string alternative exists, so a calendar-looking value never matches two
// alternatives at once.
func transformDefinition(def map[string]any) {
	def["additionalProperties"] = false

	props, ok := def["properties"].(map[string]any)
	if !ok {
		return
	}
	for name, rawField := range props {
		field, ok := rawField.(map[string]any)
		if !ok {
			continue
		}
		alternatives, ok := field["anyOf"].([]any)
		if !ok {
			continue
		}
		if name == "date" {
			alternatives = collapseDateAlternatives(alternatives)
		}
		delete(field, "anyOf")
		field["oneOf"] = alternatives
	}
}

func collapseDateAlternatives(alternatives []any) []any {
	hasFreeText := false
	for _, alt := range alternatives {
		if m, ok := alt.(map[string]any); ok {
			if m["type"] == "string" {
				if _, patterned := m["pattern"]; !patterned {
					hasFreeText = true
				}
			}
		}
	}
	if !hasFreeText {
		return alternatives
	}
	kept := make([]any, 0, len(alternatives))
	for _, alt := range alternatives {
		if m, ok := alt.(map[string]any); ok {
			if _, patterned := m["pattern"]; patterned && m["type"] == "string" {
				continue
			}
		}
		kept = append(kept, alt)
	}
	return kept
}

func titleUpper(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
