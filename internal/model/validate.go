package model

import (
	"github.com/xeipuuv/gojsonschema"
)

// The structural schemas of the entry variants and the CV aggregate live here
// as definitions. They are used two ways: the inference engine validates raw
// entries against them, and the schema exporter publishes them (after its own
// transforms) for editor tooling. Keeping one source for both guarantees the
// exported schema accepts exactly what validation accepts.

const (
	startDatePattern = `^\d{4}-\d{2}(-\d{2})?$`
	endDatePattern   = `^(\d{4}-\d{2}(-\d{2})?|present)$`
	anyDatePattern   = `^\d{4}(-\d{2})?(-\d{2})?$`
)

func entryBaseProperties() map[string]any {
	return map[string]any{
		"start_date": map[string]any{
			"title":       "Start Date",
			"description": "The start date of the event in YYYY-MM-DD, YYYY-MM, or YYYY format.",
			"anyOf": []any{
				map[string]any{"type": "string", "pattern": startDatePattern},
				map[string]any{"type": "integer"},
			},
		},
		"end_date": map[string]any{
			"title":       "End Date",
			"description": `The end date of the event. If the event is still ongoing, then type "present" or provide only the start_date.`,
			"anyOf": []any{
				map[string]any{"type": "string", "pattern": endDatePattern},
				map[string]any{"type": "integer"},
			},
		},
		"date": map[string]any{
			"title":       "Date",
			"description": `A single date in YYYY-MM-DD format, or a custom date string (like "Fall 2020").`,
			"anyOf": []any{
				map[string]any{"type": "string", "pattern": anyDatePattern},
				map[string]any{"type": "string"},
				map[string]any{"type": "integer"},
			},
		},
		"highlights": map[string]any{
			"title":       "Highlights",
			"description": "The highlights of the event as a list of strings.",
			"type":        "array",
			"items":       map[string]any{"type": "string"},
		},
		"location": map[string]any{
			"title":       "Location",
			"description": "The location of the event.",
			"type":        "string",
		},
	}
}

func objectDef(title string, properties map[string]any, required []string) map[string]any {
	def := map[string]any{
		"title":      title,
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		req := make([]any, len(required))
		for i, r := range required {
			req[i] = r
		}
		def["required"] = req
	}
	return def
}

func datedDef(title string, extra map[string]any, required []string) map[string]any {
	props := entryBaseProperties()
	for k, v := range extra {
		props[k] = v
	}
	return objectDef(title, props, required)
}

// EntryDefinitions returns a fresh definition map for every entry variant.
func EntryDefinitions() map[string]any {
	return map[string]any{
		"OneLineEntry": objectDef("OneLineEntry", map[string]any{
			"label":   map[string]any{"title": "Name", "type": "string"},
			"details": map[string]any{"title": "Details", "type": "string"},
		}, []string{"label", "details"}),
		"NormalEntry": datedDef("NormalEntry", map[string]any{
			"name": map[string]any{"title": "Name", "type": "string"},
		}, []string{"name"}),
		"ExperienceEntry": datedDef("ExperienceEntry", map[string]any{
			"company":  map[string]any{"title": "Company", "type": "string"},
			"position": map[string]any{"title": "Position", "type": "string"},
		}, []string{"company", "position"}),
		"EducationEntry": datedDef("EducationEntry", map[string]any{
			"institution": map[string]any{"title": "Institution", "type": "string"},
			"area":        map[string]any{"title": "Area", "type": "string"},
			"degree":      map[string]any{"title": "Degree", "type": "string"},
		}, []string{"institution", "area"}),
		"PublicationEntry": objectDef("PublicationEntry", map[string]any{
			"title":   map[string]any{"title": "Title of the Publication", "type": "string"},
			"authors": map[string]any{"title": "Authors", "type": "array", "items": map[string]any{"type": "string"}},
			"doi":     map[string]any{"title": "DOI", "type": "string"},
			"date": map[string]any{
				"title": "Publication Date",
				"anyOf": []any{
					map[string]any{"type": "string", "pattern": anyDatePattern},
					map[string]any{"type": "integer"},
				},
			},
			"journal": map[string]any{"title": "Journal", "type": "string"},
		}, []string{"title", "authors", "date"}),
		"BulletEntry": objectDef("BulletEntry", map[string]any{
			"bullet": map[string]any{"title": "Bullet", "type": "string"},
		}, []string{"bullet"}),
	}
}

// CVDefinitions returns the definitions of the CV aggregate and its parts.
// The `sections` values are kept loose here; homogeneity and per-entry
// structure are the inference engine's job.
func CVDefinitions() map[string]any {
	return map[string]any{
		"SocialNetwork": objectDef("SocialNetwork", map[string]any{
			"network": map[string]any{
				"title": "Social Network",
				"type":  "string",
				"enum":  []any{"LinkedIn", "GitHub", "Instagram", "Orcid", "Mastodon", "Twitter"},
			},
			"username": map[string]any{"title": "Username", "type": "string"},
		}, []string{"network", "username"}),
		"CurriculumVitae": objectDef("CurriculumVitae", map[string]any{
			"name":     map[string]any{"title": "Name", "type": "string"},
			"label":    map[string]any{"title": "Label", "type": "string"},
			"location": map[string]any{"title": "Location", "type": "string"},
			"email":    map[string]any{"title": "Email", "type": "string", "format": "email"},
			"phone":    map[string]any{"title": "Phone", "type": "string"},
			"website":  map[string]any{"title": "Website", "type": "string", "format": "uri"},
			"social_networks": map[string]any{
				"title": "Social Networks",
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/SocialNetwork"},
			},
			"sections": map[string]any{
				"title": "Sections",
				"type":  "object",
				"additionalProperties": map[string]any{
					"type": "array",
				},
			},
		}, nil),
	}
}

// validateAgainstDefs validates a raw value against one definition of a
// definition set. Unknown object keys are rejected across the board. Schema
// failures come back as FieldErrors carrying the offending field path and
// value.
func validateAgainstDefs(defs map[string]any, ref string, value any) []error {
	for _, def := range defs {
		if m, ok := def.(map[string]any); ok {
			m["additionalProperties"] = false
		}
	}
	doc := map[string]any{
		"$ref":  "#/$defs/" + ref,
		"$defs": defs,
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(doc), gojsonschema.NewGoLoader(value))
	if err != nil {
		return []error{err}
	}
	if result.Valid() {
		return nil
	}
	errs := make([]error, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		path := e.Field()
		if path == "(root)" {
			path = ""
		}
		errs = append(errs, newFieldError(ErrInvalidField, path, valueString(e.Value()), e.Description()))
	}
	return errs
}

func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// ValidateAgainstDefs is the shared schema-validation entry point for other
// packages; the design resolver validates built-in theme maps through it.
func ValidateAgainstDefs(defs map[string]any, ref string, value any) []error {
	return validateAgainstDefs(defs, ref, value)
}
