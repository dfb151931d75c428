package schema

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocumentShape(t *testing.T) {
	doc := Generate()

	assert.Equal(t, "cvkit", doc["title"])
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, "https://raw.githubusercontent.com/cvkit/cvkit/main/schema.json", doc["$id"])
	assert.Equal(t, []any{"cv"}, doc["required"])
	assert.Equal(t, false, doc["additionalProperties"])

	props := doc["properties"].(map[string]any)
	cv := props["cv"].(map[string]any)
	assert.Equal(t, "#/$defs/CurriculumVitae", cv["$ref"])

	design := props["design"].(map[string]any)
	alternatives := design["oneOf"].([]any)
	require.Len(t, alternatives, 3)
	assert.Equal(t, map[string]any{"$ref": "#/$defs/ClassicThemeOptions"}, alternatives[0])
	assert.Equal(t, map[string]any{"$ref": "#/$defs/ModerncvThemeOptions"}, alternatives[1])
	assert.Equal(t, map[string]any{"$ref": "#/$defs/Sb2novThemeOptions"}, alternatives[2])
}

func TestGenerateIncludesAllDefinitions(t *testing.T) {
	defs := Generate()["$defs"].(map[string]any)
	for _, name := range []string{
		"OneLineEntry", "NormalEntry", "ExperienceEntry", "EducationEntry",
		"PublicationEntry", "BulletEntry",
		"SocialNetwork", "CurriculumVitae",
		"ClassicThemeOptions", "ModerncvThemeOptions", "Sb2novThemeOptions",
		"Margins", "PageMargins",
	} {
		assert.Contains(t, defs, name)
	}
}

func TestGenerateDisallowsUnknownFieldsEverywhere(t *testing.T) {
	defs := Generate()["$defs"].(map[string]any)
	for name, raw := range defs {
		def := raw.(map[string]any)
		assert.Equal(t, false, def["additionalProperties"], "definition %s", name)
	}
}

func TestGenerateUsesOneOfAndNoNullType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf))
	rendered := buf.String()

	assert.NotContains(t, rendered, `"null"`)

	// field-level alternations come out as oneOf
	defs := Generate()["$defs"].(map[string]any)
	normal := defs["NormalEntry"].(map[string]any)
	start := normal["properties"].(map[string]any)["start_date"].(map[string]any)
	assert.NotContains(t, start, "anyOf")
	assert.Contains(t, start, "oneOf")

	// still valid JSON end to end
	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(rendered), "}"))
}

func TestGenerateCollapsesDateAlternation(t *testing.T) {
	defs := Generate()["$defs"].(map[string]any)

	normal := defs["NormalEntry"].(map[string]any)
	date := normal["properties"].(map[string]any)["date"].(map[string]any)
	alternatives := date["oneOf"].([]any)
	// the calendar-pattern string is subsumed by the free-text string
	require.Len(t, alternatives, 2)
	for _, alt := range alternatives {
		m := alt.(map[string]any)
		if m["type"] == "string" {
			assert.NotContains(t, m, "pattern")
		}
	}

	// PublicationEntry has no free-text date, so its pattern survives
	publication := defs["PublicationEntry"].(map[string]any)
	pubDate := publication["properties"].(map[string]any)["date"].(map[string]any)
	pubAlternatives := pubDate["oneOf"].([]any)
	require.Len(t, pubAlternatives, 2)
	assert.Contains(t, pubAlternatives[0].(map[string]any), "pattern")
}

func TestGenerateSectionsAlternation(t *testing.T) {
	defs := Generate()["$defs"].(map[string]any)
	cv := defs["CurriculumVitae"].(map[string]any)
	sections := cv["properties"].(map[string]any)["sections"].(map[string]any)

	value := sections["additionalProperties"].(map[string]any)
	alternatives := value["anyOf"].([]any)
	require.Len(t, alternatives, 7)

	last := alternatives[6].(map[string]any)
	assert.Equal(t, "array", last["type"])
	assert.Equal(t, map[string]any{"type": "string"}, last["items"])

	first := alternatives[0].(map[string]any)
	assert.Equal(t, map[string]any{"$ref": "#/$defs/OneLineEntry"}, first["items"])
}
