package theme

// Schema definitions of the built-in theme options. They serve the same two
// masters as the entry definitions in the model package: resolver-side
// validation of raw design maps and the exported schema document.

const dimensionPattern = `^\d+\.?\d* *(cm|in|pt|mm|ex|em)$`

func dimension(title string) map[string]any {
	return map[string]any{"title": title, "type": "string", "pattern": dimensionPattern}
}

func marginDefs() map[string]any {
	return map[string]any{
		"PageMargins": map[string]any{
			"title": "PageMargins",
			"type":  "object",
			"properties": map[string]any{
				"top":    dimension("Top Margin"),
				"bottom": dimension("Bottom Margin"),
				"left":   dimension("Left Margin"),
				"right":  dimension("Right Margin"),
			},
		},
		"SectionTitleMargins": map[string]any{
			"title": "SectionTitleMargins",
			"type":  "object",
			"properties": map[string]any{
				"top":    dimension("Top Margin"),
				"bottom": dimension("Bottom Margin"),
			},
		},
		"EntryAreaMargins": map[string]any{
			"title": "EntryAreaMargins",
			"type":  "object",
			"properties": map[string]any{
				"left_and_right":          dimension("Left and Right Margin"),
				"vertical_between":        dimension("Vertical Margin Between Entry Areas"),
				"date_and_location_width": dimension("Date and Location Column Width"),
			},
		},
		"HighlightsAreaMargins": map[string]any{
			"title": "HighlightsAreaMargins",
			"type":  "object",
			"properties": map[string]any{
				"top":                            dimension("Top Margin"),
				"left":                           dimension("Left Margin"),
				"vertical_between_bullet_points": dimension("Vertical Margin Between Bullet Points"),
			},
		},
		"HeaderMargins": map[string]any{
			"title": "HeaderMargins",
			"type":  "object",
			"properties": map[string]any{
				"vertical_between_name_and_connections": dimension("Vertical Margin Between the Name and Connections"),
				"bottom":                                dimension("Bottom Margin"),
				"horizontal_between_connections":        dimension("Space Between Connections"),
			},
		},
		"Margins": map[string]any{
			"title": "Margins",
			"type":  "object",
			"properties": map[string]any{
				"page":            map[string]any{"$ref": "#/$defs/PageMargins"},
				"section_title":   map[string]any{"$ref": "#/$defs/SectionTitleMargins"},
				"entry_area":      map[string]any{"$ref": "#/$defs/EntryAreaMargins"},
				"highlights_area": map[string]any{"$ref": "#/$defs/HighlightsAreaMargins"},
				"header":          map[string]any{"$ref": "#/$defs/HeaderMargins"},
			},
		},
	}
}

func commonOptionProperties(themeName string) map[string]any {
	return map[string]any{
		"theme":     map[string]any{"title": "Theme", "type": "string", "enum": []any{themeName}},
		"font_size": map[string]any{"title": "Font Size", "type": "string", "enum": []any{"10pt", "11pt", "12pt"}},
		"page_size": map[string]any{"title": "Page Size", "type": "string", "enum": []any{"a4paper", "letterpaper"}},
	}
}

// Definitions returns a fresh definition map for every theme option type.
func Definitions() map[string]any {
	defs := marginDefs()

	classic := commonOptionProperties("classic")
	classic["color"] = map[string]any{"title": "Primary Color", "type": "string"}
	classic["disable_page_numbering"] = map[string]any{"title": "Disable Page Numbering", "type": "boolean"}
	classic["page_numbering_style"] = map[string]any{"title": "Page Numbering Style", "type": "string"}
	classic["show_last_updated_date"] = map[string]any{"title": "Show Last Updated Date", "type": "boolean"}
	classic["header_font_size"] = dimension("Header Font Size")
	classic["text_alignment"] = map[string]any{
		"title": "Text Alignment", "type": "string", "enum": []any{"left-aligned", "justified"},
	}
	classic["margins"] = map[string]any{"$ref": "#/$defs/Margins"}
	classic["show_timespan_in"] = map[string]any{
		"title": "Show Time Span in These Sections",
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	defs["ClassicThemeOptions"] = map[string]any{
		"title":      "ClassicThemeOptions",
		"type":       "object",
		"properties": classic,
		"required":   []any{"theme"},
	}

	moderncv := commonOptionProperties("moderncv")
	moderncv["color"] = map[string]any{"title": "Primary Color", "type": "string"}
	moderncv["date_width"] = dimension("Date Column Width")
	moderncv["show_only_years"] = map[string]any{"title": "Show Only Years", "type": "boolean"}
	defs["ModerncvThemeOptions"] = map[string]any{
		"title":      "ModerncvThemeOptions",
		"type":       "object",
		"properties": moderncv,
		"required":   []any{"theme"},
	}

	sb2nov := commonOptionProperties("sb2nov")
	sb2nov["link_color"] = map[string]any{
		"title": "Link Color",
		"type":  "string",
		"enum":  []any{"black", "red", "green", "blue", "cyan", "magenta", "yellow"},
	}
	sb2nov["date_and_location_width"] = dimension("Date and Location Column Width")
	sb2nov["space_between_connection_objects"] = dimension("Space Between Connection Objects")
	defs["Sb2novThemeOptions"] = map[string]any{
		"title":      "Sb2novThemeOptions",
		"type":       "object",
		"properties": sb2nov,
		"required":   []any{"theme"},
	}

	return defs
}
