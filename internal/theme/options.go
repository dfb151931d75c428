// Package theme resolves the design configuration of a render request: the
// discriminated union of built-in theme options, host-registered providers,
// and filesystem-defined custom themes.
package theme

// Dimension values are LaTeX lengths such as "0.2 cm" or "30 pt".

type PageMargins struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

type SectionTitleMargins struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

type EntryAreaMargins struct {
	LeftAndRight         string `json:"left_and_right"`
	VerticalBetween      string `json:"vertical_between"`
	DateAndLocationWidth string `json:"date_and_location_width"`
}

type HighlightsAreaMargins struct {
	Top                         string `json:"top"`
	Left                        string `json:"left"`
	VerticalBetweenBulletPoints string `json:"vertical_between_bullet_points"`
}

type HeaderMargins struct {
	VerticalBetweenNameAndConnections string `json:"vertical_between_name_and_connections"`
	Bottom                            string `json:"bottom"`
	HorizontalBetweenConnections      string `json:"horizontal_between_connections"`
}

type Margins struct {
	Page           PageMargins           `json:"page"`
	SectionTitle   SectionTitleMargins   `json:"section_title"`
	EntryArea      EntryAreaMargins      `json:"entry_area"`
	HighlightsArea HighlightsAreaMargins `json:"highlights_area"`
	Header         HeaderMargins         `json:"header"`
}

func defaultMargins() Margins {
	return Margins{
		Page: PageMargins{Top: "2 cm", Bottom: "2 cm", Left: "1.24 cm", Right: "1.24 cm"},
		SectionTitle: SectionTitleMargins{Top: "0.2 cm", Bottom: "0.2 cm"},
		EntryArea: EntryAreaMargins{
			LeftAndRight:         "0.2 cm",
			VerticalBetween:      "0.12 cm",
			DateAndLocationWidth: "4.1 cm",
		},
		HighlightsArea: HighlightsAreaMargins{
			Top:                         "0.10 cm",
			Left:                        "0.4 cm",
			VerticalBetweenBulletPoints: "0.10 cm",
		},
		Header: HeaderMargins{
			VerticalBetweenNameAndConnections: "0.2 cm",
			Bottom:                            "0.2 cm",
			HorizontalBetweenConnections:      "0.5 cm",
		},
	}
}

// Options is the shared surface of the full-featured built-in themes.
type Options struct {
	Theme                string  `json:"theme"`
	FontSize             string  `json:"font_size"`
	PageSize             string  `json:"page_size"`
	Color                string  `json:"color"`
	DisablePageNumbering bool    `json:"disable_page_numbering"`
	PageNumberingStyle   string  `json:"page_numbering_style"`
	ShowLastUpdatedDate  bool    `json:"show_last_updated_date"`
	HeaderFontSize       string  `json:"header_font_size"`
	TextAlignment        string  `json:"text_alignment"`
	Margins              Margins `json:"margins"`
}

func (o *Options) ThemeName() string { return o.Theme }

func defaultOptions(theme string) Options {
	return Options{
		Theme:               theme,
		FontSize:            "10pt",
		PageSize:            "letterpaper",
		Color:               "rgb(0,79,144)",
		PageNumberingStyle:  "NAME -- Page PAGE_NUMBER of TOTAL_PAGES",
		ShowLastUpdatedDate: true,
		HeaderFontSize:      "30 pt",
		TextAlignment:       "justified",
		Margins:             defaultMargins(),
	}
}

// CustomThemeOptions is the configuration of a filesystem-defined theme.
// Extension holds whatever the theme's plugin constructor produced; it is nil
// when the theme directory carries no plugin, leaving only the theme name.
type CustomThemeOptions struct {
	Theme     string `json:"theme"`
	Extension any    `json:"-"`
}

func (o *CustomThemeOptions) ThemeName() string { return o.Theme }
