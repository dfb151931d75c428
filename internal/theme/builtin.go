package theme

// The built-in theme enumeration. The resolver dispatches on the `theme`
// discriminator to one of these option types.

// ClassicThemeOptions configures the classic theme.
type ClassicThemeOptions struct {
	Options
	ShowTimespanIn []string `json:"show_timespan_in"`
}

// ModerncvThemeOptions configures the moderncv theme.
type ModerncvThemeOptions struct {
	Theme         string `json:"theme"`
	FontSize      string `json:"font_size"`
	PageSize      string `json:"page_size"`
	Color         string `json:"color"`
	DateWidth     string `json:"date_width"`
	ShowOnlyYears bool   `json:"show_only_years"`
}

func (o *ModerncvThemeOptions) ThemeName() string { return o.Theme }

// Sb2novThemeOptions configures the sb2nov theme.
type Sb2novThemeOptions struct {
	Theme                         string `json:"theme"`
	FontSize                      string `json:"font_size"`
	PageSize                      string `json:"page_size"`
	LinkColor                     string `json:"link_color"`
	DateAndLocationWidth          string `json:"date_and_location_width"`
	SpaceBetweenConnectionObjects string `json:"space_between_connection_objects"`
}

func (o *Sb2novThemeOptions) ThemeName() string { return o.Theme }

// DefaultClassicThemeOptions returns the classic theme with its defaults.
// It is also the design a render request falls back to when no design is
// provided at all.
func DefaultClassicThemeOptions() *ClassicThemeOptions {
	return &ClassicThemeOptions{
		Options:        defaultOptions("classic"),
		ShowTimespanIn: []string{},
	}
}

// DefaultModerncvThemeOptions returns the moderncv theme with its defaults.
func DefaultModerncvThemeOptions() *ModerncvThemeOptions {
	return &ModerncvThemeOptions{
		Theme:     "moderncv",
		FontSize:  "10pt",
		PageSize:  "letterpaper",
		Color:     "blue",
		DateWidth: "3.8 cm",
	}
}

// DefaultSb2novThemeOptions returns the sb2nov theme with its defaults.
func DefaultSb2novThemeOptions() *Sb2novThemeOptions {
	return &Sb2novThemeOptions{
		Theme:                         "sb2nov",
		FontSize:                      "10pt",
		PageSize:                      "a4paper",
		LinkColor:                     "cyan",
		DateAndLocationWidth:          "4.1 cm",
		SpaceBetweenConnectionObjects: "0.5 cm",
	}
}

// BuiltInThemes lists the built-in theme names in discriminator order.
func BuiltInThemes() []string {
	return []string{"classic", "moderncv", "sb2nov"}
}
