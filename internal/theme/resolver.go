package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"go.uber.org/zap"

	"cvkit/internal/model"
)

// templateSuffix is the extension every template file of a custom theme
// directory must carry.
const templateSuffix = ".j2.tex"

// structuralTemplates are the non-entry template files a custom theme must
// provide, checked in this order before the per-entry-type templates.
var structuralTemplates = []string{"SectionBeginning", "SectionEnding", "Preamble", "Header"}

// Provider produces a design configuration from the raw design mapping. Hosts
// register providers to serve theme names without any filesystem discovery.
type Provider interface {
	Options(design map[string]any) (model.Design, error)
}

// Registry maps theme names to host-controlled providers. The resolver
// consults it before falling back to the filesystem custom-theme path.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

func (r *Registry) Register(name string, p Provider) {
	r.providers[name] = p
}

func (r *Registry) lookup(name string) (Provider, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.providers[name]
	return p, ok
}

// Resolver resolves the raw `design` input of a render request into a typed
// design configuration.
type Resolver struct {
	registry *Registry
	root     string
	log      *zap.Logger
}

// NewResolver returns a resolver that looks custom themes up under root
// (the working context of the input file). A nil registry and logger are
// fine; they default to empty and no-op.
func NewResolver(registry *Registry, root string, log *zap.Logger) *Resolver {
	if root == "" {
		root = "."
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{registry: registry, root: root, log: log}
}

// Resolve dispatches the raw design input:
//   - an already-typed design passes through unchanged,
//   - a mapping with a built-in theme name validates against that theme's
//     schema and decodes onto the theme's defaults,
//   - any other alphabetic theme name goes to a registered provider, or to
//     the custom theme directory of the same name,
//   - nil falls back to the default classic design.
//
// The filesystem path loads and runs code discovered under a user-controlled
// directory; that trust boundary is deliberate and not sandboxed here.
func (r *Resolver) Resolve(design any) (model.Design, error) {
	if design == nil {
		return DefaultClassicThemeOptions(), nil
	}
	if typed, ok := design.(model.Design); ok {
		return typed, nil
	}
	m, ok := design.(map[string]any)
	if !ok {
		return nil, model.NewFieldError(model.ErrInvalidThemeName, "design", "",
			"the design should be a mapping with a theme field")
	}
	themeName, ok := m["theme"].(string)
	if !ok || themeName == "" {
		return nil, model.NewFieldError(model.ErrInvalidThemeName, "theme", "",
			"the theme field is required and should be a string")
	}

	for _, builtIn := range BuiltInThemes() {
		if themeName == builtIn {
			return r.resolveBuiltIn(themeName, m)
		}
	}

	if !isAlphabetic(themeName) {
		return nil, model.NewFieldError(model.ErrInvalidThemeName, "theme", themeName,
			"the custom theme name should contain only letters")
	}

	if p, ok := r.registry.lookup(themeName); ok {
		r.log.Debug("design resolved by registered provider", zap.String("theme", themeName))
		return p.Options(m)
	}

	return r.resolveCustom(themeName, m)
}

func (r *Resolver) resolveBuiltIn(themeName string, m map[string]any) (model.Design, error) {
	defName := titleCase(themeName) + "ThemeOptions"
	if errs := model.ValidateAgainstDefs(Definitions(), defName, m); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Unmarshal onto the defaulted struct so absent fields keep defaults.
	var design model.Design
	switch themeName {
	case "classic":
		opts := DefaultClassicThemeOptions()
		err = json.Unmarshal(data, opts)
		design = opts
	case "moderncv":
		opts := DefaultModerncvThemeOptions()
		err = json.Unmarshal(data, opts)
		design = opts
	case "sb2nov":
		opts := DefaultSb2novThemeOptions()
		err = json.Unmarshal(data, opts)
		design = opts
	}
	if err != nil {
		return nil, err
	}
	return design, nil
}

func (r *Resolver) resolveCustom(themeName string, m map[string]any) (model.Design, error) {
	dir := filepath.Join(r.root, themeName)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, model.NewFieldError(model.ErrCustomThemeNotFound, "", themeName,
			fmt.Sprintf("the custom theme folder `%s` does not exist. It should be in the working directory as the input file", themeName))
	}

	required := append(append([]string{}, structuralTemplates...), model.EntryTypeNames()...)
	for _, name := range required {
		file := name + templateSuffix
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			return nil, model.NewFieldError(model.ErrMissingThemeFile, "", file,
				fmt.Sprintf("you provided a custom theme, but the file `%s` is not found in the folder `%s`", file, themeName))
		}
	}

	extension, found, err := loadExtension(dir, themeName, m)
	if err != nil {
		return nil, err
	}
	if !found {
		r.log.Debug("custom theme has no extension module", zap.String("theme", themeName))
		return &CustomThemeOptions{Theme: themeName}, nil
	}
	r.log.Debug("custom theme extension loaded", zap.String("theme", themeName))
	return &CustomThemeOptions{Theme: themeName, Extension: extension}, nil
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// titleCase upper-cases the first rune and lower-cases the rest. Theme names
// are alphabetic-only, so this matches conventional title-casing of a single
// word.
func titleCase(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	out = append(out, unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
