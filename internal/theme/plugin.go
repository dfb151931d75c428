package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// pluginFile is the optional extension module of a custom theme directory.
// The file must declare `package main` and export a constructor named after
// the theme:
//
//	func MythemeThemeOptions(design map[string]interface{}) (interface{}, error)
//
// The constructor receives the raw design mapping and returns the theme's
// configuration value; validating that mapping is entirely its business.
// The source is run through the yaegi interpreter with stdlib symbols only,
// not compiled or linked into the host.
const pluginFile = "theme.go"

// loadExtension interprets the theme's plugin file, if present, and calls its
// constructor with the raw design mapping. found is false when the directory
// has no plugin file.
func loadExtension(dir, themeName string, design map[string]any) (extension any, found bool, err error) {
	src, err := os.ReadFile(filepath.Join(dir, pluginFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, false, fmt.Errorf("custom theme %s: %w", themeName, err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, false, fmt.Errorf("custom theme %s: evaluating %s: %w", themeName, pluginFile, err)
	}

	symbol := "main." + titleCase(themeName) + "ThemeOptions"
	v, err := i.Eval(symbol)
	if err != nil {
		return nil, false, fmt.Errorf("custom theme %s: %s does not export %s: %w", themeName, pluginFile, symbol, err)
	}
	ctor, ok := v.Interface().(func(map[string]interface{}) (interface{}, error))
	if !ok {
		return nil, false, fmt.Errorf(
			"custom theme %s: %s has the wrong signature (want func(map[string]interface{}) (interface{}, error))",
			themeName, symbol)
	}

	extension, err = ctor(design)
	if err != nil {
		return nil, false, fmt.Errorf("custom theme %s: %w", themeName, err)
	}
	return extension, true, nil
}
