package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cvkit/internal/schema"
	"cvkit/internal/theme"
	"cvkit/internal/usecase"
	"cvkit/pkg/input"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch os.Args[1] {
	case "validate":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		if err := validate(os.Args[2], log); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[2], err)
			os.Exit(1)
		}
	case "schema":
		out := "schema.json"
		if len(os.Args) == 3 {
			out = os.Args[2]
		}
		if err := writeSchema(out); err != nil {
			fmt.Fprintf(os.Stderr, "writing schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", out)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cvkit validate <input.yaml> | cvkit schema [out.json]")
}

// validate runs the full pipeline over one input file. Custom themes are
// looked up next to the input file.
func validate(path string, log *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	raw, err := input.Decode(data)
	if err != nil {
		return err
	}

	resolver := theme.NewResolver(nil, filepath.Dir(path), log)
	request, err := usecase.NewProcessor(resolver, log).Process(raw)
	if err != nil {
		return err
	}

	fmt.Printf("%s: valid (theme %s)\n", request.CV.Name, request.Design.ThemeName())
	for _, section := range request.CV.Sections() {
		fmt.Printf("  %s: %d %s entries\n", section.Title, len(section.Entries), section.EntryType)
	}
	return nil
}

func writeSchema(out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return schema.WriteTo(f)
}
