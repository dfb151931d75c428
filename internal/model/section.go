package model

import (
	"encoding/json"
	"fmt"
)

// Section is a named, homogeneous ordered list of entries of one inferred
// entry type. Every element of Entries matches EntryType.
type Section struct {
	Title     string
	EntryType string
	Entries   []Entry
}

// classifyEntry determines the entry type tag of a single raw element.
// Strings are text entries, already-typed entries keep their own tag, and raw
// maps classify against the variants in their fixed declaration order: the
// first variant whose characteristic fields intersect the map's keys wins.
// No further disambiguation happens when a map carries fields of two
// variants.
func classifyEntry(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return "TextEntry", true
	case Entry:
		return v.entryTypeName(), true
	case map[string]any:
		for _, variant := range entryVariants {
			for _, field := range variant.characteristic {
				if _, ok := v[field]; ok {
					return variant.name, true
				}
			}
		}
	}
	return "", false
}

// ResolveSection infers the entry type of a raw entry list and validates the
// whole list against it. The first classifiable element decides the type for
// the entire section; after that there is no per-element fallback. When no
// element classifies at all, the section is unresolvable.
func ResolveSection(title string, raw []any) (*Section, error) {
	entryType := ""
	for _, element := range raw {
		if tag, ok := classifyEntry(element); ok {
			entryType = tag
			break
		}
	}
	if entryType == "" {
		return nil, newFieldError(ErrUnresolvableSection, "", "",
			"cvkit couldn't match this section with any entry type! Please check the entries and make sure they are provided correctly")
	}

	section := &Section{Title: title, EntryType: entryType, Entries: make([]Entry, 0, len(raw))}
	var errs []error
	for i, element := range raw {
		entry, entryErrs := buildEntry(entryType, element)
		if len(entryErrs) > 0 {
			for _, err := range entryErrs {
				errs = append(errs, prefixEntryError(i, err))
			}
			continue
		}
		section.Entries = append(section.Entries, entry)
	}
	if len(errs) > 0 {
		return nil, &SectionError{EntryType: entryType, Errs: errs}
	}
	return section, nil
}

// buildEntry validates one raw element against the inferred entry type and
// returns its typed form.
func buildEntry(entryType string, raw any) (Entry, []error) {
	if entryType == "TextEntry" {
		switch v := raw.(type) {
		case string:
			return TextEntry(v), nil
		case TextEntry:
			return v, nil
		default:
			return nil, []error{newFieldError(ErrInvalidField, "", "",
				fmt.Sprintf("expected a text entry (a plain string), got %T", raw))}
		}
	}

	if typed, ok := raw.(Entry); ok {
		if typed.entryTypeName() != entryType {
			return nil, []error{newFieldError(ErrInvalidField, "", "",
				fmt.Sprintf("expected a %s, got a %s", entryType, typed.entryTypeName()))}
		}
		if v, ok := typed.(validator); ok {
			if err := v.validate(); err != nil {
				return nil, []error{err}
			}
		}
		return typed, nil
	}

	variant, ok := variantByName(entryType)
	if !ok {
		return nil, []error{newFieldError(ErrInvalidField, "", entryType, "unknown entry type")}
	}
	if errs := validateAgainstDefs(EntryDefinitions(), entryType, raw); len(errs) > 0 {
		return nil, errs
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, []error{err}
	}
	entry, err := variant.decode(data)
	if err != nil {
		return nil, []error{err}
	}
	if v, ok := entry.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, []error{err}
		}
	}
	return entry, nil
}

func variantByName(name string) (variantSpec, bool) {
	for _, v := range entryVariants {
		if v.name == name {
			return v, true
		}
	}
	return variantSpec{}, false
}

// prefixEntryError anchors a field error to its position in the entry list.
func prefixEntryError(index int, err error) error {
	fe, ok := err.(*FieldError)
	if !ok {
		return fmt.Errorf("entries[%d]: %w", index, err)
	}
	path := fmt.Sprintf("entries[%d]", index)
	if fe.Path != "" {
		path += "." + fe.Path
	}
	return &FieldError{Kind: fe.Kind, Path: path, Value: fe.Value, Message: fe.Message}
}
