// Package catalog models the PatternFly icon catalog as structured records.
//
// The upstream catalog is an ordered collection of icon records, possibly
// nested inside further ordered collections. Nesting carries no meaning
// beyond grouping; emission order is the depth-first, left-to-right order of
// the leaves.
package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uzytkownik/patternfly-icongen/errors"
	"gopkg.in/yaml.v3"
)

// Record is one icon entry from the upstream catalog.
//
// Field names mirror the upstream catalog keys. A record without a Name is a
// structural placeholder and produces no output.
type Record struct {
	// Name is the upstream icon identifier, e.g. "wrench". Empty marks a
	// placeholder record.
	Name string `json:"Name" yaml:"Name"`

	// ReactName is the deduplication key and the base for the generated
	// variant identifier, e.g. "WrenchIcon".
	ReactName string `json:"ReactName" yaml:"ReactName"`

	// Style is the icon family tag: "fas", "fab", "far", "pf-icon" or empty.
	Style string `json:"Style" yaml:"Style"`

	// ContextualUsage is the human-readable documentation for the variant.
	ContextualUsage string `json:"ContextualUsage" yaml:"ContextualUsage"`
}

// Entry is one node of the catalog tree: either a leaf record or an ordered
// group of child entries.
type Entry struct {
	Record *Record
	Group  []Entry
}

// UnmarshalJSON decodes an entry from either a JSON object (record) or a
// JSON array (group).
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &e.Group)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	e.Record = &rec
	return nil
}

// UnmarshalYAML decodes an entry from either a YAML mapping (record) or a
// YAML sequence (group).
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&e.Group)
	case yaml.MappingNode:
		var rec Record
		if err := value.Decode(&rec); err != nil {
			return err
		}
		e.Record = &rec
		return nil
	default:
		return errors.Newf("catalog entry must be a mapping or a sequence (line %d)", value.Line)
	}
}

// Flatten returns the leaf records of the catalog tree in depth-first,
// left-to-right order. This order determines emission order downstream.
func Flatten(entries []Entry) []Record {
	var records []Record
	for _, e := range entries {
		if e.Record != nil {
			records = append(records, *e.Record)
			continue
		}
		records = append(records, Flatten(e.Group)...)
	}
	return records
}

// Load reads a catalog file and decodes it into the entry tree.
//
// The format is chosen by extension: .yaml/.yml decode as YAML, everything
// else as JSON (the upstream catalog ships as JSON). Path "-" reads stdin.
func Load(path string) ([]Entry, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read catalog from stdin")
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
		}
	}

	entries, err := Parse(data, isYAMLPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", path)
	}
	return entries, nil
}

// Parse decodes raw catalog bytes into the entry tree.
func Parse(data []byte, asYAML bool) ([]Entry, error) {
	var entries []Entry
	if asYAML {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	}

	if len(entries) == 0 {
		return nil, errors.ErrEmptyCatalog
	}
	return entries, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
