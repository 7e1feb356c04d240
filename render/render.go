// Package render writes a published order of manifest entries in one of the
// supported output formats.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvtopo/manifest"
)

// Format names an output encoding.
type Format string

// Output formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formats lists the accepted format names, in help-text order.
var Formats = []Format{FormatText, FormatJSON, FormatTable}

// ErrUnknownFormat is returned for a format name outside Formats.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownFormat, name, Formats)
}

// Write renders entries to w in format f.
//
//   - text:  one entry name per line.
//   - json:  {"order": [...]} with every entry's declaration, indented.
//   - table: a numbered table of names, groups, constraints and ranks.
func Write(w io.Writer, f Format, entries []manifest.Entry) error {
	switch f {
	case FormatText:
		return writeText(w, entries)
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatTable:
		return writeTable(w, entries)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

func writeText(w io.Writer, entries []manifest.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// orderDocument is the JSON shape of a published order.
type orderDocument struct {
	Order []manifest.Entry `json:"order"`
}

func writeJSON(w io.Writer, entries []manifest.Entry) error {
	doc := orderDocument{Order: entries}
	if doc.Order == nil {
		doc.Order = []manifest.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(doc)
}

func writeTable(w io.Writer, entries []manifest.Entry) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "NAME", "GROUP", "BEFORE", "AFTER", "SORT"})
	for i, e := range entries {
		t.AppendRow(table.Row{
			i + 1,
			e.Name,
			orDash(e.Group),
			orDash(strings.Join(e.Before, ", ")),
			orDash(strings.Join(e.After, ", ")),
			rankCell(e.Sort),
		})
	}
	_, err := io.WriteString(w, t.Render()+"\n")

	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func rankCell(rank *float64) string {
	if rank == nil {
		return "-"
	}

	return fmt.Sprintf("%g", *rank)
}
