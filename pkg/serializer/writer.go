package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format represents the document format type
type Format string

const (
	// FormatJSON reads and writes JSON documents
	FormatJSON Format = "json"
	// FormatYAML reads and writes YAML documents
	FormatYAML Format = "yaml"
	// FormatTable writes aligned columns for values implementing Table
	FormatTable Format = "table"
	// FormatTOML reads TOML documents. It is read-only.
	FormatTOML Format = "toml"
)

// IsUnknown reports whether f is none of the known formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable, FormatTOML:
		return false
	default:
		return true
	}
}

// IsWritable reports whether a Writer can produce f.
func (f Format) IsWritable() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the writable formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Table is implemented by values that can be rendered as rows.
type Table interface {
	// Columns names the columns. Names are printed upper-cased.
	Columns() []string

	// Rows returns one cell per column for every row.
	Rows() [][]string
}

// Summarizer is implemented by tables that print closing lines below the rows.
type Summarizer interface {
	Summary() []string
}

// Writer serializes documents to an output in one format.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter creates a Writer for format. A nil output writes to stdout and a
// format that cannot be written falls back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if !format.IsWritable() {
		slog.Warn("unsupported output format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// Serialize writes v in the configured format. The context is accepted for
// the Serializer interface; writes are not cancelable.
func (w *Writer) Serialize(_ context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return enc.Close()
	case FormatTable:
		t, ok := v.(Table)
		if !ok {
			return fmt.Errorf("table format is not supported for %T", v)
		}
		return w.writeTable(t)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) writeTable(t Table) error {
	cols := t.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("table has no columns")
	}

	upper := cases.Upper(language.English)
	head := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		head[i] = upper.String(c)
		rule[i] = strings.Repeat("-", len(head[i]))
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(head, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	rows := t.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(tw, "<empty>")
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("table row %d has %d cells, expected %d", i, len(row), len(cols))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if s, ok := t.(Summarizer); ok {
		for _, line := range s.Summary() {
			if _, err := fmt.Fprintln(w.output, line); err != nil {
				return fmt.Errorf("failed to write table summary: %w", err)
			}
		}
	}
	return nil
}
