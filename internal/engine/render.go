package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a ListView is written by RenderView.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ErrUnsupportedFormat is returned for output formats other than table, json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// unknownArea is shown for records without an area.
const unknownArea = "n/a"

// printer formats areas with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// ParseOutputFormat validates s as an output format. The empty string selects OutputTable.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputTable, nil
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// FormatArea renders an area in square kilometers with thousand separators,
// keeping a fractional part only when the value has one.
func FormatArea(area float64, known bool) string {
	if !known {
		return unknownArea
	}
	if area == float64(int64(area)) {
		return printer.Sprintf("%d", int64(area))
	}
	return printer.Sprintf("%.1f", area)
}

// RenderView writes view to w in the requested format.
func RenderView(w io.Writer, format OutputFormat, view ListView) error {
	switch format {
	case OutputTable:
		return renderViewAsTable(w, view)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(view); err != nil {
			_ = enc.Close()
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func renderViewAsTable(w io.Writer, view ListView) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "NAME\tREGION\tAREA (KM²)\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t----------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, r := range view.Rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Region, FormatArea(r.Area, r.HasArea)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+Footer(view))
	return err
}

// Footer summarizes the active page, filter and sort in one line.
func Footer(view ListView) string {
	var sb strings.Builder
	meta := view.Meta
	if meta.TotalPages == 0 {
		sb.WriteString("No countries match")
	} else {
		sb.WriteString("Page " + strconv.Itoa(meta.CurrentPage) + " of " + strconv.Itoa(meta.TotalPages))
		sb.WriteString(" (" + strconv.Itoa(meta.TotalItems) + " countries)")
	}
	sb.WriteString("  Region: " + view.Region.Label())
	sb.WriteString("  Sort: " + view.Sort.Label())
	if meta.IsOutOfRange() {
		sb.WriteString("  [page past the last page]")
	}
	return sb.String()
}
