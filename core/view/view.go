// Package view renders pipeline results for the terminal.
package view

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/josephlewis42/rush/core/value"
)

// Options control how values are rendered.
type Options struct {
	// Color enables a bold table header.
	Color bool
	// Location is used to format times, defaults to UTC.
	Location *time.Location
}

// Render converts a value into the lines that should be displayed.
//
// Lists whose first element is an object are shown as a table with one column
// per field of the first element. Lists of anything else show one element per
// line. A bare object is shown as field/value pairs. Primitives and empty
// lists produce no output.
func Render(v value.Value, opts Options) []string {
	switch v := v.(type) {
	case value.List:
		if len(v) == 0 {
			return nil
		}
		if first, ok := v[0].(*value.Object); ok {
			return renderTable(first, v, opts)
		}
		out := make([]string, len(v))
		for i, elem := range v {
			out[i] = value.Format(elem, opts.Location)
		}
		return out

	case *value.Object:
		var rows [][]string
		for _, desc := range v.DataDescriptors() {
			rows = append(rows, []string{desc.Name, value.Format(v.GetData(desc), opts.Location)})
		}
		return align(rows)

	default:
		return nil
	}
}

// Fprint renders a value and writes it to w.
func Fprint(w io.Writer, v value.Value, opts Options) error {
	for _, line := range Render(v, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(first *value.Object, list value.List, opts Options) []string {
	descs := first.DataDescriptors()

	header := make([]string, len(descs))
	for i, desc := range descs {
		header[i] = desc.Name
	}

	rows := [][]string{header}
	for _, elem := range list {
		row := make([]string, len(descs))
		if obj, ok := elem.(*value.Object); ok {
			for i, desc := range descs {
				row[i] = value.Format(obj.GetDataFromKey(desc.Name), opts.Location)
			}
		} else if len(row) > 0 {
			row[0] = value.Format(elem, opts.Location)
		}
		rows = append(rows, row)
	}

	lines := align(rows)
	if opts.Color && len(lines) > 0 {
		bold := color.New(color.Bold)
		bold.EnableColor()
		lines[0] = bold.Sprint(lines[0])
	}
	return lines
}

// cellEscaper keeps a cell on one line inside one column.
var cellEscaper = strings.NewReplacer(
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\v", `\v`,
	"\f", `\f`,
)

// align lays out rows in columns separated by at least two spaces.
func align(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellEscaper.Replace(cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
