// Package report renders a summary of the axes of a chart part.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/dml"
	"github.com/wudi/chartkit/oxml"
)

// Row is the summary of one axis.
type Row struct {
	Index         int
	Kind          string
	Visible       bool
	Minimum       string
	Maximum       string
	Reversed      bool
	MajorTickMark string
	MinorTickMark string
	Gridlines     string
	LabelPosition string
	NumberFormat  string
	LineColor     string
}

// Options tunes the summary. A nil Theme resolves scheme colors against
// dml.DefaultTheme.
type Options struct {
	Title string
	Theme dml.Theme
}

// Summarize builds one row per axis in document order.
func Summarize(c *chart.Chart, opts Options) []Row {
	axes := c.Axes()
	rows := make([]Row, 0, len(axes))
	for i, a := range axes {
		rows = append(rows, Row{
			Index:         i + 1,
			Kind:          string(a.Kind()),
			Visible:       a.Visible(),
			Minimum:       bound(a.MinimumScale()),
			Maximum:       bound(a.MaximumScale()),
			Reversed:      a.ReverseOrder(),
			MajorTickMark: a.MajorTickMark().String(),
			MinorTickMark: a.MinorTickMark().String(),
			Gridlines:     gridlines(a),
			LabelPosition: a.TickLabelPosition().String(),
			NumberFormat:  a.TickLabels().NumberFormat(),
			LineColor:     lineColor(a, opts.Theme),
		})
	}
	return rows
}

// Markdown renders the summary as a GFM table under a heading.
func Markdown(c *chart.Chart, opts Options) string {
	var b strings.Builder
	title := opts.Title
	if title == "" {
		title = "Chart axes"
	}
	fmt.Fprintf(&b, "# %s\n\n", escape(title))

	rows := Summarize(c, opts)
	if len(rows) == 0 {
		b.WriteString("No axes.\n")
		return b.String()
	}
	b.WriteString("| # | kind | visible | min | max | reversed | major ticks | minor ticks | gridlines | labels | format | line |\n")
	b.WriteString("|---|------|---------|-----|-----|----------|-------------|-------------|-----------|--------|--------|------|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | `%s` | %s |\n",
			r.Index, r.Kind, yesNo(r.Visible), r.Minimum, r.Maximum, yesNo(r.Reversed),
			r.MajorTickMark, r.MinorTickMark, r.Gridlines, r.LabelPosition,
			escape(r.NumberFormat), r.LineColor)
	}
	return b.String()
}

// HTML renders the Markdown summary to HTML.
func HTML(c *chart.Chart, opts Options) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(c, opts)), &buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func bound(v float64, ok bool) string {
	if !ok {
		return "auto"
	}
	return oxml.FormatFloat(v)
}

func gridlines(a *chart.Axis) string {
	switch major, minor := a.HasMajorGridlines(), a.HasMinorGridlines(); {
	case major && minor:
		return "major+minor"
	case major:
		return "major"
	case minor:
		return "minor"
	}
	return "none"
}

func lineColor(a *chart.Axis, theme dml.Theme) string {
	fill := a.LineFill()
	if fill == nil {
		return "auto"
	}
	c := fill.Color()
	if c == nil {
		return "auto"
	}
	rgb, err := dml.Resolve(c, theme)
	if err != nil {
		return "?"
	}
	return "#" + rgb.Hex()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var escaper = strings.NewReplacer("|", `\|`, "`", "'")

func escape(s string) string {
	return escaper.Replace(s)
}
