package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/extensions"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/oxml"
	"github.com/wudi/chartkit/oxml/cxml"
	"github.com/wudi/chartkit/preset"
	"github.com/wudi/chartkit/report"
	"github.com/wudi/chartkit/scripting"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Write the modified chart part to `FILE` (default stdout)",
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "Print a summary of the chart axes",
	ArgsUsage: "<chart.xml>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "html", Usage: "Render the summary as HTML"},
		&cli.BoolFlag{Name: "preset", Usage: "Print the axis styles as a YAML preset instead"},
		&cli.StringFlag{Name: "title", Usage: "Report heading (default: file name)"},
	},
	Action: runInspect,
}

var cmdApply = &cli.Command{
	Name:      "apply",
	Usage:     "Apply YAML presets, then scripts, to a chart part",
	ArgsUsage: "<chart.xml>",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "preset", Aliases: []string{"p"}, Usage: "YAML preset `FILE` (repeatable)"},
		&cli.StringSliceFlag{Name: "script", Aliases: []string{"s"}, Usage: "JavaScript `FILE` run after presets (repeatable)"},
		&cli.BoolFlag{Name: "report", Usage: "Print the axis summary to stderr afterwards"},
		outputFlag,
	},
	Action: runApply,
}

var cmdScript = &cli.Command{
	Name:      "script",
	Usage:     "Run a JavaScript file against a chart part",
	ArgsUsage: "<chart.xml>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "JavaScript `FILE`", Required: true},
		outputFlag,
	},
	Action: runScript,
}

var cmdFixture = &cli.Command{
	Name:      "fixture",
	Usage:     "Print the XML for a compact element expression",
	ArgsUsage: "<expr>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "indent", Usage: "Indent with `N` spaces and add an XML declaration"},
	},
	Action: runFixture,
}

func runInspect(c *cli.Context) error {
	path, err := singleArg(c, "chart part")
	if err != nil {
		return err
	}
	ch, err := loadChart(c, path)
	if err != nil {
		return err
	}

	if c.Bool("preset") {
		p, err := preset.Capture(ch)
		if err != nil {
			return err
		}
		p.Name = filepath.Base(path)
		return p.Encode(c.App.Writer)
	}

	title := c.String("title")
	if title == "" {
		title = filepath.Base(path)
	}
	ext := extensions.NewReportWriter(c.App.Writer, report.Options{Title: title}, c.Bool("html"))
	return ext.Execute(c.Context, ch)
}

func runApply(c *cli.Context) error {
	ctx, cancel := installSignals()
	defer cancel()

	path, err := singleArg(c, "chart part")
	if err != nil {
		return err
	}
	presets, scripts := c.StringSlice("preset"), c.StringSlice("script")
	if len(presets) == 0 && len(scripts) == 0 {
		return fmt.Errorf("nothing to apply: pass --preset or --script")
	}
	logger := loggerFrom(c)
	ch, err := loadChart(c, path)
	if err != nil {
		return err
	}

	hub := extensions.NewHub(logger)
	for _, pp := range presets {
		p, err := preset.LoadFile(pp)
		if err != nil {
			return err
		}
		if err := hub.Register(extensions.NewPresetApplier(p, preset.Config{Logger: logger})); err != nil {
			return err
		}
	}
	if len(scripts) > 0 {
		runner, err := scriptRunner(logger, scripts...)
		if err != nil {
			return err
		}
		if err := hub.Register(runner); err != nil {
			return err
		}
	}
	if c.Bool("report") {
		if err := hub.Register(extensions.NewReportWriter(c.App.ErrWriter, report.Options{Title: filepath.Base(path)}, false)); err != nil {
			return err
		}
	}

	if err := hub.Execute(ctx, ch); err != nil {
		return err
	}
	return writeChart(c, ch)
}

func runScript(c *cli.Context) error {
	ctx, cancel := installSignals()
	defer cancel()

	path, err := singleArg(c, "chart part")
	if err != nil {
		return err
	}
	logger := loggerFrom(c)
	ch, err := loadChart(c, path)
	if err != nil {
		return err
	}
	runner, err := scriptRunner(logger, c.String("file"))
	if err != nil {
		return err
	}
	if err := runner.Execute(ctx, ch); err != nil {
		return err
	}
	return writeChart(c, ch)
}

func runFixture(c *cli.Context) error {
	expr, err := singleArg(c, "expression")
	if err != nil {
		return err
	}
	if indent := c.Int("indent"); indent > 0 {
		el, err := cxml.Element(expr)
		if err != nil {
			return err
		}
		out, err := oxml.Bytes(el, indent)
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(append(out, '\n'))
		return err
	}
	if _, err := cxml.Element(expr); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, cxml.XML(expr))
	return err
}

func singleArg(c *cli.Context, what string) (string, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		return "", fmt.Errorf("missing %s argument", what)
	} else if len(args) != 1 {
		return "", fmt.Errorf("expected a single %s, got %d arguments", what, len(args))
	}
	return args[0], nil
}

func scriptRunner(logger observability.Logger, paths ...string) (*extensions.JavaScriptRunner, error) {
	scripts := make([]extensions.Script, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, extensions.Script{Name: filepath.Base(p), Source: string(src)})
	}
	engine := scripting.NewEngine(scripting.Config{Logger: logger})
	return extensions.NewJavaScriptRunner(engine, logger, scripts...), nil
}

// loadChart reads a chart part from path, or from stdin when path is "-".
func loadChart(c *cli.Context, path string) (*chart.Chart, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	ch, err := chart.ParseChart(data, oxml.ParseConfig{Logger: loggerFrom(c)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ch, nil
}

func writeChart(c *cli.Context, ch *chart.Chart) error {
	out, err := ch.Bytes()
	if err != nil {
		return err
	}
	if path := c.String("output"); path != "" {
		return os.WriteFile(path, out, 0o644)
	}
	_, err = c.App.Writer.Write(out)
	return err
}
