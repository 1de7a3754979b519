package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart><c:plotArea><c:barChart/><c:catAx><c:axId val="1"/><c:delete val="1"/><c:crossAx val="2"/></c:catAx><c:valAx><c:axId val="2"/><c:scaling><c:max val="80"/></c:scaling><c:crossAx val="1"/></c:valAx></c:plotArea></c:chart></c:chartSpace>`

type runResult struct {
	Stdout string
	Stderr string
}

func runTestApp(stdin string, args ...string) (runResult, error) {
	outBuf := new(strings.Builder)
	errBuf := new(strings.Builder)
	app := newApp()
	app.Writer = outBuf
	app.ErrWriter = errBuf
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"chartkit"}, args...))
	return runResult{outBuf.String(), errBuf.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFixture(t *testing.T) {
	r, err := runTestApp("", "fixture", "c:valAx/c:delete{val=0}")
	require.NoError(t, err)
	assert.Equal(t,
		`<c:valAx xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:delete val="0"/></c:valAx>`+"\n",
		r.Stdout)

	r, err = runTestApp("", "fixture", "--indent", "2", "c:valAx/c:delete")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.Stdout, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	assert.Contains(t, r.Stdout, "\n  <c:delete/>\n")

	_, err = runTestApp("", "fixture", "c:valAx{val")
	assert.Error(t, err)

	_, err = runTestApp("", "fixture")
	assert.ErrorContains(t, err, "missing expression")
}

func TestInspect(t *testing.T) {
	path := writeFile(t, "chart1.xml", sampleChart)

	r, err := runTestApp("", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "# chart1.xml")
	assert.Contains(t, r.Stdout, "| 1 | category | no | auto | auto |")
	assert.Contains(t, r.Stdout, "| 2 | value | no | auto | 80 |")

	r, err = runTestApp("", "inspect", "--html", "--title", "Sales", path)
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "<h1>Sales</h1>")

	r, err = runTestApp("", "inspect", "--preset", path)
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "name: chart1.xml")
	assert.Contains(t, r.Stdout, "maximum_scale: 80")
}

func TestInspectStdin(t *testing.T) {
	r, err := runTestApp(sampleChart, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, r.Stdout, "| 2 | value |")
}

func TestInspectNotAChart(t *testing.T) {
	path := writeFile(t, "slide1.xml", `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	_, err := runTestApp("", "inspect", path)
	assert.ErrorContains(t, err, "want c:chartSpace")
}

func TestApply(t *testing.T) {
	path := writeFile(t, "chart1.xml", sampleChart)
	presetPath := writeFile(t, "style.yaml", "axes:\n  - visible: true\n  - kind: value\n    maximum_scale: auto\n")
	scriptPath := writeFile(t, "tweak.js", `axis("value").major_tick_mark = "out"; log("done");`)
	out := filepath.Join(t.TempDir(), "out.xml")

	r, err := runTestApp("", "apply", "--preset", presetPath, "--script", scriptPath, "--report", "-o", out, path)
	require.NoError(t, err)
	assert.Empty(t, r.Stdout)
	assert.Contains(t, r.Stderr, "| 2 | value | yes | auto | auto | no | out |")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<c:delete val="0"/>`)
	assert.Contains(t, string(data), `<c:majorTickMark val="out"/>`)
	assert.NotContains(t, string(data), `<c:max `)
}

func TestApplyErrors(t *testing.T) {
	path := writeFile(t, "chart1.xml", sampleChart)

	_, err := runTestApp("", "apply", path)
	assert.ErrorContains(t, err, "nothing to apply")

	bad := writeFile(t, "bad.yaml", "axes:\n  - colour: red\n")
	_, err = runTestApp("", "apply", "--preset", bad, path)
	assert.ErrorContains(t, err, "colour")

	script := writeFile(t, "bad.js", `axis("value").visible = "foobar";`)
	_, err = runTestApp("", "apply", "--script", script, path)
	assert.ErrorContains(t, err, "bad.js")
}

func TestScript(t *testing.T) {
	path := writeFile(t, "chart1.xml", sampleChart)
	script := writeFile(t, "show.js", `axes().forEach(function (a) { a.visible = true; });`)

	r, err := runTestApp("", "--log-level", "debug", "script", "--file", script, path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(r.Stdout, `<c:delete val="0"/>`))
	assert.Contains(t, r.Stderr, "script executed")
}
