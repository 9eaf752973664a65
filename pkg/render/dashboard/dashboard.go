// Package dashboard renders the static dashboard page.
//
// The page embeds the chart payload, the relationships payload and the
// tier palette as inline script state, declares the import map, and links
// every stylesheet and script through the asset manifest so only hashed
// URLs appear in the document.
package dashboard

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/matzehuels/datanate/pkg/assets"
	"github.com/matzehuels/datanate/pkg/influence"
	"github.com/matzehuels/datanate/pkg/layout"
	"github.com/matzehuels/datanate/pkg/render"
)

// NoValue is shown in place of a metric's latest value when it has no data.
const NoValue = "—"

//go:embed templates/dashboard.html.tmpl
var pageTemplate string

var baseTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"asset":     func(string) string { return "" },
	"importmap": func() template.HTML { return "" },
	"json":      toJSON,
	"tierColor": render.TierColor,
	"number":    FormatNumber,
	"latest":    FormatLatest,
}).Parse(pageTemplate))

// Page is everything the dashboard template consumes.
type Page struct {
	Title         string
	Layout        layout.Layout
	Metrics       map[string]layout.MetricData
	Relationships map[string]influence.Relationship
	Manifest      assets.Manifest
	ImportMap     assets.ImportMap

	// Stylesheets and Scripts are logical asset names, linked in order.
	// Names missing from the manifest are left out of the page.
	Stylesheets []string
	Scripts     []string

	// Diagram is the logical name of the influence diagram asset, if any.
	Diagram string

	// Favicon is the name of an unhashed static file at the output root.
	Favicon string
}

type view struct {
	Page
	TierColors []string
}

// Render writes the dashboard HTML for p to w. Equal pages render to equal
// bytes.
func Render(w io.Writer, p Page) error {
	tmpl, err := baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	importMap, err := p.ImportMap.JSON()
	if err != nil {
		return fmt.Errorf("encode import map: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"asset": p.Manifest.URL,
		"importmap": func() template.HTML {
			// json.Marshal escapes '<', so the payload cannot close the element.
			return template.HTML(`<script type="importmap">` + string(importMap) + `</script>`)
		},
	})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view{Page: p, TierColors: render.TierPalette}); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// FormatNumber formats v with thousands delimiters, dropping a zero
// fractional part: 1234567 -> "1,234,567", 1234.5 -> "1,234.5".
func FormatNumber(v float64) string {
	return humanize.Commaf(v)
}

// FormatLatest formats a summary's latest value, or NoValue when the
// metric has no data.
func FormatLatest(s layout.Summary) string {
	if s.LatestValue == nil {
		return NoValue
	}
	return FormatNumber(*s.LatestValue)
}

func toJSON(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
