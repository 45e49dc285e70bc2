// Package plot renders traces as standalone HTML reports built from
// go-echarts charts: sampled bar frames, a sortedness curve, and step
// counts across algorithms.
package plot

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"
)

// DefaultAssetsHost serves echarts.min.js.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

const styleTagLen = len("</style>")

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates     *template.Template
	templatesOnce sync.Once
	errTemplates  error
)

func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error

		templates, parseErr = template.ParseFS(templateFS, "templates/*.html")
		if parseErr != nil {
			errTemplates = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})

	return templates, errTemplates
}

// Hint contains interpretive guidance for a chart section.
type Hint struct {
	Title string
	Items []string
}

// Renderable is the interface for chart components.
type Renderable interface {
	Render(w io.Writer) error
}

// Section is one chart with its heading.
type Section struct {
	Title    string
	Subtitle string
	Hint     Hint
	Chart    Renderable
}

// Page is a complete report.
type Page struct {
	Title       string
	Description string
	ProjectName string
	AssetsHost  string
	Theme       Theme
	Sections    []Section
}

// NewPage creates a report page.
func NewPage(title, description string) *Page {
	return &Page{
		Title:       title,
		Description: description,
		ProjectName: "sortviz",
		AssetsHost:  DefaultAssetsHost,
		Theme:       ThemeDark,
	}
}

// WithTheme sets the theme for the page.
func (p *Page) WithTheme(theme Theme) *Page {
	p.Theme = theme

	return p
}

// Add appends sections to the page.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

type sectionData struct {
	Title    string
	Subtitle string
	Chart    template.HTML
	Hint     *Hint
}

type pageData struct {
	Title       string
	Description string
	ProjectName string
	AssetsHost  string
	Theme       ThemeConfig
	Sections    []sectionData
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	tmpl, err := getTemplates()
	if err != nil {
		return err
	}

	data := pageData{
		Title:       p.Title,
		Description: p.Description,
		ProjectName: p.ProjectName,
		AssetsHost:  p.AssetsHost,
		Theme:       GetThemeConfig(p.Theme),
		Sections:    make([]sectionData, 0, len(p.Sections)),
	}

	for _, section := range p.Sections {
		chartHTML, chartErr := renderChart(section.Chart)
		if chartErr != nil {
			return fmt.Errorf("render section %q: %w", section.Title, chartErr)
		}

		sd := sectionData{
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Chart:    template.HTML(chartHTML), //nolint:gosec // echarts output, not user input
		}

		if len(section.Hint.Items) > 0 {
			hint := section.Hint
			sd.Hint = &hint
		}

		data.Sections = append(data.Sections, sd)
	}

	var buf bytes.Buffer

	err = tmpl.ExecuteTemplate(&buf, "page.html", data)
	if err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

func renderChart(chart Renderable) (string, error) {
	if chart == nil {
		return "", nil
	}

	var buf bytes.Buffer

	err := chart.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return extractChartContent(buf.String()), nil
}

// extractChartContent keeps the chart div and script of a full echarts page.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="echart-box"`)

	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			return content
		}

		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			return content
		}

		content = content[:i] + content[i+j+styleTagLen:]
	}
}
