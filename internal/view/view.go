// Package view holds the embedded HTML templates and the data every page
// is rendered with.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/docbot/web/internal/markdown"
	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	// ScrollThreshold is the scroll offset in px past which the navbar
	// switches to its scrolled style.
	ScrollThreshold = 50

	// ToastDuration is how long a notice stays on screen, in ms.
	ToastDuration = 4000
)

type NavItem struct {
	Path   string
	Label  string
	Active bool
}

var navItems = []NavItem{
	{Path: "/", Label: "Home"},
	{Path: "/symptoms", Label: "Symptom Analyzer"},
	{Path: "/chat", Label: "AI Chat"},
	{Path: "/medical-info", Label: "Medical Info"},
	{Path: "/about", Label: "About"},
}

// Nav returns the navbar items with the one matching path marked active.
func Nav(path string) []NavItem {
	items := make([]NavItem, len(navItems))
	copy(items, navItems)
	for i := range items {
		items[i].Active = items[i].Path == path
	}
	return items
}

// Page is the root value passed to every template.
type Page struct {
	Title           string
	Path            string
	Nav             []NavItem
	Notices         []model.Notice
	Loading         bool
	ScrollThreshold int
	ToastDuration   int
	Data            any
}

func NewPage(path, title string, notices []model.Notice, data any) Page {
	return Page{
		Title:           title,
		Path:            path,
		Nav:             Nav(path),
		Notices:         notices,
		ScrollThreshold: ScrollThreshold,
		ToastDuration:   ToastDuration,
		Data:            data,
	}
}

// Funcs is the template FuncMap.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown":         markdown.Render,
		"urgencyColor":     service.UrgencyColor,
		"probabilityColor": service.ProbabilityColor,
		"upper":            strings.ToUpper,
		"title":            titleCase,
		"clock": func(t time.Time) string {
			return t.Format("15:04")
		},
	}
}

// Load parses all embedded templates into one set, ready for
// gin's SetHTMLTemplate.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static serves the stylesheet under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
