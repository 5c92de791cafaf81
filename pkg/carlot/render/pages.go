package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page names.
const (
	PageHome    = "home"
	PageCars    = "cars"
	PageCar     = "car"
	PageContact = "contact"
	PageFAQ     = "faq"
	PageError   = "error"
)

var pageNames = []string{PageHome, PageCars, PageCar, PageContact, PageFAQ, PageError}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

var gridTemplate = template.Must(
	template.New("grid").Funcs(funcs).ParseFS(templateFS, "templates/grid.tmpl"),
)

// NavLink is one entry of the site navigation.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

var navigation = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Cars", Href: "/cars"},
	{Label: "FAQ", Href: "/faq"},
	{Label: "Contact", Href: "/contact"},
}

// Nav returns the navigation with the link of path marked active.
func Nav(path string) []NavLink {
	if path == "" {
		path = "/"
	}
	links := make([]NavLink, len(navigation))
	for i, l := range navigation {
		l.Active = path == l.Href || (l.Href != "/" && strings.HasPrefix(path, l.Href+"/"))
		links[i] = l
	}
	return links
}

// Page is the data every page template receives.
type Page struct {
	Title   string
	Nav     []NavLink
	Content interface{}
}

// Pages renders full site pages.
type Pages struct {
	pages map[string]*template.Template
}

// NewPages parses the embedded layout and page templates.
func NewPages() (*Pages, error) {
	p := &Pages{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.tmpl",
			"templates/grid.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.pages[name] = t
	}
	return p, nil
}

// Render writes page name for the request path.
func (p *Pages) Render(w io.Writer, name, path, title string, content interface{}) error {
	t, ok := p.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", Page{
		Title:   title,
		Nav:     Nav(path),
		Content: content,
	})
}
