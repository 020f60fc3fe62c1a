package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.tmpl
var FS embed.FS

//go:embed static
var staticFS embed.FS

// ---- Page names ----

const (
	Login        = "login"
	Dashboard    = "dashboard"
	Analysis     = "analysis"
	Admins       = "admins"
	Clinics      = "clinics"
	Gamification = "gamification"
	Resources    = "resources"
)

// standalone pages define their own "layout"
var standalone = map[string]bool{Login: true}

var pages = []string{Login, Dashboard, Analysis, Admins, Clinics, Gamification, Resources}

// Viewer is what a template may know about the caller.
type Viewer struct {
	Role            string
	RoleLabel       string
	Authenticated   bool
	CanManage       bool
	CanManageAdmins bool
	CanUpload       bool
}

// Page is the root value every template receives.
type Page struct {
	Title     string
	Active    string
	Viewer    Viewer
	RequestID string
	Data      any
}

type NavItem struct {
	Key   string
	Label string
	Href  string
}

var nav = []NavItem{
	{Dashboard, "Dashboard", "/dashboard"},
	{Analysis, "Analysis", "/dashboard/analysis"},
	{Admins, "Admins", "/dashboard/admins"},
	{Clinics, "Clinics", "/dashboard/clinics"},
	{Gamification, "Gamification", "/dashboard/gamification"},
	{Resources, "Resources", "/dashboard/resources-management"},
}

func (Page) Nav() []NavItem { return nav }

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || rv.IsZero() {
			return fallback
		}
		return value
	}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"now":        func() time.Time { return time.Now().UTC() },
		"formatTime": func(t time.Time, layout string) string { return t.Format(layout) },
		"upper":      strings.ToUpper,
		"default":    defaultFn,
		"markdown":   Markdown,
		"add":        func(a, b int) int { return a + b },
		"bytes":      humanBytes,
		"deref": func(f *float64) string {
			if f == nil {
				return ""
			}
			return fmt.Sprintf("%g", *f)
		},
	}
}

// Renderer implements gin's HTMLRender over one template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page with the shared layout and partials.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		files := []string{"templates/" + name + ".html.tmpl"}
		if !standalone[name] {
			files = append([]string{"templates/layout.html.tmpl", "templates/partials.html.tmpl"}, files...)
		}
		t, err := template.New(name).Funcs(funcs()).ParseFS(FS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		return render.Data{ContentType: "text/plain; charset=utf-8", Data: []byte("unknown page " + name)}
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Static serves the embedded assets under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

var _ render.HTMLRender = (*Renderer)(nil)
