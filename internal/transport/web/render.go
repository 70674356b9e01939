// Package web serves the server-rendered judgment pages: list, detail,
// create and edit forms, admin user management, profile and sign-in.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutFile  = "templates/layout.html"
	partialGlob = "templates/_*.html"
)

// View is the data every page template receives.
type View struct {
	Title     string
	User      *domain.User
	Nav       []NavItem
	Toasts    []Toast
	CSRFField template.HTML
	Path      string
	Data      any
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
	flash flash
	log   *slog.Logger
}

// NewRenderer parses every page template. secureCookies sets the Secure
// flag on the flash cookie.
func NewRenderer(logger *slog.Logger, secureCookies bool) (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	funcs := templateFuncs(md)

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: list templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		base := path.Base(file)
		if file == layoutFile || strings.HasPrefix(base, "_") {
			continue
		}
		name := strings.TrimSuffix(base, ".html")
		t, err := template.New(path.Base(layoutFile)).Option("missingkey=zero").Funcs(funcs).ParseFS(templateFS, layoutFile, partialGlob, file)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", file, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages: pages,
		flash: flash{secure: secureCookies},
		log:   logger.With("component", "renderer"),
	}, nil
}

// Page renders the named page with status. Queued toasts are consumed.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	t, ok := rd.pages[page]
	if !ok {
		rd.log.ErrorContext(r.Context(), "unknown page template", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := View{
		Title:     title,
		Toasts:    rd.flash.take(w, r),
		CSRFField: csrf.TemplateField(r),
		Path:      r.URL.Path,
		Data:      data,
	}
	if sess := session.FromContext(r.Context()); sess != nil {
		user := sess.User
		view.User = &user
		view.Nav = navFor(&user, r.URL.Path)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		rd.log.ErrorContext(r.Context(), "render page",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Redirect queues toasts for the next page and answers 303 See Other.
func (rd *Renderer) Redirect(w http.ResponseWriter, r *http.Request, url string, toasts ...Toast) {
	rd.flash.push(w, r, toasts...)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// NotFound renders the not-found page with status 404.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.Page(w, r, http.StatusNotFound, "not_found", "Not found", nil)
}

// Error renders the generic error page with message.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Page(w, r, status, "error", "Error", message)
}

// StaticHandler serves the embedded stylesheet and script.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// TagPreview is the list view's truncated tag column.
type TagPreview struct {
	Shown []string
	More  int
}

const previewTags = 4

func templateFuncs(md goldmark.Markdown) template.FuncMap {
	return template.FuncMap{
		"markdown": func(s *string) template.HTML {
			var buf bytes.Buffer
			if err := md.Convert([]byte(domain.Deref(s)), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(domain.Deref(s)))
			}
			// goldmark escapes raw HTML unless WithUnsafe is set.
			return template.HTML(buf.String())
		},
		"displayDate": func(s *string) string {
			if d := domain.FormatDisplayDate(domain.Deref(s)); d != "" {
				return d
			}
			return "-"
		},
		"orDash": func(s *string) string {
			if v := strings.TrimSpace(domain.Deref(s)); v != "" {
				return v
			}
			return "-"
		},
		"blank": func(s *string) bool {
			return strings.TrimSpace(domain.Deref(s)) == ""
		},
		"tagPreview": func(tags []string) TagPreview {
			if len(tags) <= previewTags {
				return TagPreview{Shown: tags}
			}
			return TagPreview{Shown: tags[:previewTags], More: len(tags) - previewTags}
		},
		"initials": func(u *domain.User) string {
			if u == nil {
				return ""
			}
			return u.Initials()
		},
	}
}
