package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Имена страниц
const (
	PageList          = "list"
	PageDetails       = "details"
	PageForm          = "form"
	PageConfirmDelete = "confirm_delete"
	PageMessage       = "message"
	PageNotFound      = "not_found"
)

var pages = []string{PageList, PageDetails, PageForm, PageConfirmDelete, PageMessage, PageNotFound}

var funcs = template.FuncMap{
	"number": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
}

// Renderer рендерит HTML страницы из встроенных шаблонов
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает все шаблоны. Каждая страница собирается вместе с layout.html.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render рендерит страницу page с данными data и статусом status.
// Шаблон исполняется в буфер, чтобы ошибка шаблона не оставила половину страницы.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler отдает файлы из static/
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
