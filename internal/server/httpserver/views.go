package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.gohtml templates/members/*.gohtml
var templateFS embed.FS

// Names of the member views.
const (
	viewMembersList   = "members/list"
	viewMembersCreate = "members/create"
)

type views struct {
	pages map[string]*template.Template
}

func loadViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template)}
	for _, name := range []string{viewMembersList, viewMembersCreate} {
		t, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("error parsing view %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// render executes the view into a buffer first so a template error never
// leaves a half-written page.
func (v *views) render(w http.ResponseWriter, name string, data any) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %s", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("error rendering view %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
