// Package views renders the storefront's pages and Datastar fragments.
//
// Templates are embedded html/template files exposed as templ components, so
// handlers treat them like any other component. Pages share the "layout"
// template and define "content"; fragments live in partials.html and carry
// stable element ids for Datastar patches.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/pkg/forms"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{"home", "collection", "studio", "checkout", "dashboard", "notfound", "error"}

var (
	partials      = template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/partials.html"))
	pageTemplates = parsePages()
)

func parsePages() map[string]*template.Template {
	base := template.Must(partials.Clone())
	template.Must(base.ParseFS(files, "templates/layout.html"))

	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t := template.Must(base.Clone())
		out[name] = template.Must(t.ParseFS(files, "templates/"+name+".html"))
	}
	return out
}

// page renders a full document: the layout wrapped around the page's content.
func page(name string, data any) templ.Component {
	t, ok := pageTemplates[name]
	if !ok {
		panic(fmt.Sprintf("views: unknown page %q", name))
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", data)
	})
}

// partial renders one fragment from partials.html.
func partial(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return partials.ExecuteTemplate(w, name, data)
	})
}

// input is what the "field" partial needs to render one form control.
type input struct {
	Field forms.Field
	Value string
	Error string
}

var placeholders = map[string]string{
	"fullName":   "Jane Doe",
	"address":    "123 Atelier Avenue",
	"city":       "Paris",
	"postalCode": "75001",
	"country":    "France",
	"cardName":   "Jane M. Doe",
	"cardNumber": "•••• •••• •••• ••••",
	"expiryDate": "MM/YY",
	"cvc":        "123",
}

var funcs = template.FuncMap{
	"input": func(f forms.Field, values, errs map[string]string) input {
		return input{Field: f, Value: values[f.Name], Error: errs[f.Name]}
	},
	"pick": func(s *forms.Schema, names ...string) []forms.Field {
		out := make([]forms.Field, 0, len(names))
		for _, n := range names {
			if f, ok := s.Field(n); ok {
				out = append(out, f)
			}
		}
		return out
	},
	"inputType": func(f forms.Field) string {
		switch {
		case f.Kind == forms.KindNumber:
			return "number"
		case f.Name == "email":
			return "email"
		default:
			return "text"
		}
	},
	"slot": func(name, msg string) struct{ Name, Message string } {
		return struct{ Name, Message string }{name, msg}
	},
	"placeholder": func(name string) string { return placeholders[name] },
	"money":       func(m catalog.Money) string { return m.String() },
	"date":        func(t time.Time) string { return t.Format("2006-01-02") },
	"badge":       catalog.StatusVariant,
	"active":      func(current, path string) bool { return current == path },
	"contains":    func(list []string, v string) bool { return slices.Contains(list, v) },
	"year":        func() int { return time.Now().Year() },
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}
