package view

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/price"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData is the shape the index page and its fragments render from.
type PageData struct {
	Orders   []order.OrderRow
	Products []product.Product
}

// Renderer renders the index page and its named fragments. Which fragment a
// handler renders is a function of the route, not of the data.
type Renderer struct {
	tmpl *template.Template
}

// MustNewRenderer parses the embedded templates.
func MustNewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": func(c price.Cents) string {
			return c.String()
		},
	}

	tmpl := template.Must(
		template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"),
	)

	return &Renderer{tmpl: tmpl}
}

// Index renders the full page: both lists plus static chrome and dialogs.
func (r *Renderer) Index(w http.ResponseWriter, data PageData) {
	r.render(w, http.StatusOK, "index.html", data)
}

// Content renders the order and product lists without the dialogs.
func (r *Renderer) Content(w http.ResponseWriter, data PageData) {
	r.render(w, http.StatusOK, "content", data)
}

// OrderList renders only the order table fragment.
func (r *Renderer) OrderList(w http.ResponseWriter, orders []order.OrderRow) {
	r.render(w, http.StatusOK, "order_list", PageData{Orders: orders})
}

// ProductList renders only the product list fragment.
func (r *Renderer) ProductList(w http.ResponseWriter, products []product.Product) {
	r.render(w, http.StatusOK, "product_list", PageData{Products: products})
}

// Error renders the internal error page. Every route uses it on failure.
func (r *Renderer) Error(w http.ResponseWriter) {
	r.render(w, http.StatusInternalServerError, "error.html", nil)
}

// NotFound renders the not-found page for unmatched routes.
func (r *Renderer) NotFound(w http.ResponseWriter) {
	r.render(w, http.StatusNotFound, "notfound.html", nil)
}

// render buffers the template output first so a render failure produces an
// empty 500 instead of a half-written body.
func (r *Renderer) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Error rendering template", "template", name, "error", err)
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Error writing response", "template", name, "error", err)
	}
}
