package view_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/models/product"
	"github.com/beanhaus/coffeepos/internal/transport/http/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageData() view.PageData {
	return view.PageData{
		Orders: []order.OrderRow{
			{
				ID:          7,
				Created:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
				PriceCents:  350,
				ProductName: "Flat White",
			},
		},
		Products: []product.Product{
			{ID: 3, Name: "Flat White", PriceCents: 350, OrderCount: 1},
			{ID: 4, Name: "Espresso", PriceCents: 250, OrderCount: 0},
		},
	}
}

func TestIndexRendersBothLists(t *testing.T) {
	renderer := view.MustNewRenderer()
	rec := httptest.NewRecorder()

	renderer.Index(rec, pageData())

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Flat White")
	assert.Contains(t, body, "Espresso")
	assert.Contains(t, body, "3.50")
	assert.Contains(t, body, "2.50")
	assert.Contains(t, body, "2026-08-30 10:00:00")
}

func TestOrderListFragment(t *testing.T) {
	renderer := view.MustNewRenderer()
	rec := httptest.NewRecorder()

	renderer.OrderList(rec, pageData().Orders)

	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="order-list"`)
	assert.Contains(t, body, "Flat White")
	assert.Contains(t, body, "3.50")
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.NotContains(t, body, `id="product-list"`)
}

func TestProductListFragment(t *testing.T) {
	renderer := view.MustNewRenderer()
	rec := httptest.NewRecorder()

	renderer.ProductList(rec, pageData().Products)

	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="product-list"`)
	assert.Contains(t, body, "Espresso")
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.NotContains(t, body, `id="order-list"`)
}

func TestContentFragmentHasBothListsNoDialogs(t *testing.T) {
	renderer := view.MustNewRenderer()
	rec := httptest.NewRecorder()

	renderer.Content(rec, pageData())

	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="order-list"`)
	assert.Contains(t, body, `id="product-list"`)
	assert.NotContains(t, body, "<dialog")
}

func TestErrorAndNotFoundPages(t *testing.T) {
	renderer := view.MustNewRenderer()

	rec := httptest.NewRecorder()
	renderer.Error(rec)
	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")

	rec = httptest.NewRecorder()
	renderer.NotFound(rec)
	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")
}

func TestProductNamesAreEscaped(t *testing.T) {
	renderer := view.MustNewRenderer()
	rec := httptest.NewRecorder()

	renderer.ProductList(rec, []product.Product{
		{ID: 1, Name: "<script>alert(1)</script>", PriceCents: 100},
	})

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
