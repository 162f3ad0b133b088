package possvc_test

import (
	"strings"
	"testing"
	"time"

	"github.com/beanhaus/coffeepos/internal/service/models/order"
	"github.com/beanhaus/coffeepos/internal/service/services/possvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersCSVEmpty(t *testing.T) {
	got := possvc.OrdersCSV(nil)

	assert.Equal(t, "created,price,product_name", got)
}

func TestOrdersCSVSingleRow(t *testing.T) {
	created := time.Date(2026, 8, 31, 9, 15, 0, 0, time.UTC)

	got := possvc.OrdersCSV([]order.OrderRow{
		{ID: 1, Created: created, PriceCents: 350, ProductName: "Flat White"},
	})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "created,price,product_name", lines[0])
	assert.Equal(t, `2026-08-31 09:15:00,3.50,"Flat White"`, lines[1])
}

func TestOrdersCSVQuotesNames(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	got := possvc.OrdersCSV([]order.OrderRow{
		{ID: 1, Created: created, PriceCents: 300, ProductName: `Cortado "Doble"`},
		{ID: 2, Created: created, PriceCents: 5, ProductName: "Espresso"},
	})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2026-01-02 03:04:05,3.00,"Cortado \"Doble\""`, lines[1])
	assert.Equal(t, `2026-01-02 03:04:05,0.05,"Espresso"`, lines[2])
}
