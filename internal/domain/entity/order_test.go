package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLine_Pricing(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		product  string
		quantity string
		price    string
	}{
		{"numbers", `{"product_name":"Eggs","quantity":2,"price":4.5}`, "Eggs", "2", "4.5"},
		{"numeric strings", `{"product_name":"Eggs","quantity":"2","price":"4.50"}`, "Eggs", "2", "4.5"},
		{"name alias", `{"name":"Raw Honey","quantity":1,"price":12}`, "Raw Honey", "1", "12"},
		{"missing quantity and price", `{"product_name":"Kale"}`, "Kale", "1", "0"},
		{"extra fields ignored", `{"product_name":"Eggs","quantity":3,"price":1,"image_url":"/uploads/e.png"}`, "Eggs", "3", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing, err := OrderLine(tt.line).Pricing()

			require.NoError(t, err)
			assert.Equal(t, tt.product, pricing.ProductName)
			assert.True(t, decimal.RequireFromString(tt.quantity).Equal(pricing.Quantity), "quantity %s", pricing.Quantity)
			assert.True(t, decimal.RequireFromString(tt.price).Equal(pricing.Price), "price %s", pricing.Price)
		})
	}
}

func TestOrderLine_PricingRejects(t *testing.T) {
	for _, line := range []string{
		`"Eggs"`,
		`null`,
		`{"product_name":"Eggs","quantity":"two"}`,
		`{"product_name":"Eggs","price":true}`,
		`{"product_name":"Eggs","quantity":-1}`,
		`{"product_name":"Eggs","price":"-0.5"}`,
	} {
		_, err := OrderLine(line).Pricing()
		assert.Error(t, err, line)
	}
}

func TestLinePricing_Subtotal(t *testing.T) {
	pricing, err := OrderLine(`{"product_name":"Eggs","quantity":"3","price":"4.25"}`).Pricing()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("12.75").Equal(pricing.Subtotal()))
}

func TestOrderLine_JSONRoundTripIsVerbatim(t *testing.T) {
	var lines []OrderLine
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"Eggs","quantity":"2","note":"brown"},{"product_name":"Kale"}]`), &lines))
	require.Len(t, lines, 2)

	out, err := json.Marshal(map[string]any{"cart": lines})
	require.NoError(t, err)

	assert.JSONEq(t, `{"cart":[{"name":"Eggs","quantity":"2","note":"brown"},{"product_name":"Kale"}]}`, string(out))
}
