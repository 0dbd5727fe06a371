package entity

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Order is a frozen copy of a checkout. It does not reference cart rows, so later cart
// changes never alter it.
type Order struct {
	ID              uint
	OrderNumber     string
	Email           string
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	OrderData       json.RawMessage // caller payload with the cart snapshot injected under "cart"
	OrderDate       time.Time
	PaymentMethod   string
	Status          OrderStatus
}

// Summary projects the order onto the columns shown in order lists.
func (o *Order) Summary() *OrderSummary {
	return &OrderSummary{
		OrderNumber:     o.OrderNumber,
		Email:           o.Email,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		OrderDate:       o.OrderDate,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
	}
}

// OrderSummary is the list view of an order.
type OrderSummary struct {
	OrderNumber     string
	Email           string
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	OrderDate       time.Time
	PaymentMethod   string
	Status          OrderStatus
}

// OrderLine is one cart line exactly as submitted at checkout. It is embedded in the order
// verbatim, so fields the shop does not interpret still travel with the order.
type OrderLine json.RawMessage

// MarshalJSON emits the line unchanged.
func (l OrderLine) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(l)) == 0 {
		return []byte("null"), nil
	}

	return l, nil
}

// UnmarshalJSON keeps a copy of the raw line.
func (l *OrderLine) UnmarshalJSON(data []byte) error {
	if l == nil {
		return errors.New("entity.OrderLine: UnmarshalJSON on nil pointer")
	}
	*l = append((*l)[0:0], data...)

	return nil
}

// LinePricing is what one cart line contributes to an order total.
type LinePricing struct {
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// Subtotal is price times quantity.
func (p LinePricing) Subtotal() decimal.Decimal {
	return p.Price.Mul(p.Quantity)
}

// Pricing reads the name, quantity and unit price of the line. "name" is accepted in place of
// "product_name". Quantity and price may be numbers or numeric strings; a missing quantity
// counts as 1 and a missing price as 0.
func (l OrderLine) Pricing() (LinePricing, error) {
	fields := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(l))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return LinePricing{}, errors.New("cart line must be a JSON object")
	}

	name := lineString(fields, "product_name")
	if name == "" {
		name = lineString(fields, "name")
	}

	quantity, err := lineDecimal(fields, "quantity", decimal.NewFromInt(1))
	if err != nil {
		return LinePricing{}, err
	}

	price, err := lineDecimal(fields, "price", decimal.Zero)
	if err != nil {
		return LinePricing{}, err
	}

	if quantity.IsNegative() || price.IsNegative() {
		return LinePricing{}, errors.Errorf("cart line %q must have non-negative quantity and price", name)
	}

	return LinePricing{ProductName: name, Quantity: quantity, Price: price}, nil
}

func lineString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}

	return ""
}

func lineDecimal(fields map[string]any, key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	var raw string
	switch v := fields[key].(type) {
	case nil:
		return fallback, nil
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
		if raw == "" {
			return fallback, nil
		}
	default:
		return decimal.Zero, errors.Errorf("cart line %s must be a number", key)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Errorf("cart line %s must be a number", key)
	}

	return d, nil
}

// DeliveryDetails are the structured address fields of a checkout payload.
type DeliveryDetails struct {
	Address string
	City    string
	State   string
	Zip     string
}

// Flatten renders the address as a single display line: "address, city, state zip".
// Blank parts are skipped.
func (d DeliveryDetails) Flatten() string {
	stateZip := strings.TrimSpace(strings.TrimSpace(d.State) + " " + strings.TrimSpace(d.Zip))

	parts := make([]string, 0, 3)
	for _, p := range []string{d.Address, d.City, stateZip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}
