package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseModel(t *testing.T, m any) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return s
}

func TestCallerSuppliedColumnsAreUnbounded(t *testing.T) {
	tests := []struct {
		model any
		field string
		want  schema.DataType
	}{
		{&CartLineModel{}, "Email", "text"},
		{&CartLineModel{}, "ProductName", "text"},
		{&OrderModel{}, "OrderNumber", "text"},
		{&OrderModel{}, "Email", "text"},
		{&OrderModel{}, "PaymentMethod", "text"},
		{&OrderModel{}, "TotalAmount", "numeric"},
	}

	for _, tt := range tests {
		s := parseModel(t, tt.model)
		t.Run(s.Table+"."+tt.field, func(t *testing.T) {
			field := s.LookUpField(tt.field)
			require.NotNil(t, field)
			assert.Equal(t, tt.want, field.DataType)
		})
	}
}

func TestCartLineUniqueKey(t *testing.T) {
	s := parseModel(t, &CartLineModel{})

	idx := s.LookIndex("idx_cart_lines_email_product")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)
	require.Len(t, idx.Fields, 2)
	assert.Equal(t, "email", idx.Fields[0].DBName)
	assert.Equal(t, "product_name", idx.Fields[1].DBName)
}
