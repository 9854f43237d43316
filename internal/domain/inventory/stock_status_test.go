package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/medagenda/clinica-api/internal/domain/inventory"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name     string
		stock    decimal.Decimal
		minStock decimal.Decimal
		want     string
	}{
		{"stock cero es critico", d(0), d(10), inventory.StatusCritico},
		{"stock negativo es critico", d(-3), d(10), inventory.StatusCritico},
		{"stock bajo el minimo es bajo", d(5), d(10), inventory.StatusBajo},
		{"empate exacto en el minimo es bajo", d(10), d(10), inventory.StatusBajo},
		{"stock sobre el minimo es normal", d(11), d(10), inventory.StatusNormal},
		{"minimo cero con stock positivo es normal", d(1), d(0), inventory.StatusNormal},
		{"fraccionario bajo el minimo", decimal.NewFromFloat(0.5), d(1), inventory.StatusBajo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ClassifyStock(tc.stock, tc.minStock))
		})
	}
}

func TestValidStatusFilter(t *testing.T) {
	assert.True(t, inventory.ValidStatusFilter("critico"))
	assert.True(t, inventory.ValidStatusFilter("bajo"))
	assert.True(t, inventory.ValidStatusFilter("normal"))
	assert.True(t, inventory.ValidStatusFilter("all"))
	assert.True(t, inventory.ValidStatusFilter(""))
	assert.False(t, inventory.ValidStatusFilter("agotado"))
}
