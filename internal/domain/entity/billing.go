package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento aplicables a una factura.
const (
	DiscountFixed      = "FIXED"
	DiscountPercentage = "PERCENTAGE"
)

// Billing factura emitida. Discount guarda el valor crudo: monto fijo o
// porcentaje según DiscountType.
type Billing struct {
	ID             string
	SerialNumber   string
	CustomerName   string
	PaymentMethods []string
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	DiscountType   string
	Shipping       decimal.Decimal
	CreatedDate    time.Time
}

// EffectiveDiscount monto descontado en dinero. PERCENTAGE se resuelve sobre
// el subtotal; FIXED es el valor directo. Un descuento negativo o un tipo
// vacío cuentan como cero.
func (b Billing) EffectiveDiscount() decimal.Decimal {
	if b.DiscountType == "" || b.Discount.IsNegative() {
		return decimal.Zero
	}
	if b.DiscountType == DiscountPercentage {
		return b.Subtotal.Mul(b.Discount).Div(decimal.NewFromInt(100))
	}
	return b.Discount
}

// Total subtotal menos descuento efectivo. El flete se informa aparte y no
// entra en el total.
func (b Billing) Total() decimal.Decimal {
	return b.Subtotal.Sub(b.EffectiveDiscount())
}
