package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityKind discrimina el origen de un registro de actividad de cliente.
type ActivityKind string

// Orígenes posibles de un registro de actividad.
const (
	ActivityBilling ActivityKind = "BILLING"
	ActivityQuote   ActivityKind = "QUOTE"
)

// ActivityRecord factura o cotización de un cliente, ya etiquetada por Kind
// en el origen de datos. Las cotizaciones no tienen subtotal ni métodos de
// pago: esos campos quedan en cero/vacío.
type ActivityRecord struct {
	Kind           ActivityKind
	SerialNumber   string
	PaymentMethods []string
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	CreatedDate    time.Time
}
