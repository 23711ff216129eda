package report

import (
	"strings"

	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// Colores de relleno usados por los reportes (RGB hex, sin canal alfa).
const (
	FillGreen  = "10B981"
	FillRed    = "E53535"
	FillYellow = "EAB308"
	FillBlue   = "0D6EFD"
	FillWhite  = "FFFFFF"
)

// Etiquetas visibles de filas de actividad y transacciones.
const (
	labelFactura    = "Factura"
	labelCotizacion = "Cotización"
)

// transactionTypeLabels etiqueta en español por tipo genérico de transacción.
var transactionTypeLabels = map[string]string{
	entity.TransactionEnter:    "Entrada",
	entity.TransactionExit:     "Salida",
	entity.TransactionTransfer: "Transferencia",
}

// TransactionLabel etiqueta localizada de un tipo de transacción. BILLING
// siempre es "Factura", con precedencia sobre la tabla genérica. Un tipo
// desconocido se muestra tal cual llegó.
func TransactionLabel(t string) string {
	if t == entity.TransactionBilling {
		return labelFactura
	}
	if label, ok := transactionTypeLabels[t]; ok {
		return label
	}
	return t
}

// transactionFillColors color de celda por etiqueta de transacción.
var transactionFillColors = map[string]string{
	"Entrada":       FillBlue,
	"Transferencia": FillYellow,
	"Salida":        FillRed,
	labelFactura:    FillGreen,
	labelCotizacion: FillBlue,
}

// transactionFill relleno condicional de la columna Transacción.
func transactionFill(v RowView) string {
	if color, ok := transactionFillColors[v.Text(LabelTransaction)]; ok {
		return color
	}
	return FillWhite
}

// paymentMethodLabels etiqueta en español por código de método de pago.
var paymentMethodLabels = map[string]string{
	"CASH":     "Efectivo",
	"CARD":     "Tarjeta",
	"TRANSFER": "Transferencia",
	"CREDIT":   "Crédito",
}

// PaymentMethodLabels une las etiquetas de los códigos con ", ". Un código
// desconocido se muestra tal cual llegó.
func PaymentMethodLabels(codes []string) string {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		if label, ok := paymentMethodLabels[code]; ok {
			labels = append(labels, label)
			continue
		}
		labels = append(labels, code)
	}
	return strings.Join(labels, ", ")
}

// stockHealthFill semáforo de salud de stock para "Cantidad actual":
// rojo si actual <= mínima, amarillo si actual/máxima <= 75%, verde si no.
func stockHealthFill(v RowView) string {
	current := v.Number(LabelCurrentQty)
	min := v.Number(LabelMinQty)
	max := v.Number(LabelMaxQty)

	if current <= min {
		return FillRed
	}
	if max > 0 && current/max*100 <= 75 {
		return FillYellow
	}
	return FillGreen
}
