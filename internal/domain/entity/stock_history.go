package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de un movimiento de stock.
const (
	TransactionEnter    = "ENTER"
	TransactionExit     = "EXIT"
	TransactionTransfer = "TRANSFER"
	TransactionBilling  = "BILLING"
)

// StockItemHistoryEntry movimiento registrado sobre un item de stock.
// StockBefore es el stock al momento de aplicar el movimiento.
type StockItemHistoryEntry struct {
	ID          string
	Type        string
	Quantity    decimal.Decimal
	StockBefore decimal.Decimal
	CreatedDate time.Time
}

// StockAfter stock resultante del movimiento: ENTER suma la cantidad,
// cualquier otro tipo la resta.
func (e StockItemHistoryEntry) StockAfter() decimal.Decimal {
	if e.Type == TransactionEnter {
		return e.StockBefore.Add(e.Quantity)
	}
	return e.StockBefore.Sub(e.Quantity)
}
