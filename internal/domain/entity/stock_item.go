package entity

import "github.com/shopspring/decimal"

// StockItem existencia de una variante de producto en un almacén, con sus
// umbrales de reposición y precios vigentes.
type StockItem struct {
	ID                 string
	ProductVariantID   string
	VariantCode        string
	ProductName        string
	ProductVariantName string
	Quantity           decimal.Decimal
	MinQty             decimal.Decimal
	MaxQty             decimal.Decimal
	Cost               decimal.Decimal
	Price              decimal.Decimal
}

// TransitQuantity cantidad pedida de una variante que aún no llega al almacén.
type TransitQuantity struct {
	ProductVariantID string
	QtyInTransit     decimal.Decimal
}
