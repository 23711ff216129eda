package repository

import (
	"context"

	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// StockRepository define las consultas de lectura sobre existencias.
// Las implementaciones son read-only (no modifican datos).
type StockRepository interface {
	// GetWarehouseName devuelve el nombre del almacén o domain.ErrNotFound.
	GetWarehouseName(ctx context.Context, warehouseID string) (string, error)

	// ListStockItems devuelve las existencias de un almacén con los datos de
	// producto y variante ya resueltos.
	ListStockItems(ctx context.Context, warehouseID string) ([]entity.StockItem, error)

	// ListTransitQuantities devuelve las cantidades pedidas y aún no recibidas
	// por variante, para un almacén.
	ListTransitQuantities(ctx context.Context, warehouseID string) ([]entity.TransitQuantity, error)

	// ListStockHistory devuelve los movimientos de un item de stock ordenados
	// por fecha descendente.
	ListStockHistory(ctx context.Context, stockItemID string) ([]entity.StockItemHistoryEntry, error)
}
