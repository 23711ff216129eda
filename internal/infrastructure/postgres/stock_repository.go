package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/comercia/backoffice-api/internal/domain"
	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetWarehouseName obtiene el nombre del almacén.
// Retorna ErrNotFound si el almacén no existe.
func (r *StockRepo) GetWarehouseName(ctx context.Context, warehouseID string) (string, error) {
	var name string
	err := r.q.QueryRow(ctx, `SELECT name FROM warehouses WHERE id = $1`, warehouseID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get warehouse name: %w", err)
	}
	return name, nil
}

// ListStockItems lista las existencias de un almacén con producto y variante resueltos.
func (r *StockRepo) ListStockItems(ctx context.Context, warehouseID string) ([]entity.StockItem, error) {
	query := `
		SELECT s.id, s.product_variant_id, pv.code, p.name, pv.name,
		       s.quantity, s.min_qty, s.max_qty, pv.cost, pv.price
		FROM stocks s
		JOIN product_variants pv ON pv.id = s.product_variant_id
		JOIN products p ON p.id = pv.product_id
		WHERE s.warehouse_id = $1
		ORDER BY p.name, pv.name`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var items []entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(
			&it.ID, &it.ProductVariantID, &it.VariantCode, &it.ProductName, &it.ProductVariantName,
			&it.Quantity, &it.MinQty, &it.MaxQty, &it.Cost, &it.Price,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListTransitQuantities lista lo pedido y aún no recibido por variante.
// La cantidad viene como texto (la columna admite valores legados no
// numéricos); lo no parseable cuenta como 0.
func (r *StockRepo) ListTransitQuantities(ctx context.Context, warehouseID string) ([]entity.TransitQuantity, error) {
	query := `
		SELECT poi.product_variant_id, SUM(poi.quantity - poi.received_qty)::text
		FROM purchase_order_items poi
		JOIN purchase_orders po ON po.id = poi.purchase_order_id
		WHERE po.warehouse_id = $1 AND po.status IN ('PENDING', 'PARTIAL')
		GROUP BY poi.product_variant_id`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list transit quantities: %w", err)
	}
	defer rows.Close()

	var result []entity.TransitQuantity
	for rows.Next() {
		var t entity.TransitQuantity
		var raw string
		if err := rows.Scan(&t.ProductVariantID, &raw); err != nil {
			return nil, fmt.Errorf("scan transit quantity: %w", err)
		}
		qty, err := decimal.NewFromString(raw)
		if err != nil {
			qty = decimal.Zero
		}
		t.QtyInTransit = qty
		result = append(result, t)
	}
	return result, rows.Err()
}

// ListStockHistory lista los movimientos de un item de stock, más reciente primero.
func (r *StockRepo) ListStockHistory(ctx context.Context, stockItemID string) ([]entity.StockItemHistoryEntry, error) {
	query := `
		SELECT id, type, quantity, stock_before, created_date
		FROM stock_histories
		WHERE stock_id = $1
		ORDER BY created_date DESC`
	rows, err := r.q.Query(ctx, query, stockItemID)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()

	var entries []entity.StockItemHistoryEntry
	for rows.Next() {
		var e entity.StockItemHistoryEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Quantity, &e.StockBefore, &e.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
