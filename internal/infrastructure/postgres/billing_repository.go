package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/repository"
)

var _ repository.BillingRepository = (*BillingRepo)(nil)

// BillingRepo implementación de BillingRepository (usable con pool o tx).
type BillingRepo struct {
	q Querier
}

// NewBillingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillingRepository(q Querier) *BillingRepo {
	return &BillingRepo{q: q}
}

// ListBillings lista facturas del rango [from, to], más reciente primero.
// Una fecha cero deja ese extremo abierto.
func (r *BillingRepo) ListBillings(ctx context.Context, from, to time.Time) ([]entity.Billing, error) {
	query := `
		SELECT b.id, b.serial_number, COALESCE(c.full_name, ''), b.payment_methods,
		       b.subtotal, COALESCE(b.discount, 0), COALESCE(b.discount_type, ''),
		       COALESCE(b.shipping, 0), b.created_date
		FROM billings b
		LEFT JOIN customers c ON c.id = b.customer_id
		WHERE ($1::timestamptz IS NULL OR b.created_date >= $1)
		  AND ($2::timestamptz IS NULL OR b.created_date <= $2)
		ORDER BY b.created_date DESC`
	rows, err := r.q.Query(ctx, query, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, fmt.Errorf("list billings: %w", err)
	}
	defer rows.Close()

	var billings []entity.Billing
	for rows.Next() {
		var b entity.Billing
		if err := rows.Scan(
			&b.ID, &b.SerialNumber, &b.CustomerName, &b.PaymentMethods,
			&b.Subtotal, &b.Discount, &b.DiscountType, &b.Shipping, &b.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("scan billing: %w", err)
		}
		billings = append(billings, b)
	}
	return billings, rows.Err()
}

// ListCustomerActivity lista facturas y cotizaciones de un cliente en un solo
// listado etiquetado por kind, más reciente primero. Las cotizaciones no
// tienen subtotal ni métodos de pago: se rellenan con cero/vacío aquí, no en
// el proyector.
func (r *BillingRepo) ListCustomerActivity(ctx context.Context, customerID string) ([]entity.ActivityRecord, error) {
	query := `
		SELECT 'BILLING' AS kind, b.serial_number, b.payment_methods,
		       b.subtotal, COALESCE(b.shipping, 0), b.created_date
		FROM billings b
		WHERE b.customer_id = $1
		UNION ALL
		SELECT 'QUOTE' AS kind, q.serial_number, ARRAY[]::text[],
		       0, COALESCE(q.shipping, 0), q.created_date
		FROM quotations q
		WHERE q.customer_id = $1
		ORDER BY created_date DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer activity: %w", err)
	}
	defer rows.Close()

	var records []entity.ActivityRecord
	for rows.Next() {
		var rec entity.ActivityRecord
		var kind string
		if err := rows.Scan(
			&kind, &rec.SerialNumber, &rec.PaymentMethods,
			&rec.Subtotal, &rec.Shipping, &rec.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("scan activity record: %w", err)
		}
		rec.Kind = entity.ActivityKind(kind)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// nullableTime convierte la fecha cero en NULL para los filtros de rango.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
