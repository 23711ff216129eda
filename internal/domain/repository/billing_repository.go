package repository

import (
	"context"
	"time"

	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// BillingRepository define las consultas de lectura sobre facturación.
type BillingRepository interface {
	// ListBillings devuelve las facturas emitidas en el rango [from, to],
	// ordenadas por fecha descendente.
	ListBillings(ctx context.Context, from, to time.Time) ([]entity.Billing, error)

	// ListCustomerActivity devuelve facturas y cotizaciones de un cliente como
	// un único listado etiquetado por Kind, ordenado por fecha descendente.
	ListCustomerActivity(ctx context.Context, customerID string) ([]entity.ActivityRecord, error)
}
