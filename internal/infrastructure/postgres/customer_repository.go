package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/comercia/backoffice-api/internal/domain"
	"github.com/comercia/backoffice-api/internal/domain/entity"
	"github.com/comercia/backoffice-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// ListTopCustomers lista los clientes con mayor facturación acumulada.
func (r *CustomerRepo) ListTopCustomers(ctx context.Context, limit int) ([]entity.Customer, error) {
	query := `
		SELECT c.id, c.dni, c.full_name, COALESCE(c.phone_number, ''),
		       COALESCE(ci.name, ''), COUNT(b.id), COALESCE(SUM(b.subtotal - COALESCE(
		           CASE WHEN b.discount_type = 'PERCENTAGE'
		                THEN b.subtotal * b.discount / 100
		                ELSE b.discount END, 0)), 0)
		FROM customers c
		LEFT JOIN cities ci ON ci.id = c.city_id
		JOIN billings b ON b.customer_id = c.id
		GROUP BY c.id, c.dni, c.full_name, c.phone_number, ci.name
		ORDER BY 7 DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list top customers: %w", err)
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.DNI, &c.FullName, &c.PhoneNumber, &c.City, &c.BillingCount, &c.TotalSpent,
		); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetSummary obtiene el resumen de actividad de un cliente.
// Retorna ErrNotFound si el cliente no existe.
func (r *CustomerRepo) GetSummary(ctx context.Context, customerID string) (*entity.CustomerSummary, error) {
	query := `
		SELECT c.id, c.dni, c.full_name, COALESCE(c.phone_number, ''),
		       COALESCE(ci.name, ''), COALESCE(co.iso_code, ''),
		       COUNT(b.id), COALESCE(SUM(b.subtotal - COALESCE(
		           CASE WHEN b.discount_type = 'PERCENTAGE'
		                THEN b.subtotal * b.discount / 100
		                ELSE b.discount END, 0)), 0)
		FROM customers c
		LEFT JOIN cities ci ON ci.id = c.city_id
		LEFT JOIN countries co ON co.id = ci.country_id
		LEFT JOIN billings b ON b.customer_id = c.id
		WHERE c.id = $1
		GROUP BY c.id, c.dni, c.full_name, c.phone_number, ci.name, co.iso_code`
	var s entity.CustomerSummary
	err := r.q.QueryRow(ctx, query, customerID).Scan(
		&s.ID, &s.DNI, &s.FullName, &s.PhoneNumber,
		&s.CityName, &s.CountryISOCode, &s.BillingsCount, &s.TotalSpent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer summary: %w", err)
	}
	return &s, nil
}
