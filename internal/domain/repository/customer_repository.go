package repository

import (
	"context"

	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// CustomerRepository define las consultas de lectura sobre clientes.
type CustomerRepository interface {
	// ListTopCustomers devuelve los clientes con mayor facturación acumulada,
	// hasta limit filas.
	ListTopCustomers(ctx context.Context, limit int) ([]entity.Customer, error)

	// GetSummary devuelve el resumen de actividad de un cliente.
	// Retorna domain.ErrNotFound si el cliente no existe.
	GetSummary(ctx context.Context, customerID string) (*entity.CustomerSummary, error)
}
