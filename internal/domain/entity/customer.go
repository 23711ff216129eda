package entity

import "github.com/shopspring/decimal"

// Customer cliente con sus métricas de actividad acumulada
// (reporte de mejores clientes).
type Customer struct {
	ID           string
	DNI          string
	FullName     string
	PhoneNumber  string
	City         string
	BillingCount int64
	TotalSpent   decimal.Decimal
}

// CustomerSummary bloque informativo del reporte individual de cliente.
type CustomerSummary struct {
	ID             string
	DNI            string
	FullName       string
	PhoneNumber    string
	CityName       string
	CountryISOCode string // "EC" activa formato de moneda con decimales
	BillingsCount  int64
	TotalSpent     decimal.Decimal
}
