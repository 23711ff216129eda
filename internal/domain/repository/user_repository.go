package repository

import (
	"context"

	"github.com/comercia/backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail retorna domain.ErrUserNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
