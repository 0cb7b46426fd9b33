package repository

import "github.com/jhoicas/Libreta-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste un usuario nuevo. Username duplicado -> domain.ErrUsernameAlreadyUsed.
	Create(user *entity.User) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.User, error)
	// GetByUsername devuelve (nil, nil) si no existe.
	GetByUsername(username string) (*entity.User, error)
}
