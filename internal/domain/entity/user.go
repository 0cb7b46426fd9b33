package entity

import "time"

// User representa un usuario del sistema. Cada usuario solo ve sus propios
// registros: todos los accesos a Product/Order/Sale/Payment se filtran por UserID.
type User struct {
	ID           string
	Username     string // único en toda la tabla
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
