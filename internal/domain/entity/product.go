package entity

import "time"

// Product representa un producto en stock. La identidad de negocio para las
// entradas de mercancía es el par (SKU, Details) dentro del alcance de un usuario:
// una nueva recepción con el mismo par acumula stock en vez de crear otra fila.
// Stock puede quedar negativo: las salidas no se bloquean por falta de existencias.
type Product struct {
	ID         int64
	UserID     string
	Name       string
	SKU        string // código interno del vendedor
	FactorySKU string // código del proveedor; llave de resolución de costos
	Details    string // variante: color, talla, etc.
	Stock      int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time // nil = activo
}
