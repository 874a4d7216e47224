package entity

import "time"

// User representa un vendedor del sistema. Es la identidad propietaria de
// clientes y órdenes.
type User struct {
	ID           string
	Name         string
	Lastname     string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	CreatedAt    time.Time
}
