package entity

import "time"

// Client representa un cliente de un vendedor. SellerID es inmutable después
// de la creación y determina todos los chequeos de acceso.
type Client struct {
	ID        string
	Name      string
	Lastname  string
	Business  string
	Email     string // único
	Phone     string
	SellerID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
