package dto

import "github.com/shopspring/decimal"

// BestClientResponse cliente con el total agregado de sus órdenes PENDING.
type BestClientResponse struct {
	Client ClientResponse  `json:"client"`
	Total  decimal.Decimal `json:"total"`
}

// BestSellerResponse vendedor con el total agregado de sus órdenes SUCCESS.
type BestSellerResponse struct {
	Seller UserResponse    `json:"seller"`
	Total  decimal.Decimal `json:"total"`
}
