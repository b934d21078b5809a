package model

import "time"

type Product struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Price     float64   `bson:"price" json:"price"`
	Stock     int       `bson:"stock" json:"stock"`
	Photo     string    `bson:"photo" json:"photo"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// ProductSearchCriteria drives the public catalog filter endpoint.
// Zero values mean "no constraint" for that field.
type ProductSearchCriteria struct {
	Search   string  `json:"search,omitempty"`
	Category string  `json:"category,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`
	Sort     string  `json:"sort,omitempty"` // "asc" or "dsc" by price
	Page     int     `json:"page,omitempty"`
}
