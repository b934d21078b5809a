package model

import "time"

// Order status lifecycle: Processing -> Shipped -> Delivered.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

type ShippingInfo struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
	PinCode string `bson:"pinCode" json:"pin_code"`
}

type OrderItem struct {
	ProductID string  `bson:"productId" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Photo     string  `bson:"photo" json:"photo"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID              string       `bson:"_id" json:"id"`
	UserID          string       `bson:"user" json:"user_id"`
	Status          string       `bson:"status" json:"status"`
	Subtotal        float64      `bson:"subtotal" json:"subtotal"`
	Tax             float64      `bson:"tax" json:"tax"`
	Discount        float64      `bson:"discount" json:"discount"`
	ShippingCharges float64      `bson:"shippingCharges" json:"shipping_charges"`
	Total           float64      `bson:"total" json:"total"`
	ShippingInfo    ShippingInfo `bson:"shippingInfo" json:"shipping_info"`
	Items           []OrderItem  `bson:"orderItems" json:"order_items"`
	CreatedAt       time.Time    `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updated_at"`
}

// Transaction is the trimmed order projection shown in the
// latest-transactions widget of the dashboard.
type Transaction struct {
	ID       string  `json:"id"`
	Discount float64 `json:"discount"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}
