package model

type Coupon struct {
	ID     string  `bson:"_id" json:"id"`
	Code   string  `bson:"code" json:"code"`
	Amount float64 `bson:"amount" json:"amount"`
}
