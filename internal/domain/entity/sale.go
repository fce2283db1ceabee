package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale is a read-only document from sample_supplies.sales. Prices keep their
// Decimal128 wire form, which marshals to {"$numberDecimal": "..."} in JSON.
type Sale struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	SaleDate       time.Time          `json:"saleDate" bson:"saleDate"`
	Items          []Item             `json:"items" bson:"items"`
	StoreLocation  string             `json:"storeLocation" bson:"storeLocation"`
	Customer       Customer           `json:"customer" bson:"customer"`
	CouponUsed     bool               `json:"couponUsed" bson:"couponUsed"`
	PurchaseMethod string             `json:"purchaseMethod" bson:"purchaseMethod"`
}

type Item struct {
	Name     string               `json:"name" bson:"name"`
	Tags     []string             `json:"tags" bson:"tags"`
	Price    primitive.Decimal128 `json:"price" bson:"price"`
	Quantity int                  `json:"quantity" bson:"quantity"`
}

type Customer struct {
	Gender       string `json:"gender" bson:"gender"`
	Age          int    `json:"age" bson:"age"`
	Email        string `json:"email" bson:"email"`
	Satisfaction int    `json:"satisfaction" bson:"satisfaction"`
}
