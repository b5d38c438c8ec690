package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"userId"` // one cart per user
	Items       []CartItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"total_amount" json:"totalAmount"`
	ItemCount   int                `bson:"item_count" json:"itemCount"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CartItem struct {
	ProductID    string  `bson:"product_id" json:"productId"`
	ProductName  string  `bson:"product_name" json:"productName"`
	ProductImage string  `bson:"product_image" json:"productImage"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	Subtotal     float64 `bson:"subtotal" json:"subtotal"`
}

func (i *CartItem) CalculateSubtotal() {
	i.Subtotal = i.Price * float64(i.Quantity)
}

// CalculateTotals keeps the derived fields in sync with the item list. Called
// after every mutation; TotalAmount and ItemCount are never set directly.
func (c *Cart) CalculateTotals() {
	var total float64
	var count int
	for _, item := range c.Items {
		total += item.Subtotal
		count += item.Quantity
	}
	c.TotalAmount = total
	c.ItemCount = count
}
