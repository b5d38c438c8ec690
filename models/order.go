package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"userId"`
	OrderNumber string             `bson:"order_number" json:"orderNumber"`
	Items       []OrderItem        `bson:"items" json:"items"`

	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shippingAddress"`

	Subtotal     float64 `bson:"subtotal" json:"subtotal"`
	ShippingCost float64 `bson:"shipping_cost" json:"shippingCost"`
	Tax          float64 `bson:"tax" json:"tax"`
	TotalAmount  float64 `bson:"total_amount" json:"totalAmount"`

	PaymentMethod     string        `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus     PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	RazorpayOrderID   string        `bson:"razorpay_order_id" json:"razorpayOrderId"`
	RazorpayPaymentID string        `bson:"razorpay_payment_id" json:"razorpayPaymentId"`
	RazorpaySignature string        `bson:"razorpay_signature" json:"razorpaySignature"`

	OrderStatus   OrderStatus     `bson:"order_status" json:"orderStatus"`
	StatusHistory []StatusHistory `bson:"status_history" json:"statusHistory"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type OrderItem struct {
	ProductID    string  `bson:"product_id" json:"productId"`
	ProductName  string  `bson:"product_name" json:"productName"`
	ProductImage string  `bson:"product_image" json:"productImage"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	Subtotal     float64 `bson:"subtotal" json:"subtotal"`
}

type ShippingAddress struct {
	FullName   string `bson:"full_name" json:"fullName"`
	Phone      string `bson:"phone" json:"phone"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type StatusHistory struct {
	Status    OrderStatus `bson:"status" json:"status"`
	Message   string      `bson:"message" json:"message"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
}

// GenerateOrderNumber assigns a human-readable reference. The uuid suffix keeps
// concurrent creations collision-free.
func (o *Order) GenerateOrderNumber() {
	if o.OrderNumber == "" {
		o.OrderNumber = "ORD-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()
	}
}

// CalculateTotal recomputes the monetary fields from the line items. Client
// supplied subtotal/total are never trusted.
func (o *Order) CalculateTotal() {
	var itemsTotal float64
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].Price * float64(o.Items[i].Quantity)
		itemsTotal += o.Items[i].Subtotal
	}
	o.Subtotal = itemsTotal
	o.TotalAmount = o.Subtotal + o.ShippingCost + o.Tax
}

// AddStatus appends to the history and keeps OrderStatus equal to the newest entry.
func (o *Order) AddStatus(status OrderStatus, message string) {
	o.StatusHistory = append(o.StatusHistory, StatusHistory{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	})
	o.OrderStatus = status
	o.UpdatedAt = time.Now()
}
