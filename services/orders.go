package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/payment"
	"github.com/sugarsphere/sweetshop-api/repository"
)

// PaymentVerificationRequest is the checkout callback payload: the three
// gateway tokens plus the order the frontend assembled.
type PaymentVerificationRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`

	Items           []models.OrderItem     `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`

	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Tax          float64 `json:"tax"`
	TotalAmount  float64 `json:"totalAmount"`
}

// RevenueStats aggregates over the whole orders collection.
type RevenueStats struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TodayRevenue    float64 `json:"todayRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
	PendingOrders   int     `json:"pendingOrders"`
}

type OrderService struct {
	orders  repository.OrderRepository
	carts   repository.CartRepository
	sweets  repository.SweetRepository
	gateway payment.Gateway
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, sweets repository.SweetRepository, gateway payment.Gateway) *OrderService {
	return &OrderService{orders: orders, carts: carts, sweets: sweets, gateway: gateway}
}

// CreateGatewayOrder reserves the amount with the payment provider.
func (s *OrderService) CreateGatewayOrder(ctx context.Context, amount float64) (*payment.GatewayOrder, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.gateway.CreateOrder(ctx, amount)
}

// VerifyAndCreateOrder is the order placement workflow. The order write is the
// authoritative step: once the signature checks out and the order is
// persisted, stock decrement and cart clearing are best-effort side effects
// that log failures but never undo the order.
func (s *OrderService) VerifyAndCreateOrder(ctx context.Context, user *models.User, req PaymentVerificationRequest) (*models.Order, error) {
	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return nil, ErrPaymentVerification
	}

	now := time.Now()
	order := &models.Order{
		UserID:            user.ID.Hex(),
		Items:             req.Items,
		ShippingAddress:   req.ShippingAddress,
		ShippingCost:      req.ShippingCost,
		Tax:               req.Tax,
		PaymentMethod:     "razorpay",
		PaymentStatus:     models.PaymentStatusCompleted,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	order.GenerateOrderNumber()
	order.CalculateTotal()
	order.AddStatus(models.OrderStatusConfirmed, "Order confirmed and payment received")

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	// Best-effort stock bookkeeping; a failure here must not fail the order.
	for _, item := range order.Items {
		if err := s.decrementStockClamped(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("⚠️ failed to update stock for sweet %s: %v", item.ProductID, err)
		}
	}

	// Best-effort cart clearing; a missing cart is fine.
	if err := s.clearUserCart(ctx, order.UserID); err != nil {
		log.Printf("⚠️ failed to clear cart for user %s: %v", order.UserID, err)
	}

	return order, nil
}

func (s *OrderService) decrementStockClamped(ctx context.Context, productID string, quantity int) error {
	sweet, err := resolveSweet(ctx, s.sweets, productID)
	if err != nil {
		return err
	}
	sweet.Quantity -= quantity
	if sweet.Quantity < 0 {
		sweet.Quantity = 0
	}
	return s.sweets.Update(ctx, sweet)
}

func (s *OrderService) clearUserCart(ctx context.Context, userID string) error {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	cart.Items = []models.CartItem{}
	cart.CalculateTotals()
	return s.carts.Save(ctx, cart)
}

func (s *OrderService) GetUserOrders(ctx context.Context, user *models.User) ([]models.Order, error) {
	return s.orders.FindByUserID(ctx, user.ID.Hex())
}

// GetOrderByID enforces ownership: only the user the order belongs to may read
// it through this path.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID string, user *models.User) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	if order.UserID != user.ID.Hex() {
		return nil, ErrUnauthorized
	}
	return order, nil
}

// CancelOrder is only allowed while the order is pending or confirmed. A
// completed payment is marked refunded; the gateway refund itself is handled
// out of band.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string, user *models.User) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID, user)
	if err != nil {
		return nil, err
	}

	if order.OrderStatus != models.OrderStatusPending && order.OrderStatus != models.OrderStatusConfirmed {
		return nil, ErrOrderNotCancellable
	}

	order.AddStatus(models.OrderStatusCancelled, "Order cancelled by user")
	if order.PaymentStatus == models.PaymentStatusCompleted {
		order.PaymentStatus = models.PaymentStatusRefunded
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

// UpdateOrderStatus sets the status unconditionally; there is no transition
// check on the admin path.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status, note string) (*models.Order, error) {
	orderStatus, err := parseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}

	if note == "" {
		note = "Order status updated to " + status
	}
	order.AddStatus(orderStatus, note)

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// GetRevenueStats walks all orders: revenue counts completed payments only,
// pending counts orders still in pending or confirmed state.
func (s *OrderService) GetRevenueStats(ctx context.Context) (*RevenueStats, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &RevenueStats{TotalOrders: len(orders)}
	today := time.Now()

	for _, order := range orders {
		if order.PaymentStatus == models.PaymentStatusCompleted {
			stats.CompletedOrders++
			stats.TotalRevenue += order.TotalAmount
			if sameDay(order.CreatedAt, today) {
				stats.TodayRevenue += order.TotalAmount
			}
		}
		if order.OrderStatus == models.OrderStatusPending || order.OrderStatus == models.OrderStatusConfirmed {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
