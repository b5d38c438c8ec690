package services

import (
	"context"
	"errors"
	"time"

	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

type CartService struct {
	carts  repository.CartRepository
	sweets repository.SweetRepository
}

func NewCartService(carts repository.CartRepository, sweets repository.SweetRepository) *CartService {
	return &CartService{carts: carts, sweets: sweets}
}

// GetOrCreate returns the user's cart, creating and persisting an empty one on
// first access.
func (s *CartService) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		if cart.Items == nil {
			cart.Items = []models.CartItem{}
		}
		cart.CalculateTotals()
		return cart, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts quantity units of a sweet into the cart. Adding a sweet that is
// already present increases that line's quantity instead of appending a second
// line. The item stores a snapshot of the sweet's name, image and price.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	sweet, err := resolveSweet(ctx, s.sweets, productID)
	if err != nil {
		return nil, err
	}
	// Always key the line on the canonical _id, even when the caller used the
	// legacy numeric id.
	canonicalID := sweet.ID.Hex()

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == canonicalID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].CalculateSubtotal()
			found = true
			break
		}
	}
	if !found {
		item := models.CartItem{
			ProductID:    canonicalID,
			ProductName:  sweet.Name,
			ProductImage: sweet.ImageURL,
			Price:        sweet.Price,
			Quantity:     quantity,
		}
		item.CalculateSubtotal()
		cart.Items = append(cart.Items, item)
	}

	cart.CalculateTotals()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem overwrites the quantity of an existing line.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.Items[i].CalculateSubtotal()
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	cart.CalculateTotals()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the matching line; removing an absent product is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	cart.CalculateTotals()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart but keeps the document around.
func (s *CartService) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = []models.CartItem{}
	cart.CalculateTotals()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
