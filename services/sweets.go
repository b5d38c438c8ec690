package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

// SweetInput carries the admin-supplied fields for create and update.
type SweetInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"imageUrl"`
}

func (in SweetInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidArgument)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidArgument)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	return nil
}

type SweetService struct {
	sweets repository.SweetRepository
}

func NewSweetService(sweets repository.SweetRepository) *SweetService {
	return &SweetService{sweets: sweets}
}

// resolveSweet looks a sweet up by its Mongo _id first and falls back to the
// legacy numeric catalog id. Both identifier schemes are still in the wild.
func resolveSweet(ctx context.Context, sweets repository.SweetRepository, id string) (*models.Sweet, error) {
	sweet, err := sweets.FindByID(ctx, id)
	if err == nil {
		return sweet, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if numericID, convErr := strconv.Atoi(id); convErr == nil {
		sweet, err = sweets.FindByNumericID(ctx, numericID)
		if err == nil {
			return sweet, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: sweet %s", ErrNotFound, id)
}

func (s *SweetService) Create(ctx context.Context, in SweetInput) (*models.Sweet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	sweet := &models.Sweet{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		ImageURL:    in.ImageURL,
	}
	if err := s.sweets.Insert(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

func (s *SweetService) List(ctx context.Context) ([]models.Sweet, error) {
	return s.sweets.FindAll(ctx)
}

// Search honors exactly one predicate, in priority order:
// term > category > price range > none (full list).
func (s *SweetService) Search(ctx context.Context, term, category string, minPrice, maxPrice *float64) ([]models.Sweet, error) {
	switch {
	case term != "":
		return s.sweets.SearchByNameOrCategory(ctx, term)
	case category != "":
		return s.sweets.FindByCategory(ctx, category)
	case minPrice != nil && maxPrice != nil:
		return s.sweets.FindByPriceRange(ctx, *minPrice, *maxPrice)
	default:
		return s.sweets.FindAll(ctx)
	}
}

func (s *SweetService) Get(ctx context.Context, id string) (*models.Sweet, error) {
	return resolveSweet(ctx, s.sweets, id)
}

func (s *SweetService) Update(ctx context.Context, id string, in SweetInput) (*models.Sweet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	sweet, err := resolveSweet(ctx, s.sweets, id)
	if err != nil {
		return nil, err
	}

	sweet.Name = in.Name
	sweet.Category = in.Category
	sweet.Description = in.Description
	sweet.Price = in.Price
	sweet.Quantity = in.Quantity
	sweet.ImageURL = in.ImageURL

	if err := s.sweets.Update(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	sweet, err := resolveSweet(ctx, s.sweets, id)
	if err != nil {
		return err
	}
	return s.sweets.Delete(ctx, sweet.ID)
}

// Purchase removes one unit of stock for a direct storefront buy.
func (s *SweetService) Purchase(ctx context.Context, id string) (*models.Sweet, error) {
	sweet, err := resolveSweet(ctx, s.sweets, id)
	if err != nil {
		return nil, err
	}
	if sweet.Quantity <= 0 {
		return nil, ErrOutOfStock
	}
	sweet.Quantity--
	if err := s.sweets.Update(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

func (s *SweetService) Restock(ctx context.Context, id string, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	sweet, err := resolveSweet(ctx, s.sweets, id)
	if err != nil {
		return nil, err
	}
	sweet.Quantity += quantity
	if err := s.sweets.Update(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

// DecrementStock subtracts amount from the sweet's quantity, clamping at zero.
func (s *SweetService) DecrementStock(ctx context.Context, id string, amount int) error {
	sweet, err := resolveSweet(ctx, s.sweets, id)
	if err != nil {
		return err
	}
	sweet.Quantity -= amount
	if sweet.Quantity < 0 {
		sweet.Quantity = 0
	}
	return s.sweets.Update(ctx, sweet)
}
