package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sugarsphere/sweetshop-api/models"
)

// In-memory implementations backing the test suites. They honor the same
// contracts as the Mongo repositories (ErrNotFound, newest-first order sort,
// one cart per user).

type MemorySweetRepository struct {
	mu     sync.RWMutex
	sweets map[string]models.Sweet
}

func NewMemorySweetRepository() *MemorySweetRepository {
	return &MemorySweetRepository{sweets: make(map[string]models.Sweet)}
}

func (r *MemorySweetRepository) FindAll(_ context.Context) ([]models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *MemorySweetRepository) FindByID(_ context.Context, id string) (*models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sweets[id]; ok {
		return &s, nil
	}
	return nil, ErrNotFound
}

func (r *MemorySweetRepository) FindByNumericID(_ context.Context, id int) (*models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sweets {
		if s.NumericID == id && id != 0 {
			sweet := s
			return &sweet, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemorySweetRepository) SearchByNameOrCategory(_ context.Context, term string) ([]models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term = strings.ToLower(term)
	var out []models.Sweet
	for _, s := range r.sweets {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Category), term) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySweetRepository) FindByCategory(_ context.Context, category string) ([]models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Sweet
	for _, s := range r.sweets {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySweetRepository) FindByPriceRange(_ context.Context, minPrice, maxPrice float64) ([]models.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Sweet
	for _, s := range r.sweets {
		if s.Price >= minPrice && s.Price <= maxPrice {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySweetRepository) Insert(_ context.Context, sweet *models.Sweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sweet.ID.IsZero() {
		sweet.ID = primitive.NewObjectID()
	}
	r.sweets[sweet.ID.Hex()] = *sweet
	return nil
}

func (r *MemorySweetRepository) Update(_ context.Context, sweet *models.Sweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sweets[sweet.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.sweets[sweet.ID.Hex()] = *sweet
	return nil
}

func (r *MemorySweetRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sweets[id.Hex()]; !ok {
		return ErrNotFound
	}
	delete(r.sweets, id.Hex())
	return nil
}

type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart // keyed by user id
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]models.Cart)}
}

func (r *MemoryCartRepository) FindByUserID(_ context.Context, userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.carts[userID]; ok {
		cart := c
		cart.Items = append([]models.CartItem(nil), c.Items...)
		return &cart, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryCartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = stored
	return nil
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) Insert(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID.Hex()] = *order
	return nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.orders[order.ID.Hex()] = *order
	return nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.orders[id]; ok {
		return &o, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryOrderRepository) FindByUserID(_ context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryOrderRepository) FindAll(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.users[user.ID.Hex()] = *user
	return nil
}
