package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

func newCartFixture(t *testing.T) (*CartService, *SweetService) {
	t.Helper()
	sweets := repository.NewMemorySweetRepository()
	carts := repository.NewMemoryCartRepository()
	return NewCartService(carts, sweets), NewSweetService(sweets)
}

func mustCreateSweet(t *testing.T, svc *SweetService, name string, price float64, quantity int) *models.Sweet {
	t.Helper()
	sweet, err := svc.Create(context.Background(), SweetInput{
		Name:     name,
		Category: "chocolate",
		Price:    price,
		Quantity: quantity,
	})
	require.NoError(t, err)
	return sweet
}

func assertTotalsConsistent(t *testing.T, cart *models.Cart) {
	t.Helper()
	var total float64
	var count int
	for _, item := range cart.Items {
		total += item.Subtotal
		count += item.Quantity
	}
	assert.Equal(t, total, cart.TotalAmount)
	assert.Equal(t, count, cart.ItemCount)
}

func TestGetOrCreate_CreatesEmptyCartOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	carts, _ := newCartFixture(t)

	cart, err := carts.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
	assert.Zero(t, cart.ItemCount)

	// Second access returns the persisted cart, not a new one.
	again, err := carts.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestAddItem_MergesSameProductIntoOneLine(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 2)
	require.NoError(t, err)
	cart, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 40.0, cart.Items[0].Subtotal)
	assertTotalsConsistent(t, cart)
}

func TestAddItem_UnknownSweetFails(t *testing.T) {
	carts, _ := newCartFixture(t)
	_, err := carts.AddItem(context.Background(), "user-1", "no-such-id", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItem_ByNumericIDKeysLineOnCanonicalID(t *testing.T) {
	ctx := context.Background()
	sweets := repository.NewMemorySweetRepository()
	carts := NewCartService(repository.NewMemoryCartRepository(), sweets)

	sweet := &models.Sweet{NumericID: 42, Name: "Toffee", Category: "caramel", Price: 5, Quantity: 10}
	require.NoError(t, sweets.Insert(ctx, sweet))

	cart, err := carts.AddItem(ctx, "user-1", "42", 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, sweet.ID.Hex(), cart.Items[0].ProductID)

	// Adding by the canonical id merges into the same line.
	cart, err = carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartTotals_Scenario(t *testing.T) {
	// 2×ProductA (price 10) + 1×ProductB (price 5) → totalAmount=25, itemCount=3.
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	a := mustCreateSweet(t, sweets, "ProductA", 10, 100)
	b := mustCreateSweet(t, sweets, "ProductB", 5, 100)

	_, err := carts.AddItem(ctx, "user-1", a.ID.Hex(), 2)
	require.NoError(t, err)
	cart, err := carts.AddItem(ctx, "user-1", b.ID.Hex(), 1)
	require.NoError(t, err)

	assert.Equal(t, 25.0, cart.TotalAmount)
	assert.Equal(t, 3, cart.ItemCount)
	assertTotalsConsistent(t, cart)
}

func TestUpdateItem_RejectsQuantityBelowOne(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 3)
	require.NoError(t, err)

	_, err = carts.UpdateItem(ctx, "user-1", sweet.ID.Hex(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Cart unchanged after the rejected update.
	cart, err := carts.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assertTotalsConsistent(t, cart)
}

func TestUpdateItem_MissingItemFails(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.UpdateItem(ctx, "user-1", sweet.ID.Hex(), 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItem_OverwritesQuantity(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 3)
	require.NoError(t, err)
	cart, err := carts.UpdateItem(ctx, "user-1", sweet.ID.Hex(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Items[0].Subtotal)
	assertTotalsConsistent(t, cart)
}

func TestRemoveItem_AbsentProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 1)
	require.NoError(t, err)

	cart, err := carts.RemoveItem(ctx, "user-1", "not-in-cart")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = carts.RemoveItem(ctx, "user-1", sweet.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assertTotalsConsistent(t, cart)
}

func TestClear_EmptiesCartButKeepsIt(t *testing.T) {
	ctx := context.Background()
	carts, sweets := newCartFixture(t)
	sweet := mustCreateSweet(t, sweets, "Fudge", 10, 50)

	_, err := carts.AddItem(ctx, "user-1", sweet.ID.Hex(), 4)
	require.NoError(t, err)

	cart, err := carts.Clear(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
	assert.Zero(t, cart.ItemCount)

	// Same cart document survives the clear.
	again, err := carts.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}
