package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarsphere/sweetshop-api/models"
	"github.com/sugarsphere/sweetshop-api/repository"
)

func newSweetFixture(t *testing.T) *SweetService {
	t.Helper()
	return NewSweetService(repository.NewMemorySweetRepository())
}

func TestCreateSweet_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	cases := []struct {
		name  string
		input SweetInput
	}{
		{"missing name", SweetInput{Category: "chocolate", Price: 5, Quantity: 1}},
		{"missing category", SweetInput{Name: "Fudge", Price: 5, Quantity: 1}},
		{"zero price", SweetInput{Name: "Fudge", Category: "chocolate", Price: 0, Quantity: 1}},
		{"negative quantity", SweetInput{Name: "Fudge", Category: "chocolate", Price: 5, Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestGetSweet_ResolvesBothIdentifierSchemes(t *testing.T) {
	ctx := context.Background()
	sweets := repository.NewMemorySweetRepository()
	svc := NewSweetService(sweets)

	sweet := &models.Sweet{NumericID: 7, Name: "Ladoo", Category: "traditional", Price: 3, Quantity: 12}
	require.NoError(t, sweets.Insert(ctx, sweet))

	byPK, err := svc.Get(ctx, sweet.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, sweet.ID, byPK.ID)

	byNumeric, err := svc.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, sweet.ID, byNumeric.ID)

	_, err = svc.Get(ctx, "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch_HonorsExactlyOnePredicate(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	_, err := svc.Create(ctx, SweetInput{Name: "Dark Truffle", Category: "chocolate", Price: 12, Quantity: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SweetInput{Name: "Gummy Bear", Category: "gummy", Price: 2, Quantity: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SweetInput{Name: "Chocolate Bar", Category: "chocolate", Price: 4, Quantity: 5})
	require.NoError(t, err)

	min, max := 1.0, 5.0

	// Term wins over category and price range.
	results, err := svc.Search(ctx, "truffle", "gummy", &min, &max)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dark Truffle", results[0].Name)

	// Category wins over price range.
	results, err = svc.Search(ctx, "", "chocolate", &min, &max)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Price range alone.
	results, err = svc.Search(ctx, "", "", &min, &max)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// No predicate returns the full list.
	results, err = svc.Search(ctx, "", "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_TermMatchesNameOrCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	_, err := svc.Create(ctx, SweetInput{Name: "Mint Crunch", Category: "chocolate", Price: 6, Quantity: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SweetInput{Name: "Caramel Cube", Category: "mint", Price: 6, Quantity: 5})
	require.NoError(t, err)

	results, err := svc.Search(ctx, "mint", "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPurchase_DecrementsStockAndFailsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	sweet, err := svc.Create(ctx, SweetInput{Name: "Barfi", Category: "traditional", Price: 8, Quantity: 1})
	require.NoError(t, err)

	bought, err := svc.Purchase(ctx, sweet.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, bought.Quantity)

	_, err = svc.Purchase(ctx, sweet.ID.Hex())
	assert.ErrorIs(t, err, ErrOutOfStock)

	// Stock stays at zero after the failed purchase.
	after, err := svc.Get(ctx, sweet.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, after.Quantity)
}

func TestRestock_RejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	sweet, err := svc.Create(ctx, SweetInput{Name: "Barfi", Category: "traditional", Price: 8, Quantity: 2})
	require.NoError(t, err)

	_, err = svc.Restock(ctx, sweet.ID.Hex(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.Restock(ctx, sweet.ID.Hex(), -5)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	restocked, err := svc.Restock(ctx, sweet.ID.Hex(), 10)
	require.NoError(t, err)
	assert.Equal(t, 12, restocked.Quantity)
}

func TestDecrementStock_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	sweet, err := svc.Create(ctx, SweetInput{Name: "Barfi", Category: "traditional", Price: 8, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.DecrementStock(ctx, sweet.ID.Hex(), 5))

	after, err := svc.Get(ctx, sweet.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, after.Quantity)
}

func TestUpdateAndDeleteSweet(t *testing.T) {
	ctx := context.Background()
	svc := newSweetFixture(t)

	sweet, err := svc.Create(ctx, SweetInput{Name: "Barfi", Category: "traditional", Price: 8, Quantity: 2})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, sweet.ID.Hex(), SweetInput{
		Name: "Kaju Barfi", Category: "traditional", Price: 9, Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kaju Barfi", updated.Name)
	assert.Equal(t, 9.0, updated.Price)

	require.NoError(t, svc.Delete(ctx, sweet.ID.Hex()))
	_, err = svc.Get(ctx, sweet.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, sweet.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
