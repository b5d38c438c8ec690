package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sugarsphere/sweetshop-api/models"
)

type SweetRepository interface {
	FindAll(ctx context.Context) ([]models.Sweet, error)
	FindByID(ctx context.Context, id string) (*models.Sweet, error)
	FindByNumericID(ctx context.Context, id int) (*models.Sweet, error)
	SearchByNameOrCategory(ctx context.Context, term string) ([]models.Sweet, error)
	FindByCategory(ctx context.Context, category string) ([]models.Sweet, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Sweet, error)
	Insert(ctx context.Context, sweet *models.Sweet) error
	Update(ctx context.Context, sweet *models.Sweet) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoSweetRepository struct {
	collection *mongo.Collection
}

func NewMongoSweetRepository(db *mongo.Database) SweetRepository {
	return &mongoSweetRepository{collection: db.Collection("sweets")}
}

func (r *mongoSweetRepository) FindAll(ctx context.Context) ([]models.Sweet, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoSweetRepository) FindByID(ctx context.Context, id string) (*models.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var sweet models.Sweet
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sweet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sweet: %w", err)
	}
	return &sweet, nil
}

func (r *mongoSweetRepository) FindByNumericID(ctx context.Context, id int) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := r.collection.FindOne(ctx, bson.M{"numeric_id": id}).Decode(&sweet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sweet by numeric id: %w", err)
	}
	return &sweet, nil
}

func (r *mongoSweetRepository) SearchByNameOrCategory(ctx context.Context, term string) ([]models.Sweet, error) {
	pattern := primitive.Regex{Pattern: term, Options: "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"category": pattern},
	}})
}

func (r *mongoSweetRepository) FindByCategory(ctx context.Context, category string) ([]models.Sweet, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *mongoSweetRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Sweet, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}})
}

func (r *mongoSweetRepository) Insert(ctx context.Context, sweet *models.Sweet) error {
	if sweet.ID.IsZero() {
		sweet.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, sweet); err != nil {
		return fmt.Errorf("failed to insert sweet: %w", err)
	}
	return nil
}

func (r *mongoSweetRepository) Update(ctx context.Context, sweet *models.Sweet) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": sweet.ID}, sweet)
	if err != nil {
		return fmt.Errorf("failed to update sweet: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete sweet: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSweetRepository) find(ctx context.Context, filter bson.M) ([]models.Sweet, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query sweets: %w", err)
	}
	defer cursor.Close(ctx)

	var sweets []models.Sweet
	if err := cursor.All(ctx, &sweets); err != nil {
		return nil, fmt.Errorf("failed to decode sweets: %w", err)
	}
	return sweets, nil
}
