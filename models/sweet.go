package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Sweet is a catalog product. NumericID is a legacy identifier kept from the
// pre-migration catalog; lookups accept either it or the Mongo _id.
type Sweet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NumericID   int                `bson:"numeric_id,omitempty" json:"numericId,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
}
