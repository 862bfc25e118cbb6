package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slide is one announcement carousel item shown on the landing page.
type Slide struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Text     string             `bson:"text,omitempty" json:"text,omitempty"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
	IsActive bool               `bson:"isActive" json:"isActive"`
	Order    int                `bson:"order" json:"order"`
}
