package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a weighing-scale customer site.
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customer_name" json:"customerName"`
	Address      string             `bson:"address" json:"address"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email" json:"email"`
	Location     string             `bson:"location" json:"location"`
}
