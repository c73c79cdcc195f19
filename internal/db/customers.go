package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weighlanka/backend/internal/models"
)

// CustomerCollection defines the interface for customer data operations.
type CustomerCollection interface {
	InsertCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	FindCustomers(ctx context.Context) ([]models.Customer, error)
	FindCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// MongoCustomerCollection implements CustomerCollection for MongoDB.
type MongoCustomerCollection struct {
	Collection *mongo.Collection
}

func (c *MongoCustomerCollection) InsertCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (c *MongoCustomerCollection) FindCustomers(ctx context.Context) ([]models.Customer, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *MongoCustomerCollection) FindCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}

	var customer models.Customer
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (c *MongoCustomerCollection) UpdateCustomer(ctx context.Context, id string, customer models.Customer) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid customer ID: %w", err)
	}

	customer.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, customer)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *MongoCustomerCollection) DeleteCustomer(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid customer ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
