package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weighlanka/backend/internal/models"
)

// MachineCollection defines the interface for machine data operations.
type MachineCollection interface {
	InsertMachine(ctx context.Context, machine models.Machine) (models.Machine, error)
	FindMachines(ctx context.Context) ([]models.Machine, error)
	FindMachineByID(ctx context.Context, id string) (*models.Machine, error)
	FindMachinesByCustomerID(ctx context.Context, customerID string) ([]models.Machine, error)
	UpdateMachine(ctx context.Context, id string, machine models.Machine) error
	DeleteMachine(ctx context.Context, id string) error
}

// MongoMachineCollection implements MachineCollection for MongoDB.
type MongoMachineCollection struct {
	Collection *mongo.Collection
}

func (c *MongoMachineCollection) InsertMachine(ctx context.Context, machine models.Machine) (models.Machine, error) {
	if machine.ID.IsZero() {
		machine.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, machine); err != nil {
		return models.Machine{}, err
	}
	return machine, nil
}

func (c *MongoMachineCollection) FindMachines(ctx context.Context) ([]models.Machine, error) {
	return c.findMachines(ctx, bson.M{})
}

func (c *MongoMachineCollection) FindMachinesByCustomerID(ctx context.Context, customerID string) ([]models.Machine, error) {
	return c.findMachines(ctx, bson.M{"customer_id": customerID})
}

func (c *MongoMachineCollection) findMachines(ctx context.Context, filter bson.M) ([]models.Machine, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	machines := []models.Machine{}
	if err := cursor.All(ctx, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

func (c *MongoMachineCollection) FindMachineByID(ctx context.Context, id string) (*models.Machine, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid machine ID: %w", err)
	}

	var machine models.Machine
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&machine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &machine, nil
}

func (c *MongoMachineCollection) UpdateMachine(ctx context.Context, id string, machine models.Machine) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid machine ID: %w", err)
	}

	machine.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, machine)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *MongoMachineCollection) DeleteMachine(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid machine ID: %w", err)
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
