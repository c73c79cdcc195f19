package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weighlanka/backend/internal/models"
)

// ServiceRecordCollection defines the interface for service record
// operations. Date arguments are "YYYY-MM-DD" strings, matching the stored
// representation.
type ServiceRecordCollection interface {
	InsertServiceRecord(ctx context.Context, record models.ServiceRecord) (models.ServiceRecord, error)
	FindServiceRecords(ctx context.Context) ([]models.ServiceRecord, error)
	FindServiceRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error)
	FindServiceRecordsByCustomerID(ctx context.Context, customerID string) ([]models.ServiceRecord, error)
	FindServiceRecordsByMachineID(ctx context.Context, machineID string) ([]models.ServiceRecord, error)
	FindServiceRecordsByServiceDate(ctx context.Context, date string) ([]models.ServiceRecord, error)
	FindServiceRecordsByNextServiceDate(ctx context.Context, date string) ([]models.ServiceRecord, error)
	UpdateServiceRecord(ctx context.Context, id string, record models.ServiceRecord) error
	DeleteServiceRecord(ctx context.Context, id string) error
}

// MongoServiceRecordCollection implements ServiceRecordCollection for MongoDB.
type MongoServiceRecordCollection struct {
	Collection *mongo.Collection
}

func (c *MongoServiceRecordCollection) InsertServiceRecord(ctx context.Context, record models.ServiceRecord) (models.ServiceRecord, error) {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, record); err != nil {
		return models.ServiceRecord{}, err
	}
	return record, nil
}

func (c *MongoServiceRecordCollection) FindServiceRecords(ctx context.Context) ([]models.ServiceRecord, error) {
	return c.findRecords(ctx, bson.M{})
}

func (c *MongoServiceRecordCollection) FindServiceRecordsByCustomerID(ctx context.Context, customerID string) ([]models.ServiceRecord, error) {
	return c.findRecords(ctx, bson.M{"customer_id": customerID})
}

func (c *MongoServiceRecordCollection) FindServiceRecordsByMachineID(ctx context.Context, machineID string) ([]models.ServiceRecord, error) {
	return c.findRecords(ctx, bson.M{"machine_id": machineID})
}

func (c *MongoServiceRecordCollection) FindServiceRecordsByServiceDate(ctx context.Context, date string) ([]models.ServiceRecord, error) {
	return c.findRecords(ctx, bson.M{"service_date": date})
}

func (c *MongoServiceRecordCollection) FindServiceRecordsByNextServiceDate(ctx context.Context, date string) ([]models.ServiceRecord, error) {
	return c.findRecords(ctx, bson.M{"next_service_date": date})
}

func (c *MongoServiceRecordCollection) findRecords(ctx context.Context, filter bson.M) ([]models.ServiceRecord, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.ServiceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *MongoServiceRecordCollection) FindServiceRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid service record ID: %w", err)
	}

	var record models.ServiceRecord
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (c *MongoServiceRecordCollection) UpdateServiceRecord(ctx context.Context, id string, record models.ServiceRecord) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid service record ID: %w", err)
	}

	record.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, record)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *MongoServiceRecordCollection) DeleteServiceRecord(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid service record ID: %w", err)
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
