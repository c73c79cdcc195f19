package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/weighlanka/backend/internal/models"
)

// AdminCollection defines the interface for admin account operations.
type AdminCollection interface {
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpsertAdmin(ctx context.Context, admin models.Admin) error
}

// MongoAdminCollection implements AdminCollection for MongoDB.
type MongoAdminCollection struct {
	Collection *mongo.Collection
}

func (c *MongoAdminCollection) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := c.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// UpsertAdmin replaces the account with the same username, creating it when
// absent.
func (c *MongoAdminCollection) UpsertAdmin(ctx context.Context, admin models.Admin) error {
	_, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"username": admin.Username},
		bson.M{"$set": bson.M{"password_hash": admin.PasswordHash}},
		options.Update().SetUpsert(true),
	)
	return err
}
