package repositories

import (
	"context"
	"time"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountRepository defines the interface for aggregate count operations.
type CountRepository interface {
	FindCount(ctx context.Context, cred identity.ScopedCredential, itemID string) (*models.CountRecord, error)
	UpsertCount(ctx context.Context, cred identity.ScopedCredential, itemID string, newCount int64) (*models.CountRecord, error)
	FindCountsBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string) (map[string]int64, error)
}

// MongoCountRepository implements CountRepository for MongoDB.
type MongoCountRepository struct {
	collection *mongo.Collection
}

// NewMongoCountRepository creates a new MongoCountRepository.
func NewMongoCountRepository(db *mongo.Database) *MongoCountRepository {
	return &MongoCountRepository{collection: db.Collection("counts")}
}

// FindCount retrieves the count record for an item, or nil if the item has
// never been counted.
func (r *MongoCountRepository) FindCount(ctx context.Context, cred identity.ScopedCredential, itemID string) (*models.CountRecord, error) {
	var record models.CountRecord
	err := r.collection.FindOne(ctx, bson.M{"tenant_id": cred.TenantID, "item_id": itemID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// UpsertCount writes the full count record back, creating it if absent.
// Deliberately a whole-document replace rather than an atomic $inc: the
// caller computes the clamped value and the write is last-writer-wins.
func (r *MongoCountRepository) UpsertCount(ctx context.Context, cred identity.ScopedCredential, itemID string, newCount int64) (*models.CountRecord, error) {
	record := &models.CountRecord{
		TenantID:  cred.TenantID,
		ItemID:    itemID,
		Count:     newCount,
		UpdatedAt: time.Now(),
	}
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"tenant_id": cred.TenantID, "item_id": itemID},
		record,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindCountsBatch retrieves counts for the given items in one query. Items
// with no record are omitted; callers treat them as zero.
func (r *MongoCountRepository) FindCountsBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string) (map[string]int64, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"tenant_id": cred.TenantID,
		"item_id":   bson.M{"$in": itemIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CountRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(records))
	for _, record := range records {
		counts[record.ItemID] = record.Count
	}
	return counts, nil
}
