package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snaptext/snaptext-backend/internal/database"
	"github.com/snaptext/snaptext-backend/internal/models"
)

const recognitionsCollection = "recognitions"

// EnsureRecognitionIndexes configures indexes for the recognitions
// collection. Called on startup from main after Mongo has connected.
func EnsureRecognitionIndexes(ctx context.Context) error {
	if database.MongoDB == nil {
		return nil
	}
	col := database.MongoDB.Collection(recognitionsCollection)

	// Compound index on (account_id, created_at) to support per-account
	// newest-first history queries.
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_account_created"),
	}

	_, err := col.Indexes().CreateOne(ctx, model)
	return err
}

// recognitionInserter is the single Mongo call Record depends on.
// *mongo.Collection satisfies it.
type recognitionInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// HistoryService keeps a record of completed recognitions in MongoDB.
// Writes are best-effort: a failure is logged, never surfaced to the OCR
// caller. The uploaded image itself is never stored. A zero HistoryService
// writes to the shared database from internal/database.
type HistoryService struct {
	records recognitionInserter
}

func (h *HistoryService) recordsCollection() recognitionInserter {
	if h.records != nil {
		return h.records
	}
	if database.MongoDB != nil {
		return database.MongoDB.Collection(recognitionsCollection)
	}
	return nil
}

// Record persists one completed recognition.
func (h *HistoryService) Record(ctx context.Context, rec models.RecognitionRecord) {
	col := h.recordsCollection()
	if col == nil {
		return
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := col.InsertOne(ctx, rec); err != nil {
		log.Printf("⚠️  Failed to record recognition: %v", err)
	}
}

// Recent returns the account's newest recognitions, newest first.
func (h *HistoryService) Recent(ctx context.Context, accountID string, limit int64) ([]models.RecognitionRecord, error) {
	if database.MongoDB == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	col := database.MongoDB.Collection(recognitionsCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := col.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.RecognitionRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Global history service instance
var History = &HistoryService{}
