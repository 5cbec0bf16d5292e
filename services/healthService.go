package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oshomadesse/health-score-api/config"
	"github.com/oshomadesse/health-score-api/models"
)

const (
	recordKeyPrefix = "record:"
	latestRecordKey = "record:latest"
)

// ErrNoRecord is returned when no health record has been stored yet.
var ErrNoRecord = errors.New("no health record stored")

// HealthStore is the persistence gateway for canonical health records,
// keyed by date plus a "latest" sentinel.
type HealthStore interface {
	SaveRecord(ctx context.Context, data models.HealthData) error
	LatestRecord(ctx context.Context) (models.HealthData, error)
}

type storedRecord struct {
	Key       string            `bson:"key"`
	Record    models.HealthData `bson:"record"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

// MongoHealthStore keeps records in the health_records collection, one
// document per key.
type MongoHealthStore struct {
	coll *mongo.Collection
}

func NewMongoHealthStore() *MongoHealthStore {
	return &MongoHealthStore{coll: config.OpenCollection("health_records")}
}

// SaveRecord upserts the dated key, then the latest key. The two writes are
// sequential, not transactional: if the second fails the keys diverge and
// only the returned error tells the caller. Known consistency gap.
func (s *MongoHealthStore) SaveRecord(ctx context.Context, data models.HealthData) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.putRecord(ctx, recordKeyPrefix+data.Date, data); err != nil {
		return err
	}
	return s.putRecord(ctx, latestRecordKey, data)
}

func (s *MongoHealthStore) putRecord(ctx context.Context, key string, data models.HealthData) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "record", Value: data},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx, bson.M{"key": key}, update, opts)
	return err
}

// LatestRecord loads the record behind the latest sentinel. ErrNoRecord
// signals an empty store; anything else is a storage failure.
func (s *MongoHealthStore) LatestRecord(ctx context.Context) (models.HealthData, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc storedRecord
	err := s.coll.FindOne(ctx, bson.M{"key": latestRecordKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.HealthData{}, ErrNoRecord
	}
	if err != nil {
		return models.HealthData{}, err
	}
	return doc.Record, nil
}
