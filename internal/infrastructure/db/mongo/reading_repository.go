package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

const readingsCollection = "readings"

type ReadingRepository struct {
	coll *mongo.Collection
}

func NewReadingRepository(db *mongo.Database) *ReadingRepository {
	return &ReadingRepository{coll: db.Collection(readingsCollection)}
}

type mongoReading struct {
	ID          string  `bson:"_id"`
	StationCode string  `bson:"station_code"`
	Voltage     float64 `bson:"voltage"`
	Current     float64 `bson:"current"`
	Power       float64 `bson:"power"`
	CreatedAt   int64   `bson:"created_at"`
}

func (r *ReadingRepository) Insert(ctx context.Context, reading *domain.Reading) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReading{
		ID:          reading.ID,
		StationCode: reading.StationCode,
		Voltage:     reading.Voltage,
		Current:     reading.Current,
		Power:       reading.Power,
		CreatedAt:   reading.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateReading
		}
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

// List returns readings newest first. A non-empty stationCode narrows the
// result to that station.
func (r *ReadingRepository) List(ctx context.Context, stationCode string) ([]domain.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if stationCode != "" {
		filter["station_code"] = stationCode
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer cur.Close(ctx)

	return decodeReadings(ctx, cur)
}

// LatestPerStation groups by station code and keeps each group's most recent
// document.
func (r *ReadingRepository) LatestPerStation(ctx context.Context) ([]domain.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$station_code"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$doc"}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("latest readings: %w", err)
	}
	defer cur.Close(ctx)

	return decodeReadings(ctx, cur)
}

func decodeReadings(ctx context.Context, cur *mongo.Cursor) ([]domain.Reading, error) {
	var readings []domain.Reading
	for cur.Next(ctx) {
		var mr mongoReading
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode reading: %w", err)
		}
		readings = append(readings, domain.Reading{
			ID:          mr.ID,
			StationCode: mr.StationCode,
			Voltage:     mr.Voltage,
			Current:     mr.Current,
			Power:       mr.Power,
			CreatedAt:   time.Unix(mr.CreatedAt, 0).UTC(),
		})
	}
	return readings, cur.Err()
}
