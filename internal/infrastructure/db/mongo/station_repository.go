package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

const stationsCollection = "stations"

type StationRepository struct {
	coll *mongo.Collection
}

func NewStationRepository(db *mongo.Database) *StationRepository {
	return &StationRepository{coll: db.Collection(stationsCollection)}
}

type mongoStation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Code      string             `bson:"code"`
	Active    bool               `bson:"active"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *StationRepository) List(ctx context.Context) ([]domain.Station, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer cur.Close(ctx)

	var stations []domain.Station
	for cur.Next(ctx) {
		var ms mongoStation
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode station: %w", err)
		}
		stations = append(stations, *ms.toDomain())
	}
	return stations, cur.Err()
}

func (r *StationRepository) FindByCode(ctx context.Context, code string) (*domain.Station, error) {
	var ms mongoStation
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStationNotFound
		}
		return nil, fmt.Errorf("find station: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *StationRepository) CountByStatus(ctx context.Context) (total, active int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err = r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, fmt.Errorf("count stations: %w", err)
	}
	active, err = r.coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return 0, 0, fmt.Errorf("count active stations: %w", err)
	}
	return total, active, nil
}

func (ms mongoStation) toDomain() *domain.Station {
	return &domain.Station{
		ID:        ms.ID.Hex(),
		Name:      ms.Name,
		Code:      ms.Code,
		Active:    ms.Active,
		CreatedAt: unixToTime(ms.CreatedAt),
	}
}
