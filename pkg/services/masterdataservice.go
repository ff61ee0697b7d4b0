package services

import (
	"context"
	"strings"
	"time"

	slug2 "github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jarin-io/api/internal/common"
	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/util"
)

// MasterDataService manages the reference/lookup records behind every
// reference field (metal, stone name, shape, cutting, quality, clarity,
// item type).
type MasterDataService interface {
	ListByType(ctx context.Context, t models.MasterType) ([]models.MasterData, error)
	Options(ctx context.Context, t models.MasterType) ([]models.SelectOption, error)
	EnsureMaster(ctx context.Context, t models.MasterType, name string) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MasterData, error)
}

type masterDataService struct {
	masterCollection *mongo.Collection
}

func NewMasterDataService() MasterDataService {
	return &masterDataService{
		masterCollection: util.GetCollection(util.DB, "MasterData"),
	}
}

func (s *masterDataService) ListByType(ctx context.Context, t models.MasterType) ([]models.MasterData, error) {
	find := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := s.masterCollection.Find(ctx, bson.M{"type": t}, find)
	if err != nil {
		return nil, err
	}

	var masters []models.MasterData
	if err = cursor.All(ctx, &masters); err != nil {
		return nil, err
	}

	return masters, nil
}

func (s *masterDataService) Options(ctx context.Context, t models.MasterType) ([]models.SelectOption, error) {
	masters, err := s.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}

	opts := make([]models.SelectOption, 0, len(masters))
	for _, m := range masters {
		opts = append(opts, m.Option())
	}

	return opts, nil
}

// EnsureMaster finds or creates the master record for a free-text name and
// returns its id. The upsert keys on (type, slug), the collection's unique
// index, so calling it twice for the same name never creates a duplicate and
// a failed save can simply be retried.
func (s *masterDataService) EnsureMaster(ctx context.Context, t models.MasterType, name string) (primitive.ObjectID, error) {
	name = strings.TrimSpace(name)
	if common.IsEmptyString(name) {
		return primitive.NilObjectID, apperror.NewValidation(string(t), "name is required")
	}

	filter := bson.M{"type": t, "slug": slug2.Make(strings.ToLower(name))}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"type":       t,
			"name":       name,
			"slug":       slug2.Make(strings.ToLower(name)),
			"created_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var master models.MasterData
	if err := s.masterCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&master); err != nil {
		return primitive.NilObjectID, err
	}

	return master.ID, nil
}

func (s *masterDataService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MasterData, error) {
	var master models.MasterData
	err := s.masterCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&master)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "master record"}
		}
		return nil, err
	}

	return &master, nil
}
