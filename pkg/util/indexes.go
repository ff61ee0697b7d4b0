package util

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexDefinition struct {
	Collection string
	Index      mongo.IndexModel
}

// uniqueIndexes lists the indexes the write paths rely on. The master-data
// upsert dedupes on (type, slug); product codes and user emails surface
// duplicate-key errors as conflicts. Product codes live under the detail
// sub-document of their category, so each category path carries its own
// partial index.
func uniqueIndexes() []indexDefinition {
	defs := []indexDefinition{
		{
			Collection: "MasterData",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "slug", Value: 1}},
				Options: options.Index().SetName("type_slug_unique").SetUnique(true),
			},
		},
		{
			Collection: "AdminUser",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
	}

	for _, detail := range []string{"base_detail", "stone_detail", "accessory_detail", "others_detail"} {
		field := detail + ".code"
		defs = append(defs, indexDefinition{
			Collection: "Product",
			Index: mongo.IndexModel{
				Keys: bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetName(detail + "_code_unique").SetUnique(true).
					SetPartialFilterExpression(bson.M{field: bson.M{"$gt": ""}}),
			},
		})
	}

	return defs
}

// EnsureIndexes creates the unique indexes at startup. CreateOne is a no-op
// for an index that already exists with the same definition; creation continues
// past individual failures so one bad collection does not block the rest.
func EnsureIndexes(ctx context.Context) error {
	failed := 0
	for _, def := range uniqueIndexes() {
		name, err := GetCollection(DB, def.Collection).Indexes().CreateOne(ctx, def.Index)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				Log.WithError(err).Warnf("cannot create unique index on %s over duplicate data", def.Collection)
			} else {
				Log.WithError(err).Errorf("failed to create index on %s", def.Collection)
			}
			failed++
			continue
		}
		Log.Infof("ensured index %s on %s", name, def.Collection)
	}

	if failed > 0 {
		return fmt.Errorf("%d indexes failed to create", failed)
	}
	return nil
}
