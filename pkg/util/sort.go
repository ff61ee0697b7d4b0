package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// GetListSortBson maps a query sort token like "name_asc" or
// "created_at_desc" to a sort document. Unknown keys fall back to creation
// time, newest first.
func GetListSortBson(sort string) bson.D {
	key := strings.TrimSuffix(strings.TrimSuffix(sort, "_asc"), "_desc")
	switch key {
	case "name", "code", "created_at", "modified_at":
	default:
		key = "created_at"
	}

	value := -1
	if strings.HasSuffix(sort, "_asc") {
		value = 1
	}
	return bson.D{{Key: key, Value: value}}
}
