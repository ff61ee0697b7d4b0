package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGetListSortBson(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, GetListSortBson("name_asc"))
	assert.Equal(t, bson.D{{Key: "code", Value: -1}}, GetListSortBson("code_desc"))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, GetListSortBson("created_at_desc"))
	// Unknown keys fall back to newest first.
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, GetListSortBson("price_asc"))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, GetListSortBson(""))
}
