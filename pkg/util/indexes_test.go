package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUniqueIndexes(t *testing.T) {
	byName := map[string]indexDefinition{}
	for _, def := range uniqueIndexes() {
		require.NotNil(t, def.Index.Options, def.Collection)
		require.NotNil(t, def.Index.Options.Name, def.Collection)
		require.NotNil(t, def.Index.Options.Unique, *def.Index.Options.Name)
		assert.True(t, *def.Index.Options.Unique, *def.Index.Options.Name)
		byName[*def.Index.Options.Name] = def
	}

	t.Run("master data dedupes on type and slug", func(t *testing.T) {
		def, ok := byName["type_slug_unique"]
		require.True(t, ok)
		assert.Equal(t, "MasterData", def.Collection)
		assert.Equal(t, bson.D{{Key: "type", Value: 1}, {Key: "slug", Value: 1}}, def.Index.Keys)
	})

	t.Run("user emails unique", func(t *testing.T) {
		def, ok := byName["email_unique"]
		require.True(t, ok)
		assert.Equal(t, "AdminUser", def.Collection)
		assert.Equal(t, bson.D{{Key: "email", Value: 1}}, def.Index.Keys)
	})

	t.Run("every category code path indexed", func(t *testing.T) {
		for _, detail := range []string{"base_detail", "stone_detail", "accessory_detail", "others_detail"} {
			def, ok := byName[detail+"_code_unique"]
			require.True(t, ok, detail)
			assert.Equal(t, "Product", def.Collection)
			assert.Equal(t, bson.D{{Key: detail + ".code", Value: 1}}, def.Index.Keys)
			// partial on a non-empty code so categories without one coexist
			assert.NotNil(t, def.Index.Options.PartialFilterExpression, detail)
		}
	})
}
