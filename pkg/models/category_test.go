package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarin-io/api/pkg/apperror"
)

func TestParseProductCategory(t *testing.T) {
	t.Run("bare strings", func(t *testing.T) {
		for raw, want := range map[string]ProductCategory{
			"productmaster": CategoryProductMaster,
			"semimount":     CategorySemiMount,
			"stone":         CategoryStone,
			"accessory":     CategoryAccessory,
			"others":        CategoryOthers,
		} {
			got, err := ParseProductCategory(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		got, err := ParseProductCategory("  SemiMount ")
		require.NoError(t, err)
		assert.Equal(t, CategorySemiMount, got)
	})

	t.Run("object with name field", func(t *testing.T) {
		got, err := ParseProductCategory(map[string]any{"name": "stone", "_id": "abc"})
		require.NoError(t, err)
		assert.Equal(t, CategoryStone, got)
	})

	t.Run("unknown value is an error, not a default", func(t *testing.T) {
		_, err := ParseProductCategory("gemstone")
		var catErr *apperror.UnknownCategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, "gemstone", catErr.Value)
	})

	t.Run("object without name field", func(t *testing.T) {
		_, err := ParseProductCategory(map[string]any{"id": 7})
		assert.Error(t, err)
	})
}

func TestParseWeightUnit(t *testing.T) {
	assert.Equal(t, WeightUnitG, ParseWeightUnit("g"))
	assert.Equal(t, WeightUnitCts, ParseWeightUnit("cts"))
	// Anything else falls back to grams.
	assert.Equal(t, WeightUnitG, ParseWeightUnit(""))
	assert.Equal(t, WeightUnitG, ParseWeightUnit("kg"))
}

func TestParseMasterType(t *testing.T) {
	got, ok := ParseMasterType("stone_name")
	assert.True(t, ok)
	assert.Equal(t, MasterStoneName, got)

	_, ok = ParseMasterType("color")
	assert.False(t, ok)
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("507f1f77bcf86cd799439011"))
	assert.False(t, IsObjectID("White Gold"))
	assert.False(t, IsObjectID(""))
	assert.False(t, IsObjectID("507f1f77bcf86cd79943901"))
}
