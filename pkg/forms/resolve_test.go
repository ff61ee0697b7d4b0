package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

func TestResolveProductFormStone(t *testing.T) {
	product := models.Product{
		ID:       primitive.NewObjectID(),
		Category: models.CategoryStone,
		Active:   true,
		StoneDetail: &models.StoneDetail{
			ProductName: "Oval Ruby 2ct",
			Code:        "ST-0042",
			StoneName:   "507f1f77bcf86cd799439011",
			Shape:       "507f1f77bcf86cd799439012",
			Size:        "8x6mm",
			Weight:      2.05,
			Unit:        models.WeightUnitCts,
			Color:       "pigeon blood",
			Cutting:     "507f1f77bcf86cd799439013",
			Quality:     "507f1f77bcf86cd799439014",
			Clarity:     "507f1f77bcf86cd799439015",
			Description: "heated",
		},
	}

	form, err := ResolveProductForm(product)
	require.NoError(t, err)

	stoneForm, ok := form.(models.StoneDiamondForm)
	require.True(t, ok)
	assert.Equal(t, models.CategoryStone, stoneForm.FormCategory())
	assert.Equal(t, "Oval Ruby 2ct", stoneForm.ProductName)
	assert.Equal(t, "507f1f77bcf86cd799439011", stoneForm.StoneName)
	assert.Equal(t, "2.05", stoneForm.Weight)
	assert.Equal(t, models.WeightUnitCts, stoneForm.Unit)
	assert.Equal(t, "pigeon blood", stoneForm.Color)
}

func TestResolveProductFormBase(t *testing.T) {
	t.Run("semimount with stones and accessory", func(t *testing.T) {
		product := models.Product{
			ID:       primitive.NewObjectID(),
			Category: models.CategorySemiMount,
			Active:   false,
			BaseDetail: &models.BaseProductDetail{
				ProductName: "Solitaire Mount",
				Code:        "SM-001",
				ItemType:    "507f1f77bcf86cd799439021",
				Metal:       "507f1f77bcf86cd799439022",
				MetalColor:  "rose",
				GrossWeight: 3.21,
				NetWeight:   2.9,
				PrimaryStone: &models.StoneSpec{
					StoneName: "507f1f77bcf86cd799439031",
					Weight:    1.5,
					Unit:      models.WeightUnitCts,
				},
				AdditionalStones: []models.StoneSpec{
					{Shape: "507f1f77bcf86cd799439032", Weight: 0.1},
					{Shape: "507f1f77bcf86cd799439033", Weight: 0.12},
				},
				RelatedAccessories: &models.AccessorySpec{
					ProductName: "Box chain",
					Weight:      1.1,
				},
			},
		}

		form, err := ResolveProductForm(product)
		require.NoError(t, err)

		baseForm, ok := form.(models.BaseProductForm)
		require.True(t, ok)
		assert.Equal(t, models.CategorySemiMount, baseForm.ProductCategory)
		assert.False(t, baseForm.Active)
		assert.Equal(t, "3.21", baseForm.GrossWeight)
		assert.Equal(t, "2.9", baseForm.NetWeight)
		assert.Equal(t, "1.5", baseForm.PrimaryStone.Weight)
		require.Len(t, baseForm.AdditionalStones, 2)
		assert.Equal(t, "507f1f77bcf86cd799439033", baseForm.AdditionalStones[1].Shape)
		assert.Equal(t, "Box chain", baseForm.Accessories.ProductName)
	})

	t.Run("missing detail yields fully populated empty form", func(t *testing.T) {
		form, err := ResolveProductForm(models.Product{Category: models.CategoryProductMaster})
		require.NoError(t, err)

		baseForm, ok := form.(models.BaseProductForm)
		require.True(t, ok)
		assert.True(t, baseForm.Active)
		assert.Equal(t, "", baseForm.ProductName)
		assert.Equal(t, models.WeightUnitG, baseForm.PrimaryStone.Unit)
		assert.Equal(t, models.WeightUnitG, baseForm.Accessories.Unit)
		assert.NotNil(t, baseForm.AdditionalStones)
		assert.Empty(t, baseForm.AdditionalStones)
	})
}

func TestResolveProductFormOthers(t *testing.T) {
	product := models.Product{
		Category: models.CategoryOthers,
		OthersDetail: &models.OthersDetail{
			ProductName: "Gift box",
			Weight:      0,
		},
	}

	form, err := ResolveProductForm(product)
	require.NoError(t, err)

	othersForm, ok := form.(models.OthersForm)
	require.True(t, ok)
	// Zero weight renders as "0", not "".
	assert.Equal(t, "0", othersForm.Weight)
}

func TestResolveProductFormUnknownCategory(t *testing.T) {
	_, err := ResolveProductForm(models.Product{Category: "voucher"})
	var catErr *apperror.UnknownCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "voucher", catErr.Value)
}
