package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

func TestDecodeProductFormBase(t *testing.T) {
	values := map[string][]string{
		"productName":                    {"Solitaire Mount"},
		"code":                           {"SM-001"},
		"itemType":                       {"Ring"},
		"metal":                          {"507f1f77bcf86cd799439022"},
		"metalColor":                     {"rose"},
		"grossWeight":                    {"3.2"},
		"netWeight":                      {"2.9"},
		"active":                         {"false"},
		"primaryStone[stoneName]":        {"Ruby"},
		"primaryStone[weight]":           {"1.5"},
		"primaryStone[unit]":             {"cts"},
		"accessories[productName]":       {"Box chain"},
		"accessories[weight]":            {"1.1"},
		"additionalStones[0][shape]":     {"Round"},
		"additionalStones[0][weight]":    {"0.1"},
		"additionalStones[1][shape]":     {"Pear"},
		"additionalStones[1][weight]":    {"0.12"},
	}

	form, err := DecodeProductForm(models.CategorySemiMount, values)
	require.NoError(t, err)

	baseForm, ok := form.(models.BaseProductForm)
	require.True(t, ok)
	assert.Equal(t, models.CategorySemiMount, baseForm.ProductCategory)
	assert.False(t, baseForm.Active)
	assert.Equal(t, "Solitaire Mount", baseForm.ProductName)
	assert.Equal(t, "Ruby", baseForm.PrimaryStone.StoneName)
	assert.Equal(t, models.WeightUnitCts, baseForm.PrimaryStone.Unit)
	assert.Equal(t, "Box chain", baseForm.Accessories.ProductName)
	require.Len(t, baseForm.AdditionalStones, 2)
	assert.Equal(t, "Pear", baseForm.AdditionalStones[1].Shape)
}

func TestDecodeProductFormDenseIndexes(t *testing.T) {
	// A gap in the indexes ends the list; the client renumbers on removal.
	values := map[string][]string{
		"additionalStones[0][shape]": {"Round"},
		"additionalStones[2][shape]": {"Pear"},
	}

	form, err := DecodeProductForm(models.CategoryProductMaster, values)
	require.NoError(t, err)

	baseForm := form.(models.BaseProductForm)
	require.Len(t, baseForm.AdditionalStones, 1)
	assert.Equal(t, "Round", baseForm.AdditionalStones[0].Shape)
}

func TestDecodeProductFormStone(t *testing.T) {
	values := map[string][]string{
		"productName": {"Oval Ruby"},
		"stoneName":   {"Ruby"},
		"weight":      {"2.05"},
		"unit":        {"cts"},
	}

	form, err := DecodeProductForm(models.CategoryStone, values)
	require.NoError(t, err)

	stoneForm, ok := form.(models.StoneDiamondForm)
	require.True(t, ok)
	assert.Equal(t, "Ruby", stoneForm.StoneName)
	assert.Equal(t, "2.05", stoneForm.Weight)
	assert.Equal(t, models.WeightUnitCts, stoneForm.Unit)
}

func TestDecodeProductFormDefaults(t *testing.T) {
	form, err := DecodeProductForm(models.CategoryProductMaster, map[string][]string{})
	require.NoError(t, err)

	baseForm := form.(models.BaseProductForm)
	// active defaults on, unit to grams.
	assert.True(t, baseForm.Active)
	assert.Equal(t, models.WeightUnitG, baseForm.PrimaryStone.Unit)
	assert.NotNil(t, baseForm.AdditionalStones)
}

func TestDecodeProductFormUnknownCategory(t *testing.T) {
	_, err := DecodeProductForm("bundle", map[string][]string{})
	var catErr *apperror.UnknownCategoryError
	require.ErrorAs(t, err, &catErr)
}

func TestDecodeCompanyRequest(t *testing.T) {
	values := map[string][]string{
		"name":                   {" Jarin Jewelry "},
		"taxId":                  {"0105561000000"},
		"phone":                  {"021234567"},
		"email":                  {"office@jarin.example"},
		"address[line]":          {"88 Silom Rd"},
		"address[provinceId]":    {"64a000000000000000000001"},
		"address[districtId]":    {"64a000000000000000000002"},
		"address[subDistrictId]": {"64a000000000000000000003"},
		"address[zipcode]":       {"10500"},
	}

	req := DecodeCompanyRequest(values)
	assert.Equal(t, "Jarin Jewelry", req.Name)
	assert.Equal(t, "0105561000000", req.TaxID)
	assert.Equal(t, "021234567", req.Phone)
	assert.Equal(t, "office@jarin.example", req.Email)
	assert.Equal(t, "88 Silom Rd", req.Address.Line)
	assert.Equal(t, "64a000000000000000000001", req.Address.ProvinceID)
	assert.Equal(t, "64a000000000000000000002", req.Address.DistrictID)
	assert.Equal(t, "64a000000000000000000003", req.Address.SubDistrictID)
	assert.Equal(t, "10500", req.Address.Zipcode)
}

func TestDecodeCompanyRequestEmptyAddress(t *testing.T) {
	req := DecodeCompanyRequest(map[string][]string{"name": {"Jarin Jewelry"}})
	assert.True(t, req.Address.Empty())
}
