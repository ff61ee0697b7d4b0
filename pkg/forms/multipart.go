package forms

import (
	"fmt"
	"strconv"
	"strings"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// The console submits product saves as multipart form data so image files
// ride along with scalar fields. Nested objects are flattened into bracket
// keys: accessories[code], primaryStone[shape], additionalStones[0][weight].
// DecodeProductForm rebuilds the category's form shape from those values.
func DecodeProductForm(category models.ProductCategory, values map[string][]string) (models.ProductForm, error) {
	category, err := models.ParseProductCategory(category)
	if err != nil {
		return nil, err
	}

	v := formValues(values)

	switch category {
	case models.CategoryProductMaster, models.CategorySemiMount:
		return decodeBaseProductForm(category, v), nil
	case models.CategoryStone:
		return models.StoneDiamondForm{
			ProductName: v.get("productName"),
			Code:        v.get("code"),
			Description: v.get("description"),
			StoneName:   v.get("stoneName"),
			Shape:       v.get("shape"),
			Size:        v.get("size"),
			Weight:      v.get("weight"),
			Unit:        models.ParseWeightUnit(v.get("unit")),
			Color:       v.get("color"),
			Cutting:     v.get("cutting"),
			Quality:     v.get("quality"),
			Clarity:     v.get("clarity"),
		}, nil
	case models.CategoryAccessory:
		return v.accessories(""), nil
	case models.CategoryOthers:
		return models.OthersForm{
			ProductName: v.get("productName"),
			Code:        v.get("code"),
			ProductSize: v.get("productSize"),
			Weight:      v.get("weight"),
			Unit:        models.ParseWeightUnit(v.get("unit")),
			Description: v.get("description"),
		}, nil
	}

	return nil, &apperror.UnknownCategoryError{Value: string(category)}
}

func decodeBaseProductForm(category models.ProductCategory, v formValues) models.BaseProductForm {
	form := models.BaseProductForm{
		ProductCategory:  category,
		Active:           v.getBool("active", true),
		ProductName:      v.get("productName"),
		ItemType:         v.get("itemType"),
		ProductSize:      v.get("productSize"),
		Code:             v.get("code"),
		Metal:            v.get("metal"),
		MetalColor:       v.get("metalColor"),
		Description:      v.get("description"),
		GrossWeight:      v.get("grossWeight"),
		NetWeight:        v.get("netWeight"),
		Accessories:      v.accessories("accessories"),
		PrimaryStone:     v.stone("primaryStone"),
		AdditionalStones: []models.AdditionalStoneForm{},
	}

	// additionalStones[0][...], [1][...], ... stop at the first index with no
	// keys at all; removal on the client renumbers, so indexes are dense.
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("additionalStones[%d]", i)
		if !v.hasPrefix(prefix) {
			break
		}
		form.AdditionalStones = append(form.AdditionalStones, v.stone(prefix))
	}

	return form
}

// DecodeCompanyRequest rebuilds the company profile body from multipart
// values, so the logo file can ride along with the scalar fields. The
// address block is flattened the same way product sub-forms are:
// address[provinceId], address[zipcode].
func DecodeCompanyRequest(values map[string][]string) models.CompanyRequest {
	v := formValues(values)
	return models.CompanyRequest{
		Name:    v.get("name"),
		TaxID:   v.get("taxId"),
		Phone:   v.get("phone"),
		Email:   v.get("email"),
		Address: v.addressInfo("address"),
	}
}

type formValues map[string][]string

func (v formValues) get(key string) string {
	if vals, ok := v[key]; ok && len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}

func (v formValues) getBool(key string, fallback bool) bool {
	raw := v.get(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func (v formValues) hasPrefix(prefix string) bool {
	for key := range v {
		if strings.HasPrefix(key, prefix+"[") {
			return true
		}
	}
	return false
}

// nested reads accessories[code] style keys; an empty prefix reads top-level
// keys, for the standalone accessory category.
func (v formValues) nested(prefix, field string) string {
	if prefix == "" {
		return v.get(field)
	}
	return v.get(prefix + "[" + field + "]")
}

func (v formValues) stone(prefix string) models.PrimaryStoneForm {
	return models.PrimaryStoneForm{
		StoneName: v.nested(prefix, "stoneName"),
		Shape:     v.nested(prefix, "shape"),
		Size:      v.nested(prefix, "size"),
		Weight:    v.nested(prefix, "weight"),
		Unit:      models.ParseWeightUnit(v.nested(prefix, "unit")),
		Color:     v.nested(prefix, "color"),
		Cutting:   v.nested(prefix, "cutting"),
		Quality:   v.nested(prefix, "quality"),
		Clarity:   v.nested(prefix, "clarity"),
	}
}

func (v formValues) addressInfo(prefix string) models.AddressInfo {
	return models.AddressInfo{
		Line:          v.nested(prefix, "line"),
		ProvinceID:    v.nested(prefix, "provinceId"),
		DistrictID:    v.nested(prefix, "districtId"),
		SubDistrictID: v.nested(prefix, "subDistrictId"),
		Zipcode:       v.nested(prefix, "zipcode"),
	}
}

func (v formValues) accessories(prefix string) models.AccessoriesForm {
	return models.AccessoriesForm{
		ProductID:   v.nested(prefix, "productId"),
		ProductName: v.nested(prefix, "productName"),
		Code:        v.nested(prefix, "code"),
		ProductSize: v.nested(prefix, "productSize"),
		Weight:      v.nested(prefix, "weight"),
		Unit:        models.ParseWeightUnit(v.nested(prefix, "unit")),
		Metal:       v.nested(prefix, "metal"),
		Description: v.nested(prefix, "description"),
	}
}
