package models

import (
	"strings"

	"jarin-io/api/pkg/apperror"
)

// ProductCategory is the closed discriminant tag deciding which detail
// sub-document, form shape and update payload apply to a product record.
type ProductCategory string

const (
	CategoryProductMaster ProductCategory = "productmaster"
	CategorySemiMount     ProductCategory = "semimount"
	CategoryStone         ProductCategory = "stone"
	CategoryAccessory     ProductCategory = "accessory"
	CategoryOthers        ProductCategory = "others"
)

// ParseProductCategory normalizes a backend-supplied category value into one
// member of the closed enumeration. The raw value may be a bare string or an
// object carrying a name field. Unrecognized input is an error, never a
// default: every downstream mapper dispatches on the tag and a wrong tag
// would read fields of an incompatible shape.
func ParseProductCategory(raw any) (ProductCategory, error) {
	name := ""
	switch v := raw.(type) {
	case ProductCategory:
		name = string(v)
	case string:
		name = v
	case map[string]any:
		if n, ok := v["name"].(string); ok {
			name = n
		}
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(CategoryProductMaster):
		return CategoryProductMaster, nil
	case string(CategorySemiMount):
		return CategorySemiMount, nil
	case string(CategoryStone):
		return CategoryStone, nil
	case string(CategoryAccessory):
		return CategoryAccessory, nil
	case string(CategoryOthers):
		return CategoryOthers, nil
	}

	return "", &apperror.UnknownCategoryError{Value: name}
}
