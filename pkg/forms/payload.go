package forms

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// BuildUpdatePayload is the inverse of ResolveProductForm: it converts a
// filled-in form back into the minimal $set document for its category.
//
// The caller must already have run reference resolution: every reference
// field holds a master-data id or is empty. Empty reference fields are
// omitted from the payload; plain scalars are always written.
//
// The base-product variant deliberately emits only the scalar identity
// fields. Stones and the embedded accessory persist through the dedicated
// stones payload (BuildBaseStonesPayload), so edits there are never silently
// dropped on this path.
func BuildUpdatePayload(form models.ProductForm) (bson.M, error) {
	if err := CheckResolvedReferences(form); err != nil {
		return nil, err
	}

	switch f := form.(type) {
	case models.BaseProductForm:
		set := bson.M{
			"active":                   f.Active,
			"base_detail.product_name": f.ProductName,
			"base_detail.code":         f.Code,
			"base_detail.product_size": f.ProductSize,
		}
		setRef(set, "base_detail.metal", f.Metal)
		setRef(set, "base_detail.item_type", f.ItemType)
		return set, nil

	case models.StoneDiamondForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return nil, err
		}
		set := bson.M{
			"stone_detail.product_name": f.ProductName,
			"stone_detail.code":         f.Code,
			"stone_detail.size":         f.Size,
			"stone_detail.color":        f.Color,
			"stone_detail.weight":       weight,
			"stone_detail.unit":         models.ParseWeightUnit(string(f.Unit)),
			"stone_detail.description":  f.Description,
		}
		setRef(set, "stone_detail.stone_name", f.StoneName)
		setRef(set, "stone_detail.shape", f.Shape)
		setRef(set, "stone_detail.cutting", f.Cutting)
		setRef(set, "stone_detail.quality", f.Quality)
		setRef(set, "stone_detail.clarity", f.Clarity)
		return set, nil

	case models.AccessoriesForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return nil, err
		}
		set := bson.M{
			"accessory_detail.product_name": f.ProductName,
			"accessory_detail.code":         f.Code,
			"accessory_detail.product_size": f.ProductSize,
			"accessory_detail.weight":       weight,
			"accessory_detail.unit":         models.ParseWeightUnit(string(f.Unit)),
			"accessory_detail.description":  f.Description,
		}
		setRef(set, "accessory_detail.metal", f.Metal)
		return set, nil

	case models.OthersForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return nil, err
		}
		return bson.M{
			"others_detail.product_name": f.ProductName,
			"others_detail.code":         f.Code,
			"others_detail.product_size": f.ProductSize,
			"others_detail.weight":       weight,
			"others_detail.unit":         models.ParseWeightUnit(string(f.Unit)),
			"others_detail.description":  f.Description,
		}, nil
	}

	return nil, &apperror.UnknownCategoryError{Value: categoryOf(form)}
}

// BuildBaseStonesPayload persists the stones and embedded accessory of a base
// product form, the part BuildUpdatePayload leaves to this endpoint.
func BuildBaseStonesPayload(form models.BaseProductForm) (bson.M, error) {
	if err := CheckResolvedReferences(form); err != nil {
		return nil, err
	}

	primary, err := stoneFormToSpec("primaryStone", form.PrimaryStone)
	if err != nil {
		return nil, err
	}

	additional := make([]models.StoneSpec, 0, len(form.AdditionalStones))
	for i, s := range form.AdditionalStones {
		spec, err := stoneFormToSpec(indexedField("additionalStones", i, "weight"), s)
		if err != nil {
			return nil, err
		}
		additional = append(additional, spec)
	}

	accWeight, err := ParseWeight("accessories.weight", form.Accessories.Weight)
	if err != nil {
		return nil, err
	}

	return bson.M{
		"base_detail.primary_stone":     primary,
		"base_detail.additional_stones": additional,
		"base_detail.related_accessories": models.AccessorySpec{
			ProductName: form.Accessories.ProductName,
			Code:        form.Accessories.Code,
			ProductSize: form.Accessories.ProductSize,
			Weight:      accWeight,
			Unit:        models.ParseWeightUnit(string(form.Accessories.Unit)),
			Metal:       form.Accessories.Metal,
			Description: form.Accessories.Description,
		},
	}, nil
}

// BuildCreateDetail materializes the category detail sub-document for a brand
// new product record.
func BuildCreateDetail(form models.ProductForm) (models.Product, error) {
	if err := CheckResolvedReferences(form); err != nil {
		return models.Product{}, err
	}

	switch f := form.(type) {
	case models.BaseProductForm:
		gross, err := ParseWeight("grossWeight", f.GrossWeight)
		if err != nil {
			return models.Product{}, err
		}
		net, err := ParseWeight("netWeight", f.NetWeight)
		if err != nil {
			return models.Product{}, err
		}
		primary, err := stoneFormToSpec("primaryStone", f.PrimaryStone)
		if err != nil {
			return models.Product{}, err
		}
		additional := make([]models.StoneSpec, 0, len(f.AdditionalStones))
		for i, s := range f.AdditionalStones {
			spec, err := stoneFormToSpec(indexedField("additionalStones", i, "weight"), s)
			if err != nil {
				return models.Product{}, err
			}
			additional = append(additional, spec)
		}
		accWeight, err := ParseWeight("accessories.weight", f.Accessories.Weight)
		if err != nil {
			return models.Product{}, err
		}
		return models.Product{
			Category: f.ProductCategory,
			Active:   f.Active,
			BaseDetail: &models.BaseProductDetail{
				ProductName:      f.ProductName,
				Code:             f.Code,
				ProductSize:      f.ProductSize,
				ItemType:         f.ItemType,
				Metal:            f.Metal,
				MetalColor:       f.MetalColor,
				Description:      f.Description,
				GrossWeight:      gross,
				NetWeight:        net,
				PrimaryStone:     &primary,
				AdditionalStones: additional,
				RelatedAccessories: &models.AccessorySpec{
					ProductName: f.Accessories.ProductName,
					Code:        f.Accessories.Code,
					ProductSize: f.Accessories.ProductSize,
					Weight:      accWeight,
					Unit:        models.ParseWeightUnit(string(f.Accessories.Unit)),
					Metal:       f.Accessories.Metal,
					Description: f.Accessories.Description,
				},
			},
		}, nil

	case models.StoneDiamondForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return models.Product{}, err
		}
		return models.Product{
			Category: models.CategoryStone,
			Active:   true,
			StoneDetail: &models.StoneDetail{
				ProductName: f.ProductName,
				Code:        f.Code,
				Description: f.Description,
				StoneName:   f.StoneName,
				Shape:       f.Shape,
				Size:        f.Size,
				Weight:      weight,
				Unit:        models.ParseWeightUnit(string(f.Unit)),
				Color:       f.Color,
				Cutting:     f.Cutting,
				Quality:     f.Quality,
				Clarity:     f.Clarity,
			},
		}, nil

	case models.AccessoriesForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return models.Product{}, err
		}
		return models.Product{
			Category: models.CategoryAccessory,
			Active:   true,
			AccessoryDetail: &models.AccessoryDetail{
				ProductName: f.ProductName,
				Code:        f.Code,
				ProductSize: f.ProductSize,
				Weight:      weight,
				Unit:        models.ParseWeightUnit(string(f.Unit)),
				Metal:       f.Metal,
				Description: f.Description,
			},
		}, nil

	case models.OthersForm:
		weight, err := ParseWeight("weight", f.Weight)
		if err != nil {
			return models.Product{}, err
		}
		return models.Product{
			Category: models.CategoryOthers,
			Active:   true,
			OthersDetail: &models.OthersDetail{
				ProductName: f.ProductName,
				Code:        f.Code,
				ProductSize: f.ProductSize,
				Weight:      weight,
				Unit:        models.ParseWeightUnit(string(f.Unit)),
				Description: f.Description,
			},
		}, nil
	}

	return models.Product{}, &apperror.UnknownCategoryError{Value: categoryOf(form)}
}

// ParseWeight validates a decimal-as-string weight before it is coerced for
// transport. A blank field parses as zero; anything non-numeric is rejected
// here so it can never reach a payload as NaN.
func ParseWeight(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, apperror.NewValidation(field, "must be a number")
	}
	f, _ := d.Float64()
	if f < 0 {
		return 0, apperror.NewValidation(field, "must not be negative")
	}
	return f, nil
}

func stoneFormToSpec(weightField string, s models.PrimaryStoneForm) (models.StoneSpec, error) {
	weight, err := ParseWeight(weightField, s.Weight)
	if err != nil {
		return models.StoneSpec{}, err
	}
	return models.StoneSpec{
		StoneName: s.StoneName,
		Shape:     s.Shape,
		Size:      s.Size,
		Weight:    weight,
		Unit:      models.ParseWeightUnit(string(s.Unit)),
		Color:     s.Color,
		Cutting:   s.Cutting,
		Quality:   s.Quality,
		Clarity:   s.Clarity,
	}, nil
}

// setRef writes a reference field only when it holds a value; an empty
// reference stays out of the payload entirely.
func setRef(set bson.M, key, value string) {
	if strings.TrimSpace(value) != "" {
		set[key] = value
	}
}

func categoryOf(form models.ProductForm) string {
	if form == nil {
		return ""
	}
	return string(form.FormCategory())
}
