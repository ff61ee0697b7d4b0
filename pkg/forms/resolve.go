// Package forms converts product records between their stored representation
// and the editable form shapes, one per category tag. Both directions
// dispatch on the tag through a single exhaustive switch; an unrecognized tag
// is an error, never a fall-through.
package forms

import (
	"strconv"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// ResolveProductForm converts a fetched product record into the form shape
// for its category. Every field of the returned form is populated: missing
// detail fields become empty strings, the default unit is grams and the
// active flag defaults to true, so no undefined value ever reaches a
// controlled input.
func ResolveProductForm(p models.Product) (models.ProductForm, error) {
	category, err := models.ParseProductCategory(p.Category)
	if err != nil {
		return nil, err
	}

	switch category {
	case models.CategoryProductMaster, models.CategorySemiMount:
		return mapToBaseProductForm(category, p), nil
	case models.CategoryStone:
		return mapToStoneDiamondForm(p), nil
	case models.CategoryAccessory:
		return mapToAccessoriesForm(p), nil
	case models.CategoryOthers:
		return mapToOthersForm(p), nil
	}

	// Unreachable: ParseProductCategory only returns enumeration members.
	return nil, &apperror.UnknownCategoryError{Value: string(category)}
}

func mapToBaseProductForm(category models.ProductCategory, p models.Product) models.BaseProductForm {
	form := models.BaseProductForm{
		ProductCategory:  category,
		Active:           true,
		PrimaryStone:     emptyStoneForm(),
		Accessories:      emptyAccessoriesForm(),
		AdditionalStones: []models.AdditionalStoneForm{},
	}
	if !p.ID.IsZero() {
		form.Active = p.Active
	}

	d := p.BaseDetail
	if d == nil {
		return form
	}

	form.ProductName = d.ProductName
	form.ItemType = d.ItemType
	form.ProductSize = d.ProductSize
	form.Code = d.Code
	form.Metal = d.Metal
	form.MetalColor = d.MetalColor
	form.Description = d.Description
	form.GrossWeight = formatWeight(d.GrossWeight)
	form.NetWeight = formatWeight(d.NetWeight)

	if d.PrimaryStone != nil {
		form.PrimaryStone = stoneSpecToForm(*d.PrimaryStone)
	}
	for _, s := range d.AdditionalStones {
		form.AdditionalStones = append(form.AdditionalStones, stoneSpecToForm(s))
	}
	if d.RelatedAccessories != nil {
		a := d.RelatedAccessories
		form.Accessories = models.AccessoriesForm{
			ProductName: a.ProductName,
			Code:        a.Code,
			ProductSize: a.ProductSize,
			Weight:      formatWeight(a.Weight),
			Unit:        models.ParseWeightUnit(string(a.Unit)),
			Metal:       a.Metal,
			Description: a.Description,
		}
	}

	return form
}

func mapToStoneDiamondForm(p models.Product) models.StoneDiamondForm {
	form := models.StoneDiamondForm{Unit: models.WeightUnitG}

	d := p.StoneDetail
	if d == nil {
		return form
	}

	return models.StoneDiamondForm{
		ProductName: d.ProductName,
		Code:        d.Code,
		Description: d.Description,
		StoneName:   d.StoneName,
		Shape:       d.Shape,
		Size:        d.Size,
		Weight:      formatWeight(d.Weight),
		Unit:        models.ParseWeightUnit(string(d.Unit)),
		Color:       d.Color,
		Cutting:     d.Cutting,
		Quality:     d.Quality,
		Clarity:     d.Clarity,
	}
}

func mapToAccessoriesForm(p models.Product) models.AccessoriesForm {
	form := models.AccessoriesForm{Unit: models.WeightUnitG}

	d := p.AccessoryDetail
	if d == nil {
		return form
	}

	return models.AccessoriesForm{
		ProductID:   p.ID.Hex(),
		ProductName: d.ProductName,
		Code:        d.Code,
		ProductSize: d.ProductSize,
		Weight:      formatWeight(d.Weight),
		Unit:        models.ParseWeightUnit(string(d.Unit)),
		Metal:       d.Metal,
		Description: d.Description,
	}
}

func mapToOthersForm(p models.Product) models.OthersForm {
	form := models.OthersForm{Unit: models.WeightUnitG}

	d := p.OthersDetail
	if d == nil {
		return form
	}

	return models.OthersForm{
		ProductName: d.ProductName,
		Code:        d.Code,
		ProductSize: d.ProductSize,
		Weight:      formatWeight(d.Weight),
		Unit:        models.ParseWeightUnit(string(d.Unit)),
		Description: d.Description,
	}
}

func stoneSpecToForm(s models.StoneSpec) models.PrimaryStoneForm {
	return models.PrimaryStoneForm{
		StoneName: s.StoneName,
		Shape:     s.Shape,
		Size:      s.Size,
		Weight:    formatWeight(s.Weight),
		Unit:      models.ParseWeightUnit(string(s.Unit)),
		Color:     s.Color,
		Cutting:   s.Cutting,
		Quality:   s.Quality,
		Clarity:   s.Clarity,
	}
}

func emptyStoneForm() models.PrimaryStoneForm {
	return models.PrimaryStoneForm{Unit: models.WeightUnitG}
}

func emptyAccessoriesForm() models.AccessoriesForm {
	return models.AccessoriesForm{Unit: models.WeightUnitG}
}

// formatWeight stringifies a stored weight for input binding. A zero weight
// renders as "0" rather than "" so the field stays controlled.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
