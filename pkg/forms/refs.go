package forms

import (
	"fmt"
	"strings"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// RefField is one reference-typed form field: its path (for error messages
// and write-back), its master-data type and its current value, which is a
// master id, free text pending resolution, or empty.
type RefField struct {
	Path  string
	Type  models.MasterType
	Value string
}

// ReferenceFields enumerates every reference field of a form, nested stones
// included. The others category has none.
func ReferenceFields(form models.ProductForm) []RefField {
	switch f := form.(type) {
	case models.BaseProductForm:
		fields := []RefField{
			{Path: "itemType", Type: models.MasterItemType, Value: f.ItemType},
			{Path: "metal", Type: models.MasterMetal, Value: f.Metal},
			{Path: "accessories.metal", Type: models.MasterMetal, Value: f.Accessories.Metal},
		}
		fields = append(fields, stoneRefFields("primaryStone", f.PrimaryStone)...)
		for i, s := range f.AdditionalStones {
			fields = append(fields, stoneRefFields(fmt.Sprintf("additionalStones.%d", i), s)...)
		}
		return fields

	case models.StoneDiamondForm:
		return []RefField{
			{Path: "stoneName", Type: models.MasterStoneName, Value: f.StoneName},
			{Path: "shape", Type: models.MasterShape, Value: f.Shape},
			{Path: "cutting", Type: models.MasterCutting, Value: f.Cutting},
			{Path: "quality", Type: models.MasterQuality, Value: f.Quality},
			{Path: "clarity", Type: models.MasterClarity, Value: f.Clarity},
		}

	case models.AccessoriesForm:
		return []RefField{
			{Path: "metal", Type: models.MasterMetal, Value: f.Metal},
		}
	}

	return nil
}

// ApplyReferences writes resolved master ids back into a copy of the form,
// keyed by the paths ReferenceFields reported.
func ApplyReferences(form models.ProductForm, resolved map[string]string) models.ProductForm {
	get := func(path, current string) string {
		if v, ok := resolved[path]; ok {
			return v
		}
		return current
	}

	switch f := form.(type) {
	case models.BaseProductForm:
		f.ItemType = get("itemType", f.ItemType)
		f.Metal = get("metal", f.Metal)
		f.Accessories.Metal = get("accessories.metal", f.Accessories.Metal)
		f.PrimaryStone = applyStoneRefs("primaryStone", f.PrimaryStone, resolved)
		for i := range f.AdditionalStones {
			f.AdditionalStones[i] = applyStoneRefs(fmt.Sprintf("additionalStones.%d", i), f.AdditionalStones[i], resolved)
		}
		return f

	case models.StoneDiamondForm:
		f.StoneName = get("stoneName", f.StoneName)
		f.Shape = get("shape", f.Shape)
		f.Cutting = get("cutting", f.Cutting)
		f.Quality = get("quality", f.Quality)
		f.Clarity = get("clarity", f.Clarity)
		return f

	case models.AccessoriesForm:
		f.Metal = get("metal", f.Metal)
		return f
	}

	return form
}

// CheckResolvedReferences is the submission-time invariant: after resolution
// every reference field is either empty or a valid master id. Free text
// sneaking through any code path that skipped resolution rejects the save.
func CheckResolvedReferences(form models.ProductForm) error {
	for _, f := range ReferenceFields(form) {
		v := strings.TrimSpace(f.Value)
		if v != "" && !models.IsObjectID(v) {
			return apperror.NewValidation(f.Path, "unresolved reference value")
		}
	}
	return nil
}

func stoneRefFields(prefix string, s models.PrimaryStoneForm) []RefField {
	return []RefField{
		{Path: prefix + ".stoneName", Type: models.MasterStoneName, Value: s.StoneName},
		{Path: prefix + ".shape", Type: models.MasterShape, Value: s.Shape},
		{Path: prefix + ".cutting", Type: models.MasterCutting, Value: s.Cutting},
		{Path: prefix + ".quality", Type: models.MasterQuality, Value: s.Quality},
		{Path: prefix + ".clarity", Type: models.MasterClarity, Value: s.Clarity},
	}
}

func applyStoneRefs(prefix string, s models.PrimaryStoneForm, resolved map[string]string) models.PrimaryStoneForm {
	if v, ok := resolved[prefix+".stoneName"]; ok {
		s.StoneName = v
	}
	if v, ok := resolved[prefix+".shape"]; ok {
		s.Shape = v
	}
	if v, ok := resolved[prefix+".cutting"]; ok {
		s.Cutting = v
	}
	if v, ok := resolved[prefix+".quality"]; ok {
		s.Quality = v
	}
	if v, ok := resolved[prefix+".clarity"]; ok {
		s.Clarity = v
	}
	return s
}

func indexedField(prefix string, i int, field string) string {
	return fmt.Sprintf("%s.%d.%s", prefix, i, field)
}
