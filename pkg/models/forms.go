package models

// SelectOption is one entry of a dropdown option list. Value is a master-data
// id; Label is the display name.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProductForm is the closed sum over the four editable form shapes. The
// concrete type is decided by the product's category tag.
type ProductForm interface {
	FormCategory() ProductCategory
}

// PrimaryStoneForm holds one stone's editable fields. Reference fields
// (stone name, shape, cutting, quality, clarity) carry either a master-data
// id or transient free text pending resolution; weights are strings so they
// bind to editable inputs without losing what the user typed.
type PrimaryStoneForm struct {
	StoneName string     `json:"stoneName"`
	Shape     string     `json:"shape"`
	Size      string     `json:"size"`
	Weight    string     `json:"weight"`
	Unit      WeightUnit `json:"unit"`
	Color     string     `json:"color"`
	Cutting   string     `json:"cutting"`
	Quality   string     `json:"quality"`
	Clarity   string     `json:"clarity"`
}

// AdditionalStoneForm entries are kept in display order; the order carries no
// other meaning.
type AdditionalStoneForm = PrimaryStoneForm

// BaseProductForm is the editable shape for productmaster and semimount.
type BaseProductForm struct {
	ProductCategory  ProductCategory       `json:"productCategory"`
	Active           bool                  `json:"active"`
	ProductName      string                `json:"productName"`
	ItemType         string                `json:"itemType"`
	ProductSize      string                `json:"productSize"`
	Code             string                `json:"code"`
	Metal            string                `json:"metal"`
	MetalColor       string                `json:"metalColor"`
	Description      string                `json:"description"`
	GrossWeight      string                `json:"grossWeight"`
	NetWeight        string                `json:"netWeight"`
	Accessories      AccessoriesForm       `json:"accessories"`
	PrimaryStone     PrimaryStoneForm      `json:"primaryStone"`
	AdditionalStones []AdditionalStoneForm `json:"additionalStones"`
}

func (f BaseProductForm) FormCategory() ProductCategory { return f.ProductCategory }

// StoneDiamondForm is the flattened single-stone shape for the stone category.
type StoneDiamondForm struct {
	ProductName string     `json:"productName"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	StoneName   string     `json:"stoneName"`
	Shape       string     `json:"shape"`
	Size        string     `json:"size"`
	Weight      string     `json:"weight"`
	Unit        WeightUnit `json:"unit"`
	Color       string     `json:"color"`
	Cutting     string     `json:"cutting"`
	Quality     string     `json:"quality"`
	Clarity     string     `json:"clarity"`
}

func (StoneDiamondForm) FormCategory() ProductCategory { return CategoryStone }

// AccessoriesForm serves both the standalone accessory category and the
// accessory block embedded in a base product form. ProductID is set only in
// the standalone case.
type AccessoriesForm struct {
	ProductID   string     `json:"productId"`
	ProductName string     `json:"productName"`
	Code        string     `json:"code"`
	ProductSize string     `json:"productSize"`
	Weight      string     `json:"weight"`
	Unit        WeightUnit `json:"unit"`
	Metal       string     `json:"metal"`
	Description string     `json:"description"`
}

func (AccessoriesForm) FormCategory() ProductCategory { return CategoryAccessory }

// OthersForm is the catch-all shape. No reference fields.
type OthersForm struct {
	ProductName string     `json:"productName"`
	Code        string     `json:"code"`
	ProductSize string     `json:"productSize"`
	Weight      string     `json:"weight"`
	Unit        WeightUnit `json:"unit"`
	Description string     `json:"description"`
}

func (OthersForm) FormCategory() ProductCategory { return CategoryOthers }
