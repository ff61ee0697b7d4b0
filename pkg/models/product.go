package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a single catalog record. Exactly one of the detail sub-documents
// is set, the one matching Category.
type Product struct {
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt time.Time          `bson:"modified_at" json:"modifiedAt"`
	Category   ProductCategory    `bson:"category" json:"category" validate:"required"`
	Images     []string           `bson:"images" json:"images"`
	MainImage  string             `bson:"main_image" json:"mainImage"`
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	CompanyID  primitive.ObjectID `bson:"company_id" json:"companyId"`
	Active     bool               `bson:"active" json:"active"`

	BaseDetail      *BaseProductDetail `bson:"base_detail,omitempty" json:"baseDetail,omitempty"`
	StoneDetail     *StoneDetail       `bson:"stone_detail,omitempty" json:"stoneDetail,omitempty"`
	AccessoryDetail *AccessoryDetail   `bson:"accessory_detail,omitempty" json:"accessoryDetail,omitempty"`
	OthersDetail    *OthersDetail      `bson:"others_detail,omitempty" json:"othersDetail,omitempty"`
}

// BaseProductDetail backs the productmaster and semimount categories. ItemType
// and Metal hold master-data ids.
type BaseProductDetail struct {
	ProductName string  `bson:"product_name" json:"product_name"`
	Code        string  `bson:"code" json:"code"`
	ProductSize string  `bson:"product_size" json:"product_size"`
	ItemType    string  `bson:"item_type" json:"item_type"`
	Metal       string  `bson:"metal" json:"metal"`
	MetalColor  string  `bson:"metal_color" json:"metal_color"`
	Description string  `bson:"description" json:"description"`
	GrossWeight float64 `bson:"gross_weight" json:"gross_weight"`
	NetWeight   float64 `bson:"net_weight" json:"net_weight"`

	PrimaryStone       *StoneSpec     `bson:"primary_stone,omitempty" json:"primary_stone,omitempty"`
	AdditionalStones   []StoneSpec    `bson:"additional_stones" json:"additional_stones"`
	RelatedAccessories *AccessorySpec `bson:"related_accessories,omitempty" json:"related_accessories,omitempty"`
}

// StoneSpec describes one stone set into a base product. Every reference
// field holds a master-data id.
type StoneSpec struct {
	StoneName string     `bson:"stone_name" json:"stone_name"`
	Shape     string     `bson:"shape" json:"shape"`
	Size      string     `bson:"size" json:"size"`
	Weight    float64    `bson:"weight" json:"weight"`
	Unit      WeightUnit `bson:"unit" json:"unit"`
	Color     string     `bson:"color" json:"color"`
	Cutting   string     `bson:"cutting" json:"cutting"`
	Quality   string     `bson:"quality" json:"quality"`
	Clarity   string     `bson:"clarity" json:"clarity"`
}

// AccessorySpec is the accessory sub-document embedded in a base product.
type AccessorySpec struct {
	ProductName string     `bson:"product_name" json:"product_name"`
	Code        string     `bson:"code" json:"code"`
	ProductSize string     `bson:"product_size" json:"product_size"`
	Weight      float64    `bson:"weight" json:"weight"`
	Unit        WeightUnit `bson:"unit" json:"unit"`
	Metal       string     `bson:"metal" json:"metal"`
	Description string     `bson:"description" json:"description"`
}

// StoneDetail backs the stone category: the product itself is a single stone.
type StoneDetail struct {
	ProductName string     `bson:"product_name" json:"product_name"`
	Code        string     `bson:"code" json:"code"`
	Description string     `bson:"description" json:"description"`
	StoneName   string     `bson:"stone_name" json:"stone_name"`
	Shape       string     `bson:"shape" json:"shape"`
	Size        string     `bson:"size" json:"size"`
	Weight      float64    `bson:"weight" json:"weight"`
	Unit        WeightUnit `bson:"unit" json:"unit"`
	Color       string     `bson:"color" json:"color"`
	Cutting     string     `bson:"cutting" json:"cutting"`
	Quality     string     `bson:"quality" json:"quality"`
	Clarity     string     `bson:"clarity" json:"clarity"`
}

// AccessoryDetail backs the accessory category (standalone accessory).
type AccessoryDetail struct {
	ProductName string     `bson:"product_name" json:"product_name"`
	Code        string     `bson:"code" json:"code"`
	ProductSize string     `bson:"product_size" json:"product_size"`
	Weight      float64    `bson:"weight" json:"weight"`
	Unit        WeightUnit `bson:"unit" json:"unit"`
	Metal       string     `bson:"metal" json:"metal"`
	Description string     `bson:"description" json:"description"`
}

// OthersDetail backs the others category. No reference fields.
type OthersDetail struct {
	ProductName string     `bson:"product_name" json:"product_name"`
	Code        string     `bson:"code" json:"code"`
	ProductSize string     `bson:"product_size" json:"product_size"`
	Weight      float64    `bson:"weight" json:"weight"`
	Unit        WeightUnit `bson:"unit" json:"unit"`
	Description string     `bson:"description" json:"description"`
}
