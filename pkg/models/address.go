package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Thai administrative address lookup records. Read-only reference data.

type Province struct {
	NameTH string             `bson:"name_th" json:"nameTh"`
	NameEN string             `bson:"name_en" json:"nameEn"`
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
}

type District struct {
	NameTH     string             `bson:"name_th" json:"nameTh"`
	NameEN     string             `bson:"name_en" json:"nameEn"`
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	ProvinceID primitive.ObjectID `bson:"province_id" json:"provinceId"`
}

type SubDistrict struct {
	NameTH     string             `bson:"name_th" json:"nameTh"`
	NameEN     string             `bson:"name_en" json:"nameEn"`
	Zipcode    string             `bson:"zipcode" json:"zipcode"`
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	DistrictID primitive.ObjectID `bson:"district_id" json:"districtId"`
}

// AddressInfo is the address block embedded in companies and customers. The
// line field is free text; the three ids must form a consistent chain and the
// zipcode must be the selected sub-district's.
type AddressInfo struct {
	Line          string `bson:"line" json:"line"`
	ProvinceID    string `bson:"province_id" json:"provinceId"`
	DistrictID    string `bson:"district_id" json:"districtId"`
	SubDistrictID string `bson:"sub_district_id" json:"subDistrictId"`
	Zipcode       string `bson:"zipcode" json:"zipcode"`
}

// Empty reports whether no part of the address was filled in.
func (a AddressInfo) Empty() bool {
	return a.Line == "" && a.ProvinceID == "" && a.DistrictID == "" &&
		a.SubDistrictID == "" && a.Zipcode == ""
}
