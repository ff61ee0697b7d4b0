package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jarin-io/api/pkg/address"
	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/util"
)

// AddressService serves the Thai administrative lookups and validates that a
// submitted address forms a consistent chain. It implements address.Source,
// so the cascade state machine can run straight off the lookup collections.
type AddressService interface {
	Provinces(ctx context.Context) ([]models.Province, error)
	Districts(ctx context.Context, provinceID string) ([]models.SelectOption, error)
	SubDistricts(ctx context.Context, districtID string) ([]address.SubDistrictOption, error)
	ValidateChain(ctx context.Context, info models.AddressInfo) error
}

type addressService struct {
	provinceCollection    *mongo.Collection
	districtCollection    *mongo.Collection
	subDistrictCollection *mongo.Collection
}

func NewAddressService() AddressService {
	return &addressService{
		provinceCollection:    util.GetCollection(util.DB, "ThaiProvince"),
		districtCollection:    util.GetCollection(util.DB, "ThaiDistrict"),
		subDistrictCollection: util.GetCollection(util.DB, "ThaiSubDistrict"),
	}
}

func (s *addressService) Provinces(ctx context.Context) ([]models.Province, error) {
	find := options.Find().SetSort(bson.M{"name_th": 1})
	cursor, err := s.provinceCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, err
	}

	var provinces []models.Province
	if err = cursor.All(ctx, &provinces); err != nil {
		return nil, err
	}

	return provinces, nil
}

func (s *addressService) Districts(ctx context.Context, provinceID string) ([]models.SelectOption, error) {
	oid, err := primitive.ObjectIDFromHex(provinceID)
	if err != nil {
		return nil, apperror.NewValidation("province", "invalid id")
	}

	find := options.Find().SetSort(bson.M{"name_th": 1})
	cursor, err := s.districtCollection.Find(ctx, bson.M{"province_id": oid}, find)
	if err != nil {
		return nil, err
	}

	var districts []models.District
	if err = cursor.All(ctx, &districts); err != nil {
		return nil, err
	}

	opts := make([]models.SelectOption, 0, len(districts))
	for _, d := range districts {
		opts = append(opts, models.SelectOption{Value: d.ID.Hex(), Label: d.NameTH})
	}

	return opts, nil
}

func (s *addressService) SubDistricts(ctx context.Context, districtID string) ([]address.SubDistrictOption, error) {
	oid, err := primitive.ObjectIDFromHex(districtID)
	if err != nil {
		return nil, apperror.NewValidation("district", "invalid id")
	}

	find := options.Find().SetSort(bson.M{"name_th": 1})
	cursor, err := s.subDistrictCollection.Find(ctx, bson.M{"district_id": oid}, find)
	if err != nil {
		return nil, err
	}

	var subDistricts []models.SubDistrict
	if err = cursor.All(ctx, &subDistricts); err != nil {
		return nil, err
	}

	opts := make([]address.SubDistrictOption, 0, len(subDistricts))
	for _, sd := range subDistricts {
		opts = append(opts, address.SubDistrictOption{
			Value:   sd.ID.Hex(),
			Label:   sd.NameTH,
			Zipcode: sd.Zipcode,
		})
	}

	return opts, nil
}

// ValidateChain enforces the cascade invariant at submission time: the
// district belongs to the province, the sub-district to the district, and
// the zipcode is the sub-district's. An all-empty address passes (the block
// is optional); a partially filled one does not.
func (s *addressService) ValidateChain(ctx context.Context, info models.AddressInfo) error {
	if info.Empty() {
		return nil
	}

	provinceID, err := primitive.ObjectIDFromHex(info.ProvinceID)
	if err != nil {
		return apperror.NewValidation("address.province", "invalid id")
	}
	districtID, err := primitive.ObjectIDFromHex(info.DistrictID)
	if err != nil {
		return apperror.NewValidation("address.district", "invalid id")
	}
	subDistrictID, err := primitive.ObjectIDFromHex(info.SubDistrictID)
	if err != nil {
		return apperror.NewValidation("address.subDistrict", "invalid id")
	}

	err = s.districtCollection.FindOne(ctx, bson.M{"_id": districtID, "province_id": provinceID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperror.NewValidation("address.district", "not in the selected province")
		}
		return err
	}

	var subDistrict models.SubDistrict
	err = s.subDistrictCollection.FindOne(ctx, bson.M{"_id": subDistrictID, "district_id": districtID}).Decode(&subDistrict)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperror.NewValidation("address.subDistrict", "not in the selected district")
		}
		return err
	}

	if subDistrict.Zipcode != info.Zipcode {
		return apperror.NewValidation("address.zipcode", "does not match the selected sub-district")
	}

	return nil
}
