package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/util"
)

// CompanyService manages the business profile. Create and update accept an
// optional logo already uploaded to media storage.
type CompanyService interface {
	CreateCompany(ctx context.Context, req models.CompanyRequest, logoURL string) (primitive.ObjectID, error)
	GetCompany(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	DefaultCompany(ctx context.Context) (*models.Company, error)
	UpdateCompany(ctx context.Context, id primitive.ObjectID, req models.CompanyRequest, logoURL string) error
}

type companyService struct {
	companyCollection *mongo.Collection
	addressService    AddressService
}

func NewCompanyService(addressService AddressService) CompanyService {
	return &companyService{
		companyCollection: util.GetCollection(util.DB, "Company"),
		addressService:    addressService,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, req models.CompanyRequest, logoURL string) (primitive.ObjectID, error) {
	if err := s.addressService.ValidateChain(ctx, req.Address); err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	company := models.Company{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		TaxID:      req.TaxID,
		Phone:      req.Phone,
		Email:      req.Email,
		LogoURL:    logoURL,
		Address:    req.Address,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if _, err := s.companyCollection.InsertOne(ctx, company); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, &apperror.ConflictError{Resource: "company"}
		}
		return primitive.NilObjectID, err
	}

	return company.ID, nil
}

func (s *companyService) GetCompany(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	err := s.companyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "company"}
		}
		return nil, err
	}

	return &company, nil
}

// DefaultCompany returns the business profile. The console serves a single
// business, so the oldest record wins when more than one exists.
func (s *companyService) DefaultCompany(ctx context.Context) (*models.Company, error) {
	find := options.FindOne().SetSort(bson.M{"created_at": 1})

	var company models.Company
	err := s.companyCollection.FindOne(ctx, bson.D{}, find).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "company"}
		}
		return nil, err
	}

	return &company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id primitive.ObjectID, req models.CompanyRequest, logoURL string) error {
	if err := s.addressService.ValidateChain(ctx, req.Address); err != nil {
		return err
	}

	set := bson.M{
		"name":        req.Name,
		"tax_id":      req.TaxID,
		"phone":       req.Phone,
		"email":       req.Email,
		"address":     req.Address,
		"modified_at": time.Now(),
	}
	if logoURL != "" {
		set["logo_url"] = logoURL
	}

	res, err := s.companyCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperror.NotFoundError{Resource: "company"}
	}

	return nil
}
