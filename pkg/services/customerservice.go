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

// CustomerService manages customer records, including the tax-invoice
// address mirroring.
type CustomerService interface {
	CreateCustomer(ctx context.Context, companyID primitive.ObjectID, req models.CustomerRequest) (primitive.ObjectID, error)
	GetCustomer(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	ListCustomers(ctx context.Context, pagination util.PaginationArgs) ([]models.Customer, int64, error)
	UpdateCustomer(ctx context.Context, id primitive.ObjectID, req models.CustomerRequest) error
	DeleteCustomer(ctx context.Context, id primitive.ObjectID) error
}

type customerService struct {
	customerCollection *mongo.Collection
	addressService     AddressService
}

func NewCustomerService(addressService AddressService) CustomerService {
	return &customerService{
		customerCollection: util.GetCollection(util.DB, "Customer"),
		addressService:     addressService,
	}
}

// resolveTaxAddress collapses the mirror: when the tax-invoice address is
// flagged same-as, the main address is stored in its place so the two can
// never drift apart.
func (s *customerService) resolveTaxAddress(ctx context.Context, req models.CustomerRequest) (*models.AddressInfo, error) {
	if req.SameAsAddress {
		copied := req.Address
		return &copied, nil
	}
	if req.TaxInvoiceAddress == nil || req.TaxInvoiceAddress.Empty() {
		return nil, nil
	}
	if err := s.addressService.ValidateChain(ctx, *req.TaxInvoiceAddress); err != nil {
		return nil, err
	}
	return req.TaxInvoiceAddress, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, companyID primitive.ObjectID, req models.CustomerRequest) (primitive.ObjectID, error) {
	if err := s.addressService.ValidateChain(ctx, req.Address); err != nil {
		return primitive.NilObjectID, err
	}
	taxAddress, err := s.resolveTaxAddress(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	customer := models.Customer{
		ID:                primitive.NewObjectID(),
		CompanyID:         companyID,
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		TaxInvoiceAddress: taxAddress,
		SameAsAddress:     req.SameAsAddress,
		CreatedAt:         now,
		ModifiedAt:        now,
	}

	if _, err := s.customerCollection.InsertOne(ctx, customer); err != nil {
		return primitive.NilObjectID, err
	}

	return customer.ID, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	err := s.customerCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "customer"}
		}
		return nil, err
	}

	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, pagination util.PaginationArgs) ([]models.Customer, int64, error) {
	count, err := s.customerCollection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetListSortBson(pagination.Sort))

	cursor, err := s.customerCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, 0, err
	}

	return customers, count, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id primitive.ObjectID, req models.CustomerRequest) error {
	if err := s.addressService.ValidateChain(ctx, req.Address); err != nil {
		return err
	}
	taxAddress, err := s.resolveTaxAddress(ctx, req)
	if err != nil {
		return err
	}

	set := bson.M{
		"name":                req.Name,
		"phone":               req.Phone,
		"email":               req.Email,
		"address":             req.Address,
		"tax_invoice_address": taxAddress,
		"same_as_address":     req.SameAsAddress,
		"modified_at":         time.Now(),
	}

	res, err := s.customerCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperror.NotFoundError{Resource: "customer"}
	}

	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.customerCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperror.NotFoundError{Resource: "customer"}
	}

	return nil
}
