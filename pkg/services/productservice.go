package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/forms"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/util"
)

// ProductService owns the catalog. The save pipeline follows one fixed
// order: decode, resolve references, build payload, write, refetch. The
// record is never touched before every reference holds a master id.
type ProductService interface {
	CreateProduct(ctx context.Context, companyID primitive.ObjectID, form models.ProductForm, images []string) (primitive.ObjectID, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetProductForm(ctx context.Context, id primitive.ObjectID) (models.ProductForm, error)
	ListProducts(ctx context.Context, category models.ProductCategory, pagination util.PaginationArgs) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, form models.ProductForm, images []string) (models.ProductForm, error)
	UpdateBaseStones(ctx context.Context, id primitive.ObjectID, form models.BaseProductForm) (models.ProductForm, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	productCollection *mongo.Collection
	resolver          *ReferenceResolver
}

func NewProductService(resolver *ReferenceResolver) ProductService {
	return &productService{
		productCollection: util.GetCollection(util.DB, "Product"),
		resolver:          resolver,
	}
}

func (s *productService) CreateProduct(ctx context.Context, companyID primitive.ObjectID, form models.ProductForm, images []string) (primitive.ObjectID, error) {
	resolved, err := s.resolver.ResolveForm(ctx, form)
	if err != nil {
		return primitive.NilObjectID, err
	}

	product, err := forms.BuildCreateDetail(resolved)
	if err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CompanyID = companyID
	product.CreatedAt = now
	product.ModifiedAt = now
	product.Images = images
	if len(images) > 0 {
		product.MainImage = images[0]
	}

	if _, err := s.productCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, &apperror.ConflictError{Resource: "product code"}
		}
		return primitive.NilObjectID, err
	}

	return product.ID, nil
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.productCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "product"}
		}
		return nil, err
	}

	return &product, nil
}

// GetProductForm is the edit-flow read: fetch and resolve in one step.
func (s *productService) GetProductForm(ctx context.Context, id primitive.ObjectID) (models.ProductForm, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return forms.ResolveProductForm(*product)
}

func (s *productService) ListProducts(ctx context.Context, category models.ProductCategory, pagination util.PaginationArgs) ([]models.Product, int64, error) {
	filter := bson.M{}
	if category != "" {
		normalized, err := models.ParseProductCategory(category)
		if err != nil {
			return nil, 0, err
		}
		filter["category"] = normalized
	}

	count, err := s.productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetListSortBson(pagination.Sort))

	cursor, err := s.productCollection.Find(ctx, filter, find)
	if err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// UpdateProduct applies the category payload and returns the freshly
// re-resolved form, so the caller renders server state rather than its own
// echo.
func (s *productService) UpdateProduct(ctx context.Context, id primitive.ObjectID, form models.ProductForm, images []string) (models.ProductForm, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Category != form.FormCategory() {
		return nil, apperror.NewValidation("productCategory", "does not match the stored record")
	}

	resolved, err := s.resolver.ResolveForm(ctx, form)
	if err != nil {
		return nil, err
	}

	set, err := forms.BuildUpdatePayload(resolved)
	if err != nil {
		return nil, err
	}
	set["modified_at"] = time.Now()
	if len(images) > 0 {
		set["images"] = images
		set["main_image"] = images[0]
	}

	if _, err := s.productCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	return s.GetProductForm(ctx, id)
}

// UpdateBaseStones is the second half of the base-product contract: stones
// and the embedded accessory persist here, not through UpdateProduct.
func (s *productService) UpdateBaseStones(ctx context.Context, id primitive.ObjectID, form models.BaseProductForm) (models.ProductForm, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Category != models.CategoryProductMaster && product.Category != models.CategorySemiMount {
		return nil, apperror.NewValidation("productCategory", "stones apply to base products only")
	}

	resolved, err := s.resolver.ResolveForm(ctx, form)
	if err != nil {
		return nil, err
	}
	baseForm, ok := resolved.(models.BaseProductForm)
	if !ok {
		return nil, apperror.NewValidation("productCategory", "expected a base product form")
	}

	set, err := forms.BuildBaseStonesPayload(baseForm)
	if err != nil {
		return nil, err
	}
	set["modified_at"] = time.Now()

	if _, err := s.productCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	return s.GetProductForm(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.productCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperror.NotFoundError{Resource: "product"}
	}

	return nil
}
