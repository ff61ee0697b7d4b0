package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/internal/helpers"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/forms"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type ProductController struct {
	productService services.ProductService
}

func InitProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct handles POST /products. The body is multipart form data:
// scalar fields plus an optional images array, with the category under
// productCategory.
func (pc *ProductController) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		images, _, err := helpers.HandleSequentialImages(c)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		form, err := forms.DecodeProductForm(
			models.ProductCategory(c.PostForm("productCategory")),
			c.Request.MultipartForm.Value,
		)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		session := middleware.CurrentSession(c)
		companyId, _ := primitive.ObjectIDFromHex(session.CompanyId)

		productId, err := pc.productService.CreateProduct(ctx, companyId, form, images)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "product created", gin.H{
			"productId": productId.Hex(),
		})
	}
}

// GetProduct handles GET /products/:productid.
func (pc *ProductController) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productId, ok := ParseObjectIDParam(c, "productid")
		if !ok {
			return
		}

		product, err := pc.productService.GetProduct(ctx, productId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", product)
	}
}

// GetProductForm handles GET /products/:productid/form. It returns the
// category's edit-form shape with every field populated, so the client can
// render the form without mapping the raw record itself.
func (pc *ProductController) GetProductForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productId, ok := ParseObjectIDParam(c, "productid")
		if !ok {
			return
		}

		form, err := pc.productService.GetProductForm(ctx, productId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"productCategory": form.FormCategory(),
			"form":            form,
		})
	}
}

// ListProducts handles GET /products. An optional category query narrows
// the listing to one category.
func (pc *ProductController) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var category models.ProductCategory
		if raw := c.Query("category"); raw != "" {
			parsed, err := models.ParseProductCategory(raw)
			if err != nil {
				util.HandleFailure(c, err)
				return
			}
			category = parsed
		}

		paginationArgs := helpers.GetPaginationArgs(c)
		products, count, err := pc.productService.ListProducts(ctx, category, paginationArgs)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		HandlePaginationAndResponse(c, products, count, paginationArgs, "success")
	}
}

// UpdateProduct handles PUT /products/:productid. Same multipart shape as
// create; the response carries the refetched form.
func (pc *ProductController) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productId, ok := ParseObjectIDParam(c, "productid")
		if !ok {
			return
		}

		images, _, err := helpers.HandleSequentialImages(c)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		form, err := forms.DecodeProductForm(
			models.ProductCategory(c.PostForm("productCategory")),
			c.Request.MultipartForm.Value,
		)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		// New images replace the old set wholesale; capture the old URLs so
		// the replaced uploads can be destroyed after the write.
		var oldImages []string
		if len(images) > 0 {
			if current, err := pc.productService.GetProduct(ctx, productId); err == nil && current != nil {
				oldImages = current.Images
			}
		}

		updated, err := pc.productService.UpdateProduct(ctx, productId, form, images)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		if len(images) > 0 {
			helpers.CleanupImages(oldImages)
		}

		util.HandleSuccess(c, http.StatusOK, "product updated", gin.H{
			"productCategory": updated.FormCategory(),
			"form":            updated,
		})
	}
}

// UpdateBaseStones handles PUT /products/:productid/stones. Stone and
// accessory blocks of a base product save separately from the scalar
// payload.
func (pc *ProductController) UpdateBaseStones() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productId, ok := ParseObjectIDParam(c, "productid")
		if !ok {
			return
		}

		if err := c.Request.ParseMultipartForm(helpers.MAX_FILE_SIZE); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		form, err := forms.DecodeProductForm(
			models.ProductCategory(c.PostForm("productCategory")),
			c.Request.MultipartForm.Value,
		)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		baseForm, ok := form.(models.BaseProductForm)
		if !ok {
			util.HandleFailure(c, &apperror.UnknownCategoryError{Value: string(form.FormCategory())})
			return
		}

		updated, err := pc.productService.UpdateBaseStones(ctx, productId, baseForm)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "stones updated", gin.H{
			"productCategory": updated.FormCategory(),
			"form":            updated,
		})
	}
}

// DeleteProduct handles DELETE /products/:productid.
func (pc *ProductController) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productId, ok := ParseObjectIDParam(c, "productid")
		if !ok {
			return
		}

		product, err := pc.productService.GetProduct(ctx, productId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		if err := pc.productService.DeleteProduct(ctx, productId); err != nil {
			util.HandleFailure(c, err)
			return
		}

		helpers.CleanupImages(product.Images)

		util.HandleSuccess(c, http.StatusOK, "product deleted", nil)
	}
}
