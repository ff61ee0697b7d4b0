package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/internal/helpers"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type CustomerController struct {
	customerService services.CustomerService
}

func InitCustomerController(customerService services.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// CreateCustomer handles POST /customers.
func (cc *CustomerController) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.CustomerRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		session := middleware.CurrentSession(c)
		companyId, _ := primitive.ObjectIDFromHex(session.CompanyId)

		customerId, err := cc.customerService.CreateCustomer(ctx, companyId, req)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "customer created", gin.H{
			"customerId": customerId.Hex(),
		})
	}
}

// GetCustomer handles GET /customers/:customerid.
func (cc *CustomerController) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		customerId, ok := ParseObjectIDParam(c, "customerid")
		if !ok {
			return
		}

		customer, err := cc.customerService.GetCustomer(ctx, customerId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", customer)
	}
}

// ListCustomers handles GET /customers.
func (cc *CustomerController) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		paginationArgs := helpers.GetPaginationArgs(c)
		customers, count, err := cc.customerService.ListCustomers(ctx, paginationArgs)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		HandlePaginationAndResponse(c, customers, count, paginationArgs, "success")
	}
}

// UpdateCustomer handles PUT /customers/:customerid.
func (cc *CustomerController) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		customerId, ok := ParseObjectIDParam(c, "customerid")
		if !ok {
			return
		}

		var req models.CustomerRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		if err := cc.customerService.UpdateCustomer(ctx, customerId, req); err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "customer updated", nil)
	}
}

// DeleteCustomer handles DELETE /customers/:customerid.
func (cc *CustomerController) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		customerId, ok := ParseObjectIDParam(c, "customerid")
		if !ok {
			return
		}

		if err := cc.customerService.DeleteCustomer(ctx, customerId); err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "customer deleted", nil)
	}
}
