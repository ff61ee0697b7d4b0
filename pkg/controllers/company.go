package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarin-io/api/internal/auth"
	"jarin-io/api/internal/common"
	"jarin-io/api/internal/helpers"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/forms"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type CompanyController struct {
	companyService services.CompanyService
	sessions       *auth.SessionStore
}

func InitCompanyController(companyService services.CompanyService, sessions *auth.SessionStore) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		sessions:       sessions,
	}
}

// bindCompanyForm decodes the multipart company body. The logo file rides
// alongside the scalar fields, so this path is formdata, not JSON.
func bindCompanyForm(c *gin.Context) (models.CompanyRequest, bool) {
	if err := c.Request.ParseMultipartForm(helpers.MAX_FILE_SIZE); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return models.CompanyRequest{}, false
	}

	req := forms.DecodeCompanyRequest(c.Request.MultipartForm.Value)
	if err := common.Validate.Struct(req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return models.CompanyRequest{}, false
	}

	return req, true
}

// CreateCompany handles POST /company. The new company id is stored on the
// current session so subsequent product saves attribute correctly.
func (cc *CompanyController) CreateCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		req, ok := bindCompanyForm(c)
		if !ok {
			return
		}

		logoURL, err := helpers.HandleSingleImage(c, "logo")
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		companyId, err := cc.companyService.CreateCompany(ctx, req, logoURL)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		if err := cc.sessions.SetCompany(ctx, middleware.CurrentToken(c), companyId.Hex()); err != nil {
			util.LogError("failed to set company on session", err)
		}

		util.HandleSuccess(c, http.StatusCreated, "company created", gin.H{
			"companyId": companyId.Hex(),
		})
	}
}

// GetCompany handles GET /company.
func (cc *CompanyController) GetCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		company, err := cc.companyService.DefaultCompany(ctx)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", company)
	}
}

// UpdateCompany handles PUT /company/:companyid.
func (cc *CompanyController) UpdateCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		companyId, ok := ParseObjectIDParam(c, "companyid")
		if !ok {
			return
		}

		req, ok := bindCompanyForm(c)
		if !ok {
			return
		}

		logoURL, err := helpers.HandleSingleImage(c, "logo")
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		// A replaced logo leaves the previous upload orphaned; capture it
		// before the update overwrites the record.
		oldLogoURL := ""
		if logoURL != "" {
			if current, err := cc.companyService.GetCompany(ctx, companyId); err == nil && current != nil {
				oldLogoURL = current.LogoURL
			}
		}

		if err := cc.companyService.UpdateCompany(ctx, companyId, req, logoURL); err != nil {
			util.HandleFailure(c, err)
			return
		}

		if oldLogoURL != "" && oldLogoURL != logoURL {
			helpers.CleanupImages([]string{oldLogoURL})
		}

		util.HandleSuccess(c, http.StatusOK, "company updated", nil)
	}
}
