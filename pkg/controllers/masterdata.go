package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type MasterDataController struct {
	masterDataService services.MasterDataService
}

func InitMasterDataController(masterDataService services.MasterDataService) *MasterDataController {
	return &MasterDataController{masterDataService: masterDataService}
}

// ListByType handles GET /master/:type.
func (mc *MasterDataController) ListByType() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		masterType, ok := models.ParseMasterType(c.Param("type"))
		if !ok {
			util.HandleFailure(c, apperror.NewValidation("type", "unknown master data type"))
			return
		}

		records, err := mc.masterDataService.ListByType(ctx, masterType)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", records)
	}
}

// Options handles GET /master/:type/options. The response is the
// value/label pair list a select input consumes directly.
func (mc *MasterDataController) Options() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		masterType, ok := models.ParseMasterType(c.Param("type"))
		if !ok {
			util.HandleFailure(c, apperror.NewValidation("type", "unknown master data type"))
			return
		}

		options, err := mc.masterDataService.Options(ctx, masterType)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", options)
	}
}

// Create handles POST /master/:type. Creation is idempotent on the
// normalized name, so re-posting an existing name returns its id.
func (mc *MasterDataController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		masterType, ok := models.ParseMasterType(c.Param("type"))
		if !ok {
			util.HandleFailure(c, apperror.NewValidation("type", "unknown master data type"))
			return
		}

		var req models.MasterDataRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		id, err := mc.masterDataService.EnsureMaster(ctx, masterType, req.Name)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "master record ensured", gin.H{
			"_id": id.Hex(),
		})
	}
}

// GetByID handles GET /master/record/:masterid.
func (mc *MasterDataController) GetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		masterId, ok := ParseObjectIDParam(c, "masterid")
		if !ok {
			return
		}

		record, err := mc.masterDataService.GetByID(ctx, masterId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", record)
	}
}
