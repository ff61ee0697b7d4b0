package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type AddressController struct {
	addressService services.AddressService
}

func InitAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// Provinces handles GET /address/provinces.
func (ac *AddressController) Provinces() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		provinces, err := ac.addressService.Provinces(ctx)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", provinces)
	}
}

// Districts handles GET /address/provinces/:provinceid/districts.
func (ac *AddressController) Districts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		provinceId, ok := ParseObjectIDParam(c, "provinceid")
		if !ok {
			return
		}

		districts, err := ac.addressService.Districts(ctx, provinceId.Hex())
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		// The parent id rides along so a client can discard a response that
		// arrives after the province selection already changed.
		util.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"provinceId": provinceId.Hex(),
			"districts":  districts,
		})
	}
}

// SubDistricts handles GET /address/districts/:districtid/subdistricts.
// Each option carries its zipcode so selection fills the zipcode field
// without another round trip.
func (ac *AddressController) SubDistricts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		districtId, ok := ParseObjectIDParam(c, "districtid")
		if !ok {
			return
		}

		subDistricts, err := ac.addressService.SubDistricts(ctx, districtId.Hex())
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"districtId":   districtId.Hex(),
			"subDistricts": subDistricts,
		})
	}
}
