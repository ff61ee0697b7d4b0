package routers

import (
	"github.com/gin-gonic/gin"

	"jarin-io/api/internal/common"
	"jarin-io/api/internal/container"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/controllers"
)

// InitRoute creates the Gin router with the service layer wired in.
func InitRoute() *gin.Engine {
	sc := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/v1", middleware.JarinRateLimiter())
	{
		api.GET("/ping", controllers.Ping())
		api.POST("/auth", sc.AuthController.Login())

		authed := api.Group("", middleware.Auth(sc.Sessions))
		{
			// Reachable while the force-change-password gate is up.
			authed.POST("/auth/logout", sc.AuthController.Logout())
			authed.GET("/auth/me", sc.AuthController.CurrentUser())
			authed.PUT("/auth/password", sc.AuthController.ChangePassword())
		}

		secured := api.Group("", middleware.Auth(sc.Sessions), middleware.RequirePasswordRotated())
		{
			productRoutes(secured, sc)
			masterDataRoutes(secured, sc)
			addressRoutes(secured, sc)
			companyRoutes(secured, sc)
			customerRoutes(secured, sc)
			userRoutes(secured, sc)
		}
	}

	return router
}

func productRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	products := api.Group("/products")

	products.GET("", sc.ProductController.ListProducts())
	products.GET("/:productid", sc.ProductController.GetProduct())
	products.GET("/:productid/form", sc.ProductController.GetProductForm())

	write := products.Group("", middleware.RequirePermission(sc.UserService, common.PermManageProducts))
	write.POST("", sc.ProductController.CreateProduct())
	write.PUT("/:productid", sc.ProductController.UpdateProduct())
	write.PUT("/:productid/stones", sc.ProductController.UpdateBaseStones())
	write.DELETE("/:productid", sc.ProductController.DeleteProduct())
}

func masterDataRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	master := api.Group("/master")

	master.GET("/record/:masterid", sc.MasterDataController.GetByID())
	master.GET("/:type", sc.MasterDataController.ListByType())
	master.GET("/:type/options", sc.MasterDataController.Options())

	write := master.Group("", middleware.RequirePermission(sc.UserService, common.PermManageMaster))
	write.POST("/:type", sc.MasterDataController.Create())
}

func addressRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	address := api.Group("/address")

	address.GET("/provinces", sc.AddressController.Provinces())
	address.GET("/provinces/:provinceid/districts", sc.AddressController.Districts())
	address.GET("/districts/:districtid/subdistricts", sc.AddressController.SubDistricts())
}

func companyRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	company := api.Group("/company")

	company.GET("", sc.CompanyController.GetCompany())
	company.POST("", sc.CompanyController.CreateCompany())
	company.PUT("/:companyid", sc.CompanyController.UpdateCompany())
}

func customerRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	customers := api.Group("/customers")

	customers.GET("", sc.CustomerController.ListCustomers())
	customers.GET("/:customerid", sc.CustomerController.GetCustomer())
	customers.POST("", sc.CustomerController.CreateCustomer())
	customers.PUT("/:customerid", sc.CustomerController.UpdateCustomer())
	customers.DELETE("/:customerid", sc.CustomerController.DeleteCustomer())
}

func userRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	users := api.Group("/users", middleware.RequirePermission(sc.UserService, common.PermManageUsers))

	users.GET("", sc.UserController.ListUsers())
	users.GET("/:userid", sc.UserController.GetUser())
	users.POST("", sc.UserController.CreateUser())
	users.PUT("/:userid", sc.UserController.UpdateUser())
	users.DELETE("/:userid", sc.UserController.DeleteUser())

	api.GET("/permissions", sc.UserController.ListPermissions())
}
