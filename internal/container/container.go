package container

import (
	"jarin-io/api/internal/auth"
	"jarin-io/api/pkg/controllers"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type ServiceContainer struct {
	UserService       services.UserService
	CompanyService    services.CompanyService
	CustomerService   services.CustomerService
	MasterDataService services.MasterDataService
	AddressService    services.AddressService
	ProductService    services.ProductService
	Sessions          *auth.SessionStore

	AuthController       *controllers.AuthController
	UserController       *controllers.UserController
	CompanyController    *controllers.CompanyController
	CustomerController   *controllers.CustomerController
	MasterDataController *controllers.MasterDataController
	AddressController    *controllers.AddressController
	ProductController    *controllers.ProductController
}

func NewServiceContainer() *ServiceContainer {
	sessions := auth.NewSessionStore(util.REDIS)

	userService := services.NewUserService()
	masterDataService := services.NewMasterDataService()
	addressService := services.NewAddressService()
	companyService := services.NewCompanyService(addressService)
	customerService := services.NewCustomerService(addressService)

	resolver := services.NewReferenceResolver(masterDataService)
	productService := services.NewProductService(resolver)

	return &ServiceContainer{
		UserService:       userService,
		CompanyService:    companyService,
		CustomerService:   customerService,
		MasterDataService: masterDataService,
		AddressService:    addressService,
		ProductService:    productService,
		Sessions:          sessions,

		AuthController:       controllers.InitAuthController(userService, companyService, sessions),
		UserController:       controllers.InitUserController(userService),
		CompanyController:    controllers.InitCompanyController(companyService, sessions),
		CustomerController:   controllers.InitCustomerController(customerService),
		MasterDataController: controllers.InitMasterDataController(masterDataService),
		AddressController:    controllers.InitAddressController(addressService),
		ProductController:    controllers.InitProductController(productService),
	}
}
