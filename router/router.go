package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/controllers"
	"github.com/feastly/ordering-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())

	userCtrl := controllers.NewUserController(db)
	addressCtrl := controllers.NewAddressController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewItemController(db)
	offerCtrl := controllers.NewOfferController(db)
	availabilityCtrl := controllers.NewAvailabilityController(db)
	locationCtrl := controllers.NewLocationController(db)
	settingCtrl := controllers.NewSettingController(db)
	pricingCtrl := controllers.NewPricingController(db)
	orderCtrl := controllers.NewOrderController(db)

	// Public
	strict := middlewares.NewStrictRateLimiter()
	r.POST("/register", strict, userCtrl.Register)
	r.POST("/login", strict, userCtrl.Login)
	r.GET("/menu", itemCtrl.GetMenu)
	r.GET("/menu/:item_id", itemCtrl.GetItemByID)
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/offers", offerCtrl.GetActiveOffers)
	r.GET("/availability", availabilityCtrl.GetAvailability)
	r.GET("/locations", locationCtrl.GetAllLocations)

	// Authenticated customers
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.GET("/addresses", addressCtrl.ListMyAddresses)
		auth.POST("/addresses", addressCtrl.CreateAddress)
		auth.DELETE("/addresses/:address_id", addressCtrl.DeleteAddress)

		auth.POST("/orders/price", pricingCtrl.PriceOrder)
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// Admin surface
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		admin.POST("/items", itemCtrl.CreateItem)
		admin.PATCH("/items/:item_id", itemCtrl.UpdateItem)
		admin.DELETE("/items/:item_id", itemCtrl.DeleteItem)
		admin.POST("/items/:item_id/sizes", itemCtrl.AddSize)
		admin.POST("/items/:item_id/add-ons", itemCtrl.AddAddOn)

		admin.GET("/offers", offerCtrl.GetAllOffers)
		admin.POST("/offers", offerCtrl.CreateOffer)
		admin.PATCH("/offers/:offer_id", offerCtrl.UpdateOffer)
		admin.DELETE("/offers/:offer_id", offerCtrl.DeleteOffer)

		admin.POST("/closure", availabilityCtrl.SetClosure)
		admin.GET("/schedule", availabilityCtrl.GetSchedule)
		admin.PUT("/schedule", availabilityCtrl.UpsertScheduleDay)
		admin.GET("/holidays", availabilityCtrl.GetHolidays)
		admin.POST("/holidays", availabilityCtrl.CreateHoliday)
		admin.DELETE("/holidays/:holiday_id", availabilityCtrl.DeleteHoliday)

		admin.POST("/locations", locationCtrl.CreateLocation)
		admin.PATCH("/locations/:location_id", locationCtrl.UpdateLocation)
		admin.DELETE("/locations/:location_id", locationCtrl.DeleteLocation)

		admin.GET("/settings", settingCtrl.GetSettings)
		admin.PATCH("/settings", settingCtrl.UpdateSettings)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
