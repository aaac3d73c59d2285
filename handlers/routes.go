package handlers

import (
	"travel-gateway/middleware"

	"github.com/gin-gonic/gin"
)

// Cache key prefixes of the public read endpoints.
const (
	cacheBlogs          = "blogs"
	cacheTags           = "tags"
	cacheTourTypes      = "tour-types"
	cacheTourPackages   = "tour-packages"
	cacheDestinations   = "destinations"
	cacheVisaChecklists = "visa-checklists"
)

// API groups the handlers and the middleware the routes are built from.
type API struct {
	Auth         *AuthHandler
	Blog         *BlogHandler
	Tag          *TagHandler
	Tour         *TourPackageHandler
	Destination  *DestinationHandler
	Visa         *VisaChecklistHandler
	Pricing      *PricingHandler
	Request      *RequestHandler
	Subscriber   *SubscriberHandler
	Notification *NotificationHandler

	RequireAuth  gin.HandlerFunc
	StreamAuth   gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
	RateLimit    gin.HandlerFunc
	Cache        *middleware.ResponseCache
}

// Register mounts every /api/v1 route on r.
func (a *API) Register(r gin.IRouter) {
	v1 := r.Group("/api/v1")

	// public reads go through the response cache, writes drop it
	read := func(prefix string, h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{a.OptionalAuth, a.Cache.Cache(prefix), h}
	}
	write := func(h gin.HandlerFunc, prefixes ...string) []gin.HandlerFunc {
		return []gin.HandlerFunc{a.RequireAuth, a.Cache.Invalidate(prefixes...), h}
	}
	private := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{a.RequireAuth, h}
	}
	intake := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{a.RateLimit, h}
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/signup", intake(a.Auth.SignUp)...)
		auth.POST("/login", intake(a.Auth.Login)...)
		auth.POST("/refresh-token", a.Auth.RefreshToken)
		auth.POST("/request-password-reset", intake(a.Auth.RequestPasswordReset)...)
		auth.POST("/reset-password", a.Auth.ResetPassword)
		auth.GET("/me", private(a.Auth.GetCurrentUser)...)
		auth.PUT("/me", private(a.Auth.UpdatePersonalInfo)...)
		auth.PUT("/change-password", private(a.Auth.ChangePassword)...)
	}

	users := v1.Group("/users")
	{
		users.GET("", private(a.Auth.GetUsers)...)
		users.GET("/:id", private(a.Auth.GetUser)...)
	}

	blogs := v1.Group("/blogs")
	{
		blogs.POST("", write(a.Blog.CreateBlog, cacheBlogs)...)
		blogs.GET("", private(a.Blog.GetAllBlogs)...)
		blogs.GET("/search", private(a.Blog.SearchBlogs)...)
		blogs.GET("/drafts", private(a.Blog.GetAllDraftBlogs)...)
		blogs.GET("/archived", private(a.Blog.GetAllArchivedBlogs)...)
		blogs.GET("/highlighted", read(cacheBlogs, a.Blog.GetHighlightedBlog)...)
		blogs.GET("/published", read(cacheBlogs, a.Blog.GetAllPublishedBlogs)...)
		blogs.GET("/:id", read(cacheBlogs, a.Blog.GetOneBlog)...)
		blogs.PUT("/:id", write(a.Blog.EditBlog, cacheBlogs)...)
		blogs.PATCH("/:id/status", write(a.Blog.UpdateBlogStatus, cacheBlogs)...)
		blogs.DELETE("/:id", write(a.Blog.DeleteBlog, cacheBlogs)...)
	}

	tags := v1.Group("/blog-tags")
	{
		tags.POST("", write(a.Tag.CreateTag, cacheTags)...)
		tags.GET("", read(cacheTags, a.Tag.GetTags)...)
		tags.PUT("/:id", write(a.Tag.EditTag, cacheTags, cacheBlogs)...)
		tags.DELETE("/:id", write(a.Tag.DeleteTag, cacheTags)...)
	}

	tourTypes := v1.Group("/tour-types")
	{
		tourTypes.POST("", write(a.Tag.CreateTourType, cacheTourTypes)...)
		tourTypes.GET("", read(cacheTourTypes, a.Tag.GetTourTypes)...)
		tourTypes.PUT("/:id", write(a.Tag.EditTourType, cacheTourTypes, cacheTourPackages)...)
		tourTypes.DELETE("/:id", write(a.Tag.DeleteTourType, cacheTourTypes, cacheTourPackages)...)
	}

	tours := v1.Group("/tour-packages")
	{
		tours.POST("", write(a.Tour.CreateTourPackage, cacheTourPackages)...)
		tours.GET("", private(a.Tour.GetAllTours)...)
		tours.GET("/search", private(a.Tour.SearchTours)...)
		tours.GET("/highlighted", read(cacheTourPackages, a.Tour.GetHighlightedTourPackages)...)
		tours.GET("/published", read(cacheTourPackages, a.Tour.GetAllPublishedTours)...)
		tours.GET("/:id", read(cacheTourPackages, a.Tour.GetOneTourPackage)...)
		tours.PUT("/:id", write(a.Tour.EditTourPackage, cacheTourPackages)...)
		tours.PATCH("/:id/status", write(a.Tour.UpdateTourPackageStatus, cacheTourPackages)...)
		tours.DELETE("/:id", write(a.Tour.DeleteTourPackage, cacheTourPackages)...)
	}

	destinations := v1.Group("/destinations")
	{
		destinations.POST("", write(a.Destination.CreateDestinationTravel, cacheDestinations)...)
		destinations.GET("", private(a.Destination.GetAllDestinationTravels)...)
		destinations.GET("/search", private(a.Destination.SearchTourTitles)...)
		destinations.GET("/highlighted", read(cacheDestinations, a.Destination.GetHighlightedDestinations)...)
		destinations.GET("/published", read(cacheDestinations, a.Destination.GetAllPublishedDestinations)...)
		destinations.GET("/:id", read(cacheDestinations, a.Destination.GetDestinationTravel)...)
		destinations.PUT("/:id", write(a.Destination.EditDestinationTravel, cacheDestinations)...)
		destinations.PATCH("/:id/status", write(a.Destination.UpdateDestinationTravelStatus, cacheDestinations)...)
		destinations.DELETE("/:id", write(a.Destination.DeleteDestinationTravel, cacheDestinations)...)
	}

	visas := v1.Group("/visa-checklists")
	{
		visas.POST("", write(a.Visa.CreateVisaChecklist, cacheVisaChecklists)...)
		visas.GET("", private(a.Visa.GetAllVisaChecklists)...)
		visas.GET("/search", private(a.Visa.SearchVisaChecklist)...)
		visas.GET("/highlighted", read(cacheVisaChecklists, a.Visa.GetHighlightedVisaChecklist)...)
		visas.GET("/published", read(cacheVisaChecklists, a.Visa.GetAllPublishedVisaChecklists)...)
		visas.GET("/:id", read(cacheVisaChecklists, a.Visa.GetVisaChecklist)...)
		visas.PUT("/:id", write(a.Visa.EditVisaChecklist, cacheVisaChecklists)...)
		visas.PATCH("/:id/status", write(a.Visa.ChangeVisaChecklistStatus, cacheVisaChecklists)...)
		visas.DELETE("/:id", write(a.Visa.DeleteVisaChecklist, cacheVisaChecklists)...)
	}

	clientOptions := v1.Group("/client-price-options")
	{
		clientOptions.POST("", write(a.Pricing.CreateClientPriceOption, cacheTourPackages, cacheDestinations)...)
		clientOptions.GET("", private(a.Pricing.GetClientPriceOptions)...)
		clientOptions.PUT("/:id", write(a.Pricing.EditClientPriceOption, cacheTourPackages, cacheDestinations)...)
		clientOptions.DELETE("/:id", write(a.Pricing.DeleteClientPriceOption, cacheTourPackages, cacheDestinations)...)
	}

	visaOptions := v1.Group("/visa-price-options")
	{
		visaOptions.POST("", write(a.Pricing.CreateVisaPriceOption, cacheVisaChecklists)...)
		visaOptions.GET("", private(a.Pricing.GetVisaPriceOptions)...)
		visaOptions.PUT("/:id", write(a.Pricing.EditVisaPriceOption, cacheVisaChecklists)...)
		visaOptions.DELETE("/:id", write(a.Pricing.DeleteVisaPriceOption, cacheVisaChecklists)...)
	}

	requests := v1.Group("/requests")
	{
		requests.POST("/flight-booking", intake(a.Request.RequestFlightBooking())...)
		requests.POST("/visa", intake(a.Request.CreateVisaRequest())...)
		requests.POST("/private-jet", intake(a.Request.RequestPrivateJet())...)
		requests.POST("/hotel-reservation", intake(a.Request.RequestHotelReservation())...)
		requests.POST("/tour-package", intake(a.Request.RequestTourPackage())...)
		requests.POST("/executive-shuttle", intake(a.Request.RequestExecutiveShuttle())...)
		requests.POST("/travel-insurance", intake(a.Request.RequestTravelInsurance())...)
		requests.POST("/sehembz-pay", intake(a.Request.RequestSehembzPay())...)
		requests.GET("", private(a.Request.GetAllRequests)...)
		requests.GET("/:id", private(a.Request.GetRequestByID)...)
		requests.PATCH("/:id/status", private(a.Request.UpdateRequestStatus)...)
	}

	subscribers := v1.Group("/subscribers")
	{
		subscribers.POST("", intake(a.Subscriber.SubscribeToUpdates)...)
		subscribers.GET("", private(a.Subscriber.GetAllSubscribers)...)
		subscribers.GET("/search", private(a.Subscriber.SearchSubscribers)...)
	}

	// the stream also accepts the token query parameter
	v1.GET("/notifications/stream", a.StreamAuth, a.Notification.Stream)
}
