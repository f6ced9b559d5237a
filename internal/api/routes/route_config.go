package routes

import (
	"Gardener-Assistant-Backend/internal/api/handlers"
	"Gardener-Assistant-Backend/internal/middleware"
	"Gardener-Assistant-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	DeviceHandler    handlers.DeviceHandler
	AssistantHandler handlers.AssistantHandler
	DiagnosisHandler handlers.DiagnosisHandler
	StoreHandler     handlers.StoreHandler
	FieldHandler     handlers.FieldHandler
	BookingHandler   handlers.BookingHandler
	WeatherHandler   handlers.WeatherHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Gardener()
	c.Assistant()
	c.Diagnosis()
	c.Store()
	c.Fields()
	c.Bookings()
	c.Weather()
	c.GuestRoute()
}

// Gardener covers account and device routes. The mobile app calls
// /api/v1/gardener/login and /api/v1/gardener/addDevice by these exact paths.
func (c *Config) Gardener() {
	gardener := c.App.Group("/api/v1/gardener")
	{
		gardener.Post("/register", c.UserHandler.Register)
		gardener.Post("/login", c.UserHandler.Login)
		gardener.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		gardener.Post("/addDevice", c.Middleware.AuthMiddleware(c.JWTService), c.DeviceHandler.AddDevice)
		gardener.Get("/devices", c.Middleware.AuthMiddleware(c.JWTService), c.DeviceHandler.GetDevices)
	}
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))

	assistant.Post("/chat", c.AssistantHandler.SendMessage)
	assistant.Get("/sessions", c.AssistantHandler.ListSessions)
	assistant.Get("/sessions/:id", c.AssistantHandler.GetSession)
	assistant.Delete("/sessions/:id", c.AssistantHandler.ResetSession)
}

func (c *Config) Diagnosis() {
	diagnosis := c.App.Group("/api/v1/diagnosis", c.Middleware.AuthMiddleware(c.JWTService))

	diagnosis.Post("/remedy", c.DiagnosisHandler.Diagnose)
	diagnosis.Post("/scan", c.DiagnosisHandler.UploadScan)
	diagnosis.Get("/scan/:id", c.DiagnosisHandler.GetScanResult)
}

func (c *Config) Store() {
	store := c.App.Group("/api/v1/store")
	store.Get("/products", c.StoreHandler.GetProducts)

	cart := store.Group("/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.StoreHandler.GetCart)
		cart.Post("", c.StoreHandler.AddToCart)
		cart.Patch("", c.StoreHandler.SetQuantity)
		cart.Delete("/:productId", c.StoreHandler.RemoveFromCart)
	}

	store.Post("/checkout", c.Middleware.AuthMiddleware(c.JWTService), c.StoreHandler.Checkout)
}

func (c *Config) Fields() {
	fields := c.App.Group("/api/v1/fields", c.Middleware.AuthMiddleware(c.JWTService))

	fields.Post("", c.FieldHandler.AddField)
	fields.Get("", c.FieldHandler.GetFields)
	fields.Get("/:id", c.FieldHandler.GetFieldByID)
	fields.Put("/:id", c.FieldHandler.UpdateField)
	fields.Delete("/:id", c.FieldHandler.DeleteField)

	fields.Post("/:id/zones", c.FieldHandler.AddZone)
	fields.Delete("/:id/zones/:zoneId", c.FieldHandler.DeleteZone)
}

func (c *Config) Bookings() {
	bookings := c.App.Group("/api/v1/bookings", c.Middleware.AuthMiddleware(c.JWTService))

	bookings.Post("", c.BookingHandler.CreateBooking)
	bookings.Get("", c.BookingHandler.GetBookings)
	bookings.Delete("/:id", c.BookingHandler.CancelBooking)
}

func (c *Config) Weather() {
	c.App.Get("/api/v1/weather/tips", c.WeatherHandler.GetTips)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
