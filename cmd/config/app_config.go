package config

import (
	"context"
	"os"
	"time"

	"Gardener-Assistant-Backend/internal/api/handlers"
	"Gardener-Assistant-Backend/internal/api/routes"
	"Gardener-Assistant-Backend/internal/middleware"
	"Gardener-Assistant-Backend/internal/utils"
	"Gardener-Assistant-Backend/internal/utils/storage"
	"Gardener-Assistant-Backend/pkg/assistant"
	"Gardener-Assistant-Backend/pkg/booking"
	"Gardener-Assistant-Backend/pkg/device"
	"Gardener-Assistant-Backend/pkg/diagnosis"
	"Gardener-Assistant-Backend/pkg/field"
	"Gardener-Assistant-Backend/pkg/jwt"
	"Gardener-Assistant-Backend/pkg/payment"
	"Gardener-Assistant-Backend/pkg/store"
	"Gardener-Assistant-Backend/pkg/user"
	"Gardener-Assistant-Backend/pkg/weather"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	deviceRepository := device.NewDeviceRepository(db)
	assistantRepository := assistant.NewAssistantRepository(db)
	diagnosisRepository := diagnosis.NewDiagnosisRepository(db)
	storeRepository := store.NewStoreRepository(db)
	fieldRepository := field.NewFieldRepository(db)
	bookingRepository := booking.NewBookingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	deviceService := device.NewDeviceService(deviceRepository)
	assistantService := assistant.NewAssistantService(
		assistantRepository,
		assistant.NewMatcher(nil),
		assistant.NewRealDelayer(),
	)

	// Remedy generation runs against Gemini when an API key is configured;
	// otherwise the static demo provider answers every disease.
	var provider diagnosis.Provider
	if generator, err := diagnosis.NewGeminiGenerator(context.Background()); err != nil {
		log.Warnf("gemini unavailable, using demo diagnosis provider: %v", err)
	} else {
		provider = diagnosis.NewGeneratedProvider(generator)
	}
	diagnosisService := diagnosis.NewDiagnosisService(diagnosisRepository, provider, s3)

	paymentService := payment.NewPaymentService()
	storeService := store.NewStoreService(storeRepository, userRepository, paymentService)
	fieldService := field.NewFieldService(fieldRepository)
	bookingService := booking.NewBookingService(bookingRepository, fieldRepository, userRepository)
	weatherService := weather.NewWeatherService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	deviceHandler := handlers.NewDeviceHandler(deviceService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService, validator)
	storeHandler := handlers.NewStoreHandler(storeService, validator)
	fieldHandler := handlers.NewFieldHandler(fieldService, validator)
	bookingHandler := handlers.NewBookingHandler(bookingService, validator)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		DeviceHandler:    deviceHandler,
		AssistantHandler: assistantHandler,
		DiagnosisHandler: diagnosisHandler,
		StoreHandler:     storeHandler,
		FieldHandler:     fieldHandler,
		BookingHandler:   bookingHandler,
		WeatherHandler:   weatherHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
