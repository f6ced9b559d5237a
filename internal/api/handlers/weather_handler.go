package handlers

import (
	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/weather"

	"github.com/gofiber/fiber/v2"
)

type (
	WeatherHandler interface {
		GetTips(c *fiber.Ctx) error
	}

	weatherHandler struct {
		weatherService weather.WeatherService
	}
)

func NewWeatherHandler(weatherService weather.WeatherService) WeatherHandler {
	return &weatherHandler{weatherService: weatherService}
}

func (h *weatherHandler) GetTips(c *fiber.Ctx) error {
	condition := c.Query("condition")

	res := h.weatherService.GetTips(condition)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTips)
}
