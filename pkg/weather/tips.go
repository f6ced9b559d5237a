package weather

import (
	"strings"

	"Gardener-Assistant-Backend/domain"
)

// conditionTips maps a forecast condition to gardening advice. Unknown
// conditions fall back to the generic list.
var conditionTips = map[string][]string{
	"sunny": {
		"Water early in the morning before the heat sets in.",
		"Shade-cloth young seedlings during the hottest hours.",
		"Harvest leafy greens before midday so they stay crisp.",
	},
	"rain": {
		"Skip watering today and let the rain do the work.",
		"Hold off on spraying; rain washes treatments away.",
		"Check drainage around beds and clear blocked channels.",
	},
	"cloudy": {
		"A good day for transplanting; seedlings lose less water.",
		"Inspect leaves for pests while the light is soft.",
		"Apply foliar feeds; they absorb better without harsh sun.",
	},
	"storm": {
		"Stake tall plants and secure row covers before the wind arrives.",
		"Move potted plants against a sheltered wall.",
		"Postpone any drone service until the weather clears.",
	},
	"hot": {
		"Mulch beds to keep roots cool and moisture in.",
		"Water deeply in the evening if leaves wilt after a hot day.",
		"Avoid fertilizing; heat-stressed plants burn easily.",
	},
	"cold": {
		"Cover tender crops with fleece before nightfall.",
		"Water at midday so soil is not wet going into a cold night.",
		"Delay sowing warm-season seeds until the soil warms.",
	},
}

var genericTips = []string{
	"Check soil moisture before watering; the top 3 cm tell the story.",
	"Walk your beds daily; most problems are cheap to fix when caught early.",
	"Keep a simple log of what you planted where and when.",
}

type WeatherService interface {
	GetTips(condition string) domain.WeatherTipsResponse
}

type weatherService struct{}

func NewWeatherService() WeatherService {
	return weatherService{}
}

func (weatherService) GetTips(condition string) domain.WeatherTipsResponse {
	normalized := strings.ToLower(strings.TrimSpace(condition))
	tips, ok := conditionTips[normalized]
	if !ok {
		return domain.WeatherTipsResponse{Condition: "general", Tips: genericTips}
	}
	return domain.WeatherTipsResponse{Condition: normalized, Tips: tips}
}
