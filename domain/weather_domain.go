package domain

var (
	MessageSuccessGetTips = "weather tips retrieved successfully"
	MessageFailedGetTips  = "failed to retrieve weather tips"
)

type (
	WeatherTipsResponse struct {
		Condition string   `json:"condition"`
		Tips      []string `json:"tips"`
	}
)
