package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTips_KnownCondition(t *testing.T) {
	svc := NewWeatherService()

	res := svc.GetTips("  Sunny ")
	assert.Equal(t, "sunny", res.Condition)
	assert.Equal(t, conditionTips["sunny"], res.Tips)
}

func TestGetTips_UnknownConditionFallsBack(t *testing.T) {
	svc := NewWeatherService()

	res := svc.GetTips("volcanic ash")
	assert.Equal(t, "general", res.Condition)
	assert.Equal(t, genericTips, res.Tips)
}
