package diagnosis

import (
	"context"

	"Gardener-Assistant-Backend/domain"
)

// Provider is one diagnosis strategy. The static provider serves demo and
// offline mode; the generated provider asks a text-generation model about a
// named disease.
type Provider interface {
	Diagnose(ctx context.Context, diseaseName string) (domain.PlantIssueDiagnosis, error)
}

type staticProvider struct{}

func NewStaticProvider() Provider {
	return staticProvider{}
}

func (staticProvider) Diagnose(_ context.Context, _ string) (domain.PlantIssueDiagnosis, error) {
	return staticDiagnosis, nil
}

// staticDiagnosis is the fixed demo record shown when no model is configured.
var staticDiagnosis = domain.PlantIssueDiagnosis{
	Kind:     domain.IssueDisease,
	Name:     "Early Blight",
	Severity: domain.SeverityHigh,
	Description: "Dark concentric rings on the lower, older leaves that spread upward. " +
		"Caused by the fungus Alternaria solani and favored by warm, humid weather.",
	Treatment: "Remove and destroy affected leaves, mulch to stop soil splash, and apply a " +
		"copper-based fungicide weekly until no new spots appear.",
	Products: []domain.RecommendedProduct{
		{Name: "Copper Fungicide Concentrate 250ml", Price: 12.50, InStock: true},
		{Name: "Neem Oil Spray 500ml", Price: 9.90, InStock: true},
		{Name: "Straw Mulch Bale", Price: 7.00, InStock: false},
	},
	Remedies: []domain.OrganicRemedy{
		{
			Name:       "Baking Soda Spray",
			Difficulty: domain.DifficultyEasy,
			PrepTime:   "10 minutes",
			Ingredients: []string{
				"1 tablespoon baking soda",
				"1 teaspoon vegetable oil",
				"A few drops of mild liquid soap",
				"4 liters of water",
			},
			Instructions: []string{
				"Dissolve the baking soda in the water.",
				"Stir in the oil and soap so the mix sticks to leaves.",
				"Spray both sides of the foliage in the evening.",
				"Repeat every 7 days and after rain.",
			},
			Effectiveness: 70,
			Tips:          "Test on a single leaf first; strong mixes can scorch foliage.",
		},
		{
			Name:       "Compost Tea Drench",
			Difficulty: domain.DifficultyMedium,
			PrepTime:   "24-48 hours",
			Ingredients: []string{
				"2 cups mature compost",
				"10 liters of water",
				"Cheesecloth or an old pillowcase",
			},
			Instructions: []string{
				"Steep the compost in the water for one to two days, stirring occasionally.",
				"Strain through the cloth.",
				"Water the soil around affected plants weekly.",
			},
			Effectiveness: 55,
			Tips:          "Use it fresh; the microbial benefit fades within a day.",
		},
	},
}
