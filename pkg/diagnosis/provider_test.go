package diagnosis

import (
	"context"
	"errors"
	"testing"

	"Gardener-Assistant-Backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "Summary": "Powdery mildew is a common fungal disease of cucurbits.",
  "remedies": {
    "Diagnosis": {
      "Disease": "Powdery Mildew",
      "Pathogen": "Podosphaera xanthii",
      "Hosts": "Cucumber, squash, melon",
      "Symptoms": "White powdery patches on leaves {and stems}.",
      "Lifecycle": "Spores overwinter on debris.",
      "Environmental Triggers": "Warm days, cool nights, high humidity."
    },
    "Detailed Remedial Plan": {
      "1. Sanitation": "Remove infected leaves.",
      "2. Spray": "Apply sulfur fungicide weekly."
    }
  },
  "product": {
    "Curated Product List": ["Sulfur Dust 1kg", "Potassium Bicarbonate 500g"],
    "Application Protocol": "Spray at first sign, repeat every 7 days."
  }
}`

func TestParseRemedyReport_DirectJSON(t *testing.T) {
	report, err := ParseRemedyReport(sampleReport)
	require.NoError(t, err)
	assert.Equal(t, "Powdery Mildew", report.Remedies.Diagnosis.Disease)
	assert.Len(t, report.Product.CuratedProductList, 2)
}

func TestParseRemedyReport_ProseWrapped(t *testing.T) {
	wrapped := "Sure! Here is the report you asked for:\n```json\n" + sampleReport + "\n```\nLet me know if you need anything else."

	report, err := ParseRemedyReport(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "Podosphaera xanthii", report.Remedies.Diagnosis.Pathogen)
	// Braces inside string values must not break the balanced scan.
	assert.Contains(t, report.Remedies.Diagnosis.Symptoms, "{and stems}")
}

func TestParseRemedyReport_NotParseable(t *testing.T) {
	_, err := ParseRemedyReport("no json here at all")
	assert.ErrorIs(t, err, domain.ErrResponseNotParseable)

	_, err = ParseRemedyReport("some text { broken json )")
	assert.ErrorIs(t, err, domain.ErrResponseNotParseable)
}

func TestExtractBalancedJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractBalancedJSON(`prefix {"a": 1} suffix {"b": 2}`))
	assert.Equal(t, `{"a": "}"}`, extractBalancedJSON(`x {"a": "}"} y`))
	assert.Equal(t, "", extractBalancedJSON("nothing"))
}

func TestStaticProvider_Invariants(t *testing.T) {
	diag, err := NewStaticProvider().Diagnose(context.Background(), "")
	require.NoError(t, err)

	assert.Contains(t, []string{domain.IssueDisease, domain.IssuePest, domain.IssueNutrient, domain.IssueWatering}, diag.Kind)
	assert.Contains(t, []string{domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh}, diag.Severity)
	require.NotEmpty(t, diag.Remedies)
	for _, remedy := range diag.Remedies {
		assert.Contains(t, []string{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}, remedy.Difficulty)
		assert.GreaterOrEqual(t, remedy.Effectiveness, 0)
		assert.LessOrEqual(t, remedy.Effectiveness, 100)
		assert.NotEmpty(t, remedy.Ingredients)
		assert.NotEmpty(t, remedy.Instructions)
	}
}

type cannedGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *cannedGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

func TestGeneratedProvider_MapsReport(t *testing.T) {
	gen := &cannedGenerator{response: "Model says:\n" + sampleReport}
	provider := NewGeneratedProvider(gen)

	diag, err := provider.Diagnose(context.Background(), "powdery mildew")
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "powdery mildew")
	assert.Equal(t, "Powdery Mildew", diag.Name)
	assert.Equal(t, domain.IssueDisease, diag.Kind)
	assert.Contains(t, diag.Description, "fungal disease")
	assert.Contains(t, diag.Treatment, "Sanitation")
	require.Len(t, diag.Products, 2)
	assert.Equal(t, "Sulfur Dust 1kg", diag.Products[0].Name)
}

func TestGeneratedProvider_ErrorsPropagate(t *testing.T) {
	apiErr := errors.New("api quota exceeded")
	provider := NewGeneratedProvider(&cannedGenerator{err: apiErr})

	_, err := provider.Diagnose(context.Background(), "rust")
	assert.ErrorIs(t, err, apiErr)

	provider = NewGeneratedProvider(&cannedGenerator{response: "I cannot answer that."})
	_, err = provider.Diagnose(context.Background(), "rust")
	assert.ErrorIs(t, err, domain.ErrResponseNotParseable)

	_, err = provider.Diagnose(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrDiseaseNameRequired)
}
