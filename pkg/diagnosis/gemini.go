package diagnosis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator abstracts the generative model so the provider can be tested
// with a canned generator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiGenerator(ctx context.Context) (TextGenerator, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	modelName := utils.GetConfig("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", domain.ErrGeminiProcessingFailed
	}
	return string(text), nil
}

const remedyPromptTemplate = `You are a plant pathology assistant. For the disease "%s", respond ONLY with a valid JSON object with exactly this structure, no markdown and no extra text:
{
  "Summary": string,
  "remedies": {
    "Diagnosis": {
      "Disease": string,
      "Pathogen": string,
      "Hosts": string,
      "Symptoms": string,
      "Lifecycle": string,
      "Environmental Triggers": string
    },
    "Detailed Remedial Plan": { step name: instruction, ... }
  },
  "product": {
    "Curated Product List": [string, ...],
    "Application Protocol": string
  }
}`

type generatedProvider struct {
	generator TextGenerator
}

func NewGeneratedProvider(generator TextGenerator) Provider {
	return &generatedProvider{generator: generator}
}

func (p *generatedProvider) Diagnose(ctx context.Context, diseaseName string) (domain.PlantIssueDiagnosis, error) {
	if strings.TrimSpace(diseaseName) == "" {
		return domain.PlantIssueDiagnosis{}, domain.ErrDiseaseNameRequired
	}

	raw, err := p.generator.GenerateContent(ctx, fmt.Sprintf(remedyPromptTemplate, diseaseName))
	if err != nil {
		return domain.PlantIssueDiagnosis{}, err
	}

	report, err := ParseRemedyReport(raw)
	if err != nil {
		return domain.PlantIssueDiagnosis{}, err
	}

	return reportToDiagnosis(diseaseName, report), nil
}

// reportToDiagnosis flattens the model's report into the diagnosis record the
// app renders. Generated advice carries no severity grading, so it defaults
// to medium.
func reportToDiagnosis(diseaseName string, report domain.RemedyReport) domain.PlantIssueDiagnosis {
	name := report.Remedies.Diagnosis.Disease
	if name == "" {
		name = diseaseName
	}

	description := report.Summary
	if report.Remedies.Diagnosis.Symptoms != "" {
		description = strings.TrimSpace(description + "\n\nSymptoms: " + report.Remedies.Diagnosis.Symptoms)
	}

	steps := make([]string, 0, len(report.Remedies.DetailedRemedialPlan))
	for step := range report.Remedies.DetailedRemedialPlan {
		steps = append(steps, step)
	}
	sort.Strings(steps)

	var treatment strings.Builder
	for _, step := range steps {
		fmt.Fprintf(&treatment, "%s: %s\n", step, report.Remedies.DetailedRemedialPlan[step])
	}
	if report.Product.ApplicationProtocol != "" {
		treatment.WriteString(report.Product.ApplicationProtocol)
	}

	products := make([]domain.RecommendedProduct, 0, len(report.Product.CuratedProductList))
	for _, productName := range report.Product.CuratedProductList {
		products = append(products, domain.RecommendedProduct{Name: productName})
	}

	return domain.PlantIssueDiagnosis{
		Kind:        domain.IssueDisease,
		Name:        name,
		Severity:    domain.SeverityMedium,
		Description: description,
		Treatment:   strings.TrimSpace(treatment.String()),
		Products:    products,
	}
}
