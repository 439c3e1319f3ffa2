package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/smartrisk-ai/backend/internal/models"
	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used when none is configured.
const DefaultModelName = "gemini-2.0-flash"

// Scorer scores a credit application.
type Scorer interface {
	Score(ctx context.Context, input Input) Outcome
}

// FormulaScorer scores with the deterministic formula only. It is used
// when no generative model is configured.
type FormulaScorer struct{}

func (FormulaScorer) Score(_ context.Context, input Input) Outcome {
	return Calculate(input)
}

// AIScorer asks a Gemini model for an assessment and falls back to the
// formula when the call or the response parsing fails.
type AIScorer struct {
	client *genai.Client
	model  string
}

// NewAIScorer creates a scorer backed by the given Gemini model. The API
// key is read from the environment by the client library.
func NewAIScorer(ctx context.Context, model string) (*AIScorer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model == "" {
		model = DefaultModelName
	}

	return &AIScorer{client: client, model: model}, nil
}

// aiOutcome is the STRICT JSON shape the model is instructed to return.
type aiOutcome struct {
	AIScore         int    `json:"aiScore"`
	RiskLevel       string `json:"riskLevel"`
	AnalysisSummary string `json:"analysisSummary"`
}

func (s *AIScorer) Score(ctx context.Context, input Input) Outcome {
	outcome, err := s.score(ctx, input)
	if err != nil {
		log.Warn().Err(err).Msg("AI scoring failed, falling back to formula")
		return Calculate(input)
	}

	return outcome
}

func (s *AIScorer) score(ctx context.Context, input Input) (Outcome, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(input)},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return Outcome{}, fmt.Errorf("empty response from model")
	}

	var parsed aiOutcome
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &parsed); err != nil {
		return Outcome{}, fmt.Errorf("unmarshal model response: %w", err)
	}

	if parsed.AIScore < 300 || parsed.AIScore > 850 {
		return Outcome{}, fmt.Errorf("model returned score %d outside 300-850", parsed.AIScore)
	}

	level := models.RiskLevel(strings.ToLower(parsed.RiskLevel))
	if level != models.RiskLevelLow && level != models.RiskLevelMedium &&
		level != models.RiskLevelHigh && level != models.RiskLevelCritical {
		return Outcome{}, fmt.Errorf("model returned unknown risk level %q", parsed.RiskLevel)
	}

	summary := strings.TrimSpace(parsed.AnalysisSummary)
	if summary == "" {
		summary = summarize(parsed.AIScore, level, input)
	}

	return Outcome{
		AIScore:         parsed.AIScore,
		RiskLevel:       level,
		AnalysisSummary: summary,
	}, nil
}

func buildPrompt(input Input) string {
	return "You are SmartRisk AI, an expert credit risk assessment system. Analyze this credit application:\n\n" +
		fmt.Sprintf("Applicant: %s\n", input.ApplicantName) +
		fmt.Sprintf("Credit score: %d (range 300-850)\n", input.CreditScore) +
		fmt.Sprintf("Annual income: $%s\n", input.Income.StringFixed(2)) +
		fmt.Sprintf("Debt-to-income ratio: %.1f%%\n", input.DebtToIncomeRatio*100) +
		fmt.Sprintf("Employment history: %s\n\n", input.EmploymentHistory) +
		"Weigh the credit score, income stability, debt management and fraud indicators.\n\n" +
		"Output STRICT JSON only (no comments, no extra text) with these fields:\n" +
		"- \"aiScore\": integer between 300 and 850\n" +
		"- \"riskLevel\": one of \"low\", \"medium\", \"high\", \"critical\"\n" +
		"- \"analysisSummary\": string, a concise assessment with concrete numbers\n\n" +
		"Return ONLY valid raw JSON.\n" +
		"Do NOT wrap the response in code fences.\n" +
		"Do NOT use ```json or any Markdown.\n" +
		"Output must begin with \"{\" and end with \"}\".\n"
}

// cleanModelJSON strips Markdown fences when the model ignores the
// formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
