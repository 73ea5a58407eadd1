package recommendation

import (
	"fmt"
	"strings"
)

// Breakdown é a visão do consultor: valores por categoria e o total,
// já na precisão de apresentação (2 casas no fluxo de demo).
type Breakdown struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Energy    float64 `json:"energy"`
	Total     float64 `json:"total"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

const promptTemplate = `
Act as a Sustainability Expert and Carbon Footprint Consultant.
Your goal is to analyze a user's carbon footprint data and provide actionable, realistic, and prioritized recommendations to reduce their environmental impact.

### User Carbon Footprint Data (kg CO2e):
- **Total Footprint**: %.2f
- **Transport**: %.2f
- **Food**: %.2f
- **Energy**: %.2f

### User's Recent Activity Summary:
"%s"

### Analysis:
- The highest contributor to the user's footprint is **%s** (%.2f kg CO2e).

### Task:
Please provide 5–7 specific and realistic recommendations to reduce this carbon footprint.
For each recommendation, include:
1. **Action**: A clear, actionable step.
2. **Priority**: High, Medium, or Low (based on potential impact and ease of implementation).
3. **Rationale**: A brief explanation of why this helps.

### Output Style:
- Use a professional yet encouraging tone.
- Use clear bullet points.
- Ensure recommendations are tailored to the provided data and habits.
- Do not use generic advice; keep it specific to the identified problem areas.

Recommendations:
`

// BuildRecommendationPrompt monta o prompt estruturado para o serviço de
// geração de texto. Nenhuma chamada externa acontece aqui — só texto.
// Empates na categoria dominante resolvem na ordem fixa
// transport → food → energy.
func (s *Service) BuildRecommendationPrompt(breakdown Breakdown, activitySummary string) string {
	categories := []struct {
		name  string
		value float64
	}{
		{"transport", breakdown.Transport},
		{"food", breakdown.Food},
		{"energy", breakdown.Energy},
	}

	highest := categories[0]
	for _, c := range categories[1:] {
		if c.value > highest.value {
			highest = c
		}
	}

	prompt := fmt.Sprintf(
		promptTemplate,
		breakdown.Total,
		breakdown.Transport,
		breakdown.Food,
		breakdown.Energy,
		activitySummary,
		capitalize(highest.name),
		highest.value,
	)

	return strings.TrimSpace(prompt)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
