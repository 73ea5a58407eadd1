package gamification

import "fmt"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

type ProgressLevel struct {
	LevelName   string `json:"level_name"`
	LevelNumber int    `json:"level_number"`
	TotalPoints int    `json:"total_points"`
}

// DailyScore converte a pegada total do dia em uma nota de 0 a 100.
// Decaimento linear a partir de 100; a conversão para int trunca,
// não arredonda.
func (s *Service) DailyScore(totalCarbonKg float64) int {
	raw := 100 - totalCarbonKg*(100/DailyCarbonGoalKg)
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	return int(raw)
}

// WeeklyStreak devolve a mensagem de status e os pontos de bônus do
// streak. O bônus é tabela de marco exato, não um limiar.
func (s *Service) WeeklyStreak(activeDaysCount int) (string, int) {
	bonus := streakBonusMilestones[activeDaysCount]

	var status string
	switch {
	case activeDaysCount >= 7:
		status = fmt.Sprintf("🔥 Master Streak: %d days!", activeDaysCount)
	case activeDaysCount >= 3:
		status = fmt.Sprintf("✨ On Fire: %d days!", activeDaysCount)
	default:
		status = fmt.Sprintf("Keep it up: %d days", activeDaysCount)
	}

	return status, bonus
}

// Badges devolve as conquistas cujos limites declarados são todos
// satisfeitos pelas métricas atuais, na ordem do catálogo.
// totalCarbonKg ainda não é usado por nenhuma conquista do catálogo,
// mas faz parte da assinatura pública.
func (s *Service) Badges(totalCarbonKg float64, streakDays int, transportKg, energyKwh float64) []Badge {
	_ = totalCarbonKg

	earned := make([]Badge, 0, len(badgeCatalog))
	for _, def := range badgeCatalog {
		if def.TransportMax != nil && transportKg > *def.TransportMax {
			continue
		}
		if def.MinStreak != nil && streakDays < *def.MinStreak {
			continue
		}
		if def.EnergyMax != nil && energyKwh > *def.EnergyMax {
			continue
		}
		earned = append(earned, def.Badge)
	}

	return earned
}

// ProgressLevel percorre a tabela ascendente e fica com o maior limiar
// que não excede o total de pontos. Abaixo do primeiro limiar o nível
// default é o primeiro da tabela.
func (s *Service) ProgressLevel(totalPoints int) ProgressLevel {
	current := ProgressLevel{
		LevelName:   levels[0].Name,
		LevelNumber: 1,
		TotalPoints: totalPoints,
	}

	for i, level := range levels {
		if totalPoints < level.Threshold {
			break
		}
		current.LevelName = level.Name
		current.LevelNumber = i + 1
	}

	return current
}

// Levels expõe a tabela de níveis para consulta (somente leitura).
func (s *Service) Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
