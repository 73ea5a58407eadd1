package gamification_test

import (
	"strings"
	"testing"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
)

func TestDailyScore(t *testing.T) {
	svc := gamification.NewService()

	tests := []struct {
		name    string
		totalKg float64
		want    int
	}{
		{"zero carbono vale nota máxima", 0, 100},
		{"metade da meta vale 50", 10, 50},
		{"exatamente na meta vale 0", 20, 0},
		{"acima da meta continua 0, não negativo", 30, 0},
		{"conversão trunca em vez de arredondar", 0.1, 99}, // 99.5 → 99
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.DailyScore(tt.totalKg); got != tt.want {
				t.Errorf("DailyScore(%v) = %d, esperado %d", tt.totalKg, got, tt.want)
			}
		})
	}
}

func TestWeeklyStreakBonus(t *testing.T) {
	svc := gamification.NewService()

	tests := []struct {
		days      int
		wantBonus int
	}{
		{0, 0},
		{3, 50},
		{7, 150},
		// Marco exato, não limiar: 10 dias não ganham bônus.
		{10, 0},
		{8, 0},
	}

	for _, tt := range tests {
		_, bonus := svc.WeeklyStreak(tt.days)
		if bonus != tt.wantBonus {
			t.Errorf("WeeklyStreak(%d) bônus = %d, esperado %d", tt.days, bonus, tt.wantBonus)
		}
	}
}

func TestWeeklyStreakStatusBuckets(t *testing.T) {
	svc := gamification.NewService()

	tests := []struct {
		days         int
		wantContains string
	}{
		{1, "Keep it up: 1 days"},
		{3, "On Fire: 3 days!"},
		{6, "On Fire: 6 days!"},
		{7, "Master Streak: 7 days!"},
		{10, "Master Streak: 10 days!"},
	}

	for _, tt := range tests {
		status, _ := svc.WeeklyStreak(tt.days)
		if !strings.Contains(status, tt.wantContains) {
			t.Errorf("WeeklyStreak(%d) status = %q, deveria conter %q", tt.days, status, tt.wantContains)
		}
	}
}

func TestBadgesAllEarned(t *testing.T) {
	svc := gamification.NewService()

	badges := svc.Badges(10, 7, 2, 5)
	if len(badges) != 3 {
		t.Fatalf("esperava as 3 conquistas do catálogo, veio %d", len(badges))
	}

	// Ordem de retorno segue a declaração do catálogo.
	wantOrder := []string{"Green Traveler", "Eco Warrior", "Energy Saver"}
	for i, want := range wantOrder {
		if badges[i].Name != want {
			t.Errorf("badge[%d] = %q, esperado %q", i, badges[i].Name, want)
		}
	}
}

func TestBadgesThresholds(t *testing.T) {
	svc := gamification.NewService()

	tests := []struct {
		name        string
		streakDays  int
		transportKg float64
		energyKwh   float64
		wantIDs     []string
	}{
		{"transporte alto perde Green Traveler", 7, 6.0, 5, []string{"eco_warrior", "low_utility"}},
		{"streak curto perde Eco Warrior", 3, 2, 5, []string{"green_traveler", "low_utility"}},
		{"energia alta perde Energy Saver", 7, 2, 11, []string{"green_traveler", "eco_warrior"}},
		{"limite exato ainda qualifica", 7, 5.0, 10.0, []string{"green_traveler", "eco_warrior", "low_utility"}},
		{"tudo acima perde tudo", 1, 100, 100, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badges := svc.Badges(50, tt.streakDays, tt.transportKg, tt.energyKwh)
			if len(badges) != len(tt.wantIDs) {
				t.Fatalf("veio %d conquistas, esperava %d", len(badges), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if badges[i].ID != want {
					t.Errorf("badge[%d].ID = %q, esperado %q", i, badges[i].ID, want)
				}
			}
		})
	}
}

// totalCarbonKg não participa de nenhuma conquista do catálogo atual;
// variar o valor não pode mudar o resultado.
func TestBadgesTotalCarbonIsUnused(t *testing.T) {
	svc := gamification.NewService()

	a := svc.Badges(0, 7, 2, 5)
	b := svc.Badges(99999, 7, 2, 5)
	if len(a) != len(b) {
		t.Errorf("totalCarbonKg alterou o resultado: %d != %d conquistas", len(a), len(b))
	}
}

func TestProgressLevel(t *testing.T) {
	svc := gamification.NewService()

	tests := []struct {
		points     int
		wantName   string
		wantNumber int
	}{
		{0, "Seedling", 1},
		{499, "Seedling", 1},
		{500, "Sapling", 2},
		{2000, "Oak", 3},
		{3000, "Forest Guardian", 4},
		{10000, "Planet Hero", 5},
		// Abaixo do primeiro limiar o default é o primeiro nível.
		{-50, "Seedling", 1},
	}

	for _, tt := range tests {
		level := svc.ProgressLevel(tt.points)
		if level.LevelName != tt.wantName || level.LevelNumber != tt.wantNumber {
			t.Errorf("ProgressLevel(%d) = (%q, %d), esperado (%q, %d)",
				tt.points, level.LevelName, level.LevelNumber, tt.wantName, tt.wantNumber)
		}
		if level.TotalPoints != tt.points {
			t.Errorf("ProgressLevel(%d) ecoou TotalPoints = %d", tt.points, level.TotalPoints)
		}
	}
}
